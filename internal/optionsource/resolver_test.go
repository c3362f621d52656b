package optionsource

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeron-ops/backend/internal/models"
)

type fakeSource struct {
	name         string
	healthy      bool
	healthCalls  int
	generateErr  error
	options      []models.RecoveryOption
	generateHits int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Healthy(ctx context.Context) bool {
	f.healthCalls++
	return f.healthy
}

func (f *fakeSource) GetOptions(ctx context.Context, id string) ([]models.RecoveryOption, error) {
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return f.options, nil
}

func (f *fakeSource) GenerateOptions(ctx context.Context, d models.Disruption, fl models.Flight) ([]models.RecoveryOption, []models.GenerationStep, error) {
	f.generateHits++
	if f.generateErr != nil {
		return nil, nil, f.generateErr
	}
	return f.options, []models.GenerationStep{{Step: 1}}, nil
}

func testDisruption() models.Disruption {
	return models.Disruption{ID: "DIS-1", Category: models.CategoryAircraftIssue}
}

func TestResolverPrefersHealthyUpstream(t *testing.T) {
	up := &fakeSource{name: "api", healthy: true, options: []models.RecoveryOption{{ID: "UP_1"}}}
	r := NewResolver(zerolog.Nop(), up, Local{})

	opts, _, source, err := r.Generate(context.Background(), testDisruption(), models.Flight{})
	require.NoError(t, err)
	assert.Equal(t, "api", source)
	require.Len(t, opts, 1)
	assert.Equal(t, "UP_1", opts[0].ID)
}

func TestResolverFallsBackToLocal(t *testing.T) {
	up := &fakeSource{name: "api", healthy: false}
	r := NewResolver(zerolog.Nop(), up, Local{Now: func() time.Time {
		return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	}})

	opts, steps, source, err := r.Generate(context.Background(), testDisruption(), models.Flight{})
	require.NoError(t, err)
	assert.Equal(t, "local", source)
	assert.NotEmpty(t, opts)
	assert.NotEmpty(t, steps)
	assert.Zero(t, up.generateHits)
}

func TestResolverFallsBackOnEmptyUpstreamSet(t *testing.T) {
	up := &fakeSource{name: "api", healthy: true, options: []models.RecoveryOption{}}
	r := NewResolver(zerolog.Nop(), up, Local{})

	opts, _, source, err := r.Generate(context.Background(), testDisruption(), models.Flight{})
	require.NoError(t, err)
	assert.Equal(t, "local", source)
	assert.NotEmpty(t, opts)
	assert.Equal(t, 1, up.generateHits)
}

func TestResolverFallsBackOnGenerateError(t *testing.T) {
	up := &fakeSource{name: "api", healthy: true, generateErr: errors.New("boom")}
	r := NewResolver(zerolog.Nop(), up, Local{})

	_, _, source, err := r.Generate(context.Background(), testDisruption(), models.Flight{})
	require.NoError(t, err)
	assert.Equal(t, "local", source)
	assert.Equal(t, 1, up.generateHits)
}

func TestResolverCachesHealthChecks(t *testing.T) {
	up := &fakeSource{name: "api", healthy: false}
	r := NewResolver(zerolog.Nop(), up, Local{})

	ctx := context.Background()
	d := testDisruption()
	for i := 0; i < 5; i++ {
		_, _, _, err := r.Generate(ctx, d, models.Flight{})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, up.healthCalls)
}

func TestResolverOptionsEmptyWhenNothingStored(t *testing.T) {
	r := NewResolver(zerolog.Nop(), Local{})
	opts, source, err := r.Options(context.Background(), "DIS-1")
	require.NoError(t, err)
	assert.Empty(t, opts)
	assert.Empty(t, source)
}

func TestLocalAlwaysHealthy(t *testing.T) {
	l := Local{}
	assert.True(t, l.Healthy(context.Background()))
	assert.Equal(t, "local", l.Name())
}
