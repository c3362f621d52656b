package optionsource

import (
	"context"
	"time"

	"github.com/aeron-ops/backend/internal/catalog"
	"github.com/aeron-ops/backend/internal/models"
)

// Local generates options from the built-in catalog. Always healthy;
// it is the terminal fallback of every resolver chain.
type Local struct {
	// Now lets tests pin the generation clock.
	Now func() time.Time
}

func (l Local) Name() string { return "local" }

func (l Local) Healthy(ctx context.Context) bool { return true }

// GetOptions has no option store locally; callers holding only a
// disruption ID get an empty set and should regenerate instead.
func (l Local) GetOptions(ctx context.Context, disruptionID string) ([]models.RecoveryOption, error) {
	return []models.RecoveryOption{}, nil
}

func (l Local) GenerateOptions(ctx context.Context, d models.Disruption, f models.Flight) ([]models.RecoveryOption, []models.GenerationStep, error) {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	opts, steps := catalog.Generate(d, f, now().UTC())
	return opts, steps, nil
}
