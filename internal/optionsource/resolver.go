package optionsource

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aeron-ops/backend/internal/models"
	"github.com/aeron-ops/backend/internal/observability"
)

// healthTTL bounds how often a source's health endpoint is probed.
const healthTTL = time.Minute

// Resolver walks an ordered source chain and serves from the first
// healthy one. Health results are cached per source so a flapping
// upstream is not hammered on every request. The last source in the
// chain should be Local, which never reports unhealthy.
type Resolver struct {
	sources []Source
	log     zerolog.Logger

	mu      sync.Mutex
	checked map[string]healthState
}

type healthState struct {
	healthy bool
	at      time.Time
}

func NewResolver(log zerolog.Logger, sources ...Source) *Resolver {
	return &Resolver{
		sources: sources,
		log:     log.With().Str("component", "optionsource").Logger(),
		checked: make(map[string]healthState),
	}
}

func (r *Resolver) healthy(ctx context.Context, s Source) bool {
	r.mu.Lock()
	state, ok := r.checked[s.Name()]
	r.mu.Unlock()
	if ok && time.Since(state.at) < healthTTL {
		return state.healthy
	}

	h := s.Healthy(ctx)
	r.mu.Lock()
	r.checked[s.Name()] = healthState{healthy: h, at: time.Now()}
	r.mu.Unlock()
	if !h {
		r.log.Warn().Str("source", s.Name()).Msg("option source unhealthy")
	}
	return h
}

// Generate produces options for a disruption, tagged with the name of
// the source that served them.
func (r *Resolver) Generate(ctx context.Context, d models.Disruption, f models.Flight) ([]models.RecoveryOption, []models.GenerationStep, string, error) {
	for i, s := range r.sources {
		if !r.healthy(ctx, s) {
			observability.FallbacksTotal.Inc()
			continue
		}
		opts, steps, err := s.GenerateOptions(ctx, d, f)
		if err != nil {
			r.log.Error().Err(err).Str("source", s.Name()).Msg("generate failed, falling back")
			if i < len(r.sources)-1 {
				observability.FallbacksTotal.Inc()
			}
			continue
		}
		// An empty set from a healthy upstream is as useless as an
		// error; the operator must always see at least one option.
		if len(opts) == 0 && i < len(r.sources)-1 {
			r.log.Warn().Str("source", s.Name()).Msg("empty option set, falling back")
			observability.FallbacksTotal.Inc()
			continue
		}
		observability.GenerationsTotal.WithLabelValues(string(d.Category), s.Name()).Inc()
		return opts, steps, s.Name(), nil
	}
	return nil, nil, "", errors.New("no option source available")
}

// Options fetches previously generated options for a disruption ID.
func (r *Resolver) Options(ctx context.Context, disruptionID string) ([]models.RecoveryOption, string, error) {
	for _, s := range r.sources {
		if !r.healthy(ctx, s) {
			observability.FallbacksTotal.Inc()
			continue
		}
		opts, err := s.GetOptions(ctx, disruptionID)
		if err != nil {
			r.log.Error().Err(err).Str("source", s.Name()).Msg("fetch failed, falling back")
			continue
		}
		if len(opts) > 0 {
			return opts, s.Name(), nil
		}
	}
	return []models.RecoveryOption{}, "", nil
}
