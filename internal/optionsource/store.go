package optionsource

import (
	"context"
	"time"

	"github.com/aeron-ops/backend/internal/catalog"
	"github.com/aeron-ops/backend/internal/db"
	"github.com/aeron-ops/backend/internal/models"
)

// StoreSource serves options persisted in Postgres and writes back
// freshly generated sets, keeping the store authoritative for repeat
// reads of the same disruption.
type StoreSource struct {
	Store *db.Store
	Now   func() time.Time
}

func (s StoreSource) Name() string { return "store" }

func (s StoreSource) Healthy(ctx context.Context) bool {
	return s.Store != nil && s.Store.Ping(ctx) == nil
}

func (s StoreSource) GetOptions(ctx context.Context, disruptionID string) ([]models.RecoveryOption, error) {
	return s.Store.GetOptionsByDisruption(ctx, disruptionID)
}

func (s StoreSource) GenerateOptions(ctx context.Context, d models.Disruption, f models.Flight) ([]models.RecoveryOption, []models.GenerationStep, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	opts, steps := catalog.Generate(d, f, now().UTC())

	if d.ID != "" {
		if err := s.Store.SaveDisruption(ctx, d); err != nil {
			return nil, nil, err
		}
		if err := s.Store.SaveOptions(ctx, d.ID, opts); err != nil {
			return nil, nil, err
		}
	}
	return opts, steps, nil
}
