// Package optionsource is the recovery data boundary. A Source serves
// recovery options for a disruption; the Resolver picks the first
// healthy source and falls back to the local catalog, so option
// generation never fails outright.
package optionsource

import (
	"context"

	"github.com/aeron-ops/backend/internal/models"
)

type Source interface {
	// Name tags results so callers can tell where options came from.
	Name() string
	Healthy(ctx context.Context) bool
	GetOptions(ctx context.Context, disruptionID string) ([]models.RecoveryOption, error)
	GenerateOptions(ctx context.Context, d models.Disruption, f models.Flight) ([]models.RecoveryOption, []models.GenerationStep, error)
}
