// Package db persists disruptions and their generated recovery
// options in Postgres.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aeron-ops/backend/internal/models"
)

type Store struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

func (s *Store) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) SaveDisruption(ctx context.Context, d models.Disruption) error {
	_, err := s.Pool.Exec(ctx, `
		INSERT INTO disruptions (id, category, severity, reason, flight_number, passengers, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET
			category = EXCLUDED.category,
			severity = EXCLUDED.severity,
			reason = EXCLUDED.reason,
			flight_number = EXCLUDED.flight_number,
			passengers = EXCLUDED.passengers
	`, d.ID, string(d.Category), d.Severity, d.Reason, d.FlightNumber, d.Passengers, time.Now().UTC())
	return err
}

func (s *Store) GetDisruption(ctx context.Context, id string) (models.Disruption, error) {
	row := s.Pool.QueryRow(ctx, `
		SELECT id, category, severity, reason, flight_number, passengers
		FROM disruptions WHERE id = $1
	`, id)

	var d models.Disruption
	var category string
	if err := row.Scan(&d.ID, &category, &d.Severity, &d.Reason, &d.FlightNumber, &d.Passengers); err != nil {
		return models.Disruption{}, err
	}
	d.Category = models.DisruptionCategory(category)
	return d, nil
}

// SaveOptions replaces the stored option set for a disruption. The
// delete and bulk insert share one transaction so readers never see a
// partial set.
func (s *Store) SaveOptions(ctx context.Context, disruptionID string, opts []models.RecoveryOption) error {
	return s.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM recovery_options WHERE disruption_id = $1`, disruptionID); err != nil {
			return err
		}
		rows := make([][]any, 0, len(opts))
		now := time.Now().UTC()
		for i, o := range opts {
			payload, err := json.Marshal(o)
			if err != nil {
				return err
			}
			rows = append(rows, []any{o.ID, disruptionID, i, o.Title, o.Cost, o.Timeline, o.Confidence, string(o.Status), payload, now})
		}
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"recovery_options"},
			[]string{"id", "disruption_id", "rank", "title", "cost", "timeline", "confidence", "status", "payload", "created_at"},
			pgx.CopyFromRows(rows))
		return err
	})
}

func (s *Store) GetOptionsByDisruption(ctx context.Context, disruptionID string) ([]models.RecoveryOption, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT payload FROM recovery_options
		WHERE disruption_id = $1
		ORDER BY rank ASC
	`, disruptionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.RecoveryOption
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var o models.RecoveryOption
		if err := json.Unmarshal(payload, &o); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// ErrNotFound normalizes pgx.ErrNoRows for callers outside this
// package.
var ErrNotFound = errors.New("not found")

func NotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, ErrNotFound)
}
