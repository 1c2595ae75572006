package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"edusight-server/models"
)

// DomainResultStore persists per-domain signal evaluations.
type DomainResultStore interface {
	Save(ctx context.Context, studentName string, result models.DomainResult) error
}

// PGDomainResultStore is the PostgreSQL DomainResultStore.
type PGDomainResultStore struct {
	pool *pgxpool.Pool
}

func NewDomainResultStore(pool *pgxpool.Pool) *PGDomainResultStore {
	return &PGDomainResultStore{pool: pool}
}

func (s *PGDomainResultStore) Save(ctx context.Context, studentName string, result models.DomainResult) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO domain_results (student_name, domain, signal, accuracy, avg_reaction_time, false_clicks, retries, feedback)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, studentName, result.Domain, result.Signal,
		result.Metrics.Accuracy, result.Metrics.AvgReactionTime,
		result.Metrics.FalseClicks, result.Metrics.Retries, result.Feedback)
	if err != nil {
		return fmt.Errorf("failed to insert domain result: %w", err)
	}
	return nil
}
