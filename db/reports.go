package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"edusight-server/models"
)

// ReportStore persists and retrieves analysis reports.
type ReportStore interface {
	Save(ctx context.Context, report *models.AnalysisReport) error
	ListByStudent(ctx context.Context, studentName string, limit int) ([]models.AnalysisReport, error)
	ListRecent(ctx context.Context, limit int) ([]models.AnalysisReport, error)
}

// PGReportStore is the PostgreSQL ReportStore.
type PGReportStore struct {
	pool *pgxpool.Pool
}

func NewReportStore(pool *pgxpool.Pool) *PGReportStore {
	return &PGReportStore{pool: pool}
}

// Save assigns the report an ID if it has none and inserts it.
func (s *PGReportStore) Save(ctx context.Context, report *models.AnalysisReport) error {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO analysis_reports (id, student_name, analysis_type, model_used, fallback, input, report)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, report.ID, report.StudentName, report.AnalysisType, report.ModelUsed, report.Fallback, report.Input, report.Report)
	if err != nil {
		return fmt.Errorf("failed to insert analysis report: %w", err)
	}
	return nil
}

const reportColumns = `id, student_name, analysis_type, model_used, fallback, input, report, created_at`

func (s *PGReportStore) ListByStudent(ctx context.Context, studentName string, limit int) ([]models.AnalysisReport, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+reportColumns+`
		FROM analysis_reports
		WHERE student_name = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, studentName, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports for %s: %w", studentName, err)
	}
	defer rows.Close()
	return scanReports(rows)
}

func (s *PGReportStore) ListRecent(ctx context.Context, limit int) ([]models.AnalysisReport, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+reportColumns+`
		FROM analysis_reports
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent reports: %w", err)
	}
	defer rows.Close()
	return scanReports(rows)
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanReports(rows pgxRows) ([]models.AnalysisReport, error) {
	reports := []models.AnalysisReport{}
	for rows.Next() {
		var r models.AnalysisReport
		if err := rows.Scan(&r.ID, &r.StudentName, &r.AnalysisType, &r.ModelUsed, &r.Fallback, &r.Input, &r.Report, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report rows: %w", err)
	}
	return reports, nil
}
