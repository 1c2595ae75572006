package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitDB initializes the PostgreSQL database connection pool
func InitDB(connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Ping the database to verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// CreateSchema sets up the tables for the analysis server.
// In a production environment, use a proper migration tool (e.g., golang-migrate).
func CreateSchema(pool *pgxpool.Pool) error {
	schemaSQL := `
	CREATE TABLE IF NOT EXISTS questions (
		id VARCHAR(64) PRIMARY KEY,
		subject VARCHAR(255) NOT NULL,
		topic VARCHAR(255) NOT NULL,
		question_text TEXT NOT NULL,
		skills TEXT[] NOT NULL DEFAULT '{}',
		correct_answer TEXT,
		correct_answers TEXT[],
		max_marks DOUBLE PRECISION NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS analysis_reports (
		id UUID PRIMARY KEY,
		student_name VARCHAR(255) NOT NULL,
		analysis_type VARCHAR(50) NOT NULL CHECK (analysis_type IN ('game-based', 'advanced', 'early-childhood')),
		model_used VARCHAR(255) NOT NULL,
		fallback BOOLEAN NOT NULL DEFAULT FALSE,
		input JSONB NOT NULL,
		report JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_analysis_reports_student
		ON analysis_reports (student_name, created_at DESC);

	CREATE TABLE IF NOT EXISTS domain_results (
		id SERIAL PRIMARY KEY,
		student_name VARCHAR(255) NOT NULL,
		domain VARCHAR(255) NOT NULL,
		signal VARCHAR(10) NOT NULL CHECK (signal IN ('green', 'yellow', 'red')),
		accuracy DOUBLE PRECISION NOT NULL,
		avg_reaction_time DOUBLE PRECISION NOT NULL,
		false_clicks INT NOT NULL,
		retries INT NOT NULL,
		feedback TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS error_logs (
		id SERIAL PRIMARY KEY,
		timestamp TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		source TEXT NOT NULL,
		detail TEXT,
		error_message TEXT NOT NULL
	);
	`
	_, err := pool.Exec(context.Background(), schemaSQL)
	if err != nil {
		return fmt.Errorf("error executing schema SQL: %w", err)
	}
	return nil
}

// LogError adds an entry to the error_logs table. Failures here are
// swallowed; error logging must never take the request down with it.
func LogError(pool *pgxpool.Pool, source, detail, errMsg string) {
	_, _ = pool.Exec(context.Background(), `
		INSERT INTO error_logs (source, detail, error_message)
		VALUES ($1, $2, $3)
	`, source, detail, errMsg)
}
