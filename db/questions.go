package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"edusight-server/models"
)

// QuestionStore provides the question bank.
type QuestionStore interface {
	All(ctx context.Context) ([]models.Question, error)
	ReplaceAll(ctx context.Context, questions []models.Question) error
}

// PGQuestionStore is the PostgreSQL QuestionStore.
type PGQuestionStore struct {
	pool *pgxpool.Pool
}

func NewQuestionStore(pool *pgxpool.Pool) *PGQuestionStore {
	return &PGQuestionStore{pool: pool}
}

func (s *PGQuestionStore) All(ctx context.Context) ([]models.Question, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, subject, topic, question_text, skills, correct_answer, correct_answers, max_marks
		FROM questions
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		var correctAnswer *string
		if err := rows.Scan(&q.ID, &q.Subject, &q.Topic, &q.Text, &q.Skills, &correctAnswer, &q.CorrectAnswers, &q.MaxMarks); err != nil {
			return nil, fmt.Errorf("failed to scan question row: %w", err)
		}
		if correctAnswer != nil {
			q.CorrectAnswer = *correctAnswer
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("question rows: %w", err)
	}
	return questions, nil
}

// ReplaceAll swaps the whole bank inside one transaction so readers
// never observe a half-ingested state.
func (s *PGQuestionStore) ReplaceAll(ctx context.Context, questions []models.Question) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin ingestion transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM questions`); err != nil {
		return fmt.Errorf("failed to clear question bank: %w", err)
	}

	for _, q := range questions {
		_, err := tx.Exec(ctx, `
			INSERT INTO questions (id, subject, topic, question_text, skills, correct_answer, correct_answers, max_marks)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, q.ID, q.Subject, q.Topic, q.Text, q.Skills, q.CorrectAnswer, q.CorrectAnswers, q.MaxMarks)
		if err != nil {
			return fmt.Errorf("failed to insert question %s: %w", q.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit ingestion transaction: %w", err)
	}
	return nil
}
