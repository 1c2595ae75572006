package analysis

import (
	"strings"

	"edusight-server/models"
)

// ResolveGameAnswers maps free-form game answers onto bank question IDs
// by matching subject, topic and question text (case-insensitive).
// Unmatched answers keep a synthetic ID so the unresolved policy decides
// their fate downstream.
func ResolveGameAnswers(studentName string, answers []models.GameAnswer, questions []models.Question) models.ExamAttempt {
	type bankKey struct {
		subject, topic, text string
	}
	bank := make(map[bankKey]string, len(questions))
	for _, q := range questions {
		bank[bankKey{
			subject: normalizeAnswer(q.Subject),
			topic:   normalizeAnswer(q.Topic),
			text:    normalizeAnswer(q.Text),
		}] = q.ID
	}

	attempt := models.ExamAttempt{
		AttemptID:   "game-session",
		StudentName: studentName,
	}
	for _, a := range answers {
		id, ok := bank[bankKey{
			subject: normalizeAnswer(a.Subject),
			topic:   normalizeAnswer(a.Topic),
			text:    normalizeAnswer(a.Question),
		}]
		if !ok {
			id = "unresolved:" + strings.TrimSpace(a.Question)
		}
		attempt.Answers = append(attempt.Answers, models.AttemptAnswer{
			QuestionID: id,
			Answer:     a.Answer,
		})
	}
	return attempt
}
