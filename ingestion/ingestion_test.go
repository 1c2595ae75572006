package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBank(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	return dir
}

func TestLoadQuestionBank(t *testing.T) {
	dir := writeBank(t, "math.yaml", `
subject: Mathematics
questions:
  - id: m2
    topic: Addition
    text: "What is 5 + 7?"
    skills: [arithmetic]
    correct_answer: "12"
    max_marks: 2
  - id: m1
    topic: Vowels
    subject: English
    text: "Pick all vowels"
    skills: [phonics]
    correct_answers: [a, e, i]
    max_marks: 3
`)

	questions, err := LoadQuestionBank(dir)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	// Sorted by ID; per-question subject overrides the file default.
	assert.Equal(t, "m1", questions[0].ID)
	assert.Equal(t, "English", questions[0].Subject)
	assert.Equal(t, []string{"a", "e", "i"}, questions[0].CorrectAnswers)

	assert.Equal(t, "m2", questions[1].ID)
	assert.Equal(t, "Mathematics", questions[1].Subject)
	assert.Equal(t, "12", questions[1].CorrectAnswer)
	assert.InDelta(t, 2.0, questions[1].MaxMarks, 1e-9)
}

func TestLoadQuestionBank_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			"missing id",
			"subject: Math\nquestions:\n  - topic: T\n    text: Q\n    correct_answer: x\n    max_marks: 1\n",
			"missing id",
		},
		{
			"missing answer",
			"subject: Math\nquestions:\n  - id: q1\n    topic: T\n    text: Q\n    max_marks: 1\n",
			"correct_answer",
		},
		{
			"non-positive marks",
			"subject: Math\nquestions:\n  - id: q1\n    topic: T\n    text: Q\n    correct_answer: x\n    max_marks: 0\n",
			"max_marks",
		},
		{
			"duplicate id",
			"subject: Math\nquestions:\n  - id: q1\n    topic: T\n    text: Q\n    correct_answer: x\n    max_marks: 1\n  - id: q1\n    topic: T\n    text: Q2\n    correct_answer: y\n    max_marks: 1\n",
			"duplicate question ID",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeBank(t, "bank.yaml", tt.yaml)
			_, err := LoadQuestionBank(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadQuestionBank_IgnoresNonYAML(t *testing.T) {
	dir := writeBank(t, "notes.txt", "not yaml")
	questions, err := LoadQuestionBank(dir)
	require.NoError(t, err)
	assert.Empty(t, questions)
}
