package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edusight-server/models"
)

func TestAggregateBySubject_BinaryScoring(t *testing.T) {
	questions := []models.Question{
		{ID: "m1", Subject: "Mathematics", Topic: "Fractions", Skills: []string{"fractions"}, CorrectAnswer: "1/2", MaxMarks: 4},
		{ID: "m2", Subject: "Mathematics", Topic: "Fractions", Skills: []string{"fractions"}, CorrectAnswer: "3/4", MaxMarks: 4},
	}
	attempts := []models.ExamAttempt{attempt("a1",
		models.AttemptAnswer{QuestionID: "m1", Answer: "1/2", TimeSpent: 30},
		models.AttemptAnswer{QuestionID: "m2", Answer: "1/4", TimeSpent: 45},
	)}

	analyses, err := AggregateBySubject(attempts, questions, SkipUnresolved)
	require.NoError(t, err)
	require.Len(t, analyses, 1)

	math := analyses[0]
	assert.Equal(t, "Mathematics", math.SubjectName)
	// A wrong answer earns zero, not partial credit: 4 of 8 marks.
	assert.InDelta(t, 50.0, math.OverallScore, 1e-9)

	require.Len(t, math.TopicBreakdown, 1)
	topic := math.TopicBreakdown[0]
	assert.Equal(t, "Fractions", topic.TopicName)
	assert.Equal(t, 2, topic.QuestionsAttempted)
	assert.InDelta(t, 75.0, topic.TimeSpent, 1e-9)
	assert.Equal(t, []string{"fractions"}, topic.SkillsAssessed)
}

func TestAggregateBySubject_Bands(t *testing.T) {
	questions := []models.Question{
		{ID: "s1", Subject: "Science", Topic: "Plants", CorrectAnswer: "leaf", MaxMarks: 1},
		{ID: "s2", Subject: "Science", Topic: "Animals", CorrectAnswer: "cat", MaxMarks: 1},
		{ID: "s3", Subject: "Science", Topic: "Animals", CorrectAnswer: "dog", MaxMarks: 1},
		{ID: "s4", Subject: "Science", Topic: "Animals", CorrectAnswer: "cow", MaxMarks: 1},
		{ID: "s5", Subject: "Science", Topic: "Weather", CorrectAnswer: "rain", MaxMarks: 1},
		{ID: "s6", Subject: "Science", Topic: "Weather", CorrectAnswer: "sun", MaxMarks: 1},
		{ID: "s7", Subject: "Science", Topic: "Weather", CorrectAnswer: "wind", MaxMarks: 1},
	}
	attempts := []models.ExamAttempt{attempt("a1",
		// Plants: 100 (strength). Animals: 2/3 ~ 66.7 (neither).
		// Weather: 1/3 ~ 33.3 (weakness).
		models.AttemptAnswer{QuestionID: "s1", Answer: "leaf"},
		models.AttemptAnswer{QuestionID: "s2", Answer: "cat"},
		models.AttemptAnswer{QuestionID: "s3", Answer: "dog"},
		models.AttemptAnswer{QuestionID: "s4", Answer: "horse"},
		models.AttemptAnswer{QuestionID: "s5", Answer: "rain"},
		models.AttemptAnswer{QuestionID: "s6", Answer: "snow"},
		models.AttemptAnswer{QuestionID: "s7", Answer: "fire"},
	)}

	analyses, err := AggregateBySubject(attempts, questions, SkipUnresolved)
	require.NoError(t, err)
	require.Len(t, analyses, 1)

	sci := analyses[0]
	assert.Equal(t, []string{"Plants"}, sci.Strengths)
	assert.Equal(t, []string{"Weather"}, sci.Weaknesses)

	// The developing band appears in neither list.
	assert.NotContains(t, sci.Strengths, "Animals")
	assert.NotContains(t, sci.Weaknesses, "Animals")

	// Named callouts per weak and strong topic.
	assert.Contains(t, sci.Recommendations, "Prioritize extra practice on Weather.")
	assert.Contains(t, sci.Recommendations, "Keep the momentum going in Plants.")
}

func TestAggregateBySubject_DeterministicOrdering(t *testing.T) {
	questions := []models.Question{
		{ID: "z1", Subject: "Zoology", Topic: "Cells", CorrectAnswer: "x", MaxMarks: 1},
		{ID: "a1q", Subject: "Art", Topic: "Color", CorrectAnswer: "x", MaxMarks: 1},
		{ID: "h1", Subject: "History", Topic: "Dates", CorrectAnswer: "x", MaxMarks: 1},
	}
	attempts := []models.ExamAttempt{attempt("a1",
		models.AttemptAnswer{QuestionID: "z1", Answer: "x"},
		models.AttemptAnswer{QuestionID: "a1q", Answer: "x"},
		models.AttemptAnswer{QuestionID: "h1", Answer: "x"},
	)}

	for i := 0; i < 5; i++ {
		analyses, err := AggregateBySubject(attempts, questions, SkipUnresolved)
		require.NoError(t, err)
		require.Len(t, analyses, 3)
		assert.Equal(t, "Art", analyses[0].SubjectName)
		assert.Equal(t, "History", analyses[1].SubjectName)
		assert.Equal(t, "Zoology", analyses[2].SubjectName)
	}
}

func TestAggregateBySubject_Empty(t *testing.T) {
	analyses, err := AggregateBySubject(nil, nil, SkipUnresolved)
	require.NoError(t, err)
	assert.Empty(t, analyses)
	assert.NotNil(t, analyses)
}
