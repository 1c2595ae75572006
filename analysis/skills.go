package analysis

import (
	"fmt"
	"sort"
	"strings"

	"edusight-server/models"
	"edusight-server/utils"
)

// UnresolvedPolicy controls what happens when an answer references a
// question ID that is not in the supplied bank.
type UnresolvedPolicy int

const (
	// SkipUnresolved drops the answer and keeps going. This matches the
	// historical behavior; callers are expected to log skipped IDs.
	SkipUnresolved UnresolvedPolicy = iota
	// FailUnresolved aborts aggregation with an error naming the ID.
	FailUnresolved
)

// ParseUnresolvedPolicy maps the wire values "skip"/"fail" to a policy.
// Anything else (including empty) means skip.
func ParseUnresolvedPolicy(s string) UnresolvedPolicy {
	if s == "fail" {
		return FailUnresolved
	}
	return SkipUnresolved
}

// improvementWindow is the sample count on each side of the trend
// comparison: the most recent window against the window before it.
const improvementWindow = 5

type skillAccumulator struct {
	attempted int
	correct   int
	timeSpent float64
	history   []float64 // 0/1 correctness samples in attempt order
}

// QuestionIndex builds an ID lookup over a question bank.
func QuestionIndex(questions []models.Question) map[string]models.Question {
	idx := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		idx[q.ID] = q
	}
	return idx
}

// AnswerIsCorrect applies the correctness test: set containment for
// array-valued correct answers, exact case-insensitive equality otherwise.
func AnswerIsCorrect(ans models.AttemptAnswer, q models.Question) bool {
	if len(q.CorrectAnswers) > 0 {
		given := ans.Answers
		if len(given) == 0 && ans.Answer != "" {
			given = []string{ans.Answer}
		}
		givenSet := make(map[string]bool, len(given))
		for _, g := range given {
			givenSet[normalizeAnswer(g)] = true
		}
		for _, want := range q.CorrectAnswers {
			if !givenSet[normalizeAnswer(want)] {
				return false
			}
		}
		return true
	}
	return normalizeAnswer(ans.Answer) == normalizeAnswer(q.CorrectAnswer)
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AggregateSkills walks every answer of every attempt, resolves its
// question, and accumulates per-skill statistics. Output is sorted by
// skill name so identical input yields identical output.
//
// Empty attempts produce an empty (non-nil) slice, never an error.
func AggregateSkills(attempts []models.ExamAttempt, questions []models.Question, policy UnresolvedPolicy) ([]models.SkillAssessment, error) {
	idx := QuestionIndex(questions)
	acc := make(map[string]*skillAccumulator)

	for _, attempt := range attempts {
		for _, ans := range attempt.Answers {
			q, ok := idx[ans.QuestionID]
			if !ok {
				if policy == FailUnresolved {
					return nil, fmt.Errorf("answer references unknown question %q in attempt %s", ans.QuestionID, attempt.AttemptID)
				}
				continue
			}
			correct := AnswerIsCorrect(ans, q)
			sample := 0.0
			if correct {
				sample = 1.0
			}
			for _, skill := range q.Skills {
				a := acc[skill]
				if a == nil {
					a = &skillAccumulator{}
					acc[skill] = a
				}
				a.attempted++
				a.timeSpent += ans.TimeSpent
				if correct {
					a.correct++
				}
				a.history = append(a.history, sample)
			}
		}
	}

	names := make([]string, 0, len(acc))
	for name := range acc {
		names = append(names, name)
	}
	sort.Strings(names)

	skills := make([]models.SkillAssessment, 0, len(names))
	for _, name := range names {
		a := acc[name]
		skills = append(skills, models.SkillAssessment{
			SkillName:              name,
			ProficiencyLevel:       float64(a.correct) / float64(a.attempted) * 100,
			QuestionsAttempted:     a.attempted,
			QuestionsCorrect:       a.correct,
			AverageTimePerQuestion: a.timeSpent / float64(a.attempted),
			Improvement:            improvementTrend(a.history),
		})
	}
	return skills, nil
}

// improvementTrend is the percent change between the mean of the most
// recent window and the mean of the window before it. With fewer than two
// full windows of history, or a zero previous mean, the trend is 0.
func improvementTrend(history []float64) float64 {
	if len(history) < 2*improvementWindow {
		return 0
	}
	recent := utils.Mean(history[len(history)-improvementWindow:])
	previous := utils.Mean(history[len(history)-2*improvementWindow : len(history)-improvementWindow])
	return utils.PercentChange(previous, recent)
}

// Competency band cutoffs, shared with the subject aggregator's
// strength/weakness lists.
const (
	strengthCutoff = 80.0
	weaknessCutoff = 60.0
)

var competencyTemplates = map[models.CompetencyCategory][]string{
	models.CompetencyStrength: {
		"%s is a clear strength. Offer enrichment problems to keep it challenged.",
		"Strong command of %s. Consider peer-tutoring opportunities to consolidate it further.",
		"%s is well established. Introduce advanced material at a measured pace.",
	},
	models.CompetencyDeveloping: {
		"%s is developing on track. Short, regular practice sessions will firm it up.",
		"Keep reinforcing %s with mixed-difficulty exercises.",
		"%s shows steady progress. Revisit the trickier cases weekly.",
	},
	models.CompetencyWeakness: {
		"%s needs focused attention. Start with foundational exercises before reattempting graded work.",
		"Build %s back up with guided practice and worked examples.",
		"%s is currently below expectations. A structured review plan is recommended.",
	},
}

// ClassifyCompetency buckets each skill into strength (>=80), developing
// (60-79) or weakness (<60) and attaches category-keyed recommendation
// text. Template choice is deterministic per input position.
func ClassifyCompetency(skills []models.SkillAssessment) []models.CompetencyArea {
	areas := make([]models.CompetencyArea, 0, len(skills))
	for i, s := range skills {
		var category models.CompetencyCategory
		switch {
		case s.ProficiencyLevel >= strengthCutoff:
			category = models.CompetencyStrength
		case s.ProficiencyLevel >= weaknessCutoff:
			category = models.CompetencyDeveloping
		default:
			category = models.CompetencyWeakness
		}
		templates := competencyTemplates[category]
		areas = append(areas, models.CompetencyArea{
			SkillName:        s.SkillName,
			Category:         category,
			ProficiencyLevel: s.ProficiencyLevel,
			Recommendation:   fmt.Sprintf(templates[i%len(templates)], s.SkillName),
		})
	}
	return areas
}
