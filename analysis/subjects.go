package analysis

import (
	"fmt"
	"sort"

	"edusight-server/models"
)

type topicAccumulator struct {
	earned    float64
	possible  float64
	attempted int
	timeSpent float64
	skills    map[string]bool
}

type subjectAccumulator struct {
	earned   float64
	possible float64
	topics   map[string]*topicAccumulator
}

// AggregateBySubject groups answers by subject and topic and applies
// binary all-or-nothing scoring: an answer earns the question's full
// MaxMarks when correct, nothing otherwise. Partial credit does not exist
// at this layer.
//
// Strengths are topics scoring >=80, weaknesses topics <60; the 60-79
// band appears in neither list, mirroring the competency classifier's
// developing band.
func AggregateBySubject(attempts []models.ExamAttempt, questions []models.Question, policy UnresolvedPolicy) ([]models.SubjectAnalysis, error) {
	idx := QuestionIndex(questions)
	subjects := make(map[string]*subjectAccumulator)

	for _, attempt := range attempts {
		for _, ans := range attempt.Answers {
			q, ok := idx[ans.QuestionID]
			if !ok {
				if policy == FailUnresolved {
					return nil, fmt.Errorf("answer references unknown question %q in attempt %s", ans.QuestionID, attempt.AttemptID)
				}
				continue
			}
			sub := subjects[q.Subject]
			if sub == nil {
				sub = &subjectAccumulator{topics: make(map[string]*topicAccumulator)}
				subjects[q.Subject] = sub
			}
			topic := sub.topics[q.Topic]
			if topic == nil {
				topic = &topicAccumulator{skills: make(map[string]bool)}
				sub.topics[q.Topic] = topic
			}

			sub.possible += q.MaxMarks
			topic.possible += q.MaxMarks
			topic.attempted++
			topic.timeSpent += ans.TimeSpent
			for _, skill := range q.Skills {
				topic.skills[skill] = true
			}
			if AnswerIsCorrect(ans, q) {
				sub.earned += q.MaxMarks
				topic.earned += q.MaxMarks
			}
		}
	}

	subjectNames := make([]string, 0, len(subjects))
	for name := range subjects {
		subjectNames = append(subjectNames, name)
	}
	sort.Strings(subjectNames)

	analyses := make([]models.SubjectAnalysis, 0, len(subjectNames))
	for _, name := range subjectNames {
		sub := subjects[name]

		topicNames := make([]string, 0, len(sub.topics))
		for t := range sub.topics {
			topicNames = append(topicNames, t)
		}
		sort.Strings(topicNames)

		analysis := models.SubjectAnalysis{
			SubjectName:     name,
			TopicBreakdown:  make([]models.TopicScore, 0, len(topicNames)),
			Strengths:       []string{},
			Weaknesses:      []string{},
			Recommendations: []string{},
		}
		if sub.possible > 0 {
			analysis.OverallScore = sub.earned / sub.possible * 100
		}

		for _, t := range topicNames {
			topic := sub.topics[t]
			score := 0.0
			if topic.possible > 0 {
				score = topic.earned / topic.possible * 100
			}

			skills := make([]string, 0, len(topic.skills))
			for s := range topic.skills {
				skills = append(skills, s)
			}
			sort.Strings(skills)

			analysis.TopicBreakdown = append(analysis.TopicBreakdown, models.TopicScore{
				TopicName:          t,
				Score:              score,
				QuestionsAttempted: topic.attempted,
				TimeSpent:          topic.timeSpent,
				SkillsAssessed:     skills,
			})

			if score >= strengthCutoff {
				analysis.Strengths = append(analysis.Strengths, t)
			} else if score < weaknessCutoff {
				analysis.Weaknesses = append(analysis.Weaknesses, t)
			}
		}

		analysis.Recommendations = subjectRecommendations(analysis)
		analyses = append(analyses, analysis)
	}
	return analyses, nil
}

// subjectRecommendations builds generic score-bucket text plus named
// callouts for the subject's weak and strong topics.
func subjectRecommendations(a models.SubjectAnalysis) []string {
	recs := []string{}
	switch {
	case a.OverallScore >= strengthCutoff:
		recs = append(recs, fmt.Sprintf("Performance in %s is excellent. Move on to stretch material to maintain engagement.", a.SubjectName))
	case a.OverallScore >= weaknessCutoff:
		recs = append(recs, fmt.Sprintf("Performance in %s is on track. Consistent revision will lift it into the top band.", a.SubjectName))
	default:
		recs = append(recs, fmt.Sprintf("%s needs a structured catch-up plan starting from the fundamentals.", a.SubjectName))
	}
	for _, w := range a.Weaknesses {
		recs = append(recs, fmt.Sprintf("Prioritize extra practice on %s.", w))
	}
	for _, s := range a.Strengths {
		recs = append(recs, fmt.Sprintf("Keep the momentum going in %s.", s))
	}
	return recs
}
