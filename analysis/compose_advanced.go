package analysis

import (
	"fmt"

	"edusight-server/models"
	"edusight-server/utils"
)

// letterGrade applies the fixed breakpoint table. Boundaries are
// inclusive at the top of each band: 90 is A+, 89.99 is A.
func letterGrade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B+"
	case percentage >= 60:
		return "B"
	case percentage >= 50:
		return "C"
	default:
		return "D"
	}
}

func performanceLevel(percentage float64) string {
	switch {
	case percentage >= 90:
		return "Outstanding"
	case percentage >= 80:
		return "Excellent"
	case percentage >= 70:
		return "Good"
	case percentage >= 60:
		return "Satisfactory"
	case percentage >= 50:
		return "Needs Improvement"
	default:
		return "Requires Attention"
	}
}

// Stream suitability offsets added to the overall percentage, capped at 95.
var streamOffsets = []struct {
	Stream string
	Offset float64
}{
	{"Science", 5},
	{"Commerce", 8},
	{"Humanities", 10},
	{"Vocational", 12},
}

// Rating cutoffs for the five 1-5 assessment parameters.
const (
	paramStrongRating = 4
	paramWeakRating   = 2
)

type ratedParameter struct {
	Label  string
	Rating int
}

func ratedParameters(p models.AssessmentParameters) []ratedParameter {
	return []ratedParameter{
		{"application-based questions", p.ApplicationBasedQuestions},
		{"theory questions", p.TheoryQuestions},
		{"effort put in", p.EffortPutIn},
		{"problem solving and case studies", p.ProblemSolvingCaseStudy},
		{"recall questions", p.RecallQuestions},
	}
}

// ComposeAdvancedAnalysis builds the academic fallback response for
// grades 6-12.
func ComposeAdvancedAnalysis(req models.AdvancedAnalysisRequest) models.AdvancedAnalysisResponse {
	var totalObtained float64
	subjectReports := make([]models.SubjectReport, 0, len(req.SubjectAssessments))
	overallStrengths := []string{}
	overallWeaknesses := []string{}

	for _, s := range req.SubjectAssessments {
		totalObtained += s.ObtainedMarks
		pct := s.ObtainedMarks / s.TotalMarks * 100

		strengths := []string{}
		focus := []string{}
		for _, p := range ratedParameters(s.AssessmentParameters) {
			if p.Rating >= paramStrongRating {
				strengths = append(strengths, fmt.Sprintf("Handles %s well", p.Label))
			} else if p.Rating <= paramWeakRating {
				focus = append(focus, fmt.Sprintf("Needs more practice with %s", p.Label))
			}
		}

		subjectReports = append(subjectReports, models.SubjectReport{
			SubjectName:   s.SubjectName,
			ObtainedMarks: s.ObtainedMarks,
			TotalMarks:    s.TotalMarks,
			Percentage:    pct,
			LetterGrade:   letterGrade(pct),
			Strengths:     strengths,
			FocusAreas:    focus,
		})

		if pct >= strengthCutoff {
			overallStrengths = append(overallStrengths, s.SubjectName)
		} else if pct < weaknessCutoff {
			overallWeaknesses = append(overallWeaknesses, s.SubjectName)
		}
	}

	n := float64(len(req.SubjectAssessments))
	overallPct := totalObtained / (n * 100) * 100

	immediate := []string{}
	for _, w := range overallWeaknesses {
		immediate = append(immediate, fmt.Sprintf("Schedule focused revision sessions for %s this week.", w))
	}
	if len(immediate) == 0 {
		immediate = append(immediate, "Review this term's test papers and rework any lost marks.")
	}

	studyPlan := models.StudyPlan{
		ImmediateActions: immediate,
		ShortTermGoals: []string{
			fmt.Sprintf("Raise the overall percentage above %.0f%% by the next assessment cycle.", utils.Clamp(overallPct+10, 0, 100)),
			"Complete one timed practice paper per subject every two weeks.",
		},
		LongTermStrategy: []string{
			"Build a revision timetable that rotates subjects weekly.",
			"Track marks per topic to catch slipping areas early.",
		},
	}

	streams := make([]models.StreamSuitability, 0, len(streamOffsets))
	for _, s := range streamOffsets {
		streams = append(streams, models.StreamSuitability{
			Stream:           s.Stream,
			SuitabilityScore: utils.Clamp(overallPct+s.Offset, 0, 95),
		})
	}

	return models.AdvancedAnalysisResponse{
		StudentInfo: models.StudentInfo{
			StudentID:    req.StudentID,
			StudentName:  req.StudentName,
			Grade:        req.Grade,
			AcademicYear: req.AcademicYear,
		},
		SubjectAnalysis: subjectReports,
		OverallPerformance: models.OverallPerformance{
			OverallPercentage: overallPct,
			PerformanceLevel:  performanceLevel(overallPct),
			Strengths:         overallStrengths,
			Weaknesses:        overallWeaknesses,
			StudyPlan:         studyPlan,
		},
		CareerGuidance: models.CareerGuidance{
			SuitableStreams: streams,
			EmergingOptions: []string{
				"Data and analytics",
				"Design and media",
				"Applied sciences",
			},
		},
		Metadata: newMetadata(TypeAdvanced, req.StudentName, ConfidenceFromScore(overallPct, 70, 95)),
	}
}
