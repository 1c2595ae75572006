package analysis

import (
	"fmt"

	"edusight-server/models"
	"edusight-server/utils"
)

// Per-dimension offsets applied to the mean game score when estimating
// skillsets. Values are fixed; results are clamped to [0,100].
var skillsetOffsets = struct {
	cognitive, attention, memory, problemSolving, processingSpeed float64
}{
	cognitive:       0,
	attention:       -5,
	memory:          3,
	problemSolving:  -2,
	processingSpeed: 2,
}

// Game score buckets for assessment text.
const (
	gameStrongCutoff = 80.0
	gameSolidCutoff  = 65.0
	gameWeakCutoff   = 50.0
)

// ComposeGameAnalysis builds the game-based fallback response. The
// aggregate slices may be empty (no answers supplied); the shape stays
// structurally complete either way.
func ComposeGameAnalysis(req models.GameAnalysisRequest, skills []models.SkillAssessment, subjects []models.SubjectAnalysis, competencies []models.CompetencyArea) models.GameAnalysisResponse {
	scores := make([]float64, 0, len(req.GameResults))
	for _, g := range req.GameResults {
		scores = append(scores, g.Score)
	}
	avgScore := utils.Mean(scores)

	strengths := []string{}
	weaknesses := []string{}
	for _, g := range req.GameResults {
		if g.Score >= gameStrongCutoff {
			strengths = append(strengths, fmt.Sprintf("Strong performance in %s", g.Game))
		} else if g.Score < gameWeakCutoff {
			weaknesses = append(weaknesses, fmt.Sprintf("Found %s challenging this session", g.Game))
		}
	}

	var assessment string
	switch {
	case avgScore >= gameStrongCutoff:
		assessment = fmt.Sprintf("%s showed strong performance across the play session, responding quickly and accurately.", req.StudentName)
		strengths = append(strengths, "Consistent accuracy under time pressure")
	case avgScore >= gameSolidCutoff:
		assessment = fmt.Sprintf("%s showed solid, steady performance across the play session.", req.StudentName)
		strengths = append(strengths, "Steady engagement throughout the session")
	case avgScore >= gameWeakCutoff:
		assessment = fmt.Sprintf("%s completed the session with mixed results; some activities came easier than others.", req.StudentName)
	default:
		assessment = fmt.Sprintf("%s found this session challenging. The activities flagged below are good places to focus.", req.StudentName)
		weaknesses = append(weaknesses, "Overall accuracy was below the typical range this session")
	}

	recommendations := []string{
		"Keep play sessions short and regular rather than long and occasional.",
	}
	for _, w := range weaknesses {
		recommendations = append(recommendations, w+". Revisit this activity at an easier level.")
	}
	if avgScore >= gameStrongCutoff {
		recommendations = append(recommendations, "Introduce the next difficulty tier to keep the games challenging.")
	}

	return models.GameAnalysisResponse{
		OverallAssessment: assessment,
		Strengths:         strengths,
		Weaknesses:        weaknesses,
		Skillsets: models.Skillsets{
			Cognitive:       utils.Clamp(avgScore+skillsetOffsets.cognitive, 0, 100),
			Attention:       utils.Clamp(avgScore+skillsetOffsets.attention, 0, 100),
			Memory:          utils.Clamp(avgScore+skillsetOffsets.memory, 0, 100),
			ProblemSolving:  utils.Clamp(avgScore+skillsetOffsets.problemSolving, 0, 100),
			ProcessingSpeed: utils.Clamp(avgScore+skillsetOffsets.processingSpeed, 0, 100),
		},
		SkillAssessments: skills,
		SubjectAnalyses:  subjects,
		CompetencyAreas:  competencies,
		Recommendations:  recommendations,
		Metadata:         newMetadata(TypeGameBased, req.StudentName, ConfidenceFromScore(avgScore, 75, 95)),
	}
}
