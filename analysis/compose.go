package analysis

import (
	"time"

	"edusight-server/models"
	"edusight-server/utils"
)

// FallbackModelName marks responses produced by the deterministic engine
// instead of the LLM.
const FallbackModelName = "rule-based-fallback"

// Analysis type identifiers used in metadata and report storage.
const (
	TypeGameBased      = "game-based"
	TypeAdvanced       = "advanced"
	TypeEarlyChildhood = "early-childhood"
)

// NewMetadata stamps an analysis response. analysis_date is the only
// non-deterministic field in any composer output.
func NewMetadata(analysisType, studentName, modelUsed string, confidence float64) models.Metadata {
	return models.Metadata{
		AnalysisDate:    time.Now().UTC().Format(time.RFC3339),
		ModelUsed:       modelUsed,
		StudentName:     studentName,
		AnalysisType:    analysisType,
		ConfidenceScore: confidence,
	}
}

func newMetadata(analysisType, studentName string, confidence float64) models.Metadata {
	return NewMetadata(analysisType, studentName, FallbackModelName, confidence)
}

// ConfidenceFromScore maps a 0-100 performance figure to a display
// confidence inside the given clamp range. Monotone and deterministic.
func ConfidenceFromScore(score, lo, hi float64) float64 {
	return utils.Clamp(70+score/5, lo, hi)
}
