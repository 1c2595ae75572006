package llm

import (
	"encoding/json"
	"fmt"

	"edusight-server/models"
)

const analysisSystemPrompt = `You are an educational assessment assistant for children.
You receive structured assessment data and must respond with a single JSON object and nothing else.
Do not wrap the JSON in markdown fences. Do not add commentary.
Never produce a medical diagnosis; describe risks as screening signals only.`

// GameAnalysisPrompt renders the game-based request, with any
// precomputed aggregates, into a user prompt.
func GameAnalysisPrompt(req models.GameAnalysisRequest, skills []models.SkillAssessment, subjects []models.SubjectAnalysis) (string, error) {
	payload := map[string]any{
		"student":      req,
		"skillStats":   skills,
		"subjectStats": subjects,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal game prompt payload: %w", err)
	}
	return fmt.Sprintf(`Analyze this child's learning-game session and produce a JSON object with keys:
overallAssessment (string), strengths (string array), weaknesses (string array),
skillsets (object with numeric cognitive, attention, memory, problemSolving, processingSpeed scores 0-100),
recommendations (string array).

Assessment data:
%s`, data), nil
}

// AdvancedAnalysisPrompt renders the academic request for grades 6-12.
func AdvancedAnalysisPrompt(req models.AdvancedAnalysisRequest) (string, error) {
	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal advanced prompt payload: %w", err)
	}
	return fmt.Sprintf(`Analyze this student's subject marks and teacher ratings. Produce a JSON object with keys:
studentInfo, subjectAnalysis (array of per-subject reports with percentage and letterGrade),
overallPerformance (with overallPercentage, performanceLevel, strengths, weaknesses, studyPlan),
careerGuidance (with suitableStreams and emergingOptions).

Assessment data:
%s`, data), nil
}

// EarlyChildhoodPrompt renders the developmental questionnaire for ages 3-7.
func EarlyChildhoodPrompt(req models.EarlyChildhoodRequest) (string, error) {
	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal early-childhood prompt payload: %w", err)
	}
	return fmt.Sprintf(`Analyze this early-childhood developmental questionnaire (items rated 1-5). Produce a JSON object with keys:
studentInfo, developmentalProfile (with sectionAverages, overallAverage, overallDevelopmentLevel, developmentalAge, areasOfStrength, areasOfConcern),
riskAssessments (adhdRisk, dyslexiaRisk, dysgraphiaRisk, intellectualDisabilityRisk, autismRisk, apraxiaOfSpeechRisk, each with riskLevel low/moderate/high),
interventionPlan (recommendedServices, homeActivities, reassessmentRecommended).

Questionnaire data:
%s`, data), nil
}
