package analysis

import (
	"edusight-server/models"
	"edusight-server/utils"
)

// ComposeEarlyChildhood wires the risk classifier outputs and the
// developmental profile into the fixed early-childhood response shape.
func ComposeEarlyChildhood(req models.EarlyChildhoodRequest) models.EarlyChildhoodResponse {
	sections := ComputeSectionAverages(req.DevelopmentalAssessment)
	profile := BuildDevelopmentalProfile(sections, req.Age)
	risks := AssessAllRisks(sections, profile.OverallAverage)
	plan := BuildInterventionPlan(profile)

	// Confidence tracks the overall 1-5 average scaled to a 0-100 figure,
	// clamped to the early-childhood range.
	confidence := utils.Clamp(75+profile.OverallAverage*4, 75, 95)

	return models.EarlyChildhoodResponse{
		StudentInfo: models.StudentInfo{
			StudentName:    req.StudentName,
			Age:            req.Age,
			Grade:          req.Grade,
			TeacherName:    req.TeacherName,
			AssessmentDate: req.AssessmentDate,
		},
		DevelopmentalProfile: profile,
		RiskAssessments:      risks,
		InterventionPlan:     plan,
		Metadata:             newMetadata(TypeEarlyChildhood, req.StudentName, confidence),
	}
}
