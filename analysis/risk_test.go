package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edusight-server/models"
)

func ratings(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func flatAssessment(v int) models.DevelopmentalAssessment {
	return models.DevelopmentalAssessment{
		Attention: ratings(v, 5),
		Language:  ratings(v, 5),
		Cognitive: ratings(v, 5),
		Motor:     ratings(v, 8),
		Social:    ratings(v, 11),
	}
}

// The reported score, threshold and level must all derive from the same
// per-category parameters, across the full rating range.
func TestCalculateRisk_ScoreLevelConsistency(t *testing.T) {
	categories := []RiskCategory{
		RiskADHD, RiskDyslexia, RiskDysgraphia,
		RiskIntellectualDisability, RiskAutism, RiskApraxiaOfSpeech,
	}
	for _, cat := range categories {
		p := riskTable[cat]
		attainable := p.threshold - p.multiplier
		for avg := 1.0; avg <= 5.0; avg += 0.25 {
			r := CalculateRisk(cat, avg)

			assert.Equal(t, p.threshold, r.Threshold, "%s threshold at avg %.2f", cat, avg)
			assert.GreaterOrEqual(t, r.Score, 0.0)

			var wantLevel models.RiskLevel
			switch {
			case r.Score >= attainable*0.7:
				wantLevel = models.RiskHigh
			case r.Score >= attainable*0.4:
				wantLevel = models.RiskModerate
			default:
				wantLevel = models.RiskLow
			}
			assert.Equal(t, wantLevel, r.RiskLevel, "%s level at avg %.2f (score %.2f)", cat, avg, r.Score)
			assert.Equal(t, riskConfidence[r.RiskLevel], r.Confidence)

			if r.RiskLevel == models.RiskLow {
				assert.Empty(t, r.Indicators, "%s low level must carry no indicators", cat)
			} else {
				assert.NotEmpty(t, r.Indicators, "%s elevated level must carry indicators", cat)
			}
			assert.NotEmpty(t, r.Recommendation)
		}
	}
}

func TestCalculateRisk_ExactValues(t *testing.T) {
	r := CalculateRisk(RiskADHD, 2.0)
	assert.InDelta(t, 10.0, r.Score, 1e-9)
	assert.InDelta(t, 30.0, r.Threshold, 1e-9)
	assert.Equal(t, models.RiskModerate, r.RiskLevel)
	assert.InDelta(t, 75.0, r.Confidence, 1e-9)

	// Apraxia uses its own multiplier.
	r = CalculateRisk(RiskApraxiaOfSpeech, 2.0)
	assert.InDelta(t, 9.0, r.Score, 1e-9)
	assert.InDelta(t, 25.0, r.Threshold, 1e-9)

	// A high section average drives the score to the floor, never below 0.
	r = CalculateRisk(RiskDysgraphia, 5.0)
	assert.Zero(t, r.Score)
	assert.Equal(t, models.RiskLow, r.RiskLevel)
	assert.InDelta(t, 90.0, r.Confidence, 1e-9)
}

func TestBuildDevelopmentalProfile_Levels(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		wantLevel string
	}{
		{"all fours is age-appropriate", 4.0, "age-appropriate"},
		{"all threes has concerns", 3.0, "age-appropriate-with-concerns"},
		{"just under three is below", 2.99, "below-age-appropriate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := models.SectionAverages{
				Attention: tt.value, Language: tt.value, Cognitive: tt.value,
				Motor: tt.value, Social: tt.value,
			}
			profile := BuildDevelopmentalProfile(sections, 5)
			assert.Equal(t, tt.wantLevel, profile.OverallDevelopmentLevel)
		})
	}
}

func TestBuildDevelopmentalProfile_StrengthConcernBands(t *testing.T) {
	sections := models.SectionAverages{
		Attention: 4.2, // strength
		Language:  3.5, // strength, boundary inclusive
		Cognitive: 3.2, // dead zone, neither list
		Motor:     3.0, // dead zone, boundary exclusive for concerns
		Social:    2.9, // concern
	}
	profile := BuildDevelopmentalProfile(sections, 6)

	assert.Equal(t, []string{"Attention", "Language"}, profile.AreasOfStrength)
	assert.Equal(t, []string{"Social"}, profile.AreasOfConcern)
	assert.NotContains(t, profile.AreasOfStrength, "Cognitive")
	assert.NotContains(t, profile.AreasOfConcern, "Cognitive")
}

func TestBuildDevelopmentalProfile_DevelopmentalAge(t *testing.T) {
	sections := models.SectionAverages{
		Attention: 3.0, Language: 3.0, Cognitive: 3.0, Motor: 3.0, Social: 3.0,
	}
	// age 6, overall 3.0: 6 - (4.0-3.0)*0.5 = 5.5.
	profile := BuildDevelopmentalProfile(sections, 6)
	assert.InDelta(t, 5.5, profile.DevelopmentalAge, 1e-9)

	// Floor at 3.0 for very young, very low scorers.
	low := models.SectionAverages{Attention: 1, Language: 1, Cognitive: 1, Motor: 1, Social: 1}
	profile = BuildDevelopmentalProfile(low, 3)
	assert.InDelta(t, 3.0, profile.DevelopmentalAge, 1e-9)
}

// A child rated 1 on every item triggers the full escalation path.
func TestDevelopmentalLowScorerScenario(t *testing.T) {
	sections := ComputeSectionAverages(flatAssessment(1))
	require.InDelta(t, 1.0, sections.Attention, 1e-9)
	require.InDelta(t, 1.0, sections.Social, 1e-9)

	profile := BuildDevelopmentalProfile(sections, 4)
	assert.Equal(t, "below-age-appropriate", profile.OverallDevelopmentLevel)

	risks := AssessAllRisks(sections, profile.OverallAverage)
	assert.Equal(t, models.RiskHigh, risks.ADHD.RiskLevel)
	assert.Equal(t, models.RiskHigh, risks.Dyslexia.RiskLevel)
	assert.Equal(t, models.RiskHigh, risks.Autism.RiskLevel)

	plan := BuildInterventionPlan(profile)
	assert.Equal(t, "3 months", plan.ReassessmentRecommended)

	// Every conditional service fires at this severity.
	services := make([]string, 0, len(plan.RecommendedServices))
	for _, s := range plan.RecommendedServices {
		services = append(services, s.Service)
	}
	assert.Equal(t, []string{
		"Early Intervention Program",
		"Occupational Therapy",
		"Speech-Language Therapy",
		"Behavioral Support",
	}, services)
}

func TestBuildInterventionPlan_NoServicesWhenTypical(t *testing.T) {
	sections := ComputeSectionAverages(flatAssessment(4))
	profile := BuildDevelopmentalProfile(sections, 5)
	plan := BuildInterventionPlan(profile)

	assert.Empty(t, plan.RecommendedServices)
	assert.NotNil(t, plan.RecommendedServices)
	assert.Equal(t, "6 months", plan.ReassessmentRecommended)
	assert.NotEmpty(t, plan.HomeActivities)
}

func TestAssessAllRisks_SectionWiring(t *testing.T) {
	// Only language is low; dyslexia and apraxia react, dysgraphia does not.
	sections := models.SectionAverages{
		Attention: 4.5, Language: 1.0, Cognitive: 4.5, Motor: 4.5, Social: 4.5,
	}
	risks := AssessAllRisks(sections, 3.8)

	assert.Equal(t, models.RiskHigh, risks.Dyslexia.RiskLevel)
	assert.Equal(t, models.RiskHigh, risks.ApraxiaOfSpeech.RiskLevel)
	assert.Equal(t, models.RiskLow, risks.ADHD.RiskLevel)
	assert.Equal(t, models.RiskLow, risks.Dysgraphia.RiskLevel)
	assert.Equal(t, models.RiskLow, risks.Autism.RiskLevel)
}
