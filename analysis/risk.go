package analysis

import (
	"math"

	"edusight-server/models"
	"edusight-server/utils"
)

// RiskCategory names one of the six fixed developmental-concern
// categories. These are heuristic signals, not diagnoses.
type RiskCategory string

const (
	RiskADHD                   RiskCategory = "adhd"
	RiskDyslexia               RiskCategory = "dyslexia"
	RiskDysgraphia             RiskCategory = "dysgraphia"
	RiskIntellectualDisability RiskCategory = "intellectualDisability"
	RiskAutism                 RiskCategory = "autism"
	RiskApraxiaOfSpeech        RiskCategory = "apraxiaOfSpeech"
)

// riskParams is the single source of truth per category: which section
// average feeds the formula, the fixed threshold, and the multiplier.
// Both the reported score and the level decision derive from this one
// table, so they cannot diverge.
type riskParams struct {
	threshold  float64
	multiplier float64
}

var riskTable = map[RiskCategory]riskParams{
	RiskADHD:                   {threshold: 30, multiplier: 10},
	RiskDyslexia:               {threshold: 25, multiplier: 10},
	RiskDysgraphia:             {threshold: 20, multiplier: 10},
	RiskIntellectualDisability: {threshold: 25, multiplier: 10},
	RiskAutism:                 {threshold: 30, multiplier: 10},
	RiskApraxiaOfSpeech:        {threshold: 25, multiplier: 8},
}

// riskConfidence holds fixed display values per level. These are NOT
// statistical confidence intervals and must not be computed from data.
var riskConfidence = map[models.RiskLevel]float64{
	models.RiskHigh:     85,
	models.RiskModerate: 75,
	models.RiskLow:      90,
}

var riskIndicators = map[RiskCategory][]string{
	RiskADHD: {
		"Difficulty sustaining attention through the questionnaire's attention items",
		"Teacher-rated focus scores below the expected range for age",
	},
	RiskDyslexia: {
		"Language scores below the expected range for age",
		"Difficulty with sound-letter association items",
	},
	RiskDysgraphia: {
		"Fine-motor scores below the expected range for age",
		"Difficulty with drawing and writing-readiness items",
	},
	RiskIntellectualDisability: {
		"Overall developmental average below the expected range",
		"Consistent low ratings across multiple domains",
	},
	RiskAutism: {
		"Social interaction scores below the expected range for age",
		"Limited peer engagement reported in social items",
	},
	RiskApraxiaOfSpeech: {
		"Speech production items rated below the expected range",
		"Gap between language understanding and spoken output",
	},
}

var riskRecommendations = map[RiskCategory]map[models.RiskLevel]string{
	RiskADHD: {
		models.RiskHigh:     "A professional attention assessment is recommended. Short, structured activities with movement breaks can help in the meantime.",
		models.RiskModerate: "Monitor attention over the next term and favor short, varied tasks.",
		models.RiskLow:      "Attention development appears typical. Continue age-appropriate focus games.",
	},
	RiskDyslexia: {
		models.RiskHigh:     "A reading-readiness screening with a specialist is recommended. Daily phonological play supports progress.",
		models.RiskModerate: "Increase rhyming, letter-sound and story-retelling activities and re-check next term.",
		models.RiskLow:      "Early literacy development appears typical. Keep up daily shared reading.",
	},
	RiskDysgraphia: {
		models.RiskHigh:     "An occupational-therapy consult for fine-motor skills is recommended.",
		models.RiskModerate: "Add daily tracing, cutting and bead-threading practice and re-check next term.",
		models.RiskLow:      "Fine-motor development appears typical. Continue drawing and building play.",
	},
	RiskIntellectualDisability: {
		models.RiskHigh:     "A comprehensive developmental evaluation is recommended to guide supports.",
		models.RiskModerate: "Provide additional scaffolding across activities and reassess within the term.",
		models.RiskLow:      "Overall development appears typical for age.",
	},
	RiskAutism: {
		models.RiskHigh:     "A social-communication evaluation is recommended. Structured small-group play can support development now.",
		models.RiskModerate: "Encourage guided peer play and monitor social engagement over the term.",
		models.RiskLow:      "Social development appears typical. Continue group activities.",
	},
	RiskApraxiaOfSpeech: {
		models.RiskHigh:     "A speech-language pathology assessment is recommended.",
		models.RiskModerate: "Increase songs, rhymes and imitation games and monitor speech clarity.",
		models.RiskLow:      "Speech development appears typical for age.",
	},
}

// CalculateRisk classifies one category from its section average (1-5).
// score = max(0, threshold - sectionAverage*multiplier). Ratings bottom
// out at 1, so the attainable maximum score is threshold - multiplier;
// the level cutoffs are fractions of that attainable range. Level and
// score derive from the same table entry, so they cannot diverge.
func CalculateRisk(category RiskCategory, sectionAverage float64) models.RiskAssessment {
	p := riskTable[category]
	score := math.Max(0, p.threshold-sectionAverage*p.multiplier)
	attainable := p.threshold - p.multiplier

	var level models.RiskLevel
	switch {
	case score >= attainable*0.7:
		level = models.RiskHigh
	case score >= attainable*0.4:
		level = models.RiskModerate
	default:
		level = models.RiskLow
	}

	indicators := []string{}
	if level != models.RiskLow {
		indicators = append(indicators, riskIndicators[category]...)
	}

	return models.RiskAssessment{
		RiskLevel:      level,
		Confidence:     riskConfidence[level],
		Indicators:     indicators,
		Score:          score,
		Threshold:      p.threshold,
		Recommendation: riskRecommendations[category][level],
	}
}

// Developmental level cutoffs over the 1-5 overall average.
const (
	ageAppropriateCutoff = 4.0
	concernsCutoff       = 3.0
	strengthSectionCutoff = 3.5
	concernSectionCutoff  = 3.0
)

// SectionAverages computes the per-domain means of the questionnaire.
func ComputeSectionAverages(a models.DevelopmentalAssessment) models.SectionAverages {
	return models.SectionAverages{
		Attention: utils.MeanInts(a.Attention),
		Language:  utils.MeanInts(a.Language),
		Cognitive: utils.MeanInts(a.Cognitive),
		Motor:     utils.MeanInts(a.Motor),
		Social:    utils.MeanInts(a.Social),
	}
}

// sectionList pairs display names with values, in fixed order.
func sectionList(s models.SectionAverages) []struct {
	Name  string
	Value float64
} {
	return []struct {
		Name  string
		Value float64
	}{
		{"Attention", s.Attention},
		{"Language", s.Language},
		{"Cognitive", s.Cognitive},
		{"Motor", s.Motor},
		{"Social", s.Social},
	}
}

// BuildDevelopmentalProfile derives the overall profile from section
// averages and chronological age. The 3.0-3.5 band lands in neither the
// strength nor the concern list, by design.
func BuildDevelopmentalProfile(sections models.SectionAverages, chronologicalAge int) models.DevelopmentalProfile {
	overall := utils.Mean([]float64{
		sections.Attention, sections.Language, sections.Cognitive, sections.Motor, sections.Social,
	})

	var level string
	switch {
	case overall >= ageAppropriateCutoff:
		level = "age-appropriate"
	case overall >= concernsCutoff:
		level = "age-appropriate-with-concerns"
	default:
		level = "below-age-appropriate"
	}

	strengths := []string{}
	concerns := []string{}
	for _, sec := range sectionList(sections) {
		if sec.Value >= strengthSectionCutoff {
			strengths = append(strengths, sec.Name)
		} else if sec.Value < concernSectionCutoff {
			concerns = append(concerns, sec.Name)
		}
	}

	return models.DevelopmentalProfile{
		SectionAverages:         sections,
		OverallAverage:          overall,
		OverallDevelopmentLevel: level,
		DevelopmentalAge:        math.Max(3.0, float64(chronologicalAge)-(ageAppropriateCutoff-overall)*0.5),
		AreasOfStrength:         strengths,
		AreasOfConcern:          concerns,
	}
}

// AssessAllRisks runs the classifier for every category against its
// designated section average.
func AssessAllRisks(sections models.SectionAverages, overallAverage float64) models.RiskAssessments {
	return models.RiskAssessments{
		ADHD:                   CalculateRisk(RiskADHD, sections.Attention),
		Dyslexia:               CalculateRisk(RiskDyslexia, sections.Language),
		Dysgraphia:             CalculateRisk(RiskDysgraphia, sections.Motor),
		IntellectualDisability: CalculateRisk(RiskIntellectualDisability, overallAverage),
		Autism:                 CalculateRisk(RiskAutism, sections.Social),
		ApraxiaOfSpeech:        CalculateRisk(RiskApraxiaOfSpeech, sections.Language),
	}
}

// serviceCutoff triggers the conditional intervention services.
const serviceCutoff = 2.5

// BuildInterventionPlan assembles the plan. Services are conditionally
// included objects: absent entirely when the trigger is false, never null.
func BuildInterventionPlan(profile models.DevelopmentalProfile) models.InterventionPlan {
	services := []models.ServiceRecommendation{}

	if profile.OverallAverage < serviceCutoff {
		services = append(services, models.ServiceRecommendation{
			Service:   "Early Intervention Program",
			Reason:    "Overall development is well below the expected range for age.",
			Frequency: "Weekly",
		})
	}
	if profile.SectionAverages.Motor < serviceCutoff {
		services = append(services, models.ServiceRecommendation{
			Service:   "Occupational Therapy",
			Reason:    "Motor skills are well below the expected range for age.",
			Frequency: "Weekly",
		})
	}
	if profile.SectionAverages.Language < serviceCutoff {
		services = append(services, models.ServiceRecommendation{
			Service:   "Speech-Language Therapy",
			Reason:    "Language skills are well below the expected range for age.",
			Frequency: "Twice weekly",
		})
	}
	if profile.SectionAverages.Social < serviceCutoff {
		services = append(services, models.ServiceRecommendation{
			Service:   "Behavioral Support",
			Reason:    "Social engagement is well below the expected range for age.",
			Frequency: "Weekly",
		})
	}

	timeframe := "6 months"
	if profile.OverallAverage < concernsCutoff {
		timeframe = "3 months"
	}

	return models.InterventionPlan{
		RecommendedServices: services,
		HomeActivities: []string{
			"Read together for 15 minutes daily, pausing to talk about the pictures.",
			"Play turn-taking games to practice waiting and attention.",
			"Practice drawing shapes and threading beads for fine-motor control.",
			"Narrate daily routines to build vocabulary and sequencing.",
		},
		ReassessmentRecommended: timeframe,
	}
}
