package llm

// The three analysis schemas pin the top-level shape of each response.
// Nested detail is checked loosely; the typed unmarshal in the analyzer
// is the final arbiter of field-level structure.

func obj(props map[string]any, required ...string) map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

func arr(items map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": items}
}

var (
	str = map[string]any{"type": "string"}
	num = map[string]any{"type": "number"}
)

// GameAnalysisSchema validates game-based analysis responses.
var GameAnalysisSchema = &Schema{
	Name: "game-analysis",
	Definition: obj(map[string]any{
		"overallAssessment": str,
		"strengths":         arr(str),
		"weaknesses":        arr(str),
		"skillsets": obj(map[string]any{
			"cognitive":       num,
			"attention":       num,
			"memory":          num,
			"problemSolving":  num,
			"processingSpeed": num,
		}, "cognitive", "attention", "memory", "problemSolving", "processingSpeed"),
		"recommendations": arr(str),
	}, "overallAssessment", "strengths", "weaknesses", "skillsets", "recommendations"),
}

// AdvancedAnalysisSchema validates academic (grade 6+) responses.
var AdvancedAnalysisSchema = &Schema{
	Name: "advanced-analysis",
	Definition: obj(map[string]any{
		"studentInfo":     map[string]any{"type": "object"},
		"subjectAnalysis": arr(map[string]any{"type": "object"}),
		"overallPerformance": obj(map[string]any{
			"overallPercentage": num,
			"performanceLevel":  str,
		}, "overallPercentage", "performanceLevel"),
		"careerGuidance": map[string]any{"type": "object"},
	}, "subjectAnalysis", "overallPerformance"),
}

// EarlyChildhoodSchema validates developmental screening responses.
var EarlyChildhoodSchema = &Schema{
	Name: "early-childhood-analysis",
	Definition: obj(map[string]any{
		"studentInfo": map[string]any{"type": "object"},
		"developmentalProfile": obj(map[string]any{
			"overallAverage":          num,
			"overallDevelopmentLevel": str,
		}, "overallAverage", "overallDevelopmentLevel"),
		"riskAssessments":  map[string]any{"type": "object"},
		"interventionPlan": map[string]any{"type": "object"},
	}, "developmentalProfile", "riskAssessments", "interventionPlan"),
}
