package llm

import (
	"context"
	"encoding/json"

	"edusight-server/models"
)

// Analysis calls run deterministic and bounded.
const (
	analysisMaxTokens   = 2048
	analysisTemperature = 0.0
)

// Analyzer runs typed analysis calls against a Provider. It owns prompt
// construction, schema enforcement and unmarshaling; callers decide what
// to do when an error demands the rule-based fallback.
type Analyzer struct {
	provider Provider
}

func NewAnalyzer(p Provider) *Analyzer {
	return &Analyzer{provider: p}
}

// ModelID reports the underlying model identifier for metadata stamping.
func (a *Analyzer) ModelID() string {
	return a.provider.ModelID()
}

func (a *Analyzer) generate(ctx context.Context, user string, schema *Schema, out any) error {
	resp, err := a.provider.Generate(ctx, Request{
		System:      analysisSystemPrompt,
		User:        user,
		Schema:      schema,
		MaxTokens:   analysisMaxTokens,
		Temperature: analysisTemperature,
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return &ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return nil
}

// AnalyzeGame asks the model for a game-based analysis. The precomputed
// aggregates are included in the prompt so the model grounds its text in
// the same numbers the fallback composer would use.
func (a *Analyzer) AnalyzeGame(ctx context.Context, req models.GameAnalysisRequest, skills []models.SkillAssessment, subjects []models.SubjectAnalysis) (*models.GameAnalysisResponse, error) {
	prompt, err := GameAnalysisPrompt(req, skills, subjects)
	if err != nil {
		return nil, &ErrInvalidResponse{Err: err}
	}
	var out models.GameAnalysisResponse
	if err := a.generate(ctx, prompt, GameAnalysisSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeAdvanced asks the model for an academic analysis (grades 6-12).
func (a *Analyzer) AnalyzeAdvanced(ctx context.Context, req models.AdvancedAnalysisRequest) (*models.AdvancedAnalysisResponse, error) {
	prompt, err := AdvancedAnalysisPrompt(req)
	if err != nil {
		return nil, &ErrInvalidResponse{Err: err}
	}
	var out models.AdvancedAnalysisResponse
	if err := a.generate(ctx, prompt, AdvancedAnalysisSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeEarlyChildhood asks the model for a developmental screening
// analysis (ages 3-7).
func (a *Analyzer) AnalyzeEarlyChildhood(ctx context.Context, req models.EarlyChildhoodRequest) (*models.EarlyChildhoodResponse, error) {
	prompt, err := EarlyChildhoodPrompt(req)
	if err != nil {
		return nil, &ErrInvalidResponse{Err: err}
	}
	var out models.EarlyChildhoodResponse
	if err := a.generate(ctx, prompt, EarlyChildhoodSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
