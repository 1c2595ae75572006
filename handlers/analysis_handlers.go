package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"edusight-server/analysis"
	"edusight-server/cache"
	"edusight-server/models"
	"edusight-server/utils"
)

// AnalyzeGame handles POST /api/v1/analyze. The model path is attempted
// first; any model failure degrades to the rule-based composer so the
// endpoint never 502s because Ollama is down.
func AnalyzeGame(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.GameAnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		key, hit := deps.cacheLookup(c, analysis.TypeGameBased, req)
		if hit {
			return
		}

		questions, err := deps.Questions.All(c.Request.Context())
		if err != nil {
			deps.Log.Error("load question bank", zap.Error(err))
			questions = nil
		}

		var attempts []models.ExamAttempt
		if len(req.Answers) > 0 {
			attempts = []models.ExamAttempt{
				analysis.ResolveGameAnswers(req.StudentName, req.Answers, questions),
			}
		}
		// Unresolved answers are skipped, matching the documented default.
		skills, _ := analysis.AggregateSkills(attempts, questions, analysis.SkipUnresolved)
		subjects, _ := analysis.AggregateBySubject(attempts, questions, analysis.SkipUnresolved)
		competencies := analysis.ClassifyCompetency(skills)

		var scores []float64
		for _, g := range req.GameResults {
			scores = append(scores, g.Score)
		}
		avgScore := utils.Mean(scores)

		ctx, cancel := context.WithTimeout(c.Request.Context(), deps.LLMTimeout)
		defer cancel()

		resp, err := deps.Analyzer.AnalyzeGame(ctx, req, skills, subjects)
		fallback := err != nil
		if fallback {
			deps.Log.Warn("model analysis failed, using fallback",
				zap.String("type", analysis.TypeGameBased),
				zap.Error(err))
			composed := analysis.ComposeGameAnalysis(req, skills, subjects, competencies)
			resp = &composed
		} else {
			resp.SkillAssessments = skills
			resp.SubjectAnalyses = subjects
			resp.CompetencyAreas = competencies
			resp.Metadata = analysis.NewMetadata(analysis.TypeGameBased, req.StudentName,
				deps.Analyzer.ModelID(), analysis.ConfidenceFromScore(avgScore, 75, 95))
		}

		deps.storeReport(c.Request.Context(), req.StudentName, analysis.TypeGameBased,
			resp.Metadata.ModelUsed, fallback, req, resp)
		deps.cacheSet(c.Request.Context(), key, resp)
		c.JSON(http.StatusOK, resp)
	}
}

// AnalyzeAdvanced handles POST /api/v1/analyze-advanced (grades 6-12).
func AnalyzeAdvanced(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AdvancedAnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		key, hit := deps.cacheLookup(c, analysis.TypeAdvanced, req)
		if hit {
			return
		}

		var totalObtained float64
		for _, s := range req.SubjectAssessments {
			totalObtained += s.ObtainedMarks
		}
		overallPct := totalObtained / (float64(len(req.SubjectAssessments)) * 100) * 100

		ctx, cancel := context.WithTimeout(c.Request.Context(), deps.LLMTimeout)
		defer cancel()

		resp, err := deps.Analyzer.AnalyzeAdvanced(ctx, req)
		fallback := err != nil
		if fallback {
			deps.Log.Warn("model analysis failed, using fallback",
				zap.String("type", analysis.TypeAdvanced),
				zap.Error(err))
			composed := analysis.ComposeAdvancedAnalysis(req)
			resp = &composed
		} else {
			resp.Metadata = analysis.NewMetadata(analysis.TypeAdvanced, req.StudentName,
				deps.Analyzer.ModelID(), analysis.ConfidenceFromScore(overallPct, 70, 95))
		}

		deps.storeReport(c.Request.Context(), req.StudentName, analysis.TypeAdvanced,
			resp.Metadata.ModelUsed, fallback, req, resp)
		deps.cacheSet(c.Request.Context(), key, resp)
		c.JSON(http.StatusOK, resp)
	}
}

// AnalyzeEarly handles POST /api/v1/analyze-early (ages 3-7).
func AnalyzeEarly(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.EarlyChildhoodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		key, hit := deps.cacheLookup(c, analysis.TypeEarlyChildhood, req)
		if hit {
			return
		}

		sections := analysis.ComputeSectionAverages(req.DevelopmentalAssessment)
		overall := utils.Mean([]float64{
			sections.Attention, sections.Language, sections.Cognitive, sections.Motor, sections.Social,
		})

		ctx, cancel := context.WithTimeout(c.Request.Context(), deps.LLMTimeout)
		defer cancel()

		resp, err := deps.Analyzer.AnalyzeEarlyChildhood(ctx, req)
		fallback := err != nil
		if fallback {
			deps.Log.Warn("model analysis failed, using fallback",
				zap.String("type", analysis.TypeEarlyChildhood),
				zap.Error(err))
			composed := analysis.ComposeEarlyChildhood(req)
			resp = &composed
		} else {
			resp.Metadata = analysis.NewMetadata(analysis.TypeEarlyChildhood, req.StudentName,
				deps.Analyzer.ModelID(), utils.Clamp(75+overall*4, 75, 95))
		}

		deps.storeReport(c.Request.Context(), req.StudentName, analysis.TypeEarlyChildhood,
			resp.Metadata.ModelUsed, fallback, req, resp)
		deps.cacheSet(c.Request.Context(), key, resp)
		c.JSON(http.StatusOK, resp)
	}
}

// cacheLookup derives the cache key for the request and, on a hit,
// writes the cached body and reports hit=true. The key is derived from
// a canonical re-marshal of the bound struct so header noise and field
// order do not fragment the cache.
func (d *Deps) cacheLookup(c *gin.Context, analysisType string, req any) (string, bool) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	key := cache.Key(analysisType, body)
	if cached, ok := d.Cache.Get(c.Request.Context(), key); ok {
		c.Data(http.StatusOK, "application/json", cached)
		return key, true
	}
	return key, false
}
