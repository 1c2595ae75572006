package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"edusight-server/analysis"
	"edusight-server/models"
)

// EvaluateSignal handles POST /api/v1/signal: one domain's metrics in,
// a traffic-light evaluation out. The result is also recorded for the
// student's history when a name was supplied.
func EvaluateSignal(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SignalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := analysis.Evaluate(req.Domain, req.Emoji, req.Metrics)

		if req.StudentName != "" {
			if err := deps.Results.Save(c.Request.Context(), req.StudentName, result); err != nil {
				deps.Log.Error("persist domain result",
					zap.String("student", req.StudentName),
					zap.String("domain", req.Domain),
					zap.Error(err))
			}
		}
		c.JSON(http.StatusOK, result)
	}
}

// AssessSkills handles POST /api/v1/skills/assess: raw attempt history
// in, skill/subject/competency aggregates out. No LLM involvement.
func AssessSkills(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SkillAggregationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		policy := analysis.ParseUnresolvedPolicy(req.UnresolvedPolicy)

		questions, err := deps.Questions.All(c.Request.Context())
		if err != nil {
			deps.Log.Error("load question bank", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "question bank unavailable"})
			return
		}

		skills, err := analysis.AggregateSkills(req.Attempts, questions, policy)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		subjects, err := analysis.AggregateBySubject(req.Attempts, questions, policy)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, models.SkillAggregationResponse{
			Skills:          skills,
			Subjects:        subjects,
			CompetencyAreas: analysis.ClassifyCompetency(skills),
		})
	}
}

// GetStudentReports handles GET /api/v1/students/:name/reports.
func GetStudentReports(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		limit := parseLimit(c.Query("limit"), 20)

		reports, err := deps.Reports.ListByStudent(c.Request.Context(), name, limit)
		if err != nil {
			deps.Log.Error("list student reports", zap.String("student", name), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reports"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"student": name, "reports": reports})
	}
}

// Healthz reports server, model and cache status. The model backend
// being down is reported but never fails the health check; the fallback
// keeps the API usable.
func Healthz(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{
			"status": "ok",
			"model":  deps.Analyzer.ModelID(),
		}
		if deps.Cache.Enabled() {
			if err := deps.Cache.Ping(c.Request.Context()); err != nil {
				status["cache"] = "unavailable"
			} else {
				status["cache"] = "ok"
			}
		} else {
			status["cache"] = "disabled"
		}
		c.JSON(http.StatusOK, status)
	}
}

func parseLimit(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 100 {
		return def
	}
	return n
}
