package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"edusight-server/ingestion"
)

// ListReports handles GET /admin/reports: the most recent analysis runs
// across all students.
func ListReports(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := parseLimit(c.Query("limit"), 50)
		reports, err := deps.Reports.ListRecent(c.Request.Context(), limit)
		if err != nil {
			deps.Log.Error("list recent reports", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reports"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reports": reports})
	}
}

// TriggerIngestion handles POST /admin/ingest: reload the question bank
// from disk and swap it into the database.
func TriggerIngestion(deps *Deps, bankPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		questions, err := ingestion.LoadQuestionBank(bankPath)
		if err != nil {
			deps.Log.Error("question bank ingestion failed", zap.Error(err))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		if err := deps.Questions.ReplaceAll(c.Request.Context(), questions); err != nil {
			deps.Log.Error("question bank swap failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store question bank"})
			return
		}
		deps.Log.Info("question bank ingested",
			zap.Int("questions", len(questions)),
			zap.String("actor", c.GetString("user_email")))
		c.JSON(http.StatusOK, gin.H{"ingested": len(questions)})
	}
}
