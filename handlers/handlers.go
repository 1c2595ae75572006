package handlers

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"edusight-server/cache"
	"edusight-server/db"
	"edusight-server/llm"
	"edusight-server/models"
)

// Deps carries everything the handlers need. All stores are interfaces
// so tests can swap in fakes without a database.
type Deps struct {
	Reports    db.ReportStore
	Questions  db.QuestionStore
	Results    db.DomainResultStore
	Analyzer   *llm.Analyzer
	Cache      *cache.ResponseCache
	Log        *zap.Logger
	LLMTimeout time.Duration
}

// storeReport persists an analysis run. Persistence failures are logged
// and swallowed; the client already has its response.
func (d *Deps) storeReport(ctx context.Context, studentName, analysisType, modelUsed string, fallback bool, input any, report any) {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		d.Log.Error("marshal report input", zap.Error(err))
		return
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		d.Log.Error("marshal report body", zap.Error(err))
		return
	}
	err = d.Reports.Save(ctx, &models.AnalysisReport{
		StudentName:  studentName,
		AnalysisType: analysisType,
		ModelUsed:    modelUsed,
		Fallback:     fallback,
		Input:        inputJSON,
		Report:       reportJSON,
	})
	if err != nil {
		d.Log.Error("persist analysis report",
			zap.String("student", studentName),
			zap.String("type", analysisType),
			zap.Error(err))
	}
}

// cacheSet stores a response body, logging failures at debug only.
func (d *Deps) cacheSet(ctx context.Context, key string, body any) {
	if !d.Cache.Enabled() {
		return
	}
	data, err := json.Marshal(body)
	if err != nil {
		return
	}
	if err := d.Cache.Set(ctx, key, data); err != nil {
		d.Log.Debug("cache set failed", zap.String("key", key), zap.Error(err))
	}
}
