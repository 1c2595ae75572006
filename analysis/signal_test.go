package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"edusight-server/models"
)

// cleanMetrics passes every threshold with room to spare.
func cleanMetrics() models.GameMetrics {
	return models.GameMetrics{Accuracy: 0.95, AvgReactionTime: 900, FalseClicks: 0, Retries: 0}
}

func TestEvaluateSignal_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.GameMetrics)
		want   models.SignalLevel
	}{
		{"all clean", func(m *models.GameMetrics) {}, models.SignalGreen},

		// Accuracy boundaries: red below 0.60, yellow below 0.80.
		{"accuracy exactly 0.60 is not red", func(m *models.GameMetrics) { m.Accuracy = 0.60 }, models.SignalYellow},
		{"accuracy just under 0.60 is red", func(m *models.GameMetrics) { m.Accuracy = 0.5999 }, models.SignalRed},
		{"accuracy exactly 0.80 is not yellow", func(m *models.GameMetrics) { m.Accuracy = 0.80 }, models.SignalGreen},
		{"accuracy just under 0.80 is yellow", func(m *models.GameMetrics) { m.Accuracy = 0.7999 }, models.SignalYellow},

		// Reaction time boundaries: red above 2500, yellow above 2000.
		{"reaction exactly 2500 is not red", func(m *models.GameMetrics) { m.AvgReactionTime = 2500 }, models.SignalYellow},
		{"reaction above 2500 is red", func(m *models.GameMetrics) { m.AvgReactionTime = 2500.1 }, models.SignalRed},
		{"reaction exactly 2000 is not yellow", func(m *models.GameMetrics) { m.AvgReactionTime = 2000 }, models.SignalGreen},
		{"reaction above 2000 is yellow", func(m *models.GameMetrics) { m.AvgReactionTime = 2000.1 }, models.SignalYellow},

		// False click boundaries: red above 5, yellow above 3.
		{"five false clicks is not red", func(m *models.GameMetrics) { m.FalseClicks = 5 }, models.SignalYellow},
		{"six false clicks is red", func(m *models.GameMetrics) { m.FalseClicks = 6 }, models.SignalRed},
		{"three false clicks is not yellow", func(m *models.GameMetrics) { m.FalseClicks = 3 }, models.SignalGreen},
		{"four false clicks is yellow", func(m *models.GameMetrics) { m.FalseClicks = 4 }, models.SignalYellow},

		// Retries only affect yellow.
		{"two retries is not yellow", func(m *models.GameMetrics) { m.Retries = 2 }, models.SignalGreen},
		{"three retries is yellow", func(m *models.GameMetrics) { m.Retries = 3 }, models.SignalYellow},
		{"many retries never escalate to red", func(m *models.GameMetrics) { m.Retries = 50 }, models.SignalYellow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := cleanMetrics()
			tt.mutate(&m)
			assert.Equal(t, tt.want, EvaluateSignal(m))
		})
	}
}

// The signal is non-increasing in favorability as accuracy drops:
// once accuracy falls under 0.60 the signal is never green or yellow.
func TestEvaluateSignal_AccuracyMonotonicity(t *testing.T) {
	var prevRank = 3
	rank := map[models.SignalLevel]int{
		models.SignalGreen:  3,
		models.SignalYellow: 2,
		models.SignalRed:    1,
	}
	for acc := 1.0; acc >= 0; acc -= 0.01 {
		m := cleanMetrics()
		m.Accuracy = acc
		r := rank[EvaluateSignal(m)]
		assert.LessOrEqual(t, r, prevRank, "signal improved as accuracy dropped to %.2f", acc)
		if acc < 0.60 {
			assert.Equal(t, 1, r, "accuracy %.2f must be red", acc)
		}
		prevRank = r
	}
}

func TestGenerateFeedback(t *testing.T) {
	t.Run("green always gets typical-range text", func(t *testing.T) {
		got := GenerateFeedback("Attention Control", models.SignalGreen, cleanMetrics())
		assert.Equal(t, TypicalRangeFeedback, got)
	})

	t.Run("firing observations are joined with spaces", func(t *testing.T) {
		m := models.GameMetrics{Accuracy: 0.9, AvgReactionTime: 2200, FalseClicks: 4}
		got := GenerateFeedback("Attention Control", models.SignalYellow, m)
		assert.Contains(t, got, "impulsive responding")
		assert.Contains(t, got, "attention may fluctuate")
		assert.NotContains(t, got, "  ")
	})

	t.Run("unrecognized domain falls through to generic text", func(t *testing.T) {
		m := models.GameMetrics{Accuracy: 0.3}
		got := GenerateFeedback("Underwater Basket Weaving", models.SignalRed, m)
		assert.Equal(t, TypicalRangeFeedback, got)
	})

	t.Run("non-green with no firing sub-condition falls back", func(t *testing.T) {
		// Yellow purely from retries; Attention Control has no retry rule.
		m := cleanMetrics()
		m.Retries = 3
		got := GenerateFeedback("Attention Control", models.SignalYellow, m)
		assert.Equal(t, TypicalRangeFeedback, got)
	})
}

func TestEvaluate_PackagesDomainResult(t *testing.T) {
	m := models.GameMetrics{Accuracy: 0.5, AvgReactionTime: 1000}
	res := Evaluate("Short-Term Memory", "🧠", m)
	assert.Equal(t, "Short-Term Memory", res.Domain)
	assert.Equal(t, "🧠", res.Emoji)
	assert.Equal(t, models.SignalRed, res.Signal)
	assert.Equal(t, m, res.Metrics)
	assert.Contains(t, res.Feedback, "Recall accuracy")
}
