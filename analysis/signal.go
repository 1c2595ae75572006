package analysis

import (
	"strings"

	"edusight-server/models"
)

// Signal thresholds. The cascade is evaluated red-first; the first match
// wins. Accuracy is a 0.0-1.0 fraction, reaction time is milliseconds.
const (
	redAccuracyBelow       = 0.60
	redReactionAbove       = 2500.0
	redFalseClicksAbove    = 5
	yellowAccuracyBelow    = 0.80
	yellowReactionAbove    = 2000.0
	yellowFalseClicksAbove = 3
	yellowRetriesAbove     = 2
)

// TypicalRangeFeedback is returned for green signals and whenever no
// domain-specific observation fires.
const TypicalRangeFeedback = "Performance is within the typical range for this activity. Keep up the regular practice!"

// EvaluateSignal maps raw game metrics to a green/yellow/red signal.
func EvaluateSignal(m models.GameMetrics) models.SignalLevel {
	if m.Accuracy < redAccuracyBelow || m.AvgReactionTime > redReactionAbove || m.FalseClicks > redFalseClicksAbove {
		return models.SignalRed
	}
	if m.Accuracy < yellowAccuracyBelow || m.AvgReactionTime > yellowReactionAbove || m.FalseClicks > yellowFalseClicksAbove || m.Retries > yellowRetriesAbove {
		return models.SignalYellow
	}
	return models.SignalGreen
}

// observation is one domain-specific note with its firing condition.
type observation struct {
	applies func(models.GameMetrics) bool
	note    string
}

// domainObservations maps domain names (exact match) to their observation
// rules. Unrecognized domains produce no domain-specific text.
var domainObservations = map[string][]observation{
	"Attention Control": {
		{func(m models.GameMetrics) bool { return m.FalseClicks > yellowFalseClicksAbove },
			"Frequent taps on non-target items were observed, which can be a sign of impulsive responding."},
		{func(m models.GameMetrics) bool { return m.AvgReactionTime > yellowReactionAbove },
			"Response times varied noticeably, suggesting attention may fluctuate during sustained tasks."},
	},
	"Short-Term Memory": {
		{func(m models.GameMetrics) bool { return m.Accuracy < yellowAccuracyBelow },
			"Recall accuracy dipped as sequences grew longer."},
		{func(m models.GameMetrics) bool { return m.Retries > yellowRetriesAbove },
			"Several rounds needed repeating, which may indicate the items were hard to hold in mind."},
	},
	"Processing Speed": {
		{func(m models.GameMetrics) bool { return m.AvgReactionTime > redReactionAbove },
			"Responses were considerably slower than is typical for this age band."},
		{func(m models.GameMetrics) bool { return m.AvgReactionTime > yellowReactionAbove },
			"Responses took longer than expected, though accuracy was maintained."},
	},
	"Sound Discrimination": {
		{func(m models.GameMetrics) bool { return m.Accuracy < yellowAccuracyBelow },
			"Similar-sounding items were often confused, which is worth monitoring over time."},
		{func(m models.GameMetrics) bool { return m.Retries > yellowRetriesAbove },
			"Audio prompts were replayed frequently before answering."},
	},
	"Visual Tracking": {
		{func(m models.GameMetrics) bool { return m.FalseClicks > yellowFalseClicksAbove },
			"Selections often landed near rather than on the moving target."},
		{func(m models.GameMetrics) bool { return m.Accuracy < yellowAccuracyBelow },
			"Targets were lost when the movement pattern changed direction."},
	},
	"Hand-Eye Coordination": {
		{func(m models.GameMetrics) bool { return m.FalseClicks > yellowFalseClicksAbove },
			"Extra taps around the target area suggest fine-motor precision is still developing."},
		{func(m models.GameMetrics) bool { return m.AvgReactionTime > yellowReactionAbove },
			"Aiming took extra time, particularly on smaller targets."},
	},
}

// GenerateFeedback builds human-readable feedback for a domain result.
// Green signals always get the typical-range message. For yellow/red, the
// domain's firing observations are joined with spaces; if none fire (an
// unrecognized domain, or thresholds crossed only by rules the domain does
// not check) the typical-range message is returned unchanged.
func GenerateFeedback(domain string, signal models.SignalLevel, m models.GameMetrics) string {
	if signal == models.SignalGreen {
		return TypicalRangeFeedback
	}

	var notes []string
	for _, obs := range domainObservations[domain] {
		if obs.applies(m) {
			notes = append(notes, obs.note)
		}
	}
	if len(notes) == 0 {
		return TypicalRangeFeedback
	}
	return strings.Join(notes, " ")
}

// Evaluate is the full client-side evaluation: signal plus feedback,
// packaged as the DomainResult the UI consumes.
func Evaluate(domain, emoji string, m models.GameMetrics) models.DomainResult {
	signal := EvaluateSignal(m)
	return models.DomainResult{
		Domain:   domain,
		Emoji:    emoji,
		Signal:   signal,
		Feedback: GenerateFeedback(domain, signal, m),
		Metrics:  m,
	}
}
