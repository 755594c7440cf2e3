package sentiment

// Recommendation is a pattern-derived follow-up surfaced in session
// analytics.
type Recommendation struct {
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
	Action   string `json:"action"`
}

// Recommendations derives follow-ups from a pattern and the recent
// crisis count. pattern may be nil when there is not enough history.
func Recommendations(pattern *Pattern, crisisCount int) []Recommendation {
	var recs []Recommendation

	if crisisCount > 0 {
		recs = append(recs, Recommendation{
			Type:     "crisis",
			Priority: "high",
			Message:  "Crisis language detected. Immediate support resources provided.",
			Action:   "show_resources",
		})
	}

	if pattern == nil {
		return recs
	}

	switch pattern.Trend {
	case TrendDeclining:
		recs = append(recs, Recommendation{
			Type:     "support",
			Priority: "medium",
			Message:  "Your mood seems to be declining. Would you like some coping strategies?",
			Action:   "offer_coping_strategies",
		})
	case TrendImproving:
		recs = append(recs, Recommendation{
			Type:     "encouragement",
			Priority: "low",
			Message:  "Great progress! Your mood has been improving.",
			Action:   "celebrate_progress",
		})
	}

	if pattern.Consistency == "variable" {
		recs = append(recs, Recommendation{
			Type:     "stability",
			Priority: "medium",
			Message:  "Your emotions seem quite variable. Let's work on finding balance.",
			Action:   "suggest_mindfulness",
		})
	}

	return recs
}
