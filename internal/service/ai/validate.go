package ai

import (
	"regexp"
	"strings"
)

// Hard bounds on accepted model output.
const (
	minResponseChars = 20
	maxResponseChars = 800
	minResponseWords = 15
	maxResponseWords = 120

	// minQualityScore is the fraction of quality checks a response
	// must pass to be accepted.
	minQualityScore = 0.6
)

var (
	emojiPattern    = regexp.MustCompile(`[\x{1F300}-\x{1F9FF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}]`)
	sentenceSplit   = regexp.MustCompile(`[.!?]+`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	placeholderText = []string{
		"[user]", "[name]", "[topic]", "[emotion]", "[action]", "[reason]", "[placeholder]",
		"insert", "placeholder", "todo", "fixme",
		"{{", "}}", "${", "undefined", "null",
	}
)

// validation is the outcome of the quality gate on raw model output.
type validation struct {
	OK           bool
	Text         string
	QualityScore float64
	Failed       []string
}

// validateResponse applies the quality gate to raw model output.
// Out-of-bounds length fails outright; the remaining checks score the
// response and anything under the threshold is rejected in favor of
// the fallback library.
func validateResponse(raw, originalMessage string) validation {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return validation{Failed: []string{"empty"}}
	}
	if len(trimmed) < minResponseChars {
		return validation{Failed: []string{"tooShort"}}
	}
	if len(trimmed) > maxResponseChars {
		return validation{Failed: []string{"tooLong"}}
	}

	words := len(strings.Fields(trimmed))
	checks := []struct {
		name   string
		passed bool
	}{
		{"hasEmoji", emojiPattern.MatchString(trimmed)},
		{"hasQuestion", strings.Contains(trimmed, "?")},
		{"notRepetitive", !isRepetitive(trimmed)},
		{"appropriateLength", words >= minResponseWords && words <= maxResponseWords},
		{"noPlaceholders", !containsPlaceholders(trimmed)},
		{"contextuallyRelevant", isContextuallyRelevant(trimmed, originalMessage)},
	}

	passed := 0
	var failed []string
	for _, check := range checks {
		if check.passed {
			passed++
		} else {
			failed = append(failed, check.name)
		}
	}

	score := float64(passed) / float64(len(checks))
	if score < minQualityScore {
		return validation{QualityScore: score, Failed: failed}
	}

	return validation{
		OK:           true,
		Text:         filterResponse(trimmed),
		QualityScore: score,
		Failed:       failed,
	}
}

// isRepetitive flags text where under 80% of sentence-level phrases
// are unique.
func isRepetitive(text string) bool {
	var phrases []string
	for _, s := range sentenceSplit.Split(text, -1) {
		if phrase := strings.ToLower(strings.TrimSpace(s)); phrase != "" {
			phrases = append(phrases, phrase)
		}
	}
	if len(phrases) < 2 {
		return false
	}

	unique := make(map[string]struct{}, len(phrases))
	for _, phrase := range phrases {
		unique[phrase] = struct{}{}
	}
	return float64(len(unique)) < float64(len(phrases))*0.8
}

func containsPlaceholders(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range placeholderText {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// isContextuallyRelevant requires some lexical overlap with the input
// unless the input is short enough that none can be expected, and
// rejects responses built from stock filler phrases.
func isContextuallyRelevant(response, originalMessage string) bool {
	genericPhrases := []string{
		"how can i help you",
		"what would you like to talk about",
		"tell me more",
		"i understand",
	}

	lowerResponse := strings.ToLower(response)
	for _, phrase := range genericPhrases {
		if strings.Contains(lowerResponse, phrase) {
			return false
		}
	}

	if len(originalMessage) < 50 {
		return true
	}

	responseWords := make(map[string]struct{})
	for _, word := range strings.Fields(lowerResponse) {
		responseWords[strings.Trim(word, ".,!?;:")] = struct{}{}
	}
	for _, word := range strings.Fields(strings.ToLower(originalMessage)) {
		word = strings.Trim(word, ".,!?;:")
		if len(word) <= 3 {
			continue
		}
		if _, ok := responseWords[word]; ok {
			return true
		}
	}
	return false
}

// filterResponse strips internal filter markers, collapses whitespace
// and guarantees terminal punctuation.
func filterResponse(text string) string {
	filtered := text
	for _, marker := range []string{"[FILTERED]", "[filtered]", "[BLOCKED]", "[blocked]", "***"} {
		filtered = strings.ReplaceAll(filtered, marker, "")
	}
	filtered = strings.TrimSpace(whitespaceRuns.ReplaceAllString(filtered, " "))

	if filtered != "" && !strings.HasSuffix(filtered, ".") &&
		!strings.HasSuffix(filtered, "!") && !strings.HasSuffix(filtered, "?") {
		filtered += "."
	}
	return filtered
}
