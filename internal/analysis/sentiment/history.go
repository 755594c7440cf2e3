package sentiment

import "time"

// Trend labels over the recent score window.
const (
	TrendImproving   = "improving"
	TrendDeclining   = "declining"
	TrendStable      = "stable"
	TrendFluctuating = "fluctuating"
)

const (
	defaultHistoryCap = 50
	patternWindow     = 5
	minPatternEntries = 3
)

// Record is one classifier output retained for pattern detection.
type Record struct {
	Score          int       `json:"score"`
	Mood           Mood      `json:"mood"`
	Topics         []string  `json:"topics"`
	CrisisDetected bool      `json:"crisisDetected"`
	Timestamp      time.Time `json:"timestamp"`
}

// Pattern summarizes the direction of a conversation's recent moods.
type Pattern struct {
	Trend        string  `json:"trend"`
	AverageScore float64 `json:"averageScore"`
	DominantMood Mood    `json:"dominantMood"`
	Consistency  string  `json:"consistency"`
}

// History is a bounded append-only log of classifier outputs, scoped to
// one conversation. Oldest entries are evicted first; the log is never
// reordered. History is not safe for concurrent use; the session store
// serializes access.
type History struct {
	records []Record
	cap     int
}

// NewHistory returns a history bounded to capacity entries; a
// non-positive capacity falls back to the default of 50.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = defaultHistoryCap
	}
	return &History{cap: capacity}
}

// Add appends a record, stamping it with the current time when unset.
func (h *History) Add(r Record) {
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now().UTC()
	}
	h.records = append(h.records, r)
	if len(h.records) > h.cap {
		h.records = h.records[len(h.records)-h.cap:]
	}
}

// Len reports the number of retained records.
func (h *History) Len() int {
	return len(h.records)
}

// Pattern derives the trend over the last five entries. Fewer than
// three entries is insufficient data, reported as nil rather than an
// error. Checks run in fixed precedence: improving, declining, stable,
// else fluctuating.
func (h *History) Pattern() *Pattern {
	if len(h.records) < minPatternEntries {
		return nil
	}

	recent := h.records
	if len(recent) > patternWindow {
		recent = recent[len(recent)-patternWindow:]
	}

	improving, declining := true, true
	minVal, maxVal := recent[0].Score, recent[0].Score
	sum := 0
	for i, r := range recent {
		sum += r.Score
		if r.Score < minVal {
			minVal = r.Score
		}
		if r.Score > maxVal {
			maxVal = r.Score
		}
		if i == 0 {
			continue
		}
		if r.Score < recent[i-1].Score {
			improving = false
		}
		if r.Score > recent[i-1].Score {
			declining = false
		}
	}
	stable := maxVal-minVal < 1

	trend := TrendFluctuating
	switch {
	case improving:
		trend = TrendImproving
	case declining:
		trend = TrendDeclining
	case stable:
		trend = TrendStable
	}

	consistency := "variable"
	if stable {
		consistency = "high"
	}

	return &Pattern{
		Trend:        trend,
		AverageScore: float64(sum) / float64(len(recent)),
		DominantMood: dominantMood(recent),
		Consistency:  consistency,
	}
}

// dominantMood is the most frequent mood in the window; ties break in
// favor of the mood seen first.
func dominantMood(records []Record) Mood {
	counts := make(map[Mood]int, len(records))
	var order []Mood
	for _, r := range records {
		if counts[r.Mood] == 0 {
			order = append(order, r.Mood)
		}
		counts[r.Mood]++
	}

	best := order[0]
	for _, mood := range order[1:] {
		if counts[mood] > counts[best] {
			best = mood
		}
	}
	return best
}

// CrisisCountSince counts crisis records within the trailing window.
func (h *History) CrisisCountSince(window time.Duration) int {
	cutoff := time.Now().Add(-window)
	count := 0
	for _, r := range h.records {
		if r.Mood == MoodCrisis && r.Timestamp.After(cutoff) {
			count++
		}
	}
	return count
}
