package sentiment

import (
	"testing"
	"time"
)

func record(score int, mood Mood) Record {
	return Record{Score: score, Mood: mood, Timestamp: time.Now().UTC()}
}

func TestPatternInsufficientData(t *testing.T) {
	h := NewHistory(50)
	h.Add(record(1, MoodHappy))
	h.Add(record(2, MoodHappy))
	if p := h.Pattern(); p != nil {
		t.Fatalf("Pattern() with 2 entries = %+v, want nil", p)
	}
}

func TestPatternImproving(t *testing.T) {
	h := NewHistory(50)
	for _, score := range []int{-4, -2, 0, 2, 4} {
		h.Add(record(score, MoodHappy))
	}
	p := h.Pattern()
	if p == nil {
		t.Fatal("Pattern() = nil, want improving pattern")
	}
	if p.Trend != TrendImproving {
		t.Fatalf("trend = %s, want improving", p.Trend)
	}
	if p.AverageScore != 0 {
		t.Fatalf("averageScore = %f, want 0", p.AverageScore)
	}
}

func TestPatternDeclining(t *testing.T) {
	h := NewHistory(50)
	for _, score := range []int{4, 2, 0, -2, -4} {
		h.Add(record(score, MoodSad))
	}
	if p := h.Pattern(); p == nil || p.Trend != TrendDeclining {
		t.Fatalf("Pattern() = %+v, want declining", p)
	}
}

func TestPatternStablePrecedence(t *testing.T) {
	// A flat sequence is both non-decreasing and non-increasing; the
	// improving check wins by fixed precedence.
	h := NewHistory(50)
	for i := 0; i < 5; i++ {
		h.Add(record(2, MoodHappy))
	}
	p := h.Pattern()
	if p == nil || p.Trend != TrendImproving {
		t.Fatalf("Pattern() = %+v, want improving for flat scores", p)
	}
	if p.Consistency != "high" {
		t.Fatalf("consistency = %s, want high", p.Consistency)
	}
}

func TestPatternFluctuating(t *testing.T) {
	h := NewHistory(50)
	for _, score := range []int{-3, 4, -2, 5, -1} {
		h.Add(record(score, MoodStressed))
	}
	if p := h.Pattern(); p == nil || p.Trend != TrendFluctuating {
		t.Fatalf("Pattern() = %+v, want fluctuating", p)
	}
}

func TestDominantMoodFirstSeenWins(t *testing.T) {
	h := NewHistory(50)
	h.Add(record(2, MoodHappy))
	h.Add(record(-2, MoodSad))
	h.Add(record(2, MoodHappy))
	h.Add(record(-2, MoodSad))
	h.Add(record(0, MoodCurious))
	p := h.Pattern()
	if p == nil || p.DominantMood != MoodHappy {
		t.Fatalf("Pattern() = %+v, want dominant mood happy", p)
	}
}

func TestHistoryFIFOTruncation(t *testing.T) {
	h := NewHistory(5)
	for score := 0; score < 8; score++ {
		h.Add(record(score, MoodCurious))
	}
	if h.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", h.Len())
	}
	// Oldest entries evicted: remaining window is 3..7, monotonic.
	if p := h.Pattern(); p == nil || p.Trend != TrendImproving {
		t.Fatalf("Pattern() after truncation = %+v, want improving", p)
	}
}

func TestCrisisCountSince(t *testing.T) {
	h := NewHistory(50)
	old := Record{Score: -10, Mood: MoodCrisis, Timestamp: time.Now().Add(-48 * time.Hour)}
	h.Add(old)
	h.Add(record(-10, MoodCrisis))
	h.Add(record(0, MoodCurious))

	if got := h.CrisisCountSince(24 * time.Hour); got != 1 {
		t.Fatalf("CrisisCountSince(24h) = %d, want 1", got)
	}
	if got := h.CrisisCountSince(72 * time.Hour); got != 2 {
		t.Fatalf("CrisisCountSince(72h) = %d, want 2", got)
	}
}

func TestRecommendationsForCrisisAndTrend(t *testing.T) {
	recs := Recommendations(&Pattern{Trend: TrendDeclining, Consistency: "variable"}, 1)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}
	if recs[0].Type != "crisis" || recs[0].Priority != "high" {
		t.Fatalf("first recommendation = %+v, want high-priority crisis", recs[0])
	}
	if got := Recommendations(nil, 0); len(got) != 0 {
		t.Fatalf("Recommendations(nil, 0) = %v, want none", got)
	}
}
