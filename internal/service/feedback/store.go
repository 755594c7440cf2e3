package feedback

import (
	"sync"
	"time"
)

// Categories accepted on submission.
const (
	CategoryHelpful    = "helpful"
	CategoryNotHelpful = "not-helpful"
	CategoryTechnical  = "technical-issue"
	CategorySuggestion = "suggestion"
	CategoryOther      = "other"
)

// ValidCategory reports whether category is one of the accepted values.
func ValidCategory(category string) bool {
	switch category {
	case CategoryHelpful, CategoryNotHelpful, CategoryTechnical, CategorySuggestion, CategoryOther:
		return true
	}
	return false
}

// Entry is a single piece of user feedback.
type Entry struct {
	SessionID string    `json:"sessionId"`
	Rating    int       `json:"rating"`
	Feedback  string    `json:"feedback,omitempty"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stats summarizes collected feedback.
type Stats struct {
	TotalFeedback        int            `json:"totalFeedback"`
	AverageRating        float64        `json:"averageRating"`
	RatingDistribution   map[int]int    `json:"ratingDistribution"`
	CategoryDistribution map[string]int `json:"categoryDistribution"`
	RecentFeedback       []Entry        `json:"recentFeedback"`
}

// Store keeps feedback in memory.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewStore() *Store {
	return &Store{}
}

// Add records one feedback entry, stamping it if CreatedAt is zero.
func (s *Store) Add(entry Entry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

// Stats aggregates all feedback. RecentFeedback holds up to the ten
// newest entries, newest first.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		RatingDistribution:   make(map[int]int),
		CategoryDistribution: make(map[string]int),
		RecentFeedback:       []Entry{},
	}

	total := 0
	for _, entry := range s.entries {
		stats.TotalFeedback++
		total += entry.Rating
		stats.RatingDistribution[entry.Rating]++
		stats.CategoryDistribution[entry.Category]++
	}
	if stats.TotalFeedback > 0 {
		stats.AverageRating = float64(total) / float64(stats.TotalFeedback)
	}

	const recentLimit = 10
	for i := len(s.entries) - 1; i >= 0 && len(stats.RecentFeedback) < recentLimit; i-- {
		stats.RecentFeedback = append(stats.RecentFeedback, s.entries[i])
	}

	return stats
}
