package feedback

import (
	"testing"
	"time"
)

func TestStatsEmptyStore(t *testing.T) {
	stats := NewStore().Stats()
	if stats.TotalFeedback != 0 {
		t.Errorf("expected 0 feedback, got %d", stats.TotalFeedback)
	}
	if stats.AverageRating != 0 {
		t.Errorf("expected 0 average rating, got %f", stats.AverageRating)
	}
}

func TestStatsAggregation(t *testing.T) {
	store := NewStore()
	store.Add(Entry{SessionID: "a", Rating: 5, Category: CategoryHelpful})
	store.Add(Entry{SessionID: "b", Rating: 3, Category: CategoryHelpful})
	store.Add(Entry{SessionID: "c", Rating: 1, Category: CategoryTechnical})

	stats := store.Stats()
	if stats.TotalFeedback != 3 {
		t.Fatalf("expected 3 entries, got %d", stats.TotalFeedback)
	}
	if stats.AverageRating != 3 {
		t.Errorf("expected average 3, got %f", stats.AverageRating)
	}
	if stats.CategoryDistribution[CategoryHelpful] != 2 {
		t.Errorf("expected 2 helpful entries, got %d", stats.CategoryDistribution[CategoryHelpful])
	}
	if stats.RatingDistribution[5] != 1 {
		t.Errorf("expected one 5-star rating, got %d", stats.RatingDistribution[5])
	}
}

func TestRecentFeedbackNewestFirst(t *testing.T) {
	store := NewStore()
	base := time.Now()
	for i := 0; i < 12; i++ {
		store.Add(Entry{SessionID: "s", Rating: 4, Category: CategoryOther, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
	}

	stats := store.Stats()
	if len(stats.RecentFeedback) != 10 {
		t.Fatalf("expected 10 recent entries, got %d", len(stats.RecentFeedback))
	}
	if !stats.RecentFeedback[0].CreatedAt.After(stats.RecentFeedback[9].CreatedAt) {
		t.Error("expected newest entry first")
	}
}

func TestValidCategory(t *testing.T) {
	if !ValidCategory(CategoryHelpful) {
		t.Error("expected helpful to be valid")
	}
	if ValidCategory("spam") {
		t.Error("expected unknown category to be invalid")
	}
}
