package ai

import (
	"math/rand"
	"testing"

	"github.com/Anshulmehra001/plantpal/backend/internal/analysis/sentiment"
	chatctx "github.com/Anshulmehra001/plantpal/backend/internal/service/chat"
)

func TestLibraryValidate(t *testing.T) {
	if err := newLibrary().validate(); err != nil {
		t.Fatalf("expected complete library, got %v", err)
	}
}

func TestLibraryPickSelectionOrder(t *testing.T) {
	lib := newLibrary()
	rng := rand.New(rand.NewSource(1))

	got := lib.pick(sentiment.MoodStressed, "academic-stress", chatctx.StageInitial, rng)
	if !contains(lib.byMoodStage[sentiment.MoodStressed][chatctx.StageInitial], got) {
		t.Errorf("expected mood+stage bucket for stressed/initial, got %q", got)
	}

	got = lib.pick(sentiment.MoodHappy, "career", chatctx.StageEstablished, rng)
	if !contains(lib.byMood[sentiment.MoodHappy], got) {
		t.Errorf("expected mood bucket for happy, got %q", got)
	}

	got = lib.pick(sentiment.MoodCurious, "career", chatctx.StageBuilding, rng)
	if !contains(lib.byTopic["career"], got) {
		t.Errorf("expected topic bucket for career, got %q", got)
	}

	got = lib.pick(sentiment.MoodCurious, sentiment.TopicGeneral, chatctx.StageProgressing, rng)
	if !contains(lib.byStage[chatctx.StageProgressing], got) {
		t.Errorf("expected stage defaults for progressing, got %q", got)
	}
}

func TestLibraryPickUnknownStageFallsBack(t *testing.T) {
	lib := newLibrary()
	rng := rand.New(rand.NewSource(7))

	got := lib.pick(sentiment.MoodCurious, sentiment.TopicGeneral, "unknown", rng)
	if !contains(lib.byStage[chatctx.StageBuilding], got) {
		t.Errorf("expected building defaults for unknown stage, got %q", got)
	}
}

func contains(responses []string, want string) bool {
	for _, r := range responses {
		if r == want {
			return true
		}
	}
	return false
}
