package ai

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/Anshulmehra001/plantpal/backend/internal/analysis/sentiment"
	"github.com/Anshulmehra001/plantpal/backend/internal/config"
	chatctx "github.com/Anshulmehra001/plantpal/backend/internal/service/chat"
)

const goodResponse = "🌱 That sounds like a wonderful step forward for you! What part of it are you most excited to explore next week?"

// stubChatModel scripts Generate results for offline chain tests.
type stubChatModel struct {
	calls     int
	responses []string
	err       error
}

func (m *stubChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	idx := m.calls - 1
	if idx >= len(m.responses) {
		idx = len(m.responses) - 1
	}
	return schema.AssistantMessage(m.responses[idx], nil), nil
}

func (m *stubChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

func (m *stubChatModel) BindTools(tools []*schema.ToolInfo) error { return nil }

func testAIConfig() config.AIConfig {
	return config.AIConfig{RequestTimeout: time.Second, MaxAttempts: 3}
}

func newTestService(t *testing.T, chatModel model.ChatModel) *Service {
	t.Helper()

	svc, err := NewService(context.Background(), chatModel, testAIConfig())
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	svc.rng = rand.New(rand.NewSource(1))
	svc.sleep = func(time.Duration) {}
	return svc
}

func testContext() chatctx.Context {
	return chatctx.Context{
		SentimentTrend: chatctx.TrendNeutral,
		DominantTopics: []string{sentiment.TopicGeneral},
		Stage:          chatctx.StageInitial,
	}
}

func TestGenerateFallbackOnlyMode(t *testing.T) {
	svc := newTestService(t, nil)
	if svc.Enabled() {
		t.Fatal("expected service without model to be disabled")
	}

	got := svc.Generate(context.Background(), "s1", "hello there", sentiment.Result{Mood: sentiment.MoodCurious}, testContext())
	if got == "" {
		t.Error("expected fallback response, got empty string")
	}
}

func TestGenerateFallbackSafeUnderConcurrentRequests(t *testing.T) {
	svc := newTestService(t, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got := svc.Generate(context.Background(), "s1", "hello there", sentiment.Result{Mood: sentiment.MoodCurious}, testContext())
				if got == "" {
					t.Error("expected fallback response, got empty string")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestGenerateReturnsModelResponse(t *testing.T) {
	stub := &stubChatModel{responses: []string{goodResponse}}
	svc := newTestService(t, stub)

	got := svc.Generate(context.Background(), "s1", "I got a new job", sentiment.Result{Mood: sentiment.MoodHappy}, testContext())
	if got != goodResponse {
		t.Errorf("expected model response, got %q", got)
	}
	if stub.calls != 1 {
		t.Errorf("expected 1 model call, got %d", stub.calls)
	}
}

func TestGenerateRetriesThenFallsBack(t *testing.T) {
	stub := &stubChatModel{err: errors.New("upstream unavailable")}
	svc := newTestService(t, stub)

	var delays []time.Duration
	svc.sleep = func(d time.Duration) { delays = append(delays, d) }

	got := svc.Generate(context.Background(), "s1", "hello there", sentiment.Result{Mood: sentiment.MoodCurious}, testContext())
	if got == "" {
		t.Error("expected fallback response after exhausted retries")
	}
	if stub.calls != 3 {
		t.Errorf("expected 3 attempts, got %d", stub.calls)
	}
	want := []time.Duration{2 * time.Second, 4 * time.Second}
	if len(delays) != len(want) {
		t.Fatalf("expected %d backoff sleeps, got %d", len(want), len(delays))
	}
	for i, d := range delays {
		if d != want[i] {
			t.Errorf("backoff %d: expected %v, got %v", i, want[i], d)
		}
	}
}

func TestGenerateRejectsLowQualityThenAcceptsRetry(t *testing.T) {
	stub := &stubChatModel{responses: []string{"ok", goodResponse}}
	svc := newTestService(t, stub)

	got := svc.Generate(context.Background(), "s1", "I got a new job", sentiment.Result{Mood: sentiment.MoodHappy}, testContext())
	if got != goodResponse {
		t.Errorf("expected second attempt to be served, got %q", got)
	}
	if stub.calls != 2 {
		t.Errorf("expected 2 attempts, got %d", stub.calls)
	}
}

func TestBuildHistoryMessages(t *testing.T) {
	previews := []chatctx.Preview{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello!"},
		{Role: "system", Content: "ignored"},
	}

	history := buildHistoryMessages(previews)
	if len(history) != 2 {
		t.Fatalf("expected 2 history messages, got %d", len(history))
	}
	if history[0].Role != schema.User || history[1].Role != schema.Assistant {
		t.Errorf("unexpected roles: %v, %v", history[0].Role, history[1].Role)
	}
}
