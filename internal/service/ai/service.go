package ai

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/Anshulmehra001/plantpal/backend/internal/analysis/sentiment"
	"github.com/Anshulmehra001/plantpal/backend/internal/config"
	chatmodel "github.com/Anshulmehra001/plantpal/backend/internal/model/chat"
	chatctx "github.com/Anshulmehra001/plantpal/backend/internal/service/chat"
)

// Service generates companion replies. When no chat model is configured it
// runs in fallback-only mode and serves curated responses instead.
type Service struct {
	chatModel model.ChatModel
	chain     compose.Runnable[map[string]any, *schema.Message]
	fallbacks *library

	timeout  time.Duration
	attempts int

	// rng backs fallback selection; guarded because Generate runs on
	// concurrent request goroutines. Overridable in tests, like sleep.
	rngMu sync.Mutex
	rng   *rand.Rand
	sleep func(time.Duration)
}

// NewService wires the prompt template and chat model into an eino chain.
// A nil chatModel is allowed and yields a fallback-only service.
func NewService(ctx context.Context, chatModel model.ChatModel, cfg config.AIConfig) (*Service, error) {
	fallbacks := newLibrary()
	if err := fallbacks.validate(); err != nil {
		return nil, err
	}

	svc := &Service{
		chatModel: chatModel,
		fallbacks: fallbacks,
		timeout:   cfg.RequestTimeout,
		attempts:  cfg.MaxAttempts,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:     time.Sleep,
	}
	if svc.timeout <= 0 {
		svc.timeout = 10 * time.Second
	}
	if svc.attempts <= 0 {
		svc.attempts = 3
	}

	if chatModel == nil {
		log.Printf("[ai] no chat model configured, running in fallback-only mode")
		return svc, nil
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}
	svc.chain = runnable

	return svc, nil
}

// Enabled reports whether a chat model backs this service.
func (s *Service) Enabled() bool {
	return s.chain != nil
}

// Generate produces a reply for a user message. It never returns an error:
// when the model is disabled, keeps failing, or produces low-quality text,
// a curated fallback is served instead.
func (s *Service) Generate(ctx context.Context, sessionID, userMessage string, result sentiment.Result, convCtx chatctx.Context) string {
	if !s.Enabled() {
		return s.fallback(result, convCtx)
	}

	input := map[string]any{
		"system":  buildSystemPrompt(convCtx),
		"history": buildHistoryMessages(convCtx.RecentMessages),
		"query":   userMessage,
	}

	text, err := s.invokeWithRetry(ctx, input, userMessage)
	if err != nil {
		log.Printf("[ai] generation failed for session=%s, serving fallback: %v", sessionID, err)
		return s.fallback(result, convCtx)
	}

	log.Printf("[ai] generated response for session=%s, stage=%s, length=%d", sessionID, convCtx.Stage, len(text))
	return text
}

// invokeWithRetry runs the chain up to s.attempts times. Each attempt gets
// its own timeout, and a response that fails quality validation counts as a
// failed attempt. Backoff between attempts doubles each round.
func (s *Service) invokeWithRetry(ctx context.Context, input map[string]any, userMessage string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= s.attempts; attempt++ {
		if attempt > 1 {
			delay := time.Duration(1<<uint(attempt-1)) * time.Second
			s.sleep(delay)
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
		response, err := s.chain.Invoke(attemptCtx, input)
		cancel()
		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt, err)
			log.Printf("[ai] chain invocation failed (attempt %d/%d): %v", attempt, s.attempts, err)
			continue
		}

		v := validateResponse(response.Content, userMessage)
		if !v.OK {
			reasons := strings.Join(v.Failed, ",")
			lastErr = fmt.Errorf("attempt %d: response rejected (%s, quality=%.2f)", attempt, reasons, v.QualityScore)
			log.Printf("[ai] low-quality response discarded (attempt %d/%d): %s", attempt, s.attempts, reasons)
			continue
		}

		return v.Text, nil
	}

	return "", lastErr
}

func (s *Service) fallback(result sentiment.Result, convCtx chatctx.Context) string {
	topic := sentiment.TopicGeneral
	if len(convCtx.DominantTopics) > 0 {
		topic = convCtx.DominantTopics[0]
	} else if len(result.Topics) > 0 {
		topic = result.Topics[0]
	}
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.fallbacks.pick(result.Mood, topic, convCtx.Stage, s.rng)
}

func buildHistoryMessages(previews []chatctx.Preview) []*schema.Message {
	if len(previews) == 0 {
		return nil
	}

	history := make([]*schema.Message, 0, len(previews))
	for _, p := range previews {
		switch p.Role {
		case chatmodel.RoleUser:
			history = append(history, schema.UserMessage(p.Content))
		case chatmodel.RoleAssistant:
			history = append(history, schema.AssistantMessage(p.Content, nil))
		}
	}

	return history
}
