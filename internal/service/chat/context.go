// Package chat derives the bounded conversational context used to
// steer response generation.
package chat

import (
	"github.com/Anshulmehra001/plantpal/backend/internal/analysis/sentiment"
	"github.com/Anshulmehra001/plantpal/backend/internal/model/chat"
)

// Conversation stages, derived from message count and mood trend.
const (
	StageInitial     = "initial"
	StageBuilding    = "building"
	StageEstablished = "established"
	StageProgressing = "progressing"
	StageSupporting  = "supporting"
)

// Short-window sentiment trends over the recent turns.
const (
	TrendDeclining = "declining"
	TrendNegative  = "negative"
	TrendNeutral   = "neutral"
	TrendPositive  = "positive"
	TrendImproving = "improving"
)

const (
	recentWindow   = 6
	previewLength  = 200
	dominantTopics = 3
)

// Preview is a bounded view of one recent turn, truncated to keep the
// prompt small.
type Preview struct {
	Role    string
	Content string
	Mood    string
	Topics  []string
}

// Context is the conversational context handed to the response
// generator: the recent turns, where the mood is heading, what the
// conversation is about, and how established it is.
type Context struct {
	RecentMessages []Preview
	SentimentTrend string
	DominantTopics []string
	Stage          string
}

// BuildContext summarizes a session's message log. An empty log yields
// the cold-start context: no previews, neutral trend, initial stage.
func BuildContext(messages []chat.Message) Context {
	if len(messages) == 0 {
		return Context{SentimentTrend: TrendNeutral, Stage: StageInitial}
	}

	recent := messages
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}

	previews := make([]Preview, 0, len(recent))
	for _, msg := range recent {
		previews = append(previews, Preview{
			Role:    msg.Role,
			Content: truncate(msg.Content, previewLength),
			Mood:    msg.Mood,
			Topics:  msg.Topics,
		})
	}

	trend := sentimentTrend(recent)

	return Context{
		RecentMessages: previews,
		SentimentTrend: trend,
		DominantTopics: topTopics(recent),
		Stage:          conversationStage(len(messages), trend),
	}
}

// sentimentTrend computes a weighted average of the recent moods and
// maps it onto a trend label. The improving threshold is checked ahead
// of positive so strongly positive windows read as improving.
func sentimentTrend(recent []chat.Message) string {
	sum, counted := 0.0, 0
	for _, msg := range recent {
		if msg.Mood == "" {
			continue
		}
		sum += moodPolarity(sentiment.Mood(msg.Mood))
		counted++
	}
	if counted == 0 {
		return TrendNeutral
	}

	average := sum / float64(counted)
	switch {
	case average <= -2:
		return TrendDeclining
	case average <= -0.5:
		return TrendNegative
	case average >= 1:
		return TrendImproving
	case average >= 0.5:
		return TrendPositive
	default:
		return TrendNeutral
	}
}

func moodPolarity(mood sentiment.Mood) float64 {
	switch mood {
	case sentiment.MoodCrisis:
		return -3
	case sentiment.MoodSad, sentiment.MoodStressed:
		return -1
	case sentiment.MoodHappy, sentiment.MoodExcited:
		return 1
	default:
		return 0
	}
}

// topTopics counts topic tags across the recent turns and returns the
// three most frequent; ties break toward the topic seen first.
func topTopics(recent []chat.Message) []string {
	counts := make(map[string]int)
	var order []string
	for _, msg := range recent {
		for _, topic := range msg.Topics {
			if counts[topic] == 0 {
				order = append(order, topic)
			}
			counts[topic]++
		}
	}
	if len(order) == 0 {
		return nil
	}

	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && counts[order[j]] > counts[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	if len(order) > dominantTopics {
		order = order[:dominantTopics]
	}
	return order
}

func conversationStage(messageCount int, trend string) string {
	switch {
	case messageCount <= 2:
		return StageInitial
	case messageCount <= 6:
		return StageBuilding
	case trend == TrendImproving:
		return StageProgressing
	case trend == TrendDeclining:
		return StageSupporting
	default:
		return StageEstablished
	}
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
