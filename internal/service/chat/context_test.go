package chat

import (
	"strings"
	"testing"

	"github.com/Anshulmehra001/plantpal/backend/internal/model/chat"
)

func userMsg(content, mood string, topics ...string) chat.Message {
	return chat.Message{Role: chat.RoleUser, Content: content, Mood: mood, Topics: topics}
}

func assistantMsg(content string) chat.Message {
	return chat.Message{Role: chat.RoleAssistant, Content: content}
}

func TestBuildContextColdStart(t *testing.T) {
	ctx := BuildContext(nil)
	if len(ctx.RecentMessages) != 0 {
		t.Fatalf("got %d previews, want none", len(ctx.RecentMessages))
	}
	if ctx.SentimentTrend != TrendNeutral {
		t.Fatalf("trend = %s, want neutral", ctx.SentimentTrend)
	}
	if ctx.Stage != StageInitial {
		t.Fatalf("stage = %s, want initial", ctx.Stage)
	}
}

func TestBuildContextWindowAndPreviews(t *testing.T) {
	long := strings.Repeat("x", 500)
	var messages []chat.Message
	for i := 0; i < 10; i++ {
		messages = append(messages, userMsg(long, "curious", "general"))
	}

	ctx := BuildContext(messages)
	if len(ctx.RecentMessages) != 6 {
		t.Fatalf("got %d previews, want 6", len(ctx.RecentMessages))
	}
	for _, p := range ctx.RecentMessages {
		if len(p.Content) > 200 {
			t.Fatalf("preview length %d exceeds 200", len(p.Content))
		}
	}
}

func TestSentimentTrendMapping(t *testing.T) {
	cases := []struct {
		name  string
		moods []string
		want  string
	}{
		{"crisis heavy", []string{"crisis", "crisis", "sad"}, TrendDeclining},
		{"mildly negative", []string{"sad", "stressed", "curious"}, TrendNegative},
		{"balanced", []string{"happy", "sad", "curious"}, TrendNeutral},
		{"leaning positive", []string{"happy", "happy", "curious", "curious"}, TrendPositive},
		{"all positive", []string{"happy", "excited", "happy"}, TrendImproving},
	}
	for _, tc := range cases {
		var messages []chat.Message
		for _, mood := range tc.moods {
			messages = append(messages, userMsg("m", mood))
		}
		if got := BuildContext(messages).SentimentTrend; got != tc.want {
			t.Fatalf("%s: trend = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestTrendIgnoresUnclassifiedTurns(t *testing.T) {
	messages := []chat.Message{
		userMsg("hello", "happy"),
		assistantMsg("hi there"),
	}
	if got := BuildContext(messages).SentimentTrend; got != TrendImproving {
		t.Fatalf("trend = %s, want improving from the single happy turn", got)
	}
}

func TestDominantTopics(t *testing.T) {
	messages := []chat.Message{
		userMsg("a", "curious", "career", "anxiety"),
		userMsg("b", "curious", "career"),
		userMsg("c", "curious", "family-issues"),
		userMsg("d", "curious", "career", "family-issues", "self-esteem", "anxiety"),
	}
	topics := BuildContext(messages).DominantTopics
	if len(topics) != 3 {
		t.Fatalf("got %d topics, want 3", len(topics))
	}
	if topics[0] != "career" {
		t.Fatalf("top topic = %s, want career", topics[0])
	}
	// anxiety and family-issues are tied at 2; anxiety was seen first.
	if topics[1] != "anxiety" || topics[2] != "family-issues" {
		t.Fatalf("topics = %v, want tie broken by first appearance", topics)
	}
}

func TestConversationStages(t *testing.T) {
	two := []chat.Message{userMsg("a", "curious"), assistantMsg("b")}
	if got := BuildContext(two).Stage; got != StageInitial {
		t.Fatalf("stage for 2 messages = %s, want initial", got)
	}

	var six []chat.Message
	for i := 0; i < 6; i++ {
		six = append(six, userMsg("m", "curious"))
	}
	if got := BuildContext(six).Stage; got != StageBuilding {
		t.Fatalf("stage for 6 messages = %s, want building", got)
	}

	var improving []chat.Message
	for i := 0; i < 8; i++ {
		improving = append(improving, userMsg("m", "happy"))
	}
	if got := BuildContext(improving).Stage; got != StageProgressing {
		t.Fatalf("stage for improving trend = %s, want progressing", got)
	}

	var declining []chat.Message
	for i := 0; i < 8; i++ {
		declining = append(declining, userMsg("m", "crisis"))
	}
	if got := BuildContext(declining).Stage; got != StageSupporting {
		t.Fatalf("stage for declining trend = %s, want supporting", got)
	}

	var steady []chat.Message
	for i := 0; i < 8; i++ {
		steady = append(steady, userMsg("m", "curious"))
	}
	if got := BuildContext(steady).Stage; got != StageEstablished {
		t.Fatalf("stage for neutral trend = %s, want established", got)
	}
}
