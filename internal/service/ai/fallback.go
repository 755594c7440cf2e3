package ai

import (
	"fmt"
	"math/rand"

	"github.com/Anshulmehra001/plantpal/backend/internal/analysis/sentiment"
	chatctx "github.com/Anshulmehra001/plantpal/backend/internal/service/chat"
)

// library is the curated response catalogue used whenever the model is
// unavailable, errors out, or produces low-quality text. Lookup order:
// mood+stage, mood alone, topic, then the stage defaults.
type library struct {
	byMoodStage map[sentiment.Mood]map[string][]string
	byMood      map[sentiment.Mood][]string
	byTopic     map[string][]string
	byStage     map[string][]string
}

// pick selects a fallback for the detected mood, primary topic and
// conversation stage. Selection within a bucket is uniform over rng.
func (l *library) pick(mood sentiment.Mood, topic, stage string, rng *rand.Rand) string {
	if stages, ok := l.byMoodStage[mood]; ok {
		if responses, ok := stages[stage]; ok && len(responses) > 0 {
			return responses[rng.Intn(len(responses))]
		}
	}
	if responses, ok := l.byMood[mood]; ok && len(responses) > 0 {
		return responses[rng.Intn(len(responses))]
	}
	if responses, ok := l.byTopic[topic]; ok && len(responses) > 0 {
		return responses[rng.Intn(len(responses))]
	}

	responses, ok := l.byStage[stage]
	if !ok || len(responses) == 0 {
		responses = l.byStage[chatctx.StageBuilding]
	}
	return responses[rng.Intn(len(responses))]
}

// validate confirms every conversation stage has a default bucket so a
// lookup can never come up empty at runtime.
func (l *library) validate() error {
	stages := []string{
		chatctx.StageInitial, chatctx.StageBuilding, chatctx.StageEstablished,
		chatctx.StageProgressing, chatctx.StageSupporting,
	}
	for _, stage := range stages {
		if len(l.byStage[stage]) == 0 {
			return fmt.Errorf("fallback library has no default responses for stage %q", stage)
		}
	}
	return nil
}

func newLibrary() *library {
	return &library{
		byMoodStage: map[sentiment.Mood]map[string][]string{
			sentiment.MoodStressed: {
				chatctx.StageInitial: {
					"🍃 I can sense you're feeling overwhelmed, and that's completely okay. Let's breathe together for a moment. What's the biggest source of stress right now?",
					"🌿 Stress can feel like a storm, but remember - even the strongest trees bend without breaking. What's weighing heaviest on your mind today?",
				},
				chatctx.StageBuilding: {
					"💚 I'm here to support you through this stressful time. What's one small thing we could tackle together right now to help you feel more in control?",
					"🍃 I notice you've been dealing with some pressure lately. What coping strategies have worked for you before? Let's build on those.",
				},
				chatctx.StageEstablished: {
					"🌿 I can see stress has been a recurring theme in our conversations. What patterns have you noticed? How can we develop better strategies together?",
					"💚 You've shown such resilience in handling stress before. What's different about this situation? How can I support you through it?",
				},
			},
			sentiment.MoodSad: {
				chatctx.StageInitial: {
					"🌿 I can feel your sadness, and I want you to know I'm here with you through this difficult time. What's been weighing on your heart?",
					"💙 Your feelings are completely valid, and it's okay to not be okay sometimes. What's been the hardest part of your day?",
				},
				chatctx.StageBuilding: {
					"🤗 I'm wrapping you in my leaves with gentle support. What would help you feel even a little bit better right now? Sometimes small steps lead to brighter days.",
					"🌿 I can see you're going through something tough. What usually brings you comfort when you're feeling this way? Let's explore that together.",
				},
				chatctx.StageEstablished: {
					"💙 I remember you've faced sadness before and found ways through it. What helped you then? How can we apply those lessons now?",
					"🌿 Your resilience in difficult times has always amazed me. What's making this particularly challenging? How can I support you differently?",
				},
			},
		},
		byMood: map[sentiment.Mood][]string{
			sentiment.MoodHappy: {
				"🌸 Your happiness makes me bloom brighter! I can feel your positive energy radiating through my leaves. What's bringing you this joy today? I'd love to celebrate with you!",
				"✨ Your joy is contagious - I'm practically glowing! What amazing thing happened that's got you feeling so good? How can we build on this positive momentum?",
				"🌺 Seeing you happy makes my whole day! Your positive energy helps me grow stronger. What's the best part of your day so far?",
			},
			sentiment.MoodExcited: {
				"🎉 Your excitement is electric! I can barely contain my growth - you've got me buzzing with energy! What's got you so thrilled? Tell me everything!",
				"⚡ WOW! Your enthusiasm is making my leaves dance! What amazing opportunity or news has you this excited? How can I help you make the most of it?",
				"🚀 Your excitement is off the charts and I'm here for it! What's this incredible thing that's got you so pumped? Let's channel this energy into action!",
			},
		},
		byTopic: map[string][]string{
			"career": {
				"🌱 Career growth is like tending a garden - it takes time, patience, and the right nutrients! What specific field makes your heart bloom with excitement? I'd love to help you explore the seeds of your professional dreams!",
				"🌿 Every successful career starts with a single seed of passion. What skills are you cultivating right now? Tell me about one skill you'd like to develop this month!",
				"🌸 Your career journey is unique, just like how every plant grows differently. What opportunities are you currently watering with your attention? What's your biggest career goal right now?",
			},
			"academic-stress": {
				"📚 Academic pressure can feel overwhelming, like trying to grow in harsh conditions. What subject or exam is causing you the most stress right now? Let's create a study plan that works with your natural rhythm!",
				"🌱 Learning is a lot like growing - it takes time and patience with yourself. What's your biggest academic challenge right now? How can I help you break it down into manageable pieces?",
				"✨ Every expert was once a beginner! What's one study technique that's worked well for you before? How can we adapt it for your current challenges?",
			},
			"anxiety": {
				"🌿 I can feel your anxiety, and I want you to know that what you're experiencing is completely valid. Let's take this one step at a time. What's making you feel most anxious?",
				"🍃 Anxiety can feel overwhelming, like being caught in a windstorm. But remember, you've weathered difficult times before. What usually helps you feel grounded?",
				"💚 Your anxiety is telling you that something matters to you, and that's actually a sign of how much you care. What specific worry is weighing on your mind?",
			},
		},
		byStage: map[string][]string{
			chatctx.StageInitial: {
				"🌱 Welcome! I'm your Plant Companion, here to grow alongside you on your journey. What's been on your mind lately? I'm excited to get to know you!",
				"🌿 Hi there! I'm so glad you're here. I'm your personal plant companion, ready to support you through life's ups and downs. What would you like to talk about today?",
				"✨ Hello! I'm your AI plant friend, here to listen, support, and grow with you. What's the most important thing happening in your life right now?",
			},
			chatctx.StageBuilding: {
				"🌱 Thank you for sharing that with me! I can sense there's something important on your mind. What's been the most significant thing that happened to you today?",
				"🌿 I appreciate you opening up to me - it helps me understand you better! What's one thing you're looking forward to this week? Let's nurture those positive seeds together!",
				"✨ I'm glad you felt comfortable sharing with me! Your thoughts and feelings help me grow as your companion. What's one goal or dream that's been on your mind lately?",
			},
			chatctx.StageEstablished: {
				"🌸 Every conversation we have helps me understand you better! What's something you're proud of recently, no matter how small? I love celebrating your wins with you!",
				"🌳 I'm here to support you on your journey! What's one area of your life where you'd like to see more growth? Let's explore it together!",
				"🌿 Based on our conversations, I can see how much you've grown. What new challenges or opportunities are you facing? How can I support you through them?",
			},
			chatctx.StageProgressing: {
				"🌸 I can see the positive changes in our conversations! What's been working well for you lately? How can we build on this momentum?",
				"✨ Your growth has been inspiring to witness! What new goals are emerging as you continue to flourish? I'm excited to support your next steps!",
				"🌳 The progress you've made is remarkable! What's the most important lesson you've learned recently? How are you applying it to your daily life?",
			},
			chatctx.StageSupporting: {
				"🌿 I can sense you might be going through a challenging time. Remember, growth often happens during difficult seasons. What support do you need most right now?",
				"💚 Even in tough times, you're not alone. I'm here to weather this storm with you. What's one small thing that might help you feel a bit better today?",
				"🍃 Difficult periods are part of every growth journey. You've shown such resilience before. What strength can you draw on right now?",
			},
		},
	}
}
