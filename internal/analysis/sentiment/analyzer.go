package sentiment

import "strings"

// Mood is the fixed emotional classification attached to a user turn.
type Mood string

const (
	MoodCrisis   Mood = "crisis"
	MoodSad      Mood = "sad"
	MoodStressed Mood = "stressed"
	MoodCurious  Mood = "curious"
	MoodHappy    Mood = "happy"
	MoodExcited  Mood = "excited"
)

// Score bounds after clamping.
const (
	minScore = -10
	maxScore = 10
)

// Result is the output of one classification pass over a message.
type Result struct {
	Score          int      `json:"score"`
	Mood           Mood     `json:"mood"`
	Confidence     float64  `json:"confidence"`
	Topics         []string `json:"topics"`
	CrisisDetected bool     `json:"crisisDetected"`
	KeywordHits    int      `json:"keywordsDetected"`
}

// crisisKeywords short-circuit every other check. Matching any of them
// classifies the whole message as a crisis regardless of co-occurring
// positive or negative language.
var crisisKeywords = []string{
	"suicide", "kill myself", "end it all", "hurt myself", "self harm", "want to die",
	"no point living", "better off dead", "giving up on everything", "nothing matters anymore",
	"want to disappear", "end my life", "can't go on", "no reason to live",
	"worthless", "hopeless", "can't take it anymore", "nobody cares", "alone forever",
	"tired of living", "don't want to exist", "everyone would be better without me",
}

type moodBucket struct {
	mood     Mood
	weight   int
	keywords []string
}

// moodBuckets are evaluated additively: every bucket with at least one
// match contributes weight*matches to the total score.
var moodBuckets = []moodBucket{
	{
		mood:   MoodSad,
		weight: -2,
		keywords: []string{
			"sad", "depressed", "anxious", "worried", "frustrated",
			"angry", "upset", "disappointed", "lonely", "tired", "exhausted", "confused",
			"scared", "afraid", "nervous", "insecure", "doubt", "failure", "rejected",
			"heartbroken", "devastated", "miserable", "terrible", "awful", "horrible",
			"struggling", "difficult", "painful", "hurt", "broken", "empty", "numb",
			"helpless",
		},
	},
	{
		mood:   MoodHappy,
		weight: 2,
		keywords: []string{
			"happy", "joyful", "grateful", "thankful", "blessed", "amazing",
			"wonderful", "fantastic", "great", "excellent", "perfect", "love", "loved",
			"confident", "proud", "accomplished", "successful", "inspired",
			"hopeful", "optimistic", "peaceful", "calm", "relaxed", "content", "satisfied",
			"delighted", "cheerful", "bright", "brilliant", "awesome",
		},
	},
	{
		mood:   MoodCurious,
		weight: 0,
		keywords: []string{
			"okay", "fine", "alright", "normal", "usual", "regular", "average", "typical",
			"ordinary", "common", "basic", "simple", "plain",
		},
	},
	{
		mood:   MoodExcited,
		weight: 3,
		keywords: []string{
			"excited", "thrilled", "pumped", "energized", "enthusiastic", "eager",
			"can't wait", "looking forward", "anticipating", "ready",
			"motivated", "driven", "passionate", "fired up", "hyped",
		},
	},
	{
		mood:   MoodStressed,
		weight: -1,
		keywords: []string{
			"stressed", "pressure", "deadline", "overwhelmed", "busy", "hectic",
			"rushed", "frantic", "panicked", "urgent", "emergency",
			"too much", "can't handle", "breaking point", "burnout",
		},
	},
}

// TopicGeneral is the catch-all tag applied when no topic matches.
const TopicGeneral = "general"

type topicBucket struct {
	topic    string
	keywords []string
}

// topicBuckets in declaration order; ties in relevance resolve in this
// order.
var topicBuckets = []topicBucket{
	{"academic-stress", []string{
		"exam", "test", "study", "homework", "assignment", "grade", "marks", "school",
		"college", "university", "professor", "teacher", "class", "course", "degree",
		"graduation", "thesis", "semester", "jee", "neet", "board",
	}},
	{"family-issues", []string{
		"family", "parents", "mother", "father", "mom", "dad", "sibling", "brother",
		"sister", "relatives", "home", "household",
	}},
	{"anxiety", []string{
		"anxiety", "panic", "worry", "fear", "phobia", "nervous", "anxious",
		"panic attack", "tension", "restless", "uneasy", "apprehensive",
	}},
	{"depression", []string{
		"depression", "depressed", "sad", "hopeless", "empty", "numb",
		"worthless", "guilty", "shame", "regret", "grief", "loss",
		"mourning", "crying", "tears",
	}},
	{"relationships", []string{
		"relationship", "boyfriend", "girlfriend", "partner", "dating", "love",
		"breakup", "marriage", "romantic", "crush", "friendship", "friends", "lonely",
	}},
	{"career", []string{
		"job", "work", "career", "employment", "interview", "resume", "salary",
		"promotion", "boss", "colleague", "workplace", "professional", "business",
		"internship", "hiring", "fired", "quit",
	}},
	{"self-esteem", []string{
		"confidence", "self-worth", "self-esteem", "insecurity", "appearance",
		"body image", "ugly", "stupid", "useless", "comparison", "jealous",
		"inadequate", "not good enough",
	}},
}

// Classify maps message text to a mood, a bounded score, ranked topics
// and a crisis flag. It is pure: callers own logging and persistence.
// Empty or whitespace-only input yields the neutral default rather than
// an error.
func Classify(text string) Result {
	normalized := strings.TrimSpace(strings.ToLower(text))
	if normalized == "" {
		return defaultResult()
	}

	for _, keyword := range crisisKeywords {
		if strings.Contains(normalized, keyword) {
			return Result{
				Score:          minScore,
				Mood:           MoodCrisis,
				Confidence:     confidence(1, len(text)),
				Topics:         detectTopics(normalized),
				CrisisDetected: true,
				KeywordHits:    1,
			}
		}
	}

	totalScore := 0
	matchedBuckets := 0
	for _, bucket := range moodBuckets {
		matches := 0
		for _, keyword := range bucket.keywords {
			if strings.Contains(normalized, keyword) {
				matches++
			}
		}
		if matches > 0 {
			totalScore += bucket.weight * matches
			matchedBuckets++
		}
	}

	return Result{
		Score:       clampScore(totalScore),
		Mood:        primaryMood(totalScore, matchedBuckets),
		Confidence:  confidence(matchedBuckets, len(text)),
		Topics:      detectTopics(normalized),
		KeywordHits: matchedBuckets,
	}
}

func primaryMood(score, matchedBuckets int) Mood {
	if matchedBuckets == 0 {
		return MoodCurious
	}
	switch {
	case score >= 3:
		return MoodExcited
	case score >= 1:
		return MoodHappy
	case score <= -3:
		return MoodSad
	case score <= -1:
		return MoodStressed
	default:
		return MoodCurious
	}
}

// detectTopics ranks topic buckets by relevance (matches over bucket
// size) and returns the top three. Runs independently of mood scoring.
func detectTopics(normalized string) []string {
	type scored struct {
		topic     string
		relevance float64
	}

	var detected []scored
	for _, bucket := range topicBuckets {
		matches := 0
		for _, keyword := range bucket.keywords {
			if strings.Contains(normalized, keyword) {
				matches++
			}
		}
		if matches > 0 {
			detected = append(detected, scored{
				topic:     bucket.topic,
				relevance: float64(matches) / float64(len(bucket.keywords)),
			})
		}
	}

	if len(detected) == 0 {
		return []string{TopicGeneral}
	}

	// Stable sort keeps declaration order for equal relevance.
	for i := 1; i < len(detected); i++ {
		for j := i; j > 0 && detected[j].relevance > detected[j-1].relevance; j-- {
			detected[j], detected[j-1] = detected[j-1], detected[j]
		}
	}

	if len(detected) > 3 {
		detected = detected[:3]
	}
	topics := make([]string, len(detected))
	for i, d := range detected {
		topics[i] = d.topic
	}
	return topics
}

// confidence starts at 0.5, grows with matched categories (capped at
// +0.3) and with message length, and never exceeds 1.0.
func confidence(matchedBuckets, messageLength int) float64 {
	c := 0.5
	bonus := float64(matchedBuckets) * 0.1
	if bonus > 0.3 {
		bonus = 0.3
	}
	c += bonus
	if messageLength > 50 {
		c += 0.1
	}
	if messageLength > 100 {
		c += 0.1
	}
	if c > 1.0 {
		c = 1.0
	}
	return c
}

func clampScore(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

func defaultResult() Result {
	return Result{Score: 0, Mood: MoodCurious, Confidence: 0.1}
}
