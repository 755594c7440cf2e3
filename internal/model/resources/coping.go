package resources

import (
	"math/rand"
	"strings"
)

// copingPools map concern keywords to candidate strategies. Lookup is
// substring-based and intentionally best-effort: a message touching
// several concerns pools all their strategies before one is drawn.
var copingPools = []struct {
	triggers   []string
	strategies []string
}{
	{
		triggers: []string{"anxious", "anxiety"},
		strategies: []string{
			"Try the 5-4-3-2-1 grounding technique: Name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste",
			"Practice deep breathing: Inhale for 4 counts, hold for 4, exhale for 6",
			"Write down your worries for 10 minutes, then close the notebook",
		},
	},
	{
		triggers: []string{"stress", "pressure"},
		strategies: []string{
			"Take a 10-minute walk outside or around your room",
			"Listen to calming music or nature sounds",
			"Try progressive muscle relaxation: tense and release each muscle group",
		},
	},
	{
		triggers: []string{"exam", "study"},
		strategies: []string{
			"Break large tasks into smaller, manageable chunks",
			"Use the Pomodoro technique: 25 minutes focused work, 5-minute break",
			"Remember: Your worth isn't defined by grades or exam results",
		},
	},
	{
		triggers: []string{"family", "parents"},
		strategies: []string{
			"Practice setting gentle boundaries with family expectations",
			"Find a trusted family member or friend to talk to",
			"Remember that generational differences are normal and okay",
		},
	},
}

// PickCopingStrategy returns one strategy drawn from every pool whose
// trigger appears in the message, or empty when none match. rng must
// not be nil.
func PickCopingStrategy(message string, rng *rand.Rand) string {
	lower := strings.ToLower(message)

	var candidates []string
	for _, pool := range copingPools {
		for _, trigger := range pool.triggers {
			if strings.Contains(lower, trigger) {
				candidates = append(candidates, pool.strategies...)
				break
			}
		}
	}

	if len(candidates) == 0 {
		return ""
	}
	return candidates[rng.Intn(len(candidates))]
}
