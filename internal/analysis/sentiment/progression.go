package sentiment

// PlantEffect describes how a mood moves the companion plant shown by
// the client. Purely cosmetic metadata echoed back on every response.
type PlantEffect struct {
	Growth    int    `json:"growthChange"`
	Color     string `json:"color"`
	Animation string `json:"animation"`
}

var moodProgression = map[Mood]PlantEffect{
	MoodCrisis:   {Growth: -5, Color: "#8B0000", Animation: "wilt"},
	MoodSad:      {Growth: -2, Color: "#4682B4", Animation: "droop"},
	MoodStressed: {Growth: -1, Color: "#FF6347", Animation: "shake"},
	MoodCurious:  {Growth: 1, Color: "#32CD32", Animation: "sway"},
	MoodHappy:    {Growth: 3, Color: "#FFD700", Animation: "bloom"},
	MoodExcited:  {Growth: 5, Color: "#FF69B4", Animation: "sparkle"},
}

// PlantEffectFor maps a mood to its plant effect, defaulting to the
// curious sway for unknown moods.
func PlantEffectFor(mood Mood) PlantEffect {
	if effect, ok := moodProgression[mood]; ok {
		return effect
	}
	return moodProgression[MoodCurious]
}
