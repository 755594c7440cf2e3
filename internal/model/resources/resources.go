package resources

// Helpline is a crisis support line surfaced with crisis responses and
// through the resources API.
type Helpline struct {
	Name        string   `json:"name"`
	Number      string   `json:"number"`
	Email       string   `json:"email,omitempty"`
	Website     string   `json:"website,omitempty"`
	Available   string   `json:"available"`
	Languages   []string `json:"languages,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Professional is an external counseling service listing.
type Professional struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Website     string   `json:"website"`
	Services    []string `json:"services"`
	Cost        string   `json:"cost"`
	Description string   `json:"description"`
}

// Exercise is a guided self-help technique.
type Exercise struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

// CrisisPayload accompanies every crisis response.
type CrisisPayload struct {
	Helplines []Helpline `json:"helplines"`
	Emergency string     `json:"emergency"`
}

// CrisisMessage is the fixed, non-randomized supportive response for
// crisis-classified messages. The language model is never consulted on
// this path.
const CrisisMessage = "I'm really concerned about you and want you to know that you're not alone. " +
	"What you're feeling is valid, but there are people who can help you through this. " +
	"Please reach out to someone you trust or contact a helpline immediately. " +
	"Your life has value and meaning."

// EmergencyNumber is the national emergency number included in crisis
// payloads.
const EmergencyNumber = "112"

var helplines = []Helpline{
	{
		Name:        "AASRA",
		Number:      "91-9820466726",
		Email:       "aasrahelpline@yahoo.com",
		Website:     "http://www.aasra.info",
		Available:   "24/7",
		Languages:   []string{"English", "Hindi"},
		Description: "Suicide prevention helpline",
	},
	{
		Name:        "Sneha India",
		Number:      "91-44-24640050",
		Email:       "help@snehaindia.org",
		Website:     "http://www.snehaindia.org",
		Available:   "24/7",
		Languages:   []string{"English", "Tamil", "Hindi"},
		Description: "Emotional support and suicide prevention",
	},
	{
		Name:        "Vandrevala Foundation",
		Number:      "1860-2662-345",
		Email:       "help@vandrevalafoundation.com",
		Website:     "https://www.vandrevalafoundation.com",
		Available:   "24/7",
		Languages:   []string{"English", "Hindi", "Marathi", "Gujarati"},
		Description: "Mental health support and counseling",
	},
	{
		Name:        "iCall",
		Number:      "91-9152987821",
		Email:       "icall@tiss.edu",
		Website:     "http://www.icallhelpline.org",
		Available:   "Monday-Saturday, 8AM-10PM",
		Languages:   []string{"English", "Hindi"},
		Description: "Psychosocial helpline by TISS",
	},
}

var professionals = []Professional{
	{
		Name:        "Amaha",
		Type:        "Online Platform",
		Website:     "https://www.amaha.in",
		Services:    []string{"Therapy", "Psychiatry", "Self-help tools"},
		Cost:        "Paid consultations available",
		Description: "Professional mental health platform with licensed therapists",
	},
	{
		Name:        "YourDOST",
		Type:        "Online Counseling",
		Website:     "https://yourdost.com",
		Services:    []string{"Chat therapy", "Call therapy", "Group sessions"},
		Cost:        "Free and paid options",
		Description: "Online emotional wellness platform",
	},
	{
		Name:        "BetterHelp India",
		Type:        "Online Therapy",
		Website:     "https://www.betterhelp.com",
		Services:    []string{"Individual therapy", "Couples therapy"},
		Cost:        "Subscription-based",
		Description: "Professional online therapy platform",
	},
}

var exercises = []Exercise{
	{
		Title:       "Breathing Exercises",
		Category:    "Anxiety Management",
		Description: "Simple breathing techniques to calm anxiety",
		Steps: []string{
			"Sit comfortably with your back straight",
			"Breathe in slowly through your nose for 4 counts",
			"Hold your breath for 4 counts",
			"Exhale slowly through your mouth for 6 counts",
			"Repeat 5-10 times",
		},
	},
	{
		Title:       "5-4-3-2-1 Grounding Technique",
		Category:    "Anxiety Management",
		Description: "Grounding technique to manage panic and anxiety",
		Steps: []string{
			"Name 5 things you can see around you",
			"Name 4 things you can touch",
			"Name 3 things you can hear",
			"Name 2 things you can smell",
			"Name 1 thing you can taste",
		},
	},
	{
		Title:       "Progressive Muscle Relaxation",
		Category:    "Stress Management",
		Description: "Release physical tension one muscle group at a time",
		Steps: []string{
			"Find a quiet, comfortable place to sit or lie down",
			"Tense the muscles in your feet for 5 seconds, then release",
			"Work upward through legs, torso, arms and face",
			"Notice the contrast between tension and relaxation",
		},
	},
}

// Helplines returns the crisis helpline directory.
func Helplines() []Helpline {
	return append([]Helpline(nil), helplines...)
}

// Professionals returns the professional services directory.
func Professionals() []Professional {
	return append([]Professional(nil), professionals...)
}

// SelfHelp returns the guided exercise library.
func SelfHelp() []Exercise {
	return append([]Exercise(nil), exercises...)
}

// Crisis returns the payload attached to crisis responses.
func Crisis() CrisisPayload {
	return CrisisPayload{Helplines: Helplines(), Emergency: EmergencyNumber}
}
