package domain

// Mood is a single classification label summarizing the emotional tone of an
// entry's text. The set of valid moods is closed — see AllMoods.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
	MoodAngry   Mood = "angry"
	MoodAnxious Mood = "anxious"
	MoodExcited Mood = "excited"
	MoodCalm    Mood = "calm"
	MoodNeutral Mood = "neutral"
)

// AllMoods lists the full mood vocabulary in a fixed order.
// The classifier uses this order to break scoring ties, so changing it
// changes classification results.
var AllMoods = []Mood{
	MoodHappy,
	MoodSad,
	MoodAngry,
	MoodAnxious,
	MoodExcited,
	MoodCalm,
	MoodNeutral,
}

// Valid reports whether m is a member of the closed mood vocabulary.
func (m Mood) Valid() bool {
	for _, known := range AllMoods {
		if m == known {
			return true
		}
	}
	return false
}
