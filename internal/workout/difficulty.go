package workout

// Difficulty selects an intensity tier. DifficultyDefault is the explicit
// fallback used for any label that is not Easy, Medium or Hard.
type Difficulty int

const (
	DifficultyDefault Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
)

// Difficulties lists the selectable tiers in UI order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

var difficultyNames = map[Difficulty]string{
	DifficultyDefault: "Default",
	DifficultyEasy:    "Easy",
	DifficultyMedium:  "Medium",
	DifficultyHard:    "Hard",
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return difficultyNames[DifficultyDefault]
}

// ParseDifficulty maps a label to a tier. It never fails: unknown labels
// resolve to DifficultyDefault.
func ParseDifficulty(label string) Difficulty {
	switch normalizeLabel(label) {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return DifficultyDefault
	}
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	*d = ParseDifficulty(string(text))
	return nil
}

// Profile holds the base stroke rate and resistance every builder scales from.
type Profile struct {
	StrokeRate int
	Resistance int
}

var profiles = map[Difficulty]Profile{
	DifficultyEasy:    {StrokeRate: 22, Resistance: 4},
	DifficultyMedium:  {StrokeRate: 26, Resistance: 6},
	DifficultyHard:    {StrokeRate: 30, Resistance: 8},
	DifficultyDefault: {StrokeRate: 24, Resistance: 5},
}

// ProfileFor returns the intensity profile for d, or the default mid-tier
// profile if d is not a known tier.
func ProfileFor(d Difficulty) Profile {
	if p, ok := profiles[d]; ok {
		return p
	}
	return profiles[DifficultyDefault]
}
