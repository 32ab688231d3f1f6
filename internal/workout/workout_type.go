package workout

import "fmt"

// WorkoutType selects the main-set builder. The zero value is not a valid type.
type WorkoutType int

const (
	WorkoutCardio WorkoutType = iota + 1
	WorkoutEndurance
	WorkoutInterval
	WorkoutRatePyramid
	WorkoutTimePyramid
	WorkoutStrength
	WorkoutSurprise
)

// WorkoutTypes lists the selectable types in UI order.
var WorkoutTypes = []WorkoutType{
	WorkoutCardio,
	WorkoutEndurance,
	WorkoutInterval,
	WorkoutRatePyramid,
	WorkoutTimePyramid,
	WorkoutStrength,
	WorkoutSurprise,
}

var workoutTypeNames = map[WorkoutType]string{
	WorkoutCardio:      "Cardio",
	WorkoutEndurance:   "Endurance",
	WorkoutInterval:    "Interval",
	WorkoutRatePyramid: "Rate Pyramid",
	WorkoutTimePyramid: "Time Pyramid",
	WorkoutStrength:    "Strength",
	WorkoutSurprise:    "Surprise",
}

func (t WorkoutType) String() string {
	if name, ok := workoutTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("WorkoutType(%d)", int(t))
}

// ParseWorkoutType resolves a label such as "Interval ⚡" or "rate-pyramid".
// Unknown labels return ErrUnknownWorkoutType.
func ParseWorkoutType(label string) (WorkoutType, error) {
	norm := normalizeLabel(label)
	for t, name := range workoutTypeNames {
		if normalizeLabel(name) == norm {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, label)
}

func (t WorkoutType) MarshalText() ([]byte, error) {
	if _, ok := workoutTypeNames[t]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownWorkoutType, int(t))
	}
	return []byte(t.String()), nil
}

func (t *WorkoutType) UnmarshalText(text []byte) error {
	parsed, err := ParseWorkoutType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Catalog describes what a caller may request.
type Catalog struct {
	WorkoutTypes []string `json:"workout_types" yaml:"workout_types"`
	Difficulties []string `json:"difficulties" yaml:"difficulties"`
	MinMinutes   float64  `json:"min_minutes" yaml:"min_minutes"`
	MaxMinutes   float64  `json:"max_minutes,omitempty" yaml:"max_minutes,omitempty"`
}

// NewCatalog lists every workout type and difficulty label. maxMinutes is
// the caller's clamp and is omitted when zero.
func NewCatalog(maxMinutes float64) *Catalog {
	c := &Catalog{MinMinutes: MinTotalMinutes, MaxMinutes: maxMinutes}
	for _, t := range WorkoutTypes {
		c.WorkoutTypes = append(c.WorkoutTypes, t.String())
	}
	for _, d := range Difficulties {
		c.Difficulties = append(c.Difficulties, d.String())
	}
	return c
}
