package workout

// Segment is one step of a rowing plan.
type Segment struct {
	Label           string  `json:"label" yaml:"label"`
	DurationSeconds float64 `json:"duration_seconds" yaml:"duration_seconds"`
	StrokeRate      int     `json:"stroke_rate" yaml:"stroke_rate"`
	Resistance      int     `json:"resistance" yaml:"resistance"`
}

// Plan is a generated workout in execution order. It always starts with a
// single Warm-up segment and ends with a single Cool-down segment.
type Plan struct {
	Type         WorkoutType `json:"workout_type" yaml:"workout_type"`
	Difficulty   Difficulty  `json:"difficulty" yaml:"difficulty"`
	TotalMinutes float64     `json:"total_minutes" yaml:"total_minutes"`
	Segments     []Segment   `json:"segments" yaml:"segments"`
}

// TotalSeconds sums segment durations in plan order.
func (p *Plan) TotalSeconds() float64 {
	var total float64
	for _, s := range p.Segments {
		total += s.DurationSeconds
	}
	return total
}

// prefixLabels returns a copy of segs with prefix prepended to every label.
func prefixLabels(prefix string, segs []Segment) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		s.Label = prefix + s.Label
		out[i] = s
	}
	return out
}
