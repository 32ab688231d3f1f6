package workout

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// Rand is the randomness the surprise builder draws from.
type Rand interface {
	// IntN returns a value in [0, n). n > 0.
	IntN(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// NewRand returns a Rand safe for concurrent use. The same non-zero seed
// always yields the same sequence; seed 0 picks a random one.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type surpriseChoice struct {
	name  string
	build builderFunc
}

var surpriseChoices = []surpriseChoice{
	{name: "steady state", build: buildSteadyState},
	{name: "interval", build: buildInterval},
	{name: "strength", build: buildStrength},
}

// buildSurprise splits the allotment into a random number of equal parts and
// fills each with a randomly chosen builder.
func (g *Generator) buildSurprise(allotted float64, d Difficulty) []Segment {
	count := g.surpriseMin + g.rng.IntN(g.surpriseMax-g.surpriseMin+1)
	share := allotted / float64(count)

	var segs []Segment
	for i := 1; i <= count; i++ {
		choice := surpriseChoices[g.rng.IntN(len(surpriseChoices))]
		g.log.Debug("surprise segment", "index", i, "builder", choice.name, "seconds", share)
		segs = append(segs, prefixLabels(fmt.Sprintf("Surprise Segment %d: ", i), choice.build(share, d))...)
	}
	return segs
}
