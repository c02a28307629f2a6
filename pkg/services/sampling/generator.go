package sampling

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/de-tools/heightweight/pkg/models/domain"
)

// Source supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSeededSource returns a deterministic source. A zero seed picks one from
// the wall clock.
func NewSeededSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type Generator struct {
	src         Source
	populations [2]domain.Population
}

func NewGenerator(src Source, populations [2]domain.Population) *Generator {
	return &Generator{
		src:         src,
		populations: populations,
	}
}

// Generate draws count observations from an even mixture of the two
// populations. A draw above 0.5 selects the first population.
func (g *Generator) Generate(count int) domain.Sample {
	if count < 0 {
		count = 0
	}

	sample := make(domain.Sample, 0, count)
	for i := 0; i < count; i++ {
		pop := g.populations[1]
		if g.src.Float64() > 0.5 {
			pop = g.populations[0]
		}

		height := Normal(g.src, pop.Height.Mean, pop.Height.StdDev)
		weight := Normal(g.src, pop.Weight.Mean, pop.Weight.StdDev)
		sample = append(sample, domain.NewObservation(height, weight))
	}
	return sample
}

// Normal returns one Box-Muller deviate scaled to mean and stdDev. The paired
// sine deviate is discarded.
func Normal(src Source, mean, stdDev float64) float64 {
	u := 1 - src.Float64()
	v := src.Float64()
	z := math.Sqrt(-2.0*math.Log(u)) * math.Cos(2.0*math.Pi*v)
	return z*stdDev + mean
}
