package tetris

import "math/rand/v2"

// Generator draws the next piece to spawn.
type Generator interface {
	Next() Shape
}

// RandomGenerator picks every piece independently and uniformly from the
// catalog. There is no bag and no repeat suppression.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator returns a generator seeded with seed. Equal seeds yield
// equal piece sequences.
func NewRandomGenerator(seed uint64) *RandomGenerator {
	return &RandomGenerator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (g *RandomGenerator) Next() Shape {
	return catalog[g.rng.IntN(len(catalog))]
}

// SequenceGenerator replays a fixed list of kinds, wrapping around at the end.
type SequenceGenerator struct {
	kinds []Kind
	next  int
}

// NewSequenceGenerator panics if kinds is empty.
func NewSequenceGenerator(kinds ...Kind) *SequenceGenerator {
	if len(kinds) == 0 {
		panic("tetris: sequence generator needs at least one kind")
	}
	return &SequenceGenerator{kinds: kinds}
}

func (g *SequenceGenerator) Next() Shape {
	shape := ShapeOf(g.kinds[g.next])
	g.next = (g.next + 1) % len(g.kinds)
	return shape
}
