package agent

import (
	"jump61/experiments/metrics"
	"jump61/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent choosing uniformly among the legal
// squares. Agents built with the same seed play the same moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(b game.Reader, side game.Side) (int, metrics.SearchMetric) {
	legal := LegalMoves(b, side)
	if len(legal) == 0 {
		return -1, metrics.SearchMetric{}
	}
	return legal[a.rng.Intn(len(legal))], metrics.SearchMetric{}
}
