package agent

import (
	"jump61/experiments/metrics"
	"jump61/game"

	"github.com/samber/lo"
)

type Agent interface {
	// FindMove returns the square side plays on b and performance metrics (if collected) from the search
	FindMove(b game.Reader, side game.Side) (int, metrics.SearchMetric)
}

// LegalMoves returns the squares side may play on b, in index order.
func LegalMoves(b game.Reader, side game.Side) []int {
	return lo.Filter(lo.Range(b.Size()*b.Size()), func(n int, _ int) bool {
		return b.IsLegal(side, n)
	})
}
