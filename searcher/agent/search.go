package agent

import (
	"errors"
	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/searcher"

	"github.com/rs/zerolog/log"
)

type searchAgent struct {
	minimax *searcher.Minimax
}

// NewSearchAgent returns an agent that plays the move chosen by minimax.
// Where the search has no candidate, as on an empty board, the agent plays
// the first legal square instead.
func NewSearchAgent(minimax *searcher.Minimax) Agent {
	return searchAgent{minimax: minimax}
}

func (a searchAgent) FindMove(b game.Reader, side game.Side) (int, metrics.SearchMetric) {
	move, metric, err := a.minimax.ChooseMove(b, side)
	if err == nil {
		score := searcher.Value(metric.Value)
		if side == game.Blue {
			score = score.Neg()
		}
		log.Debug().
			Str("side", side.String()).
			Int("square", move).
			Str("score", score.String()).
			Bool("forced", score.IsInf()).
			Msg("search agent move")
		return move, metric
	}
	if !errors.Is(err, searcher.ErrNoMove) {
		log.Error().Err(err).Msg("search failed")
	}

	legal := LegalMoves(b, side)
	if len(legal) == 0 {
		return -1, metric
	}
	log.Warn().Str("side", side.String()).Int("square", legal[0]).Msg("search found no candidate, playing first legal square")
	metric.Fallback = true
	return legal[0], metric
}
