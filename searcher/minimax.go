package searcher

import (
	"errors"
	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/meta"
	"jump61/utils"

	"github.com/rs/zerolog/log"
)

// ErrNoMove is returned when the side to move has no candidate square at
// the root. Candidates are the squares the side already owns.
var ErrNoMove = errors.New("no candidate move")

type Option func(m *Minimax)

// Reporter is told the row and column of every move the search chooses.
type Reporter func(row, col int)

type Minimax struct {
	depth    int
	evaluate game.Evaluate
	reporter Reporter
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = utils.Clamp(depth, 1, meta.MAX_SEARCH_DEPTH)
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithReporter(reporter Reporter) Option {
	return func(m *Minimax) {
		if reporter != nil {
			m.reporter = reporter
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func logMove(row, col int) {
	log.Debug().Int("row", row).Int("col", col).Msg("search chose move")
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    meta.SEARCH_DEPTH,
		evaluate: game.EvaluateCells,
		reporter: logMove,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// ChooseMove searches the position on board for side and returns the
// square to play. The game must not be over and it must be side's turn.
// Red always maximizes. The board is never modified: every explored
// position is a private copy.
func (m *Minimax) ChooseMove(board game.Reader, side game.Side) (int, metrics.SearchMetric, error) {
	work := game.NewBoardFrom(board)
	sense := 1
	if side == game.Blue {
		sense = -1
	}

	s := &search{evaluate: m.evaluate, metrics: m.metrics, found: -1}
	m.metrics.Start(m.depth)
	value := s.minMax(work, m.depth, true, sense, NegInf, PosInf)
	metric := m.metrics.Complete(int(value))

	log.Debug().
		Str("side", side.String()).
		Int("depth", m.depth).
		Str("value", value.String()).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Msg("minimax-search")

	if s.found < 0 {
		return -1, metric, ErrNoMove
	}
	m.reporter(work.Row(s.found), work.Col(s.found))
	return s.found, metric, nil
}

// search holds the state of one ChooseMove call.
type search struct {
	evaluate game.Evaluate
	metrics  metrics.Collector
	found    int
}

// minMax returns the value of board searched to depth plies, recording the
// best root move in s.found iff saveMove. With sense 1 Red is to move and
// maximizes; with sense -1 Blue is to move and minimizes. At depth 0 or on
// a won board the static evaluation is returned and no move is recorded.
func (s *search) minMax(board *game.Board, depth int, saveMove bool, sense int, alpha, beta Value) Value {
	s.metrics.AddNode()
	if depth == 0 || board.Winner() != game.Neutral {
		return Value(s.evaluate(board))
	}

	if sense == 1 {
		best := NegInf
		for _, square := range board.Squares(game.Red) {
			next := s.play(board, game.Red, square)
			response := s.minMax(next, depth-1, false, -1, alpha, beta)
			if response > best {
				best = response
				if saveMove {
					s.found = square
				}
				alpha = max(alpha, best)
				if alpha >= beta {
					s.metrics.AddCutoff()
					return best
				}
			}
		}
		return best
	}

	best := PosInf
	for _, square := range board.Squares(game.Blue) {
		next := s.play(board, game.Blue, square)
		response := s.minMax(next, depth-1, false, 1, alpha, beta)
		if response < best {
			best = response
			if saveMove {
				s.found = square
			}
			beta = min(beta, best)
			if alpha >= beta {
				s.metrics.AddCutoff()
				return best
			}
		}
	}
	return best
}

// play returns a copy of board with player's spot added to square.
func (s *search) play(board *game.Board, player game.Side, square int) *game.Board {
	next := game.NewBoardFrom(board)
	s.metrics.AddClone()
	// Squares only yields squares on the board
	_ = next.AddMove(player, square)
	return next
}
