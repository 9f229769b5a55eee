package engine

import (
	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/meta"
	"jump61/searcher/agent"
	"jump61/utils"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

// sides lists the players in agent order: agents[0] plays Red.
var sides = []game.Side{game.Red, game.Blue}

type Local struct {
	ID       string
	board    *game.Board
	agents   [2]agent.Agent
	maxTurns int
	updates  []Update
	logger   zerolog.Logger
}

type Update struct {
	Step int
	Side game.Side
	Move int
	Row  int
	Col  int
	Hash game.StateHash
}

type Option func(e *Local)

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithBoard starts the game from a copy of b instead of an empty board.
func WithBoard(b game.Reader) Option {
	return func(e *Local) {
		e.board.Copy(b)
	}
}

func LocalEngine(size int, agents [2]agent.Agent, options ...Option) *Local {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}

	id := uuid.NewString()
	e := &Local{
		ID:       id,
		board:    game.NewBoard(size),
		agents:   agents,
		maxTurns: meta.MAX_TURNS,
		logger:   log.With().Str("game", id).Logger(),
	}
	for _, option := range options {
		option(e)
	}
	e.board.SetNotifier(func(b *game.Board) {
		e.logger.Trace().Int("pieces", b.NumPieces()).Str("winner", b.Winner().String()).Msg("redistribution")
	})
	return e
}

// Board returns a read-only view of the game board.
func (e *Local) Board() game.Reader {
	return e.board.ReadOnly()
}

// Updates returns the moves applied so far.
func (e *Local) Updates() []Update {
	return e.updates
}

// Run executes the entire game loop until a winner is found.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		ID:             e.ID,
		StartingPlayer: e.board.WhoseMove().String(),
		StartTime:      time.Now(),
	}
	e.logger.Info().Msgf("%s is starting", gameMetric.StartingPlayer)

	var moveMetrics []metrics.MoveMetric
	step := 1
	for e.board.Winner() == game.Neutral && step <= e.maxTurns {
		side := e.board.WhoseMove()
		agentIndex := utils.FindIndex(sides, side)

		move, searchMetric := e.agents[agentIndex].FindMove(e.board.ReadOnly(), side)
		if !e.board.IsLegal(side, move) {
			legal := agent.LegalMoves(e.board, side)
			if len(legal) == 0 {
				panic("no legal moves at all")
			}
			e.logger.Warn().Str("side", side.String()).Int("square", move).Msg("agent returned an illegal move, playing first legal square")
			move = legal[0]
			searchMetric.Fallback = true
		}

		if err := e.board.AddMove(side, move); err != nil {
			panic(err)
		}
		e.updates = append(e.updates, Update{
			Step: step,
			Side: side,
			Move: move,
			Row:  e.board.Row(move),
			Col:  e.board.Col(move),
			Hash: e.board.Hash(),
		})
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       side.String(),
			Square:       move,
			SearchMetric: searchMetric,
		})
		e.logger.Debug().Int("step", step).Str("side", side.String()).Int("row", e.board.Row(move)).Int("col", e.board.Col(move)).Msg("move")
		step++
	}

	winner := e.board.Winner()
	if winner != game.Neutral {
		e.logger.Info().Msgf("game ended with winner %s after %d moves", winner, len(e.updates))
	} else {
		e.logger.Info().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}

	gameMetric.Winner = winner.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(e.updates)
	return winner.String(), gameMetric, moveMetrics
}
