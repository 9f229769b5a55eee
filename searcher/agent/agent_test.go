package agent

import (
	"jump61/game"
	"jump61/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	b := game.NewBoard(2)
	require.Equal(t, []int{0, 1, 2, 3}, LegalMoves(b, game.Red))
	require.Empty(t, LegalMoves(b, game.Blue), "not blue's turn")

	require.NoError(t, b.AddMoveAt(game.Red, 1, 1))
	require.Equal(t, []int{1, 2, 3}, LegalMoves(b, game.Blue))
}

func TestSearchAgent(t *testing.T) {
	t.Run("falls back to the first legal square", func(t *testing.T) {
		a := NewSearchAgent(searcher.NewMinimax(searcher.WithDepth(2)))

		move, metric := a.FindMove(game.NewBoard(3), game.Red)
		require.Equal(t, 0, move)
		require.True(t, metric.Fallback)
	})

	t.Run("plays the searched move", func(t *testing.T) {
		b := game.NewBoard(3)
		require.NoError(t, b.Set(1, 1, 2, game.Red))
		require.NoError(t, b.Set(2, 2, 1, game.Red))
		require.NoError(t, b.Set(3, 3, 2, game.Blue))
		a := NewSearchAgent(searcher.NewMinimax(searcher.WithDepth(1)))

		move, metric := a.FindMove(b.ReadOnly(), game.Red)
		require.Equal(t, 0, move)
		require.False(t, metric.Fallback)
		require.Equal(t, 3, metric.Value)
	})

	t.Run("blue without squares is a forced win", func(t *testing.T) {
		b := game.NewBoard(3)
		require.NoError(t, b.Set(1, 1, 2, game.Red))
		require.NoError(t, b.Set(2, 2, 2, game.Red))
		require.Equal(t, game.Red, b.WhoseMove())
		a := NewSearchAgent(searcher.NewMinimax(searcher.WithDepth(2)))

		move, metric := a.FindMove(b, game.Red)
		require.Equal(t, 0, move)
		require.False(t, metric.Fallback)
		require.Equal(t, searcher.PosInf, searcher.Value(metric.Value))
		require.True(t, searcher.Value(metric.Value).IsInf())
	})

	t.Run("blue falls back past red's square", func(t *testing.T) {
		b := game.NewBoard(3)
		require.NoError(t, b.AddMove(game.Red, 0))
		a := NewSearchAgent(searcher.NewMinimax())

		move, _ := a.FindMove(b, game.Blue)
		require.Equal(t, 1, move)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("same seed, same moves", func(t *testing.T) {
		a1, a2 := NewRandomAgent(42), NewRandomAgent(42)
		b := game.NewBoard(4)
		for i := 0; i < 20 && b.Winner() == game.Neutral; i++ {
			side := b.WhoseMove()
			m1, _ := a1.FindMove(b, side)
			m2, _ := a2.FindMove(b, side)
			require.Equal(t, m1, m2)
			require.True(t, b.IsLegal(side, m1))
			require.NoError(t, b.AddMove(side, m1))
		}
	})

	t.Run("no legal move", func(t *testing.T) {
		move, _ := NewRandomAgent(1).FindMove(game.NewBoard(2), game.Blue)
		require.Equal(t, -1, move)
	})
}
