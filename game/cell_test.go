package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCell(t *testing.T) {
	t.Run("neutral cells hold exactly one spot", func(t *testing.T) {
		cell, err := NewCell(Neutral, 1)
		require.NoError(t, err)
		require.Equal(t, Initial, cell)

		_, err = NewCell(Neutral, 2)
		require.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("owned cells hold at least one spot", func(t *testing.T) {
		cell, err := NewCell(Blue, 4)
		require.NoError(t, err)
		require.Equal(t, Cell{Side: Blue, Charge: 4}, cell)

		_, err = NewCell(Red, 0)
		require.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("unknown sides are rejected", func(t *testing.T) {
		_, err := NewCell(Side(7), 1)
		require.ErrorIs(t, err, ErrInvalidCell)
	})
}

func TestCellString(t *testing.T) {
	require.Equal(t, "1-", Initial.String())
	require.Equal(t, "3r", Cell{Side: Red, Charge: 3}.String())
	require.Equal(t, "2b", Cell{Side: Blue, Charge: 2}.String())
}

func TestSide(t *testing.T) {
	t.Run("opposite", func(t *testing.T) {
		require.Equal(t, Blue, Red.Opposite())
		require.Equal(t, Red, Blue.Opposite())
		require.Equal(t, Neutral, Neutral.Opposite())
	})

	t.Run("parse", func(t *testing.T) {
		for _, side := range []Side{Neutral, Red, Blue} {
			parsed, err := ParseSide(side.String())
			require.NoError(t, err)
			require.Equal(t, side, parsed)
		}
		parsed, err := ParseSide(" RED ")
		require.NoError(t, err)
		require.Equal(t, Red, parsed)

		_, err = ParseSide("green")
		require.ErrorIs(t, err, ErrUnknownSide)
	})
}
