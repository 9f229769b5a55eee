package game

import (
	"fmt"
	"strings"
)

// Side identifies the owner of a cell.
type Side int

const (
	Neutral Side = iota
	Red
	Blue
)

// Opposite returns the other player. Neutral has no opposite.
func (s Side) Opposite() Side {
	switch s {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return Neutral
	}
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "neutral"
	}
}

// ParseSide converts a side name to a Side.
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "red":
		return Red, nil
	case "blue":
		return Blue, nil
	case "neutral", "white":
		return Neutral, nil
	}
	return Neutral, fmt.Errorf("%w: %q", ErrUnknownSide, name)
}

// Cell is the content of one square: an owner and a charge count.
type Cell struct {
	Side   Side
	Charge int
}

// Initial is the content of every square of an empty board.
var Initial = Cell{Side: Neutral, Charge: 1}

// NewCell validates the cell invariants: neutral cells hold exactly one
// charge, owned cells hold at least one.
func NewCell(side Side, charge int) (Cell, error) {
	switch side {
	case Neutral:
		if charge != 1 {
			return Cell{}, fmt.Errorf("%w: neutral cell with %d charge", ErrInvalidCell, charge)
		}
	case Red, Blue:
		if charge < 1 {
			return Cell{}, fmt.Errorf("%w: %s cell with %d charge", ErrInvalidCell, side, charge)
		}
	default:
		return Cell{}, fmt.Errorf("%w: side %d", ErrInvalidCell, side)
	}
	return Cell{Side: side, Charge: charge}, nil
}

func (c Cell) suffix() string {
	switch c.Side {
	case Red:
		return "r"
	case Blue:
		return "b"
	default:
		return "-"
	}
}

func (c Cell) String() string {
	return fmt.Sprintf("%d%s", c.Charge, c.suffix())
}
