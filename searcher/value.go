package searcher

import (
	"math"
	"strconv"
)

// Value is a search score, positive favouring Red. NegInf and PosInf are
// the initial bounds of a search and the result of a node without
// candidate moves; Neg maps them onto each other instead of wrapping.
type Value int

const (
	NegInf Value = math.MinInt
	PosInf Value = math.MaxInt
)

func (v Value) IsInf() bool {
	return v == NegInf || v == PosInf
}

// Neg returns the value from the other side's point of view.
func (v Value) Neg() Value {
	switch v {
	case NegInf:
		return PosInf
	case PosInf:
		return NegInf
	}
	return -v
}

func (v Value) String() string {
	switch v {
	case NegInf:
		return "-inf"
	case PosInf:
		return "+inf"
	}
	return strconv.Itoa(int(v))
}
