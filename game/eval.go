package game

// EvaluateCells scores a position as the number of squares Red owns minus
// the number Blue owns.
func EvaluateCells(b Reader) int {
	return b.NumOfSide(Red) - b.NumOfSide(Blue)
}

// EvaluateCharge weighs each owned square by its charge, positive for Red.
func EvaluateCharge(b Reader) int {
	score := 0
	for _, c := range b.Cells() {
		switch c.Side {
		case Red:
			score += c.Charge
		case Blue:
			score -= c.Charge
		}
	}
	return score
}
