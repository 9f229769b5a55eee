package game

// jump resolves overflow starting from seed, the only square that may be
// over-full. Each redistribution moves one spot from an over-full square
// to each of its neighbors, all of which become the mover's. Pending
// squares are processed most-recently-pushed first, and the cascade stops
// as soon as one side owns the whole board.
func (b *Board) jump(seed int) {
	if b.Winner() != Neutral {
		return
	}
	if b.cells[seed].Charge <= b.Neighbors(seed) {
		return
	}
	player := b.cells[seed].Side

	b.work = b.work[:0]
	b.redistribute(player, seed)
	for len(b.work) > 0 && b.Winner() == Neutral {
		last := len(b.work) - 1
		n := b.work[last]
		b.work = b.work[:last]
		if b.cells[n].Charge > b.Neighbors(n) {
			b.redistribute(player, n)
		}
	}
	b.work = b.work[:0]
}

// redistribute empties the surplus of square n onto its neighbors in one
// step and announces the result.
func (b *Board) redistribute(player Side, n int) {
	adjacent := b.adjacent(n)
	b.cells[n] = Cell{Side: player, Charge: b.cells[n].Charge - len(adjacent)}
	for _, m := range adjacent {
		b.cells[m] = Cell{Side: player, Charge: b.cells[m].Charge + 1}
		b.work = append(b.work, m)
	}
	b.announce()
}

// adjacent returns the numbers of the orthogonal neighbors of square n.
func (b *Board) adjacent(n int) []int {
	r, c := b.Row(n), b.Col(n)
	squares := make([]int, 0, 4)
	if r > 1 {
		squares = append(squares, n-b.size)
	}
	if r < b.size {
		squares = append(squares, n+b.size)
	}
	if c > 1 {
		squares = append(squares, n-1)
	}
	if c < b.size {
		squares = append(squares, n+1)
	}
	return squares
}
