package game

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/samber/lo"
)

// Board is an N x N jump61 board. A board may carry a notifier that is
// called with the board whenever its contents are set directly, cleared,
// or redistributed by an overflow.
type Board struct {
	size     int
	cells    []Cell   // Row-major, size*size entries
	history  [][]Cell // Snapshots taken before each move
	notifier func(*Board)
	readonly *View
	work     []int // Cascade worklist, reused between moves
}

var (
	_ Reader  = (*Board)(nil)
	_ Mutator = (*Board)(nil)
)

func nop(*Board) {}

// NewBoard returns an n x n board in the initial configuration.
func NewBoard(n int) *Board {
	if n < 1 {
		panic("board size must be positive")
	}
	b := &Board{notifier: nop}
	b.readonly = &View{board: b}
	b.reset(n)
	return b
}

// NewBoardFrom returns a board whose contents are copied from src, with an
// empty undo history and a notifier that does nothing.
func NewBoardFrom(src Reader) *Board {
	b := &Board{
		size:     src.Size(),
		cells:    src.Cells(),
		notifier: nop,
	}
	b.readonly = &View{board: b}
	return b
}

// ReadOnly returns the read-only view of this board.
func (b *Board) ReadOnly() *View {
	return b.readonly
}

func (b *Board) reset(n int) {
	b.size = n
	b.cells = make([]Cell, n*n)
	for i := range b.cells {
		b.cells[i] = Initial
	}
	b.history = nil
}

// Clear reinitializes the board to n x n initial squares and clears the
// undo history.
func (b *Board) Clear(n int) {
	if n < 1 {
		panic("board size must be positive")
	}
	b.reset(n)
	b.announce()
}

// Copy replaces the contents (and size) of the board with those of src and
// clears the undo history.
func (b *Board) Copy(src Reader) {
	b.size = src.Size()
	b.cells = src.Cells()
	b.history = nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Exists(n int) bool {
	return 0 <= n && n < b.size*b.size
}

func (b *Board) ExistsAt(r, c int) bool {
	return 1 <= r && r <= b.size && 1 <= c && c <= b.size
}

func (b *Board) Row(n int) int {
	return n/b.size + 1
}

func (b *Board) Col(n int) int {
	return n%b.size + 1
}

func (b *Board) SqNum(r, c int) int {
	return (c - 1) + (r-1)*b.size
}

// Get returns the contents of square n.
func (b *Board) Get(n int) (Cell, error) {
	if !b.Exists(n) {
		return Cell{}, fmt.Errorf("%w: square %d on a %dx%d board", ErrOutOfRange, n, b.size, b.size)
	}
	return b.cells[n], nil
}

// GetAt returns the contents of the square at row r, column c.
func (b *Board) GetAt(r, c int) (Cell, error) {
	if !b.ExistsAt(r, c) {
		return Cell{}, fmt.Errorf("%w: (%d, %d) on a %dx%d board", ErrOutOfRange, r, c, b.size, b.size)
	}
	return b.cells[b.SqNum(r, c)], nil
}

// Cells returns a copy of the squares in row-major order.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// NeighborsAt returns the number of orthogonal neighbors of (r, c).
func (b *Board) NeighborsAt(r, c int) int {
	if !b.ExistsAt(r, c) {
		return 0
	}
	n := 0
	if r > 1 {
		n++
	}
	if c > 1 {
		n++
	}
	if r < b.size {
		n++
	}
	if c < b.size {
		n++
	}
	return n
}

// Neighbors returns the number of orthogonal neighbors of square n.
func (b *Board) Neighbors(n int) int {
	if !b.Exists(n) {
		return 0
	}
	return b.NeighborsAt(b.Row(n), b.Col(n))
}

// NumPieces returns the total charge on the board.
func (b *Board) NumPieces() int {
	return lo.SumBy(b.cells, func(c Cell) int { return c.Charge })
}

// NumOfSide returns the number of squares owned by side.
func (b *Board) NumOfSide(side Side) int {
	return lo.CountBy(b.cells, func(c Cell) bool { return c.Side == side })
}

// Squares returns the numbers of the squares owned by side, in ascending order.
func (b *Board) Squares(side Side) []int {
	return lo.FilterMap(b.cells, func(c Cell, n int) (int, bool) {
		return n, c.Side == side
	})
}

// Winner returns the side owning every square, or Neutral if the game is
// not over.
func (b *Board) Winner() Side {
	owner := b.cells[0].Side
	if owner == Neutral {
		return Neutral
	}
	for _, c := range b.cells[1:] {
		if c.Side != owner {
			return Neutral
		}
	}
	return owner
}

// WhoseMove returns the side to move, derived from the total charge. On a
// won board this is the loser.
func (b *Board) WhoseMove() Side {
	if (b.NumPieces()+b.size)&1 == 0 {
		return Red
	}
	return Blue
}

// IsLegal reports whether side may add a spot to square n: it must be
// side's turn, the game must not be over, and the square must belong to
// side or be neutral.
func (b *Board) IsLegal(side Side, n int) bool {
	if !b.Exists(n) || b.WhoseMove() != side || b.Winner() != Neutral {
		return false
	}
	owner := b.cells[n].Side
	return owner == side || owner == Neutral
}

func (b *Board) IsLegalAt(side Side, r, c int) bool {
	return b.ExistsAt(r, c) && b.IsLegal(side, b.SqNum(r, c))
}

// AddMove adds a spot for side to square n and resolves any overflow.
// Legality is the caller's responsibility; only the square number is checked.
func (b *Board) AddMove(side Side, n int) error {
	if !b.Exists(n) {
		return fmt.Errorf("%w: square %d on a %dx%d board", ErrOutOfRange, n, b.size, b.size)
	}
	b.markUndo()
	b.cells[n] = Cell{Side: side, Charge: b.cells[n].Charge + 1}
	b.jump(n)
	return nil
}

// AddMoveAt adds a spot for side at row r, column c.
func (b *Board) AddMoveAt(side Side, r, c int) error {
	if !b.ExistsAt(r, c) {
		return fmt.Errorf("%w: (%d, %d) on a %dx%d board", ErrOutOfRange, r, c, b.size, b.size)
	}
	return b.AddMove(side, b.SqNum(r, c))
}

// Set puts charge spots of side on the square at row r, column c and
// announces the change.
func (b *Board) Set(r, c, charge int, side Side) error {
	if !b.ExistsAt(r, c) {
		return fmt.Errorf("%w: (%d, %d) on a %dx%d board", ErrOutOfRange, r, c, b.size, b.size)
	}
	cell, err := NewCell(side, charge)
	if err != nil {
		return err
	}
	b.cells[b.SqNum(r, c)] = cell
	b.announce()
	return nil
}

// Undo reverts the last move. With no recorded moves the board is cleared.
func (b *Board) Undo() {
	if len(b.history) == 0 {
		b.Clear(b.size)
		return
	}
	last := len(b.history) - 1
	b.cells = b.history[last]
	b.history = b.history[:last]
}

func (b *Board) markUndo() {
	b.history = append(b.history, b.Cells())
}

// SetNotifier installs notify as the change listener and announces the
// current state to it. A nil notify removes the listener.
func (b *Board) SetNotifier(notify func(*Board)) {
	if notify == nil {
		notify = nop
	}
	b.notifier = notify
	b.announce()
}

func (b *Board) announce() {
	b.notifier(b)
}

// Hash returns a digest of the board's size and contents.
func (b *Board) Hash() StateHash {
	buf := make([]byte, 0, binary.MaxVarintLen64*(2*len(b.cells)+1))
	buf = binary.AppendUvarint(buf, uint64(b.size))
	for _, c := range b.cells {
		buf = binary.AppendUvarint(buf, uint64(c.Side))
		buf = binary.AppendUvarint(buf, uint64(c.Charge))
	}
	return StateHash(xxhash.Sum64(buf))
}

// Equal reports whether other has the same size and contents.
func (b *Board) Equal(other Reader) bool {
	if other == nil || other.Size() != b.size {
		return false
	}
	return slices.Equal(b.cells, other.Cells())
}
