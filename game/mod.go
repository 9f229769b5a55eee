package game

// StateHash is a 64-bit digest of a board's size and contents.
type StateHash uint64

// Reader is the query capability of a board. Squares are numbered in
// row-major order from 0; rows and columns are numbered from 1.
type Reader interface {
	Size() int
	Exists(n int) bool
	ExistsAt(r, c int) bool
	Row(n int) int
	Col(n int) int
	SqNum(r, c int) int

	Get(n int) (Cell, error)
	GetAt(r, c int) (Cell, error)
	Cells() []Cell
	Neighbors(n int) int
	NeighborsAt(r, c int) int

	NumPieces() int
	NumOfSide(side Side) int
	Squares(side Side) []int
	Winner() Side
	WhoseMove() Side
	IsLegal(side Side, n int) bool
	IsLegalAt(side Side, r, c int) bool

	Hash() StateHash
	Equal(other Reader) bool
	String() string
	DisplayString() string
}

// Mutator is the mutation capability of a board.
type Mutator interface {
	AddMove(side Side, n int) error
	AddMoveAt(side Side, r, c int) error
	Set(r, c, charge int, side Side) error
	Clear(n int)
	Copy(from Reader)
	Undo()
	SetNotifier(notify func(*Board))
}

// Evaluates a position to a signed score, positive favouring Red.
type Evaluate func(Reader) int
