package game

// View is a read-only window onto a Board. It holds no state of its own,
// so it always reflects the board's current contents.
type View struct {
	board *Board
}

var _ Reader = (*View)(nil)

func (v *View) Size() int              { return v.board.Size() }
func (v *View) Exists(n int) bool      { return v.board.Exists(n) }
func (v *View) ExistsAt(r, c int) bool { return v.board.ExistsAt(r, c) }
func (v *View) Row(n int) int          { return v.board.Row(n) }
func (v *View) Col(n int) int          { return v.board.Col(n) }
func (v *View) SqNum(r, c int) int     { return v.board.SqNum(r, c) }

func (v *View) Get(n int) (Cell, error)      { return v.board.Get(n) }
func (v *View) GetAt(r, c int) (Cell, error) { return v.board.GetAt(r, c) }
func (v *View) Cells() []Cell                { return v.board.Cells() }
func (v *View) Neighbors(n int) int          { return v.board.Neighbors(n) }
func (v *View) NeighborsAt(r, c int) int     { return v.board.NeighborsAt(r, c) }

func (v *View) NumPieces() int                     { return v.board.NumPieces() }
func (v *View) NumOfSide(side Side) int            { return v.board.NumOfSide(side) }
func (v *View) Squares(side Side) []int            { return v.board.Squares(side) }
func (v *View) Winner() Side                       { return v.board.Winner() }
func (v *View) WhoseMove() Side                    { return v.board.WhoseMove() }
func (v *View) IsLegal(side Side, n int) bool      { return v.board.IsLegal(side, n) }
func (v *View) IsLegalAt(side Side, r, c int) bool { return v.board.IsLegalAt(side, r, c) }

func (v *View) Hash() StateHash         { return v.board.Hash() }
func (v *View) Equal(other Reader) bool { return v.board.Equal(other) }
func (v *View) String() string          { return v.board.String() }
func (v *View) DisplayString() string   { return v.board.DisplayString() }
