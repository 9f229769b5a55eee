// meta/meta.go
package meta

// BOARD_SIZE defines the default number of rows and columns.
const BOARD_SIZE = 6

// SEARCH_DEPTH defines the default ply limit of the minimax search.
const SEARCH_DEPTH = 5

// MAX_SEARCH_DEPTH bounds configurable search depths.
const MAX_SEARCH_DEPTH = 8

// MAX_TURNS caps the number of moves in a local game.
const MAX_TURNS = 1000

// NUM_GAMES defines the number of games per experiment match-up.
const NUM_GAMES = 10
