package game

import (
	"errors"
	"fmt"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerO PlayerMark = "O"
	PlayerX PlayerMark = "X"
)

// Valid board indexes.
const (
	minIndex = 0
	maxIndex = 8
)

var (
	ErrInvalidIndex = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell already occupied")

	// WinLines lists rows first, then columns, then diagonals.
	WinLines = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Board is the 3x3 grid in row-major order (index = row*3+col).
type Board [9]PlayerMark

// NewBoard returns a board with nine empty cells.
func NewBoard() Board {
	return Board{}
}

// Opponent returns the other player's mark.
func Opponent(mark PlayerMark) PlayerMark {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// ApplyMove places mark on the cell at index and returns the resulting board.
// On error the board is returned unchanged. Turn order is not checked here.
func ApplyMove(b Board, index int, mark PlayerMark) (Board, error) {
	if index < minIndex || index > maxIndex {
		return b, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	if b[index] != None {
		return b, fmt.Errorf("%w: %d", ErrCellOccupied, index)
	}

	b[index] = mark
	return b, nil
}

// IsFull reports whether no cell is empty.
func IsFull(b Board) bool {
	for _, cell := range b {
		if cell == None {
			return false
		}
	}
	return true
}

// EmptyCells returns the indexes of all empty cells in ascending order.
func EmptyCells(b Board) []int {
	cells := make([]int, 0, len(b))
	for i, cell := range b {
		if cell == None {
			cells = append(cells, i)
		}
	}
	return cells
}

// Rows converts the board into a 3x3 grid for rendering.
func (b Board) Rows() [3][3]PlayerMark {
	var rows [3][3]PlayerMark
	for i, cell := range b {
		rows[i/3][i%3] = cell
	}
	return rows
}
