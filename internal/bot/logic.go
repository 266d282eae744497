package bot

import (
	"ctchen222/terminal-tic-tac-toe/internal/game"
	"math/rand/v2"
)

// Difficulty levels understood by CalculateNextMove.
const (
	Easy   = "easy"
	Medium = "medium"
	Hard   = "hard"
)

// Difficulties lists every accepted difficulty level.
var Difficulties = []string{Easy, Medium, Hard}

// CalculateNextMove determines the bot's next move based on the specified difficulty.
// Unknown difficulties play as Hard. ok is false when the board is full.
func CalculateNextMove(board game.Board, botMark game.PlayerMark, difficulty string) (index int, ok bool) {
	index, ok, _ = calculate(board, botMark, difficulty)
	return index, ok
}

// calculate also reports how many positions the minimax search visited.
func calculate(board game.Board, botMark game.PlayerMark, difficulty string) (index int, ok bool, positions int64) {
	switch difficulty {
	case Easy:
		index, ok = easyMove(board)
	case Medium:
		index, ok = mediumMove(board, botMark)
	default:
		return newSearch(botMark).bestMove(board)
	}
	return index, ok, 0
}

// easyMove makes a completely random move.
func easyMove(board game.Board) (index int, ok bool) {
	availableMoves := game.EmptyCells(board)
	if len(availableMoves) == 0 {
		return -1, false
	}

	return availableMoves[rand.IntN(len(availableMoves))], true
}

// mediumMove will win if it can, block if it must, otherwise move randomly.
func mediumMove(board game.Board, botMark game.PlayerMark) (index int, ok bool) {
	// 1. Win
	if index, found := findWinningMove(board, botMark); found {
		return index, true
	}

	// 2. Block
	if index, found := findWinningMove(board, game.Opponent(botMark)); found {
		return index, true
	}

	// 3. Random
	return easyMove(board)
}

// findWinningMove checks if a player has two in a line with the third cell empty.
func findWinningMove(board game.Board, mark game.PlayerMark) (index int, found bool) {
	for _, line := range game.WinLines {
		marks, empty := 0, -1
		for _, cell := range line {
			switch board[cell] {
			case mark:
				marks++
			case game.None:
				empty = cell
			}
		}
		if marks == 2 && empty != -1 {
			return empty, true
		}
	}
	return -1, false
}
