package bot

import "ctchen222/terminal-tic-tac-toe/internal/game"

const (
	scoreWin  = 1
	scoreLoss = -1
	scoreTie  = 0
)

// search holds the two sides of a minimax run. The computer maximizes and
// the human minimizes, whoever placed the first mark.
type search struct {
	computer  game.PlayerMark
	human     game.PlayerMark
	positions int64
}

func newSearch(computer game.PlayerMark) *search {
	return &search{computer: computer, human: game.Opponent(computer)}
}

// BestMove returns the empty cell with the best minimax score for computer,
// assuming the opponent moves next and plays perfectly. Ties go to the lowest
// index. ok is false when the board has no empty cell.
func BestMove(board game.Board, computer game.PlayerMark) (index int, ok bool) {
	index, ok, _ = newSearch(computer).bestMove(board)
	return index, ok
}

func (s *search) bestMove(board game.Board) (index int, ok bool, positions int64) {
	bestScore := scoreLoss - 1
	index = -1

	for _, cell := range game.EmptyCells(board) {
		next := board
		next[cell] = s.computer

		score := s.minimax(next, false)
		if score > bestScore {
			bestScore = score
			index = cell
		}
	}

	return index, index != -1, s.positions
}

// minimax scores board with an explicit computerTurn flag. Every branch gets
// its own copy of the board.
func (s *search) minimax(board game.Board, computerTurn bool) int {
	s.positions++

	if score, done := s.terminalScore(board); done {
		return score
	}

	if computerTurn {
		best := scoreLoss
		for _, cell := range game.EmptyCells(board) {
			next := board
			next[cell] = s.computer
			best = max(best, s.minimax(next, false))
		}
		return best
	}

	best := scoreWin
	for _, cell := range game.EmptyCells(board) {
		next := board
		next[cell] = s.human
		best = min(best, s.minimax(next, true))
	}
	return best
}

func (s *search) terminalScore(board game.Board) (int, bool) {
	switch game.Evaluate(board).Winner() {
	case s.computer:
		return scoreWin, true
	case s.human:
		return scoreLoss, true
	}
	if game.IsFull(board) {
		return scoreTie, true
	}
	return 0, false
}
