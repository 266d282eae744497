package game

// Outcome is the result of evaluating a board.
type Outcome int

const (
	Undecided Outcome = iota
	FirstPlayerWins
	SecondPlayerWins
)

func (o Outcome) String() string {
	switch o {
	case FirstPlayerWins:
		return "first player wins"
	case SecondPlayerWins:
		return "second player wins"
	default:
		return "undecided"
	}
}

// Winner returns the mark of the winning player, or None when undecided.
func (o Outcome) Winner() PlayerMark {
	switch o {
	case FirstPlayerWins:
		return PlayerO
	case SecondPlayerWins:
		return PlayerX
	default:
		return None
	}
}

// OutcomeFor returns the outcome in which mark has won.
func OutcomeFor(mark PlayerMark) Outcome {
	switch mark {
	case PlayerO:
		return FirstPlayerWins
	case PlayerX:
		return SecondPlayerWins
	default:
		return Undecided
	}
}

// Evaluate checks all winning lines and reports the winner of the first
// completed one. A full board without a completed line is Undecided; use
// IsFull to tell a tie from a game in progress.
func Evaluate(b Board) Outcome {
	for _, line := range WinLines {
		a := b[line[0]]
		if a != None && a == b[line[1]] && a == b[line[2]] {
			return OutcomeFor(a)
		}
	}
	return Undecided
}
