package session

// Phase is a step of the game's state machine.
type Phase int

const (
	AwaitingFirstMoveChoice Phase = iota
	AwaitingHumanMove
	AwaitingComputerMove
	HumanWon
	ComputerWon
	Tied
)

var phaseNames = map[Phase]string{
	AwaitingFirstMoveChoice: "awaiting_first_move_choice",
	AwaitingHumanMove:       "awaiting_human_move",
	AwaitingComputerMove:    "awaiting_computer_move",
	HumanWon:                "human_won",
	ComputerWon:             "computer_won",
	Tied:                    "tied",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further moves are accepted.
func (p Phase) Terminal() bool {
	return p == HumanWon || p == ComputerWon || p == Tied
}
