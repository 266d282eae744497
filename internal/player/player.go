package player

import "ctchen222/terminal-tic-tac-toe/internal/game"

// Player represents one side of a game.
type Player struct {
	Name  string
	Mark  game.PlayerMark
	IsBot bool
}

// NewHuman returns the human side. The human always plays O.
func NewHuman() Player {
	return Player{Name: "You", Mark: game.PlayerO}
}

// NewComputer returns the computer side. The computer always plays X.
func NewComputer() Player {
	return Player{Name: "Computer", Mark: game.PlayerX, IsBot: true}
}
