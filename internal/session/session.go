package session

import (
	"context"
	"ctchen222/terminal-tic-tac-toe/internal/game"
	"ctchen222/terminal-tic-tac-toe/internal/player"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=session.go -destination=mocks/mock_move_calculator.go -package=mocks

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotANumber     = fmt.Errorf("%w: not a number", ErrInvalidInput)
	ErrTileOutOfRange = fmt.Errorf("%w: tile out of range", ErrInvalidInput)
	ErrWrongPhase     = errors.New("operation not allowed in this phase")
)

// MoveCalculator defines an interface for an agent that can calculate a game move.
type MoveCalculator interface {
	CalculateNextMove(ctx context.Context, board game.Board, mark game.PlayerMark, difficulty string) (index int, ok bool)
}

// Session is one game between the human and the computer. It is a value:
// every transition returns a new Session and leaves the receiver untouched.
type Session struct {
	ID         string
	Board      game.Board
	Phase      Phase
	Human      player.Player
	Computer   player.Player
	FirstMover player.Player
	Difficulty string
	Moves      int
}

// New creates a session waiting for the first-move choice.
func New(difficulty string) Session {
	return Session{
		ID:         uuid.New().String(),
		Board:      game.NewBoard(),
		Phase:      AwaitingFirstMoveChoice,
		Human:      player.NewHuman(),
		Computer:   player.NewComputer(),
		Difficulty: difficulty,
	}
}

// ChooseFirst reads "u" (user) or "c" (computer).
func (s Session) ChooseFirst(input string) (Session, error) {
	if s.Phase != AwaitingFirstMoveChoice {
		return s, fmt.Errorf("%w: choose first mover while %s", ErrWrongPhase, s.Phase)
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "u":
		s.FirstMover = s.Human
		s.Phase = AwaitingHumanMove
	case "c":
		s.FirstMover = s.Computer
		s.Phase = AwaitingComputerMove
	default:
		return s, fmt.Errorf("%w: %q is not u or c", ErrInvalidInput, input)
	}
	return s, nil
}

// ParseTile converts a 1-based tile number typed by the user into a cell index.
func ParseTile(input string) (int, error) {
	number, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return -1, fmt.Errorf("%w: %q", ErrNotANumber, input)
	}
	if number < 1 || number > 9 {
		return -1, fmt.Errorf("%w: %d", ErrTileOutOfRange, number)
	}
	return number - 1, nil
}

// PlaceHuman places the human's mark on the tile named by input (1-9).
func (s Session) PlaceHuman(input string) (Session, error) {
	if s.Phase != AwaitingHumanMove {
		return s, fmt.Errorf("%w: human move while %s", ErrWrongPhase, s.Phase)
	}

	index, err := ParseTile(input)
	if err != nil {
		return s, err
	}
	return s.place(s.Human, index)
}

// PlayComputer asks calc for the computer's move and places it. It also
// returns the chosen cell, or -1 when the board had no empty cell.
func (s Session) PlayComputer(ctx context.Context, calc MoveCalculator) (Session, int, error) {
	if s.Phase != AwaitingComputerMove {
		return s, -1, fmt.Errorf("%w: computer move while %s", ErrWrongPhase, s.Phase)
	}

	index, ok := calc.CalculateNextMove(ctx, s.Board, s.Computer.Mark, s.Difficulty)
	if !ok {
		s.Phase = Tied
		return s, -1, nil
	}

	next, err := s.place(s.Computer, index)
	if err != nil {
		return s, -1, fmt.Errorf("computer move %d: %w", index, err)
	}
	return next, index, nil
}

func (s Session) place(p player.Player, index int) (Session, error) {
	board, err := game.ApplyMove(s.Board, index, p.Mark)
	if err != nil {
		return s, err
	}

	s.Board = board
	s.Moves++
	s.Phase = s.settle(p)
	return s, nil
}

// settle returns the phase that follows a move by p.
func (s Session) settle(p player.Player) Phase {
	switch game.Evaluate(s.Board).Winner() {
	case s.Human.Mark:
		return HumanWon
	case s.Computer.Mark:
		return ComputerWon
	}
	if game.IsFull(s.Board) {
		return Tied
	}
	if p.IsBot {
		return AwaitingHumanMove
	}
	return AwaitingComputerMove
}

// Done reports whether the game is over.
func (s Session) Done() bool {
	return s.Phase.Terminal()
}

// Result returns the end-of-game message, or "" while the game is running.
func (s Session) Result() string {
	switch s.Phase {
	case HumanWon:
		return "You won!"
	case ComputerWon:
		return "You lost!"
	case Tied:
		return "Tie!"
	default:
		return ""
	}
}
