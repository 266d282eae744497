package terminal

import (
	"bufio"
	"context"
	"ctchen222/terminal-tic-tac-toe/internal/game"
	"ctchen222/terminal-tic-tac-toe/internal/session"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

const (
	promptFirst = "Who starts first, user or computer? (u/c): "
	promptTile  = "Enter tile number (1-9): "

	msgNotUOrC     = "Input was not u or c"
	msgNotNumber   = "Input was not a number!"
	msgInvalidTile = "Input was not a valid tile!"
	msgTileTaken   = "Tile is already taken!"
	msgThinking    = "Computer is thinking..."
)

// maxLineLength bounds one line of user input. Longer lines are rejected
// as invalid input.
const maxLineLength = 4096

var ErrInputClosed = errors.New("input closed")

// Options configures a Driver.
type Options struct {
	Difficulty  string
	ThinkDelay  time.Duration
	ClearScreen bool
	Color       bool
}

// inputLine is one line read from the user, or the error that ended input.
type inputLine struct {
	text string
	err  error
}

// Driver runs one interactive game over a line-based reader and a writer.
type Driver struct {
	in       *bufio.Reader
	lines    chan inputLine
	out      io.Writer
	calc     session.MoveCalculator
	renderer *Renderer
	opts     Options
}

// NewDriver creates a Driver reading user input from in and drawing to out.
func NewDriver(in io.Reader, out io.Writer, calc session.MoveCalculator, opts Options) *Driver {
	return &Driver{
		in:       bufio.NewReaderSize(in, maxLineLength),
		out:      out,
		calc:     calc,
		renderer: NewRenderer(opts.Color),
		opts:     opts,
	}
}

// Run plays a game to the end and returns the final session.
func (d *Driver) Run(ctx context.Context) (session.Session, error) {
	s := session.New(d.opts.Difficulty)
	logger := slog.With("session.id", s.ID, "bot.difficulty", s.Difficulty)
	logger.InfoContext(ctx, "game started")

	if d.lines == nil {
		d.lines = make(chan inputLine)
		go d.readLines(ctx)
	}

	s, err := d.chooseFirst(ctx, s)
	if err != nil {
		return s, err
	}
	logger.InfoContext(ctx, "first mover chosen", "player.name", s.FirstMover.Name)

	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return s, err
		}

		switch s.Phase {
		case session.AwaitingHumanMove:
			s, err = d.humanTurn(ctx, s)
		case session.AwaitingComputerMove:
			s, err = d.computerTurn(ctx, s)
		}
		if err != nil {
			return s, err
		}
	}

	if err := d.showBoard(s.Board); err != nil {
		return s, err
	}
	if _, err := fmt.Fprintln(d.out, s.Result()); err != nil {
		return s, err
	}

	logger.InfoContext(ctx, "game finished", "session.phase", s.Phase, "session.moves", s.Moves)
	return s, nil
}

func (d *Driver) chooseFirst(ctx context.Context, s session.Session) (session.Session, error) {
	for {
		if err := ctx.Err(); err != nil {
			return s, err
		}
		if err := d.clear(); err != nil {
			return s, err
		}

		line, err := d.prompt(ctx, promptFirst)
		if err != nil {
			return s, err
		}

		next, err := s.ChooseFirst(line)
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, session.ErrInvalidInput) {
			return s, err
		}
		if _, err := fmt.Fprintln(d.out, msgNotUOrC); err != nil {
			return s, err
		}
	}
}

func (d *Driver) humanTurn(ctx context.Context, s session.Session) (session.Session, error) {
	if err := d.showBoard(s.Board); err != nil {
		return s, err
	}

	for {
		line, err := d.prompt(ctx, promptTile)
		if err != nil {
			return s, err
		}

		next, err := s.PlaceHuman(line)
		if err == nil {
			slog.DebugContext(ctx, "human moved", "session.id", s.ID, "move.tile", line)
			return next, nil
		}

		msg, known := inputMessage(err)
		if !known {
			return s, err
		}
		slog.DebugContext(ctx, "rejected human input", "session.id", s.ID, "error", err)
		if _, err := fmt.Fprintln(d.out, msg); err != nil {
			return s, err
		}
	}
}

func (d *Driver) computerTurn(ctx context.Context, s session.Session) (session.Session, error) {
	if err := d.showBoard(s.Board); err != nil {
		return s, err
	}
	if _, err := fmt.Fprintln(d.out, msgThinking); err != nil {
		return s, err
	}

	next, index, err := s.PlayComputer(ctx, d.calc)
	if err != nil {
		slog.ErrorContext(ctx, "computer move failed", "session.id", s.ID, "error", err)
		return s, err
	}
	slog.DebugContext(ctx, "computer moved", "session.id", s.ID, "move.index", index)

	if err := d.pause(ctx); err != nil {
		return next, err
	}
	return next, nil
}

func (d *Driver) pause(ctx context.Context) error {
	if d.opts.ThinkDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(d.opts.ThinkDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// inputMessage maps a rejected tile entry to the message shown to the user.
func inputMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, game.ErrCellOccupied):
		return msgTileTaken, true
	case errors.Is(err, session.ErrNotANumber):
		return msgNotNumber, true
	case errors.Is(err, session.ErrInvalidInput):
		return msgInvalidTile, true
	default:
		return "", false
	}
}

func (d *Driver) prompt(ctx context.Context, text string) (string, error) {
	if _, err := fmt.Fprint(d.out, text); err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-d.lines:
		if !ok {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			return "", ErrInputClosed
		}
		return line.text, line.err
	}
}

// readLines feeds d.lines until input ends or ctx is done. A read blocked
// on the underlying reader outlives ctx; the prompt stops waiting for it.
func (d *Driver) readLines(ctx context.Context) {
	defer close(d.lines)

	for {
		text, err := readLine(d.in)
		if errors.Is(err, io.EOF) {
			return
		}

		line := inputLine{text: text}
		if err != nil {
			line = inputLine{err: fmt.Errorf("read input: %w", err)}
		}

		select {
		case <-ctx.Done():
			return
		case d.lines <- line:
		}
		if err != nil {
			return
		}
	}
}

// readLine returns the next line without its line ending. A line longer
// than the reader's buffer is consumed and returned empty so it parses as
// invalid input.
func readLine(r *bufio.Reader) (string, error) {
	line, isPrefix, err := r.ReadLine()
	if err != nil {
		return "", err
	}
	if !isPrefix {
		return string(line), nil
	}

	for isPrefix {
		_, isPrefix, err = r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
	}
	return "", nil
}

func (d *Driver) showBoard(b game.Board) error {
	if err := d.clear(); err != nil {
		return err
	}
	return d.renderer.Render(d.out, b)
}

func (d *Driver) clear() error {
	if !d.opts.ClearScreen {
		return nil
	}
	return ClearScreen(d.out)
}
