package terminal

import (
	"ctchen222/terminal-tic-tac-toe/internal/game"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const (
	clearScreen = "\x1b[2J\x1b[1;1H"
	border      = "+---+---+---+"
)

// Renderer draws the board as a bordered 3x3 grid.
type Renderer struct {
	marks map[game.PlayerMark]*color.Color
}

// NewRenderer returns a Renderer. With colored false the marks are printed plain.
func NewRenderer(colored bool) *Renderer {
	marks := map[game.PlayerMark]*color.Color{
		game.PlayerO: color.New(color.FgCyan, color.Bold),
		game.PlayerX: color.New(color.FgRed, color.Bold),
	}
	for _, c := range marks {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &Renderer{marks: marks}
}

// Render writes the grid for b to w.
func (r *Renderer) Render(w io.Writer, b game.Board) error {
	var sb strings.Builder
	sb.WriteString(border + "\n")
	for _, row := range b.Rows() {
		for _, cell := range row {
			sb.WriteString("| " + r.cell(cell) + " ")
		}
		sb.WriteString("|\n" + border + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *Renderer) cell(mark game.PlayerMark) string {
	c, ok := r.marks[mark]
	if !ok {
		return " "
	}
	return c.Sprint(string(mark))
}

// ClearScreen moves the cursor home and wipes the terminal.
func ClearScreen(w io.Writer) error {
	_, err := fmt.Fprint(w, clearScreen)
	return err
}
