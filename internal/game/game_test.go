package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = PlayerX
	o = PlayerO
	e = None
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Outcome
	}{
		{
			name:  "No winner - empty board",
			board: NewBoard(),
			want:  Undecided,
		},
		{
			name: "No winner - partial board",
			board: Board{
				x, e, e,
				e, o, e,
				e, e, e,
			},
			want: Undecided,
		},
		{
			name: "X wins - first row",
			board: Board{
				x, x, x,
				e, o, e,
				e, e, o,
			},
			want: SecondPlayerWins,
		},
		{
			name: "O wins - third row",
			board: Board{
				x, e, x,
				e, x, e,
				o, o, o,
			},
			want: FirstPlayerWins,
		},
		{
			name: "O wins - second column",
			board: Board{
				x, o, e,
				x, o, e,
				e, o, e,
			},
			want: FirstPlayerWins,
		},
		{
			name: "X wins - third column",
			board: Board{
				o, e, x,
				e, o, x,
				e, e, x,
			},
			want: SecondPlayerWins,
		},
		{
			name: "X wins - main diagonal",
			board: Board{
				x, e, e,
				e, x, e,
				e, e, x,
			},
			want: SecondPlayerWins,
		},
		{
			name: "O wins - anti-diagonal",
			board: Board{
				e, e, o,
				e, o, e,
				o, e, e,
			},
			want: FirstPlayerWins,
		},
		{
			name: "No winner - full board (tie)",
			board: Board{
				x, o, x,
				x, o, o,
				o, x, x,
			},
			want: Undecided,
		},
		{
			name: "Row is checked before column",
			board: Board{
				o, o, o,
				x, e, e,
				x, e, e,
			},
			want: FirstPlayerWins,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.board); got != tt.want {
				t.Errorf("Evaluate() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_EveryLine(t *testing.T) {
	for _, mark := range []PlayerMark{o, x} {
		for _, line := range WinLines {
			var b Board
			for _, i := range line {
				b[i] = mark
			}
			assert.Equal(t, OutcomeFor(mark), Evaluate(b), "line %v for %s", line, mark)
			assert.Equal(t, mark, Evaluate(b).Winner())
		}
	}
}

func TestIsFull(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{
			name:  "Empty board is not full",
			board: NewBoard(),
			want:  false,
		},
		{
			name: "Partial board is not full",
			board: Board{
				x, e, e,
				e, o, e,
				e, e, e,
			},
			want: false,
		},
		{
			name: "Full board is full",
			board: Board{
				x, o, x,
				x, o, o,
				o, x, x,
			},
			want: true,
		},
		{
			name: "Full board with winner is full",
			board: Board{
				x, x, x,
				o, o, x,
				o, x, o,
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFull(tt.board); got != tt.want {
				t.Errorf("IsFull() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFull_EveryFillLevel(t *testing.T) {
	b := NewBoard()
	mark := o
	for filled := 0; filled <= 9; filled++ {
		assert.Equal(t, filled == 9, IsFull(b), "fill level %d", filled)
		if filled < 9 {
			b[filled] = mark
			mark = Opponent(mark)
		}
	}
}

func TestApplyMove(t *testing.T) {
	t.Run("Places the mark on an empty cell", func(t *testing.T) {
		b := NewBoard()

		next, err := ApplyMove(b, 4, x)

		require.NoError(t, err)
		assert.Equal(t, x, next[4])
		assert.Equal(t, e, b[4], "input board must not change")
	})

	t.Run("Occupied cell fails and leaves the board unchanged", func(t *testing.T) {
		b := Board{o, e, e, e, e, e, e, e, e}

		next, err := ApplyMove(b, 0, x)

		assert.ErrorIs(t, err, ErrCellOccupied)
		assert.Equal(t, b, next)
		assert.Equal(t, o, next[0])
	})

	for _, index := range []int{-1, 9, 42} {
		t.Run("Out of range index fails", func(t *testing.T) {
			b := NewBoard()

			next, err := ApplyMove(b, index, o)

			assert.ErrorIs(t, err, ErrInvalidIndex)
			assert.Equal(t, b, next)
		})
	}

	t.Run("First and last cells are valid", func(t *testing.T) {
		b, err := ApplyMove(NewBoard(), minIndex, o)
		require.NoError(t, err)

		b, err = ApplyMove(b, maxIndex, x)

		require.NoError(t, err)
		assert.Equal(t, Board{o, e, e, e, e, e, e, e, x}, b)
	})

	t.Run("Turn order is not enforced", func(t *testing.T) {
		b, err := ApplyMove(NewBoard(), 0, x)
		require.NoError(t, err)

		b, err = ApplyMove(b, 1, x)

		require.NoError(t, err)
		assert.Equal(t, Board{x, x, e, e, e, e, e, e, e}, b)
	})
}

func TestEmptyCells(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, EmptyCells(NewBoard()))
	assert.Equal(t, []int{2, 5}, EmptyCells(Board{x, o, e, x, o, e, o, x, o}))
	assert.Empty(t, EmptyCells(Board{x, o, x, x, o, o, o, x, x}))
}

func TestRows(t *testing.T) {
	b := Board{x, e, o, e, x, e, o, e, e}

	rows := b.Rows()

	assert.Equal(t, [3]PlayerMark{x, e, o}, rows[0])
	assert.Equal(t, [3]PlayerMark{e, x, e}, rows[1])
	assert.Equal(t, [3]PlayerMark{o, e, e}, rows[2])
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, o, Opponent(x))
	assert.Equal(t, x, Opponent(o))
}
