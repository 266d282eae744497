package bot

import (
	"context"
	"ctchen222/terminal-tic-tac-toe/internal/game"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")
)

// MoveCalculator picks the computer's moves and reports each search to
// tracing, metrics and the log.
type MoveCalculator struct {
	tracer    trace.Tracer
	positions metric.Int64Counter
	duration  metric.Float64Histogram
}

// NewMoveCalculator creates a MoveCalculator with its metric instruments
// registered on the global meter provider.
func NewMoveCalculator() (*MoveCalculator, error) {
	return newMoveCalculator(tracer, meter)
}

func newMoveCalculator(tracer trace.Tracer, meter metric.Meter) (*MoveCalculator, error) {
	positions, err := meter.Int64Counter("bot.search.positions",
		metric.WithDescription("Board positions visited by the minimax search"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create positions counter: %w", err)
	}

	duration, err := meter.Float64Histogram("bot.move.duration",
		metric.WithDescription("Time spent choosing a move"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &MoveCalculator{tracer: tracer, positions: positions, duration: duration}, nil
}

// CalculateNextMove returns the cell the bot plays as mark. ok is false when
// the board is full.
func (c *MoveCalculator) CalculateNextMove(ctx context.Context, board game.Board, mark game.PlayerMark, difficulty string) (index int, ok bool) {
	ctx, span := c.tracer.Start(ctx, "bot.CalculateNextMove", trace.WithAttributes(
		attribute.String("player.mark", string(mark)),
		attribute.String("bot.difficulty", difficulty),
		attribute.Int("board.empty", len(game.EmptyCells(board))),
	))
	defer span.End()

	start := time.Now()
	index, ok, positions := calculate(board, mark, difficulty)
	elapsed := time.Since(start)

	attrs := metric.WithAttributes(attribute.String("bot.difficulty", difficulty))
	c.positions.Add(ctx, positions, attrs)
	c.duration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)

	span.SetAttributes(
		attribute.Int("move.index", index),
		attribute.Bool("move.found", ok),
		attribute.Int64("bot.search.positions", positions),
	)
	slog.DebugContext(ctx, "bot chose a move",
		"player.mark", mark,
		"bot.difficulty", difficulty,
		"move.index", index,
		"bot.search.positions", positions,
		"elapsed", elapsed,
	)

	return index, ok
}
