package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/minesweep/internal/board"
	"github.com/samdwyer/minesweep/internal/telemetry"
	"github.com/samdwyer/minesweep/internal/timer"
)

// Controller forwards player intents to the board engine and keeps the game
// clock in step with the session: the clock starts on the first reveal and
// stops when the game ends or is reset.
//
// Calls are expected from a single event loop.
type Controller struct {
	cfg     Config
	rng     *rand.Rand
	session *board.Session
	id      string
	clock   *timer.Timer
	tracer  trace.Tracer
}

// NewController creates a controller with a fresh session. onTick is called
// from the clock goroutine once per elapsed second.
func NewController(ctx context.Context, cfg Config, onTick func(elapsed int)) (*Controller, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Controller{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		clock:  timer.New(time.Second, onTick),
		tracer: telemetry.Tracer("game"),
	}
	if err := c.Reset(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Reset stops the clock and replaces the session with a new one.
func (c *Controller) Reset(ctx context.Context) error {
	_, span := c.tracer.Start(ctx, "game.new")
	defer span.End()

	c.clock.Reset()

	session, err := board.NewGame(c.cfg.Board(), c.rng)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	c.session = session
	c.id = uuid.NewString()

	span.SetAttributes(
		attribute.String("session.id", c.id),
		attribute.Int("board.rows", c.cfg.Rows),
		attribute.Int("board.cols", c.cfg.Cols),
		attribute.Int("board.mines", c.cfg.Mines),
	)
	return nil
}

// Reveal opens a cell.
func (c *Controller) Reveal(ctx context.Context, row, col int) (board.View, error) {
	ctx, span := c.tracer.Start(ctx, "board.reveal")
	defer span.End()

	wasStarted := c.session.Started()
	wasOver := c.session.IsOver()

	v, err := c.session.Reveal(row, col)
	span.SetAttributes(c.actionAttributes(row, col, v)...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return v, err
	}

	if !wasStarted && c.session.Started() {
		span.SetAttributes(attribute.Int("board.mines_placed", len(c.session.Mines())))
		c.clock.Start()
	}
	if !wasOver && v.Over {
		c.end(ctx)
	}
	return v, nil
}

// ToggleFlag flags or unflags a cell.
func (c *Controller) ToggleFlag(ctx context.Context, row, col int) (board.View, error) {
	_, span := c.tracer.Start(ctx, "board.flag")
	defer span.End()

	v, err := c.session.ToggleFlag(row, col)
	span.SetAttributes(c.actionAttributes(row, col, v)...)
	span.SetAttributes(attribute.Int("board.flagged", v.Flagged))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return v, err
}

// View returns the current session snapshot.
func (c *Controller) View() board.View {
	return c.session.View()
}

// Elapsed returns the seconds shown on the game clock.
func (c *Controller) Elapsed() int {
	return c.clock.Elapsed()
}

// SessionID identifies the current session in traces.
func (c *Controller) SessionID() string {
	return c.id
}

// Close stops the game clock.
func (c *Controller) Close() {
	c.clock.Stop()
}

// end stops the clock and records the finished session.
func (c *Controller) end(ctx context.Context) {
	c.clock.Stop()

	_, span := c.tracer.Start(ctx, "game.end")
	span.SetAttributes(
		attribute.String("session.id", c.id),
		attribute.String("outcome", c.session.Outcome().String()),
		attribute.Int("elapsed_s", c.clock.Elapsed()),
		attribute.Int("board.revealed", c.session.Revealed()),
	)
	span.End()
}

func (c *Controller) actionAttributes(row, col int, v board.View) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("session.id", c.id),
		attribute.Int("row", row),
		attribute.Int("col", col),
		attribute.Int("board.revealed", v.Revealed),
		attribute.String("outcome", v.Outcome.String()),
	}
}
