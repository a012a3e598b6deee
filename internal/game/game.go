// Package game provides the main game loop: it maps terminal input to board
// actions and redraws after each one.
package game

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweep/internal/board"
	"github.com/samdwyer/minesweep/internal/gamedata"
	"github.com/samdwyer/minesweep/internal/ui"
)

// Game holds the terminal and the running session.
type Game struct {
	screen      *ui.Screen
	renderer    *ui.Renderer
	ctrl        *Controller
	cursor      board.Pos
	message     string
	prevButtons tcell.ButtonMask
	running     bool
}

// New creates a new game instance.
func New(ctx context.Context, cfg Config) (*Game, error) {
	theme, err := gamedata.LoadTheme()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	// Each clock tick wakes the event loop so the timer redraws.
	ctrl, err := NewController(ctx, cfg, func(int) { screen.Wake() })
	if err != nil {
		screen.Close()
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		ctrl:     ctrl,
		cursor:   board.Pos{Row: cfg.Rows / 2, Col: cfg.Cols / 2},
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	for g.running {
		g.render()
		g.handleInput(ctx)
	}
	return nil
}

// Close stops the clock and restores the terminal.
func (g *Game) Close() {
	if g.ctrl != nil {
		g.ctrl.Close()
	}
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}

func (g *Game) render() {
	v := g.ctrl.View()
	g.renderer.Render(v, g.cursor, ui.Status{
		Elapsed:        g.ctrl.Elapsed(),
		RemainingMines: v.RemainingMines,
		Message:        g.statusMessage(v),
	})
}

// statusMessage prefers the game outcome over the last action's message.
func (g *Game) statusMessage(v board.View) string {
	switch v.Outcome {
	case board.Won:
		return "You cleared the board! Press r for a new game."
	case board.Lost:
		return "Boom! Press r to try again."
	default:
		return g.message
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.apply(ctx, keyAction(ev.Key(), ev.Rune()))
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventInterrupt:
		// Clock tick; the loop redraws.
	case nil:
		// Screen finalized.
		g.running = false
	}
}

// handleMouseEvent acts on button presses over the board. Drags and releases
// are ignored.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ g.prevButtons
	g.prevButtons = buttons

	action := mouseAction(pressed, ev.Modifiers())
	if action == ActionNone {
		return
	}

	x, y := ev.Position()
	row, col, ok := g.renderer.Layout().CellAt(x, y, g.ctrl.cfg.Rows, g.ctrl.cfg.Cols)
	if !ok {
		return
	}
	g.cursor = board.Pos{Row: row, Col: col}
	g.apply(ctx, action)
}

// apply performs an action at the cursor.
func (g *Game) apply(ctx context.Context, action Action) {
	switch action {
	case ActionQuit:
		g.running = false
	case ActionUp:
		g.moveCursor(-1, 0)
	case ActionDown:
		g.moveCursor(1, 0)
	case ActionLeft:
		g.moveCursor(0, -1)
	case ActionRight:
		g.moveCursor(0, 1)
	case ActionReveal:
		g.report(g.ctrl.Reveal(ctx, g.cursor.Row, g.cursor.Col))
	case ActionFlag:
		g.report(g.ctrl.ToggleFlag(ctx, g.cursor.Row, g.cursor.Col))
	case ActionReset:
		if err := g.ctrl.Reset(ctx); err != nil {
			g.message = err.Error()
			return
		}
		g.message = ""
	}
}

func (g *Game) report(_ board.View, err error) {
	if err != nil {
		g.message = err.Error()
		return
	}
	g.message = ""
}

// moveCursor moves the cursor by the given delta, clamped to the board.
func (g *Game) moveCursor(dr, dc int) {
	g.cursor.Row = min(max(g.cursor.Row+dr, 0), g.ctrl.cfg.Rows-1)
	g.cursor.Col = min(max(g.cursor.Col+dc, 0), g.ctrl.cfg.Cols-1)
}
