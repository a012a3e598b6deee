package game

import "github.com/gdamore/tcell/v2"

// Action is a player intent decoded from keyboard or mouse input.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionReveal
	ActionFlag
	ActionReset
	ActionQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionReveal:
		return "reveal"
	case ActionFlag:
		return "flag"
	case ActionReset:
		return "reset"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// keyAction maps a key press to an action.
func keyAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEnter:
		return ActionReveal
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return ActionQuit
		case 'k':
			return ActionUp
		case 'j':
			return ActionDown
		case 'h':
			return ActionLeft
		case 'l':
			return ActionRight
		case ' ':
			return ActionReveal
		case 'f', 'F':
			return ActionFlag
		case 'r', 'R':
			return ActionReset
		}
	}
	return ActionNone
}

// mouseAction maps newly pressed buttons to an action. Secondary click and
// Ctrl+primary click both flag.
func mouseAction(pressed tcell.ButtonMask, mods tcell.ModMask) Action {
	switch {
	case pressed&tcell.ButtonSecondary != 0:
		return ActionFlag
	case pressed&tcell.ButtonPrimary != 0 && mods&tcell.ModCtrl != 0:
		return ActionFlag
	case pressed&tcell.ButtonPrimary != 0:
		return ActionReveal
	default:
		return ActionNone
	}
}
