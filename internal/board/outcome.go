package board

// Outcome classifies a session: still running, or finished as a win or loss.
type Outcome int

const (
	// InProgress is the outcome of every fresh session.
	InProgress Outcome = iota
	// Won means every non-mine cell has been revealed.
	Won
	// Lost means a mine was revealed.
	Lost
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the outcome ends the session.
func (o Outcome) IsTerminal() bool {
	return o == Won || o == Lost
}
