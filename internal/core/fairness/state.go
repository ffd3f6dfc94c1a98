package fairness

// State is a step of the commit-reveal protocol.
type State int

const (
	StateInitialized State = iota
	StateCommitted
	StateChosen
	StateRevealed
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateCommitted:
		return "committed"
	case StateChosen:
		return "chosen"
	case StateRevealed:
		return "revealed"
	default:
		return "unknown"
	}
}
