package core

type State int

const (
	StateWhiteToMove State = iota
	StateBlackToMove
	StateFinished // reserved; no rule enters it yet
)

// StateFor returns the to-move state for side.
func StateFor(side Side) State {
	if side == Black {
		return StateBlackToMove
	}
	return StateWhiteToMove
}

func (s State) String() string {
	switch s {
	case StateWhiteToMove:
		return "white to move"
	case StateBlackToMove:
		return "black to move"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}
