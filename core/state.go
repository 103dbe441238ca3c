package core

// State is the session's lifecycle state. The loop starts in StateRunning and
// moves to StateTerminated exactly once: on the Exit intent, on cancellation,
// or when an unrecoverable fault escapes a turn. StateTerminated is terminal.
type State int

const (
	// StateRunning means the session loop is accepting turns.
	StateRunning State = iota
	// StateTerminated means the session has ended.
	StateTerminated
)

// String returns a readable state name for logs.
func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}
