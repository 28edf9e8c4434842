package pipeline

import "fmt"

// State is a position in the run's lifecycle.
type State int8

const (
	// Idle is the start of every run.
	Idle State = iota

	// SchemaReady means the local schema file exists and is readable.
	SchemaReady

	// DocumentsReady means a non-empty operation document set was found.
	DocumentsReady

	// Configured means a complete generation request was assembled.
	Configured

	// Generated means the compiler ran to completion.
	Generated

	// Integrated is the successful terminal state.
	Integrated

	// Skipped is the terminal state of a run bypassed by configuration.
	// It is a success, not a failure.
	Skipped

	// Failed is the terminal state of an aborted run.
	Failed
)

var stateNames = map[State]string{
	Idle:           "Idle",
	SchemaReady:    "SchemaReady",
	DocumentsReady: "DocumentsReady",
	Configured:     "Configured",
	Generated:      "Generated",
	Integrated:     "Integrated",
	Skipped:        "Skipped",
	Failed:         "Failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", s)
}

// Terminal reports whether a run can end in s.
func (s State) Terminal() bool {
	switch s {
	case Integrated, Skipped, Failed:
		return true
	default:
		return false
	}
}

// transition advances the pipeline to next, enforcing the lifecycle order.
// Failed and Skipped are reached through fail and Run directly; everything
// else must advance one state at a time.
func (p *Pipeline) transition(next State) error {
	if next != p.state+1 || p.state.Terminal() {
		return fmt.Errorf("pipeline: disallowed transition %s -> %s", p.state, next)
	}
	p.state = next
	return nil
}
