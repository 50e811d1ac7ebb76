package executors

import (
	"errors"
	"fmt"
)

type State uint8

const (
	Ready State = iota
	Running
	Completed
	Canceled
	ForciblyCanceled
	Faulted
	FinalizationFailed
)

var stateNames = [...]string{
	Ready:              "ready",
	Running:            "running",
	Completed:          "completed",
	Canceled:           "canceled",
	ForciblyCanceled:   "forcibly canceled",
	Faulted:            "faulted",
	FinalizationFailed: "finalization failed",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

var transitions = map[State][]State{
	Ready: {
		Running,
	},
	Running: {
		Completed,
		Canceled,
		ForciblyCanceled,
		Faulted,
	},
	Faulted: {
		FinalizationFailed,
	},
}

var ErrBadTransition = errors.New("bad state transition")

func (s State) CanTransition(to State) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether the run has ended. Faulted is terminal even though
// a finalization failure may still replace it.
func (s State) Terminal() bool {
	switch s {
	case Completed, Canceled, ForciblyCanceled, Faulted, FinalizationFailed:
		return true
	}
	return false
}
