// Package views holds the state behind the dashboard's three screens: the
// member roster, the task backlog and the task status board. A view owns its
// last fetched list, form draft and per-operation state; everything else
// lives in the data store and is only mirrored here after each fetch.
package views

import "errors"

var (
	ErrNotConfirmed    = errors.New("deletion was not confirmed")
	ErrAddInFlight     = errors.New("an add is already in progress")
	ErrTriggerInFlight = errors.New("assignment is already being triggered")
)

// OpState is the lifecycle of one view operation.
type OpState int

const (
	Idle OpState = iota
	InFlight
	Succeeded
	Failed
)

func (s OpState) String() string {
	switch s {
	case Idle:
		return "idle"
	case InFlight:
		return "in-flight"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Op is a snapshot of an operation's state and, when Failed, its error.
type Op struct {
	State OpState
	Err   error
}

type op struct {
	state OpState
	err   error
}

// start moves to InFlight. Overlapping starts are allowed; the last call to
// finish decides the final state.
func (o *op) start() {
	o.state = InFlight
	o.err = nil
}

// startExclusive is start for operations whose control is disabled while
// running. It reports false if one is already in flight.
func (o *op) startExclusive() bool {
	if o.state == InFlight {
		return false
	}
	o.start()
	return true
}

func (o *op) finish(err error) {
	if err != nil {
		o.state = Failed
		o.err = err
		return
	}
	o.state = Succeeded
	o.err = nil
}

func (o *op) snapshot() Op {
	return Op{State: o.state, Err: o.err}
}
