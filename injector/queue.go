package injector

import (
	"github.com/fightrl/comboinject/actionspace"
)

type queueState int

const (
	queueIdle queueState = iota
	queueInCombo
)

// MoveQueue holds the remaining steps of one agent's in-progress move
// sequence. It is an explicit two-state machine: Idle, or InCombo with
// a step cursor and a per-step countdown. Hold steps stay current for
// several consecutive sampling calls, covering their charge duration
// at frameSkip simulated frames per call.
type MoveQueue struct {
	frameSkip int

	state     queueState
	steps     []actionspace.MoveStep
	cursor    int
	callsLeft int
}

func NewMoveQueue(frameSkip int) *MoveQueue {
	return &MoveQueue{frameSkip: frameSkip}
}

// Active reports whether the queue still has unconsumed steps.
func (q *MoveQueue) Active() bool {
	return q.state == queueInCombo
}

// Peek returns the step to execute on this sampling call. Callers must
// check Active first.
func (q *MoveQueue) Peek() (actionspace.MoveStep, error) {
	if q.state != queueInCombo {
		return actionspace.MoveStep{}, ErrQueueEmpty
	}
	return q.steps[q.cursor], nil
}

// Load replaces the queue contents with a new sequence. Loading while
// a sequence is active is a contract violation: in-progress combos are
// driven to completion before a new one may start.
func (q *MoveQueue) Load(steps []actionspace.MoveStep) error {
	if q.state == queueInCombo {
		return ErrQueueActive
	}
	if len(steps) == 0 {
		return nil
	}
	q.state = queueInCombo
	q.steps = steps
	q.cursor = 0
	q.arm()
	return nil
}

// Advance consumes one sampling call's worth of the current step. A
// hold step only moves past once its countdown is spent, so the same
// step is peeked on multiple consecutive calls.
func (q *MoveQueue) Advance() {
	if q.state != queueInCombo {
		return
	}
	if q.callsLeft--; q.callsLeft > 0 {
		return
	}
	q.cursor++
	if q.cursor >= len(q.steps) {
		q.Clear()
		return
	}
	q.arm()
}

// Clear drops any remaining steps, returning the queue to Idle.
func (q *MoveQueue) Clear() {
	q.state = queueIdle
	q.steps = nil
	q.cursor = 0
	q.callsLeft = 0
}

// arm sets the countdown for the step under the cursor: one call for
// plain steps, the hold duration divided by the frame skip for holds.
func (q *MoveQueue) arm() {
	step := q.steps[q.cursor]
	q.callsLeft = 1
	if step.Hold {
		if calls := step.HoldFrames / q.frameSkip; calls > 1 {
			q.callsLeft = calls
		}
	}
}
