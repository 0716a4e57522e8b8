package injector

import "errors"

var (
	// ErrNotInitialized is returned by Sample before the first Reset.
	ErrNotInitialized = errors.New("injector has no agents, call Reset first")
	// ErrInvalidRoster is returned by Reset for mismatched roster
	// lengths or out-of-range super art indices.
	ErrInvalidRoster = errors.New("invalid roster")
	// ErrInvalidProbability is returned by Sample when a category
	// probability is outside [0, 1] or the categories sum past 1.
	// Probabilities are never clamped silently.
	ErrInvalidProbability = errors.New("invalid probability")
	// ErrQueueEmpty is returned by MoveQueue.Peek on an idle queue.
	// Surfacing from Sample indicates a bug in the injector itself.
	ErrQueueEmpty = errors.New("move queue is empty")
	// ErrQueueActive is returned by MoveQueue.Load while a sequence is
	// still in progress. Combos are never interrupted.
	ErrQueueActive = errors.New("move queue still has queued steps")
)
