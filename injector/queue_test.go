package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fightrl/comboinject/actionspace"
)

func TestQueueIdle(t *testing.T) {
	q := NewMoveQueue(4)
	assert.False(t, q.Active())
	_, err := q.Peek()
	assert.ErrorIs(t, err, ErrQueueEmpty)
	// Advancing an idle queue is a no-op.
	q.Advance()
	assert.False(t, q.Active())
}

func TestQueueConsumesInOrder(t *testing.T) {
	steps := []actionspace.MoveStep{
		{Dir: actionspace.DirDown, Attack: actionspace.AttackLP},
		{Dir: actionspace.DirDownRight},
		{Dir: actionspace.DirRight, Attack: actionspace.AttackHP},
	}
	q := NewMoveQueue(4)
	require.NoError(t, q.Load(steps))

	for _, want := range steps {
		require.True(t, q.Active())
		got, err := q.Peek()
		require.NoError(t, err)
		assert.Equal(t, want, got)
		q.Advance()
	}
	assert.False(t, q.Active())
}

func TestQueueLoadWhileActive(t *testing.T) {
	q := NewMoveQueue(4)
	steps := []actionspace.MoveStep{{Dir: actionspace.DirDown}, {Dir: actionspace.DirUp}}
	require.NoError(t, q.Load(steps))
	assert.ErrorIs(t, q.Load(steps), ErrQueueActive)
}

func TestQueueLoadEmpty(t *testing.T) {
	q := NewMoveQueue(4)
	require.NoError(t, q.Load(nil))
	assert.False(t, q.Active())
}

func TestQueueHoldFrameSkip(t *testing.T) {
	const frameSkip = 4
	hold := actionspace.MoveStep{
		Dir:        actionspace.DirDown,
		Hold:       true,
		HoldFrames: 4 * frameSkip,
	}
	release := actionspace.MoveStep{Dir: actionspace.DirUp, Attack: actionspace.AttackHK}

	q := NewMoveQueue(frameSkip)
	require.NoError(t, q.Load([]actionspace.MoveStep{hold, release}))

	// The hold step stays current for HoldFrames/frameSkip calls.
	for call := 0; call < 4; call++ {
		got, err := q.Peek()
		require.NoError(t, err)
		assert.Equalf(t, hold, got, "call %d", call)
		q.Advance()
	}
	got, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, release, got)
	q.Advance()
	assert.False(t, q.Active())
}

func TestQueueShortHoldTakesOneCall(t *testing.T) {
	q := NewMoveQueue(16)
	hold := actionspace.MoveStep{Dir: actionspace.DirDownLeft, Hold: true, HoldFrames: 8}
	require.NoError(t, q.Load([]actionspace.MoveStep{hold}))
	q.Advance()
	assert.False(t, q.Active(), "hold shorter than one step still takes exactly one call")
}

func TestQueueClear(t *testing.T) {
	q := NewMoveQueue(4)
	require.NoError(t, q.Load([]actionspace.MoveStep{{Dir: actionspace.DirLeft}, {Dir: actionspace.DirRight}}))
	q.Clear()
	assert.False(t, q.Active())
	require.NoError(t, q.Load([]actionspace.MoveStep{{Dir: actionspace.DirUp}}))
	assert.True(t, q.Active())
}
