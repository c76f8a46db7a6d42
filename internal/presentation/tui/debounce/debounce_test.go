package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fire(t *testing.T, timer *Timer, d time.Duration) FiredMsg {
	t.Helper()
	cmd := timer.TriggerAfter(d)
	require.NotNil(t, cmd)
	msg, ok := cmd().(FiredMsg)
	require.True(t, ok)
	return msg
}

func TestTimer_LastTriggerWins(t *testing.T) {
	timer := New(0)

	first := fire(t, timer, 0)
	second := fire(t, timer, 0)

	assert.False(t, timer.Fired(first), "stale schedule must be ignored")
	assert.True(t, timer.Pending())
	assert.True(t, timer.Fired(second))
	assert.False(t, timer.Pending())
	assert.False(t, timer.Fired(second), "a schedule fires once")
}

func TestTimer_Stop(t *testing.T) {
	timer := New(0)
	msg := fire(t, timer, 0)

	timer.Stop()
	assert.False(t, timer.Pending())
	assert.False(t, timer.Fired(msg))
}

func TestTimer_IgnoresOtherTimers(t *testing.T) {
	a, b := New(0), New(0)
	msg := fire(t, a, 0)
	b.Trigger()

	assert.False(t, b.Fired(msg))
	assert.True(t, b.Pending(), "a foreign message must not consume the schedule")
	assert.True(t, a.Fired(msg))
}

func TestTimer_TickDelay(t *testing.T) {
	timer := New(10 * time.Millisecond)

	start := time.Now()
	msg, ok := timer.Trigger()().(FiredMsg)
	require.True(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	assert.True(t, timer.Fired(msg))
}
