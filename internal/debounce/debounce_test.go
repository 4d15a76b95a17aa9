package debounce

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fire runs a tick command synchronously
func fire(t *testing.T, cmd tea.Cmd) Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(Msg)
	require.True(t, ok, "expected debounce.Msg")
	return msg
}

func TestDebouncer_SingleTrigger(t *testing.T) {
	d := New(10 * time.Millisecond)

	msg := fire(t, d.Trigger())

	assert.True(t, d.Accept(msg))
	assert.False(t, d.Pending())
	// A tick is consumed once
	assert.False(t, d.Accept(msg))
}

func TestDebouncer_RapidTriggers(t *testing.T) {
	d := New(5 * time.Millisecond)

	var cmds []tea.Cmd
	for i := 0; i < 10; i++ {
		cmds = append(cmds, d.Trigger())
	}

	accepted := 0
	for _, cmd := range cmds {
		if d.Accept(fire(t, cmd)) {
			accepted++
		}
	}

	assert.Equal(t, 1, accepted, "only the last trigger should be accepted")
}

func TestDebouncer_LastTriggerWins(t *testing.T) {
	d := New(time.Millisecond)

	first := fire(t, d.Trigger())
	last := fire(t, d.Trigger())

	assert.False(t, d.Accept(first))
	assert.True(t, d.Accept(last))
}

func TestDebouncer_Cancel(t *testing.T) {
	d := New(time.Millisecond)

	msg := fire(t, d.Trigger())
	d.Cancel()

	assert.False(t, d.Pending())
	assert.False(t, d.Accept(msg))
}

func TestDebouncer_IgnoresOtherDebouncers(t *testing.T) {
	a := New(time.Millisecond)
	b := New(time.Millisecond)

	msgA := fire(t, a.Trigger())
	b.Trigger()

	assert.NotEqual(t, a.ID(), b.ID())
	assert.False(t, b.Accept(msgA))
	assert.True(t, a.Accept(msgA))
}

func TestDebouncer_WaitsForQuietPeriod(t *testing.T) {
	d := New(30 * time.Millisecond)

	start := time.Now()
	fire(t, d.Trigger())

	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestNew_NegativeDuration(t *testing.T) {
	d := New(-time.Second)
	assert.Equal(t, time.Duration(0), d.Duration())
}
