package timer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)}
}

func TestTimer_Lifecycle(t *testing.T) {
	clk := newClock()
	tm := New(clk.now)
	assert.Equal(t, Idle, tm.State)
	assert.Zero(t, tm.Elapsed())

	require.NoError(t, tm.Start(" test-project ", "test-task"))
	assert.Equal(t, Running, tm.State)
	assert.Equal(t, "test-project", tm.Project)

	clk.advance(30 * time.Minute)
	assert.Equal(t, 30*time.Minute, tm.Elapsed())

	clk.advance(30 * time.Minute)
	require.NoError(t, tm.Stop())
	assert.Equal(t, Stopped, tm.State)

	// frozen once stopped
	clk.advance(time.Hour)
	assert.Equal(t, time.Hour, tm.Elapsed())

	entry, err := tm.Entry()
	require.NoError(t, err)
	assert.Equal(t, "test-project", entry.Project)
	assert.Equal(t, "test-task", entry.Name)
	assert.Equal(t, "2023-01-01T10:00:00Z", entry.StartTime)
	require.NotNil(t, entry.EndTime)
	assert.Equal(t, "2023-01-01T11:00:00Z", *entry.EndTime)
	assert.Equal(t, 60, entry.Duration)

	tm.Saved()
	assert.Equal(t, Idle, tm.State)
	assert.Empty(t, tm.Project)
	assert.Empty(t, tm.Name)
}

func TestTimer_StartRequiresFields(t *testing.T) {
	tm := New(newClock().now)
	assert.ErrorIs(t, tm.Start("", "task"), ErrMissingFields)
	assert.ErrorIs(t, tm.Start("project", "  "), ErrMissingFields)
	assert.Equal(t, Idle, tm.State)
}

func TestTimer_InvalidTransitions(t *testing.T) {
	tm := New(newClock().now)
	assert.ErrorIs(t, tm.Stop(), ErrNotRunning)
	_, err := tm.Entry()
	assert.ErrorIs(t, err, ErrNotStopped)

	require.NoError(t, tm.Start("p", "n"))
	assert.ErrorIs(t, tm.Start("p", "n"), ErrAlreadyActive)
	_, err = tm.Entry()
	assert.ErrorIs(t, err, ErrNotStopped)

	require.NoError(t, tm.Stop())
	assert.ErrorIs(t, tm.Stop(), ErrNotRunning)
	assert.ErrorIs(t, tm.Start("p", "n"), ErrAlreadyActive)
}

func TestTimer_SaveFailedStaysStopped(t *testing.T) {
	clk := newClock()
	tm := New(clk.now)
	require.NoError(t, tm.Start("p", "n"))
	clk.advance(90 * time.Second)
	require.NoError(t, tm.Stop())

	tm.SaveFailed(errors.New("Network error"))
	assert.Equal(t, Stopped, tm.State)
	assert.Equal(t, "Network error", tm.LastError)

	entry, err := tm.Entry()
	require.NoError(t, err)
	assert.Equal(t, 2, entry.Duration)
}

func TestTimer_ZeroValueUsesWallClock(t *testing.T) {
	var tm Timer
	require.NoError(t, tm.Start("p", "n"))
	assert.False(t, tm.StartedAt.IsZero())
	tm.Reset()
	assert.Equal(t, Idle, tm.State)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "stopped", Stopped.String())
	assert.Equal(t, "unknown", State(9).String())
}
