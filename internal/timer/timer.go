// Package timer tracks one unsaved work interval on the client side.
package timer

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/Aadithya-J/time_management/internal/client"
)

type State int

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

var (
	ErrMissingFields = errors.New("project and name are required to start the timer")
	ErrNotRunning    = errors.New("timer is not running")
	ErrNotStopped    = errors.New("timer must be stopped before saving")
	ErrAlreadyActive = errors.New("timer is already active")
)

// Timer moves Idle -> Running -> Stopped -> Idle. Its zero value is an idle timer.
type Timer struct {
	State     State
	Project   string
	Name      string
	StartedAt time.Time
	StoppedAt time.Time
	// LastError is the message of the last failed save, cleared on success.
	LastError string

	now func() time.Time
}

func New(now func() time.Time) *Timer {
	return &Timer{now: now}
}

func (t *Timer) clock() time.Time {
	if t.now == nil {
		return time.Now()
	}
	return t.now()
}

func (t *Timer) Start(project, name string) error {
	if t.State != Idle {
		return ErrAlreadyActive
	}
	project, name = strings.TrimSpace(project), strings.TrimSpace(name)
	if project == "" || name == "" {
		return ErrMissingFields
	}
	t.Project = project
	t.Name = name
	t.StartedAt = t.clock()
	t.StoppedAt = time.Time{}
	t.LastError = ""
	t.State = Running
	return nil
}

// Stop freezes the elapsed time.
func (t *Timer) Stop() error {
	if t.State != Running {
		return ErrNotRunning
	}
	t.StoppedAt = t.clock()
	t.State = Stopped
	return nil
}

// Elapsed is wall clock since start while running, and the frozen interval once stopped.
func (t *Timer) Elapsed() time.Duration {
	switch t.State {
	case Running:
		return t.clock().Sub(t.StartedAt)
	case Stopped:
		return t.StoppedAt.Sub(t.StartedAt)
	default:
		return 0
	}
}

// Entry builds the payload to save for a stopped timer.
func (t *Timer) Entry() (client.NewEntry, error) {
	if t.State != Stopped {
		return client.NewEntry{}, ErrNotStopped
	}
	end := t.StoppedAt.UTC().Format(time.RFC3339)
	return client.NewEntry{
		Project:   t.Project,
		Name:      t.Name,
		StartTime: t.StartedAt.UTC().Format(time.RFC3339),
		EndTime:   &end,
		Duration:  int(math.Round(t.Elapsed().Minutes())),
	}, nil
}

// Saved returns the timer to Idle and clears the form.
func (t *Timer) Saved() {
	*t = Timer{now: t.now}
}

// SaveFailed keeps the timer stopped so the user can retry.
func (t *Timer) SaveFailed(err error) {
	if err != nil {
		t.LastError = err.Error()
	}
}

func (t *Timer) Reset() {
	t.Saved()
}
