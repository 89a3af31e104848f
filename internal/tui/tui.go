// Package tui is a terminal front end for the time entry API: a start/stop
// timer that saves entries, and a list of saved entries.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Aadithya-J/time_management/internal/client"
	"github.com/Aadithya-J/time_management/internal/models"
	"github.com/Aadithya-J/time_management/internal/timer"
)

// API is the part of the HTTP client the TUI needs.
type API interface {
	List(ctx context.Context) ([]models.TimeEntry, error)
	Create(ctx context.Context, in client.NewEntry) (*models.TimeEntry, error)
	Delete(ctx context.Context, id string) (string, error)
}

type focus int

const (
	focusProject focus = iota
	focusName
	focusList
)

type entriesMsg struct {
	entries []models.TimeEntry
	err     error
}

type savedMsg struct {
	entry *models.TimeEntry
	err   error
}

type deletedMsg struct {
	message string
	err     error
}

type tickMsg time.Time

type Model struct {
	api    API
	keys   KeyMap
	styles Styles

	timer   *timer.Timer
	project textinput.Model
	name    textinput.Model
	focus   focus

	entries       []models.TimeEntry
	cursor        int
	confirmDelete bool
	loading       bool

	notice string
	err    error
}

func New(api API, now func() time.Time) Model {
	project := textinput.New()
	project.Placeholder = "Project"
	project.CharLimit = 255
	project.Width = 40
	project.Focus()

	name := textinput.New()
	name.Placeholder = "Task name"
	name.CharLimit = 255
	name.Width = 40

	return Model{
		api:     api,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		timer:   timer.New(now),
		project: project,
		name:    name,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadEntries(), tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case entriesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.entries = msg.entries
		if m.cursor >= len(m.entries) {
			m.cursor = max(len(m.entries)-1, 0)
		}
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.timer.SaveFailed(msg.err)
			m.err = fmt.Errorf("failed to save entry: %w", msg.err)
			return m, nil
		}
		m.timer.Saved()
		m.project.SetValue("")
		m.name.SetValue("")
		m.err = nil
		m.notice = "Saved entry " + msg.entry.ID
		return m, m.loadEntries()

	case deletedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("failed to delete entry: %w", msg.err)
			return m, nil
		}
		m.err = nil
		m.notice = msg.message
		return m, m.loadEntries()

	case tickMsg:
		return m, tick()
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.confirmDelete {
		m.confirmDelete = false
		if key.Matches(msg, m.keys.Confirm) && m.cursor < len(m.entries) {
			return m, m.deleteEntry(m.entries[m.cursor].ID)
		}
		m.notice = "Delete cancelled"
		return m, nil
	}

	if key.Matches(msg, m.keys.Focus) {
		return m.setFocus((m.focus + 1) % 3), nil
	}

	if m.focus != focusList {
		switch {
		case key.Matches(msg, m.keys.Back):
			return m.setFocus(focusList), nil
		case key.Matches(msg, m.keys.Select):
			m.start()
			return m, nil
		}
		return m.updateInputs(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Start):
		m.start()
	case key.Matches(msg, m.keys.Stop):
		if err := m.timer.Stop(); err != nil {
			m.err = err
		} else {
			m.err = nil
			m.notice = "Timer stopped, press 'w' to save"
		}
	case key.Matches(msg, m.keys.Save):
		entry, err := m.timer.Entry()
		if err != nil {
			m.err = err
			return m, nil
		}
		return m, m.saveEntry(entry)
	case key.Matches(msg, m.keys.Discard):
		if m.timer.State == timer.Idle {
			return m, nil
		}
		m.timer.Reset()
		m.err = nil
		m.notice = "Timer discarded"
	case key.Matches(msg, m.keys.Delete):
		if len(m.entries) > 0 {
			m.confirmDelete = true
		}
	case key.Matches(msg, m.keys.Edit):
		m.notice = "Editing entries is not available yet"
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.loadEntries()
	}
	return m, nil
}

func (m *Model) start() {
	if err := m.timer.Start(m.project.Value(), m.name.Value()); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.notice = ""
}

func (m Model) setFocus(f focus) Model {
	m.focus = f
	m.project.Blur()
	m.name.Blur()
	switch f {
	case focusProject:
		m.project.Focus()
	case focusName:
		m.name.Focus()
	}
	return m
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	// the form is locked while an interval is being tracked
	if m.timer.State != timer.Idle {
		return m, nil
	}
	var cmd tea.Cmd
	switch m.focus {
	case focusProject:
		m.project, cmd = m.project.Update(msg)
	case focusName:
		m.name, cmd = m.name.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Time Management"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Label.Render("Project: "))
	b.WriteString(m.project.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Task:    "))
	b.WriteString(m.name.View())
	b.WriteString("\n\n")

	switch m.timer.State {
	case timer.Running:
		b.WriteString(m.styles.TimerRunning.Render("● Running "))
		b.WriteString(m.styles.TimerElapsed.Render(formatElapsed(m.timer.Elapsed())))
	case timer.Stopped:
		b.WriteString(m.styles.TimerStopped.Render("■ Stopped "))
		b.WriteString(m.styles.TimerElapsed.Render(formatElapsed(m.timer.Elapsed())))
		b.WriteString(m.styles.Label.Render("  (unsaved)"))
	default:
		b.WriteString(m.styles.Label.Render("No timer running"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.styles.Title.Render("Entries"))
	b.WriteString("\n")
	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.entries) == 0:
		b.WriteString(m.styles.Label.Render("No entries yet"))
		b.WriteString("\n")
	default:
		for i, e := range m.entries {
			line := fmt.Sprintf("%s  %s  %s  %s",
				m.styles.EntryProject.Render(e.Project),
				e.Name,
				e.StartTime,
				m.styles.EntryDuration.Render(fmt.Sprintf("%dm", e.Duration)))
			if i == m.cursor && m.focus == focusList {
				b.WriteString(m.styles.EntrySelected.Render("> ") + line)
			} else {
				b.WriteString(m.styles.EntryNormal.Render("  ") + line)
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if m.confirmDelete && m.cursor < len(m.entries) {
		b.WriteString(m.styles.Notice.Render(fmt.Sprintf("Delete %q? (y/n)", m.entries[m.cursor].Name)))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.notice != "" {
		b.WriteString(m.styles.Notice.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("tab focus • enter/s start • x stop • w save • c discard • d delete • e edit • r refresh • q quit"))
	return b.String()
}

func (m Model) loadEntries() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.api.List(context.Background())
		return entriesMsg{entries: entries, err: err}
	}
}

func (m Model) saveEntry(in client.NewEntry) tea.Cmd {
	return func() tea.Msg {
		entry, err := m.api.Create(context.Background(), in)
		return savedMsg{entry: entry, err: err}
	}
}

func (m Model) deleteEntry(id string) tea.Cmd {
	return func() tea.Msg {
		message, err := m.api.Delete(context.Background(), id)
		return deletedMsg{message: message, err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func formatElapsed(d time.Duration) string {
	s := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s/60)%60, s%60)
}
