package ui

import (
	"fmt"
	"sort"
	"strings"

	"studydash/internal/config"
	"studydash/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Add flow steps for a new class.
const (
	addStepTime = iota
	addStepSubject
	addStepTeacher
)

// SchedulePane shows the weekly class schedule one day at a time.
type SchedulePane struct {
	store  *storage.Storage
	styles *Styles
	keys   ScheduleKeyMap
	input  InputKeyMap

	focused bool
	width   int
	height  int

	day       storage.Weekday
	schedules storage.Schedules
	cursor    int
	loaded    bool

	adding       bool
	addStep      int
	timeInput    textinput.Model
	subjectInput textinput.Model
	teacherInput textinput.Model
}

// NewSchedulePane creates the schedule pane. The shown day defaults to
// today, or Monday on Sunday.
func NewSchedulePane(store *storage.Storage, styles *Styles, keysCfg *config.KeysConfig) *SchedulePane {
	timeInput := textinput.New()
	timeInput.Placeholder = "09:00"
	timeInput.CharLimit = 5
	timeInput.Width = 20

	subjectInput := textinput.New()
	subjectInput.Placeholder = "Subject"
	subjectInput.CharLimit = 100
	subjectInput.Width = 30

	teacherInput := textinput.New()
	teacherInput.Placeholder = "Teacher (optional)"
	teacherInput.CharLimit = 60
	teacherInput.Width = 30

	day, _ := storage.DefaultDay(store.Now())

	return &SchedulePane{
		store:        store,
		styles:       styles,
		keys:         NewScheduleKeyMap(keysCfg),
		input:        NewInputKeyMap(keysCfg),
		day:          day,
		schedules:    storage.Schedules{},
		timeInput:    timeInput,
		subjectInput: subjectInput,
		teacherInput: teacherInput,
	}
}

// Init loads the schedule from storage.
func (p *SchedulePane) Init() tea.Cmd {
	return loadSchedulesCmd(p.store)
}

// SetSize updates the pane dimensions.
func (p *SchedulePane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets keyboard focus.
func (p *SchedulePane) SetFocused(focused bool) {
	p.focused = focused
	if !focused {
		p.cancelAdd()
	}
}

// IsAdding reports whether the add-class flow is active.
func (p *SchedulePane) IsAdding() bool {
	return p.adding
}

// Day returns the currently shown weekday.
func (p *SchedulePane) Day() storage.Weekday {
	return p.day
}

// SelectedEntry returns the sorted position and entry under the
// cursor, or false when the day is empty.
func (p *SchedulePane) SelectedEntry() (int, storage.ScheduleEntry, bool) {
	entries := p.dayEntries()
	if len(entries) == 0 || p.cursor >= len(entries) {
		return 0, storage.ScheduleEntry{}, false
	}
	return p.cursor, entries[p.cursor], true
}

// dayEntries returns the shown day's classes sorted by start time.
// Ties keep their stored order.
func (p *SchedulePane) dayEntries() []storage.ScheduleEntry {
	bucket := p.schedules[p.day]
	entries := make([]storage.ScheduleEntry, len(bucket))
	copy(entries, bucket)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})
	return entries
}

// Update handles messages for the schedule pane.
func (p *SchedulePane) Update(msg tea.Msg) (*SchedulePane, tea.Cmd) {
	switch msg := msg.(type) {
	case schedulesLoadedMsg:
		if msg.err == nil {
			p.schedules = msg.schedules
			p.loaded = true
			p.clampCursor()
		}
		return p, nil

	case entryAddedMsg:
		if msg.err == nil {
			return p, loadSchedulesCmd(p.store)
		}
		return p, nil

	case entryDeletedMsg:
		if msg.err == nil {
			return p, loadSchedulesCmd(p.store)
		}
		return p, nil

	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		if p.adding {
			return p.updateAdding(msg)
		}
		return p.updateNormal(msg)
	}

	return p, nil
}

// updateNormal handles keys outside the add flow.
func (p *SchedulePane) updateNormal(msg tea.KeyMsg) (*SchedulePane, tea.Cmd) {
	entries := p.dayEntries()

	switch {
	case key.Matches(msg, p.keys.Left):
		p.day = prevWeekday(p.day)
		p.cursor = 0
	case key.Matches(msg, p.keys.Right):
		p.day = nextWeekday(p.day)
		p.cursor = 0
	case key.Matches(msg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, p.keys.Down):
		if p.cursor < len(entries)-1 {
			p.cursor++
		}
	case key.Matches(msg, p.keys.Top):
		p.cursor = 0
	case key.Matches(msg, p.keys.Bottom):
		if len(entries) > 0 {
			p.cursor = len(entries) - 1
		}
	case key.Matches(msg, p.keys.Add):
		p.adding = true
		p.addStep = addStepTime
		p.timeInput.Focus()
		return p, textinput.Blink
	}

	return p, nil
}

// updateAdding handles the three-step add flow: time, subject, teacher.
func (p *SchedulePane) updateAdding(msg tea.KeyMsg) (*SchedulePane, tea.Cmd) {
	switch {
	case key.Matches(msg, p.input.Cancel):
		p.cancelAdd()
		return p, nil

	case key.Matches(msg, p.input.Confirm):
		switch p.addStep {
		case addStepTime:
			p.addStep = addStepSubject
			p.timeInput.Blur()
			p.subjectInput.Focus()
			return p, textinput.Blink
		case addStepSubject:
			p.addStep = addStepTeacher
			p.subjectInput.Blur()
			p.teacherInput.Focus()
			return p, textinput.Blink
		case addStepTeacher:
			day := p.day
			timeStr := strings.TrimSpace(p.timeInput.Value())
			subject := strings.TrimSpace(p.subjectInput.Value())
			teacher := strings.TrimSpace(p.teacherInput.Value())
			p.cancelAdd()
			return p, addEntryCmd(p.store, day, timeStr, subject, teacher)
		}
	}

	var cmd tea.Cmd
	switch p.addStep {
	case addStepTime:
		p.timeInput, cmd = p.timeInput.Update(msg)
	case addStepSubject:
		p.subjectInput, cmd = p.subjectInput.Update(msg)
	case addStepTeacher:
		p.teacherInput, cmd = p.teacherInput.Update(msg)
	}
	return p, cmd
}

// cancelAdd resets the add flow and its inputs.
func (p *SchedulePane) cancelAdd() {
	p.adding = false
	p.addStep = addStepTime
	p.timeInput.Reset()
	p.subjectInput.Reset()
	p.teacherInput.Reset()
	p.timeInput.Blur()
	p.subjectInput.Blur()
	p.teacherInput.Blur()
}

// clampCursor keeps the cursor inside the shown day's class list.
func (p *SchedulePane) clampCursor() {
	n := len(p.schedules[p.day])
	if n == 0 {
		p.cursor = 0
	} else if p.cursor >= n {
		p.cursor = n - 1
	}
}

// View renders the schedule pane.
func (p *SchedulePane) View() string {
	var b strings.Builder

	titleStyle := p.styles.PaneTitle
	borderStyle := p.styles.Pane
	if p.focused {
		titleStyle = p.styles.PaneTitleFocused
		borderStyle = p.styles.PaneFocused
	}

	b.WriteString(titleStyle.Render("SCHEDULE"))
	b.WriteString("\n")

	dayStyle := p.styles.DayHeader
	if today, ok := storage.DefaultDay(p.store.Now()); ok && today == p.day {
		dayStyle = p.styles.DayToday
	}
	b.WriteString(fmt.Sprintf("◀ %s ▶", dayStyle.Render(p.day.Label())))
	b.WriteString("\n")

	if p.adding {
		b.WriteString(p.renderAddFlow())
	} else {
		b.WriteString(p.renderEntries())
	}

	return borderStyle.Width(max(p.width-2, 10)).Render(b.String())
}

// renderAddFlow renders the staged inputs for a new class.
func (p *SchedulePane) renderAddFlow() string {
	var b strings.Builder
	label := p.styles.InputLabel

	switch p.addStep {
	case addStepTime:
		b.WriteString(label.Render("Start time (HH:MM):"))
		b.WriteString("\n")
		b.WriteString(p.timeInput.View())
	case addStepSubject:
		b.WriteString(label.Render("Subject:"))
		b.WriteString("\n")
		b.WriteString(p.subjectInput.View())
	case addStepTeacher:
		b.WriteString(label.Render("Teacher (optional):"))
		b.WriteString("\n")
		b.WriteString(p.teacherInput.View())
	}

	b.WriteString("\n")
	b.WriteString(p.styles.HelpDesc.Render("enter next · esc cancel"))
	return b.String()
}

// renderEntries renders the shown day's class list.
func (p *SchedulePane) renderEntries() string {
	entries := p.dayEntries()
	if len(entries) == 0 {
		return p.styles.EmptyHint.Render("No classes. Press 'a' to add one.")
	}

	maxVisible := max(p.height-5, 1)
	start := 0
	if p.cursor >= maxVisible {
		start = p.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(entries))

	var b strings.Builder
	for i := start; i < end; i++ {
		entry := entries[i]

		detail := entry.Subject
		if entry.Teacher != "" {
			detail += " (" + entry.Teacher + ")"
		}
		detail = truncateText(detail, max(p.width-12, 10))
		line := p.styles.ClassTime.Render(entry.Time) + " " + detail

		if p.focused && i == p.cursor {
			b.WriteString(p.styles.ItemSelected.Render("› "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if end < len(entries) {
		b.WriteString("\n")
		b.WriteString(p.styles.EmptyHint.Render(fmt.Sprintf("  … %d more", len(entries)-end)))
	}
	return b.String()
}

// prevWeekday cycles one day back, wrapping Saturday to Monday.
func prevWeekday(day storage.Weekday) storage.Weekday {
	days := storage.Weekdays()
	for i, d := range days {
		if d == day {
			if i == 0 {
				return days[len(days)-1]
			}
			return days[i-1]
		}
	}
	return days[0]
}

// nextWeekday cycles one day forward, wrapping Saturday to Monday.
func nextWeekday(day storage.Weekday) storage.Weekday {
	days := storage.Weekdays()
	for i, d := range days {
		if d == day {
			if i == len(days)-1 {
				return days[0]
			}
			return days[i+1]
		}
	}
	return days[0]
}
