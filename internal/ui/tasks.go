package ui

import (
	"fmt"
	"strings"

	"studydash/internal/config"
	"studydash/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Add flow steps for a new task.
const (
	addStepText = iota
	addStepDeadline
)

// TaskPane shows the deadline-sorted task list.
type TaskPane struct {
	store  *storage.Storage
	styles *Styles
	keys   TaskKeyMap
	input  InputKeyMap

	focused bool
	width   int
	height  int

	tasks  []storage.Task
	cursor int
	loaded bool

	adding        bool
	addStep       int
	textInput     textinput.Model
	deadlineInput textinput.Model
}

// NewTaskPane creates the task pane.
func NewTaskPane(store *storage.Storage, styles *Styles, keysCfg *config.KeysConfig) *TaskPane {
	textInput := textinput.New()
	textInput.Placeholder = "What needs doing?"
	textInput.CharLimit = 200
	textInput.Width = 40

	deadlineInput := textinput.New()
	deadlineInput.Placeholder = "2026-01-15 (optional)"
	deadlineInput.CharLimit = 10
	deadlineInput.Width = 20

	return &TaskPane{
		store:         store,
		styles:        styles,
		keys:          NewTaskKeyMap(keysCfg),
		input:         NewInputKeyMap(keysCfg),
		textInput:     textInput,
		deadlineInput: deadlineInput,
	}
}

// Init loads tasks from storage.
func (p *TaskPane) Init() tea.Cmd {
	return loadTasksCmd(p.store)
}

// SetSize updates the pane dimensions.
func (p *TaskPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets keyboard focus.
func (p *TaskPane) SetFocused(focused bool) {
	p.focused = focused
	if !focused {
		p.cancelAdd()
	}
}

// IsAdding reports whether the add-task flow is active.
func (p *TaskPane) IsAdding() bool {
	return p.adding
}

// SelectedTask returns the task under the cursor, or false when the
// list is empty.
func (p *TaskPane) SelectedTask() (storage.Task, bool) {
	if len(p.tasks) == 0 || p.cursor >= len(p.tasks) {
		return storage.Task{}, false
	}
	return p.tasks[p.cursor], true
}

// Stats returns open and done counts.
func (p *TaskPane) Stats() (open, done int) {
	for _, t := range p.tasks {
		if t.Completed {
			done++
		} else {
			open++
		}
	}
	return open, done
}

// setTasks replaces the list and clamps the cursor.
func (p *TaskPane) setTasks(tasks []storage.Task) {
	p.tasks = tasks
	p.loaded = true
	if len(p.tasks) == 0 {
		p.cursor = 0
	} else if p.cursor >= len(p.tasks) {
		p.cursor = len(p.tasks) - 1
	}
}

// reload returns a command that refreshes the sorted list.
func (p *TaskPane) reload() tea.Cmd {
	return loadTasksCmd(p.store)
}

// Update handles messages for the task pane.
func (p *TaskPane) Update(msg tea.Msg) (*TaskPane, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		if msg.err == nil {
			p.setTasks(msg.tasks)
		}
		return p, nil

	case taskAddedMsg:
		if msg.err == nil {
			return p, p.reload()
		}
		return p, nil

	case taskToggledMsg:
		if msg.err == nil {
			return p, p.reload()
		}
		return p, nil

	case taskDeletedMsg:
		if msg.err == nil {
			return p, p.reload()
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
func (p *TaskPane) updateNormal(msg tea.KeyMsg) (*TaskPane, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, p.keys.Down):
		if p.cursor < len(p.tasks)-1 {
			p.cursor++
		}
	case key.Matches(msg, p.keys.Top):
		p.cursor = 0
	case key.Matches(msg, p.keys.Bottom):
		if len(p.tasks) > 0 {
			p.cursor = len(p.tasks) - 1
		}
	case key.Matches(msg, p.keys.Add):
		p.adding = true
		p.addStep = addStepText
		p.textInput.Focus()
		return p, textinput.Blink
	case key.Matches(msg, p.keys.Toggle):
		if task, ok := p.SelectedTask(); ok {
			return p, toggleTaskCmd(p.store, task.ID, task.Completed)
		}
	}

	return p, nil
}

// updateAdding handles the two-step add flow: text, then deadline.
func (p *TaskPane) updateAdding(msg tea.KeyMsg) (*TaskPane, tea.Cmd) {
	switch {
	case key.Matches(msg, p.input.Cancel):
		p.cancelAdd()
		return p, nil

	case key.Matches(msg, p.input.Confirm):
		if p.addStep == addStepText {
			p.addStep = addStepDeadline
			p.textInput.Blur()
			p.deadlineInput.Focus()
			return p, textinput.Blink
		}
		text := strings.TrimSpace(p.textInput.Value())
		deadline := strings.TrimSpace(p.deadlineInput.Value())
		p.cancelAdd()
		return p, addTaskCmd(p.store, text, deadline)
	}

	var cmd tea.Cmd
	if p.addStep == addStepText {
		p.textInput, cmd = p.textInput.Update(msg)
	} else {
		p.deadlineInput, cmd = p.deadlineInput.Update(msg)
	}
	return p, cmd
}

// cancelAdd resets the add flow and its inputs.
func (p *TaskPane) cancelAdd() {
	p.adding = false
	p.addStep = addStepText
	p.textInput.Reset()
	p.deadlineInput.Reset()
	p.textInput.Blur()
	p.deadlineInput.Blur()
}

// View renders the task pane.
func (p *TaskPane) View() string {
	var b strings.Builder

	titleStyle := p.styles.PaneTitle
	borderStyle := p.styles.Pane
	if p.focused {
		titleStyle = p.styles.PaneTitleFocused
		borderStyle = p.styles.PaneFocused
	}

	open, done := p.Stats()
	b.WriteString(titleStyle.Render("TASKS"))
	b.WriteString(p.styles.HelpDesc.Render(fmt.Sprintf("  %d open · %d done", open, done)))
	b.WriteString("\n")

	if p.adding {
		b.WriteString(p.renderAddFlow())
	} else {
		b.WriteString(p.renderTasks())
	}

	return borderStyle.Width(max(p.width-2, 10)).Render(b.String())
}

// renderAddFlow renders the staged inputs for a new task.
func (p *TaskPane) renderAddFlow() string {
	var b strings.Builder
	label := p.styles.InputLabel

	if p.addStep == addStepText {
		b.WriteString(label.Render("Task:"))
		b.WriteString("\n")
		b.WriteString(p.textInput.View())
	} else {
		b.WriteString(label.Render("Deadline (YYYY-MM-DD, blank for none):"))
		b.WriteString("\n")
		b.WriteString(p.deadlineInput.View())
	}

	b.WriteString("\n")
	b.WriteString(p.styles.HelpDesc.Render("enter next · esc cancel"))
	return b.String()
}

// renderTasks renders the deadline-sorted task list.
func (p *TaskPane) renderTasks() string {
	if len(p.tasks) == 0 {
		return p.styles.EmptyHint.Render("No tasks. Press 'a' to add one.")
	}

	maxVisible := max(p.height-4, 1)
	start := 0
	if p.cursor >= maxVisible {
		start = p.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(p.tasks))

	today := p.store.Now()

	var b strings.Builder
	for i := start; i < end; i++ {
		task := p.tasks[i]

		checkbox := "[ ]"
		textStyle := p.styles.Item
		if task.Completed {
			checkbox = "[x]"
			textStyle = p.styles.ItemDone
		}

		text := truncateText(task.Text, max(p.width-22, 10))
		line := checkbox + " " + textStyle.Render(text)

		if hint := storage.FormatDeadline(task.Deadline, today); hint != "" && !task.Completed {
			line += " " + p.deadlineStyle(hint).Render(hint)
		}

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
	if end < len(p.tasks) {
		b.WriteString("\n")
		b.WriteString(p.styles.EmptyHint.Render(fmt.Sprintf("  … %d more", len(p.tasks)-end)))
	}
	return b.String()
}

// deadlineStyle picks a color by urgency.
func (p *TaskPane) deadlineStyle(hint string) lipgloss.Style {
	switch hint {
	case "overdue":
		return p.styles.DeadlineOverdue
	case "today", "tomorrow":
		return p.styles.DeadlineSoon
	default:
		return p.styles.DeadlineNormal
	}
}
