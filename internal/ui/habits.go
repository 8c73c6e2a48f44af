package ui

import (
	"fmt"
	"strings"

	"studydash/internal/config"
	"studydash/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// HabitsPane shows the fixed habit catalog as a week grid. Rows are
// habits, columns are the seven days of the shown week starting on
// Sunday.
type HabitsPane struct {
	store  *storage.Storage
	styles *Styles
	keys   HabitKeyMap

	focused bool
	width   int
	height  int

	habits     []storage.Habit
	record     storage.HabitRecord
	weekOffset int
	row        int
	col        int
	loaded     bool
}

// NewHabitsPane creates the habits pane showing the current week with
// the cursor on today's column.
func NewHabitsPane(store *storage.Storage, styles *Styles, keysCfg *config.KeysConfig) *HabitsPane {
	p := &HabitsPane{
		store:  store,
		styles: styles,
		keys:   NewHabitKeyMap(keysCfg),
		habits: storage.Catalog(),
		record: storage.HabitRecord{},
	}
	p.col = p.todayColumn()
	return p
}

// Init loads the habit record.
func (p *HabitsPane) Init() tea.Cmd {
	return loadHabitsCmd(p.store)
}

// SetSize updates the pane dimensions.
func (p *HabitsPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets keyboard focus.
func (p *HabitsPane) SetFocused(focused bool) {
	p.focused = focused
}

// todayColumn returns today's index within the current week, or 0 when
// another week is shown.
func (p *HabitsPane) todayColumn() int {
	if p.weekOffset != 0 {
		return 0
	}
	today := p.store.Now().Format("2006-01-02")
	for i, date := range p.store.WeekDates(0) {
		if date == today {
			return i
		}
	}
	return 0
}

// SelectedCell returns the habit and date under the cursor.
func (p *HabitsPane) SelectedCell() (storage.Habit, string) {
	dates := p.store.WeekDates(p.weekOffset)
	return p.habits[p.row], dates[p.col]
}

// Update handles messages for the habits pane.
func (p *HabitsPane) Update(msg tea.Msg) (*HabitsPane, tea.Cmd) {
	switch msg := msg.(type) {
	case habitsLoadedMsg:
		if msg.err == nil {
			p.record = msg.record
			p.loaded = true
		}
		return p, nil

	case habitToggledMsg:
		if msg.err == nil {
			return p, loadHabitsCmd(p.store)
		}
		return p, nil

	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		return p.updateKeys(msg)
	}

	return p, nil
}

func (p *HabitsPane) updateKeys(msg tea.KeyMsg) (*HabitsPane, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Up):
		if p.row > 0 {
			p.row--
		}
	case key.Matches(msg, p.keys.Down):
		if p.row < len(p.habits)-1 {
			p.row++
		}
	case key.Matches(msg, p.keys.Left):
		if p.col > 0 {
			p.col--
		}
	case key.Matches(msg, p.keys.Right):
		if p.col < 6 {
			p.col++
		}
	case key.Matches(msg, p.keys.Top):
		p.row = 0
	case key.Matches(msg, p.keys.Bottom):
		p.row = len(p.habits) - 1
	case key.Matches(msg, p.keys.PrevWeek):
		p.weekOffset--
		p.col = p.todayColumn()
	case key.Matches(msg, p.keys.NextWeek):
		p.weekOffset++
		p.col = p.todayColumn()
	case key.Matches(msg, p.keys.Toggle):
		habit, date := p.SelectedCell()
		return p, toggleHabitCmd(p.store, habit.ID, date)
	}

	return p, nil
}

// View renders the habits pane.
func (p *HabitsPane) View() string {
	var b strings.Builder

	titleStyle := p.styles.PaneTitle
	borderStyle := p.styles.Pane
	if p.focused {
		titleStyle = p.styles.PaneTitleFocused
		borderStyle = p.styles.PaneFocused
	}

	b.WriteString(titleStyle.Render("HABITS"))
	b.WriteString("  ")
	b.WriteString(p.styles.WeekLabel.Render(p.store.WeekLabel(p.weekOffset)))
	b.WriteString("\n")

	b.WriteString(p.renderGrid())

	if habit, _ := p.SelectedCell(); p.loaded {
		streak := p.store.HabitStreak(p.record, habit.ID)
		if streak > 0 {
			b.WriteString("\n")
			b.WriteString(p.styles.HabitStreak.Render(fmt.Sprintf("🔥 %d day streak", streak)))
		}
	}

	return borderStyle.Width(max(p.width-2, 10)).Render(b.String())
}

// renderGrid draws the habit × day grid.
func (p *HabitsPane) renderGrid() string {
	dates := p.store.WeekDates(p.weekOffset)
	today := p.store.Now().Format("2006-01-02")

	var b strings.Builder

	// Day-of-week header row. Week columns run Sunday through Saturday.
	// Every day column is three cells wide so the bracketed cursor cell
	// lines up with plain ones.
	nameWidth := 12
	b.WriteString(strings.Repeat(" ", nameWidth+2))
	for i, letter := range []string{"S", "M", "T", "W", "T", "F", "S"} {
		style := p.styles.HabitMissed
		if dates[i] == today {
			style = p.styles.DayToday
		}
		b.WriteString(" ")
		b.WriteString(style.Render(letter))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	for row, habit := range p.habits {
		// Pad by display width; icon glyphs are double-cell and throw off
		// fmt's rune-count padding.
		name := truncateText(habit.Icon+" "+habit.Name, nameWidth)
		if pad := nameWidth - runewidth.StringWidth(name); pad > 0 {
			name += strings.Repeat(" ", pad)
		}
		nameStyle := p.styles.Item
		if p.focused && row == p.row {
			nameStyle = p.styles.ItemSelected
		}
		b.WriteString(nameStyle.Render(name))
		b.WriteString("  ")

		for col, date := range dates {
			cell := "○"
			style := p.styles.HabitMissed
			if storage.IsHabitDone(p.record, habit.ID, date) {
				cell = "●"
				style = p.styles.HabitDone
			}
			if date > today {
				style = p.styles.HabitLocked
			}
			if p.focused && row == p.row && col == p.col {
				b.WriteString(p.styles.HabitCursor.Render("[" + cell + "]"))
			} else {
				b.WriteString(" ")
				b.WriteString(style.Render(cell))
				b.WriteString(" ")
			}
		}
		if row < len(p.habits)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
