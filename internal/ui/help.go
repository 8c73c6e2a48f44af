package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// renderHelpOverlay builds the full-screen key reference.
func renderHelpOverlay(styles *Styles, global GlobalKeyMap, schedule ScheduleKeyMap, task TaskKeyMap, notes NotesKeyMap, habit HabitKeyMap, pomo PomodoroKeyMap) string {
	var b strings.Builder

	section := func(title string, rows [][]key.Binding) {
		b.WriteString(styles.HelpSection.Render(title))
		b.WriteString("\n")
		for _, row := range rows {
			for _, binding := range row {
				h := binding.Help()
				b.WriteString("  ")
				b.WriteString(styles.RenderHelp(h.Key, h.Desc))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	section("Global", [][]key.Binding{
		{global.NextPane, global.Pane1, global.Pane2, global.Pane3, global.Pane4, global.Pane5},
		{global.Undo, global.Redo, global.Help, global.Quit},
	})
	section("Schedule", schedule.FullHelp())
	section("Tasks", task.FullHelp())
	section("Notes", notes.FullHelp())
	section("Habits", habit.FullHelp())
	section("Focus timer", pomo.FullHelp())

	b.WriteString(styles.HelpDesc.Render("press any key to close"))

	return styles.HelpOverlay.Render(strings.TrimRight(b.String(), "\n") + "\n")
}
