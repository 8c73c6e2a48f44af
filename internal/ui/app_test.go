// This file contains tests for the main App model: layout, pane
// switching, and end-to-end key flows.
package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loadAll feeds the initial pane data synchronously.
func loadAll(t *testing.T, app *App) {
	t.Helper()
	runCmds(t, app, app.reloadAll())
}

func TestApp_LayoutModeTransitions(t *testing.T) {
	app := createTestApp(t, createTestStorage(t))

	tests := []struct {
		name  string
		width int
		want  LayoutMode
	}{
		{"very narrow", 40, LayoutNarrow},
		{"just under threshold", 79, LayoutNarrow},
		{"at threshold", 80, LayoutWide},
		{"wide", 120, LayoutWide},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app.Update(tea.WindowSizeMsg{Width: tc.width, Height: 40})
			if app.layout != tc.want {
				t.Errorf("width %d: layout = %v, want %v", tc.width, app.layout, tc.want)
			}
		})
	}
}

func TestApp_WideViewShowsAllPanes(t *testing.T) {
	app := createTestApp(t, createTestStorage(t))
	loadAll(t, app)

	view := app.View()
	for _, title := range []string{"SCHEDULE", "TASKS", "NOTES", "HABITS", "FOCUS"} {
		contains(t, view, title)
	}
}

func TestApp_NarrowLayoutShowsTabs(t *testing.T) {
	app := createTestApp(t, createTestStorage(t))
	app.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	loadAll(t, app)

	view := app.View()
	contains(t, view, "[1:Schedule]")
	contains(t, view, "2:Tasks")
	// Only the active pane's body renders.
	contains(t, view, "SCHEDULE")
	notContains(t, view, "HABITS")
}

func TestApp_PaneSwitching(t *testing.T) {
	app := createTestApp(t, createTestStorage(t))

	if app.activePane != PaneSchedule {
		t.Fatalf("default pane = %v, want schedule", app.activePane)
	}

	pressSpecial(t, app, tea.KeyTab)
	if app.activePane != PaneTasks {
		t.Errorf("after tab: pane = %v, want tasks", app.activePane)
	}

	pressKey(t, app, "5")
	if app.activePane != PanePomodoro {
		t.Errorf("after 5: pane = %v, want pomodoro", app.activePane)
	}

	// Tab wraps back to the first pane.
	pressSpecial(t, app, tea.KeyTab)
	if app.activePane != PaneSchedule {
		t.Errorf("after wrap: pane = %v, want schedule", app.activePane)
	}
}

func TestApp_AddTaskFlow(t *testing.T) {
	store := createTestStorage(t)
	app := createTestApp(t, store)
	loadAll(t, app)

	pressKey(t, app, "2")
	pressKey(t, app, "a")
	if !app.taskPane.IsAdding() {
		t.Fatal("task pane should be in add mode")
	}

	pressKey(t, app, "Read chapter 4")
	pressSpecial(t, app, tea.KeyEnter)
	pressSpecial(t, app, tea.KeyEnter) // no deadline

	tasks, err := store.LoadTasks()
	if err != nil {
		t.Fatalf("LoadTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Text != "Read chapter 4" {
		t.Fatalf("tasks = %+v, want one task 'Read chapter 4'", tasks)
	}
	contains(t, app.View(), "Read chapter 4")
}

func TestApp_GlobalKeysIgnoredWhileTyping(t *testing.T) {
	store := createTestStorage(t)
	app := createTestApp(t, store)
	loadAll(t, app)

	pressKey(t, app, "2")
	pressKey(t, app, "a")
	// "q" and "1" are text here, not quit or pane switch.
	pressKey(t, app, "q1")

	if app.quitting {
		t.Fatal("typing q while adding must not quit")
	}
	if app.activePane != PaneTasks {
		t.Fatalf("pane switched while typing, now %v", app.activePane)
	}
}

func TestApp_DeleteTaskWithConfirmation(t *testing.T) {
	store := createTestStorage(t)
	if _, err := store.AddTask("Doomed", ""); err != nil {
		t.Fatal(err)
	}
	app := createTestApp(t, store)
	loadAll(t, app)

	pressKey(t, app, "2")
	pressKey(t, app, "x")
	if !app.confirmDelete.active {
		t.Fatal("expected confirmation overlay")
	}
	contains(t, app.View(), "Doomed")

	pressKey(t, app, "y")
	tasks, _ := store.LoadTasks()
	if len(tasks) != 0 {
		t.Fatalf("task not deleted: %+v", tasks)
	}
}

func TestApp_DeleteCancelKeepsTask(t *testing.T) {
	store := createTestStorage(t)
	if _, err := store.AddTask("Survivor", ""); err != nil {
		t.Fatal(err)
	}
	app := createTestApp(t, store)
	loadAll(t, app)

	pressKey(t, app, "2")
	pressKey(t, app, "x")
	pressKey(t, app, "n")

	if app.confirmDelete.active {
		t.Fatal("overlay should be closed")
	}
	tasks, _ := store.LoadTasks()
	if len(tasks) != 1 {
		t.Fatalf("task deleted despite cancel: %+v", tasks)
	}
}

func TestApp_UndoRedoTaskDelete(t *testing.T) {
	store := createTestStorage(t)
	if _, err := store.AddTask("Precious", ""); err != nil {
		t.Fatal(err)
	}
	app := createTestApp(t, store)
	loadAll(t, app)

	pressKey(t, app, "2")
	pressKey(t, app, "x")
	pressKey(t, app, "y")

	pressSpecial(t, app, tea.KeyCtrlZ)
	tasks, _ := store.LoadTasks()
	if len(tasks) != 1 || tasks[0].Text != "Precious" {
		t.Fatalf("undo did not restore task: %+v", tasks)
	}

	pressSpecial(t, app, tea.KeyCtrlY)
	tasks, _ = store.LoadTasks()
	if len(tasks) != 0 {
		t.Fatalf("redo did not re-delete task: %+v", tasks)
	}
}

func TestApp_UndoWithEmptyStack(t *testing.T) {
	app := createTestApp(t, createTestStorage(t))
	pressSpecial(t, app, tea.KeyCtrlZ)
	if app.status != "Nothing to undo" {
		t.Errorf("status = %q", app.status)
	}
}

func TestApp_TickCompletesFocusSession(t *testing.T) {
	store := createTestStorage(t)
	app := createTestApp(t, store)

	pressKey(t, app, "5")
	pressKey(t, app, " ") // start

	base := time.Now()
	app.lastTick = base
	app.Update(tickMsg(base.Add(25 * time.Minute)))

	if got := app.timer.Sessions(); got != 1 {
		t.Fatalf("sessions = %d, want 1", got)
	}
	contains(t, app.status, "Focus session complete")

	// The counter was persisted.
	n, err := store.LoadSessionCount()
	if err != nil || n != 1 {
		t.Fatalf("persisted count = %d (err %v), want 1", n, err)
	}
}

func TestApp_TickIsHarmlessWhenIdle(t *testing.T) {
	app := createTestApp(t, createTestStorage(t))

	base := time.Now()
	app.lastTick = base
	app.Update(tickMsg(base.Add(time.Hour)))

	if app.timer.Sessions() != 0 {
		t.Error("idle timer must not complete sessions")
	}
}

func TestApp_StatusExpires(t *testing.T) {
	app := createTestApp(t, createTestStorage(t))

	app.SetStatus("hello", false)
	app.Update(tickMsg(time.Now()))
	if app.status != "hello" {
		t.Fatal("status expired too early")
	}

	app.statusExpires = time.Now().Add(-time.Second)
	app.Update(tickMsg(time.Now()))
	if app.status != "" {
		t.Fatalf("status = %q, want cleared", app.status)
	}
}

func TestApp_HelpOverlay(t *testing.T) {
	app := createTestApp(t, createTestStorage(t))

	pressKey(t, app, "?")
	view := app.View()
	contains(t, view, "Global")
	contains(t, view, "Focus timer")

	pressKey(t, app, "x") // any key closes, and is not a delete
	if app.showHelp {
		t.Fatal("help should close on any key")
	}
	if app.confirmDelete.active {
		t.Fatal("closing key must not reach the panes")
	}
}

func TestApp_NotesBlurFlushes(t *testing.T) {
	store := createTestStorage(t)
	app := createTestApp(t, store)
	loadAll(t, app)

	pressKey(t, app, "3")
	pressKey(t, app, "i")
	if !app.notesPane.IsEditing() {
		t.Fatal("notes pane should be editing")
	}
	pressKey(t, app, "exam friday")

	// Switching panes blurs and flushes synchronously.
	pressKey(t, app, "2")
	if app.activePane != PaneNotes {
		// "2" was typed into the pad, not a pane switch.
		t.Fatal("pane switch should not happen while editing")
	}
	pressSpecial(t, app, tea.KeyEsc)
	pressKey(t, app, "2")

	notes, err := store.LoadNotes()
	if err != nil {
		t.Fatal(err)
	}
	if notes != "exam friday2" {
		t.Fatalf("notes = %q", notes)
	}
}

func TestApp_QuitPersistsNotes(t *testing.T) {
	store := createTestStorage(t)
	app := createTestApp(t, store)
	loadAll(t, app)

	pressKey(t, app, "3")
	pressKey(t, app, "i")
	pressKey(t, app, "unsaved thought")
	pressSpecial(t, app, tea.KeyEsc)

	pressKey(t, app, "q")
	if !app.quitting {
		t.Fatal("expected app to quit")
	}

	notes, _ := store.LoadNotes()
	if notes != "unsaved thought" {
		t.Fatalf("notes = %q", notes)
	}
}
