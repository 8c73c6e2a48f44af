package ui

import (
	"time"

	"studydash/internal/notify"
	"studydash/internal/storage"

	tea "github.com/charmbracelet/bubbletea"
)

// Commands wrap storage calls in tea.Cmd closures so they run off the
// update loop. Each returns a typed message carrying the result.

func loadSchedulesCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		schedules, err := store.LoadSchedules()
		return schedulesLoadedMsg{schedules: schedules, err: err}
	}
}

func addEntryCmd(store *storage.Storage, day storage.Weekday, timeStr, subject, teacher string) tea.Cmd {
	return func() tea.Msg {
		entry, err := store.AddEntry(day, timeStr, subject, teacher)
		return entryAddedMsg{day: day, entry: entry, err: err}
	}
}

func deleteEntryCmd(store *storage.Storage, day storage.Weekday, index int) tea.Cmd {
	return func() tea.Msg {
		entry, err := store.DeleteEntryAt(day, index)
		return entryDeletedMsg{day: day, entry: entry, err: err}
	}
}

// loadTasksCmd loads tasks in deadline order for display.
func loadTasksCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		tasks, err := store.ListTasks()
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func addTaskCmd(store *storage.Storage, text, deadline string) tea.Cmd {
	return func() tea.Msg {
		task, err := store.AddTask(text, deadline)
		return taskAddedMsg{task: task, err: err}
	}
}

// toggleTaskCmd flips a task's completion. wasCompleted is the state
// before the flip, captured by the caller for undo.
func toggleTaskCmd(store *storage.Storage, id string, wasCompleted bool) tea.Cmd {
	return func() tea.Msg {
		err := store.ToggleTask(id)
		return taskToggledMsg{id: id, wasCompleted: wasCompleted, err: err}
	}
}

func deleteTaskCmd(store *storage.Storage, id string) tea.Cmd {
	return func() tea.Msg {
		task, err := store.DeleteTask(id)
		return taskDeletedMsg{task: task, err: err}
	}
}

func loadNotesCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		notes, err := store.LoadNotes()
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func saveNotesCmd(store *storage.Storage, content string) tea.Cmd {
	return func() tea.Msg {
		err := store.SaveNotes(content)
		return notesSavedMsg{err: err}
	}
}

// debounceNotesCmd schedules a flush one second after the latest edit.
// Each edit bumps the sequence so earlier timers expire silently.
func debounceNotesCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return notesFlushMsg{seq: seq}
	})
}

func loadHabitsCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		record, err := store.LoadHabits()
		return habitsLoadedMsg{record: record, err: err}
	}
}

func toggleHabitCmd(store *storage.Storage, habitID, date string) tea.Cmd {
	return func() tea.Msg {
		nowDone, err := store.ToggleHabit(habitID, date)
		return habitToggledMsg{habitID: habitID, date: date, nowDone: nowDone, err: err}
	}
}

func undoCmd(manager *UndoManager) tea.Cmd {
	return func() tea.Msg {
		desc, err := manager.Undo()
		return undoAppliedMsg{description: desc, err: err}
	}
}

func redoCmd(manager *UndoManager) tea.Cmd {
	return func() tea.Msg {
		desc, err := manager.Redo()
		return redoAppliedMsg{description: desc, err: err}
	}
}

// notifyCmd sends a desktop notification. Errors are carried in the
// message but the app only logs them to the status bar on demand.
func notifyCmd(notifier notify.Notifier, title, body string) tea.Cmd {
	return func() tea.Msg {
		if notifier == nil || !notifier.IsSupported() {
			return notificationSentMsg{}
		}
		return notificationSentMsg{err: notifier.Send(title, body)}
	}
}
