package ui

import (
	"studydash/internal/storage"
)

// Messages for async operations. Every message carries the result of a
// storage call so the update loop can react without blocking.

// schedulesLoadedMsg is sent when the weekly schedule has been loaded.
type schedulesLoadedMsg struct {
	schedules storage.Schedules
	err       error
}

// entryAddedMsg is sent when a class has been added.
type entryAddedMsg struct {
	day   storage.Weekday
	entry *storage.ScheduleEntry
	err   error
}

// entryDeletedMsg is sent when a class has been deleted.
type entryDeletedMsg struct {
	day   storage.Weekday
	entry *storage.ScheduleEntry
	err   error
}

// tasksLoadedMsg is sent when tasks have been loaded.
type tasksLoadedMsg struct {
	tasks []storage.Task
	err   error
}

// taskAddedMsg is sent when a task has been added.
type taskAddedMsg struct {
	task *storage.Task
	err  error
}

// taskToggledMsg is sent when a task's completion has been flipped.
type taskToggledMsg struct {
	id           string
	wasCompleted bool
	err          error
}

// taskDeletedMsg is sent when a task has been deleted.
type taskDeletedMsg struct {
	task *storage.Task
	err  error
}

// notesLoadedMsg is sent when the notes pad content has been loaded.
type notesLoadedMsg struct {
	notes string
	err   error
}

// notesSavedMsg is sent when the notes pad content has been written.
type notesSavedMsg struct {
	err error
}

// notesFlushMsg fires after the debounce interval. The sequence number
// identifies which edit scheduled it; stale flushes are dropped.
type notesFlushMsg struct {
	seq int
}

// habitsLoadedMsg is sent when the habit record has been loaded.
type habitsLoadedMsg struct {
	record storage.HabitRecord
	err    error
}

// habitToggledMsg is sent when a habit cell has been flipped.
type habitToggledMsg struct {
	habitID string
	date    string
	nowDone bool
	err     error
}

// undoAppliedMsg is sent when an undo has been applied.
type undoAppliedMsg struct {
	description string
	err         error
}

// redoAppliedMsg is sent when a redo has been applied.
type redoAppliedMsg struct {
	description string
	err         error
}

// notificationSentMsg is sent after a desktop notification attempt.
// Failures are ignored; notifications are best-effort.
type notificationSentMsg struct {
	err error
}
