package ui

import (
	"errors"
	"fmt"
	"sync"

	"studydash/internal/storage"

	"github.com/mattn/go-runewidth"
)

// maxUndoDepth caps the undo and redo stacks.
const maxUndoDepth = 50

// ErrNothingToUndo is returned when the undo stack is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// ErrNothingToRedo is returned when the redo stack is empty.
var ErrNothingToRedo = errors.New("nothing to redo")

// UndoableAction is a reversible mutation. Undo restores the prior
// state; Redo reapplies the mutation after an undo.
type UndoableAction struct {
	Description string
	Undo        func() error
	Redo        func() error
}

// UndoManager keeps bounded undo/redo stacks. A new action clears the
// redo stack.
type UndoManager struct {
	mu        sync.Mutex
	undoStack []UndoableAction
	redoStack []UndoableAction
}

// NewUndoManager creates an empty undo manager.
func NewUndoManager() *UndoManager {
	return &UndoManager{}
}

// Push records an action that has already been applied.
func (m *UndoManager) Push(action UndoableAction) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.undoStack = append(m.undoStack, action)
	if len(m.undoStack) > maxUndoDepth {
		m.undoStack = m.undoStack[1:]
	}
	m.redoStack = nil
}

// Undo reverses the most recent action and returns its description.
func (m *UndoManager) Undo() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.undoStack) == 0 {
		return "", ErrNothingToUndo
	}

	action := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]

	if err := action.Undo(); err != nil {
		return "", fmt.Errorf("undo %s: %w", action.Description, err)
	}

	m.redoStack = append(m.redoStack, action)
	if len(m.redoStack) > maxUndoDepth {
		m.redoStack = m.redoStack[1:]
	}
	return action.Description, nil
}

// Redo reapplies the most recently undone action.
func (m *UndoManager) Redo() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.redoStack) == 0 {
		return "", ErrNothingToRedo
	}

	action := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]

	if err := action.Redo(); err != nil {
		return "", fmt.Errorf("redo %s: %w", action.Description, err)
	}

	m.undoStack = append(m.undoStack, action)
	if len(m.undoStack) > maxUndoDepth {
		m.undoStack = m.undoStack[1:]
	}
	return action.Description, nil
}

// CanUndo reports whether the undo stack is non-empty.
func (m *UndoManager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undoStack) > 0
}

// CanRedo reports whether the redo stack is non-empty.
func (m *UndoManager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redoStack) > 0
}

// Clear drops both stacks.
func (m *UndoManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undoStack = nil
	m.redoStack = nil
}

// =============================================================================
// Action factories
// =============================================================================

// NewAddTaskAction makes an undoable action for a task that was just
// added.
func NewAddTaskAction(store *storage.Storage, task storage.Task) UndoableAction {
	return UndoableAction{
		Description: fmt.Sprintf("add task %q", truncateText(task.Text, 30)),
		Undo: func() error {
			_, err := store.DeleteTask(task.ID)
			return err
		},
		Redo: func() error {
			return store.RestoreTask(task)
		},
	}
}

// NewDeleteTaskAction makes an undoable action for a task that was
// just deleted.
func NewDeleteTaskAction(store *storage.Storage, task storage.Task) UndoableAction {
	return UndoableAction{
		Description: fmt.Sprintf("delete task %q", truncateText(task.Text, 30)),
		Undo: func() error {
			return store.RestoreTask(task)
		},
		Redo: func() error {
			_, err := store.DeleteTask(task.ID)
			return err
		},
	}
}

// NewToggleTaskAction makes an undoable action for a completion flip.
// Toggling is its own inverse so undo and redo both flip.
func NewToggleTaskAction(store *storage.Storage, id string, wasCompleted bool) UndoableAction {
	desc := "complete task"
	if wasCompleted {
		desc = "reopen task"
	}
	return UndoableAction{
		Description: desc,
		Undo: func() error {
			return store.ToggleTask(id)
		},
		Redo: func() error {
			return store.ToggleTask(id)
		},
	}
}

// NewAddEntryAction makes an undoable action for a class that was just
// added to the schedule.
func NewAddEntryAction(store *storage.Storage, day storage.Weekday, entry storage.ScheduleEntry) UndoableAction {
	return UndoableAction{
		Description: fmt.Sprintf("add class %q", truncateText(entry.Subject, 30)),
		Undo: func() error {
			return store.DeleteEntry(day, entry.ID)
		},
		Redo: func() error {
			return store.RestoreEntry(day, entry)
		},
	}
}

// NewDeleteEntryAction makes an undoable action for a class that was
// just removed from the schedule.
func NewDeleteEntryAction(store *storage.Storage, day storage.Weekday, entry storage.ScheduleEntry) UndoableAction {
	return UndoableAction{
		Description: fmt.Sprintf("delete class %q", truncateText(entry.Subject, 30)),
		Undo: func() error {
			return store.RestoreEntry(day, entry)
		},
		Redo: func() error {
			return store.DeleteEntry(day, entry.ID)
		},
	}
}

// NewToggleHabitAction makes an undoable action for a habit cell flip.
// It writes the target state directly so undoing a past-week toggle is
// never blocked by the future-day rule.
func NewToggleHabitAction(store *storage.Storage, habitID, date string, nowDone bool) UndoableAction {
	name := habitID
	if habit, ok := storage.CatalogHabit(habitID); ok {
		name = habit.Name
	}
	desc := fmt.Sprintf("check off %s", name)
	if !nowDone {
		desc = fmt.Sprintf("uncheck %s", name)
	}
	return UndoableAction{
		Description: desc,
		Undo: func() error {
			return store.SetHabitDone(habitID, date, !nowDone)
		},
		Redo: func() error {
			return store.SetHabitDone(habitID, date, nowDone)
		},
	}
}

// truncateText shortens text to a display width, appending an ellipsis.
func truncateText(text string, maxWidth int) string {
	if runewidth.StringWidth(text) <= maxWidth {
		return text
	}
	return runewidth.Truncate(text, maxWidth, "…")
}
