package ui

import (
	"errors"
	"fmt"
	"testing"

	"studydash/internal/storage"
)

func TestUndoManager_EmptyStacks(t *testing.T) {
	m := NewUndoManager()

	if _, err := m.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("err = %v", err)
	}
	if _, err := m.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Fatalf("err = %v", err)
	}
	if m.CanUndo() || m.CanRedo() {
		t.Fatal("fresh manager should have empty stacks")
	}
}

func TestUndoManager_UndoRedoCycle(t *testing.T) {
	m := NewUndoManager()
	value := 0

	m.Push(UndoableAction{
		Description: "increment",
		Undo:        func() error { value--; return nil },
		Redo:        func() error { value++; return nil },
	})
	value++

	desc, err := m.Undo()
	if err != nil || desc != "increment" || value != 0 {
		t.Fatalf("undo: desc=%q err=%v value=%d", desc, err, value)
	}
	if !m.CanRedo() {
		t.Fatal("redo stack should hold the undone action")
	}

	desc, err = m.Redo()
	if err != nil || desc != "increment" || value != 1 {
		t.Fatalf("redo: desc=%q err=%v value=%d", desc, err, value)
	}
}

func TestUndoManager_PushClearsRedo(t *testing.T) {
	m := NewUndoManager()
	noop := UndoableAction{
		Description: "noop",
		Undo:        func() error { return nil },
		Redo:        func() error { return nil },
	}

	m.Push(noop)
	if _, err := m.Undo(); err != nil {
		t.Fatal(err)
	}
	m.Push(noop)

	if m.CanRedo() {
		t.Fatal("a new action must clear the redo stack")
	}
}

func TestUndoManager_DepthCap(t *testing.T) {
	m := NewUndoManager()
	for i := 0; i < maxUndoDepth+10; i++ {
		i := i
		m.Push(UndoableAction{
			Description: fmt.Sprintf("action %d", i),
			Undo:        func() error { return nil },
			Redo:        func() error { return nil },
		})
	}

	if got := len(m.undoStack); got != maxUndoDepth {
		t.Fatalf("stack depth = %d, want %d", got, maxUndoDepth)
	}
	// The newest action survives trimming.
	desc, err := m.Undo()
	if err != nil || desc != fmt.Sprintf("action %d", maxUndoDepth+9) {
		t.Fatalf("desc = %q err = %v", desc, err)
	}
}

func TestUndoManager_FailedUndoDropsAction(t *testing.T) {
	m := NewUndoManager()
	m.Push(UndoableAction{
		Description: "broken",
		Undo:        func() error { return errors.New("boom") },
		Redo:        func() error { return nil },
	})

	if _, err := m.Undo(); err == nil {
		t.Fatal("expected undo error")
	}
	if m.CanUndo() || m.CanRedo() {
		t.Fatal("failed action should not land on either stack")
	}
}

func TestDeleteTaskAction_RoundTrip(t *testing.T) {
	store := createTestStorage(t)
	task, err := store.AddTask("Recoverable", "2026-09-01")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.DeleteTask(task.ID); err != nil {
		t.Fatal(err)
	}

	action := NewDeleteTaskAction(store, *task)

	if err := action.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	tasks, _ := store.LoadTasks()
	if len(tasks) != 1 || tasks[0].ID != task.ID || tasks[0].Deadline != "2026-09-01" {
		t.Fatalf("restored = %+v", tasks)
	}

	if err := action.Redo(); err != nil {
		t.Fatalf("redo: %v", err)
	}
	tasks, _ = store.LoadTasks()
	if len(tasks) != 0 {
		t.Fatalf("redo left %+v", tasks)
	}
}

func TestDeleteEntryAction_RoundTrip(t *testing.T) {
	store := createTestStorage(t)
	entry, err := store.AddEntry(storage.Wednesday, "11:00", "Chemistry", "Dr Okafor")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteEntry(storage.Wednesday, entry.ID); err != nil {
		t.Fatal(err)
	}

	action := NewDeleteEntryAction(store, storage.Wednesday, *entry)

	if err := action.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	entries, _ := store.ListEntries(storage.Wednesday)
	if len(entries) != 1 || entries[0].Teacher != "Dr Okafor" {
		t.Fatalf("restored = %+v", entries)
	}

	if err := action.Redo(); err != nil {
		t.Fatalf("redo: %v", err)
	}
	entries, _ = store.ListEntries(storage.Wednesday)
	if len(entries) != 0 {
		t.Fatalf("redo left %+v", entries)
	}
}

func TestToggleHabitAction_UndoBypassesFutureLock(t *testing.T) {
	store := createTestStorage(t)
	// Pin the clock to a Thursday, then check off Wednesday.
	freezeNow(t, store, habitsPaneNow)
	habit := storage.Catalog()[0]
	if _, err := store.ToggleHabit(habit.ID, "2026-08-26"); err != nil {
		t.Fatal(err)
	}

	action := NewToggleHabitAction(store, habit.ID, "2026-08-26", true)

	// Move the clock back before the recorded day; a plain toggle would
	// now hit the future-day rule, but undo writes state directly.
	freezeNow(t, store, habitsPaneNow.AddDate(0, 0, -7))

	if err := action.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	rec, _ := store.LoadHabits()
	if storage.IsHabitDone(rec, habit.ID, "2026-08-26") {
		t.Fatal("undo should uncheck the day")
	}

	if err := action.Redo(); err != nil {
		t.Fatalf("redo: %v", err)
	}
	rec, _ = store.LoadHabits()
	if !storage.IsHabitDone(rec, habit.ID, "2026-08-26") {
		t.Fatal("redo should restore the check")
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("short", 30); got != "short" {
		t.Fatalf("got %q", got)
	}
	got := truncateText("a very long task description indeed", 10)
	if len([]rune(got)) > 10 {
		t.Fatalf("truncated text too wide: %q", got)
	}
}
