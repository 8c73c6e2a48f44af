package storage

import (
	"strings"
	"testing"
	"time"
)

func TestAddTask(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		deadline string
	}{
		{"simple task", "Buy notebook", ""},
		{"task with deadline", "Physics homework", "2026-09-01"},
		{"task with special characters", "Fix bug: 'undefined' in report", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := createTestStorage(t)

			task, err := store.AddTask(tt.text, tt.deadline)
			if err != nil {
				t.Fatalf("AddTask() error = %v", err)
			}

			if task.Text != tt.text {
				t.Errorf("task.Text = %q, want %q", task.Text, tt.text)
			}
			if task.Deadline != tt.deadline {
				t.Errorf("task.Deadline = %q, want %q", task.Deadline, tt.deadline)
			}
			if task.Completed {
				t.Error("task.Completed = true, want false")
			}
			if task.ID == "" {
				t.Error("task.ID is empty")
			}
			if task.CreatedAt.IsZero() {
				t.Error("task.CreatedAt is zero")
			}

			loaded, err := store.LoadTasks()
			if err != nil {
				t.Fatalf("LoadTasks() error = %v", err)
			}
			if len(loaded) != 1 {
				t.Fatalf("len(tasks) = %d, want 1", len(loaded))
			}
			if loaded[0].ID != task.ID {
				t.Errorf("persisted task ID = %q, want %q", loaded[0].ID, task.ID)
			}
		})
	}
}

func TestAddTask_Validation(t *testing.T) {
	store := createTestStorage(t)

	if _, err := store.AddTask("   ", ""); err == nil {
		t.Fatal("AddTask() expected error for empty text")
	} else if !IsValidation(err) {
		t.Errorf("error = %v, want ValidationError", err)
	}

	if _, err := store.AddTask("Essay", "next friday"); err == nil {
		t.Fatal("AddTask() expected error for malformed deadline")
	} else if !IsValidation(err) {
		t.Errorf("error = %v, want ValidationError", err)
	}

	long := strings.Repeat("a", maxTaskTextLen+1)
	if _, err := store.AddTask(long, ""); err == nil {
		t.Fatal("AddTask() expected error for overly long text")
	}
}

func TestToggleTask(t *testing.T) {
	store := createTestStorage(t)

	task, err := store.AddTask("Read chapter 5", "")
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	if err := store.ToggleTask(task.ID); err != nil {
		t.Fatalf("ToggleTask() error = %v", err)
	}
	loaded, _ := store.LoadTasks()
	if !loaded[0].Completed {
		t.Error("task not completed after first toggle")
	}

	// Toggling twice restores the original state.
	if err := store.ToggleTask(task.ID); err != nil {
		t.Fatalf("ToggleTask() error = %v", err)
	}
	loaded, _ = store.LoadTasks()
	if loaded[0].Completed {
		t.Error("task still completed after second toggle")
	}
}

func TestToggleTask_MissingIDIsNoOp(t *testing.T) {
	store := createTestStorage(t)

	if _, err := store.AddTask("Keep me", ""); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	if err := store.ToggleTask("t_0_deadbeef"); err != nil {
		t.Fatalf("ToggleTask() error = %v, want silent no-op", err)
	}

	loaded, _ := store.LoadTasks()
	if loaded[0].Completed {
		t.Error("unrelated task was toggled")
	}
}

func TestDeleteTask(t *testing.T) {
	store := createTestStorage(t)

	task, err := store.AddTask("Temporary", "")
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	deleted, err := store.DeleteTask(task.ID)
	if err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	if deleted == nil || deleted.ID != task.ID {
		t.Errorf("DeleteTask() returned %v, want task %s", deleted, task.ID)
	}

	loaded, _ := store.LoadTasks()
	if len(loaded) != 0 {
		t.Errorf("len(tasks) = %d, want 0", len(loaded))
	}
}

func TestDeleteTask_MissingIDIsNoOp(t *testing.T) {
	store := createTestStorage(t)

	deleted, err := store.DeleteTask("t_0_deadbeef")
	if err != nil {
		t.Fatalf("DeleteTask() error = %v, want silent no-op", err)
	}
	if deleted != nil {
		t.Errorf("DeleteTask() = %v, want nil", deleted)
	}
}

func TestRestoreTask(t *testing.T) {
	store := createTestStorage(t)

	task, err := store.AddTask("Undo me", "2026-09-10")
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if _, err := store.DeleteTask(task.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}

	if err := store.RestoreTask(*task); err != nil {
		t.Fatalf("RestoreTask() error = %v", err)
	}

	loaded, _ := store.LoadTasks()
	if len(loaded) != 1 || loaded[0].ID != task.ID {
		t.Errorf("restored tasks = %v, want original ID %s", loaded, task.ID)
	}

	if err := store.RestoreTask(*task); err == nil {
		t.Error("RestoreTask() expected error for duplicate ID")
	}
}

func TestListTasks_DeadlineOrder(t *testing.T) {
	store := createTestStorage(t)

	for _, c := range []struct{ text, deadline string }{
		{"No deadline A", ""},
		{"Due late", "2026-12-01"},
		{"Due soon", "2026-09-01"},
		{"No deadline B", ""},
		{"Also due soon", "2026-09-01"},
	} {
		if _, err := store.AddTask(c.text, c.deadline); err != nil {
			t.Fatalf("AddTask(%s) error = %v", c.text, err)
		}
	}

	sorted, err := store.ListTasks()
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}

	want := []string{"Due soon", "Also due soon", "Due late", "No deadline A", "No deadline B"}
	if len(sorted) != len(want) {
		t.Fatalf("len(sorted) = %d, want %d", len(sorted), len(want))
	}
	for i, text := range want {
		if sorted[i].Text != text {
			t.Errorf("sorted[%d].Text = %q, want %q", i, sorted[i].Text, text)
		}
	}

	// Stored order stays insertion order.
	raw, err := store.LoadTasks()
	if err != nil {
		t.Fatalf("LoadTasks() error = %v", err)
	}
	if raw[0].Text != "No deadline A" {
		t.Errorf("stored order changed: first = %q", raw[0].Text)
	}
}

func TestFormatDeadline(t *testing.T) {
	today := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		deadline string
		want     string
	}{
		{"", ""},
		{"garbage", ""},
		{"2026-08-27", "overdue"},
		{"2026-08-01", "overdue"},
		{"2026-08-28", "today"},
		{"2026-08-29", "tomorrow"},
		{"2026-08-30", "2 days remaining"},
		{"2026-09-07", "10 days remaining"},
	}

	for _, tt := range tests {
		if got := FormatDeadline(tt.deadline, today); got != tt.want {
			t.Errorf("FormatDeadline(%q) = %q, want %q", tt.deadline, got, tt.want)
		}
	}
}

func TestFormatDeadline_AcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 2026-03-08 is the US spring-forward date; the local day is only 23
	// hours long, which must not shave a calendar day off the count.
	today := time.Date(2026, 3, 8, 12, 0, 0, 0, loc)

	tests := []struct {
		deadline string
		want     string
	}{
		{"2026-03-07", "overdue"},
		{"2026-03-08", "today"},
		{"2026-03-09", "tomorrow"},
		{"2026-03-10", "2 days remaining"},
		{"2026-03-15", "7 days remaining"},
	}

	for _, tt := range tests {
		if got := FormatDeadline(tt.deadline, today); got != tt.want {
			t.Errorf("FormatDeadline(%q) = %q, want %q", tt.deadline, got, tt.want)
		}
	}
}
