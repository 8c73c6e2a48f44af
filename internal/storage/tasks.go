package storage

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// LoadTasks reads all tasks in insertion order.
func (s *Storage) LoadTasks() ([]Task, error) {
	tasks := []Task{}
	if err := s.readJSON(keyTasks, &tasks); err != nil {
		return []Task{}, err
	}
	return tasks, nil
}

// SaveTasks writes tasks to disk.
func (s *Storage) SaveTasks(tasks []Task) error {
	return s.writeJSON(keyTasks, tasks)
}

// AddTask creates a task. Deadline is optional; when given it must be
// YYYY-MM-DD.
func (s *Storage) AddTask(text, deadline string) (*Task, error) {
	text = strings.TrimSpace(text)
	deadline = strings.TrimSpace(deadline)

	if text == "" {
		return nil, Validationf("task text is required")
	}
	if len(text) > maxTaskTextLen {
		return nil, Validationf("task text too long (max %d)", maxTaskTextLen)
	}
	if deadline != "" {
		if _, err := time.Parse("2006-01-02", deadline); err != nil {
			return nil, Validationf("invalid deadline %q: use YYYY-MM-DD", deadline)
		}
	}

	tasks, err := s.LoadTasks()
	if err != nil {
		return nil, err
	}

	id, err := newID("t")
	if err != nil {
		return nil, err
	}

	task := Task{
		ID:        id,
		Text:      text,
		Deadline:  deadline,
		Completed: false,
		CreatedAt: s.Now(),
	}

	tasks = append(tasks, task)

	if err := s.SaveTasks(tasks); err != nil {
		return nil, err
	}
	return &task, nil
}

// ToggleTask flips a task's completed flag. A missing ID is a no-op.
func (s *Storage) ToggleTask(id string) error {
	tasks, err := s.LoadTasks()
	if err != nil {
		return err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Completed = !tasks[i].Completed
			return s.SaveTasks(tasks)
		}
	}
	return nil
}

// DeleteTask removes a task and returns it for undo. A missing ID is a
// no-op and returns nil.
func (s *Storage) DeleteTask(id string) (*Task, error) {
	tasks, err := s.LoadTasks()
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			task := tasks[i]
			tasks = append(tasks[:i], tasks[i+1:]...)
			if err := s.SaveTasks(tasks); err != nil {
				return nil, err
			}
			return &task, nil
		}
	}
	return nil, nil
}

// RestoreTask re-adds a previously deleted task, preserving its ID and
// timestamps (used for undo/redo).
func (s *Storage) RestoreTask(task Task) error {
	task.Text = strings.TrimSpace(task.Text)

	if strings.TrimSpace(task.ID) == "" {
		return fmt.Errorf("task id is required")
	}
	if task.Text == "" {
		return Validationf("task text is required")
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = s.Now()
	}

	tasks, err := s.LoadTasks()
	if err != nil {
		return err
	}

	for _, existing := range tasks {
		if existing.ID == task.ID {
			return fmt.Errorf("task already exists: %s", task.ID)
		}
	}

	tasks = append(tasks, task)
	return s.SaveTasks(tasks)
}

// ListTasks returns a copy of all tasks sorted by deadline, earliest
// first, with undated tasks at the end. Ties keep insertion order.
func (s *Storage) ListTasks() ([]Task, error) {
	tasks, err := s.LoadTasks()
	if err != nil {
		return nil, err
	}

	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)

	// ISO dates compare correctly as plain strings.
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].Deadline, sorted[j].Deadline
		if (di == "") != (dj == "") {
			return di != ""
		}
		return di < dj
	})

	return sorted, nil
}

// FormatDeadline renders a deadline relative to today: "overdue",
// "today", "tomorrow", or "N days remaining". Empty or unparseable deadlines
// render as an empty string.
func FormatDeadline(deadline string, today time.Time) string {
	if deadline == "" {
		return ""
	}
	due, err := time.Parse("2006-01-02", deadline)
	if err != nil {
		return ""
	}

	// Compare UTC midnights so the difference is whole calendar days even
	// when a DST transition shortens or stretches a local day.
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	days := int(due.Sub(day).Hours() / 24)
	switch {
	case days < 0:
		return "overdue"
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("%d days remaining", days)
	}
}
