package storage

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// LoadSchedules reads the weekly schedule. A missing or reset store
// yields an empty bucket for every school day.
func (s *Storage) LoadSchedules() (Schedules, error) {
	schedules := defaultSchedules()
	if err := s.readJSON(keySchedules, &schedules); err != nil {
		return defaultSchedules(), err
	}
	// Older data may lack buckets for some days.
	for _, day := range Weekdays() {
		if schedules[day] == nil {
			schedules[day] = []ScheduleEntry{}
		}
	}
	return schedules, nil
}

// SaveSchedules writes the weekly schedule to disk.
func (s *Storage) SaveSchedules(schedules Schedules) error {
	return s.writeJSON(keySchedules, schedules)
}

func defaultSchedules() Schedules {
	schedules := make(Schedules, len(Weekdays()))
	for _, day := range Weekdays() {
		schedules[day] = []ScheduleEntry{}
	}
	return schedules
}

// AddEntry appends a class to day's schedule. Time must be 24-hour
// HH:MM; subject is required, teacher optional.
func (s *Storage) AddEntry(day Weekday, timeStr, subject, teacher string) (*ScheduleEntry, error) {
	timeStr = strings.TrimSpace(timeStr)
	subject = strings.TrimSpace(subject)
	teacher = strings.TrimSpace(teacher)

	if !day.Valid() {
		return nil, Validationf("invalid day: %s", day)
	}
	if subject == "" {
		return nil, Validationf("subject is required")
	}
	if len(subject) > maxSubjectLen {
		return nil, Validationf("subject too long (max %d)", maxSubjectLen)
	}
	if len(teacher) > maxTeacherLen {
		return nil, Validationf("teacher too long (max %d)", maxTeacherLen)
	}
	if _, err := time.Parse("15:04", timeStr); err != nil {
		return nil, Validationf("invalid time %q: use 24-hour HH:MM", timeStr)
	}

	schedules, err := s.LoadSchedules()
	if err != nil {
		return nil, err
	}

	id, err := newID("c")
	if err != nil {
		return nil, err
	}

	entry := ScheduleEntry{
		ID:      id,
		Time:    timeStr,
		Subject: subject,
		Teacher: teacher,
	}

	schedules[day] = append(schedules[day], entry)

	if err := s.SaveSchedules(schedules); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListEntries returns day's classes sorted by start time. The result is
// a copy; mutating it does not touch stored data. Entries with equal
// times keep their insertion order.
func (s *Storage) ListEntries(day Weekday) ([]ScheduleEntry, error) {
	if !day.Valid() {
		return nil, Validationf("invalid day: %s", day)
	}

	schedules, err := s.LoadSchedules()
	if err != nil {
		return nil, err
	}

	entries := make([]ScheduleEntry, len(schedules[day]))
	copy(entries, schedules[day])

	// HH:MM sorts correctly as a plain string.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})

	return entries, nil
}

// DeleteEntryAt removes the class shown at index in day's time-sorted
// view and returns it for undo. An out-of-range index is a validation
// error.
func (s *Storage) DeleteEntryAt(day Weekday, index int) (*ScheduleEntry, error) {
	entries, err := s.ListEntries(day)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(entries) {
		return nil, Validationf("no class at position %d", index+1)
	}

	entry := entries[index]
	if err := s.DeleteEntry(day, entry.ID); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteEntry removes the class with the given ID from day's schedule.
// A missing ID is a no-op.
func (s *Storage) DeleteEntry(day Weekday, id string) error {
	if !day.Valid() {
		return Validationf("invalid day: %s", day)
	}

	schedules, err := s.LoadSchedules()
	if err != nil {
		return err
	}

	for i := range schedules[day] {
		if schedules[day][i].ID == id {
			schedules[day] = append(schedules[day][:i], schedules[day][i+1:]...)
			return s.SaveSchedules(schedules)
		}
	}
	return nil
}

// RestoreEntry re-adds a previously deleted class, preserving its ID
// (used for undo/redo).
func (s *Storage) RestoreEntry(day Weekday, entry ScheduleEntry) error {
	if !day.Valid() {
		return Validationf("invalid day: %s", day)
	}
	if strings.TrimSpace(entry.ID) == "" {
		return fmt.Errorf("entry id is required")
	}

	schedules, err := s.LoadSchedules()
	if err != nil {
		return err
	}

	for _, existing := range schedules[day] {
		if existing.ID == entry.ID {
			return fmt.Errorf("entry already exists: %s", entry.ID)
		}
	}

	schedules[day] = append(schedules[day], entry)
	return s.SaveSchedules(schedules)
}

// DefaultDay maps a wall-clock time to the schedule day shown on
// startup. Sunday has no bucket, so the dashboard opens on Monday with
// ok=false to flag the fallback.
func DefaultDay(now time.Time) (Weekday, bool) {
	switch now.Weekday() {
	case time.Monday:
		return Monday, true
	case time.Tuesday:
		return Tuesday, true
	case time.Wednesday:
		return Wednesday, true
	case time.Thursday:
		return Thursday, true
	case time.Friday:
		return Friday, true
	case time.Saturday:
		return Saturday, true
	}
	return Monday, false
}
