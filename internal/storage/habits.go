package storage

import (
	"fmt"
	"time"
)

// dateKey is the storage format for habit dates.
const dateKey = "2006-01-02"

// LoadHabits reads the habit completion record.
func (s *Storage) LoadHabits() (HabitRecord, error) {
	rec := HabitRecord{}
	if err := s.readJSON(keyHabits, &rec); err != nil {
		return HabitRecord{}, err
	}
	return rec, nil
}

// SaveHabits writes the habit completion record to disk.
func (s *Storage) SaveHabits(rec HabitRecord) error {
	return s.writeJSON(keyHabits, rec)
}

// IsHabitDone reports whether habitID was completed on date.
func IsHabitDone(rec HabitRecord, habitID, date string) bool {
	return rec[date][habitID]
}

// ToggleHabit flips a habit's completion for date and returns the new
// state. Dates after today (per the storage clock) are rejected.
func (s *Storage) ToggleHabit(habitID, date string) (bool, error) {
	if _, ok := CatalogHabit(habitID); !ok {
		return false, Validationf("unknown habit: %s", habitID)
	}

	day, err := time.ParseInLocation(dateKey, date, s.Now().Location())
	if err != nil {
		return false, Validationf("invalid date %q: use YYYY-MM-DD", date)
	}
	if day.After(startOfDay(s.Now())) {
		return false, Validationf("cannot check off a future day")
	}

	rec, err := s.LoadHabits()
	if err != nil {
		return false, err
	}

	done := !rec[date][habitID]
	if done {
		if rec[date] == nil {
			rec[date] = map[string]bool{}
		}
		rec[date][habitID] = true
	} else {
		delete(rec[date], habitID)
		if len(rec[date]) == 0 {
			delete(rec, date)
		}
	}

	if err := s.SaveHabits(rec); err != nil {
		return false, err
	}
	return done, nil
}

// SetHabitDone forces a habit's completion state for date, bypassing
// the future-day check (used for undo/redo).
func (s *Storage) SetHabitDone(habitID, date string, done bool) error {
	if _, ok := CatalogHabit(habitID); !ok {
		return Validationf("unknown habit: %s", habitID)
	}
	if _, err := time.Parse(dateKey, date); err != nil {
		return Validationf("invalid date %q: use YYYY-MM-DD", date)
	}

	rec, err := s.LoadHabits()
	if err != nil {
		return err
	}

	if done {
		if rec[date] == nil {
			rec[date] = map[string]bool{}
		}
		rec[date][habitID] = true
	} else {
		delete(rec[date], habitID)
		if len(rec[date]) == 0 {
			delete(rec, date)
		}
	}

	return s.SaveHabits(rec)
}

// WeekDates returns the seven dates (Sunday through Saturday) of the
// week offset weeks away from the current one. Offset 0 is the week
// containing today, -1 the previous week, +1 the next.
func (s *Storage) WeekDates(offset int) []string {
	start := startOfWeekSunday(s.Now()).AddDate(0, 0, offset*7)
	dates := make([]string, 7)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i).Format(dateKey)
	}
	return dates
}

// WeekLabel names the week at the given offset: "this week",
// "last week", "next week", or a "D/M - D/M" range for anything
// further out.
func (s *Storage) WeekLabel(offset int) string {
	switch offset {
	case 0:
		return "this week"
	case -1:
		return "last week"
	case 1:
		return "next week"
	}

	start := startOfWeekSunday(s.Now()).AddDate(0, 0, offset*7)
	end := start.AddDate(0, 0, 6)
	return fmt.Sprintf("%d/%d - %d/%d", start.Day(), int(start.Month()), end.Day(), int(end.Month()))
}

// HabitStreak counts consecutive completed days for habitID ending at
// today (per the storage clock). A habit not yet done today still
// counts yesterday's run.
func (s *Storage) HabitStreak(rec HabitRecord, habitID string) int {
	day := startOfDay(s.Now())
	if !IsHabitDone(rec, habitID, day.Format(dateKey)) {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for IsHabitDone(rec, habitID, day.Format(dateKey)) {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
