package storage

import (
	"testing"
	"time"
)

// Thursday 2026-08-27, mid-afternoon.
var habitsNow = time.Date(2026, 8, 27, 15, 0, 0, 0, time.UTC)

func createHabitStorage(t *testing.T) *Storage {
	t.Helper()
	store := createTestStorage(t)
	freezeNow(t, store, habitsNow)
	return store
}

func TestCatalog_Fixed(t *testing.T) {
	catalog := Catalog()
	if len(catalog) != 6 {
		t.Fatalf("len(catalog) = %d, want 6", len(catalog))
	}

	// The returned slice is a copy.
	catalog[0].Name = "mutated"
	if Catalog()[0].Name == "mutated" {
		t.Error("Catalog() exposes internal state")
	}

	if _, ok := CatalogHabit("study"); !ok {
		t.Error(`CatalogHabit("study") not found`)
	}
	if _, ok := CatalogHabit("smoking"); ok {
		t.Error(`CatalogHabit("smoking") unexpectedly found`)
	}
}

func TestToggleHabit(t *testing.T) {
	store := createHabitStorage(t)

	done, err := store.ToggleHabit("study", "2026-08-27")
	if err != nil {
		t.Fatalf("ToggleHabit() error = %v", err)
	}
	if !done {
		t.Error("first toggle = false, want true")
	}

	rec, err := store.LoadHabits()
	if err != nil {
		t.Fatalf("LoadHabits() error = %v", err)
	}
	if !IsHabitDone(rec, "study", "2026-08-27") {
		t.Error("habit not recorded as done")
	}

	// Toggling twice restores the original state.
	done, err = store.ToggleHabit("study", "2026-08-27")
	if err != nil {
		t.Fatalf("ToggleHabit() error = %v", err)
	}
	if done {
		t.Error("second toggle = true, want false")
	}

	rec, _ = store.LoadHabits()
	if IsHabitDone(rec, "study", "2026-08-27") {
		t.Error("habit still recorded as done")
	}
}

func TestToggleHabit_PastDayAllowed(t *testing.T) {
	store := createHabitStorage(t)

	done, err := store.ToggleHabit("exercise", "2026-08-20")
	if err != nil {
		t.Fatalf("ToggleHabit() error = %v", err)
	}
	if !done {
		t.Error("toggle = false, want true")
	}
}

func TestToggleHabit_FutureDayRejected(t *testing.T) {
	store := createHabitStorage(t)

	_, err := store.ToggleHabit("exercise", "2026-08-28")
	if err == nil {
		t.Fatal("ToggleHabit() expected error for future day")
	}
	if !IsValidation(err) {
		t.Errorf("error = %v, want ValidationError", err)
	}

	rec, _ := store.LoadHabits()
	if IsHabitDone(rec, "exercise", "2026-08-28") {
		t.Error("future day was recorded")
	}
}

func TestToggleHabit_Validation(t *testing.T) {
	store := createHabitStorage(t)

	if _, err := store.ToggleHabit("smoking", "2026-08-27"); err == nil {
		t.Fatal("ToggleHabit() expected error for unknown habit")
	} else if !IsValidation(err) {
		t.Errorf("error = %v, want ValidationError", err)
	}

	if _, err := store.ToggleHabit("study", "yesterday"); err == nil {
		t.Fatal("ToggleHabit() expected error for malformed date")
	} else if !IsValidation(err) {
		t.Errorf("error = %v, want ValidationError", err)
	}
}

func TestSetHabitDone(t *testing.T) {
	store := createHabitStorage(t)

	if err := store.SetHabitDone("water", "2026-08-25", true); err != nil {
		t.Fatalf("SetHabitDone() error = %v", err)
	}
	rec, _ := store.LoadHabits()
	if !IsHabitDone(rec, "water", "2026-08-25") {
		t.Error("habit not set")
	}

	// Setting the same state twice stays stable.
	if err := store.SetHabitDone("water", "2026-08-25", true); err != nil {
		t.Fatalf("SetHabitDone() error = %v", err)
	}

	if err := store.SetHabitDone("water", "2026-08-25", false); err != nil {
		t.Fatalf("SetHabitDone() error = %v", err)
	}
	rec, _ = store.LoadHabits()
	if IsHabitDone(rec, "water", "2026-08-25") {
		t.Error("habit still set")
	}
}

func TestWeekDates(t *testing.T) {
	store := createHabitStorage(t)

	// 2026-08-27 is a Thursday; the week starts Sunday 2026-08-23.
	dates := store.WeekDates(0)
	if len(dates) != 7 {
		t.Fatalf("len(dates) = %d, want 7", len(dates))
	}
	if dates[0] != "2026-08-23" {
		t.Errorf("dates[0] = %q, want 2026-08-23", dates[0])
	}
	if dates[6] != "2026-08-29" {
		t.Errorf("dates[6] = %q, want 2026-08-29", dates[6])
	}

	prev := store.WeekDates(-1)
	if prev[0] != "2026-08-16" {
		t.Errorf("previous week start = %q, want 2026-08-16", prev[0])
	}

	next := store.WeekDates(1)
	if next[0] != "2026-08-30" {
		t.Errorf("next week start = %q, want 2026-08-30", next[0])
	}
}

func TestWeekLabel(t *testing.T) {
	store := createHabitStorage(t)

	tests := []struct {
		offset int
		want   string
	}{
		{0, "this week"},
		{-1, "last week"},
		{1, "next week"},
		{-2, "9/8 - 15/8"},
		{2, "6/9 - 12/9"},
	}

	for _, tt := range tests {
		if got := store.WeekLabel(tt.offset); got != tt.want {
			t.Errorf("WeekLabel(%d) = %q, want %q", tt.offset, got, tt.want)
		}
	}
}

func TestHabitStreak(t *testing.T) {
	store := createHabitStorage(t)

	// Three consecutive days ending today.
	for _, date := range []string{"2026-08-25", "2026-08-26", "2026-08-27"} {
		if _, err := store.ToggleHabit("reading", date); err != nil {
			t.Fatalf("ToggleHabit(%s) error = %v", date, err)
		}
	}

	rec, _ := store.LoadHabits()
	if got := store.HabitStreak(rec, "reading"); got != 3 {
		t.Errorf("HabitStreak() = %d, want 3", got)
	}

	// Not done today yet: yesterday's run still counts.
	if _, err := store.ToggleHabit("reading", "2026-08-27"); err != nil {
		t.Fatalf("ToggleHabit() error = %v", err)
	}
	rec, _ = store.LoadHabits()
	if got := store.HabitStreak(rec, "reading"); got != 2 {
		t.Errorf("HabitStreak() without today = %d, want 2", got)
	}

	if got := store.HabitStreak(rec, "journal"); got != 0 {
		t.Errorf("HabitStreak() for untouched habit = %d, want 0", got)
	}
}
