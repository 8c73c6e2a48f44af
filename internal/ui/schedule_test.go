package ui

import (
	"testing"
	"time"

	"studydash/internal/config"
	"studydash/internal/storage"

	tea "github.com/charmbracelet/bubbletea"
)

// runScheduleCmds feeds a schedule pane's command results back into it.
func runScheduleCmds(t *testing.T, pane *SchedulePane, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		_, cmd = pane.Update(msg)
	}
}

func createSchedulePane(t *testing.T, store *storage.Storage) *SchedulePane {
	t.Helper()
	setupTest(t)
	pane := NewSchedulePane(store, createTestStyles(), &config.KeysConfig{})
	pane.SetSize(50, 20)
	pane.SetFocused(true)
	runScheduleCmds(t, pane, pane.Init())
	return pane
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSchedulePane_DefaultsToToday(t *testing.T) {
	store := createTestStorage(t)
	// 2026-08-27 is a Thursday.
	freezeNow(t, store, time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC))

	pane := createSchedulePane(t, store)
	if pane.Day() != storage.Thursday {
		t.Fatalf("day = %s, want thursday", pane.Day())
	}
}

func TestSchedulePane_SundayFallsBackToMonday(t *testing.T) {
	store := createTestStorage(t)
	// 2026-08-30 is a Sunday.
	freezeNow(t, store, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))

	pane := createSchedulePane(t, store)
	if pane.Day() != storage.Monday {
		t.Fatalf("day = %s, want monday", pane.Day())
	}
}

func TestSchedulePane_DayCyclingWraps(t *testing.T) {
	store := createTestStorage(t)
	freezeNow(t, store, time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)) // Monday

	pane := createSchedulePane(t, store)

	pane.Update(keyRunes("h"))
	if pane.Day() != storage.Saturday {
		t.Fatalf("left from monday = %s, want saturday", pane.Day())
	}
	pane.Update(keyRunes("l"))
	if pane.Day() != storage.Monday {
		t.Fatalf("right from saturday = %s, want monday", pane.Day())
	}
}

func TestSchedulePane_AddFlow(t *testing.T) {
	store := createTestStorage(t)
	freezeNow(t, store, time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC))
	pane := createSchedulePane(t, store)

	_, cmd := pane.Update(keyRunes("a"))
	runScheduleCmds(t, pane, cmd)
	if !pane.IsAdding() {
		t.Fatal("expected add mode")
	}

	steps := []tea.KeyMsg{
		keyRunes("10:00"), {Type: tea.KeyEnter},
		keyRunes("Physics"), {Type: tea.KeyEnter},
		keyRunes("Mrs Oduya"), {Type: tea.KeyEnter},
	}
	for _, msg := range steps {
		_, cmd := pane.Update(msg)
		runScheduleCmds(t, pane, cmd)
	}

	entries, err := store.ListEntries(storage.Monday)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Subject != "Physics" || entries[0].Teacher != "Mrs Oduya" {
		t.Fatalf("entries = %+v", entries)
	}
	contains(t, pane.View(), "Physics")
	contains(t, pane.View(), "Mrs Oduya")
}

func TestSchedulePane_CancelAddDiscardsInput(t *testing.T) {
	store := createTestStorage(t)
	pane := createSchedulePane(t, store)

	pane.Update(keyRunes("a"))
	pane.Update(keyRunes("09:"))
	pane.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if pane.IsAdding() {
		t.Fatal("esc should leave add mode")
	}
	if got := pane.timeInput.Value(); got != "" {
		t.Fatalf("time input not reset: %q", got)
	}
}

func TestSchedulePane_EntriesSortedByTime(t *testing.T) {
	store := createTestStorage(t)
	freezeNow(t, store, time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC))
	for _, e := range []struct{ tm, subject string }{
		{"13:00", "History"},
		{"08:00", "Math"},
		{"10:30", "Art"},
	} {
		if _, err := store.AddEntry(storage.Monday, e.tm, e.subject, ""); err != nil {
			t.Fatal(err)
		}
	}

	pane := createSchedulePane(t, store)
	entries := pane.dayEntries()
	want := []string{"Math", "Art", "History"}
	for i, subject := range want {
		if entries[i].Subject != subject {
			t.Fatalf("entries[%d] = %s, want %s", i, entries[i].Subject, subject)
		}
	}
}

func TestSchedulePane_SelectedEntryFollowsSortedOrder(t *testing.T) {
	store := createTestStorage(t)
	freezeNow(t, store, time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC))
	if _, err := store.AddEntry(storage.Monday, "13:00", "History", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddEntry(storage.Monday, "08:00", "Math", ""); err != nil {
		t.Fatal(err)
	}

	pane := createSchedulePane(t, store)

	index, entry, ok := pane.SelectedEntry()
	if !ok || index != 0 || entry.Subject != "Math" {
		t.Fatalf("selected = %d %+v %v, want earliest class", index, entry, ok)
	}

	pane.Update(keyRunes("j"))
	_, entry, _ = pane.SelectedEntry()
	if entry.Subject != "History" {
		t.Fatalf("after down: selected %s, want History", entry.Subject)
	}
}

func TestSchedulePane_EmptyDayHint(t *testing.T) {
	pane := createSchedulePane(t, createTestStorage(t))
	contains(t, pane.View(), "No classes")

	if _, _, ok := pane.SelectedEntry(); ok {
		t.Fatal("empty day should have no selection")
	}
}
