package ui

import (
	"strings"
	"testing"
	"time"

	"studydash/internal/config"
	"studydash/internal/storage"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// setupTest prepares the test environment for deterministic rendering.
// It disables colors to ensure consistent output across environments.
func setupTest(t *testing.T) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
}

// createTestStorage creates a Storage instance with a temporary directory.
func createTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}
	return store
}

// freezeNow pins the storage clock for deterministic dates.
func freezeNow(t *testing.T, store *storage.Storage, at time.Time) {
	t.Helper()
	store.SetNowFunc(func() time.Time { return at })
}

// createTestStyles creates a default Styles instance for testing.
func createTestStyles() *Styles {
	return NewStylesFromTheme(&config.ThemeConfig{})
}

// createTestApp builds an App sized for the wide layout.
func createTestApp(t *testing.T, store *storage.Storage) *App {
	t.Helper()
	setupTest(t)

	app, err := NewApp(store, createTestStyles(), AppConfig{
		ConfirmDeletions:      true,
		NarrowLayoutThreshold: 80,
	}, &config.KeysConfig{}, nil)
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app
}

// runCmds executes commands synchronously, feeding every message they
// produce back into the app until none remain. This stands in for the
// Bubble Tea runtime in tests. Tick commands are not followed, so the
// loop terminates.
func runCmds(t *testing.T, app *App, cmds ...tea.Cmd) {
	t.Helper()
	for len(cmds) > 0 {
		cmd := cmds[0]
		cmds = cmds[1:]
		if cmd == nil {
			continue
		}

		msg := cmd()
		if msg == nil {
			continue
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			cmds = append(cmds, batch...)
			continue
		}
		if _, ok := msg.(tickMsg); ok {
			continue
		}
		_, next := app.Update(msg)
		cmds = append(cmds, next)
	}
}

// pressKey sends a key to the app and runs any resulting commands.
func pressKey(t *testing.T, app *App, keys string) {
	t.Helper()
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	runCmds(t, app, cmd)
}

// pressSpecial sends a non-rune key like enter or esc.
func pressSpecial(t *testing.T, app *App, keyType tea.KeyType) {
	t.Helper()
	_, cmd := app.Update(tea.KeyMsg{Type: keyType})
	runCmds(t, app, cmd)
}

// contains fails the test when the rendered view lacks a substring.
func contains(t *testing.T, view, want string) {
	t.Helper()
	if !strings.Contains(view, want) {
		t.Errorf("view missing %q\n\nview:\n%s", want, view)
	}
}

// notContains fails the test when the rendered view has a substring.
func notContains(t *testing.T, view, want string) {
	t.Helper()
	if strings.Contains(view, want) {
		t.Errorf("view unexpectedly has %q\n\nview:\n%s", want, view)
	}
}
