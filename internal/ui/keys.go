// Package ui provides terminal user interface components for the
// studydash app. This file defines key bindings using the Bubble Tea
// key package for type-safe key matching, help text generation, and
// user customization.
package ui

import (
	"strings"

	"studydash/internal/config"

	"github.com/charmbracelet/bubbles/key"
)

// parseKeys splits a comma-separated string into individual keys.
// If the input is empty, returns the default keys.
func parseKeys(customKeys string, defaultKeys ...string) []string {
	if customKeys == "" {
		return defaultKeys
	}
	keys := strings.Split(customKeys, ",")
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		trimmed := strings.TrimSpace(k)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// =============================================================================
// Global Keys (available in all contexts)
// =============================================================================

// GlobalKeyMap defines keys available throughout the application.
type GlobalKeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	NextPane key.Binding
	Pane1    key.Binding
	Pane2    key.Binding
	Pane3    key.Binding
	Pane4    key.Binding
	Pane5    key.Binding
	Undo     key.Binding
	Redo     key.Binding
}

// DefaultGlobalKeyMap returns the default global key bindings.
func DefaultGlobalKeyMap() GlobalKeyMap {
	return NewGlobalKeyMap(&config.KeysConfig{})
}

// NewGlobalKeyMap creates global key bindings from config.
func NewGlobalKeyMap(cfg *config.KeysConfig) GlobalKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Quit, "q", "ctrl+c")...),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Help, "?")...),
			key.WithHelp("?", "help"),
		),
		NextPane: key.NewBinding(
			key.WithKeys(parseKeys(cfg.NextPane, "tab")...),
			key.WithHelp("tab", "next pane"),
		),
		Pane1: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Pane1, "1")...),
			key.WithHelp("1", "schedule"),
		),
		Pane2: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Pane2, "2")...),
			key.WithHelp("2", "tasks"),
		),
		Pane3: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Pane3, "3")...),
			key.WithHelp("3", "notes"),
		),
		Pane4: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Pane4, "4")...),
			key.WithHelp("4", "habits"),
		),
		Pane5: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Pane5, "5")...),
			key.WithHelp("5", "focus"),
		),
		Undo: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Undo, "ctrl+z", "u")...),
			key.WithHelp("ctrl+z", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Redo, "ctrl+y")...),
			key.WithHelp("ctrl+y", "redo"),
		),
	}
}

// =============================================================================
// Navigation Keys (shared by list-based panes)
// =============================================================================

// NavigationKeyMap defines keys for list navigation.
type NavigationKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Top    key.Binding
	Bottom key.Binding
}

// DefaultNavigationKeyMap returns the default navigation key bindings.
func DefaultNavigationKeyMap() NavigationKeyMap {
	return NewNavigationKeyMap(&config.KeysConfig{})
}

// NewNavigationKeyMap creates navigation key bindings from config.
func NewNavigationKeyMap(cfg *config.KeysConfig) NavigationKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return NavigationKeyMap{
		Up: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Up, "k", "up")...),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Down, "j", "down")...),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Left, "h", "left")...),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Right, "l", "right")...),
			key.WithHelp("l/→", "right"),
		),
		Top: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Top, "g")...),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Bottom, "G")...),
			key.WithHelp("G", "bottom"),
		),
	}
}

// =============================================================================
// Input Keys (shared by text input fields)
// =============================================================================

// InputKeyMap defines keys for text input mode.
type InputKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultInputKeyMap returns the default input key bindings.
func DefaultInputKeyMap() InputKeyMap {
	return NewInputKeyMap(&config.KeysConfig{})
}

// NewInputKeyMap creates input key bindings from config.
func NewInputKeyMap(cfg *config.KeysConfig) InputKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return InputKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Confirm, "enter")...),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Cancel, "esc")...),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// =============================================================================
// Schedule Pane Keys
// =============================================================================

// ScheduleKeyMap defines keys for the schedule pane.
type ScheduleKeyMap struct {
	Add    key.Binding
	Delete key.Binding
	NavigationKeyMap
}

// DefaultScheduleKeyMap returns the default schedule pane key bindings.
func DefaultScheduleKeyMap() ScheduleKeyMap {
	return NewScheduleKeyMap(&config.KeysConfig{})
}

// NewScheduleKeyMap creates schedule key bindings from config.
func NewScheduleKeyMap(cfg *config.KeysConfig) ScheduleKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return ScheduleKeyMap{
		Add: key.NewBinding(
			key.WithKeys(parseKeys(cfg.AddEntry, "a")...),
			key.WithHelp("a", "add class"),
		),
		Delete: key.NewBinding(
			key.WithKeys(parseKeys(cfg.DeleteEntry, "x")...),
			key.WithHelp("x", "delete"),
		),
		NavigationKeyMap: NewNavigationKeyMap(cfg),
	}
}

// ShortHelp returns the short help for the schedule pane (implements help.KeyMap).
func (k ScheduleKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Delete, k.Left, k.Down}
}

// FullHelp returns the full help for the schedule pane (implements help.KeyMap).
func (k ScheduleKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Delete},
		{k.Left, k.Right, k.Up, k.Down},
	}
}

// =============================================================================
// Task Pane Keys
// =============================================================================

// TaskKeyMap defines keys for the task pane.
type TaskKeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	NavigationKeyMap
}

// DefaultTaskKeyMap returns the default task pane key bindings.
func DefaultTaskKeyMap() TaskKeyMap {
	return NewTaskKeyMap(&config.KeysConfig{})
}

// NewTaskKeyMap creates task key bindings from config.
func NewTaskKeyMap(cfg *config.KeysConfig) TaskKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return TaskKeyMap{
		Add: key.NewBinding(
			key.WithKeys(parseKeys(cfg.AddTask, "a")...),
			key.WithHelp("a", "add task"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(parseKeys(cfg.ToggleTask, "d", "enter", " ")...),
			key.WithHelp("d/space", "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys(parseKeys(cfg.DeleteTask, "x")...),
			key.WithHelp("x", "delete"),
		),
		NavigationKeyMap: NewNavigationKeyMap(cfg),
	}
}

// ShortHelp returns the short help for the task pane (implements help.KeyMap).
func (k TaskKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Down}
}

// FullHelp returns the full help for the task pane (implements help.KeyMap).
func (k TaskKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Toggle, k.Delete},
		{k.Up, k.Down, k.Top, k.Bottom},
	}
}

// =============================================================================
// Notes Pane Keys
// =============================================================================

// NotesKeyMap defines keys for the notes pane.
type NotesKeyMap struct {
	Edit key.Binding
}

// DefaultNotesKeyMap returns the default notes pane key bindings.
func DefaultNotesKeyMap() NotesKeyMap {
	return NewNotesKeyMap(&config.KeysConfig{})
}

// NewNotesKeyMap creates notes key bindings from config.
func NewNotesKeyMap(cfg *config.KeysConfig) NotesKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return NotesKeyMap{
		Edit: key.NewBinding(
			key.WithKeys(parseKeys(cfg.EditNotes, "i", "enter")...),
			key.WithHelp("i", "edit"),
		),
	}
}

// ShortHelp returns the short help for the notes pane (implements help.KeyMap).
func (k NotesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit}
}

// FullHelp returns the full help for the notes pane (implements help.KeyMap).
func (k NotesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Edit}}
}

// =============================================================================
// Habits Pane Keys
// =============================================================================

// HabitKeyMap defines keys for the habits pane.
type HabitKeyMap struct {
	Toggle   key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	NavigationKeyMap
}

// DefaultHabitKeyMap returns the default habit pane key bindings.
func DefaultHabitKeyMap() HabitKeyMap {
	return NewHabitKeyMap(&config.KeysConfig{})
}

// NewHabitKeyMap creates habit key bindings from config.
func NewHabitKeyMap(cfg *config.KeysConfig) HabitKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return HabitKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(parseKeys(cfg.ToggleHabit, " ", "enter", "d")...),
			key.WithHelp("space", "toggle"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys(parseKeys(cfg.PrevWeek, "[")...),
			key.WithHelp("[", "prev week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys(parseKeys(cfg.NextWeek, "]")...),
			key.WithHelp("]", "next week"),
		),
		NavigationKeyMap: NewNavigationKeyMap(cfg),
	}
}

// ShortHelp returns the short help for the habit pane (implements help.KeyMap).
func (k HabitKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Left, k.Down, k.PrevWeek}
}

// FullHelp returns the full help for the habit pane (implements help.KeyMap).
func (k HabitKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.PrevWeek, k.NextWeek},
		{k.Left, k.Right, k.Up, k.Down},
	}
}

// =============================================================================
// Pomodoro Pane Keys
// =============================================================================

// PomodoroKeyMap defines keys for the pomodoro pane.
type PomodoroKeyMap struct {
	StartPause key.Binding
	Reset      key.Binding
	Focus      key.Binding
	Break      key.Binding
}

// DefaultPomodoroKeyMap returns the default pomodoro pane key bindings.
func DefaultPomodoroKeyMap() PomodoroKeyMap {
	return NewPomodoroKeyMap(&config.KeysConfig{})
}

// NewPomodoroKeyMap creates pomodoro key bindings from config.
func NewPomodoroKeyMap(cfg *config.KeysConfig) PomodoroKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return PomodoroKeyMap{
		StartPause: key.NewBinding(
			key.WithKeys(parseKeys(cfg.StartPause, " ", "enter")...),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys(parseKeys(cfg.ResetTimer, "r")...),
			key.WithHelp("r", "reset"),
		),
		Focus: key.NewBinding(
			key.WithKeys(parseKeys(cfg.FocusMode, "f")...),
			key.WithHelp("f", "focus mode"),
		),
		Break: key.NewBinding(
			key.WithKeys(parseKeys(cfg.BreakMode, "b")...),
			key.WithHelp("b", "break mode"),
		),
	}
}

// ShortHelp returns the short help for the pomodoro pane (implements help.KeyMap).
func (k PomodoroKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartPause, k.Reset, k.Focus, k.Break}
}

// FullHelp returns the full help for the pomodoro pane (implements help.KeyMap).
func (k PomodoroKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartPause, k.Reset},
		{k.Focus, k.Break},
	}
}

// =============================================================================
// Help Overlay Keys
// =============================================================================

// HelpKeyMap defines keys for the help overlay.
type HelpKeyMap struct {
	Close key.Binding
}

// DefaultHelpKeyMap returns the default help overlay key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Close: key.NewBinding(
			key.WithKeys("?", "esc", "q", "enter", " "),
			key.WithHelp("any key", "close"),
		),
	}
}
