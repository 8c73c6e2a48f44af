package ui

import (
	"studydash/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the application.
type Styles struct {
	// Base colors
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Danger     lipgloss.Color
	Warning    lipgloss.Color

	// App chrome
	App      lipgloss.Style
	TitleBar lipgloss.Style
	Tagline  lipgloss.Style

	// Pane styles
	Pane             lipgloss.Style
	PaneFocused      lipgloss.Style
	PaneTitle        lipgloss.Style
	PaneTitleFocused lipgloss.Style

	// List item styles
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	ItemDone     lipgloss.Style
	EmptyHint    lipgloss.Style

	// Schedule styles
	DayHeader lipgloss.Style
	DayToday  lipgloss.Style
	ClassTime lipgloss.Style

	// Task deadline styles
	DeadlineOverdue lipgloss.Style
	DeadlineSoon    lipgloss.Style
	DeadlineNormal  lipgloss.Style

	// Notes styles
	NotesSaved lipgloss.Style
	NotesDirty lipgloss.Style

	// Habit styles
	HabitDone    lipgloss.Style
	HabitMissed  lipgloss.Style
	HabitLocked  lipgloss.Style
	HabitCursor  lipgloss.Style
	HabitStreak  lipgloss.Style
	WeekLabel    lipgloss.Style

	// Timer styles
	TimerDigits  lipgloss.Style
	TimerFocus   lipgloss.Style
	TimerBreak   lipgloss.Style
	TimerPaused  lipgloss.Style
	ProgressFill lipgloss.Style
	ProgressRest lipgloss.Style
	SessionCount lipgloss.Style

	// Status bar styles
	StatusBar   lipgloss.Style
	StatusInfo  lipgloss.Style
	StatusError lipgloss.Style

	// Help styles
	HelpBar     lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	HelpOverlay lipgloss.Style
	HelpSection lipgloss.Style

	// Input styles
	InputPrompt lipgloss.Style
	InputLabel  lipgloss.Style

	// Overlay styles
	Overlay       lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayDanger lipgloss.Style
}

// NewStyles creates the default style set.
func NewStyles() *Styles {
	return NewStylesFromTheme(nil)
}

// NewStylesFromTheme creates styles from a theme config. Empty color
// values fall back to defaults.
func NewStylesFromTheme(theme *config.ThemeConfig) *Styles {
	s := &Styles{}

	if theme == nil {
		theme = &config.ThemeConfig{}
	}

	s.Primary = colorOrDefault(theme.Primary, "#7C3AED")
	s.Accent = colorOrDefault(theme.Accent, "#10B981")
	s.Muted = colorOrDefault(theme.Muted, "#6B7280")
	s.Background = colorOrDefault(theme.Background, "#1F2937")
	s.Text = colorOrDefault(theme.Text, "#F9FAFB")
	s.Danger = lipgloss.Color("#EF4444")
	s.Warning = lipgloss.Color("#F59E0B")

	s.initComponentStyles()
	return s
}

// colorOrDefault returns the configured color or a fallback.
func colorOrDefault(configured, fallback string) lipgloss.Color {
	if configured != "" {
		return lipgloss.Color(configured)
	}
	return lipgloss.Color(fallback)
}

// initComponentStyles builds all component styles from the base colors.
func (s *Styles) initComponentStyles() {
	s.App = lipgloss.NewStyle()

	s.TitleBar = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.Primary).
		Padding(0, 1)

	s.Tagline = lipgloss.NewStyle().
		Foreground(s.Muted).
		Italic(true)

	s.Pane = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Muted).
		Padding(0, 1)

	s.PaneFocused = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Primary).
		Padding(0, 1)

	s.PaneTitle = lipgloss.NewStyle().
		Foreground(s.Muted).
		Bold(true)

	s.PaneTitleFocused = lipgloss.NewStyle().
		Foreground(s.Primary).
		Bold(true)

	s.Item = lipgloss.NewStyle().
		Foreground(s.Text)

	s.ItemSelected = lipgloss.NewStyle().
		Foreground(s.Primary).
		Bold(true)

	s.ItemDone = lipgloss.NewStyle().
		Foreground(s.Muted).
		Strikethrough(true)

	s.EmptyHint = lipgloss.NewStyle().
		Foreground(s.Muted).
		Italic(true)

	s.DayHeader = lipgloss.NewStyle().
		Foreground(s.Text).
		Bold(true)

	s.DayToday = lipgloss.NewStyle().
		Foreground(s.Accent).
		Bold(true)

	s.ClassTime = lipgloss.NewStyle().
		Foreground(s.Accent)

	s.DeadlineOverdue = lipgloss.NewStyle().
		Foreground(s.Danger).
		Bold(true)

	s.DeadlineSoon = lipgloss.NewStyle().
		Foreground(s.Warning)

	s.DeadlineNormal = lipgloss.NewStyle().
		Foreground(s.Muted)

	s.NotesSaved = lipgloss.NewStyle().
		Foreground(s.Muted)

	s.NotesDirty = lipgloss.NewStyle().
		Foreground(s.Warning)

	s.HabitDone = lipgloss.NewStyle().
		Foreground(s.Accent)

	s.HabitMissed = lipgloss.NewStyle().
		Foreground(s.Muted)

	s.HabitLocked = lipgloss.NewStyle().
		Foreground(s.Background)

	s.HabitCursor = lipgloss.NewStyle().
		Foreground(s.Primary).
		Bold(true)

	s.HabitStreak = lipgloss.NewStyle().
		Foreground(s.Warning)

	s.WeekLabel = lipgloss.NewStyle().
		Foreground(s.Text).
		Bold(true)

	s.TimerDigits = lipgloss.NewStyle().
		Bold(true)

	s.TimerFocus = lipgloss.NewStyle().
		Foreground(s.Primary).
		Bold(true)

	s.TimerBreak = lipgloss.NewStyle().
		Foreground(s.Accent).
		Bold(true)

	s.TimerPaused = lipgloss.NewStyle().
		Foreground(s.Muted)

	s.ProgressFill = lipgloss.NewStyle().
		Foreground(s.Primary)

	s.ProgressRest = lipgloss.NewStyle().
		Foreground(s.Muted)

	s.SessionCount = lipgloss.NewStyle().
		Foreground(s.Accent)

	s.StatusBar = lipgloss.NewStyle().
		Padding(0, 1)

	s.StatusInfo = lipgloss.NewStyle().
		Foreground(s.Accent)

	s.StatusError = lipgloss.NewStyle().
		Foreground(s.Danger)

	s.HelpBar = lipgloss.NewStyle().
		Foreground(s.Muted).
		Padding(0, 1)

	s.HelpKey = lipgloss.NewStyle().
		Foreground(s.Primary)

	s.HelpDesc = lipgloss.NewStyle().
		Foreground(s.Muted)

	s.HelpOverlay = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Primary).
		Padding(1, 2)

	s.HelpSection = lipgloss.NewStyle().
		Foreground(s.Accent).
		Bold(true)

	s.InputPrompt = lipgloss.NewStyle().
		Foreground(s.Primary)

	s.InputLabel = lipgloss.NewStyle().
		Foreground(s.Muted)

	s.Overlay = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Warning).
		Padding(1, 2)

	s.OverlayTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.Text)

	s.OverlayDanger = lipgloss.NewStyle().
		Foreground(s.Danger).
		Bold(true)
}

// RenderHelp renders a key/description pair for the help bar.
func (s *Styles) RenderHelp(keyText, desc string) string {
	return s.HelpKey.Render(keyText) + " " + s.HelpDesc.Render(desc)
}
