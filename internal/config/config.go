// Package config handles configuration loading and defaults for the
// studydash app. Configuration is loaded from XDG-compliant paths
// (typically ~/.config/studydash/config.yaml).
package config

import (
	"os"
	"path/filepath"
	"strings"

	"studydash/internal/fsutil"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// DataDir overrides the default data directory (~/.studydash)
	DataDir string `yaml:"data_dir,omitempty"`

	// Theme customizes the visual appearance
	Theme ThemeConfig `yaml:"theme,omitempty"`

	// Keys customizes keyboard shortcuts
	Keys KeysConfig `yaml:"keys,omitempty"`

	// UX customizes user experience settings
	UX UXConfig `yaml:"ux,omitempty"`

	// Notifications configures desktop notifications
	Notifications NotificationConfig `yaml:"notifications,omitempty"`
}

// NotificationConfig defines desktop notification settings.
type NotificationConfig struct {
	// Enabled enables/disables countdown completion notifications
	Enabled bool `yaml:"enabled,omitempty"`

	// Sound enables notification sounds
	Sound bool `yaml:"sound,omitempty"`
}

// ThemeConfig defines color and style settings.
type ThemeConfig struct {
	// Primary color for focused elements (hex, e.g., "#FF5733")
	Primary string `yaml:"primary,omitempty"`

	// Accent color for highlights (hex)
	Accent string `yaml:"accent,omitempty"`

	// Muted color for secondary text (hex)
	Muted string `yaml:"muted,omitempty"`

	// Background color (hex)
	Background string `yaml:"background,omitempty"`

	// Text color (hex)
	Text string `yaml:"text,omitempty"`
}

// KeysConfig defines customizable keyboard shortcuts.
// Each field accepts a comma-separated list of key bindings.
// Examples: "q,ctrl+c", "tab", "j,down"
type KeysConfig struct {
	// Global keys
	Quit     string `yaml:"quit,omitempty"`      // default: "q,ctrl+c"
	Help     string `yaml:"help,omitempty"`      // default: "?"
	NextPane string `yaml:"next_pane,omitempty"` // default: "tab"
	Pane1    string `yaml:"pane_1,omitempty"`    // default: "1"
	Pane2    string `yaml:"pane_2,omitempty"`    // default: "2"
	Pane3    string `yaml:"pane_3,omitempty"`    // default: "3"
	Pane4    string `yaml:"pane_4,omitempty"`    // default: "4"
	Pane5    string `yaml:"pane_5,omitempty"`    // default: "5"

	// Navigation keys
	Up     string `yaml:"up,omitempty"`     // default: "k,up"
	Down   string `yaml:"down,omitempty"`   // default: "j,down"
	Left   string `yaml:"left,omitempty"`   // default: "h,left"
	Right  string `yaml:"right,omitempty"`  // default: "l,right"
	Top    string `yaml:"top,omitempty"`    // default: "g"
	Bottom string `yaml:"bottom,omitempty"` // default: "G"

	// Schedule keys
	AddEntry    string `yaml:"add_entry,omitempty"`    // default: "a"
	DeleteEntry string `yaml:"delete_entry,omitempty"` // default: "x"

	// Task keys
	AddTask    string `yaml:"add_task,omitempty"`    // default: "a"
	ToggleTask string `yaml:"toggle_task,omitempty"` // default: "d,enter,space"
	DeleteTask string `yaml:"delete_task,omitempty"` // default: "x"

	// Notes keys
	EditNotes string `yaml:"edit_notes,omitempty"` // default: "i,enter"

	// Habit keys
	ToggleHabit string `yaml:"toggle_habit,omitempty"` // default: "d,enter,space"
	PrevWeek    string `yaml:"prev_week,omitempty"`    // default: "["
	NextWeek    string `yaml:"next_week,omitempty"`    // default: "]"

	// Timer keys
	StartPause string `yaml:"start_pause,omitempty"` // default: "space,enter"
	ResetTimer string `yaml:"reset_timer,omitempty"` // default: "r"
	FocusMode  string `yaml:"focus_mode,omitempty"`  // default: "f"
	BreakMode  string `yaml:"break_mode,omitempty"`  // default: "b"

	// Input keys
	Confirm string `yaml:"confirm,omitempty"` // default: "enter"
	Cancel  string `yaml:"cancel,omitempty"`  // default: "esc"

	// Undo/Redo keys
	Undo string `yaml:"undo,omitempty"` // default: "ctrl+z,u"
	Redo string `yaml:"redo,omitempty"` // default: "ctrl+y"
}

// UXConfig defines user experience settings.
type UXConfig struct {
	// ConfirmDeletions shows confirmation dialogs before deleting items
	ConfirmDeletions bool `yaml:"confirm_deletions,omitempty"` // default: true

	// ShowOnboarding shows welcome screen on first run
	ShowOnboarding bool `yaml:"show_onboarding,omitempty"` // default: true

	// NarrowLayoutThreshold is the terminal width below which to use stacked layout
	NarrowLayoutThreshold int `yaml:"narrow_layout_threshold,omitempty"` // default: 100
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir: defaultDataDir(),
		Theme: ThemeConfig{
			Primary:    "#7C3AED", // Violet
			Accent:     "#10B981", // Emerald
			Muted:      "#6B7280", // Gray
			Background: "",        // Terminal default
			Text:       "",        // Terminal default
		},
		Keys: KeysConfig{
			// Defaults are empty strings, which means use built-in defaults
		},
		UX: UXConfig{
			ConfirmDeletions:      true,
			ShowOnboarding:        true,
			NarrowLayoutThreshold: 100,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   false,
		},
	}
}

// defaultDataDir returns the default data directory path.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".studydash"
	}
	return filepath.Join(home, ".studydash")
}

// configDir returns the configuration directory path (XDG compliant).
func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "studydash")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "studydash")
}

// configPath returns the path to the config file.
func configPath() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads configuration from disk, merging with defaults.
// If no config file exists, returns default configuration.
func Load() (*Config, error) {
	cfg := Default()

	path := configPath()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var userCfg Config
	if err := yaml.Unmarshal(data, &userCfg); err != nil {
		return nil, err
	}

	var doc yaml.Node
	_ = yaml.Unmarshal(data, &doc) // best-effort; fall back to conservative merge if this fails

	cfg.mergeFromYAML(&userCfg, &doc)

	return cfg, nil
}

// mergeNonEmpty applies non-empty values from other to c.
// It intentionally does not touch booleans (those require presence-aware
// merging).
func (c *Config) mergeNonEmpty(other *Config) {
	if other.DataDir != "" {
		c.DataDir = other.DataDir
	}

	if other.Theme.Primary != "" {
		c.Theme.Primary = other.Theme.Primary
	}
	if other.Theme.Accent != "" {
		c.Theme.Accent = other.Theme.Accent
	}
	if other.Theme.Muted != "" {
		c.Theme.Muted = other.Theme.Muted
	}
	if other.Theme.Background != "" {
		c.Theme.Background = other.Theme.Background
	}
	if other.Theme.Text != "" {
		c.Theme.Text = other.Theme.Text
	}

	mergeKeys := []struct {
		dst *string
		src string
	}{
		{&c.Keys.Quit, other.Keys.Quit},
		{&c.Keys.Help, other.Keys.Help},
		{&c.Keys.NextPane, other.Keys.NextPane},
		{&c.Keys.Pane1, other.Keys.Pane1},
		{&c.Keys.Pane2, other.Keys.Pane2},
		{&c.Keys.Pane3, other.Keys.Pane3},
		{&c.Keys.Pane4, other.Keys.Pane4},
		{&c.Keys.Pane5, other.Keys.Pane5},
		{&c.Keys.Up, other.Keys.Up},
		{&c.Keys.Down, other.Keys.Down},
		{&c.Keys.Left, other.Keys.Left},
		{&c.Keys.Right, other.Keys.Right},
		{&c.Keys.Top, other.Keys.Top},
		{&c.Keys.Bottom, other.Keys.Bottom},
		{&c.Keys.AddEntry, other.Keys.AddEntry},
		{&c.Keys.DeleteEntry, other.Keys.DeleteEntry},
		{&c.Keys.AddTask, other.Keys.AddTask},
		{&c.Keys.ToggleTask, other.Keys.ToggleTask},
		{&c.Keys.DeleteTask, other.Keys.DeleteTask},
		{&c.Keys.EditNotes, other.Keys.EditNotes},
		{&c.Keys.ToggleHabit, other.Keys.ToggleHabit},
		{&c.Keys.PrevWeek, other.Keys.PrevWeek},
		{&c.Keys.NextWeek, other.Keys.NextWeek},
		{&c.Keys.StartPause, other.Keys.StartPause},
		{&c.Keys.ResetTimer, other.Keys.ResetTimer},
		{&c.Keys.FocusMode, other.Keys.FocusMode},
		{&c.Keys.BreakMode, other.Keys.BreakMode},
		{&c.Keys.Confirm, other.Keys.Confirm},
		{&c.Keys.Cancel, other.Keys.Cancel},
		{&c.Keys.Undo, other.Keys.Undo},
		{&c.Keys.Redo, other.Keys.Redo},
	}
	for _, m := range mergeKeys {
		if m.src != "" {
			*m.dst = m.src
		}
	}

	if other.UX.NarrowLayoutThreshold > 0 {
		c.UX.NarrowLayoutThreshold = other.UX.NarrowLayoutThreshold
	}
}

func (c *Config) mergeFromYAML(other *Config, doc *yaml.Node) {
	// Fall back to conservative behavior if we can't inspect presence.
	if doc == nil || len(doc.Content) == 0 {
		c.mergeNonEmpty(other)
		return
	}

	// First apply all non-empty string-ish merges.
	c.mergeNonEmpty(other)

	// Now re-apply booleans only when present in YAML.
	if yamlHasPath(doc, "ux", "confirm_deletions") {
		c.UX.ConfirmDeletions = other.UX.ConfirmDeletions
	}
	if yamlHasPath(doc, "ux", "show_onboarding") {
		c.UX.ShowOnboarding = other.UX.ShowOnboarding
	}
	if yamlHasPath(doc, "ux", "narrow_layout_threshold") && other.UX.NarrowLayoutThreshold > 0 {
		c.UX.NarrowLayoutThreshold = other.UX.NarrowLayoutThreshold
	}

	if yamlHasPath(doc, "notifications", "enabled") {
		c.Notifications.Enabled = other.Notifications.Enabled
	}
	if yamlHasPath(doc, "notifications", "sound") {
		c.Notifications.Sound = other.Notifications.Sound
	}
}

func yamlHasPath(doc *yaml.Node, path ...string) bool {
	if doc == nil || len(path) == 0 {
		return false
	}

	// Document -> root mapping.
	n := doc
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	for _, key := range path {
		if n == nil || n.Kind != yaml.MappingNode {
			return false
		}
		var next *yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			v := n.Content[i+1]
			if k.Kind == yaml.ScalarNode && k.Value == key {
				next = v
				break
			}
		}
		if next == nil {
			return false
		}
		n = next
	}
	return true
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	path := configPath()
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return fsutil.WriteFileAtomic(path, data, 0600)
}

// GetDataDir returns the resolved data directory path.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return defaultDataDir()
	}

	// Expand ~ if present
	if c.DataDir == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
		return c.DataDir
	}

	if strings.HasPrefix(c.DataDir, "~/") || strings.HasPrefix(c.DataDir, `~\`) {
		home, err := os.UserHomeDir()
		if err == nil {
			trimmed := strings.TrimPrefix(c.DataDir, "~/")
			trimmed = strings.TrimPrefix(trimmed, `~\`)
			trimmed = strings.TrimPrefix(trimmed, `\`)
			return filepath.Join(home, trimmed)
		}
	}
	return c.DataDir
}
