// Package main is the entry point for the studydash application.
// It loads configuration, initializes storage, and starts the TUI.
package main

import (
	"flag"
	"fmt"
	"os"

	"studydash/internal/config"
	"studydash/internal/notify"
	"studydash/internal/storage"
	"studydash/internal/ui"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const helpText = `studydash - A personal study dashboard for your terminal

USAGE:
    studydash [OPTIONS]
    studydash <command> [ARGS]

COMMANDS:
    backup           Create a backup of all data
    backup --list    List available backups
    backup --prune N Keep only the N most recent backups
    restore NAME     Restore from a specific backup
    restore --latest Restore from the most recent backup

OPTIONS:
    -h, --help       Show this help message
    -v, --version    Show version information

DESCRIPTION:
    studydash puts a student's day on one screen: the weekly class
    schedule, a deadline-sorted task list, a scratch pad, a habit
    tracker, and a pomodoro focus timer.

KEYBINDINGS:
    Global:
        Tab          Switch between panes
        1-5          Jump to a specific pane
        ?            Show help overlay
        Ctrl+Z       Undo last action
        Ctrl+Y       Redo
        q            Quit

    Schedule Pane:
        h/l, ←/→     Previous / next day
        a            Add a class (time, subject, teacher)
        x            Delete the selected class

    Tasks Pane:
        j/k, ↓/↑     Navigate
        a            Add task (text, optional deadline)
        d/Space      Toggle done
        x            Delete task

    Notes Pane:
        i            Edit the pad (esc to finish)

    Habits Pane:
        h/j/k/l      Move around the week grid
        Space        Check off the selected day
        [ / ]        Previous / next week

    Focus Pane:
        Space        Start / pause the timer
        r            Reset the current phase
        f / b        Switch to focus / break mode

DATA STORAGE:
    All data lives in ~/.studydash/ as plain files:
        schedules     - Weekly class schedule (JSON)
        tasks         - Task list (JSON)
        notes         - Scratch pad (raw text)
        habits        - Habit check-offs (JSON)
        sessionCount  - Completed focus sessions

CONFIGURATION:
    Optional config file: ~/.config/studydash/config.yaml

EXAMPLES:
    # Start the app
    studydash

    # Create a backup
    studydash backup

    # Restore from the latest backup
    studydash restore --latest
`

func main() {
	// Check for subcommands first (before flag parsing)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "backup":
			runBackup(os.Args[2:])
			return
		case "restore":
			runRestore(os.Args[2:])
			return
		}
	}

	showVersion := flag.Bool("version", false, "show version information")
	flag.BoolVar(showVersion, "v", false, "show version information (shorthand)")

	showHelp := flag.Bool("help", false, "show help message")
	flag.BoolVar(showHelp, "h", false, "show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpText)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("studydash version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	if *showHelp {
		fmt.Print(helpText)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown arguments: %v\n\n", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.New(cfg.GetDataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	styles := ui.NewStylesFromTheme(&cfg.Theme)

	appCfg := ui.AppConfig{
		ConfirmDeletions:      cfg.UX.ConfirmDeletions,
		ShowOnboarding:        cfg.UX.ShowOnboarding,
		NarrowLayoutThreshold: cfg.UX.NarrowLayoutThreshold,
		NotificationsEnabled:  cfg.Notifications.Enabled,
	}

	notifier := notify.New()

	if err := ui.Run(store, styles, appCfg, &cfg.Keys, notifier); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
