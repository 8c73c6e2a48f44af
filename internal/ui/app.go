package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"studydash/internal/config"
	"studydash/internal/notify"
	"studydash/internal/pomodoro"
	"studydash/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PaneID identifies the dashboard panes in tab order.
type PaneID int

const (
	PaneSchedule PaneID = iota
	PaneTasks
	PaneNotes
	PaneHabits
	PanePomodoro
	paneCount
)

// String returns the display name of the pane.
func (p PaneID) String() string {
	switch p {
	case PaneSchedule:
		return "Schedule"
	case PaneTasks:
		return "Tasks"
	case PaneNotes:
		return "Notes"
	case PaneHabits:
		return "Habits"
	case PanePomodoro:
		return "Focus"
	default:
		return "Unknown"
	}
}

// LayoutMode selects between the grid and the tabbed layout.
type LayoutMode int

const (
	// LayoutWide shows all panes at once in a two-row grid.
	LayoutWide LayoutMode = iota
	// LayoutNarrow shows one pane at a time with a tab strip.
	LayoutNarrow
)

// AppConfig carries UX settings into the app model.
type AppConfig struct {
	ConfirmDeletions      bool
	ShowOnboarding        bool
	NarrowLayoutThreshold int
	NotificationsEnabled  bool
}

// statusTTL is how long an info status stays visible.
const statusTTL = 5 * time.Second

// statusErrTTL is how long an error status stays visible.
const statusErrTTL = 8 * time.Second

// confirmDeleteState tracks a pending deletion awaiting confirmation.
type confirmDeleteState struct {
	active bool

	// Exactly one of these targets is set.
	task  *storage.Task
	day   storage.Weekday
	entry *storage.ScheduleEntry
	index int
}

// App is the root Bubble Tea model for the dashboard.
type App struct {
	store    *storage.Storage
	styles   *Styles
	cfg      AppConfig
	notifier notify.Notifier
	timer    *pomodoro.Timer
	undo     *UndoManager

	schedulePane *SchedulePane
	taskPane     *TaskPane
	notesPane    *NotesPane
	habitsPane   *HabitsPane
	pomodoroPane *PomodoroPane

	globalKeys GlobalKeyMap
	helpKeys   HelpKeyMap

	activePane PaneID
	width      int
	height     int
	layout     LayoutMode

	showHelp    bool
	showWelcome bool
	quitting    bool

	confirmDelete confirmDeleteState

	status        string
	statusIsError bool
	statusExpires time.Time

	lastTick time.Time
}

// NewApp builds the dashboard model. The timer loads its persisted
// session count here so a broken store fails fast.
func NewApp(store *storage.Storage, styles *Styles, cfg AppConfig, keysCfg *config.KeysConfig, notifier notify.Notifier) (*App, error) {
	timer, err := pomodoro.New(store)
	if err != nil {
		return nil, fmt.Errorf("init timer: %w", err)
	}

	if styles == nil {
		styles = NewStyles()
	}
	if cfg.NarrowLayoutThreshold <= 0 {
		cfg.NarrowLayoutThreshold = 100
	}

	app := &App{
		store:        store,
		styles:       styles,
		cfg:          cfg,
		notifier:     notifier,
		timer:        timer,
		undo:         NewUndoManager(),
		schedulePane: NewSchedulePane(store, styles, keysCfg),
		taskPane:     NewTaskPane(store, styles, keysCfg),
		notesPane:    NewNotesPane(store, styles, keysCfg),
		habitsPane:   NewHabitsPane(store, styles, keysCfg),
		pomodoroPane: NewPomodoroPane(timer, styles, keysCfg),
		globalKeys:   NewGlobalKeyMap(keysCfg),
		helpKeys:     DefaultHelpKeyMap(),
		activePane:   PaneSchedule,
		layout:       LayoutWide,
	}

	if cfg.ShowOnboarding && isFirstRun(store) {
		app.showWelcome = true
	}

	app.schedulePane.SetFocused(true)
	return app, nil
}

// isFirstRun reports whether the data directory has no task file yet.
func isFirstRun(store *storage.Storage) bool {
	_, err := os.Stat(filepath.Join(store.DataDir(), "tasks"))
	return os.IsNotExist(err)
}

// tickMsg is the one-second heartbeat driving the timer and status TTL.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init loads all pane data and starts the heartbeat.
func (a *App) Init() tea.Cmd {
	a.lastTick = time.Now()
	return tea.Batch(
		a.schedulePane.Init(),
		a.taskPane.Init(),
		a.notesPane.Init(),
		a.habitsPane.Init(),
		tickCmd(),
	)
}

// Update is the main message router.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tickMsg:
		return a, a.handleTick(time.Time(msg))

	case tea.MouseMsg:
		return a, a.handleMouse(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, a.routeAsync(msg)
}

// handleTick expires the status line and advances the timer by real
// elapsed time, so time suspended or spent off-CPU still counts.
func (a *App) handleTick(now time.Time) tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}

	if a.status != "" && now.After(a.statusExpires) {
		a.status = ""
	}

	elapsed := int(now.Sub(a.lastTick).Seconds())
	if elapsed < 1 {
		elapsed = 1
	}
	a.lastTick = now

	finished, err := a.timer.Advance(elapsed)
	if err != nil {
		a.SetStatus("timer: "+err.Error(), true)
	}
	if finished != "" {
		cmds = append(cmds, a.announcePhaseEnd(finished))
	}

	return tea.Batch(cmds...)
}

// announcePhaseEnd updates the status line and fires a desktop
// notification when a focus or break phase completes.
func (a *App) announcePhaseEnd(finished pomodoro.Mode) tea.Cmd {
	var title, body string
	if finished == pomodoro.ModeFocus {
		title = "Focus session complete 🍅"
		body = fmt.Sprintf("Nice work! %d sessions done. Break time.", a.timer.Sessions())
	} else {
		title = "Break over"
		body = "Back to it. Focus timer is running."
	}
	a.SetStatus(title, false)

	if !a.cfg.NotificationsEnabled {
		return nil
	}
	return notifyCmd(a.notifier, title, body)
}

// routeAsync forwards storage results to their panes and records undo
// actions and status for mutations.
func (a *App) routeAsync(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case schedulesLoadedMsg:
		if msg.err != nil {
			a.SetStatus("load schedule: "+msg.err.Error(), true)
		}
		_, cmd := a.schedulePane.Update(msg)
		cmds = append(cmds, cmd)

	case entryAddedMsg:
		if msg.err != nil {
			a.SetStatus(msg.err.Error(), true)
		} else if msg.entry != nil {
			a.undo.Push(NewAddEntryAction(a.store, msg.day, *msg.entry))
			a.SetStatus(fmt.Sprintf("Added %s at %s", msg.entry.Subject, msg.entry.Time), false)
		}
		_, cmd := a.schedulePane.Update(msg)
		cmds = append(cmds, cmd)

	case entryDeletedMsg:
		if msg.err != nil {
			a.SetStatus(msg.err.Error(), true)
		} else if msg.entry != nil {
			a.undo.Push(NewDeleteEntryAction(a.store, msg.day, *msg.entry))
			a.SetStatus(fmt.Sprintf("Deleted %s", msg.entry.Subject), false)
		}
		_, cmd := a.schedulePane.Update(msg)
		cmds = append(cmds, cmd)

	case tasksLoadedMsg:
		if msg.err != nil {
			a.SetStatus("load tasks: "+msg.err.Error(), true)
		}
		_, cmd := a.taskPane.Update(msg)
		cmds = append(cmds, cmd)

	case taskAddedMsg:
		if msg.err != nil {
			a.SetStatus(msg.err.Error(), true)
		} else if msg.task != nil {
			a.undo.Push(NewAddTaskAction(a.store, *msg.task))
			a.SetStatus("Task added", false)
		}
		_, cmd := a.taskPane.Update(msg)
		cmds = append(cmds, cmd)

	case taskToggledMsg:
		if msg.err != nil {
			a.SetStatus(msg.err.Error(), true)
		} else {
			a.undo.Push(NewToggleTaskAction(a.store, msg.id, msg.wasCompleted))
		}
		_, cmd := a.taskPane.Update(msg)
		cmds = append(cmds, cmd)

	case taskDeletedMsg:
		if msg.err != nil {
			a.SetStatus(msg.err.Error(), true)
		} else if msg.task != nil {
			a.undo.Push(NewDeleteTaskAction(a.store, *msg.task))
			a.SetStatus("Task deleted", false)
		}
		_, cmd := a.taskPane.Update(msg)
		cmds = append(cmds, cmd)

	case notesLoadedMsg:
		if msg.err != nil {
			a.SetStatus("load notes: "+msg.err.Error(), true)
		}
		_, cmd := a.notesPane.Update(msg)
		cmds = append(cmds, cmd)

	case notesFlushMsg:
		_, cmd := a.notesPane.Update(msg)
		cmds = append(cmds, cmd)

	case notesSavedMsg:
		if msg.err != nil {
			a.SetStatus("save notes: "+msg.err.Error(), true)
		}
		_, cmd := a.notesPane.Update(msg)
		cmds = append(cmds, cmd)

	case habitsLoadedMsg:
		if msg.err != nil {
			a.SetStatus("load habits: "+msg.err.Error(), true)
		}
		_, cmd := a.habitsPane.Update(msg)
		cmds = append(cmds, cmd)

	case habitToggledMsg:
		if msg.err != nil {
			a.SetStatus(msg.err.Error(), true)
		} else {
			a.undo.Push(NewToggleHabitAction(a.store, msg.habitID, msg.date, msg.nowDone))
		}
		_, cmd := a.habitsPane.Update(msg)
		cmds = append(cmds, cmd)

	case undoAppliedMsg:
		if msg.err != nil {
			a.SetStatus(msg.err.Error(), true)
		} else {
			a.SetStatus("Undid: "+msg.description, false)
			cmds = append(cmds, a.reloadAll())
		}

	case redoAppliedMsg:
		if msg.err != nil {
			a.SetStatus(msg.err.Error(), true)
		} else {
			a.SetStatus("Redid: "+msg.description, false)
			cmds = append(cmds, a.reloadAll())
		}

	case notificationSentMsg:
		// Best effort; nothing to do.
	}

	return tea.Batch(cmds...)
}

// reloadAll refreshes every data-backed pane after undo/redo.
func (a *App) reloadAll() tea.Cmd {
	return tea.Batch(
		loadSchedulesCmd(a.store),
		loadTasksCmd(a.store),
		loadNotesCmd(a.store),
		loadHabitsCmd(a.store),
	)
}

// handleKey routes keyboard input through the overlay and focus rules.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Welcome and help overlays swallow everything.
	if a.showWelcome {
		a.showWelcome = false
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if a.confirmDelete.active {
		return a, a.handleConfirmDeleteKey(msg)
	}

	// While a pane is capturing text, only it sees keys.
	if a.paneCapturingInput() {
		return a, a.updateActivePane(msg)
	}

	switch {
	case key.Matches(msg, a.globalKeys.Quit):
		return a, a.quit()

	case key.Matches(msg, a.globalKeys.Help):
		a.showHelp = true
		return a, nil

	case key.Matches(msg, a.globalKeys.NextPane):
		a.setActivePane((a.activePane + 1) % paneCount)
		return a, nil

	case key.Matches(msg, a.globalKeys.Pane1):
		a.setActivePane(PaneSchedule)
		return a, nil
	case key.Matches(msg, a.globalKeys.Pane2):
		a.setActivePane(PaneTasks)
		return a, nil
	case key.Matches(msg, a.globalKeys.Pane3):
		a.setActivePane(PaneNotes)
		return a, nil
	case key.Matches(msg, a.globalKeys.Pane4):
		a.setActivePane(PaneHabits)
		return a, nil
	case key.Matches(msg, a.globalKeys.Pane5):
		a.setActivePane(PanePomodoro)
		return a, nil

	case key.Matches(msg, a.globalKeys.Undo):
		if !a.undo.CanUndo() {
			a.SetStatus("Nothing to undo", false)
			return a, nil
		}
		return a, undoCmd(a.undo)

	case key.Matches(msg, a.globalKeys.Redo):
		if !a.undo.CanRedo() {
			a.SetStatus("Nothing to redo", false)
			return a, nil
		}
		return a, redoCmd(a.undo)
	}

	// Deletions go through the confirmation overlay when enabled.
	if cmd, handled := a.interceptDelete(msg); handled {
		return a, cmd
	}

	return a, a.updateActivePane(msg)
}

// paneCapturingInput reports whether the active pane owns raw keys.
func (a *App) paneCapturingInput() bool {
	switch a.activePane {
	case PaneSchedule:
		return a.schedulePane.IsAdding()
	case PaneTasks:
		return a.taskPane.IsAdding()
	case PaneNotes:
		return a.notesPane.IsEditing()
	}
	return false
}

// interceptDelete opens the confirmation overlay for delete keys on
// the schedule and task panes, or deletes immediately when
// confirmations are off.
func (a *App) interceptDelete(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch a.activePane {
	case PaneSchedule:
		if !key.Matches(msg, a.schedulePane.keys.Delete) {
			return nil, false
		}
		index, entry, ok := a.schedulePane.SelectedEntry()
		if !ok {
			return nil, true
		}
		if !a.cfg.ConfirmDeletions {
			return deleteEntryCmd(a.store, a.schedulePane.Day(), index), true
		}
		a.confirmDelete = confirmDeleteState{
			active: true,
			day:    a.schedulePane.Day(),
			entry:  &entry,
			index:  index,
		}
		return nil, true

	case PaneTasks:
		if !key.Matches(msg, a.taskPane.keys.Delete) {
			return nil, false
		}
		task, ok := a.taskPane.SelectedTask()
		if !ok {
			return nil, true
		}
		if !a.cfg.ConfirmDeletions {
			return deleteTaskCmd(a.store, task.ID), true
		}
		a.confirmDelete = confirmDeleteState{active: true, task: &task}
		return nil, true
	}

	return nil, false
}

// handleConfirmDeleteKey resolves the pending deletion.
func (a *App) handleConfirmDeleteKey(msg tea.KeyMsg) tea.Cmd {
	pending := a.confirmDelete

	switch msg.String() {
	case "y", "Y", "enter":
		a.confirmDelete = confirmDeleteState{}
		if pending.task != nil {
			return deleteTaskCmd(a.store, pending.task.ID)
		}
		if pending.entry != nil {
			return deleteEntryCmd(a.store, pending.day, pending.index)
		}
	case "n", "N", "esc", "q":
		a.confirmDelete = confirmDeleteState{}
	}
	return nil
}

// updateActivePane forwards a key to whichever pane has focus.
func (a *App) updateActivePane(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.activePane {
	case PaneSchedule:
		_, cmd = a.schedulePane.Update(msg)
	case PaneTasks:
		_, cmd = a.taskPane.Update(msg)
	case PaneNotes:
		_, cmd = a.notesPane.Update(msg)
	case PaneHabits:
		_, cmd = a.habitsPane.Update(msg)
	case PanePomodoro:
		_, cmd = a.pomodoroPane.Update(msg)
	}
	return cmd
}

// setActivePane moves focus, letting the old pane clean up.
func (a *App) setActivePane(target PaneID) {
	if target == a.activePane {
		return
	}
	a.schedulePane.SetFocused(target == PaneSchedule)
	a.taskPane.SetFocused(target == PaneTasks)
	a.habitsPane.SetFocused(target == PaneHabits)
	a.pomodoroPane.SetFocused(target == PanePomodoro)

	// The notes pane may need to flush on blur.
	if cmd := a.notesPane.SetFocused(target == PaneNotes); cmd != nil {
		// Flush synchronously; losing focus must not lose edits.
		if msg := cmd(); msg != nil {
			if saved, ok := msg.(notesSavedMsg); ok && saved.err != nil {
				a.SetStatus("save notes: "+saved.err.Error(), true)
			}
		}
	}

	a.activePane = target
}

// handleMouse focuses the clicked pane and maps the wheel to cursor
// movement in the active pane.
func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		if pane, ok := a.paneAtPosition(msg.X, msg.Y); ok {
			a.setActivePane(pane)
		}
	case tea.MouseButtonWheelUp:
		return a.updateActivePane(tea.KeyMsg{Type: tea.KeyUp})
	case tea.MouseButtonWheelDown:
		return a.updateActivePane(tea.KeyMsg{Type: tea.KeyDown})
	}
	return nil
}

// paneAtPosition maps screen coordinates to a pane in the wide grid.
// In the narrow layout clicks always land on the shown pane.
func (a *App) paneAtPosition(x, y int) (PaneID, bool) {
	if y < contentTop {
		return 0, false
	}
	if a.layout == LayoutNarrow {
		return a.activePane, true
	}

	topWidth := a.width / 3
	topHeight := a.contentHeight() / 2
	if y < contentTop+topHeight {
		switch {
		case x < topWidth:
			return PaneSchedule, true
		case x < 2*topWidth:
			return PaneTasks, true
		default:
			return PanePomodoro, true
		}
	}
	if x < a.width/2 {
		return PaneNotes, true
	}
	return PaneHabits, true
}

// contentTop is the row where pane content starts (below the title bar).
const contentTop = 2

// contentHeight is the vertical space for panes.
func (a *App) contentHeight() int {
	// Title bar, status bar, and help bar.
	return max(a.height-contentTop-2, 6)
}

// updateLayout recomputes pane sizes for the current terminal size.
func (a *App) updateLayout() {
	if a.width < a.cfg.NarrowLayoutThreshold {
		a.layout = LayoutNarrow
	} else {
		a.layout = LayoutWide
	}

	if a.layout == LayoutNarrow {
		// One pane fills the content area, minus the tab strip.
		h := a.contentHeight() - 1
		a.schedulePane.SetSize(a.width, h)
		a.taskPane.SetSize(a.width, h)
		a.notesPane.SetSize(a.width, h)
		a.habitsPane.SetSize(a.width, h)
		a.pomodoroPane.SetSize(a.width, h)
		return
	}

	topWidth := a.width / 3
	bottomWidth := a.width / 2
	topHeight := a.contentHeight() / 2
	bottomHeight := a.contentHeight() - topHeight

	a.schedulePane.SetSize(topWidth, topHeight)
	a.taskPane.SetSize(topWidth, topHeight)
	a.pomodoroPane.SetSize(a.width-2*topWidth, topHeight)
	a.notesPane.SetSize(bottomWidth, bottomHeight)
	a.habitsPane.SetSize(a.width-bottomWidth, bottomHeight)
}

// SetStatus sets the transient status line.
func (a *App) SetStatus(msg string, isError bool) {
	a.status = msg
	a.statusIsError = isError
	ttl := statusTTL
	if isError {
		ttl = statusErrTTL
	}
	a.statusExpires = time.Now().Add(ttl)
}

// quit flushes unsaved notes and exits.
func (a *App) quit() tea.Cmd {
	if err := a.notesPane.Flush(); err != nil {
		// Still quit; the debounced copy on disk is at most a second old.
		fmt.Fprintln(os.Stderr, "save notes:", err)
	}
	a.quitting = true
	return tea.Quit
}

// View renders the whole dashboard.
func (a *App) View() string {
	if a.quitting {
		return a.renderGoodbye()
	}
	if a.width == 0 {
		return "Loading…"
	}
	if a.showWelcome {
		return a.centerOverlay(a.renderWelcome())
	}
	if a.showHelp {
		return a.centerOverlay(renderHelpOverlay(
			a.styles, a.globalKeys,
			a.schedulePane.keys, a.taskPane.keys, a.notesPane.keys,
			a.habitsPane.keys, a.pomodoroPane.keys,
		))
	}
	if a.confirmDelete.active {
		return a.centerOverlay(a.renderConfirmDelete())
	}

	var b strings.Builder
	b.WriteString(a.renderTitleBar())
	b.WriteString("\n")

	if a.layout == LayoutNarrow {
		b.WriteString(a.renderPaneTabs())
		b.WriteString("\n")
		b.WriteString(a.activePaneView())
	} else {
		top := lipgloss.JoinHorizontal(lipgloss.Top,
			a.schedulePane.View(), a.taskPane.View(), a.pomodoroPane.View())
		bottom := lipgloss.JoinHorizontal(lipgloss.Top,
			a.notesPane.View(), a.habitsPane.View())
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, top, bottom))
	}

	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(a.renderHelpBar())

	return b.String()
}

// activePaneView renders the focused pane for the narrow layout.
func (a *App) activePaneView() string {
	switch a.activePane {
	case PaneSchedule:
		return a.schedulePane.View()
	case PaneTasks:
		return a.taskPane.View()
	case PaneNotes:
		return a.notesPane.View()
	case PaneHabits:
		return a.habitsPane.View()
	default:
		return a.pomodoroPane.View()
	}
}

// centerOverlay places an overlay in the middle of the screen.
func (a *App) centerOverlay(overlay string) string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, overlay)
}

// renderTitleBar draws the app name and date.
func (a *App) renderTitleBar() string {
	title := a.styles.TitleBar.Render("studydash")
	date := a.styles.Tagline.Render(a.store.Now().Format("Monday, Jan 2"))
	return title + " " + date
}

// renderPaneTabs draws the tab strip for the narrow layout.
func (a *App) renderPaneTabs() string {
	var tabs []string
	for id := PaneID(0); id < paneCount; id++ {
		label := fmt.Sprintf("%d:%s", id+1, id)
		if id == a.activePane {
			tabs = append(tabs, a.styles.ItemSelected.Render("["+label+"]"))
		} else {
			tabs = append(tabs, a.styles.HelpDesc.Render(" "+label+" "))
		}
	}
	return strings.Join(tabs, " ")
}

// renderStatusBar draws the transient status line.
func (a *App) renderStatusBar() string {
	if a.status == "" {
		return a.styles.StatusBar.Render("")
	}
	style := a.styles.StatusInfo
	if a.statusIsError {
		style = a.styles.StatusError
	}
	return a.styles.StatusBar.Render(style.Render(a.status))
}

// renderHelpBar draws the per-pane key hints.
func (a *App) renderHelpBar() string {
	hints := []string{
		a.styles.RenderHelp("tab", "pane"),
		a.styles.RenderHelp("?", "help"),
		a.styles.RenderHelp("q", "quit"),
	}

	var paneHints []key.Binding
	switch a.activePane {
	case PaneSchedule:
		paneHints = a.schedulePane.keys.ShortHelp()
	case PaneTasks:
		paneHints = a.taskPane.keys.ShortHelp()
	case PaneNotes:
		paneHints = a.notesPane.keys.ShortHelp()
	case PaneHabits:
		paneHints = a.habitsPane.keys.ShortHelp()
	case PanePomodoro:
		paneHints = a.pomodoroPane.keys.ShortHelp()
	}
	for _, binding := range paneHints {
		h := binding.Help()
		hints = append(hints, a.styles.RenderHelp(h.Key, h.Desc))
	}

	return a.styles.HelpBar.Render(strings.Join(hints, " · "))
}

// renderWelcome draws the first-run greeting.
func (a *App) renderWelcome() string {
	var b strings.Builder
	b.WriteString(a.styles.OverlayTitle.Render("Welcome to studydash 📚"))
	b.WriteString("\n\n")
	b.WriteString("Your day in one screen: classes, tasks, notes,\n")
	b.WriteString("habits, and a pomodoro timer.\n\n")
	b.WriteString(a.styles.RenderHelp("tab", "switch panes"))
	b.WriteString("\n")
	b.WriteString(a.styles.RenderHelp("a", "add a class or task"))
	b.WriteString("\n")
	b.WriteString(a.styles.RenderHelp("?", "full key reference"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.HelpDesc.Render("press any key to start"))
	return a.styles.HelpOverlay.Render(b.String())
}

// renderConfirmDelete draws the delete confirmation overlay.
func (a *App) renderConfirmDelete() string {
	var what string
	if a.confirmDelete.task != nil {
		what = fmt.Sprintf("task %q", truncateText(a.confirmDelete.task.Text, 40))
	} else if a.confirmDelete.entry != nil {
		what = fmt.Sprintf("%s at %s", a.confirmDelete.entry.Subject, a.confirmDelete.entry.Time)
	}

	var b strings.Builder
	b.WriteString(a.styles.OverlayTitle.Render("Delete " + what + "?"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.OverlayDanger.Render("y"))
	b.WriteString(a.styles.HelpDesc.Render(" delete · "))
	b.WriteString(a.styles.HelpKey.Render("n"))
	b.WriteString(a.styles.HelpDesc.Render(" keep"))
	return a.styles.Overlay.Render(b.String())
}

// renderGoodbye draws the exit message.
func (a *App) renderGoodbye() string {
	sessions := a.timer.Sessions()
	if sessions > 0 {
		return fmt.Sprintf("Bye! %d focus sessions on the counter. 🍅\n", sessions)
	}
	return "Bye! 👋\n"
}

// Run starts the dashboard and blocks until exit.
func Run(store *storage.Storage, styles *Styles, cfg AppConfig, keysCfg *config.KeysConfig, notifier notify.Notifier) error {
	app, err := NewApp(store, styles, cfg, keysCfg, notifier)
	if err != nil {
		return err
	}

	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
