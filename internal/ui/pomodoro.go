package ui

import (
	"fmt"
	"strings"

	"studydash/internal/config"
	"studydash/internal/pomodoro"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// PomodoroPane shows the focus timer. Ticking is driven by the app's
// one-second heartbeat; this pane only renders state and maps keys to
// timer transitions.
type PomodoroPane struct {
	timer  *pomodoro.Timer
	styles *Styles
	keys   PomodoroKeyMap

	focused bool
	width   int
	height  int
}

// NewPomodoroPane creates the pomodoro pane around a loaded timer.
func NewPomodoroPane(timer *pomodoro.Timer, styles *Styles, keysCfg *config.KeysConfig) *PomodoroPane {
	return &PomodoroPane{
		timer:  timer,
		styles: styles,
		keys:   NewPomodoroKeyMap(keysCfg),
	}
}

// SetSize updates the pane dimensions.
func (p *PomodoroPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets keyboard focus.
func (p *PomodoroPane) SetFocused(focused bool) {
	p.focused = focused
}

// Update handles key messages for the pomodoro pane. Timer completion
// is observed by the app's tick handler, not here.
func (p *PomodoroPane) Update(msg tea.Msg) (*PomodoroPane, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.StartPause):
		if p.timer.Running() {
			p.timer.Pause()
		} else {
			p.timer.Start()
		}
	case key.Matches(keyMsg, p.keys.Reset):
		p.timer.Reset()
	case key.Matches(keyMsg, p.keys.Focus):
		_ = p.timer.SetMode(pomodoro.ModeFocus) // known mode, cannot fail
	case key.Matches(keyMsg, p.keys.Break):
		_ = p.timer.SetMode(pomodoro.ModeBreak)
	}

	return p, nil
}

// View renders the pomodoro pane.
func (p *PomodoroPane) View() string {
	var b strings.Builder

	titleStyle := p.styles.PaneTitle
	borderStyle := p.styles.Pane
	if p.focused {
		titleStyle = p.styles.PaneTitleFocused
		borderStyle = p.styles.PaneFocused
	}

	b.WriteString(titleStyle.Render("FOCUS"))
	b.WriteString("\n")

	modeStyle := p.styles.TimerFocus
	if p.timer.Mode() == pomodoro.ModeBreak {
		modeStyle = p.styles.TimerBreak
	}
	b.WriteString(modeStyle.Render(p.timer.Mode().Label()))
	b.WriteString("  ")
	b.WriteString(p.styles.TimerPaused.Render(p.phaseLabel()))
	b.WriteString("\n\n")

	remaining := p.timer.Remaining()
	clock := fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
	b.WriteString(p.styles.TimerDigits.Render(clock))
	b.WriteString("\n")
	b.WriteString(p.renderProgress())
	b.WriteString("\n\n")

	sessions := p.timer.Sessions()
	noun := "sessions"
	if sessions == 1 {
		noun = "session"
	}
	b.WriteString(p.styles.SessionCount.Render(fmt.Sprintf("🍅 %d focus %s", sessions, noun)))

	return borderStyle.Width(max(p.width-2, 10)).Render(b.String())
}

// phaseLabel describes the timer phase for display.
func (p *PomodoroPane) phaseLabel() string {
	switch p.timer.Phase() {
	case pomodoro.PhaseRunning:
		return "running"
	case pomodoro.PhasePaused:
		return "paused"
	default:
		return "ready"
	}
}

// renderProgress draws a bar filling as the phase elapses.
func (p *PomodoroPane) renderProgress() string {
	barWidth := max(min(p.width-8, 30), 10)
	total := p.timer.Mode().Seconds()
	elapsed := total - p.timer.Remaining()
	filled := 0
	if total > 0 {
		filled = elapsed * barWidth / total
	}
	filled = min(filled, barWidth)

	return p.styles.ProgressFill.Render(strings.Repeat("█", filled)) +
		p.styles.ProgressRest.Render(strings.Repeat("░", barWidth-filled))
}
