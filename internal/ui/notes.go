package ui

import (
	"strings"

	"studydash/internal/config"
	"studydash/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// NotesPane is a free-form scratch pad. Edits are written back one
// second after the last keystroke, and immediately on leaving edit
// mode or quitting.
type NotesPane struct {
	store  *storage.Storage
	styles *Styles
	keys   NotesKeyMap
	input  InputKeyMap

	focused bool
	width   int
	height  int

	area    textarea.Model
	editing bool
	dirty   bool
	seq     int
	loaded  bool
}

// NewNotesPane creates the notes pane.
func NewNotesPane(store *storage.Storage, styles *Styles, keysCfg *config.KeysConfig) *NotesPane {
	area := textarea.New()
	area.Placeholder = "Jot something down…"
	area.ShowLineNumbers = false
	area.CharLimit = 0

	return &NotesPane{
		store:  store,
		styles: styles,
		keys:   NewNotesKeyMap(keysCfg),
		input:  NewInputKeyMap(keysCfg),
		area:   area,
	}
}

// Init loads the saved notes.
func (p *NotesPane) Init() tea.Cmd {
	return loadNotesCmd(p.store)
}

// SetSize updates the pane dimensions.
func (p *NotesPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.area.SetWidth(max(width-6, 10))
	p.area.SetHeight(max(height-4, 3))
}

// SetFocused sets keyboard focus. Losing focus leaves edit mode and
// flushes pending changes.
func (p *NotesPane) SetFocused(focused bool) tea.Cmd {
	p.focused = focused
	if !focused && p.editing {
		return p.stopEditing()
	}
	return nil
}

// IsEditing reports whether keystrokes go to the textarea.
func (p *NotesPane) IsEditing() bool {
	return p.editing
}

// Flush immediately writes the pad if it has unsaved changes. Used on
// quit so the last keystrokes are not lost to the debounce window.
func (p *NotesPane) Flush() error {
	if !p.dirty {
		return nil
	}
	p.dirty = false
	return p.store.SaveNotes(p.area.Value())
}

// stopEditing leaves edit mode, flushing any pending write.
func (p *NotesPane) stopEditing() tea.Cmd {
	p.editing = false
	p.area.Blur()
	if p.dirty {
		p.dirty = false
		return saveNotesCmd(p.store, p.area.Value())
	}
	return nil
}

// Update handles messages for the notes pane.
func (p *NotesPane) Update(msg tea.Msg) (*NotesPane, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		if msg.err == nil {
			p.area.SetValue(msg.notes)
			p.loaded = true
			p.dirty = false
		}
		return p, nil

	case notesFlushMsg:
		// Only the newest edit's timer may flush.
		if msg.seq == p.seq && p.dirty {
			p.dirty = false
			return p, saveNotesCmd(p.store, p.area.Value())
		}
		return p, nil

	case notesSavedMsg:
		return p, nil

	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		if p.editing {
			return p.updateEditing(msg)
		}
		if key.Matches(msg, p.keys.Edit) {
			p.editing = true
			cmd := p.area.Focus()
			return p, cmd
		}
		return p, nil
	}

	return p, nil
}

// updateEditing feeds keystrokes to the textarea and re-arms the
// debounce timer on every change.
func (p *NotesPane) updateEditing(msg tea.KeyMsg) (*NotesPane, tea.Cmd) {
	if key.Matches(msg, p.input.Cancel) {
		return p, p.stopEditing()
	}

	before := p.area.Value()
	var cmd tea.Cmd
	p.area, cmd = p.area.Update(msg)

	if p.area.Value() != before {
		p.dirty = true
		p.seq++
		return p, tea.Batch(cmd, debounceNotesCmd(p.seq))
	}
	return p, cmd
}

// View renders the notes pane.
func (p *NotesPane) View() string {
	var b strings.Builder

	titleStyle := p.styles.PaneTitle
	borderStyle := p.styles.Pane
	if p.focused {
		titleStyle = p.styles.PaneTitleFocused
		borderStyle = p.styles.PaneFocused
	}

	b.WriteString(titleStyle.Render("NOTES"))
	switch {
	case p.dirty:
		b.WriteString(p.styles.NotesDirty.Render("  ● unsaved"))
	case p.editing:
		b.WriteString(p.styles.NotesSaved.Render("  editing"))
	}
	b.WriteString("\n")

	if p.editing {
		b.WriteString(p.area.View())
		b.WriteString("\n")
		b.WriteString(p.styles.HelpDesc.Render("esc done"))
	} else if strings.TrimSpace(p.area.Value()) == "" {
		b.WriteString(p.styles.EmptyHint.Render("Empty pad. Press 'i' to write."))
	} else {
		b.WriteString(p.renderPreview())
	}

	return borderStyle.Width(max(p.width-2, 10)).Render(b.String())
}

// renderPreview shows the pad read-only, clipped to the pane height.
func (p *NotesPane) renderPreview() string {
	lines := strings.Split(p.area.Value(), "\n")
	maxVisible := max(p.height-4, 1)

	var b strings.Builder
	for i, line := range lines {
		if i >= maxVisible {
			b.WriteString(p.styles.EmptyHint.Render("…"))
			break
		}
		b.WriteString(truncateText(line, max(p.width-6, 10)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
