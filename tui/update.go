package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/strata/surface"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = maxInt(msg.Height-1, 0) // one row for the status bar
		m.ready = true
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeEdit {
			return m.updateEditKey(msg)
		}
		return m.updateViewKey(msg)
	}
	return m, nil
}

func (m Model) updateViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.cfg.KeyMap
	buf, ok := m.activeBuffer()
	if !ok {
		if key.Matches(msg, km.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit

	case key.Matches(msg, km.Up):
		buf.SetCursorRow(buf.CursorRow() - 1)
	case key.Matches(msg, km.Down):
		buf.SetCursorRow(buf.CursorRow() + 1)
	case key.Matches(msg, km.Top):
		buf.SetCursorRow(1)
	case key.Matches(msg, km.Bottom):
		buf.SetCursorRow(buf.LineCount())

	case key.Matches(msg, km.Edit):
		m.mode = modeEdit
		m.input = []rune(buf.Line(buf.CursorRow()))
		m.inputCol = len(m.input)

	case key.Matches(msg, km.OpenBelow):
		buf.InsertLines(buf.CursorRow()+1, "")
		buf.SetCursorRow(buf.CursorRow() + 1)
		m.mode = modeEdit
		m.input = nil
		m.inputCol = 0

	case key.Matches(msg, km.OpenAbove):
		// Row 1 is the surface header; never insert above it.
		row := maxInt(buf.CursorRow(), 2)
		buf.InsertLines(row, "")
		buf.SetCursorRow(row)
		m.mode = modeEdit
		m.input = nil
		m.inputCol = 0

	case key.Matches(msg, km.DeleteLine):
		if buf.CursorRow() > 1 {
			buf.RemoveLines(buf.CursorRow(), 1)
		}

	case key.Matches(msg, km.Save):
		m.save()

	case key.Matches(msg, km.Grow):
		m.resize(m.cfg.ContextStep)
	case key.Matches(msg, km.Shrink):
		m.resize(-m.cfg.ContextStep)

	case key.Matches(msg, km.NextSurface):
		m.nextSurface()
	}

	m.refresh()
	return m, nil
}

func (m Model) updateEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.cfg.KeyMap
	buf, ok := m.activeBuffer()
	if !ok {
		m.mode = modeView
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Commit):
		buf.SetLine(buf.CursorRow(), string(m.input))
		m.mode = modeView
	case key.Matches(msg, km.Cancel):
		m.mode = modeView
	case key.Matches(msg, km.Backspace):
		if m.inputCol > 0 {
			m.input = append(m.input[:m.inputCol-1], m.input[m.inputCol:]...)
			m.inputCol--
		}
	case key.Matches(msg, km.CursorLeft):
		if m.inputCol > 0 {
			m.inputCol--
		}
	case key.Matches(msg, km.CursorRight):
		if m.inputCol < len(m.input) {
			m.inputCol++
		}
	case key.Matches(msg, km.LineHome):
		m.inputCol = 0
	case key.Matches(msg, km.LineEnd):
		m.inputCol = len(m.input)
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			runes := msg.Runes
			if msg.Type == tea.KeySpace {
				runes = []rune{' '}
			}
			rest := append([]rune(nil), m.input[m.inputCol:]...)
			m.input = append(append(m.input[:m.inputCol], runes...), rest...)
			m.inputCol += len(runes)
		}
	}

	m.refresh()
	return m, nil
}

// save is the save-intercept path: the explicit save key routes to the
// Manager, identified by the active surface's name.
func (m *Model) save() {
	changed, err := m.mgr.Save(m.active)
	switch {
	case err != nil:
		m.setError(err.Error())
	case len(changed) == 0:
		m.setStatus("no changes")
	default:
		m.setStatus(fmt.Sprintf("wrote %s", strings.Join(changed, ", ")))
	}
}

func (m *Model) resize(delta int) {
	surf, ok := m.activeSurface()
	if !ok {
		return
	}
	surf.ResolveBounds()
	buf, _ := m.activeBuffer()
	row := buf.CursorRow()
	_, idx, ok := surf.SectionAt(row)
	if !ok {
		m.setError("no section under cursor")
		return
	}
	if err := surf.Resize(idx, delta, row); err != nil {
		if errors.Is(err, surface.ErrInvalidSectionState) {
			m.setError("cannot resize: " + err.Error())
		} else {
			m.setError(err.Error())
		}
		return
	}
	sec := surf.Sections()[idx]
	m.setStatus(fmt.Sprintf("%s now %d-%d", sec.Filename, sec.FileStart, sec.FileEnd))
}

func (m *Model) nextSurface() {
	names := m.mgr.Names()
	if len(names) < 2 {
		return
	}
	for i, n := range names {
		if n == m.active {
			m.active = names[(i+1)%len(names)]
			m.setStatus("switched to " + m.active)
			return
		}
	}
	m.active = names[0]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
