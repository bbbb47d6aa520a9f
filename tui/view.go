package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.viewport.View() + "\n" + m.statusBar()
}

// refresh rebuilds the viewport content: real surface lines interleaved with
// view-only decoration rows above each section, cursor line highlighted, and
// the viewport scrolled so the cursor stays visible.
func (m *Model) refresh() {
	buf, ok := m.activeBuffer()
	if !ok {
		m.viewport.SetContent("no surface open")
		return
	}
	surf, ok := m.activeSurface()
	if !ok {
		m.viewport.SetContent("no surface open")
		return
	}
	surf.ResolveBounds()

	// Decoration rows indexed by the surface row they precede.
	decor := make(map[int]string)
	for _, sec := range surf.Sections() {
		if sec.Span() <= 0 {
			continue
		}
		decor[sec.BufferStart] = sec.Decoration()
	}

	st := m.cfg.Style
	cursor := buf.CursorRow()
	cursorDisplay := 0

	var rows []string
	for row, line := range buf.Lines() {
		row++ // 1-based
		if d, ok := decor[row]; ok {
			rows = append(rows, st.Decoration.Render(m.decorationLine(d)))
		}
		switch {
		case m.mode == modeEdit && row == cursor:
			cursorDisplay = len(rows)
			rows = append(rows, st.CursorLine.Render(m.editLine()))
		case row == cursor:
			cursorDisplay = len(rows)
			rows = append(rows, st.CursorLine.Render(padLine(line, m.width)))
		case row == 1:
			rows = append(rows, st.Header.Render(line))
		default:
			rows = append(rows, st.Text.Render(line))
		}
	}

	m.viewport.SetContent(strings.Join(rows, "\n"))
	m.followCursor(cursorDisplay)
}

func (m *Model) followCursor(displayRow int) {
	top := m.viewport.YOffset
	height := m.viewport.Height
	if height <= 0 {
		return
	}
	if displayRow < top {
		m.viewport.SetYOffset(displayRow)
	} else if displayRow >= top+height {
		m.viewport.SetYOffset(displayRow - height + 1)
	}
}

// decorationLine fills the decoration text with a rule out to the window
// width, in the style of a folded-region heading.
func (m *Model) decorationLine(text string) string {
	label := "── " + text + " "
	pad := m.width - runewidth.StringWidth(label)
	if pad <= 0 {
		return runewidth.Truncate(label, maxInt(m.width, 0), "")
	}
	return label + strings.Repeat("─", pad)
}

// editLine renders the line under edit with a visible cursor cell.
func (m *Model) editLine() string {
	before := string(m.input[:m.inputCol])
	after := string(m.input[m.inputCol:])
	cell := "█"
	if after != "" {
		cell = ""
	}
	return padLine(before+cell+after, m.width)
}

func padLine(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func (m Model) statusBar() string {
	st := m.cfg.Style

	left := " " + m.active
	if buf, ok := m.activeBuffer(); ok && buf.Dirty() {
		left += " " + st.Dirty.Render("[+]")
	}
	if m.mode == modeEdit {
		left += " -- EDIT --"
	}

	msg := m.status
	bar := left
	if msg != "" {
		bar += "  " + msg
	}
	bar = padLine(bar, m.width)
	if m.statusErr {
		return st.StatusErr.Render(bar)
	}
	return st.StatusBar.Render(bar)
}
