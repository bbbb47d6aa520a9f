package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/strata/host"
	"github.com/iw2rmb/strata/surface"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func newTestModel(t *testing.T, specs []surface.FileSpec) (Model, *host.Host) {
	t.Helper()
	h := host.New()
	mgr := surface.NewManager(h, surface.OSFS{}, surface.Options{})
	s, err := mgr.Open("main", specs)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	m := New(Config{Manager: mgr, Host: h, Active: s.Name()})
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, h
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEditLineAndSave(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "f.txt", "a\nb\nc\n")

	m, h := newTestModel(t, surface.FullSpecs([]string{f}))
	buf, _ := h.Get("main")

	// Move to "b" (surface row 3: header, a, b) and edit it.
	m = send(t, m, keyRunes("j"))
	m = send(t, m, keyRunes("j"))
	if got := buf.CursorRow(); got != 3 {
		t.Fatalf("cursor = %d, want 3", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // enter edit mode
	if m.mode != modeEdit {
		t.Fatal("expected edit mode")
	}
	m = send(t, m, keyRunes("!"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // commit
	if m.mode != modeView {
		t.Fatal("expected view mode after commit")
	}
	if !buf.Dirty() {
		t.Fatal("commit must dirty the buffer")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	data, err := os.ReadFile(f)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "a\nb!\nc\n" {
		t.Fatalf("file = %q, want %q", data, "a\nb!\nc\n")
	}
	if buf.Dirty() {
		t.Fatal("save must clear the dirty flag")
	}
	if m.statusErr {
		t.Fatalf("unexpected error status %q", m.status)
	}
}

func TestDeleteLineAndSaveSplices(t *testing.T) {
	dir := t.TempDir()
	var lines []string
	for _, n := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"} {
		lines = append(lines, n)
	}
	f := writeFile(t, dir, "d.txt", strings.Join(lines, "\n")+"\n")

	m, h := newTestModel(t, []surface.FileSpec{
		{Filename: f, Kind: surface.Partial, FileStart: 2, FileEnd: 8},
	})
	buf, _ := h.Get("main")

	// File line 5 sits on surface row 5 (window 2-8 starts at row 2).
	buf.SetCursorRow(5)
	m = send(t, m, keyRunes("d"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	data, _ := os.ReadFile(f)
	want := "1\n2\n3\n4\n6\n7\n8\n9\n10\n"
	if string(data) != want {
		t.Fatalf("file = %q, want %q", data, want)
	}
}

func TestResizeWhileDirtyReportsError(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "d.txt", "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n")

	m, h := newTestModel(t, []surface.FileSpec{
		{Filename: f, Kind: surface.Partial, FileStart: 2, FileEnd: 8},
	})
	buf, _ := h.Get("main")
	buf.SetCursorRow(3)
	buf.SetLine(3, "edited")

	m = send(t, m, keyRunes("+"))
	if !m.statusErr {
		t.Fatalf("status = %q, want resize rejection", m.status)
	}
}

func TestResizeGrowsWindow(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "d.txt", "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n")

	m, h := newTestModel(t, []surface.FileSpec{
		{Filename: f, Kind: surface.Partial, FileStart: 4, FileEnd: 6},
	})
	buf, _ := h.Get("main")
	buf.SetCursorRow(2) // first window row, start side

	m = send(t, m, keyRunes("+"))
	if m.statusErr {
		t.Fatalf("resize failed: %q", m.status)
	}
	mgr := m.mgr
	s, _ := mgr.Get("main")
	sec := s.Sections()[0]
	// Default step is 5; start side clamps at line 1.
	if sec.FileStart != 1 || sec.FileEnd != 6 {
		t.Fatalf("window = %d-%d, want 1-6", sec.FileStart, sec.FileEnd)
	}
}

func TestViewShowsHeaderAndDecoration(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "f.txt", "x\n")

	m, _ := newTestModel(t, surface.FullSpecs([]string{f}))
	view := m.View()
	if !strings.Contains(view, "# Strata") {
		t.Error("view missing surface header")
	}
	if !strings.Contains(view, filepath.Base(f)) {
		t.Error("view missing section decoration")
	}
}

func TestNextSurfaceCycles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a\n")
	b := writeFile(t, dir, "b.txt", "b\n")

	h := host.New()
	mgr := surface.NewManager(h, surface.OSFS{}, surface.Options{})
	if _, err := mgr.Open("one", surface.FullSpecs([]string{a})); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := mgr.Open("two", surface.FullSpecs([]string{b})); err != nil {
		t.Fatalf("Open: %v", err)
	}

	m := New(Config{Manager: mgr, Host: h, Active: "one"})
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.active != "two" {
		t.Fatalf("active = %q, want two", m.active)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.active != "one" {
		t.Fatalf("active = %q, want one", m.active)
	}
}
