package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/strata/host"
	"github.com/iw2rmb/strata/surface"
)

type mode int

const (
	modeView mode = iota
	modeEdit
)

// Config configures the surface browser.
type Config struct {
	Manager *surface.Manager
	Host    *host.Host
	Active  string // name of the surface to show first

	// ContextStep is how many lines a single grow/shrink key press resizes
	// by. Default 5.
	ContextStep int

	KeyMap KeyMap
	Style  Style
}

// Model is a Bubble Tea program browsing and editing Strata surfaces.
type Model struct {
	cfg Config

	mgr    *surface.Manager
	hst    *host.Host
	active string

	viewport viewport.Model
	ready    bool
	width    int
	height   int

	mode     mode
	input    []rune // line under edit
	inputCol int

	status    string
	statusErr bool
}

func New(cfg Config) Model {
	if cfg.ContextStep <= 0 {
		cfg.ContextStep = 5
	}
	if len(cfg.KeyMap.Up.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	return Model{
		cfg:      cfg,
		mgr:      cfg.Manager,
		hst:      cfg.Host,
		active:   cfg.Active,
		viewport: viewport.New(0, 0),
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Run opens the program on the configured surface.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) activeSurface() (*surface.Surface, bool) {
	return m.mgr.Get(m.active)
}

func (m *Model) activeBuffer() (*host.Buffer, bool) {
	return m.hst.Get(m.active)
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}
