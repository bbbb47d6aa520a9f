package surface

import "fmt"

// Manager is a registry of open surfaces sharing one host and filesystem.
// It is the entry point for the command layer: open a surface by spec list,
// look one up to switch to it, save through it, close it.
type Manager struct {
	host     Host
	fs       FS
	opt      Options
	surfaces map[string]*Surface
	order    []string
}

func NewManager(host Host, fsys FS, opt Options) *Manager {
	return &Manager{
		host:     host,
		fs:       fsys,
		opt:      opt,
		surfaces: make(map[string]*Surface),
	}
}

// Open assembles a new surface. The name must not be in use.
func (m *Manager) Open(name string, specs []FileSpec) (*Surface, error) {
	if _, ok := m.surfaces[name]; ok {
		return nil, fmt.Errorf("open %q: %w", name, ErrSurfaceExists)
	}
	s, err := Open(m.host, m.fs, name, specs, m.opt)
	if err != nil {
		return nil, err
	}
	m.surfaces[name] = s
	m.order = append(m.order, name)
	return s, nil
}

// Get returns the surface registered under name.
func (m *Manager) Get(name string) (*Surface, bool) {
	s, ok := m.surfaces[name]
	return s, ok
}

// Names returns the open surfaces' names in open order.
func (m *Manager) Names() []string {
	return append([]string(nil), m.order...)
}

// Save runs the save/splice pass for the named surface. It is the target of
// the host's save-intercept callback.
func (m *Manager) Save(name string) ([]string, error) {
	s, ok := m.surfaces[name]
	if !ok {
		return nil, fmt.Errorf("save %q: %w", name, ErrNoSurface)
	}
	return s.Save()
}

// Close destroys the named surface, its buffer, and its anchors.
func (m *Manager) Close(name string) error {
	s, ok := m.surfaces[name]
	if !ok {
		return fmt.Errorf("close %q: %w", name, ErrNoSurface)
	}
	s.Close(m.host)
	delete(m.surfaces, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// FullSpecs builds whole-file specs for an explicit file list.
func FullSpecs(files []string) []FileSpec {
	specs := make([]FileSpec, 0, len(files))
	for _, f := range files {
		specs = append(specs, FileSpec{Filename: f, Kind: Full})
	}
	return specs
}
