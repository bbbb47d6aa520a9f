package host

import (
	"fmt"

	"github.com/iw2rmb/strata/surface"
)

// Host owns named buffers. It implements surface.Host.
type Host struct {
	bufs  map[string]*Buffer
	order []string
}

func New() *Host {
	return &Host{bufs: make(map[string]*Buffer)}
}

func (h *Host) CreateBuffer(name string) (surface.Buffer, error) {
	if _, ok := h.bufs[name]; ok {
		return nil, fmt.Errorf("buffer %q already exists", name)
	}
	b := &Buffer{name: name, cursor: 1}
	h.bufs[name] = b
	h.order = append(h.order, name)
	return b, nil
}

func (h *Host) Buffer(name string) (surface.Buffer, bool) {
	b, ok := h.bufs[name]
	if !ok {
		return nil, false
	}
	return b, true
}

// Get returns the concrete buffer, for callers that need the editing
// operations beyond the surface.Buffer interface.
func (h *Host) Get(name string) (*Buffer, bool) {
	b, ok := h.bufs[name]
	return b, ok
}

func (h *Host) Buffers() []string {
	return append([]string(nil), h.order...)
}

func (h *Host) RemoveBuffer(name string) {
	b, ok := h.bufs[name]
	if !ok {
		return
	}
	b.ClearAnchors()
	delete(h.bufs, name)
	for i, n := range h.order {
		if n == name {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}
