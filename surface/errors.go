package surface

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Open and layout errors
var (
	// ErrEmptyInputSet indicates that no readable fragment remained after
	// laying out a spec list, so no surface was (or can stay) assembled.
	ErrEmptyInputSet = errors.New("no readable sections")

	// ErrSurfaceExists indicates that a surface with that name is already
	// open.
	ErrSurfaceExists = errors.New("surface already exists")

	// ErrNoSurface indicates that no surface with that name is open.
	ErrNoSurface = errors.New("no such surface")
)

// Section state errors
var (
	// ErrInvalidSectionState indicates a resize that cannot apply: the
	// target section is Full, the index is out of range, or the surface has
	// unsaved edits. The operation performs no mutation.
	ErrInvalidSectionState = errors.New("invalid section state")
)

// SaveError reports a save pass in which one or more files failed to read or
// write. The pass still attempted every other section, and the surface's
// dirty flag was cleared regardless.
type SaveError struct {
	Failed map[string]error
}

func (e *SaveError) Error() string {
	names := make([]string, 0, len(e.Failed))
	for name := range e.Failed {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("save failed for %s", strings.Join(names, ", "))
}
