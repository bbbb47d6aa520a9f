package surface

import "fmt"

const defaultHeader = "# Strata"

// Decorator produces the opaque decoration payload attached to a section's
// anchor. Hosts render it above the section; the core never interprets it.
type Decorator func(spec FileSpec) string

// Options configures a Surface.
type Options struct {
	Header   string    // first surface line; default "# Strata"
	Decorate Decorator // default: filename, plus window for Partial
}

func (o Options) withDefaults() Options {
	if o.Header == "" {
		o.Header = defaultHeader
	}
	if o.Decorate == nil {
		o.Decorate = defaultDecorate
	}
	return o
}

func defaultDecorate(spec FileSpec) string {
	if spec.Kind == Partial {
		return fmt.Sprintf("%s:%d-%d", spec.Filename, spec.FileStart, spec.FileEnd)
	}
	return spec.Filename
}

// Surface is one unified editable text area presenting fragments of several
// files. It exclusively owns its Section sequence and their anchors.
type Surface struct {
	name     string
	buf      Buffer
	fs       FS
	opt      Options
	sections []*Section
}

// Open assembles a new surface named name from specs. Unreadable files are
// skipped; if nothing remains, no buffer is created and ErrEmptyInputSet is
// returned.
func Open(host Host, fsys FS, name string, specs []FileSpec, opt Options) (*Surface, error) {
	s := &Surface{
		name: name,
		fs:   fsys,
		opt:  opt.withDefaults(),
	}

	frags, _, err := s.layout(specs)
	if err != nil {
		return nil, err
	}

	buf, err := host.CreateBuffer(name)
	if err != nil {
		return nil, err
	}
	s.buf = buf
	s.install(frags)
	return s, nil
}

func (s *Surface) Name() string { return s.name }

// Sections returns the surface's sections in registration order. The slice
// is shared; callers must not mutate it.
func (s *Surface) Sections() []*Section { return s.sections }

// Dirty reports whether the surface has unsaved edits.
func (s *Surface) Dirty() bool { return s.buf.Dirty() }

// CursorRow returns the host cursor's current 1-based row.
func (s *Surface) CursorRow() int { return s.buf.CursorRow() }

// Close destroys the surface's buffer and every anchor it owns.
func (s *Surface) Close(host Host) {
	host.RemoveBuffer(s.name)
	s.sections = nil
}

// fragment is one laid-out section before it is installed into the buffer.
type fragment struct {
	spec  FileSpec
	lines []string
}

// layout reads every spec fresh from disk and extracts its lines. Unreadable
// files are dropped. kept maps surviving fragments back to spec indexes.
func (s *Surface) layout(specs []FileSpec) (frags []fragment, kept []int, err error) {
	for i, spec := range specs {
		lines, rerr := s.fs.ReadLines(spec.Filename)
		if rerr != nil {
			continue
		}
		switch spec.Kind {
		case Full:
			if len(lines) == 0 {
				lines = []string{""}
			}
		case Partial:
			if len(lines) == 0 {
				continue
			}
			// Windows are clamped against the file's current length so a
			// range that went stale since it was computed cannot index past
			// the end.
			start := clampInt(spec.FileStart, 1, len(lines))
			end := clampInt(spec.FileEnd, start, len(lines))
			spec.FileStart, spec.FileEnd = start, end
			lines = lines[start-1 : end]
		}
		frags = append(frags, fragment{spec: spec, lines: append([]string(nil), lines...)})
		kept = append(kept, i)
	}
	if len(frags) == 0 {
		return nil, nil, ErrEmptyInputSet
	}
	return frags, kept, nil
}

// install replaces the buffer's content and anchors with the laid-out
// fragments and rebuilds the section sequence. The first fragment's content
// starts at line 2; line 1 is the header.
func (s *Surface) install(frags []fragment) {
	lines := make([]string, 0, 1)
	lines = append(lines, s.opt.Header)
	for _, f := range frags {
		lines = append(lines, f.lines...)
	}

	s.buf.ClearAnchors()
	s.buf.SetLines(lines)

	sections := make([]*Section, 0, len(frags))
	row := 1 // row of the line preceding the next fragment's first content line
	for _, f := range frags {
		sec := &Section{
			Filename:    f.spec.Filename,
			Kind:        f.spec.Kind,
			FileStart:   f.spec.FileStart,
			FileEnd:     f.spec.FileEnd,
			BufferStart: row + 1,
			BufferEnd:   row + len(f.lines),
		}
		sec.anchor = s.buf.CreateAnchor(row, s.opt.Decorate(f.spec))
		sections = append(sections, sec)
		row += len(f.lines)
	}
	s.sections = sections
}
