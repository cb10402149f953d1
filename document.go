package reportlay

import (
	"io"
	"os"
)

// Document is the top-level report: an ordered list of sections rendered
// onto a sequence of fixed-size pages. Build it with New, append sections
// in emission order, then call Render (or RenderFile) once the content is
// complete. Sections must not be added or modified after the first render.
type Document struct {
	cfg      documentConfig
	sections []*Section
	pages    int
}

// Section is a title plus an ordered list of content blocks. Create
// sections through Document.AddSection and fill them through the chained
// Add methods.
type Section struct {
	Title  string
	Blocks []Block

	doc *Document
}

// New creates an empty Document. The configuration is validated eagerly:
// invalid page geometry or an incomplete theme fails here, before any
// drawing begins.
func New(opts ...Option) (*Document, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Document{cfg: cfg}, nil
}

// Theme returns the document theme.
func (d *Document) Theme() Theme {
	return d.cfg.theme
}

// AddSection appends a new section and returns it for block chaining.
func (d *Document) AddSection(title string) *Section {
	s := &Section{Title: title, doc: d}
	d.sections = append(d.sections, s)
	return s
}

// AddText appends a body-styled text block using the document line height.
// Each argument is one already-wrapped line.
func (s *Section) AddText(lines ...string) *Section {
	return s.AddStyledText(s.doc.cfg.theme.Style(RoleBody), lines...)
}

// AddStyledText appends a text block drawn in the given style.
func (s *Section) AddStyledText(style Style, lines ...string) *Section {
	s.Blocks = append(s.Blocks, TextLines{
		Lines:      lines,
		Style:      style,
		LineHeight: s.doc.cfg.lineHeight,
	})
	return s
}

// AddImage appends an image block with its left edge at x (0 means the
// document left margin) and the given size in points.
func (s *Section) AddImage(src string, x, w, h float64) *Section {
	s.Blocks = append(s.Blocks, Image{Src: src, X: x, Size: SizeType{Wd: w, Ht: h}})
	return s
}

// AddTable appends a table block. A zero RowHeight resolves to the
// document line height.
func (s *Section) AddTable(t Table) *Section {
	if t.RowHeight <= 0 {
		t.RowHeight = s.doc.cfg.lineHeight
	}
	s.Blocks = append(s.Blocks, t)
	return s
}

// AddBlock appends an arbitrary block. Zero line and row heights resolve
// to the document line height.
func (s *Section) AddBlock(b Block) *Section {
	switch blk := b.(type) {
	case TextLines:
		if blk.LineHeight <= 0 {
			blk.LineHeight = s.doc.cfg.lineHeight
		}
		b = blk
	case Table:
		if blk.RowHeight <= 0 {
			blk.RowHeight = s.doc.cfg.lineHeight
		}
		b = blk
	}
	s.Blocks = append(s.Blocks, b)
	return s
}

// RenderTo lays the document out on an existing canvas. Most callers want
// Render or RenderFile; RenderTo exists for custom Canvas backends.
func (d *Document) RenderTo(c Canvas) error {
	if len(d.sections) == 0 {
		return ErrNoSections
	}
	eng := newEngine(c, d.cfg)
	for i, s := range d.sections {
		if err := eng.placeSection(i, *s); err != nil {
			return err
		}
	}
	if err := eng.finish(); err != nil {
		return newLayoutError("Render", err)
	}
	d.pages = c.PageCount()
	return nil
}

// Render lays the document out on a fresh PDF canvas and writes the
// finished artifact to w. Every call renders from scratch with its own
// canvas and cursor state, so rendering the same document twice produces
// identical output.
func (d *Document) Render(w io.Writer) error {
	c := NewPDFCanvas(d.cfg.pageWidth, d.cfg.pageHeight)
	if err := d.RenderTo(c); err != nil {
		return err
	}
	if err := c.Output(w); err != nil {
		return newLayoutError("Output", err)
	}
	return nil
}

// RenderFile renders the document into the named file. The file handle is
// acquired once, before layout, and closed on every path; on failure the
// partial file is removed so no truncated artifact survives.
func (d *Document) RenderFile(name string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return newLayoutError("RenderFile", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = newLayoutError("RenderFile", cerr)
		}
		if err != nil {
			os.Remove(name)
		}
	}()
	return d.Render(f)
}

// PageCount reports the number of physical pages produced by the most
// recent render. It is zero before the first render.
func (d *Document) PageCount() int {
	return d.pages
}
