package reportlay

import (
	"fmt"
	"os"
	"path/filepath"
)

// continuationOffset is how far below the top page edge the continuation
// header baseline sits, inside the top margin band so it consumes no
// cursor room.
const continuationOffset = 30.0

// engine owns the transient per-render state: the canvas, the cursor, and
// the active text style that must survive page breaks. One engine serves
// exactly one render call.
type engine struct {
	canvas Canvas
	cur    cursor
	cfg    documentConfig

	// active is re-applied to the canvas immediately after every page
	// open, so content resumed after a break keeps the style that was in
	// effect before it.
	active   Style
	pageOpen bool

	section  int
	blockIdx int
}

func newEngine(c Canvas, cfg documentConfig) *engine {
	return &engine{
		canvas: c,
		cur:    newCursor(cfg.pageHeight, cfg.topMargin, cfg.bottomMargin),
		cfg:    cfg,
		active: cfg.theme.Style(RoleBody),
	}
}

// setStyle applies s to the canvas and records it as the active style.
func (e *engine) setStyle(s Style) {
	e.active = s
	e.applyStyle(s)
}

// applyStyle applies s to the canvas without recording it; used for
// decorations (footer, continuation header, table rows) that must not
// disturb style continuity.
func (e *engine) applyStyle(s Style) {
	e.canvas.SetFont(s.Family, s.Weight, s.Size)
	e.canvas.SetTextColor(s.Color)
}

// openPage starts a new physical page, resets the cursor, and
// re-establishes the active style. Pages opened by a mid-render break also
// carry the continuation header.
func (e *engine) openPage(continued bool) {
	e.canvas.AddPage()
	e.cur.reset()
	e.pageOpen = true
	if continued && e.cfg.continued != "" {
		e.applyStyle(e.cfg.theme.Style(RoleContinuation))
		e.canvas.Text(e.cfg.leftMargin, e.cfg.pageHeight-continuationOffset, e.cfg.continued)
	}
	e.applyStyle(e.active)
}

// finalizePage draws the footer and closes the current page. Every physical
// page, including the last, passes through here exactly once.
func (e *engine) finalizePage() {
	if !e.pageOpen {
		return
	}
	if e.cfg.footerText != "" {
		e.applyStyle(e.cfg.theme.Style(RoleFooter))
		e.canvas.TextCentered(e.cfg.pageWidth/2, e.cfg.footerOffset, e.cfg.footerText)
	}
	e.pageOpen = false
}

// breakPage finalizes the current page and opens the next one as a
// continuation.
func (e *engine) breakPage() {
	e.finalizePage()
	e.openPage(true)
}

// reserve runs the advance / break / retry-once protocol shared by section
// titles and atomic blocks. A height that still does not fit on the fresh
// page can never fit anywhere and is fatal.
func (e *engine) reserve(h float64) (placement, error) {
	if p := e.cur.advance(h); p.fits {
		return p, nil
	}
	e.breakPage()
	if p := e.cur.advance(h); p.fits {
		return p, nil
	}
	return placement{}, &BlockTooLargeError{
		Section: e.section,
		Block:   e.blockIdx,
		Height:  h,
		Usable:  e.cur.usable(),
	}
}

// placeSection draws the section title at the current cursor position and
// then each block in document order.
func (e *engine) placeSection(idx int, s Section) error {
	e.section = idx
	if !e.pageOpen {
		e.openPage(false)
	}
	if s.Title != "" {
		heading := e.cfg.theme.Style(RoleHeading)
		e.blockIdx = -1
		p, err := e.reserve(heading.Size * 1.8)
		if err != nil {
			return err
		}
		e.setStyle(heading)
		e.canvas.Text(e.cfg.leftMargin, p.drawY, s.Title)
	}
	for i, b := range s.Blocks {
		e.blockIdx = i
		if err := e.placeBlock(b); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) placeBlock(b Block) error {
	switch blk := b.(type) {
	case Table:
		return e.placeTable(blk)
	case TextLines:
		p, err := e.reserve(blk.Height())
		if err != nil {
			return err
		}
		e.drawText(blk, p.drawY)
		return nil
	case Image:
		p, err := e.reserve(blk.Height())
		if err != nil {
			return err
		}
		e.drawImage(blk, p.drawY)
		return nil
	default:
		return newLayoutError("placeBlock", fmt.Errorf("unsupported block type %T", b))
	}
}

func (e *engine) blockX(x float64) float64 {
	if x == 0 {
		return e.cfg.leftMargin
	}
	return x
}

func (e *engine) drawText(b TextLines, top float64) {
	e.setStyle(b.Style)
	x := e.blockX(b.X)
	y := top
	for _, line := range b.Lines {
		e.canvas.Text(x, y, line)
		y -= b.LineHeight
	}
}

func (e *engine) drawImage(b Image, top float64) {
	x := e.blockX(b.X)
	if e.cfg.placeholder {
		if _, err := os.Stat(b.Src); err != nil {
			e.drawPlaceholder(b, x, top)
			return
		}
	}
	e.canvas.Image(b.Src, x, top, b.Size.Wd, b.Size.Ht)
}

// drawPlaceholder stands in for a chart raster that was never produced: a
// light gray box with a caption naming the missing file.
func (e *engine) drawPlaceholder(b Image, x, top float64) {
	e.canvas.SetFillColor(RGBColor{R: 204, G: 204, B: 204})
	e.canvas.Rect(x, top, b.Size.Wd, b.Size.Ht, true)
	e.applyStyle(Style{Family: "Helvetica", Size: 10, Color: RGBColor{R: 102, G: 102, B: 102}})
	e.canvas.TextCentered(x+b.Size.Wd/2, top-b.Size.Ht/2, "Image not available: "+filepath.Base(b.Src))
	e.applyStyle(e.active)
}

// placeTable lays a table out row by row. Each row is offered to the cursor
// individually; on overflow the page breaks and the header row is drawn
// again before the remaining data rows. The first row on every page is
// reserved together with the header so a header is never orphaned at a
// page bottom.
func (e *engine) placeTable(t Table) error {
	rowH := t.RowHeight
	if rowH <= 0 {
		rowH = e.cfg.lineHeight
	}
	x := e.blockX(t.X)

	hasHeader := len(t.Header) > 0
	minimum := rowH
	if hasHeader {
		minimum += rowH
	}

	if len(t.Rows) == 0 {
		if !hasHeader {
			return nil
		}
		p, err := e.reserve(rowH)
		if err != nil {
			return err
		}
		e.drawTableHeader(t, x, p.drawY, rowH)
		e.applyStyle(e.active)
		return nil
	}

	headerDrawn := !hasHeader
	for _, row := range t.Rows {
		need := rowH
		if !headerDrawn {
			need += rowH
		}
		p := e.cur.advance(need)
		if !p.fits {
			e.breakPage()
			headerDrawn = !hasHeader
			need = rowH
			if !headerDrawn {
				need += rowH
			}
			p = e.cur.advance(need)
			if !p.fits {
				return &BlockTooLargeError{
					Section: e.section,
					Block:   e.blockIdx,
					Height:  minimum,
					Usable:  e.cur.usable(),
				}
			}
		}
		y := p.drawY
		if !headerDrawn {
			e.drawTableHeader(t, x, y, rowH)
			headerDrawn = true
			y -= rowH
		}
		e.drawTableRow(row, t.ColumnWidths, x, y, rowH, e.cfg.theme.Style(RoleTableCell))
	}
	e.applyStyle(e.active)
	return nil
}

func (e *engine) drawTableHeader(t Table, x, top, rowH float64) {
	style := e.cfg.theme.Style(RoleTableHeader)
	e.drawTableRow(t.Header, t.ColumnWidths, x, top, rowH, style)

	total := 0.0
	for _, w := range t.ColumnWidths {
		total += w
	}
	e.canvas.SetDrawColor(style.Color)
	e.canvas.Line(x, top-rowH+2, x+total, top-rowH+2)
}

func (e *engine) drawTableRow(cells []string, widths []float64, x, top, rowH float64, s Style) {
	e.applyStyle(s)
	baseline := top - rowH + 4
	cx := x
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		e.canvas.Text(cx, baseline, cell)
		cx += widths[i]
	}
}

// finish finalizes the last page and surfaces any sticky canvas error.
func (e *engine) finish() error {
	e.finalizePage()
	return e.canvas.Error()
}
