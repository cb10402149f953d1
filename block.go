package reportlay

// SizeType holds a width and height in points.
type SizeType struct {
	Wd, Ht float64
}

// Block is one placeable unit of report content. The implementations are
// the closed set TextLines, Image, and Table.
type Block interface {
	// Height reports the vertical room the block consumes when placed.
	Height() float64

	block()
}

// TextLines is a run of pre-split text lines drawn in a single style.
// Lines are drawn exactly as supplied; the engine performs no wrapping or
// width measurement. The block is atomic: it is never split across pages.
type TextLines struct {
	Lines      []string
	Style      Style
	LineHeight float64 // baseline-to-baseline distance in points
	X          float64 // left edge; 0 means the document left margin
}

// Height is the number of lines times the line height.
func (b TextLines) Height() float64 {
	return float64(len(b.Lines)) * b.LineHeight
}

func (TextLines) block() {}

// Image places an already-rendered raster file. The engine never decodes
// the file; the size is supplied by the caller (package imageutil can derive
// it from the raster). The block is atomic: it is never split across pages.
type Image struct {
	Src  string
	X    float64 // left edge; 0 means the document left margin
	Size SizeType
}

// Height is the fixed image height supplied by the caller.
func (b Image) Height() float64 {
	return b.Size.Ht
}

func (Image) block() {}

// Table is a grid of text cells laid out at fixed column widths. Unlike
// TextLines and Image, a table is not atomic: rows are offered to the page
// one at a time, and the header row is drawn again at the top of every page
// the table spans.
type Table struct {
	Header       []string
	Rows         [][]string
	ColumnWidths []float64
	RowHeight    float64
	X            float64 // left edge; 0 means the document left margin
}

// Height is the row count, header included, times the row height. The
// estimate ignores repeated headers on continuation pages.
func (b Table) Height() float64 {
	n := len(b.Rows)
	if len(b.Header) > 0 {
		n++
	}
	return float64(n) * b.RowHeight
}

func (Table) block() {}
