package reportlay

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// Canvas is the drawing surface the layout engine draws on. All coordinates
// are bottom-origin points, matching the cursor: y grows upward from the
// bottom edge of the page, and text is positioned by its baseline.
//
// Implementations carry a sticky error: drawing calls never fail directly,
// and Error reports the first failure once layout is done.
type Canvas interface {
	// AddPage opens a new blank physical page.
	AddPage()
	// SetFont selects the font family, weight ("", "B", "I", "BI"), and
	// size in points for subsequent text.
	SetFont(family, weight string, size float64)
	// SetTextColor selects the color for subsequent text.
	SetTextColor(c RGBColor)
	// SetDrawColor selects the color for subsequent lines and rectangle
	// outlines.
	SetDrawColor(c RGBColor)
	// SetFillColor selects the color for subsequent filled rectangles.
	SetFillColor(c RGBColor)
	// Text draws s with its baseline starting at (x, y).
	Text(x, y float64, s string)
	// TextCentered draws s centered horizontally on x, baseline at y.
	TextCentered(x, y float64, s string)
	// Image draws the raster file at src with its top edge at y.
	Image(src string, x, y, w, h float64)
	// Line draws a straight line between the two points.
	Line(x1, y1, x2, y2 float64)
	// Rect draws a rectangle with its top edge at y, filled or outlined.
	Rect(x, y, w, h float64, fill bool)
	// PageCount reports the number of pages opened so far.
	PageCount() int
	// Error reports the first drawing failure, if any.
	Error() error
}

// PDFCanvas is the go-pdf/fpdf backed Canvas. It converts the engine's
// bottom-origin coordinates to fpdf's top-origin page space.
type PDFCanvas struct {
	pdf        *fpdf.Fpdf
	pageHeight float64
}

// NewPDFCanvas creates a PDF canvas with the given page size in points.
func NewPDFCanvas(width, height float64) *PDFCanvas {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: width, Ht: height},
	})
	// The layout engine owns pagination; fpdf must never break on its own.
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	return &PDFCanvas{pdf: pdf, pageHeight: height}
}

func (c *PDFCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *PDFCanvas) SetFont(family, weight string, size float64) {
	c.pdf.SetFont(family, weight, size)
}

func (c *PDFCanvas) SetTextColor(col RGBColor) {
	c.pdf.SetTextColor(col.R, col.G, col.B)
}

func (c *PDFCanvas) SetDrawColor(col RGBColor) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
}

func (c *PDFCanvas) SetFillColor(col RGBColor) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
}

func (c *PDFCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, c.pageHeight-y, s)
}

func (c *PDFCanvas) TextCentered(x, y float64, s string) {
	c.pdf.Text(x-c.pdf.GetStringWidth(s)/2, c.pageHeight-y, s)
}

func (c *PDFCanvas) Image(src string, x, y, w, h float64) {
	c.pdf.ImageOptions(src, x, c.pageHeight-y, w, h, false, fpdf.ImageOptions{}, 0, "")
}

func (c *PDFCanvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, c.pageHeight-y1, x2, c.pageHeight-y2)
}

func (c *PDFCanvas) Rect(x, y, w, h float64, fill bool) {
	style := "D"
	if fill {
		style = "F"
	}
	c.pdf.Rect(x, c.pageHeight-y, w, h, style)
}

func (c *PDFCanvas) PageCount() int {
	return c.pdf.PageCount()
}

func (c *PDFCanvas) Error() error {
	return c.pdf.Error()
}

// Output writes the finished PDF to w. The canvas must not be drawn on
// afterwards.
func (c *PDFCanvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}
