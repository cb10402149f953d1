// Package reportlay is a paginated document-layout engine for PDF reports.
//
// Callers build a Document out of sections, where each section is a title
// followed by content blocks: pre-split text lines, already-rendered raster
// images, and simple tables. The engine flows the blocks onto fixed-size
// pages, breaking to a new page when a block does not fit, drawing the
// configured footer on every finalized page, and re-establishing the active
// font and color after each break so style state survives pagination.
//
// The engine deliberately does no typesetting: text is drawn line by line
// exactly as supplied (no wrapping or font metrics), and images are placed
// at caller-supplied sizes without being decoded. See package imageutil for
// raster sizing helpers.
//
// Example:
//
//	doc, err := reportlay.New(
//	    reportlay.WithFooter("Generated by the insight pipeline"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc.AddSection("Executive Summary").
//	    AddText("First finding.", "Second finding.").
//	    AddImage("survival_by_class.png", 50, 500, 200)
//
//	var buf bytes.Buffer
//	if err := doc.Render(&buf); err != nil {
//	    log.Fatal(err)
//	}
package reportlay
