package reporttpl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lvillar/reportlay"
)

// Render parses a JSON template and writes the resulting PDF to w.
func Render(w io.Writer, jsonTemplate []byte) error {
	var tpl Template
	if err := json.Unmarshal(jsonTemplate, &tpl); err != nil {
		return fmt.Errorf("reporttpl: parsing template: %w", err)
	}
	return RenderTemplate(w, &tpl)
}

// RenderTemplate renders a Template struct to a PDF written to w.
func RenderTemplate(w io.Writer, tpl *Template) error {
	doc, err := BuildDocument(tpl)
	if err != nil {
		return err
	}
	return doc.Render(w)
}

// BuildDocument translates a Template into a reportlay Document without
// rendering it. Useful for callers that want page counts or a different
// output path.
func BuildDocument(tpl *Template) (*reportlay.Document, error) {
	opts := documentOptions(tpl)

	doc, err := reportlay.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("reporttpl: %w", err)
	}

	for si, sec := range tpl.Sections {
		s := doc.AddSection(sec.Title)
		for bi, blk := range sec.Blocks {
			if err := addBlock(doc, s, blk); err != nil {
				return nil, fmt.Errorf("reporttpl: section %d block %d: %w", si+1, bi+1, err)
			}
		}
	}
	return doc, nil
}

func documentOptions(tpl *Template) []reportlay.Option {
	var opts []reportlay.Option
	if tpl.Footer != "" {
		opts = append(opts, reportlay.WithFooter(tpl.Footer))
	}
	if tpl.Continued != "" {
		opts = append(opts, reportlay.WithContinuationHeader(tpl.Continued))
	}
	if tpl.PageWidth > 0 && tpl.PageHeight > 0 {
		opts = append(opts, reportlay.WithPageSize(tpl.PageWidth, tpl.PageHeight))
	}
	if m := tpl.Margin; m != nil {
		opts = append(opts, reportlay.WithMargins(m.Top, m.Bottom, m.Left))
	}
	if tpl.LineHeight > 0 {
		opts = append(opts, reportlay.WithLineHeight(tpl.LineHeight))
	}
	for role, spec := range tpl.Styles {
		base := reportlay.DefaultTheme().Style(reportlay.Role(role))
		opts = append(opts, reportlay.WithStyle(reportlay.Role(role), mergeStyle(base, spec)))
	}
	return opts
}

func addBlock(doc *reportlay.Document, s *reportlay.Section, blk Block) error {
	switch blk.Type {
	case "text":
		style := textStyle(doc, blk)
		b := reportlay.TextLines{
			Lines:      blk.Lines,
			Style:      style,
			LineHeight: blk.LineHeight,
			X:          blk.X,
		}
		s.AddBlock(b)
	case "image":
		if blk.Src == "" {
			return fmt.Errorf("image block requires 'src' field")
		}
		s.AddImage(blk.Src, blk.X, blk.Width, blk.Height)
	case "table":
		s.AddTable(reportlay.Table{
			Header:       blk.Header,
			Rows:         blk.Rows,
			ColumnWidths: blk.ColumnWidths,
			RowHeight:    blk.RowHeight,
			X:            blk.X,
		})
	default:
		return fmt.Errorf("unknown block type %q", blk.Type)
	}
	return nil
}

// textStyle resolves a text block's style: an inline style wins over a
// named role, which wins over the document body style.
func textStyle(doc *reportlay.Document, blk Block) reportlay.Style {
	role := reportlay.RoleBody
	if blk.Role != "" {
		role = reportlay.Role(blk.Role)
	}
	base := doc.Theme().Style(role)
	if blk.Style == nil {
		return base
	}
	return mergeStyle(base, *blk.Style)
}

// mergeStyle overlays the set fields of spec onto base.
func mergeStyle(base reportlay.Style, spec Style) reportlay.Style {
	if spec.Family != "" {
		base.Family = spec.Family
	}
	if spec.Weight != "" {
		base.Weight = spec.Weight
	}
	if spec.Size > 0 {
		base.Size = spec.Size
	}
	if spec.Color != nil {
		base.Color = reportlay.RGBColor{R: spec.Color.R, G: spec.Color.G, B: spec.Color.B}
	}
	return base
}
