// Package reporttpl provides a JSON template DSL for paginated reports.
//
// It allows describing a sectioned report declaratively, which is easy for
// both humans and LLMs to generate, and renders it through the reportlay
// layout engine: automatic page breaks, a footer on every page, repeating
// table headers, and style continuity across breaks all come from the
// engine.
//
// Example JSON:
//
//	{
//	  "footer": "Generated by the insight pipeline",
//	  "sections": [{
//	    "title": "Executive Summary",
//	    "blocks": [
//	      {"type": "text", "lines": ["First finding.", "Second finding."]},
//	      {"type": "image", "src": "chart.png", "width": 500, "height": 200}
//	    ]
//	  }]
//	}
package reporttpl

// Template is the top-level description of an entire report.
type Template struct {
	Footer     string           `json:"footer,omitempty"`
	Continued  string           `json:"continued,omitempty"`  // continuation header text
	PageWidth  float64          `json:"pageWidth,omitempty"`  // points; default US Letter
	PageHeight float64          `json:"pageHeight,omitempty"` // points; default US Letter
	Margin     *Margin          `json:"margin,omitempty"`
	LineHeight float64          `json:"lineHeight,omitempty"`
	Styles     map[string]Style `json:"styles,omitempty"` // theme role overrides
	Sections   []Section        `json:"sections"`
}

// Margin defines the page margins in points.
type Margin struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Style specifies a font face and color.
type Style struct {
	Family string  `json:"family,omitempty"` // Helvetica, Courier, Times
	Weight string  `json:"weight,omitempty"` // "" (regular), "B", "I", "BI"
	Size   float64 `json:"size,omitempty"`
	Color  *Color  `json:"color,omitempty"`
}

// Color is an RGB color.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Section is a titled run of content blocks.
type Section struct {
	Title  string  `json:"title,omitempty"`
	Blocks []Block `json:"blocks"`
}

// Block is a single content block within a section. The Type field
// determines which other fields are relevant.
type Block struct {
	Type string `json:"type"` // text, image, table

	// Text content. Lines are already wrapped; each entry is one drawn
	// line. Role selects a theme style by name; Style overrides it.
	Lines      []string `json:"lines,omitempty"`
	Role       string   `json:"role,omitempty"`
	Style      *Style   `json:"style,omitempty"`
	LineHeight float64  `json:"lineHeight,omitempty"`

	// Position override shared by all block kinds. 0 means the left margin.
	X float64 `json:"x,omitempty"`

	// Image
	Src    string  `json:"src,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Table
	Header       []string   `json:"header,omitempty"`
	Rows         [][]string `json:"rows,omitempty"`
	ColumnWidths []float64  `json:"columnWidths,omitempty"`
	RowHeight    float64    `json:"rowHeight,omitempty"`
}
