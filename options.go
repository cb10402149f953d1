package reportlay

// Letter page dimensions in points, the long-standing default for reports.
const (
	LetterWidth  = 612.0
	LetterHeight = 792.0
)

// Option is a functional option for configuring a new Document via New.
type Option func(*documentConfig)

type documentConfig struct {
	pageWidth    float64
	pageHeight   float64
	topMargin    float64
	bottomMargin float64
	leftMargin   float64
	lineHeight   float64
	footerText   string
	footerOffset float64 // footer baseline distance from the page bottom
	continued    string  // continuation header text; "" disables it
	placeholder  bool    // draw a placeholder box for missing image files
	theme        Theme
}

func defaultConfig() documentConfig {
	return documentConfig{
		pageWidth:    LetterWidth,
		pageHeight:   LetterHeight,
		topMargin:    50,
		bottomMargin: 50,
		leftMargin:   50,
		lineHeight:   15,
		footerOffset: 20,
		continued:    "Continued",
		placeholder:  true,
		theme:        DefaultTheme(),
	}
}

// WithPageSize sets the page dimensions in points.
// The default is US Letter (612x792).
func WithPageSize(width, height float64) Option {
	return func(c *documentConfig) {
		c.pageWidth = width
		c.pageHeight = height
	}
}

// WithMargins sets the top, bottom, and left margins in points.
func WithMargins(top, bottom, left float64) Option {
	return func(c *documentConfig) {
		c.topMargin = top
		c.bottomMargin = bottom
		c.leftMargin = left
	}
}

// WithLineHeight sets the default baseline-to-baseline distance for text
// and table rows, in points.
func WithLineHeight(h float64) Option {
	return func(c *documentConfig) {
		c.lineHeight = h
	}
}

// WithFooter sets the footer text drawn centered near the bottom of every
// finalized page. An empty footer still finalizes pages but draws nothing.
func WithFooter(text string) Option {
	return func(c *documentConfig) {
		c.footerText = text
	}
}

// WithFooterOffset sets the footer baseline distance from the page bottom,
// in points.
func WithFooterOffset(offset float64) Option {
	return func(c *documentConfig) {
		c.footerOffset = offset
	}
}

// WithContinuationHeader sets the header text redrawn at the top of every
// page opened by a mid-section break. An empty string disables the header.
func WithContinuationHeader(text string) Option {
	return func(c *documentConfig) {
		c.continued = text
	}
}

// WithMissingImagePlaceholder controls whether a gray placeholder box with
// a caption is drawn in place of an image whose file does not exist. It is
// enabled by default; when disabled, a missing file surfaces as a canvas
// error from Render.
func WithMissingImagePlaceholder(enabled bool) Option {
	return func(c *documentConfig) {
		c.placeholder = enabled
	}
}

// WithTheme replaces the whole document theme. The theme must cover every
// role the engine draws with; New rejects incomplete themes.
func WithTheme(t Theme) Option {
	return func(c *documentConfig) {
		c.theme = t
	}
}

// WithStyle overrides the style for a single role in the document theme.
func WithStyle(role Role, s Style) Option {
	return func(c *documentConfig) {
		theme := make(Theme, len(c.theme)+1)
		for r, rs := range c.theme {
			theme[r] = rs
		}
		theme[role] = s
		c.theme = theme
	}
}

// validate checks the configuration eagerly so failures surface at
// construction time, before any drawing begins.
func (c *documentConfig) validate() error {
	switch {
	case c.pageWidth <= 0:
		return &ConfigError{Field: "pageWidth", Reason: "must be positive"}
	case c.pageHeight <= 0:
		return &ConfigError{Field: "pageHeight", Reason: "must be positive"}
	case c.topMargin <= 0:
		return &ConfigError{Field: "topMargin", Reason: "must be positive"}
	case c.bottomMargin <= 0:
		return &ConfigError{Field: "bottomMargin", Reason: "must be positive"}
	case c.leftMargin <= 0:
		return &ConfigError{Field: "leftMargin", Reason: "must be positive"}
	case c.lineHeight <= 0:
		return &ConfigError{Field: "lineHeight", Reason: "must be positive"}
	case c.footerOffset < 0:
		return &ConfigError{Field: "footerOffset", Reason: "must not be negative"}
	case c.topMargin+c.bottomMargin >= c.pageHeight:
		return &ConfigError{Field: "margins", Reason: "top and bottom margins leave no usable page height"}
	case c.leftMargin >= c.pageWidth:
		return &ConfigError{Field: "leftMargin", Reason: "exceeds page width"}
	}
	for _, role := range requiredRoles {
		if _, ok := c.theme[role]; !ok {
			return &ConfigError{Field: "theme", Reason: "missing style for role " + string(role)}
		}
	}
	return nil
}
