package reportlay

// cursor tracks the vertical write position within the current page's
// usable area. Coordinates are bottom-origin: y starts at
// pageHeight-topMargin on a fresh page and only decreases as content is
// placed, never dropping below bottomMargin.
type cursor struct {
	y          float64
	top        float64
	bottom     float64
	pageHeight float64
}

// placement is the result of offering a block height to the cursor.
type placement struct {
	fits  bool
	drawY float64 // top edge to draw at; valid only when fits
}

func newCursor(pageHeight, top, bottom float64) cursor {
	c := cursor{top: top, bottom: bottom, pageHeight: pageHeight}
	c.reset()
	return c
}

// reset places the cursor at the top of a fresh page. Called exactly once
// per page.
func (c *cursor) reset() {
	c.y = c.pageHeight - c.top
}

// usable is the content room per page: page height minus both margins.
func (c *cursor) usable() float64 {
	return c.pageHeight - c.top - c.bottom
}

// advance reserves h points of vertical room. When the content fits, drawY
// is the top edge to draw at and the cursor moves down past it. When it
// does not fit the cursor is left untouched; the caller must break the page
// before retrying.
func (c *cursor) advance(h float64) placement {
	if c.y-h >= c.bottom {
		p := placement{fits: true, drawY: c.y}
		c.y -= h
		return p
	}
	return placement{}
}
