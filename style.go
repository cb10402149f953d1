package reportlay

// RGBColor represents an RGB color value.
type RGBColor struct {
	R, G, B int
}

// Style bundles the font family, weight, size, and color applied to a run of
// text. Styles are value types: they are copied into blocks and compared by
// value.
type Style struct {
	Family string  // Helvetica, Courier, Times
	Weight string  // "" (regular), "B" (bold), "I" (italic), "BI"
	Size   float64 // in points
	Color  RGBColor
}

// Role names a themed text slot in a document.
type Role string

// Roles referenced by the engine and the Document builder.
const (
	RoleTitle        Role = "title"
	RoleHeading      Role = "heading"
	RoleBody         Role = "body"
	RoleFooter       Role = "footer"
	RoleContinuation Role = "continuation"
	RoleTableHeader  Role = "tableHeader"
	RoleTableCell    Role = "tableCell"
)

// requiredRoles are the roles the engine draws with on its own. A theme
// missing any of them is rejected before rendering begins.
var requiredRoles = []Role{
	RoleHeading,
	RoleBody,
	RoleFooter,
	RoleContinuation,
	RoleTableHeader,
	RoleTableCell,
}

// Theme maps roles to styles.
type Theme map[Role]Style

// DefaultTheme returns the standard report theme: deep blue headings, dark
// gray body text, and a small gray italic footer.
func DefaultTheme() Theme {
	primary := RGBColor{R: 30, G: 77, B: 121}
	body := RGBColor{R: 51, G: 51, B: 51}
	muted := RGBColor{R: 102, G: 102, B: 102}
	return Theme{
		RoleTitle:        {Family: "Helvetica", Weight: "B", Size: 18, Color: primary},
		RoleHeading:      {Family: "Helvetica", Weight: "B", Size: 16, Color: primary},
		RoleBody:         {Family: "Helvetica", Size: 10, Color: body},
		RoleFooter:       {Family: "Helvetica", Weight: "I", Size: 8, Color: muted},
		RoleContinuation: {Family: "Helvetica", Weight: "B", Size: 16, Color: primary},
		RoleTableHeader:  {Family: "Helvetica", Weight: "B", Size: 10, Color: primary},
		RoleTableCell:    {Family: "Helvetica", Size: 10, Color: body},
	}
}

// Style returns the style for role, falling back to the body style when the
// role is not present in the theme.
func (t Theme) Style(role Role) Style {
	if s, ok := t[role]; ok {
		return s
	}
	return t[RoleBody]
}
