package mcp

// RegisterDefaultResources adds the built-in documentation resources to the
// server. Resources use the report:// scheme.
func RegisterDefaultResources(s *Server) {
	s.AddResource(Resource{
		URI:         "report://template-schema",
		Name:        "Report Template Schema",
		Description: "Documentation for the JSON report template format accepted by create_report and report_info.",
		MIMEType:    "text/markdown",
		Handler:     handleSchemaResource,
	})

	s.AddResource(Resource{
		URI:         "report://example-template",
		Name:        "Example Report Template",
		Description: "A complete example template showing sections, text lines, images, and a table.",
		MIMEType:    "application/json",
		Handler:     handleExampleResource,
	})
}

const templateSchemaDoc = `# Report template format

A template is a JSON object:

- "footer" (string): text drawn centered near the bottom of every page.
- "continued" (string): header redrawn on pages opened by a page break.
- "pageWidth", "pageHeight" (points): default 612x792 (US Letter).
- "margin": {"top", "bottom", "left"} in points; default 50/50/50.
- "lineHeight" (points): default 15.
- "styles": role -> style overrides. Roles: title, heading, body, footer,
  continuation, tableHeader, tableCell. A style is
  {"family", "weight", "size", "color": {"r","g","b"}} where weight is
  "" (regular), "B", "I", or "BI".
- "sections": ordered list of {"title", "blocks"}.

Blocks ("type" selects the kind):

- text: {"type": "text", "lines": ["..."], "role": "body"}.
  Lines are drawn exactly as given; wrap text before templating. An
  optional "style" object overrides the role style.
- image: {"type": "image", "src": "chart.png", "width": 500,
  "height": 200, "x": 50}. The file must be an already-rendered raster;
  use the probe_image tool to size it.
- table: {"type": "table", "header": ["A", "B"], "rows": [["1", "2"]],
  "columnWidths": [200, 100]}. The header row repeats on every page the
  table spans.

Blocks never overflow a page silently: a block taller than the usable page
height fails the render with an explicit error.
`

const exampleTemplate = `{
  "footer": "Generated by the insight pipeline",
  "continued": "Continued Analysis",
  "sections": [
    {
      "title": "Executive Summary",
      "blocks": [
        {
          "type": "text",
          "lines": [
            "- Analysis of 891 passengers",
            "- Overall survival rate: 38.4%"
          ]
        },
        {"type": "image", "src": "survival_by_class.png", "x": 50, "width": 500, "height": 200}
      ]
    },
    {
      "title": "Survival by Class",
      "blocks": [
        {
          "type": "table",
          "header": ["Class", "Passengers", "Survival"],
          "rows": [
            ["1st", "216", "63.0%"],
            ["2nd", "184", "47.3%"],
            ["3rd", "491", "24.2%"]
          ],
          "columnWidths": [120, 120, 120]
        }
      ]
    }
  ]
}`

func handleSchemaResource(uri string) ([]ResourceContent, error) {
	return []ResourceContent{{
		URI:      uri,
		MIMEType: "text/markdown",
		Text:     templateSchemaDoc,
	}}, nil
}

func handleExampleResource(uri string) ([]ResourceContent, error) {
	return []ResourceContent{{
		URI:      uri,
		MIMEType: "application/json",
		Text:     exampleTemplate,
	}}, nil
}
