package reporttpl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lvillar/reportlay/reporttpl"
)

func TestRenderMinimal(t *testing.T) {
	tpl := &reporttpl.Template{
		Sections: []reporttpl.Section{{
			Title: "Summary",
			Blocks: []reporttpl.Block{
				{Type: "text", Lines: []string{"First finding.", "Second finding."}},
			},
		}},
	}

	var buf bytes.Buffer
	if err := reporttpl.RenderTemplate(&buf, tpl); err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output does not start with %PDF header")
	}
	t.Logf("Minimal report: %d bytes", buf.Len())
}

func TestRenderJSON(t *testing.T) {
	template := `{
		"footer": "Generated by tests",
		"sections": [
			{
				"title": "Survival by Class",
				"blocks": [
					{"type": "text", "lines": ["1st Class: 63.0% survived", "3rd Class: 24.2% survived"]},
					{
						"type": "table",
						"header": ["Class", "Survival"],
						"rows": [["1st", "63.0%"], ["2nd", "47.3%"], ["3rd", "24.2%"]],
						"columnWidths": [150, 150]
					}
				]
			}
		]
	}`

	var buf bytes.Buffer
	if err := reporttpl.Render(&buf, []byte(template)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output does not start with %PDF header")
	}
}

func TestRenderInvalidJSON(t *testing.T) {
	var buf bytes.Buffer
	err := reporttpl.Render(&buf, []byte(`{"sections": [`))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !strings.Contains(err.Error(), "parsing template") {
		t.Fatalf("error should name the parse stage, got: %v", err)
	}
}

func TestUnknownBlockType(t *testing.T) {
	tpl := &reporttpl.Template{
		Sections: []reporttpl.Section{{
			Blocks: []reporttpl.Block{{Type: "chart"}},
		}},
	}

	var buf bytes.Buffer
	err := reporttpl.RenderTemplate(&buf, tpl)
	if err == nil {
		t.Fatal("expected an error for an unknown block type")
	}
	if !strings.Contains(err.Error(), `unknown block type "chart"`) {
		t.Fatalf("error should name the bad type, got: %v", err)
	}
	if !strings.Contains(err.Error(), "section 1 block 1") {
		t.Fatalf("error should locate the bad block, got: %v", err)
	}
}

func TestImageRequiresSrc(t *testing.T) {
	tpl := &reporttpl.Template{
		Sections: []reporttpl.Section{{
			Blocks: []reporttpl.Block{{Type: "image", Width: 500, Height: 200}},
		}},
	}

	var buf bytes.Buffer
	if err := reporttpl.RenderTemplate(&buf, tpl); err == nil {
		t.Fatal("expected an error for an image block without src")
	}
}

func TestStyleOverrides(t *testing.T) {
	template := `{
		"styles": {
			"body": {"family": "Courier", "size": 9},
			"heading": {"color": {"r": 120, "g": 30, "b": 30}}
		},
		"sections": [
			{"title": "Styled", "blocks": [{"type": "text", "lines": ["monospace body"]}]}
		]
	}`

	var buf bytes.Buffer
	if err := reporttpl.Render(&buf, []byte(template)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output does not start with %PDF header")
	}
}

func TestBuildDocumentPageCount(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "data line"
	}
	tpl := &reporttpl.Template{
		Sections: []reporttpl.Section{{
			Blocks: []reporttpl.Block{{Type: "text", Lines: lines[:25]}, {Type: "text", Lines: lines[25:]}},
		}},
	}

	doc, err := reporttpl.BuildDocument(tpl)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if doc.PageCount() != 2 {
		t.Fatalf("PageCount: got %d, want 2 for 50 lines at 15pt", doc.PageCount())
	}
}

func TestInvalidGeometryRejected(t *testing.T) {
	tpl := &reporttpl.Template{
		Margin: &reporttpl.Margin{Top: 400, Bottom: 400, Left: 50},
		Sections: []reporttpl.Section{{
			Blocks: []reporttpl.Block{{Type: "text", Lines: []string{"x"}}},
		}},
	}

	if _, err := reporttpl.BuildDocument(tpl); err == nil {
		t.Fatal("expected an error for margins exceeding the page height")
	}
}
