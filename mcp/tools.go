package mcp

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lvillar/reportlay/imageutil"
	"github.com/lvillar/reportlay/reporttpl"
)

// RegisterDefaultTools adds all built-in report tools to the server.
func RegisterDefaultTools(s *Server) {
	s.AddTool(createReportTool())
	s.AddTool(reportInfoTool())
	s.AddTool(probeImageTool())
}

func createReportTool() Tool {
	return Tool{
		Name:        "create_report",
		Description: "Create a paginated PDF report from a JSON template. The template describes sections of text lines, images, and tables; page breaks, per-page footers, continuation headers, and repeating table headers are handled automatically. Returns the PDF as base64 unless outputPath is given.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"template": map[string]any{
					"type":        "object",
					"description": "JSON report template with footer, styles, and sections of blocks",
				},
				"outputPath": map[string]any{
					"type":        "string",
					"description": "Optional file path to save the PDF. If omitted, returns base64.",
				},
			},
			"required": []string{"template"},
		},
		Handler: handleCreateReport,
	}
}

func handleCreateReport(args map[string]any) (ToolResult, error) {
	tpl, err := decodeTemplate(args)
	if err != nil {
		return ToolResult{}, err
	}

	var buf bytes.Buffer
	if err := reporttpl.RenderTemplate(&buf, tpl); err != nil {
		return ToolResult{}, fmt.Errorf("rendering report: %w", err)
	}

	if outputPath, ok := args["outputPath"].(string); ok && outputPath != "" {
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return ToolResult{}, fmt.Errorf("writing file: %w", err)
		}
		return ToolResult{
			Content: []Content{{
				Type: "text",
				Text: fmt.Sprintf("Report created successfully: %s (%d bytes)", outputPath, buf.Len()),
			}},
		}, nil
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return ToolResult{
		Content: []Content{{
			Type: "text",
			Text: fmt.Sprintf("Report created successfully (%d bytes). Base64 data:\n%s", buf.Len(), encoded),
		}},
	}, nil
}

func reportInfoTool() Tool {
	return Tool{
		Name:        "report_info",
		Description: "Lay out a JSON report template without persisting it and return the resulting page count and artifact size. Useful for checking how much content fits before committing to a file.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"template": map[string]any{
					"type":        "object",
					"description": "JSON report template with footer, styles, and sections of blocks",
				},
			},
			"required": []string{"template"},
		},
		Handler: handleReportInfo,
	}
}

func handleReportInfo(args map[string]any) (ToolResult, error) {
	tpl, err := decodeTemplate(args)
	if err != nil {
		return ToolResult{}, err
	}

	doc, err := reporttpl.BuildDocument(tpl)
	if err != nil {
		return ToolResult{}, err
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return ToolResult{}, fmt.Errorf("laying out report: %w", err)
	}

	info, _ := json.MarshalIndent(map[string]any{
		"pages":    doc.PageCount(),
		"bytes":    buf.Len(),
		"sections": len(tpl.Sections),
	}, "", "  ")
	return ToolResult{
		Content: []Content{{Type: "text", Text: string(info)}},
	}, nil
}

func probeImageTool() Tool {
	return Tool{
		Name:        "probe_image",
		Description: "Read a raster image file's dimensions and format (PNG, JPEG, GIF, BMP, TIFF, WebP) and compute the height that preserves its aspect ratio at a target width in points. Use before adding an image block to a report template.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type":        "string",
					"description": "Path to the image file",
				},
				"targetWidth": map[string]any{
					"type":        "number",
					"description": "Optional target width in points for aspect-fit sizing",
				},
			},
			"required": []string{"path"},
		},
		Handler: handleProbeImage,
	}
}

func handleProbeImage(args map[string]any) (ToolResult, error) {
	path, ok := args["path"].(string)
	if !ok {
		return ToolResult{}, fmt.Errorf("missing 'path' argument")
	}

	info, err := imageutil.Probe(path)
	if err != nil {
		return ToolResult{}, err
	}

	out := map[string]any{
		"width":  info.Width,
		"height": info.Height,
		"format": info.Format,
	}
	if tw, ok := args["targetWidth"].(float64); ok && tw > 0 {
		out["fitWidth"] = tw
		out["fitHeight"] = info.FitWidth(tw)
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	return ToolResult{
		Content: []Content{{Type: "text", Text: string(data)}},
	}, nil
}

func decodeTemplate(args map[string]any) (*reporttpl.Template, error) {
	templateData, ok := args["template"]
	if !ok {
		return nil, fmt.Errorf("missing 'template' argument")
	}

	jsonBytes, err := json.Marshal(templateData)
	if err != nil {
		return nil, fmt.Errorf("encoding template: %w", err)
	}

	var tpl reporttpl.Template
	if err := json.Unmarshal(jsonBytes, &tpl); err != nil {
		return nil, fmt.Errorf("decoding template: %w", err)
	}
	return &tpl, nil
}
