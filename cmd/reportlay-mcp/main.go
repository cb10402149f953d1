// Command reportlay-mcp is an MCP (Model Context Protocol) server that
// exposes paginated PDF report generation to AI assistants.
//
// # Installation
//
//	go install github.com/lvillar/reportlay/cmd/reportlay-mcp@latest
//
// # Configuration for Claude Desktop
//
// Add to ~/.config/claude/claude_desktop_config.json:
//
//	{
//	  "mcpServers": {
//	    "reportlay": {
//	      "command": "reportlay-mcp"
//	    }
//	  }
//	}
//
// # Available Tools
//
//   - create_report: Render a JSON report template to a paginated PDF
//   - report_info: Lay out a template and report page count and size
//   - probe_image: Read raster dimensions and aspect-fit sizes
//
// # Available Resources
//
//   - report://template-schema : Template format documentation
//   - report://example-template : A complete example template
package main

import (
	"fmt"
	"os"

	"github.com/lvillar/reportlay/mcp"
)

func main() {
	server := mcp.NewServer()

	mcp.RegisterDefaultTools(server)
	mcp.RegisterDefaultResources(server)

	if err := server.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "reportlay-mcp: %v\n", err)
		os.Exit(1)
	}
}
