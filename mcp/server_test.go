package mcp

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func sendRequest(t *testing.T, s *Server, method string, id int, params any) rpcResponse {
	t.Helper()

	req := map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  method,
	}
	if params != nil {
		req["params"] = params
	}

	reqBytes, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	reqBytes = append(reqBytes, '\n')

	var output bytes.Buffer
	s.input = bytes.NewReader(reqBytes)
	s.output = &output

	s.Run()

	var resp rpcResponse
	if err := json.Unmarshal(output.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshaling response %q: %v", output.String(), err)
	}
	return resp
}

func TestServerInitialize(t *testing.T) {
	s := NewServerWithIO(nil, nil)
	RegisterDefaultTools(s)

	resp := sendRequest(t, s, "initialize", 1, map[string]any{
		"protocolVersion": "2024-11-05",
		"capabilities":    map[string]any{},
		"clientInfo":      map[string]any{"name": "test", "version": "1.0"},
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}

	result, ok := resp.Result.(map[string]any)
	if !ok {
		t.Fatal("result is not a map")
	}

	if result["protocolVersion"] != "2024-11-05" {
		t.Fatalf("unexpected protocol version: %v", result["protocolVersion"])
	}

	serverInfo, ok := result["serverInfo"].(map[string]any)
	if !ok {
		t.Fatal("missing serverInfo")
	}
	if serverInfo["name"] != "reportlay-mcp" {
		t.Fatalf("unexpected server name: %v", serverInfo["name"])
	}
}

func TestServerToolsList(t *testing.T) {
	s := NewServerWithIO(nil, nil)
	RegisterDefaultTools(s)

	resp := sendRequest(t, s, "tools/list", 2, nil)

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}

	result, ok := resp.Result.(map[string]any)
	if !ok {
		t.Fatal("result is not a map")
	}

	tools, ok := result["tools"].([]any)
	if !ok {
		t.Fatal("tools is not an array")
	}

	toolNames := make(map[string]bool)
	for _, tool := range tools {
		tm, ok := tool.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := tm["name"].(string); ok {
			toolNames[name] = true
		}
	}

	for _, name := range []string{"create_report", "report_info", "probe_image"} {
		if !toolNames[name] {
			t.Errorf("expected tool %q not found", name)
		}
	}
}

func TestServerResourcesList(t *testing.T) {
	s := NewServerWithIO(nil, nil)
	RegisterDefaultResources(s)

	resp := sendRequest(t, s, "resources/list", 3, nil)

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}

	result, ok := resp.Result.(map[string]any)
	if !ok {
		t.Fatal("result is not a map")
	}

	resources, ok := result["resources"].([]any)
	if !ok {
		t.Fatal("resources is not an array")
	}

	if len(resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(resources))
	}
}

func TestServerResourcesRead(t *testing.T) {
	s := NewServerWithIO(nil, nil)
	RegisterDefaultResources(s)

	resp := sendRequest(t, s, "resources/read", 4, map[string]any{
		"uri": "report://example-template",
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}

	resultBytes, _ := json.Marshal(resp.Result)
	if !strings.Contains(string(resultBytes), "sections") {
		t.Fatalf("example template should contain sections: %s", resultBytes)
	}
}

func TestServerPing(t *testing.T) {
	s := NewServerWithIO(nil, nil)

	resp := sendRequest(t, s, "ping", 5, nil)

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}
}

func TestServerUnknownMethod(t *testing.T) {
	s := NewServerWithIO(nil, nil)

	resp := sendRequest(t, s, "nonexistent/method", 6, nil)

	if resp.Error == nil {
		t.Fatal("expected error for unknown method")
	}
	if resp.Error.Code != -32601 {
		t.Fatalf("expected error code -32601, got %d", resp.Error.Code)
	}
}

func TestServerUnknownTool(t *testing.T) {
	s := NewServerWithIO(nil, nil)
	RegisterDefaultTools(s)

	resp := sendRequest(t, s, "tools/call", 7, map[string]any{
		"name":      "nonexistent_tool",
		"arguments": map[string]any{},
	})

	if resp.Error == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestServerCreateReportTool(t *testing.T) {
	s := NewServerWithIO(nil, nil)
	RegisterDefaultTools(s)

	resp := sendRequest(t, s, "tools/call", 8, map[string]any{
		"name": "create_report",
		"arguments": map[string]any{
			"template": map[string]any{
				"footer": "Generated via MCP",
				"sections": []any{
					map[string]any{
						"title": "Executive Summary",
						"blocks": []any{
							map[string]any{
								"type":  "text",
								"lines": []any{"- Analysis of 891 passengers", "- Overall survival rate: 38.4%"},
							},
						},
					},
				},
			},
		},
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}

	resultBytes, _ := json.Marshal(resp.Result)
	resultStr := string(resultBytes)

	if !strings.Contains(resultStr, "Report created successfully") {
		t.Fatalf("unexpected result: %s", resultStr)
	}
	if !strings.Contains(resultStr, "Base64") {
		t.Fatalf("expected base64 data in result: %s", resultStr)
	}
}

func TestServerReportInfoTool(t *testing.T) {
	s := NewServerWithIO(nil, nil)
	RegisterDefaultTools(s)

	resp := sendRequest(t, s, "tools/call", 9, map[string]any{
		"name": "report_info",
		"arguments": map[string]any{
			"template": map[string]any{
				"sections": []any{
					map[string]any{
						"blocks": []any{
							map[string]any{"type": "text", "lines": []any{"one line"}},
						},
					},
				},
			},
		},
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}

	resultBytes, _ := json.Marshal(resp.Result)
	if !strings.Contains(string(resultBytes), `\"pages\": 1`) {
		t.Fatalf("expected a one-page layout report: %s", resultBytes)
	}
}

func TestServerToolErrorIsResult(t *testing.T) {
	// Tool failures surface as isError results, not JSON-RPC errors.
	s := NewServerWithIO(nil, nil)
	RegisterDefaultTools(s)

	resp := sendRequest(t, s, "tools/call", 10, map[string]any{
		"name": "create_report",
		"arguments": map[string]any{
			"template": map[string]any{
				"sections": []any{
					map[string]any{
						"blocks": []any{map[string]any{"type": "chart"}},
					},
				},
			},
		},
	})

	if resp.Error != nil {
		t.Fatalf("tool failure should not be a protocol error: %v", resp.Error.Message)
	}

	resultBytes, _ := json.Marshal(resp.Result)
	resultStr := string(resultBytes)
	if !strings.Contains(resultStr, `"isError":true`) {
		t.Fatalf("expected isError result: %s", resultStr)
	}
	if !strings.Contains(resultStr, "unknown block type") {
		t.Fatalf("expected the block error in the result: %s", resultStr)
	}
}

func TestServerParseError(t *testing.T) {
	var output bytes.Buffer
	s := NewServerWithIO(strings.NewReader("{not json}\n"), &output)

	s.Run()

	var resp rpcResponse
	if err := json.Unmarshal(output.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshaling response %q: %v", output.String(), err)
	}
	if resp.Error == nil || resp.Error.Code != -32700 {
		t.Fatalf("expected parse error -32700, got %+v", resp.Error)
	}
}

func TestServerMultipleRequests(t *testing.T) {
	requests := []string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1.0"}}}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"resources/list"}`,
		`{"jsonrpc":"2.0","id":4,"method":"ping"}`,
	}

	input := strings.Join(requests, "\n") + "\n"
	var output bytes.Buffer

	s := NewServerWithIO(strings.NewReader(input), &output)
	RegisterDefaultTools(s)
	RegisterDefaultResources(s)

	s.Run()

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 responses, got %d: %s", len(lines), output.String())
	}

	for i, line := range lines {
		var resp rpcResponse
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			t.Fatalf("response %d: unmarshal error: %v\nline: %s", i, err, line)
		}
		if resp.Error != nil {
			t.Errorf("response %d: unexpected error: %s", i, resp.Error.Message)
		}
	}
}

func TestServerAddTool(t *testing.T) {
	s := NewServerWithIO(nil, nil)

	s.AddTool(Tool{
		Name:        "custom_tool",
		Description: "A custom test tool",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
		Handler: func(args map[string]any) (ToolResult, error) {
			return ToolResult{
				Content: []Content{{Type: "text", Text: "custom result"}},
			}, nil
		},
	})

	resp := sendRequest(t, s, "tools/call", 1, map[string]any{
		"name":      "custom_tool",
		"arguments": map[string]any{},
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}

	resultBytes, _ := json.Marshal(resp.Result)
	if !strings.Contains(string(resultBytes), "custom result") {
		t.Fatalf("unexpected result: %s", string(resultBytes))
	}
}
