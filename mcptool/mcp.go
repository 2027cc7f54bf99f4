// Package mcptool 将报告生成暴露为 MCP 工具 gen_pdf。
package mcptool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ByLCY/papyrus-report/report"
)

// ToolName 是注册到 MCP 服务器上的工具名。
const ToolName = "gen_pdf"

// ResourceURI 是返回 PDF 资源的 URI。
const ResourceURI = "file:///" + report.Filename

// GenRequest 是 gen_pdf 的入参。
type GenRequest struct {
	Texts []string `json:"texts"`
}

// Tool 持有生成报告所需的选项。
type Tool struct {
	opts   report.Options
	logger *slog.Logger
}

// New 创建工具。logger 为 nil 时使用 slog.Default()。
func New(opts report.Options, logger *slog.Logger) *Tool {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tool{opts: opts, logger: logger}
}

func inputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"texts": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Text blocks; paragraphs are separated by a blank line, headings start with 一、 to 六、",
			},
		},
		"required": []string{"texts"},
	}
}

// Register 在 srv 上注册 gen_pdf。
func (t *Tool) Register(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        ToolName,
		Description: "Render text blocks into a paginated A4 PDF report.",
		InputSchema: inputSchema(),
	}
	srv.AddTool(tool, t.handle)
}

func (t *Tool) handle(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in GenRequest
	if err := decode(req.Params.Arguments, &in); err != nil {
		return toolError(fmt.Errorf("invalid arguments: %w", err)), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := report.Generate(in.Texts, t.opts)
	if err != nil {
		t.logger.Warn("gen_pdf failed", "blocks", len(in.Texts), "error", err)
		return toolError(err), nil
	}
	t.logger.Info("gen_pdf done", "blocks", len(in.Texts), "bytes", len(doc.Data))

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("generated %s (%d bytes)", doc.Name, len(doc.Data))},
			&mcp.EmbeddedResource{Resource: &mcp.ResourceContents{
				URI:      ResourceURI,
				MIMEType: report.MIMEType,
				Blob:     doc.Data,
			}},
		},
	}, nil
}

// decode 解析参数；texts 缺失视为错误，空数组允许。
func decode(raw json.RawMessage, in *GenRequest) error {
	if len(raw) == 0 {
		return errors.New("missing texts")
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return err
	}
	if _, ok := probe["texts"]; !ok {
		return errors.New("missing texts")
	}
	return json.Unmarshal(raw, in)
}

func toolError(err error) *mcp.CallToolResult {
	var res mcp.CallToolResult
	res.SetError(err)
	return &res
}

// NewServer 创建只注册了 gen_pdf 的 MCP 服务器。
func NewServer(version string, opts report.Options, logger *slog.Logger) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: "papyrus-report", Version: version}, nil)
	New(opts, logger).Register(srv)
	return srv
}

// ServeStdio 通过标准输入输出提供 MCP 服务，直到 ctx 结束或连接关闭。
func ServeStdio(ctx context.Context, srv *mcp.Server) error {
	return srv.Run(ctx, &mcp.StdioTransport{})
}
