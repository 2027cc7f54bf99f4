// Package report 串联段落分类、内容块构建与渲染，把若干文本块生成为一份 PDF 报告。
package report

import (
	"github.com/ByLCY/papyrus-report/layout"
	"github.com/ByLCY/papyrus-report/paragraph"
	"github.com/ByLCY/papyrus-report/renderer"
	canvasrenderer "github.com/ByLCY/papyrus-report/renderer/canvas"
)

// Filename 是生成文档的固定文件名。
const Filename = "report.pdf"

// MIMEType 是生成文档的媒体类型。
const MIMEType = "application/pdf"

// Document 是一次生成的完整结果。
type Document struct {
	Name string
	Data []byte
}

// Options 配置一次生成。Renderer 为空时使用默认字体配置的 canvas 渲染器。
type Options struct {
	Renderer renderer.Renderer
}

func (o Options) renderer() renderer.Renderer {
	if o.Renderer != nil {
		return o.Renderer
	}
	return canvasrenderer.NewRenderer("")
}

// Blocks 返回文本块对应的内容块序列，不做渲染。
func Blocks(texts []string) []layout.ContentBlock {
	return layout.Build(paragraph.ClassifyAll(texts))
}

// Generate 将文本块渲染为 PDF。分类与构建不会失败；渲染失败时返回 *renderer.RenderError，且不返回任何文档。
func Generate(texts []string, opts Options) (*Document, error) {
	data, err := opts.renderer().Render(Blocks(texts), layout.A4Geometry)
	if err != nil {
		return nil, err
	}
	return &Document{Name: Filename, Data: data}, nil
}

// LayoutRenderer 是能同时返回分页结果的渲染器，例如 canvas 渲染器。
type LayoutRenderer interface {
	RenderWithLayout(blocks []layout.ContentBlock, geometry layout.PageGeometry) (*layout.Result, []byte, error)
}

// GenerateWithLayout 与 Generate 相同，并返回实际绘制所用的分页结果，供调试输出。
// 绘制失败但分页已完成时，仍返回分页结果与错误。
func GenerateWithLayout(texts []string, r LayoutRenderer) (*Document, *layout.Result, error) {
	res, data, err := r.RenderWithLayout(Blocks(texts), layout.A4Geometry)
	if err != nil {
		return nil, res, err
	}
	return &Document{Name: Filename, Data: data}, res, nil
}
