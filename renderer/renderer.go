// Package renderer 定义把内容块序列输出为分页文档字节流的接口。
package renderer

import "github.com/ByLCY/papyrus-report/layout"

// Renderer 将内容块按给定页面几何排版并输出最终文件（例如 PDF）。
// 失败时返回 *RenderError 且不返回任何字节。
type Renderer interface {
	Render(blocks []layout.ContentBlock, geometry layout.PageGeometry) ([]byte, error)
}
