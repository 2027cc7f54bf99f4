package report

import (
	"errors"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/ByLCY/papyrus-report/layout"
	"github.com/ByLCY/papyrus-report/paragraph"
	"github.com/ByLCY/papyrus-report/renderer"
	canvasrenderer "github.com/ByLCY/papyrus-report/renderer/canvas"
)

func testOptions() Options {
	return Options{Renderer: canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
		Fonts: map[string]canvasrenderer.Resource{layout.ReportFont: {Bytes: goregular.TTF}},
	})}
}

// recordingRenderer 记录收到的内容块，并按需返回错误。
type recordingRenderer struct {
	blocks   []layout.ContentBlock
	geometry layout.PageGeometry
	err      error
}

func (r *recordingRenderer) Render(blocks []layout.ContentBlock, geometry layout.PageGeometry) ([]byte, error) {
	r.blocks = blocks
	r.geometry = geometry
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-stub"), nil
}

func TestGenerateFeedsBlocksInOrder(t *testing.T) {
	rec := &recordingRenderer{}
	doc, err := Generate([]string{"一、Title\n\nBody text"}, Options{Renderer: rec})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Name != Filename || string(doc.Data) != "%PDF-stub" {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if len(rec.blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(rec.blocks))
	}
	if pb := rec.blocks[0].(layout.ParagraphBlock); pb.Style != layout.StyleFor(paragraph.Heading) {
		t.Fatalf("first block should be a heading: %+v", pb)
	}
	if rec.geometry != layout.A4Geometry {
		t.Fatalf("应使用 A4 几何: %+v", rec.geometry)
	}
}

func TestGenerateReturnsRenderError(t *testing.T) {
	want := renderer.Errorf("font", "%w", renderer.ErrFontUnavailable)
	doc, err := Generate([]string{"x"}, Options{Renderer: &recordingRenderer{err: want}})
	if doc != nil {
		t.Fatalf("失败时不应返回文档")
	}
	var re *renderer.RenderError
	if !errors.As(err, &re) || re != want {
		t.Fatalf("应原样返回 RenderError，实际 %v", err)
	}
}

func TestGenerateWithCanvasRenderer(t *testing.T) {
	doc, err := Generate([]string{"一、Title\n\nBody text", "second block"}, testOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pages, err := Verify(doc.Data)
	if err != nil {
		t.Fatalf("生成的 PDF 无效: %v", err)
	}
	if pages != 1 {
		t.Fatalf("expected 1 page, got %d", pages)
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	doc, err := Generate(nil, testOptions())
	if err != nil {
		t.Fatalf("空输入不应失败: %v", err)
	}
	if pages, err := Verify(doc.Data); err != nil || pages != 1 {
		t.Fatalf("空输入应得到一页有效 PDF: pages=%d err=%v", pages, err)
	}
	if n := len(Blocks(nil)); n != 0 {
		t.Fatalf("空输入不应有内容块，实际 %d", n)
	}
}

func TestGenerateEmptyString(t *testing.T) {
	blocks := Blocks([]string{""})
	if len(blocks) != 2 {
		t.Fatalf("[\"\"] 应得到一个段落与一个间隔，实际 %d", len(blocks))
	}
	if pb := blocks[0].(layout.ParagraphBlock); pb.Text != "" || pb.Style != layout.StyleFor(paragraph.Body) {
		t.Fatalf("unexpected block: %+v", pb)
	}
	if _, err := Generate([]string{""}, testOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateFontUnavailable(t *testing.T) {
	r := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
		Fonts: map[string]canvasrenderer.Resource{layout.ReportFont: {Src: filepath.Join(t.TempDir(), "none.ttf")}},
	})
	doc, err := Generate([]string{"hello"}, Options{Renderer: r})
	if doc != nil {
		t.Fatalf("字体不可用时不应返回文档")
	}
	var re *renderer.RenderError
	if !errors.As(err, &re) {
		t.Fatalf("expected RenderError, got %T: %v", err, err)
	}
}

// 默认选项不设兜底字体：主字体缺失时中文文本必须失败，而不是输出无法显示的 PDF。
func TestGenerateMissingCJKFontWithDefaults(t *testing.T) {
	opts := canvasrenderer.DefaultOptions()
	opts.Fonts[layout.ReportFont] = canvasrenderer.Resource{Src: "system:Definitely Missing Family"}
	doc, err := Generate([]string{"一、标题\n\n正文内容"}, Options{Renderer: canvasrenderer.NewRendererWithOptions(opts)})
	if doc != nil {
		t.Fatalf("字体缺失时不应返回文档，实际 %d 字节", len(doc.Data))
	}
	var re *renderer.RenderError
	if !errors.As(err, &re) || !errors.Is(err, renderer.ErrFontUnavailable) {
		t.Fatalf("expected RenderError wrapping ErrFontUnavailable, got %v", err)
	}
}

func TestGenerateWithLayout(t *testing.T) {
	r := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
		Fonts: map[string]canvasrenderer.Resource{layout.ReportFont: {Bytes: goregular.TTF}},
	})
	doc, res, err := GenerateWithLayout([]string{"一、Title\n\nBody text", "tail"}, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Name != Filename || len(res.Pages) != 1 || len(res.Pages[0].Texts) != 3 {
		t.Fatalf("unexpected result: name=%q pages=%+v", doc.Name, res.Pages)
	}
	if pages, err := Verify(doc.Data); err != nil || pages != len(res.Pages) {
		t.Fatalf("PDF 页数应与分页结果一致: pages=%d err=%v", pages, err)
	}

	missing := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{})
	if doc, _, err := GenerateWithLayout([]string{"x"}, missing); doc != nil || !errors.Is(err, renderer.ErrFontUnavailable) {
		t.Fatalf("expected font failure, got doc=%v err=%v", doc, err)
	}
}

func TestProbe(t *testing.T) {
	if err := Probe(testOptions()); err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	failing := Options{Renderer: &recordingRenderer{err: renderer.Errorf("font", "%w", renderer.ErrFontUnavailable)}}
	if err := Probe(failing); !errors.Is(err, renderer.ErrFontUnavailable) {
		t.Fatalf("probe should surface render errors, got %v", err)
	}
	// stub 输出不是合法 PDF
	if err := Probe(Options{Renderer: &recordingRenderer{}}); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("probe should reject invalid output, got %v", err)
	}
}

func TestVerifyRejectsEmpty(t *testing.T) {
	if _, err := Verify(nil); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}
