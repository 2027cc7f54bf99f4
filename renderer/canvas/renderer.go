package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strings"
	"sync"
	"unicode"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/papyrus-report/fonts"
	"github.com/ByLCY/papyrus-report/layout"
	"github.com/ByLCY/papyrus-report/renderer"
)

// DefaultFontSource 是报告字体的默认来源：系统中的中文衬线字体族。
const DefaultFontSource = fonts.SystemPrefix + "Noto Serif CJK SC"

// Renderer lays out content blocks and draws them via github.com/tdewolff/canvas.
type Renderer struct {
	baseDir  string
	fonts    map[string]Resource
	fallback *Resource

	fontMu         sync.Mutex
	fontFamilies   map[string]*canvas.FontFamily
	fallbackFamily *canvas.FontFamily
	fallbackGlyphs *fonts.Glyphs   // 系统字体族作为兜底时为空，不做字形检查
	fallbackFor    map[string]bool // 已改用兜底字体的字体标识
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Typesetter = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	BaseDir  string
	Fonts    map[string]Resource // 字体标识（如 layout.ReportFont）→ 来源
	Fallback *Resource           // 主字体不可用时使用，且必须覆盖所排文本的全部字形；为空表示不兜底
}

// Resource can be provided either by Bytes or by Src
// (file path, "builtin:<name>" or "system:<family>").
type Resource struct {
	Bytes []byte
	Src   string
}

func (r Resource) String() string {
	if len(r.Bytes) > 0 {
		return fmt.Sprintf("<%d bytes>", len(r.Bytes))
	}
	return r.Src
}

// DefaultOptions 使用系统中文字体且不设兜底：字体不可用时渲染失败。
func DefaultOptions() Options {
	return Options{
		Fonts: map[string]Resource{layout.ReportFont: {Src: DefaultFontSource}},
	}
}

// NewRenderer creates a renderer with default font options rooted at baseDir.
func NewRenderer(baseDir string) *Renderer {
	opts := DefaultOptions()
	opts.BaseDir = baseDir
	return NewRendererWithOptions(opts)
}

// NewRendererWithOptions creates a renderer with injected font resources.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{
		baseDir:      opts.BaseDir,
		fonts:        map[string]Resource{},
		fontFamilies: map[string]*canvas.FontFamily{},
		fallbackFor:  map[string]bool{},
	}
	for name, res := range opts.Fonts {
		if name == "" {
			continue
		}
		r.fonts[name] = res
	}
	if opts.Fallback != nil {
		fb := *opts.Fallback
		r.fallback = &fb
	}
	return r
}

// Render 分页并输出 PDF。任何失败都以 *renderer.RenderError 返回，且不返回部分字节。
func (r *Renderer) Render(blocks []layout.ContentBlock, geometry layout.PageGeometry) ([]byte, error) {
	_, out, err := r.RenderWithLayout(blocks, geometry)
	return out, err
}

// RenderWithLayout 与 Render 相同，同时返回实际绘制所用的分页结果。
// 分页成功而绘制失败时，分页结果仍会返回，字节为空。
func (r *Renderer) RenderWithLayout(blocks []layout.ContentBlock, geometry layout.PageGeometry) (result *layout.Result, out []byte, err error) {
	defer func() {
		if p := recover(); p != nil {
			out = nil
			err = renderer.Errorf("engine", "%w: %v", renderer.ErrEngine, p)
		}
	}()

	result, err = layout.Paginate(blocks, geometry, layout.BuildOptions{Typesetter: r})
	if err != nil {
		return nil, nil, renderer.AsRenderError("layout", err)
	}
	out, err = r.RenderResult(result)
	return result, out, err
}

// RenderResult 将分页结果写入一个新的缓冲区并返回其全部内容。
func (r *Renderer) RenderResult(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, renderer.Errorf("draw", "分页结果为空")
	}
	if len(result.Pages) == 0 {
		return nil, renderer.Errorf("draw", "缺少可渲染的页面")
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, result.Pages[0].Width, result.Pages[0].Height, nil)
	applyMeta(writer, result.Meta)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(page.Width, page.Height)
		}
		c := canvas.New(page.Width, page.Height)
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

		for _, tb := range page.Texts {
			if err := r.drawTextBox(ctx, tb); err != nil {
				return nil, renderer.AsRenderError("draw", err)
			}
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, renderer.Errorf("write", "%w: %v", renderer.ErrOutput, err)
	}
	return buf.Bytes(), nil
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, meta.Creator)
}

// LayoutLines 实现 layout.Typesetter 接口，使用贪心换行算法。
// 约定：width/fontSize/lineHeight 入参均为毫米（mm）。与字体系统交互使用 pt，在边界做 mm↔pt 换算。
func (r *Renderer) LayoutLines(content string, width float64, font string, fontSize, lineHeight float64) ([]layout.TextLine, error) {
	face, err := r.fontFace(font, toPt(fontSize), layout.TextColor)
	if err != nil {
		return nil, err
	}
	if err := r.checkFallbackCoverage(font, content); err != nil {
		return nil, err
	}

	lines := greedyWrap(content, width, face)
	textHeight := face.Metrics().LineHeight
	if textHeight <= 0 {
		textHeight = lineHeight
	}
	leading := math.Max(lineHeight-textHeight, 0)
	if len(lines) == 0 {
		lines = []layout.TextLine{{Content: "", Width: 0, Height: textHeight}}
	}
	for i := range lines {
		if lines[i].Height <= 0 {
			lines[i].Height = textHeight
		}
		if i == 0 {
			lines[i].GapBefore = 0
		} else {
			lines[i].GapBefore = leading
		}
	}
	return lines, nil
}

func (r *Renderer) drawTextBox(ctx *canvas.Context, tb layout.TextBox) error {
	// TextBox 的坐标/字号均为 mm；创建字体面需要 pt。
	face, err := r.fontFace(tb.Font, toPt(tb.FontSize), tb.Color)
	if err != nil {
		return err
	}
	ascent := face.Metrics().Ascent

	cursorY := tb.Y
	for _, line := range tb.Lines {
		cursorY += line.GapBefore
		if line.Content != "" {
			ctx.DrawText(tb.X, cursorY+ascent, canvas.NewTextLine(face, line.Content, canvas.Left))
		}
		lineHeight := line.Height
		if lineHeight <= 0 {
			lineHeight = tb.LineHeight
		}
		cursorY += lineHeight
	}
	return nil
}

func (r *Renderer) fontFace(name string, size float64, col layout.Color) (*canvas.FontFace, error) {
	family, err := r.ensureFontFamily(name)
	if err != nil {
		return nil, err
	}
	return family.Face(size, colorFromLayout(col), canvas.FontRegular, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily(name string) (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if family, ok := r.fontFamilies[name]; ok {
		return family, nil
	}

	var loadErr error
	res, ok := r.fonts[name]
	if !ok {
		loadErr = fmt.Errorf("字体 %s 未注册", name)
	} else {
		family := canvas.NewFontFamily(name)
		if _, loadErr = r.loadFont(family, res); loadErr == nil {
			r.fontFamilies[name] = family
			return family, nil
		}
	}

	fallback, fbErr := r.loadFallback()
	if fbErr != nil {
		return nil, renderer.Errorf("font", "%w: %s: %v", renderer.ErrFontUnavailable, name, loadErr)
	}
	r.fontFamilies[name] = fallback
	r.fallbackFor[name] = true
	return fallback, nil
}

// checkFallbackCoverage 在 font 已改用兜底字体时，要求兜底字体包含 content 的全部字形，
// 否则返回 ErrFontUnavailable。
func (r *Renderer) checkFallbackCoverage(font, content string) error {
	r.fontMu.Lock()
	usesFallback, glyphs := r.fallbackFor[font], r.fallbackGlyphs
	r.fontMu.Unlock()
	if !usesFallback || glyphs == nil {
		return nil
	}
	if ch, missing := glyphs.Missing(content); missing {
		return renderer.Errorf("font", "%w: %s 不可用，兜底字体 %s 缺少字形 %q",
			renderer.ErrFontUnavailable, font, r.fallback, ch)
	}
	return nil
}

// loadFont 载入字体，并返回其原始字节；系统字体族没有可用字节时返回 nil。
func (r *Renderer) loadFont(family *canvas.FontFamily, res Resource) ([]byte, error) {
	if len(res.Bytes) > 0 {
		return res.Bytes, family.LoadFont(res.Bytes, 0, canvas.FontRegular)
	}
	if fonts.IsSystem(res.Src) {
		return nil, family.LoadSystemFont(fonts.SystemFamily(res.Src), canvas.FontRegular)
	}
	data, err := fonts.Load(res.Src, r.baseDir)
	if err != nil {
		return nil, err
	}
	return data, family.LoadFont(data, 0, canvas.FontRegular)
}

// loadFallback 需在持有 fontMu 时调用。
func (r *Renderer) loadFallback() (*canvas.FontFamily, error) {
	if r.fallbackFamily != nil {
		return r.fallbackFamily, nil
	}
	if r.fallback == nil {
		return nil, fmt.Errorf("未配置兜底字体")
	}
	family := canvas.NewFontFamily("papyrus-fallback")
	data, err := r.loadFont(family, *r.fallback)
	if err != nil {
		return nil, fmt.Errorf("加载兜底字体 %s 失败: %w", r.fallback, err)
	}
	if data != nil {
		if r.fallbackGlyphs, err = fonts.ParseGlyphs(data); err != nil {
			return nil, fmt.Errorf("解析兜底字体 %s 失败: %w", r.fallback, err)
		}
	}
	r.fallbackFamily = family
	return family, nil
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

func toPt(mm float64) float64 { return layout.MM(mm).ToPT() }

// greedyWrap 在空白与汉字之间寻找断行机会，单个词超出宽度时在词内拆分；显式换行始终生效。
// 所有宽度均为 mm。
func greedyWrap(content string, width float64, face *canvas.FontFace) []layout.TextLine {
	limit := width
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	var lines []layout.TextLine
	var builder strings.Builder
	currentWidth := 0.0
	wrapped := false

	// force 为 true 表示显式换行或文本结束，此时空行也要保留。
	emit := func(force bool) {
		wrapped = !force
		if builder.Len() == 0 {
			if force {
				lines = append(lines, layout.TextLine{Content: "", Width: 0})
			}
			return
		}
		content := strings.TrimRightFunc(builder.String(), unicode.IsSpace)
		lines = append(lines, layout.TextLine{
			Content: content,
			Width:   face.TextWidth(content),
		})
		builder.Reset()
		currentWidth = 0
	}

	appendToken := func(token string, w float64) {
		builder.WriteString(token)
		currentWidth += w
	}

	for _, token := range tokenize(content) {
		if token == "\n" {
			emit(true)
			continue
		}
		isSpace := strings.TrimSpace(token) == ""
		if isSpace && builder.Len() == 0 && wrapped {
			// 折行后的行首空白不保留
			continue
		}

		tokenWidth := face.TextWidth(token)
		if currentWidth > 0 && currentWidth+tokenWidth > limit && !isSpace && !noBreakBefore(token) {
			emit(false)
		}
		if tokenWidth <= limit {
			appendToken(token, tokenWidth)
			continue
		}

		for _, chunk := range splitTokenByWidth(token, limit, face) {
			chunkWidth := face.TextWidth(chunk)
			if currentWidth > 0 && currentWidth+chunkWidth > limit {
				emit(false)
			}
			appendToken(chunk, chunkWidth)
		}
	}

	emit(true)
	return lines
}

// tokenize 将文本拆成词、空白串与单个汉字（或全角标点），并把换行单独成词。
func tokenize(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}

	for _, r := range s {
		switch {
		case r == '\r':
			continue
		case r == '\n':
			flush()
			tokens = append(tokens, "\n")
			lastWasSpace = false
			continue
		case isWide(r):
			flush()
			tokens = append(tokens, string(r))
			lastWasSpace = false
			continue
		}
		isSpace := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

// isWide 判断字符是否可以在其前后独立断行（汉字、假名、谚文与全角标点）。
func isWide(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul) ||
		(r >= 0x3000 && r <= 0x303F) || // CJK 符号与标点
		(r >= 0xFF00 && r <= 0xFFEF) // 全角字符
}

// noBreakBefore 报告 token 是否为不能出现在行首的标点（避头）。
func noBreakBefore(token string) bool {
	return strings.ContainsAny(token, "，。、；：？！）》」』】〕…,.;:?!)") && len([]rune(token)) == 1
}

// splitTokenByWidth 把超宽的词按字符切成不超过 limit 的片段；单个字符本身超宽时独占一段。
func splitTokenByWidth(token string, limit float64, face *canvas.FontFace) []string {
	if limit <= 0 || limit == math.MaxFloat64 {
		return []string{token}
	}
	runes := []rune(token)
	var parts []string
	start := 0
	for end := 1; end <= len(runes); end++ {
		if end-start > 1 && face.TextWidth(string(runes[start:end])) > limit {
			parts = append(parts, string(runes[start:end-1]))
			start = end - 1
		}
	}
	if start < len(runes) {
		parts = append(parts, string(runes[start:]))
	}
	return parts
}
