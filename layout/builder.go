package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/ByLCY/papyrus-report/paragraph"
)

// Build 将段落序列映射为内容块：每个段落后紧跟一个固定间隔，严格 1:2。
// 标题的段后间距与其后的间隔会叠加生效。
func Build(units []paragraph.Unit) []ContentBlock {
	blocks := make([]ContentBlock, 0, 2*len(units))
	for _, u := range units {
		blocks = append(blocks,
			ParagraphBlock{Text: u.Text, Style: StyleFor(u.Kind)},
			SpacerBlock{Height: SpacerGap},
		)
	}
	return blocks
}

// Paginate 按顺序把内容块排入固定几何的页面。段落行可以跨页；
// 放不下的间隔在页底截断，不会带到下一页顶部。
// 没有任何内容块时仍返回一张空白页。
func Paginate(blocks []ContentBlock, geometry PageGeometry, opts BuildOptions) (*Result, error) {
	if opts.Typesetter == nil {
		return nil, fmt.Errorf("layout: 缺少排版后端 Typesetter")
	}
	if !geometry.valid() {
		return nil, fmt.Errorf("layout: 页面几何无效 %+v", geometry)
	}

	collector := newPageCollector(geometry)
	ctx := &flowContext{
		baseX:      geometry.Margin.Left,
		width:      geometry.ContentWidth(),
		cursorY:    collector.contentTop(),
		typesetter: opts.Typesetter,
		collector:  collector,
	}

	for i, block := range blocks {
		switch b := block.(type) {
		case ParagraphBlock:
			if err := handleParagraph(b, ctx); err != nil {
				return nil, fmt.Errorf("排版第 %d 个内容块失败: %w", i, err)
			}
		case *ParagraphBlock:
			if b == nil {
				return nil, fmt.Errorf("第 %d 个内容块为空", i)
			}
			if err := handleParagraph(*b, ctx); err != nil {
				return nil, fmt.Errorf("排版第 %d 个内容块失败: %w", i, err)
			}
		case SpacerBlock:
			ctx.skip(b.HeightMM())
		case *SpacerBlock:
			if b == nil {
				return nil, fmt.Errorf("第 %d 个内容块为空", i)
			}
			ctx.skip(b.HeightMM())
		default:
			return nil, fmt.Errorf("第 %d 个内容块类型不受支持: %T", i, block)
		}
	}

	meta := DefaultMeta
	if opts.Meta != nil {
		meta = *opts.Meta
	}
	return &Result{Pages: collector.pages(), Meta: meta}, nil
}

func handleParagraph(b ParagraphBlock, ctx *flowContext) error {
	style := b.Style
	if style.FontSize <= 0 {
		return fmt.Errorf("样式 %q 的字号无效: %g", style.Name, style.FontSize)
	}
	fontSize := style.FontSizeMM()
	lineHeight := style.LeadingMM()
	if lineHeight <= 0 {
		lineHeight = fontSize * 1.2
	}

	lines, err := layoutLines(b.Text, ctx.width, style.Font, fontSize, lineHeight, ctx.typesetter)
	if err != nil {
		return err
	}

	newBox := func() TextBox {
		return TextBox{
			X:          ctx.baseX,
			Y:          ctx.cursorY,
			Width:      ctx.width,
			LineHeight: lineHeight,
			Font:       style.Font,
			FontSize:   fontSize,
			Color:      TextColor,
			Style:      style.Name,
		}
	}

	tb := newBox()
	var contents []string
	flush := func() {
		if len(tb.Lines) == 0 {
			return
		}
		tb.Content = strings.Join(contents, "\n")
		ctx.acc().appendText(tb)
		contents = contents[:0]
	}

	for _, line := range lines {
		// 每个 TextBox 的首行不留行前间隙
		if len(tb.Lines) == 0 {
			line.GapBefore = 0
		}
		need := line.GapBefore + line.Height
		if ctx.cursorY+need > ctx.collector.contentBottom() && !ctx.atTop() {
			flush()
			ctx.pageBreak()
			tb = newBox()
			line.GapBefore = 0
			need = line.Height
		}
		tb.Lines = append(tb.Lines, line)
		tb.Height += need
		contents = append(contents, line.Content)
		ctx.cursorY += need
	}
	flush()

	ctx.skip(style.SpaceAfterMM())
	return nil
}

// layoutLines 调用排版后端，并保证至少返回一行（空段落同样占据一行高度）。
func layoutLines(content string, width float64, font string, fontSize, lineHeight float64, ts Typesetter) ([]TextLine, error) {
	lines, err := ts.LayoutLines(content, width, font, fontSize, lineHeight)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		lines = []TextLine{{Content: "", Width: 0, Height: fontSize}}
	}
	defaultLeading := math.Max(lineHeight-fontSize, 0)
	for i := range lines {
		if lines[i].Height <= 0 {
			lines[i].Height = fontSize
		}
		if i == 0 {
			lines[i].GapBefore = 0
		} else if lines[i].GapBefore <= 0 {
			lines[i].GapBefore = defaultLeading
		}
	}
	return lines, nil
}

type pageAccumulator struct {
	texts []TextBox
}

func (p *pageAccumulator) appendText(tb TextBox) {
	p.texts = append(p.texts, tb)
}

type pageCollector struct {
	geometry PageGeometry
	accs     []*pageAccumulator
	current  int
}

func newPageCollector(geometry PageGeometry) *pageCollector {
	pc := &pageCollector{geometry: geometry}
	pc.newPage()
	return pc
}

func (pc *pageCollector) newPage() *pageAccumulator {
	acc := &pageAccumulator{}
	pc.accs = append(pc.accs, acc)
	pc.current = len(pc.accs) - 1
	return acc
}

func (pc *pageCollector) curr() *pageAccumulator {
	if len(pc.accs) == 0 {
		return pc.newPage()
	}
	return pc.accs[pc.current]
}

func (pc *pageCollector) contentTop() float64 { return pc.geometry.ContentTop() }

func (pc *pageCollector) contentBottom() float64 { return pc.geometry.ContentBottom() }

func (pc *pageCollector) pages() []Page {
	out := make([]Page, len(pc.accs))
	for i, acc := range pc.accs {
		out[i] = Page{
			Width:  pc.geometry.Width,
			Height: pc.geometry.Height,
			Margin: pc.geometry.Margin,
			Texts:  acc.texts,
		}
	}
	return out
}

type flowContext struct {
	baseX      float64
	width      float64
	cursorY    float64
	typesetter Typesetter
	collector  *pageCollector
}

func (ctx *flowContext) atTop() bool {
	return ctx.cursorY <= ctx.collector.contentTop()
}

// skip 推进纵向游标，最多推进到内容区域底部；页顶不留间隔。
// 换页由下一段落的首行触发，因此间隔不会带到下一页，也不会产生空白尾页。
func (ctx *flowContext) skip(height float64) {
	if height <= 0 || ctx.atTop() {
		return
	}
	ctx.cursorY = math.Min(ctx.cursorY+height, ctx.collector.contentBottom())
}

func (ctx *flowContext) pageBreak() {
	ctx.collector.newPage()
	ctx.cursorY = ctx.collector.contentTop()
}

func (ctx *flowContext) acc() *pageAccumulator {
	return ctx.collector.curr()
}
