package layout

// SpacerGap 是每个段落后追加的固定垂直间隔（pt）。
const SpacerGap = 12.0

// ContentBlock 是交给渲染器的一个内容单元：带样式的段落或一段空白。
// 实现仅限本包中的 ParagraphBlock 与 SpacerBlock。
type ContentBlock interface {
	contentBlock()
}

// ParagraphBlock 携带段落文本及其样式。
type ParagraphBlock struct {
	Text  string          `json:"text"`
	Style StyleDefinition `json:"style"`
}

// SpacerBlock 表示固定高度（pt）的垂直间隔。
type SpacerBlock struct {
	Height float64 `json:"height"`
}

func (ParagraphBlock) contentBlock() {}
func (SpacerBlock) contentBlock()    {}

// HeightMM 返回以毫米表示的间隔高度。
func (s SpacerBlock) HeightMM() float64 { return Pt(s.Height).ToMM() }
