package layout

import "github.com/ByLCY/papyrus-report/paragraph"

// ReportFont 是标题与正文共用的字体标识，需能覆盖中文字符。
const ReportFont = "STSong-Light"

// StyleDefinition 描述一种段落样式，字号、行距与段后间距均以 pt 表示。
type StyleDefinition struct {
	Name       string  `json:"name"`
	Font       string  `json:"font"`
	FontSize   float64 `json:"fontSize"`
	Leading    float64 `json:"leading"`
	SpaceAfter float64 `json:"spaceAfter"`
}

// FontSizeMM 返回以毫米表示的字号。
func (s StyleDefinition) FontSizeMM() float64 { return Pt(s.FontSize).ToMM() }

// LeadingMM 返回以毫米表示的行距。
func (s StyleDefinition) LeadingMM() float64 { return Pt(s.Leading).ToMM() }

// SpaceAfterMM 返回以毫米表示的段后间距。
func (s StyleDefinition) SpaceAfterMM() float64 { return Pt(s.SpaceAfter).ToMM() }

// styles 按 paragraph.Kind 索引，进程内只读。
var styles = [...]StyleDefinition{
	paragraph.Body: {
		Name:       "CustomBody",
		Font:       ReportFont,
		FontSize:   12,
		Leading:    18,
		SpaceAfter: 12,
	},
	paragraph.Heading: {
		Name:       "CustomTitle",
		Font:       ReportFont,
		FontSize:   16,
		Leading:    20,
		SpaceAfter: 30,
	},
}

// StyleFor 返回某类段落的样式。未知类别按正文处理。
func StyleFor(kind paragraph.Kind) StyleDefinition {
	if kind < 0 || int(kind) >= len(styles) {
		return styles[paragraph.Body]
	}
	return styles[kind]
}
