package fonts

import (
	"fmt"
	"unicode"

	"golang.org/x/image/font/sfnt"
)

// Glyphs 用于检查字体是否包含给定字符的字形。可并发使用。
type Glyphs struct {
	font *sfnt.Font
}

// ParseGlyphs 解析 TTF/OTF 数据；字体集合（TTC）取第一个字体。
func ParseGlyphs(data []byte) (*Glyphs, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		c, cerr := sfnt.ParseCollection(data)
		if cerr != nil {
			return nil, fmt.Errorf("解析字体失败: %w", err)
		}
		if f, err = c.Font(0); err != nil {
			return nil, fmt.Errorf("解析字体集合失败: %w", err)
		}
	}
	return &Glyphs{font: f}, nil
}

// Missing 返回 s 中第一个没有字形的字符。空白与控制字符不检查。
func (g *Glyphs) Missing(s string) (rune, bool) {
	var buf sfnt.Buffer
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			continue
		}
		idx, err := g.font.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			return r, true
		}
	}
	return 0, false
}
