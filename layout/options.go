package layout

// BuildOptions 配置分页阶段所需的依赖，例如排版后端。
type BuildOptions struct {
	Typesetter Typesetter
	Meta       *DocumentMeta // 为空时使用 DefaultMeta
}

// Typesetter 负责根据字体与宽度约束将文本拆成可绘制的行。
// 约定：width/fontSize/lineHeight 均为毫米。
type Typesetter interface {
	LayoutLines(content string, width float64, font string, fontSize float64, lineHeight float64) ([]TextLine, error)
}
