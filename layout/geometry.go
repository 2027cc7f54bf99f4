package layout

// PageGeometry 描述固定的纸张尺寸与边距（毫米）。
type PageGeometry struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin Margin  `json:"margin"`
}

// reportMargin 为四边 72pt（一英寸）。
var reportMargin = Pt(72).ToMM()

// A4Geometry 是报告使用的唯一页面几何。
var A4Geometry = PageGeometry{
	Width:  210,
	Height: 297,
	Margin: Margin{Top: reportMargin, Right: reportMargin, Bottom: reportMargin, Left: reportMargin},
}

// ContentWidth 返回内容区域宽度。
func (g PageGeometry) ContentWidth() float64 {
	return g.Width - g.Margin.Left - g.Margin.Right
}

// ContentTop 返回内容区域顶部的 Y 坐标（左上角为原点）。
func (g PageGeometry) ContentTop() float64 { return g.Margin.Top }

// ContentBottom 返回内容区域底部的 Y 坐标。
func (g PageGeometry) ContentBottom() float64 { return g.Height - g.Margin.Bottom }

func (g PageGeometry) valid() bool {
	return g.Width > 0 && g.Height > 0 && g.ContentWidth() > 0 && g.ContentBottom() > g.ContentTop()
}
