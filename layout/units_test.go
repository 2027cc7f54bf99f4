package layout

import (
	"math"
	"testing"

	"github.com/ByLCY/papyrus-report/paragraph"
)

// TestPtMmRoundTrip 验证 pt↔mm 换算的往返精度（允许极小的浮点误差）。
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 16, 18, 20, 30, 72, 1000}
	for _, pt := range samples {
		back := Pt(pt).ToMM() * MmToPt
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→mm→pt 往返误差过大: in=%gpt back=%g diff=%g", pt, back, diff)
		}
		if got := MM(pt).ToPT() * PtToMm; math.Abs(got-pt) > 1e-9 {
			t.Fatalf("mm→pt→mm 往返误差过大: in=%gmm back=%g", pt, got)
		}
	}
}

func TestLengthToConversions(t *testing.T) {
	if got := (Length{Value: 1, Unit: UnitIN}).ToMM(); math.Abs(got-25.4) > 1e-9 {
		t.Fatalf("1in 转 mm 期望 25.4，实际 %g", got)
	}
	if got := Pt(72).ToMM(); math.Abs(got-25.4) > 1e-3 {
		t.Fatalf("72pt 应约等于 25.4mm，实际 %g", got)
	}
	if got := Pt(12).ToPT(); got != 12 {
		t.Fatalf("pt→pt 应保持原值，实际 %g", got)
	}
	if got := (Length{Value: 3}).ToMM(); got != 3 {
		t.Fatalf("无单位数值应原样返回，实际 %g", got)
	}
	if s := Pt(12).String(); s != "12pt" {
		t.Fatalf("unexpected string %q", s)
	}
	if got := MM(25.4).ToPT(); math.Abs(got-72) > 1e-3 {
		t.Fatalf("25.4mm 应约等于 72pt，实际 %g", got)
	}
}

func TestStyleRegistryConstants(t *testing.T) {
	cases := []struct {
		kind       paragraph.Kind
		size       float64
		leading    float64
		spaceAfter float64
	}{
		{paragraph.Heading, 16, 20, 30},
		{paragraph.Body, 12, 18, 12},
	}
	for _, tc := range cases {
		s := StyleFor(tc.kind)
		if s.FontSize != tc.size || s.Leading != tc.leading || s.SpaceAfter != tc.spaceAfter {
			t.Fatalf("%s 样式不符: %+v", tc.kind, s)
		}
		if s.Font != ReportFont {
			t.Fatalf("%s 字体应为 %s，实际 %s", tc.kind, ReportFont, s.Font)
		}
	}
	if StyleFor(paragraph.Kind(42)) != StyleFor(paragraph.Body) {
		t.Fatalf("未知类别应回落为正文样式")
	}
}

func TestA4Geometry(t *testing.T) {
	g := A4Geometry
	if g.Width != 210 || g.Height != 297 {
		t.Fatalf("A4 尺寸不符: %gx%g", g.Width, g.Height)
	}
	m := g.Margin
	if m.Top != m.Bottom || m.Left != m.Right || m.Top != m.Left || math.Abs(m.Top*MmToPt-72) > 1e-9 {
		t.Fatalf("四边边距应均为 72pt: %+v", m)
	}
	if got := g.ContentWidth(); math.Abs(got-(210-2*m.Left)) > 1e-9 {
		t.Fatalf("内容宽度不符: %g", got)
	}
	if !g.valid() {
		t.Fatalf("A4 几何应有效")
	}
}
