package paragraph

import (
	"strings"
	"testing"
)

func TestClassifyTitleAndBody(t *testing.T) {
	got := Classify("一、Title\n\nBody text")
	want := []Unit{
		{Text: "一、Title", Kind: Heading},
		{Text: "Body text", Kind: Body},
	}
	if len(got) != len(want) {
		t.Fatalf("期望 %d 个段落，实际 %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("段落 %d 不符: got=%+v want=%+v", i, got[i], want[i])
		}
	}
}

func TestIsHeadingPrefixes(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"一、概述", true},
		{"二、", true},
		{"三、方法", true},
		{"四、结果", true},
		{"五、讨论", true},
		{"六、结论", true},
		{"七、附录", false},
		{"1. Intro", false},
		{"1、背景", false},
		{"壹、背景", false},
		{"一.背景", false},
		{" 一、前导空格", false},
		{"一", false},
		{"", false},
		{"正文 一、不在开头", false},
	}
	for _, tc := range cases {
		if got := IsHeading(tc.in); got != tc.want {
			t.Fatalf("IsHeading(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClassifyNoDelimiter(t *testing.T) {
	units := Classify("hello\nworld")
	if len(units) != 1 {
		t.Fatalf("无分隔符时应只有一个段落，实际 %d", len(units))
	}
	if units[0].Text != "hello\nworld" || units[0].Kind != Body {
		t.Fatalf("unexpected unit: %+v", units[0])
	}
}

func TestClassifyEmptyBlock(t *testing.T) {
	units := Classify("")
	if len(units) != 1 {
		t.Fatalf("空串应产生一个段落，实际 %d", len(units))
	}
	if units[0].Text != "" || units[0].Kind != Body {
		t.Fatalf("unexpected unit: %+v", units[0])
	}
}

func TestClassifyKeepsEmptySplits(t *testing.T) {
	units := Classify("a\n\n\n\nb\n\n")
	texts := make([]string, len(units))
	for i, u := range units {
		texts[i] = u.Text
	}
	want := []string{"a", "", "b", ""}
	if strings.Join(texts, "|") != strings.Join(want, "|") || len(texts) != len(want) {
		t.Fatalf("切分结果不符: got=%q want=%q", texts, want)
	}
}

func TestSplitRoundTrip(t *testing.T) {
	blocks := []string{
		"",
		"single",
		"一、A\n\nB\n\nC",
		"\n\n",
		"a\n\n\nb",
		"x\n\n\n\n\ny\n",
	}
	for _, b := range blocks {
		if got := strings.Join(Split(b), Delimiter); got != b {
			t.Fatalf("往返失败: in=%q out=%q", b, got)
		}
	}
}

func TestClassifyAllPreservesOrder(t *testing.T) {
	units := ClassifyAll([]string{"一、A\n\nb", "二、C", "d\n\ne"})
	want := []Unit{
		{"一、A", Heading}, {"b", Body}, {"二、C", Heading}, {"d", Body}, {"e", Body},
	}
	if len(units) != len(want) {
		t.Fatalf("expected %d units, got %d", len(want), len(units))
	}
	for i := range want {
		if units[i] != want[i] {
			t.Fatalf("unit %d: got=%+v want=%+v", i, units[i], want[i])
		}
	}
	if got := ClassifyAll(nil); len(got) != 0 {
		t.Fatalf("空输入应无段落，实际 %d", len(got))
	}
}

func TestKindString(t *testing.T) {
	if Heading.String() != "heading" || Body.String() != "body" {
		t.Fatalf("unexpected kind names: %s %s", Heading, Body)
	}
	var zero Kind
	if zero != Body {
		t.Fatalf("Kind 零值应为 Body")
	}
}
