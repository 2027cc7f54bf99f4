package renderer

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRenderErrorUnwrap(t *testing.T) {
	err := Errorf("font", "字体 %s 不可用: %w", "STSong-Light", ErrFontUnavailable)
	if !errors.Is(err, ErrFontUnavailable) {
		t.Fatalf("应能通过 errors.Is 识别哨兵错误")
	}
	if !strings.Contains(err.Error(), "font") || !strings.Contains(err.Error(), "STSong-Light") {
		t.Fatalf("错误信息缺少上下文: %s", err)
	}
}

func TestAsRenderError(t *testing.T) {
	if AsRenderError("x", nil) != nil {
		t.Fatalf("nil 应保持为 nil")
	}
	inner := Errorf("write", "boom")
	wrapped := fmt.Errorf("outer: %w", inner)
	if got := AsRenderError("draw", wrapped); got != inner {
		t.Fatalf("已包含 RenderError 时应返回原值")
	}
	plain := errors.New("plain")
	got := AsRenderError("layout", plain)
	if got.Op != "layout" || !errors.Is(got, plain) {
		t.Fatalf("unexpected wrap: %+v", got)
	}
}
