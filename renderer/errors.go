package renderer

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by RenderError.
var (
	ErrFontUnavailable = errors.New("font unavailable")
	ErrEngine          = errors.New("rendering engine fault")
	ErrOutput          = errors.New("output buffer write failed")
)

// RenderError 表示渲染器无法生成字节流。Op 标明失败阶段（font/layout/draw/write）。
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("渲染失败: %v", e.Err)
	}
	return fmt.Sprintf("渲染失败（%s）: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Errorf 构造一个 RenderError，格式化规则与 fmt.Errorf 相同（支持 %w）。
func Errorf(op, format string, args ...any) *RenderError {
	return &RenderError{Op: op, Err: fmt.Errorf(format, args...)}
}

// AsRenderError 将任意错误包装为 RenderError；已是 RenderError 时原样返回。
func AsRenderError(op string, err error) *RenderError {
	if err == nil {
		return nil
	}
	var re *RenderError
	if errors.As(err, &re) {
		return re
	}
	return &RenderError{Op: op, Err: err}
}
