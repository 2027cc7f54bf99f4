package report

import "fmt"

// ProbeTexts 是自检时使用的固定输入。
var ProbeTexts = []string{"hello", "world"}

// Probe 用固定输入完整运行一次流水线并校验输出，供宿主在注册前确认渲染环境（字体等）可用。
func Probe(opts Options) error {
	doc, err := Generate(ProbeTexts, opts)
	if err != nil {
		return fmt.Errorf("自检生成失败: %w", err)
	}
	pages, err := Verify(doc.Data)
	if err != nil {
		return fmt.Errorf("自检输出校验失败: %w", err)
	}
	if pages < 1 {
		return fmt.Errorf("自检输出没有页面: %w", ErrInvalidDocument)
	}
	return nil
}
