package report

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrInvalidDocument is returned when generated bytes do not form a valid PDF.
var ErrInvalidDocument = errors.New("invalid PDF document")

var disableConfigDir sync.Once

func pdfConfig() *model.Configuration {
	// pdfcpu 默认会在用户目录写入配置文件，这里只做内存校验
	disableConfigDir.Do(api.DisableConfigDir)
	return model.NewDefaultConfiguration()
}

// Verify 使用 pdfcpu 校验 PDF 字节并返回页数。
func Verify(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDocument)
	}
	conf := pdfConfig()
	if err := api.Validate(bytes.NewReader(data), conf); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	pages, err := api.PageCount(bytes.NewReader(data), conf)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return pages, nil
}
