package main

import (
	"errors"
	"os"

	"github.com/ByLCY/papyrus-report/config"
	"github.com/ByLCY/papyrus-report/renderer"
	"github.com/ByLCY/papyrus-report/report"
)

// 退出码：0 成功，1 其他错误，2 用法或配置错误，3 读写错误，4 渲染失败。
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2
	ExitIO      = 3
	ExitRender  = 4
)

// exitCodeFor 按错误链映射退出码。
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var re *renderer.RenderError
	if errors.As(err, &re) || errors.Is(err, report.ErrInvalidDocument) {
		return ExitRender
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, config.ErrReadConfig) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrParseInput) ||
		errors.Is(err, config.ErrParseConfig) ||
		errors.Is(err, config.ErrInvalidLogLevel) ||
		errors.Is(err, config.ErrEmptyOutput) {
		return ExitUsage
	}

	return ExitGeneral
}
