package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags 汇总命令行参数。
type cliFlags struct {
	in      string
	out     string
	debug   string
	config  string
	check   bool
	mcp     bool
	verbose bool
	version bool
	help    bool
	usage   string

	// 是否显式指定，用于覆盖配置文件
	outSet   bool
	debugSet bool

	files []string
}

func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("papyrus-report", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&f.in, "in", "i", "", `JSON 输入文件（{"texts": [...]}），"-" 表示标准输入`)
	fs.StringVarP(&f.out, "out", "o", "", "PDF 输出路径（默认 output/report.pdf）")
	fs.StringVar(&f.debug, "debug", "", "布局调试 JSON 输出路径")
	fs.StringVarP(&f.config, "config", "c", "", "YAML 配置文件路径")
	fs.BoolVar(&f.check, "check", false, "用固定输入自检渲染环境后退出")
	fs.BoolVar(&f.mcp, "mcp", false, "通过标准输入输出提供 MCP 工具 gen_pdf")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "输出调试日志")
	fs.BoolVar(&f.version, "version", false, "显示版本")

	if len(args) > 0 {
		args = args[1:]
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return &cliFlags{help: true, usage: usageText(fs)}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	f.files = fs.Args()
	f.outSet = fs.Changed("out")
	f.debugSet = fs.Changed("debug")

	if f.check && f.mcp {
		return nil, fmt.Errorf("%w: --check 与 --mcp 不能同时使用", ErrUsage)
	}
	if (f.check || f.mcp) && (f.in != "" || len(f.files) > 0) {
		return nil, fmt.Errorf("%w: --check/--mcp 不接受输入文件", ErrUsage)
	}
	if f.in != "" && len(f.files) > 0 {
		return nil, fmt.Errorf("%w: --in 与文本文件参数不能同时使用", ErrUsage)
	}
	return f, nil
}

func usageText(fs *flag.FlagSet) string {
	return "Usage: papyrus-report [flags] [text files...]\n\n" +
		"将文本块生成为分页的 A4 PDF 报告。段落以空行分隔，以 一、 至 六、 开头的段落为标题。\n\n" +
		"Flags:\n" + fs.FlagUsages()
}
