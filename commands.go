package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ByLCY/papyrus-report/config"
	"github.com/ByLCY/papyrus-report/layout"
	"github.com/ByLCY/papyrus-report/mcptool"
	canvasrenderer "github.com/ByLCY/papyrus-report/renderer/canvas"
	"github.com/ByLCY/papyrus-report/report"
)

// Sentinel errors for the CLI.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrNoInput     = errors.New("no input: use --in or pass text files")
	ErrReadInput   = errors.New("failed to read input")
	ErrParseInput  = errors.New("failed to parse input JSON")
	ErrWriteOutput = errors.New("failed to write output")
)

// inputDocument 是 --in 文件的结构，与 MCP 工具入参一致。
type inputDocument struct {
	Texts *[]string `json:"texts"`
}

func loadConfig(f *cliFlags) (*config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return nil, err
		}
	}
	if f.outSet {
		cfg.Output = f.out
	}
	if f.debugSet {
		cfg.Debug = f.debug
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readTexts 从 JSON 输入或文本文件列表读取文本块；每个文本文件作为一个文本块。
func readTexts(in string, files []string, stdin io.Reader) ([]string, error) {
	switch {
	case in != "":
		var (
			data []byte
			err  error
		)
		if in == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(in)
		}
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrReadInput, in, err)
		}
		return parseInput(data)
	case len(files) > 0:
		texts := make([]string, 0, len(files))
		for _, path := range files {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("%w %s: %w", ErrReadInput, path, err)
			}
			texts = append(texts, string(data))
		}
		return texts, nil
	default:
		return nil, ErrNoInput
	}
}

func parseInput(data []byte) ([]string, error) {
	var doc inputDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseInput, err)
	}
	if doc.Texts == nil {
		return nil, fmt.Errorf("%w: missing \"texts\"", ErrParseInput)
	}
	return *doc.Texts, nil
}

func newRenderer(cfg *config.Config) *canvasrenderer.Renderer {
	return canvasrenderer.NewRendererWithOptions(cfg.RendererOptions())
}

func runGenerate(f *cliFlags, cfg *config.Config, stdin io.Reader, logger *slog.Logger, stdout io.Writer) error {
	texts, err := readTexts(f.in, f.files, stdin)
	if err != nil {
		return err
	}
	r := newRenderer(cfg)
	logger.Debug("generating report", "blocks", len(texts), "font", cfg.Font.Src)

	// 调试 JSON 与 PDF 来自同一次分页
	doc, res, err := report.GenerateWithLayout(texts, r)
	if cfg.Debug != "" && res != nil {
		if werr := writeFile(cfg.Debug, func(path string) error { return layout.WriteDebugJSON(res, path) }); werr != nil {
			return werr
		}
		logger.Info("wrote layout debug", "path", cfg.Debug, "pages", len(res.Pages))
	}
	if err != nil {
		return fmt.Errorf("生成 PDF 失败: %w", err)
	}
	if err := writeFile(cfg.Output, func(path string) error { return os.WriteFile(path, doc.Data, 0o644) }); err != nil {
		return err
	}
	logger.Info("wrote report", "path", cfg.Output, "bytes", len(doc.Data))
	fmt.Fprintf(stdout, "已生成 PDF：%s\n", cfg.Output)
	return nil
}

// writeFile 先创建父目录再调用 write。
func writeFile(path string, write func(string) error) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrWriteOutput, dir, err)
		}
	}
	if err := write(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	return nil
}

func runCheck(cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	if err := report.Probe(report.Options{Renderer: newRenderer(cfg)}); err != nil {
		logger.Error("probe failed", "error", err)
		return err
	}
	fmt.Fprintln(stdout, "ok")
	return nil
}

// runMCP 先自检，失败时不注册工具直接退出。
func runMCP(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	opts := report.Options{Renderer: newRenderer(cfg)}
	if err := report.Probe(opts); err != nil {
		logger.Error("probe failed, gen_pdf not registered", "error", err)
		return err
	}
	srv := mcptool.NewServer(Version, opts, logger)
	logger.Info("serving MCP over stdio", "tool", mcptool.ToolName)
	if err := mcptool.ServeStdio(ctx, srv); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("MCP 服务异常退出: %w", err)
	}
	return nil
}
