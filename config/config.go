// Package config 读取 YAML 配置文件：字体来源、输出路径与日志级别。
// 样式与页面几何是固定常量，不可配置。
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ByLCY/papyrus-report/layout"
	canvasrenderer "github.com/ByLCY/papyrus-report/renderer/canvas"
)

// FallbackNone 与留空等价：不使用兜底字体，字体不可用时渲染直接失败。
const FallbackNone = "none"

// Sentinel errors for configuration loading.
var (
	ErrReadConfig      = errors.New("failed to read config file")
	ErrParseConfig     = errors.New("failed to parse config file")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrEmptyOutput     = errors.New("output path cannot be empty")
)

// Config 是配置文件的完整结构。
type Config struct {
	Font     FontConfig `yaml:"font"`
	Output   string     `yaml:"output"`
	Debug    string     `yaml:"debug"`
	LogLevel string     `yaml:"log_level"`

	// baseDir 为配置文件所在目录，用于解析相对字体路径。
	baseDir string
}

// FontConfig 描述报告字体来源。
type FontConfig struct {
	Src      string `yaml:"src"`
	Fallback string `yaml:"fallback"`
}

// Default 返回默认配置。
func Default() *Config {
	return &Config{
		Font: FontConfig{
			Src: canvasrenderer.DefaultFontSource,
		},
		Output:   filepath.Join("output", "report.pdf"),
		LogLevel: "info",
	}
}

// Load 读取 path 指向的 YAML 文件，未出现的字段保留默认值。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.baseDir = filepath.Dir(path)
	return cfg, nil
}

// Parse 解析 YAML 内容并校验。
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 检查配置取值。
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return ErrEmptyOutput
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel 将 log_level 转为 slog.Level。
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
}

// RendererOptions 根据字体配置构造 canvas 渲染器选项。
func (c *Config) RendererOptions() canvasrenderer.Options {
	opts := canvasrenderer.Options{
		BaseDir: c.baseDir,
		Fonts:   map[string]canvasrenderer.Resource{},
	}
	src := strings.TrimSpace(c.Font.Src)
	if src == "" {
		src = canvasrenderer.DefaultFontSource
	}
	opts.Fonts[layout.ReportFont] = canvasrenderer.Resource{Src: src}

	// 兜底字体只在显式配置时启用，且渲染时会检查其字形覆盖
	if fb := strings.TrimSpace(c.Font.Fallback); fb != "" && !strings.EqualFold(fb, FallbackNone) {
		opts.Fallback = &canvasrenderer.Resource{Src: fb}
	}
	return opts
}
