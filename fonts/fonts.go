// Package fonts 解析字体来源并返回字体字节。
//
// 支持的来源：
//   - "builtin:goregular" 等内置 Go 字体（仅覆盖拉丁字符）；
//   - 文件路径（相对路径基于调用方给定的目录）。
//
// "system:<family>" 需要渲染器按系统字体族加载，不在本包处理。
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	BuiltinPrefix = "builtin:"
	SystemPrefix  = "system:"
)

var builtin = map[string][]byte{
	"goregular": goregular.TTF,
	"gobold":    gobold.TTF,
	"gomono":    gomono.TTF,
}

// Builtins 返回可用的内置字体名称（已排序）。
func Builtins() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsSystem 判断来源是否为系统字体族。
func IsSystem(src string) bool { return strings.HasPrefix(src, SystemPrefix) }

// SystemFamily 返回 "system:" 前缀之后的字体族名称。
func SystemFamily(src string) string {
	return strings.TrimSpace(strings.TrimPrefix(src, SystemPrefix))
}

// Load 返回字体来源对应的字节数据。baseDir 为空时只接受绝对路径。
func Load(src, baseDir string) ([]byte, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("字体来源为空")
	}
	if strings.HasPrefix(src, BuiltinPrefix) {
		name := strings.TrimPrefix(src, BuiltinPrefix)
		data, ok := builtin[name]
		if !ok {
			return nil, fmt.Errorf("找不到内置字体 %s（可用：%s）", src, strings.Join(Builtins(), ", "))
		}
		return data, nil
	}
	if IsSystem(src) {
		return nil, fmt.Errorf("系统字体 %s 需由渲染器加载", src)
	}
	path := src
	if !filepath.IsAbs(path) {
		if baseDir == "" {
			return nil, fmt.Errorf("未指定资源目录时不允许使用相对字体路径：%s", src)
		}
		path = filepath.Join(baseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", src, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("字体文件 %s 为空", src)
	}
	return data, nil
}
