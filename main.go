package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version 在构建时通过 ldflags 注入。
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCodeFor(err))
}

// run 解析参数并执行对应的命令：生成、自检或 MCP 服务。
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	if f.help {
		fmt.Fprint(stdout, f.usage)
		return nil
	}
	if f.version {
		fmt.Fprintf(stdout, "papyrus-report %s\n", Version)
		return nil
	}

	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	level, _ := cfg.SlogLevel()
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// maxprocs.Set 仅在 GOMAXPROCS 环境变量非法时失败，此时沿用运行时默认值。
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))

	switch {
	case f.check:
		return runCheck(cfg, logger, stdout)
	case f.mcp:
		return runMCP(ctx, cfg, logger)
	default:
		return runGenerate(f, cfg, stdin, logger, stdout)
	}
}
