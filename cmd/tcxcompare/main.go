package main

import (
	"io"
	"log/slog"
	"os"

	"tcx-compare/internal/config"

	"github.com/google/uuid"
)

var (
	mainRunner = realMain
	exitFn     = os.Exit
)

func main() {
	exitFn(mainRunner(os.Args[1:], os.Stdout, os.Stderr))
}

func realMain(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()
	setupLogger(stderr, cfg.LogLevel)

	root := newRootCmd(cfg)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

func setupLogger(w io.Writer, level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler).With("run_id", uuid.NewString()))
}
