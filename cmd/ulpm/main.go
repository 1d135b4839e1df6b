package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/toni500git/ulpm/pkg/console"
	"github.com/toni500git/ulpm/pkg/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, dir: "."}
	root := a.rootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if errors.Is(err, ui.ErrAborted) {
		return 1
	}
	logger := a.logger
	if logger == nil {
		// flag errors happen before the logger is set up
		logger = console.New(stderr, slog.LevelInfo)
	}
	logger.Error(err.Error())
	return 1
}
