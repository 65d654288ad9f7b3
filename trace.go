package main

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// newTracer builds the derivation trace logger: a text handler on w,
// debug-level when verbose, plus a debug-level JSON handler on
// traceFile when a path is given. The returned func closes the file.
func newTracer(w io.Writer, verbose bool, traceFile string) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	}
	closer := func() {}
	if traceFile != "" {
		f, err := os.Create(traceFile)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closer = func() { f.Close() }
	}
	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}
