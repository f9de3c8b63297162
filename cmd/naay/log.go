package main

import (
	"log/slog"
	"os"
)

// theLog is operational logging, distinct from the library's own
// debug package: it reports what the CLI did, the library's tracing
// flags report how the parser got there.
var theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		if a.Key == slog.LevelKey && a.Value.String() == "INFO" {
			return slog.Attr{}
		}
		return a
	},
}))
