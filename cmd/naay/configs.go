package main

import (
	"fmt"
	"io"
	"os"

	"github.com/naay-lang/naay/encode"
	"github.com/naay-lang/naay/format"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

// MainConfig holds the options shared by every subcommand.
type MainConfig struct {
	Color   bool `cli:"name=color desc='force colored output'"`
	NoColor bool `cli:"name=no-color desc='disable colored output'"`

	OutFormat *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) ofmtOpt() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.OutFormat = &f
		return f, nil
	})
}

func (cfg *MainConfig) format() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.NaayFormat
}

// encOpts builds the encode.Options for writing to w, deciding color
// from -color/-no-color or, absent either, from whether w is a
// terminal.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	switch {
	case cfg.NoColor:
		return nil
	case cfg.Color:
		return []encode.Option{encode.WithColors(encode.DefaultColors())}
	}
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		return []encode.Option{encode.WithColors(encode.DefaultColors())}
	}
	return nil
}

func readInput(arg string) ([]byte, error) {
	if arg == "-" || arg == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}
