package main

import (
	"fmt"

	"github.com/naay-lang/naay"
	"github.com/naay-lang/naay/ir"

	"github.com/scott-cotton/cli"
)

// LoadConfig is the "load" subcommand's options.
type LoadConfig struct {
	*MainConfig
}

func runLoad(cfg *LoadConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if err := loadOne(cfg, cc, arg); err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		if i < len(args)-1 {
			fmt.Fprintln(cc.Out, "---")
		}
	}
	return nil
}

func loadOne(cfg *LoadConfig, cc *cli.Context, arg string) error {
	text, err := readInput(arg)
	if err != nil {
		return err
	}
	tree, err := naay.Loads(text)
	if err != nil {
		return err
	}
	out, err := naay.Dumps(tree)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	reparsed, err := naay.Loads(out)
	if err != nil {
		return fmt.Errorf("round trip did not re-parse: %w", err)
	}
	if !ir.Equal(tree, reparsed) {
		return fmt.Errorf("round trip changed document value")
	}
	theLog.Info("loaded", "source", arg)
	_, err = cc.Out.Write(out)
	return err
}
