package main

import (
	"fmt"

	"github.com/naay-lang/naay"

	"github.com/scott-cotton/cli"
)

// DumpConfig is the "dump" subcommand's options.
type DumpConfig struct {
	*MainConfig
}

func runDump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if err := dumpOne(cfg, cc, arg); err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		if i < len(args)-1 {
			fmt.Fprintln(cc.Out, "---")
		}
	}
	return nil
}

func dumpOne(cfg *DumpConfig, cc *cli.Context, arg string) error {
	text, err := readInput(arg)
	if err != nil {
		return err
	}
	tree, err := naay.Loads(text)
	if err != nil {
		return err
	}
	if cfg.format().IsJSON() {
		plain, err := naay.Plain(tree)
		if err != nil {
			return err
		}
		d, err := marshalOrderedJSON(plain)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(append(d, '\n'))
		return err
	}
	out, err := naay.Dumps(tree, cfg.encOpts(cc.Out)...)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(out)
	return err
}
