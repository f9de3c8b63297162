package main

import (
	"fmt"

	"github.com/naay-lang/naay"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

// PatchConfig is the "patch" subcommand's options.
type PatchConfig struct {
	*MainConfig
}

func runPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a patch file and a target document", cli.ErrUsage)
	}
	patchText, err := readInput(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	patch, err := jsonpatch.DecodePatch(patchText)
	if err != nil {
		return fmt.Errorf("decoding patch: %w", err)
	}

	docText, err := readInput(args[1])
	if err != nil {
		return fmt.Errorf("%s: %w", args[1], err)
	}
	tree, err := naay.Loads(docText)
	if err != nil {
		return err
	}
	plain, err := naay.Plain(tree)
	if err != nil {
		return err
	}
	docJSON, err := marshalOrderedJSON(plain)
	if err != nil {
		return err
	}

	patched, err := patch.Apply(docJSON)
	if err != nil {
		return fmt.Errorf("applying patch: %w", err)
	}
	theLog.Info("patched", "target", args[1], "patch", args[0])
	_, err = cc.Out.Write(append(patched, '\n'))
	return err
}
