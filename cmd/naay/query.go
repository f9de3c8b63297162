package main

import (
	"fmt"

	"github.com/naay-lang/naay"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

// QueryConfig is the "query" subcommand's options.
type QueryConfig struct {
	*MainConfig
}

func runQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression argument", cli.ErrUsage)
	}
	exprText := args[0]
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	text, err := readInput(file)
	if err != nil {
		return err
	}
	tree, err := naay.Loads(text)
	if err != nil {
		return err
	}
	plain, err := naay.Plain(tree)
	if err != nil {
		return err
	}
	env := map[string]any{"doc": toGoValue(plain)}
	program, err := expr.Compile(exprText, expr.Env(env))
	if err != nil {
		return fmt.Errorf("compiling expression: %w", err)
	}
	result, err := expr.Run(program, env)
	if err != nil {
		return fmt.Errorf("evaluating expression: %w", err)
	}
	d, err := marshalGoJSON(result)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(append(d, '\n'))
	return err
}
