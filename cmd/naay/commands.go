package main

import (
	"github.com/scott-cotton/cli"
)

// MainCommand builds the root "naay" command and its subcommands.
func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "O",
		Aliases:     []string{"ofmt"},
		Description: "output format: naay/n, json/j",
		Type:        cli.NamedFuncOpt(cfg.ofmtOpt(), "(format)"),
	})

	return cli.NewCommandAt(&cfg.Main, "naay").
		WithSynopsis("naay [opts] command [opts] [files]").
		WithDescription("naay loads, dumps, diffs, queries, and patches naay documents.").
		WithOpts(opts...).
		WithSubs(
			LoadCommand(cfg),
			DumpCommand(cfg),
			DiffCommand(cfg),
			QueryCommand(cfg),
			PatchCommand(cfg),
		)
}

func LoadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LoadConfig{MainConfig: mainCfg}
	return cli.NewCommand("load").
		WithAliases("l").
		WithSynopsis("load [files]").
		WithDescription("parse files and re-emit them through the dumper, verifying the round trip").
		WithRun(func(cc *cli.Context, args []string) error {
			return runLoad(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommand("dump").
		WithAliases("d").
		WithSynopsis("dump [files]").
		WithDescription("parse and pretty-print naay documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return runDump(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommand("diff").
		WithSynopsis("diff <from> <to>").
		WithDescription("structural diff of two documents' plain projections").
		WithRun(func(cc *cli.Context, args []string) error {
			return runDiff(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	return cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis("query <expr> [file]").
		WithDescription("evaluate an expr-lang expression against a document's plain projection").
		WithRun(func(cc *cli.Context, args []string) error {
			return runQuery(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	return cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch <patch.json> <file>").
		WithDescription("apply an RFC 6902 JSON Patch to a document's plain projection").
		WithRun(func(cc *cli.Context, args []string) error {
			return runPatch(cfg, cc, args)
		})
}
