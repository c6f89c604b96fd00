package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: 2}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: jstp/j, json, yaml/y, cbor/c",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: jstp/j, json, yaml/y, cbor/c",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jstp").
		WithSynopsis("jstp [opts] command [opts]").
		WithDescription("jstp is a tool for working with JSTP object notation and packets.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jstpMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			ConvCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			SumCommand(cfg),
			DumpCommand(cfg),
			PacketCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("parse and re-render documents, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func ConvCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Conv, "conv").
		WithAliases("c").
		WithSynopsis("conv [files]").
		WithDescription("convert documents between formats, see -I and -O").
		WithRun(func(cc *cli.Context, args []string) error {
			return conv(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-t] <expr> [files]").
		WithDescription(getDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

const getDescription = `evaluate an expression against each document.

The fields of an object document are variables and _ is the whole
document. isUndefined(x) tests for undefined and jstp(x) renders a value.

  jstp get 'call[1]' packet.jstp
  jstp get -t 'len(signIn) == 2' packets.jstp

With -k the argument is a kinded path instead and documents without
that path are skipped.

  jstp get -k 'auth.signIn[0]' packets.jstp`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-s|-merge] a b").
		WithDescription("diff two documents, exiting 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-merge] [-f] <patch> [files]").
		WithDescription("apply an RFC 6902 JSON patch or an RFC 7386 merge patch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
}

func SumCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SumConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Sum, "sum").
		WithSynopsis("sum [files]").
		WithDescription("print the BLAKE3 digest of each document's value").
		WithRun(func(cc *cli.Context, args []string) error {
			return sum(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [-diag|-tokens] [files]").
		WithDescription("dump the IR of documents as JSON").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func PacketCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PacketConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Packet, "packet").
		WithAliases("pkt").
		WithSynopsis("packet [-k] [-z] [-max-frame n] [files]").
		WithDescription("decode and describe NUL separated JSTP packets").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return packets(cfg, cc, args)
		})
}
