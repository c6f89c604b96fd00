package main

import (
	"fmt"
	"io"

	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/parse"
	"github.com/metarhia/jstp-go/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	if cfg.File && args[0] == "-" && len(args) == 1 {
		return fmt.Errorf("%w: patch and document cannot both be stdin", cli.ErrUsage)
	}
	var p *ir.Node
	if cfg.File {
		p, err = getObjFile(cfg.MainConfig, cc, args[0])
	} else {
		p, err = parse.ParseString(args[0])
	}
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	return eachDoc(cfg.MainConfig, cc, args[1:], func(w io.Writer, _ string, n *ir.Node) error {
		var (
			res *ir.Node
			err error
		)
		if cfg.Merge {
			res, err = patch.Merge(n, p)
		} else {
			res, err = patch.Apply(n, p)
		}
		if err != nil {
			return err
		}
		return cfg.output(w, res)
	})
}
