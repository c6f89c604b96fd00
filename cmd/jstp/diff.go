package main

import (
	"fmt"
	"io"

	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/libdiff"
	"github.com/metarhia/jstp-go/patch"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Changes && cfg.Merge {
		return fmt.Errorf("%w: -s and -merge are exclusive", cli.ErrUsage)
	}
	a, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	if !libdiff.Differs(a, b) {
		return false, nil
	}
	switch {
	case cfg.Merge:
		m, err := patch.CreateMerge(a, b)
		if err != nil {
			return false, err
		}
		return true, cfg.output(w, m)
	case cfg.Changes:
		for _, c := range libdiff.Diff(a, b) {
			if _, err := fmt.Fprintln(w, c); err != nil {
				return false, err
			}
		}
		return true, nil
	}
	txt, err := libdiff.Text(a, b)
	if err != nil {
		return false, err
	}
	_, err = io.WriteString(w, txt)
	return true, err
}
