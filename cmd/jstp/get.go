package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/ir/kpath"
	"github.com/metarhia/jstp-go/query"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an expression", cli.ErrUsage)
	}
	if cfg.KPath {
		return getKPath(cfg, cc, args[0], args[1:])
	}
	prg, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return eachDoc(cfg.MainConfig, cc, args[1:], func(w io.Writer, file string, n *ir.Node) error {
		if cfg.Test {
			ok, err := prg.Test(n)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			return cfg.output(w, n)
		}
		res, err := prg.Run(n)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", prg, err)
		}
		return cfg.output(w, res)
	})
}

func getKPath(cfg *GetConfig, cc *cli.Context, kp string, files []string) error {
	if _, err := kpath.Parse(kp); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return eachDoc(cfg.MainConfig, cc, files, func(w io.Writer, file string, n *ir.Node) error {
		res, err := n.GetKPath(kp)
		if errors.Is(err, ir.ErrNoPath) {
			return nil
		}
		if err != nil {
			return err
		}
		return cfg.output(w, res)
	})
}
