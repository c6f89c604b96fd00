package main

import (
	"fmt"
	"io"

	"github.com/metarhia/jstp-go/ir"

	"github.com/scott-cotton/cli"
)

func conv(cfg *ConvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Conv.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.OutFormat == nil && !cfg.J && !cfg.Y {
		return fmt.Errorf("%w: conv requires an output format, see -O", cli.ErrUsage)
	}
	return eachDoc(cfg.MainConfig, cc, args, func(w io.Writer, _ string, n *ir.Node) error {
		return cfg.output(w, n)
	})
}
