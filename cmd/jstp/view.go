package main

import (
	"fmt"
	"io"

	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args, func(w io.Writer, _ string, n *ir.Node) error {
		return cfg.output(w, n)
	})
}

// eachDoc calls f on every document of every file in args, in order.
func eachDoc(cfg *MainConfig, cc *cli.Context, args []string, f func(io.Writer, string, *ir.Node) error, opts ...parse.ParseOption) error {
	w := cc.Out
	for _, file := range inputs(args) {
		ns, err := getObjFiles(cfg, cc, file, opts...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		for i, n := range ns {
			if err := f(w, file, n); err != nil {
				return fmt.Errorf("error on document %d of %s: %w", i, file, err)
			}
		}
	}
	return nil
}
