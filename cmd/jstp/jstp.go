package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func jstpMain(cfg *MainConfig, cc *cli.Context, args []string) (err error) {
	defer func() {
		err = cfg.closeOut(err)
	}()
	args, err = cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if cfg.Indent < 0 {
		return fmt.Errorf("%w: negative indent %d", cli.ErrUsage, cfg.Indent)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// closeOut closes the -o output. For compressed output this is the final
// flush, so its error is returned unless err is already set.
func (cfg *MainConfig) closeOut(err error) error {
	if cfg.CloseOut == nil {
		return err
	}
	cerr := cfg.CloseOut()
	cfg.CloseOut = nil
	if err == nil && cerr != nil {
		return fmt.Errorf("error closing %s: %w", cfg.Out, cerr)
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	w, closeOut, err := openOut(cfg.Out)
	if err != nil {
		return nil, err
	}
	cc.Out = w
	cfg.CloseOut = closeOut
	return nil, nil
}
