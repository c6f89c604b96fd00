package main

import (
	"fmt"
	"io"

	"github.com/metarhia/jstp-go/format"
	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/token"
	"github.com/metarhia/jstp-go/transcode"

	"github.com/scott-cotton/cli"
	"github.com/sugawarayuuta/sonnet"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Tokens {
		return dumpTokens(cfg, cc, args)
	}
	return eachDoc(cfg.MainConfig, cc, args, func(w io.Writer, _ string, n *ir.Node) error {
		if cfg.Diag {
			d, err := transcode.ToCBOR(n)
			if err != nil {
				return err
			}
			s, err := transcode.DiagnoseCBOR(d)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, s)
			return err
		}
		j, err := sonnet.MarshalIndent(n, "", "  ")
		if err != nil {
			return fmt.Errorf("internal error: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", j)
		return err
	})
}

func dumpTokens(cfg *DumpConfig, cc *cli.Context, args []string) error {
	for _, file := range inputs(args) {
		d, err := readPath(cc, file)
		if err != nil {
			return err
		}
		for i, doc := range splitDocs(d, format.JSTPFormat) {
			src := string(doc)
			toks, err := token.Tokenize(nil, src)
			if err != nil {
				return fmt.Errorf("error tokenizing document %d of %s: %w", i, file, err)
			}
			if err := token.PrintTokens(cc.Out, src, toks); err != nil {
				return err
			}
		}
	}
	return nil
}
