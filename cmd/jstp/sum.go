package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/metarhia/jstp-go/ir"

	"github.com/scott-cotton/cli"
)

func sum(cfg *SumConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sum.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args, func(w io.Writer, file string, n *ir.Node) error {
		s := n.Sum256()
		_, err := fmt.Fprintf(w, "%s  %s\n", hex.EncodeToString(s[:]), file)
		return err
	})
}
