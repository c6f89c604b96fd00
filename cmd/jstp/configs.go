package main

import (
	"fmt"
	"io"
	"os"

	"github.com/metarhia/jstp-go/encode"
	"github.com/metarhia/jstp-go/format"
	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/transcode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='indentation width, 0 for the compact wire form' default=2"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) ioFormat() format.Format {
	switch {
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	return format.JSTPFormat
}

// inFormat returns the format to decode path with. An explicit -I wins,
// then -j or -y, then the file suffix.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if cfg.J || cfg.Y {
		return cfg.ioFormat()
	}
	if f, ok := formatOfPath(path); ok {
		return f
	}
	return format.JSTPFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return cfg.ioFormat()
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeIndent(cfg.Indent),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

// output writes n to w in the output format. Text output ends with a
// newline.
func (cfg *MainConfig) output(w io.Writer, n *ir.Node) error {
	f := cfg.outFormat()
	if err := transcode.Encode(n, f, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	if f.IsJSTP() || f.IsJSON() {
		if cfg.Indent == 0 {
			_, err := w.Write([]byte("\n"))
			return err
		}
	}
	return nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ConvConfig struct {
	*MainConfig

	Conv *cli.Command
}

type GetConfig struct {
	*MainConfig

	Test  bool `cli:"name=t aliases=test desc='print the inputs for which the expression is true'"`
	KPath bool `cli:"name=k aliases=kpath desc='treat the argument as a kinded path such as a.b[0]'"`

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Changes bool `cli:"name=s aliases=structural desc='list structural changes instead of a line diff'"`
	Merge   bool `cli:"name=merge desc='print a merge patch turning a into b'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge bool `cli:"name=merge desc='apply an RFC 7386 merge patch'"`
	File  bool `cli:"name=f desc='patch arg is a file path'"`

	Patch *cli.Command
}

type SumConfig struct {
	*MainConfig

	Sum *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Diag   bool `cli:"name=diag desc='print CBOR diagnostic notation instead of IR JSON'"`
	Tokens bool `cli:"name=tokens desc='print the JSTP token stream instead of IR JSON'"`

	Dump *cli.Command
}

type PacketConfig struct {
	*MainConfig

	Keep     bool `cli:"name=k desc='log malformed packets and keep going'"`
	Frames   bool `cli:"name=z aliases=frames desc='write packets back as compact NUL separated frames'"`
	MaxFrame int  `cli:"name=max-frame desc='largest accepted packet in bytes' default=8388608"`

	Packet *cli.Command
}
