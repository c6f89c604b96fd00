package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/metarhia/jstp-go/encode"
	"github.com/metarhia/jstp-go/packet"
	"github.com/metarhia/jstp-go/stream"

	"github.com/scott-cotton/cli"
)

func packets(cfg *PacketConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Packet.Parse(cc, args)
	if err != nil {
		return err
	}
	var enc *stream.Encoder
	if cfg.Frames {
		enc = stream.NewEncoder(cc.Out)
	}
	for _, file := range inputs(args) {
		if err := packetFile(cfg, cc, file, enc); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

// packetFile streams the packets of one input, describing them or, when enc
// is set, writing them back out as compact frames.
func packetFile(cfg *PacketConfig, cc *cli.Context, file string, enc *stream.Encoder) error {
	r, err := openPath(cc, file)
	if err != nil {
		return err
	}
	defer r.Close()
	var opts []stream.StreamOption
	if cfg.MaxFrame > 0 {
		opts = append(opts, stream.WithMaxFrame(cfg.MaxFrame))
	}
	dec := stream.NewDecoder(r, opts...)
	for i := 0; ; i++ {
		n, err := dec.Decode()
		if err == io.EOF {
			return nil
		}
		var p *packet.Packet
		if err == nil {
			p, err = packet.Decode(n)
		}
		if err != nil {
			if !cfg.Keep || errors.Is(err, stream.ErrFrameTooLarge) {
				return fmt.Errorf("packet %d at offset %d: %w", i, dec.Offset(), err)
			}
			theLog.Warn("skipping packet", "file", file, "index", i, "offset", dec.Offset(), "error", err)
			continue
		}
		if enc != nil {
			err = enc.Encode(p.Node())
		} else {
			_, err = fmt.Fprintln(cc.Out, describe(p))
		}
		if err != nil {
			return err
		}
	}
}

// describe renders p as one line: kind, id, interface, name and args.
func describe(p *packet.Packet) string {
	parts := []string{p.Kind.String()}
	if p.Kind == packet.Heartbeat {
		return parts[0]
	}
	parts = append(parts, fmt.Sprint(p.ID))
	if p.Interface != "" {
		parts = append(parts, p.Interface)
	}
	if p.Name != "" {
		parts = append(parts, p.Name)
	}
	if p.Args != nil {
		s, err := encode.String(p.Args)
		if err != nil {
			s = fmt.Sprintf("<%v>", err)
		}
		parts = append(parts, s)
	}
	if code, msg, ok := p.ErrorInfo(); ok {
		parts = append(parts, fmt.Sprintf("(error %d: %s)", code, msg))
	}
	return strings.Join(parts, " ")
}
