package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/metarhia/jstp-go/format"
	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/parse"
	"github.com/metarhia/jstp-go/transcode"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/scott-cotton/cli"
)

const (
	gzSuffix  = ".gz"
	zstSuffix = ".zst"
)

// formatOfPath maps a file name to a format by its suffix, looking through
// a compression suffix.
func formatOfPath(path string) (format.Format, bool) {
	path = strings.TrimSuffix(strings.TrimSuffix(path, gzSuffix), zstSuffix)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jstp":
		return format.JSTPFormat, true
	case ".json":
		return format.JSONFormat, true
	case ".yaml", ".yml":
		return format.YAMLFormat, true
	case ".cbor":
		return format.CBORFormat, true
	}
	return format.JSTPFormat, false
}

// openPath opens path, or cc.In for "-", decompressing by suffix.
func openPath(cc *cli.Context, path string) (io.ReadCloser, error) {
	var (
		r      io.Reader
		closer io.Closer = io.NopCloser(nil)
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		r, closer = f, f
	} else {
		r = cc.In
	}
	switch {
	case strings.HasSuffix(path, gzSuffix):
		gz, err := gzip.NewReader(r)
		if err != nil {
			closer.Close()
			return nil, fmt.Errorf("error opening gzip stream %q: %w", path, err)
		}
		return &readCloser{Reader: gz, close: func() error {
			gz.Close()
			return closer.Close()
		}}, nil
	case strings.HasSuffix(path, zstSuffix):
		zr, err := zstd.NewReader(r)
		if err != nil {
			closer.Close()
			return nil, fmt.Errorf("error opening zstd stream %q: %w", path, err)
		}
		return &readCloser{Reader: zr, close: func() error {
			zr.Close()
			return closer.Close()
		}}, nil
	}
	return &readCloser{Reader: r, close: closer.Close}, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error {
	return r.close()
}

// readPath reads all of path, or of cc.In for "-", decompressing by suffix.
func readPath(cc *cli.Context, path string) ([]byte, error) {
	r, err := openPath(cc, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// splitDocs splits input into documents. Text formats are separated by
// NUL bytes, as packets are on the wire, and YAML also by "---" lines.
// Blank documents are dropped.
func splitDocs(d []byte, f format.Format) [][]byte {
	if f.IsBinary() {
		return [][]byte{d}
	}
	var parts [][]byte
	if f == format.YAMLFormat {
		for _, p := range bytes.Split(d, []byte{0}) {
			parts = append(parts, bytes.Split(p, []byte("\n---\n"))...)
		}
	} else {
		parts = bytes.Split(d, []byte{0})
	}
	res := parts[:0]
	for _, p := range parts {
		if len(bytes.TrimSpace(p)) == 0 {
			continue
		}
		res = append(res, p)
	}
	return res
}

// getObjFiles decodes every document in path.
func getObjFiles(cfg *MainConfig, cc *cli.Context, path string, opts ...parse.ParseOption) ([]*ir.Node, error) {
	d, err := readPath(cc, path)
	if err != nil {
		return nil, err
	}
	f := cfg.inFormat(path)
	docs := splitDocs(d, f)
	res := make([]*ir.Node, 0, len(docs))
	for i, doc := range docs {
		n, err := transcode.Decode(doc, f, opts...)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d of %s: %w", i, path, err)
		}
		res = append(res, n)
	}
	return res, nil
}

// getObjFile decodes path, which must hold exactly one document.
func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	ns, err := getObjFiles(cfg, cc, path)
	if err != nil {
		return nil, err
	}
	if len(ns) != 1 {
		return nil, fmt.Errorf("%s: expected 1 document, got %d", path, len(ns))
	}
	return ns[0], nil
}

// inputs defaults to stdin when no files are given.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// openOut creates path for writing, compressing by suffix. The returned
// close func flushes the compressor before closing the file.
func openOut(path string) (io.WriteCloser, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, nil, err
	}
	var wc io.WriteCloser
	switch {
	case strings.HasSuffix(path, gzSuffix):
		wc = gzip.NewWriter(f)
	case strings.HasSuffix(path, zstSuffix):
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		wc = zw
	default:
		return f, f.Close, nil
	}
	return wc, func() error {
		if err := wc.Close(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}
