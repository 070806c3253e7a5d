package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-codepointtrie/cptrie"
	"github.com/forestrie/go-codepointtrie/triestore"
)

// BuiltinPrefix names tries compiled into the binary rather than read from
// the trie directory.
const BuiltinPrefix = "builtin:"

var stdout io.Writer = os.Stdout

// Globals are the flags shared by every command.
type Globals struct {
	Dir       string `name:"dir" short:"d" env:"CPTRIE_DIR" default:"." help:"Directory holding trie files" type:"path"`
	LogLevel  string `name:"log-level" env:"CPTRIE_LOG_LEVEL" default:"INFO" help:"Log level"`
	Container string `name:"container" env:"CPTRIE_CONTAINER" default:"auto" enum:"auto,cpt1,icu,cbor" help:"Require this input container format"`
}

type cli struct {
	Globals

	Info     InfoCmd     `cmd:"" help:"Print the header and sizes of a trie"`
	Get      GetCmd      `cmd:"" help:"Look up code points"`
	Ranges   RangesCmd   `cmd:"" help:"List the ranges of equal values"`
	Validate ValidateCmd `cmd:"" help:"Check that tries load and validate"`
	Convert  ConvertCmd  `cmd:"" help:"Re-encode a trie in another container"`
	Digest   DigestCmd   `cmd:"" help:"Print the BLAKE3 digest of a trie container"`
}

// loaded is a decoded trie together with the container it came from.
type loaded struct {
	trie   cptrie.Lookup
	raw    []byte
	format triestore.Format
}

func (g *Globals) log() logger.Logger {
	logger.New(g.LogLevel)
	return logger.Sugar.WithServiceName("cptrie")
}

func (g *Globals) read(ctx context.Context, log logger.Logger, name string) ([]byte, error) {
	if builtin, ok := strings.CutPrefix(name, BuiltinPrefix); ok {
		if builtin != "planes" {
			return nil, fmt.Errorf("%w: %s", triestore.ErrNotFound, name)
		}
		trie, err := cptrie.Planes()
		if err != nil {
			return nil, err
		}
		return trie.MarshalBinary()
	}
	store := triestore.NewDirStore(log, g.Dir, triestore.OsOpener{}, triestore.OsDirLister{})
	return store.Read(ctx, name)
}

func (g *Globals) load(ctx context.Context, log logger.Logger, name string) (loaded, error) {
	b, err := g.read(ctx, log, name)
	if err != nil {
		return loaded{}, err
	}
	raw, err := triestore.Decompress(b)
	if err != nil {
		return loaded{}, fmt.Errorf("%s: %w", name, err)
	}
	format, err := triestore.ParseFormat(g.Container)
	if err != nil {
		return loaded{}, err
	}
	trie, err := triestore.Decode(raw, triestore.WithFormat(format), triestore.WithLogger(log))
	if err != nil {
		return loaded{}, fmt.Errorf("%s: %w", name, err)
	}
	if format == triestore.FormatAuto {
		format, _ = triestore.Detect(raw)
	}
	return loaded{trie: trie, raw: raw, format: format}, nil
}

// parseCodePoint accepts U+XXXX, 0xXXXX or decimal.
func parseCodePoint(s string) (uint32, error) {
	base := 10
	switch {
	case strings.HasPrefix(s, "U+"), strings.HasPrefix(s, "u+"):
		s, base = s[2:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("code point %q: %w", s, err)
	}
	return uint32(v), nil
}

func formatCodePoint(cp uint32) string { return fmt.Sprintf("U+%04X", cp) }

type InfoCmd struct {
	Name string `arg:"" help:"Trie name"`
}

func (c *InfoCmd) Run(g *Globals) error {
	l, err := g.load(context.Background(), g.log(), c.Name)
	if err != nil {
		return err
	}
	h := l.trie.Header()
	fmt.Fprintf(stdout, "container:          %s\n", l.format)
	fmt.Fprintf(stdout, "type:               %s\n", h.Type)
	fmt.Fprintf(stdout, "value width:        %d\n", l.trie.ValueWidth())
	fmt.Fprintf(stdout, "high start:         %s\n", formatCodePoint(h.HighStart))
	fmt.Fprintf(stdout, "shifted12 start:    %#x\n", h.Shifted12HighStart)
	fmt.Fprintf(stdout, "index3 null offset: %#x\n", h.Index3NullOffset)
	fmt.Fprintf(stdout, "data null offset:   %#x\n", h.DataNullOffset)
	fmt.Fprintf(stdout, "null value:         %d\n", h.NullValue)
	fmt.Fprintf(stdout, "high value:         %d\n", l.trie.HighValue32())
	fmt.Fprintf(stdout, "error value:        %d\n", l.trie.ErrorValue32())
	fmt.Fprintf(stdout, "index length:       %d\n", l.trie.IndexLen())
	fmt.Fprintf(stdout, "data length:        %d\n", l.trie.DataLen())
	fmt.Fprintf(stdout, "blake3:             %s\n", triestore.Digest(l.raw))
	return nil
}

type GetCmd struct {
	Name       string   `arg:"" help:"Trie name"`
	CodePoints []string `arg:"" optional:"" help:"Code points as U+XXXX, 0xXXXX or decimal"`
	Text       string   `name:"text" short:"t" help:"Also look up every character of this text"`
}

func (c *GetCmd) Run(g *Globals) error {
	l, err := g.load(context.Background(), g.log(), c.Name)
	if err != nil {
		return err
	}
	cps := make([]uint32, 0, len(c.CodePoints))
	for _, s := range c.CodePoints {
		cp, err := parseCodePoint(s)
		if err != nil {
			return err
		}
		cps = append(cps, cp)
	}
	for _, r := range c.Text {
		cps = append(cps, uint32(r))
	}
	for _, cp := range cps {
		fmt.Fprintf(stdout, "%s\t%d\n", formatCodePoint(cp), l.trie.Get32(cp))
	}
	return nil
}

type RangesCmd struct {
	Name  string `arg:"" help:"Trie name"`
	Start string `name:"start" default:"0" help:"First code point"`
	Limit int    `name:"limit" short:"n" default:"0" help:"Stop after this many ranges, 0 for all"`
}

func (c *RangesCmd) Run(g *Globals) error {
	l, err := g.load(context.Background(), g.log(), c.Name)
	if err != nil {
		return err
	}
	start, err := parseCodePoint(c.Start)
	if err != nil {
		return err
	}
	for n := 0; c.Limit == 0 || n < c.Limit; n++ {
		r, ok := l.trie.GetRange32(start)
		if !ok {
			break
		}
		fmt.Fprintf(stdout, "%s..%s\t%d\n", formatCodePoint(r.Start), formatCodePoint(r.End), r.Value)
		start = r.End + 1
	}
	return nil
}

type ValidateCmd struct {
	Names []string `arg:"" optional:"" help:"Trie names, all tries in the directory when omitted"`
}

func (c *ValidateCmd) Run(g *Globals) error {
	log := g.log()
	ctx := context.Background()
	names := c.Names
	if len(names) == 0 {
		store := triestore.NewDirStore(log, g.Dir, triestore.OsOpener{}, triestore.OsDirLister{})
		var err error
		if names, err = store.List(); err != nil {
			return err
		}
	}
	var errs []error
	for _, name := range names {
		if _, err := g.load(ctx, log, name); err != nil {
			fmt.Fprintf(stdout, "FAIL %s: %v\n", name, err)
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(stdout, "ok   %s\n", name)
	}
	if len(errs) > 0 {
		log.Infof("%d of %d tries failed validation", len(errs), len(names))
	}
	return errors.Join(errs...)
}

type ConvertCmd struct {
	Name string `arg:"" help:"Trie name"`
	Out  string `required:"" short:"o" help:"Output path" type:"path"`
	To   string `name:"to" default:"cpt1" enum:"cpt1,icu,cbor" help:"Output container format"`
	XZ   bool   `name:"xz" help:"xz compress the output"`
}

func (c *ConvertCmd) Run(g *Globals) error {
	log := g.log()
	l, err := g.load(context.Background(), log, c.Name)
	if err != nil {
		return err
	}
	format, err := triestore.ParseFormat(c.To)
	if err != nil {
		return err
	}
	b, err := triestore.Encode(l.trie, format, c.XZ)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.Name, err)
	}
	if err = os.WriteFile(c.Out, b, 0o644); err != nil {
		return err
	}
	log.Infof("wrote %s: %s xz=%v (%d bytes)", c.Out, format, c.XZ, len(b))
	return nil
}

type DigestCmd struct {
	Names []string `arg:"" help:"Trie names"`
}

func (c *DigestCmd) Run(g *Globals) error {
	log := g.log()
	for _, name := range c.Names {
		l, err := g.load(context.Background(), log, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s  %s\n", triestore.Digest(l.raw), name)
	}
	return nil
}
