package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/docopt/docopt-go"
	"github.com/factset/go-arrowprime"
	"github.com/factset/go-arrowprime/internal/log"
)

const usage = `Prime Check.

Usage:
	primecheck -h | --help
	primecheck mask [options] FILE
	primecheck all [options] FILE
	primecheck positions [options] FILE

Arguments:
	FILE  uint64 column to evaluate, - reads stdin

Options:
	-h --help                  Show this screen.
	-f FORMAT --format FORMAT  input format: text, yaml, arrow or drill [default: text]
	--required                 drill input has no null bytemap
	-o PATH --out PATH         write the mask as an Arrow IPC stream
	-c CODEC --codec CODEC     IPC body compression: none, lz4 or zstd [default: none]
	-w N --workers N           goroutines evaluating the column [default: 1]`

type config struct {
	Mask      bool
	All       bool
	Positions bool
	File      string
	Format    string
	Required  bool
	Out       string
	Codec     string
	Workers   int
}

func parseArgs(argv []string) (cfg config, help string, err error) {
	parser := &docopt.Parser{
		HelpHandler: func(err error, usage string) {
			if err == nil {
				help = usage
			}
		},
	}

	opts, err := parser.ParseArgs(usage, argv, "")
	if err != nil || help != "" {
		return
	}

	cfg.Mask, _ = opts.Bool("mask")
	cfg.All, _ = opts.Bool("all")
	cfg.Positions, _ = opts.Bool("positions")
	cfg.Required, _ = opts.Bool("--required")
	cfg.Out, _ = opts["--out"].(string)
	if cfg.File, err = opts.String("FILE"); err != nil {
		return
	}
	if cfg.Format, err = opts.String("--format"); err != nil {
		return
	}
	if cfg.Codec, err = opts.String("--codec"); err != nil {
		return
	}
	if cfg.Workers, err = opts.Int("--workers"); err != nil {
		err = fmt.Errorf("invalid --workers: %w", err)
	}
	return
}

// newRegistry installs the functions the commands dispatch to, swapping in
// the parallel evaluators when more than one worker is requested.
func newRegistry(ctx context.Context, workers int) (*arrowprime.Registry, error) {
	reg := arrowprime.NewRegistry()
	if workers <= 1 {
		return reg, arrowprime.RegisterFunctions(reg)
	}

	opts := arrowprime.ParallelOptions{Workers: workers}
	err := reg.RegisterMask(arrowprime.IsPrimeName, func(arr arrow.Array) (*array.Boolean, error) {
		col, err := arrowprime.Uint64Column(arr)
		if err != nil {
			return nil, err
		}
		mask, err := arrowprime.ParallelIsPrimeMask(ctx, col, opts)
		if err != nil {
			return nil, err
		}
		return arrowprime.MaskToArrow(mask), nil
	})
	if err != nil {
		return nil, err
	}

	err = reg.RegisterScalar(arrowprime.AreAllPrimesName, func(arr arrow.Array) (bool, error) {
		col, err := arrowprime.Uint64Column(arr)
		if err != nil {
			return false, err
		}
		return arrowprime.ParallelAreAllPrimes(ctx, col, opts)
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}

func run(ctx context.Context, argv []string, stdin io.Reader, stdout io.Writer) error {
	cfg, help, err := parseArgs(argv)
	if err != nil {
		return err
	}
	if help != "" {
		_, err = fmt.Fprintln(stdout, help)
		return err
	}

	reg, err := newRegistry(ctx, cfg.Workers)
	if err != nil {
		return err
	}

	in, err := openInput(cfg.File, stdin)
	if err != nil {
		return err
	}
	defer in.Close()

	col, err := readColumn(in, cfg.Format, !cfg.Required)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.File, err)
	}
	defer col.Release()

	log.Debug().Str("format", cfg.Format).Int("rows", col.Len()).Int("chunks", len(col.Chunks())).Msg("read column")

	// nothing reaches stdout unless the whole command succeeds
	var buf bytes.Buffer
	switch {
	case cfg.Mask:
		err = runMask(reg, col, cfg, &buf)
	case cfg.All:
		err = runAll(reg, col, &buf)
	case cfg.Positions:
		err = runPositions(col, &buf)
	}
	if err != nil {
		return err
	}

	_, err = io.Copy(stdout, &buf)
	return err
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
