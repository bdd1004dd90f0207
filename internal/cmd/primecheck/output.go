package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/factset/go-arrowprime"
)

func ipcOptions(codec string, schema *arrow.Schema) ([]ipc.Option, error) {
	opts := []ipc.Option{ipc.WithSchema(schema)}
	switch codec {
	case "none":
	case "lz4":
		opts = append(opts, ipc.WithLZ4())
	case "zstd":
		opts = append(opts, ipc.WithZstd())
	default:
		return nil, fmt.Errorf("unknown codec %q", codec)
	}
	return opts, nil
}

func evalMasks(reg *arrowprime.Registry, col *arrow.Chunked) ([]*array.Boolean, error) {
	fn, err := reg.Mask(arrowprime.IsPrimeName)
	if err != nil {
		return nil, err
	}

	masks := make([]*array.Boolean, 0, len(col.Chunks()))
	for _, c := range col.Chunks() {
		m, err := fn(c)
		if err != nil {
			for _, m := range masks {
				m.Release()
			}
			return nil, err
		}
		masks = append(masks, m)
	}
	return masks, nil
}

func runMask(reg *arrowprime.Registry, col *arrow.Chunked, cfg config, w io.Writer) error {
	masks, err := evalMasks(reg, col)
	if err != nil {
		return err
	}
	defer func() {
		for _, m := range masks {
			m.Release()
		}
	}()

	if cfg.Out != "" {
		return writeIPC(cfg.Out, cfg.Codec, masks)
	}

	for _, m := range masks {
		for i := 0; i < m.Len(); i++ {
			if _, err := fmt.Fprintln(w, strconv.FormatBool(m.Value(i))); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeIPC(path, codec string, masks []*array.Boolean) error {
	schema := arrow.NewSchema([]arrow.Field{arrowprime.IsPrimeField}, nil)
	opts, err := ipcOptions(codec, schema)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	wr := ipc.NewWriter(f, opts...)
	for _, m := range masks {
		rec := array.NewRecord(schema, []arrow.Array{m}, int64(m.Len()))
		err := wr.Write(rec)
		rec.Release()
		if err != nil {
			wr.Close()
			return err
		}
	}

	if err := wr.Close(); err != nil {
		return err
	}
	return f.Close()
}

func runAll(reg *arrowprime.Registry, col *arrow.Chunked, w io.Writer) error {
	fn, err := reg.Scalar(arrowprime.AreAllPrimesName)
	if err != nil {
		return err
	}

	result := true
	for _, c := range col.Chunks() {
		ok, err := fn(c)
		if err != nil {
			return err
		}
		if !ok {
			result = false
			break
		}
	}

	_, err = fmt.Fprintln(w, strconv.FormatBool(result))
	return err
}

func runPositions(col *arrow.Chunked, w io.Writer) error {
	var offset uint64
	for _, c := range col.Chunks() {
		vals, err := arrowprime.Uint64Column(c)
		if err != nil {
			return err
		}

		it := arrowprime.PrimePositions(vals).Iterator()
		for it.HasNext() {
			if _, err := fmt.Fprintln(w, offset+it.Next()); err != nil {
				return err
			}
		}
		offset += uint64(c.Len())
	}
	return nil
}
