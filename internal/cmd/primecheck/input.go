package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/factset/go-arrowprime"
	"github.com/factset/go-arrowprime/internal/data"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"
)

var errNoColumns = errors.New("arrow stream has no columns")

// readColumn reads the input as a chunked uint64 column, arrow streams keep
// one chunk per record batch and every other format is a single chunk.
func readColumn(r io.Reader, format string, nullable bool) (*arrow.Chunked, error) {
	var (
		arr arrow.Array
		err error
	)

	switch format {
	case "text":
		var vals arrowprime.Values
		if vals, err = readText(r); err == nil {
			arr = valuesToArrow(vals)
		}
	case "yaml":
		var vals arrowprime.Values
		if vals, err = readYAML(r); err == nil {
			arr = valuesToArrow(vals)
		}
	case "drill":
		var raw []byte
		if raw, err = io.ReadAll(r); err == nil {
			arr, err = data.NewUint64Array(raw, nullable)
		}
	case "arrow":
		return readArrow(r)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}

	if err != nil {
		return nil, err
	}
	defer arr.Release()
	return arrow.NewChunked(arr.DataType(), []arrow.Array{arr}), nil
}

// readText reads one value per line, an empty line or null is a null slot.
func readText(r io.Reader) (arrowprime.Values, error) {
	var vals arrowprime.Values

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		txt := strings.TrimSpace(scanner.Text())
		if txt == "" || txt == "null" {
			vals = append(vals, nil)
			continue
		}

		n, err := strconv.ParseUint(txt, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		vals = append(vals, proto.Uint64(n))
	}
	return vals, scanner.Err()
}

func readYAML(r io.Reader) (arrowprime.Values, error) {
	var vals arrowprime.Values
	if err := yaml.NewDecoder(r).Decode(&vals); err != nil && err != io.EOF {
		return nil, err
	}
	return vals, nil
}

func valuesToArrow(vals arrowprime.Values) *array.Uint64 {
	bldr := array.NewUint64Builder(memory.DefaultAllocator)
	defer bldr.Release()

	bldr.Reserve(vals.Len())
	for i := 0; i < vals.Len(); i++ {
		if vals.IsNull(i) {
			bldr.AppendNull()
			continue
		}
		bldr.Append(vals.Value(i))
	}
	return bldr.NewUint64Array()
}

func readArrow(r io.Reader) (*arrow.Chunked, error) {
	rdr, err := ipc.NewReader(r, ipc.WithAllocator(memory.DefaultAllocator))
	if err != nil {
		return nil, err
	}
	defer rdr.Release()

	if len(rdr.Schema().Fields()) == 0 {
		return nil, errNoColumns
	}

	dt := rdr.Schema().Field(0).Type
	if dt.ID() != arrow.UINT64 {
		return nil, &arrowprime.TypeMismatchError{Expected: arrow.PrimitiveTypes.Uint64, Actual: dt}
	}

	var chunks []arrow.Array
	defer func() {
		for _, c := range chunks {
			c.Release()
		}
	}()

	for rdr.Next() {
		col := rdr.Record().Column(0)
		col.Retain()
		chunks = append(chunks, col)
	}
	if err := rdr.Err(); err != nil {
		return nil, err
	}
	return arrow.NewChunked(dt, chunks), nil
}
