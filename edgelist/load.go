package edgelist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Columns names the header columns holding the source, destination and
// (optional) weight of each edge. An empty Weight means unweighted.
type Columns struct {
	Source string
	Target string
	Weight string
}

// DefaultColumns returns the column names used by the command line: u, v, no weight.
func DefaultColumns() Columns {
	return Columns{Source: "u", Target: "v"}
}

// LoadFile reads an edge table from path. Supported extensions are .csv and
// .tsv; anything else yields ErrUnsupportedFormat.
func LoadFile(path string, cols Columns, opts ...Option) (*EdgeList, error) {
	var comma rune
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		comma = ','
	case ".tsv":
		comma = '\t'
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open %q: %w", path, err)
	}
	defer f.Close()

	return readDelimited(f, comma, cols, opts...)
}

// ReadCSV parses a comma-separated table with a header row.
// Node ids must be non-negative integers (integral floats such as "3.0"
// are accepted); weights must parse as finite floats.
func ReadCSV(r io.Reader, cols Columns, opts ...Option) (*EdgeList, error) {
	return readDelimited(r, ',', cols, opts...)
}

func readDelimited(r io.Reader, comma rune, cols Columns, opts ...Option) (*EdgeList, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty table, no header", ErrMalformedRow)
	}
	if err != nil {
		return nil, fmt.Errorf("edgelist: read header: %w", err)
	}

	si, err := columnIndex(header, cols.Source)
	if err != nil {
		return nil, err
	}
	ti, err := columnIndex(header, cols.Target)
	if err != nil {
		return nil, err
	}
	wi := -1
	if cols.Weight != "" {
		if wi, err = columnIndex(header, cols.Weight); err != nil {
			return nil, err
		}
	}

	var (
		u, v []int64
		w    []float64
	)
	if wi >= 0 {
		w = []float64{}
	}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("edgelist: line %d: %w", line, err)
		}

		a, err := parseNode(rec[si])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d column %q: %v", ErrMalformedRow, line, cols.Source, err)
		}
		b, err := parseNode(rec[ti])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d column %q: %v", ErrMalformedRow, line, cols.Target, err)
		}
		u, v = append(u, a), append(v, b)

		if wi >= 0 {
			x, err := strconv.ParseFloat(strings.TrimSpace(rec[wi]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %q: %v", ErrMalformedRow, line, cols.Weight, err)
			}
			w = append(w, x)
		}
	}

	if w != nil {
		opts = append([]Option{WithWeights(w)}, opts...)
	}

	return New(u, v, opts...)
}

// FromRows converts an in-memory table of 2 columns (u, v) or 3 columns
// (u, v, w) into an EdgeList. All rows must have the same width.
func FromRows(rows [][]float64, opts ...Option) (*EdgeList, error) {
	if len(rows) == 0 {
		return New(nil, nil, opts...)
	}
	width := len(rows[0])
	if width != 2 && width != 3 {
		return nil, fmt.Errorf("%w: rows must have 2 or 3 columns, got %d", ErrMalformedRow, width)
	}

	u := make([]int64, len(rows))
	v := make([]int64, len(rows))
	var w []float64
	if width == 3 {
		w = make([]float64, len(rows))
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedRow, i, len(row), width)
		}
		var err error
		if u[i], err = integral(row[0]); err != nil {
			return nil, fmt.Errorf("%w: row %d source: %v", ErrMalformedRow, i, err)
		}
		if v[i], err = integral(row[1]); err != nil {
			return nil, fmt.Errorf("%w: row %d destination: %v", ErrMalformedRow, i, err)
		}
		if w != nil {
			w[i] = row[2]
		}
	}
	if w != nil {
		opts = append([]Option{WithWeights(w)}, opts...)
	}

	return New(u, v, opts...)
}

func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%w: %q not in header %v", ErrMissingColumn, name, header)
}

func parseNode(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("node id %q is not a number", s)
	}

	return integral(f)
}

func integral(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("node id %v is not an integer", f)
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("node id %v overflows int64", f)
	}

	return int64(f), nil
}
