package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netsmith/paths"
)

// sink returns the writer for path ("-" is the command's stdout) and a
// closer to call when done.
func sink(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create output")
	}

	return f, f.Close, nil
}

// writeColumn writes a node,<header> CSV.
func writeColumn(cmd *cobra.Command, path, header string, values []string) (err error) {
	w, closeFn, err := sink(cmd, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); err == nil {
			err = cerr
		}
	}()

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"node", header}); err != nil {
		return err
	}
	for i, v := range values {
		if err := cw.Write([]string{strconv.Itoa(i), v}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// writeLine writes a single summary line.
func writeLine(cmd *cobra.Command, path, line string) (err error) {
	w, closeFn, err := sink(cmd, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); err == nil {
			err = cerr
		}
	}()
	_, err = fmt.Fprintln(w, line)

	return err
}

func ints(values []int64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.FormatInt(v, 10)
	}

	return out
}

func floats(values []float64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = formatFloat(v)
	}

	return out
}

// hops renders a distance, writing unreachable nodes as "inf".
func hops(d int64) string {
	if d == paths.Unreachable {
		return "inf"
	}

	return strconv.FormatInt(d, 10)
}
