package fermi

import (
	"fmt"
	"io/ioutil"
	"path"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// The history logs fermi.f appends to during a run. Each carries a fixed
// number of preamble lines before its column-name header.
var histFiles = map[string]struct {
	name string
	skip int
}{
	"energy":  {"energyc.out", 6},
	"gasmass": {"gasmassc.out", 2},
}

// History is a time-indexed table read from one of fermi.f's history logs.
// Rows keep their on-disk order. Time holds the "tyr" column, in years, and
// is not listed in Names.
type History struct {
	Time  []float64
	Names []string
	cols  [][]float64
}

// Len returns the number of rows.
func (h *History) Len() int { return len(h.Time) }

// Col returns the named column.
func (h *History) Col(name string) ([]float64, error) {
	for i, n := range h.Names {
		if n == name {
			return h.cols[i], nil
		}
	}
	return nil, fmt.Errorf(
		"fermi: history has no column %q (have %s): %w",
		name, strings.Join(h.Names, " "), ErrBadArgument,
	)
}

// ReadHist reads one of the run's history logs. kind must be "energy" or
// "gasmass".
func (d *Data) ReadHist(kind string) (*History, error) {
	f, ok := histFiles[kind]
	if !ok {
		return nil, fmt.Errorf(
			`fermi: unknown history %q, want "energy" or "gasmass": %w`,
			kind, ErrBadArgument,
		)
	}

	fname := path.Join(d.Dir, f.name)
	buf, err := ioutil.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(buf), "\n")
	if len(lines) <= f.skip {
		return nil, fmt.Errorf(
			"fermi: %s has %d lines, want a header after %d preamble lines: %w",
			fname, len(lines), f.skip, ErrFormat,
		)
	}
	lines = lines[f.skip:]

	// The column-name header is the first non-blank line after the preamble.
	var names []string
	for len(lines) > 0 {
		names = strings.Fields(lines[0])
		lines = lines[1:]
		if len(names) > 0 {
			break
		}
	}
	tyr := -1
	for i, n := range names {
		if n == "tyr" {
			tyr = i
			break
		}
	}
	if tyr == -1 {
		return nil, fmt.Errorf(
			"fermi: header of %s has no tyr column: %w", fname, ErrFormat,
		)
	}

	cnames := make([]string, 0, len(names)-1)
	for i, n := range names {
		if i != tyr {
			cnames = append(cnames, n)
		}
	}
	h := &History{Names: cnames, cols: make([][]float64, len(cnames))}

	for _, line := range lines {
		toks := strings.Fields(line)
		if len(toks) == 0 {
			continue
		}
		if len(toks) != len(names) {
			return nil, fmt.Errorf(
				"fermi: row %d of %s has %d fields, want %d: %w",
				h.Len(), fname, len(toks), len(names), ErrFormat,
			)
		}
		vals := make([]float64, len(toks))
		for i, tok := range toks {
			var err error
			vals[i], err = strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf(
					"fermi: row %d of %s: %q is not a number: %w",
					h.Len(), fname, tok, ErrFormat,
				)
			}
		}

		h.Time = append(h.Time, vals[tyr])
		k := 0
		for i, v := range vals {
			if i == tyr {
				continue
			}
			h.cols[k] = append(h.cols[k], v)
			k++
		}
	}

	d.Log.WithFields(logrus.Fields{
		"file": fname,
		"kind": kind,
		"rows": h.Len(),
	}).Debug("read history")

	return h, nil
}
