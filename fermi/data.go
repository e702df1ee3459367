package fermi

import (
	"fmt"
	"io/ioutil"
	"path"
	"strconv"
	"strings"

	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// One centimeter expressed in kiloparsecs. Coordinates are cm on disk and
// kpc everywhere downstream.
const cmToKpc = 3.2407792896664e-22

// Variables whose files are stored under a different name. fermi.f labels
// the velocity components by generic axis, ux along z and uy along r.
var varAlias = map[string]string{
	"uz": "ux",
	"ur": "uy",
}

// Data reads the output files of a single fermi.f run. The zero value is not
// usable: construct with NewData, which parses the run's grid geometry out
// of fermi.inp.
//
// Log may be swapped for any logrus.FieldLogger to trace reads. The default
// logger discards everything.
type Data struct {
	Dir  string
	Geom Geometry
	Log  logrus.FieldLogger
}

// NewData returns a reader for the run whose output is stored in dir.
func NewData(dir string) (*Data, error) {
	text, err := ioutil.ReadFile(path.Join(dir, inputName))
	if err != nil {
		return nil, err
	}
	geom, err := parseGeometry(string(text))
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(ioutil.Discard)

	return &Data{Dir: dir, Geom: geom, Log: log}, nil
}

// readFloats reads a whole file of whitespace-separated numbers.
func readFloats(fname string) ([]float64, error) {
	buf, err := ioutil.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	toks := strings.Fields(string(buf))
	vals := make([]float64, len(toks))
	for i, tok := range toks {
		var err error
		vals[i], err = strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf(
				"fermi: token %d of %s is %q, not a number: %w",
				i, fname, tok, ErrFormat,
			)
		}
	}
	return vals, nil
}

// ReadCoord reads one coordinate file and converts it to kpc. name selects
// the coordinate set: "xh" and "zh" are cell centers, "x" and "z" cell
// boundaries.
func (d *Data) ReadCoord(name string) ([]float64, error) {
	fname := path.Join(d.Dir, name+"ascii.out")
	coord, err := readFloats(fname)
	if err != nil {
		return nil, err
	}
	floats.Scale(cmToKpc, coord)

	d.Log.WithFields(logrus.Fields{
		"file":   fname,
		"points": len(coord),
	}).Debug("read coordinate")

	return coord, nil
}

// ReadVar reads one field variable at snapshot kprint and reshapes it to the
// run's grid. kprint 0 is the initial atmosphere; larger values count the
// recorded output times in order (see Geometry.OutputTimes).
//
// Element [0,0] of the result is the corner (z max, r = 0) and [n-1,n-1] is
// (z = 0, r max): fermi.f writes its grids in column-major order, so the raw
// layout is transposed here.
func (d *Data) ReadVar(name string, kprint int) (*sparse.DenseArray, error) {
	if kprint < 0 {
		return nil, fmt.Errorf(
			"fermi: kprint = %d, want at least 0: %w", kprint, ErrBadArgument,
		)
	}

	file := name
	if alias, ok := varAlias[name]; ok {
		file = alias
	}
	var fname string
	if kprint == 0 {
		fname = path.Join(d.Dir, file+"atmascii.out")
	} else {
		fname = path.Join(d.Dir, fmt.Sprintf("%sascii.out%d", file, kprint))
	}

	raw, err := readFloats(fname)
	if err != nil {
		return nil, err
	}

	n := d.Geom.Zones
	if len(raw) != n*n {
		return nil, fmt.Errorf(
			"fermi: %s holds %d values, want %d for a %d x %d grid: %w",
			fname, len(raw), n*n, n, n, ErrShape,
		)
	}

	grid := sparse.ZerosDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			grid.Set(raw[j*n+i], i, j)
		}
	}

	d.Log.WithFields(logrus.Fields{
		"file":   fname,
		"var":    name,
		"kprint": kprint,
		"zones":  n,
		"min":    floats.Min(raw),
		"max":    floats.Max(raw),
	}).Debug("read variable")

	return grid, nil
}
