package fermi

import (
	"fmt"
	"strconv"
	"strings"
)

// fermi.f echoes its input namelist to fermi.inp with each value at a fixed
// line position. The constants below are the schema for the lines read here
// (0-based); everything else in the file is ignored. The layout is dictated
// by fermi.f and is not negotiable on this side.
const (
	inputName = "fermi.inp"

	gridLine  = 2  // iezone ilzone ezone
	timesLine = 20 // output time labels followed by the list terminator
)

// Geometry describes the simulation grid layout. Both axes share the same
// zoning: EvenZones evenly spaced cells of size Resolution, then LogZones
// logarithmically spaced ones.
type Geometry struct {
	EvenZones  int     // cells in the evenly spaced region
	LogZones   int     // cells in the logarithmically spaced region
	EvenLength float64 // physical length of the evenly spaced region

	Zones      int     // cells along one axis: EvenZones + LogZones
	Resolution float64 // cell size in the even region: EvenLength / EvenZones

	// OutputTimes holds the snapshot time labels in kprint order: kprint k
	// corresponds to OutputTimes[k-1]. kprint 0 is the initial state and
	// carries no label.
	OutputTimes []string
}

// parseGeometry extracts the grid geometry from the text of fermi.inp.
func parseGeometry(text string) (Geometry, error) {
	lines := strings.Split(text, "\n")
	if len(lines) <= timesLine {
		return Geometry{}, fmt.Errorf(
			"fermi: %s has %d lines, want at least %d: %w",
			inputName, len(lines), timesLine+1, ErrFormat,
		)
	}

	dims := strings.Fields(lines[gridLine])
	if len(dims) < 3 {
		return Geometry{}, fmt.Errorf(
			"fermi: line %d of %s has %d tokens, want iezone ilzone ezone: %w",
			gridLine, inputName, len(dims), ErrFormat,
		)
	}

	geom := Geometry{}
	var err error
	if geom.EvenZones, err = strconv.Atoi(dims[0]); err != nil {
		return Geometry{}, fmt.Errorf(
			"fermi: iezone %q in %s is not an integer: %w",
			dims[0], inputName, ErrFormat,
		)
	}
	if geom.LogZones, err = strconv.Atoi(dims[1]); err != nil {
		return Geometry{}, fmt.Errorf(
			"fermi: ilzone %q in %s is not an integer: %w",
			dims[1], inputName, ErrFormat,
		)
	}
	if geom.EvenLength, err = strconv.ParseFloat(dims[2], 64); err != nil {
		return Geometry{}, fmt.Errorf(
			"fermi: ezone %q in %s is not a number: %w",
			dims[2], inputName, ErrFormat,
		)
	}

	switch {
	case geom.EvenZones < 1:
		return Geometry{}, fmt.Errorf(
			"fermi: iezone = %d, want at least 1: %w", geom.EvenZones, ErrFormat,
		)
	case geom.LogZones < 0:
		return Geometry{}, fmt.Errorf(
			"fermi: ilzone = %d, want at least 0: %w", geom.LogZones, ErrFormat,
		)
	case geom.EvenLength <= 0:
		return Geometry{}, fmt.Errorf(
			"fermi: ezone = %g, want a positive length: %w",
			geom.EvenLength, ErrFormat,
		)
	}

	geom.Zones = geom.EvenZones + geom.LogZones
	geom.Resolution = geom.EvenLength / float64(geom.EvenZones)

	// The last token on the times line is fermi.f's list terminator, not a
	// label.
	labels := strings.Fields(lines[timesLine])
	if len(labels) > 0 {
		labels = labels[:len(labels)-1]
	}
	geom.OutputTimes = labels

	return geom, nil
}
