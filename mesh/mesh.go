// Package mesh reshapes half-domain simulation grids into full mirrored
// meshes and cuts 1D profiles out of them.
//
// fermi.f simulates one quadrant of an axisymmetric domain, r >= 0 and
// z >= 0. Plots want the full r range, so the grids read with fermi.ReadVar
// are reflected across r = 0 here, with the sign flipped for quantities
// that are antisymmetric in r.
package mesh

import (
	"errors"
	"fmt"

	"github.com/ctessum/sparse"

	"github.com/xshaokun/gofermi/num"
)

// ElectronDensityFactor converts gas mass density in g/cm^3 to electron
// number density in cm^-3 for the fully ionized composition assumed by
// fermi.f. Slice does not apply it; callers scale "den" slices themselves
// when they want n_e.
const ElectronDensityFactor = 5.155e23

var (
	ErrShape       = errors.New("mesh: array shape does not match")
	ErrBadArgument = errors.New("mesh: unrecognized option")
)

// CoordMesh builds the mirrored coordinate meshes spanning |r| <= rMax,
// 0 <= z <= zMax. coord values beyond the limits are dropped, the rest are
// reflected across r = 0. The returned pair (R, Z) has R varying along
// columns and Z along rows, the shape every later VarMesh call conforms to.
func CoordMesh(coord []float64, rMax, zMax float64) (R, Z *sparse.DenseArray) {
	var rc, zc []float64
	for _, c := range coord {
		if c <= rMax {
			rc = append(rc, c)
		}
		if c <= zMax {
			zc = append(zc, c)
		}
	}

	rr := make([]float64, 0, 2*len(rc))
	for i := len(rc) - 1; i >= 0; i-- {
		rr = append(rr, -rc[i])
	}
	rr = append(rr, rc...)

	R = sparse.ZerosDense(len(zc), len(rr))
	Z = sparse.ZerosDense(len(zc), len(rr))
	for i := range zc {
		for j := range rr {
			R.Set(rr[j], i, j)
			Z.Set(zc[i], i, j)
		}
	}
	return R, Z
}

// VarMesh mirrors the positive-r half of field across r = 0, shaped to
// match ref (either mesh returned by CoordMesh). The mirrored half of the
// radial velocity "ur" is negated; every other variable reflects unchanged.
func VarMesh(field *sparse.DenseArray, name string, ref *sparse.DenseArray) (*sparse.DenseArray, error) {
	if len(ref.Shape) != 2 {
		return nil, fmt.Errorf(
			"mesh: reference mesh has %d dimensions, want 2: %w",
			len(ref.Shape), ErrShape,
		)
	}
	if len(field.Shape) != 2 {
		return nil, fmt.Errorf(
			"mesh: field has %d dimensions, want 2: %w", len(field.Shape), ErrShape,
		)
	}

	zCount, cols := ref.Shape[0], ref.Shape[1]
	if cols%2 != 0 {
		return nil, fmt.Errorf(
			"mesh: reference mesh has %d columns, want an even count: %w",
			cols, ErrShape,
		)
	}
	rCount := cols / 2
	if field.Shape[0] < zCount || field.Shape[1] < rCount {
		return nil, fmt.Errorf(
			"mesh: field is %d x %d, want at least %d x %d: %w",
			field.Shape[0], field.Shape[1], zCount, rCount, ErrShape,
		)
	}

	sign := 1.0
	if name == "ur" {
		sign = -1.0
	}

	out := sparse.ZerosDense(zCount, cols)
	for i := 0; i < zCount; i++ {
		for j := 0; j < rCount; j++ {
			v := field.Get(i, j)
			out.Set(v, i, rCount+j)
			out.Set(sign*v, i, rCount-1-j)
		}
	}
	return out, nil
}

// Slice cuts a 1D profile out of data at the coordinate nearest distance.
// direction "z" returns the column at fixed r, walking along z; "r" returns
// the row at fixed z, walking along r. coord must index the sliced axis.
func Slice(data *sparse.DenseArray, coord []float64, direction string, distance float64) ([]float64, error) {
	if len(data.Shape) != 2 {
		return nil, fmt.Errorf(
			"mesh: data has %d dimensions, want 2: %w", len(data.Shape), ErrShape,
		)
	}
	if len(coord) == 0 {
		return nil, fmt.Errorf("mesh: empty coordinate array: %w", ErrShape)
	}
	idx := num.NearestIndex(coord, distance)

	switch direction {
	case "z":
		if idx >= data.Shape[1] {
			return nil, fmt.Errorf(
				"mesh: coordinate index %d outside %d columns: %w",
				idx, data.Shape[1], ErrShape,
			)
		}
		out := make([]float64, data.Shape[0])
		for i := range out {
			out[i] = data.Get(i, idx)
		}
		return out, nil
	case "r":
		if idx >= data.Shape[0] {
			return nil, fmt.Errorf(
				"mesh: coordinate index %d outside %d rows: %w",
				idx, data.Shape[0], ErrShape,
			)
		}
		out := make([]float64, data.Shape[1])
		for j := range out {
			out[j] = data.Get(idx, j)
		}
		return out, nil
	}
	return nil, fmt.Errorf(
		`mesh: direction %q, want "r" or "z": %w`, direction, ErrBadArgument,
	)
}
