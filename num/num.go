// Package num holds the small numeric helpers shared by the analysis
// routines and plotting scripts.
package num

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// NearestIndex returns the index of the element of xs closest to x. When two
// elements are equally close the lower index wins, matching the argmin
// convention the analysis depends on. Panics if xs is empty.
func NearestIndex(xs []float64, x float64) int {
	return floats.NearestIdx(xs, x)
}

// FormatLatex formats v to two significant figures for a matplotlib label.
// Values whose decimal exponent falls outside [0, 2) come out in the
// `m \times 10^{e}` form with an integer exponent; the rest keep the plain
// decimal form.
func FormatLatex(v float64) string {
	s := strconv.FormatFloat(v, 'e', 1, 64)
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s // NaN or an infinity
	}

	exp, err := strconv.Atoi(s[i+1:])
	if err != nil || (exp >= 0 && exp < 2) {
		return strconv.FormatFloat(v, 'g', 2, 64)
	}

	mant := strings.TrimSuffix(s[:i], ".0")
	return fmt.Sprintf(`%s \times 10^{%d}`, mant, exp)
}
