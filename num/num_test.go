package num

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearestIndex(t *testing.T) {
	table := []struct {
		xs   []float64
		x    float64
		want int
	}{
		{[]float64{0, 1, 2, 5, 10}, 4.9, 3},
		{[]float64{0, 1, 2, 5, 10}, 4, 3},
		{[]float64{0, 1, 2, 3}, 2.1, 2},
		{[]float64{0, 1, 2, 3}, 0, 0},
		{[]float64{0, 1, 2, 3}, -5, 0},
		{[]float64{0, 1, 2, 3}, 100, 3},
		// Ties break toward the lower index.
		{[]float64{0, 1}, 0.5, 0},
		{[]float64{2, 2, 2}, 2, 0},
	}

	for i, test := range table {
		got := NearestIndex(test.xs, test.x)
		if got != test.want {
			t.Errorf("%d) NearestIndex(%v, %g) = %d, want %d",
				i, test.xs, test.x, got, test.want)
		}
	}
}

func TestFormatLatex(t *testing.T) {
	assert.Equal(t, `3.4 \times 10^{-3}`, FormatLatex(0.0034))
	assert.Equal(t, `-3.4 \times 10^{-3}`, FormatLatex(-0.0034))
	assert.Equal(t, `5 \times 10^{-1}`, FormatLatex(0.5))
	assert.Equal(t, `1 \times 10^{2}`, FormatLatex(100))
	assert.Equal(t, `1.2 \times 10^{7}`, FormatLatex(1.23e7))

	// Values in [1, 100) keep the plain form.
	assert.Equal(t, "12", FormatLatex(12.3))
	assert.Equal(t, "1.5", FormatLatex(1.51))
	assert.Equal(t, "0", FormatLatex(0))

	// The exponent comes from the rounded value.
	assert.Equal(t, "10", FormatLatex(9.96))
}
