package fermi

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallRun lays out a run with a 2 x 2 grid plus the given extra files.
func smallRun(t *testing.T, files map[string]string) *Data {
	if files == nil {
		files = map[string]string{}
	}
	files[inputName] = runInput("2 0 2.0", "1.0e4 0.0")
	dir := writeRun(t, files)

	d, err := NewData(dir)
	require.NoError(t, err)
	return d
}

func TestReadCoord(t *testing.T) {
	d := smallRun(t, map[string]string{
		"xhascii.out": "1e21 2e21\n3e21\n",
	})
	defer os.RemoveAll(d.Dir)

	coord, err := d.ReadCoord("xh")
	require.NoError(t, err)

	require.Len(t, coord, 3)
	for i, cm := range []float64{1e21, 2e21, 3e21} {
		assert.InDelta(t, cm*3.2407792896664e-22, coord[i], 1e-12)
	}
}

func TestReadCoordErrors(t *testing.T) {
	d := smallRun(t, map[string]string{
		"xhascii.out": "1.0 two 3.0",
	})
	defer os.RemoveAll(d.Dir)

	_, err := d.ReadCoord("xh")
	assert.True(t, errors.Is(err, ErrFormat), "got %v", err)

	_, err = d.ReadCoord("zh")
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestReadVar(t *testing.T) {
	d := smallRun(t, map[string]string{
		"denascii.out1": "1 2\n3 4\n",
	})
	defer os.RemoveAll(d.Dir)

	grid, err := d.ReadVar("den", 1)
	require.NoError(t, err)

	require.Equal(t, []int{2, 2}, grid.Shape)

	// On disk the grid is column-major, so [i, j] reads element j*n + i.
	assert.Equal(t, 1.0, grid.Get(0, 0))
	assert.Equal(t, 3.0, grid.Get(0, 1))
	assert.Equal(t, 2.0, grid.Get(1, 0))
	assert.Equal(t, 4.0, grid.Get(1, 1))
}

func TestReadVarFilenames(t *testing.T) {
	flat := "1 2 3 4"
	d := smallRun(t, map[string]string{
		"denatmascii.out": flat,
		"uxascii.out2":    flat,
		"uyatmascii.out":  flat,
		"uyascii.out3":    flat,
	})
	defer os.RemoveAll(d.Dir)

	table := []struct {
		v      string
		kprint int
	}{
		{"den", 0},
		{"uz", 2},
		{"ur", 0},
		{"ur", 3},
	}
	for i, test := range table {
		if _, err := d.ReadVar(test.v, test.kprint); err != nil {
			t.Errorf("%d) ReadVar(%q, %d): %v", i, test.v, test.kprint, err)
		}
	}
}

func TestReadVarErrors(t *testing.T) {
	d := smallRun(t, map[string]string{
		"denascii.out1": "1 2 3",
		"preascii.out1": "1 two 3 4",
	})
	defer os.RemoveAll(d.Dir)

	_, err := d.ReadVar("den", 1)
	assert.True(t, errors.Is(err, ErrShape), "got %v", err)

	_, err = d.ReadVar("pre", 1)
	assert.True(t, errors.Is(err, ErrFormat), "got %v", err)

	_, err = d.ReadVar("den", 2)
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)

	_, err = d.ReadVar("den", -1)
	assert.True(t, errors.Is(err, ErrBadArgument), "got %v", err)
}
