package fermi

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runInput builds a fermi.inp body with the given grid and times lines and
// filler everywhere else.
func runInput(grid, times string) string {
	lines := make([]string, timesLine+1)
	for i := range lines {
		lines[i] = fmt.Sprintf("filler line %d", i)
	}
	lines[gridLine] = grid
	lines[timesLine] = times
	return strings.Join(lines, "\n") + "\n"
}

// writeRun lays the given files out in a fresh temp directory. Callers
// remove it themselves.
func writeRun(t *testing.T, files map[string]string) string {
	dir, err := ioutil.TempDir("", "fermi_test")
	require.NoError(t, err)
	for name, text := range files {
		err = ioutil.WriteFile(path.Join(dir, name), []byte(text), 0644)
		require.NoError(t, err)
	}
	return dir
}

func TestNewData(t *testing.T) {
	dir := writeRun(t, map[string]string{
		inputName: runInput("  4 2 4.0", "  1.0e4 2.0e4 5.0e4 0.0"),
	})
	defer os.RemoveAll(dir)

	d, err := NewData(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, d.Dir)
	assert.Equal(t, 4, d.Geom.EvenZones)
	assert.Equal(t, 2, d.Geom.LogZones)
	assert.Equal(t, 4.0, d.Geom.EvenLength)
	assert.Equal(t, 6, d.Geom.Zones)
	assert.Equal(t, 1.0, d.Geom.Resolution)
	assert.Equal(t, []string{"1.0e4", "2.0e4", "5.0e4"}, d.Geom.OutputTimes)
	assert.NotNil(t, d.Log)
}

func TestNewDataMissingInput(t *testing.T) {
	dir, err := ioutil.TempDir("", "fermi_test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	_, err = NewData(dir)
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestParseGeometryErrors(t *testing.T) {
	table := []struct {
		name string
		text string
	}{
		{"truncated file", "one line\n"},
		{"too few grid tokens", runInput("4 2", "0.0")},
		{"bad iezone", runInput("four 2 4.0", "0.0")},
		{"bad ilzone", runInput("4 two 4.0", "0.0")},
		{"bad ezone", runInput("4 2 four", "0.0")},
		{"zero iezone", runInput("0 2 4.0", "0.0")},
		{"negative ilzone", runInput("4 -1 4.0", "0.0")},
		{"zero ezone", runInput("4 2 0.0", "0.0")},
	}

	for i, test := range table {
		_, err := parseGeometry(test.text)
		if !errors.Is(err, ErrFormat) {
			t.Errorf("%d) %s: got %v, want ErrFormat", i, test.name, err)
		}
	}
}

func TestParseGeometryTimes(t *testing.T) {
	table := []struct {
		times string
		want  []string
	}{
		{"", []string{}},
		{"0.0", []string{}},
		{"1.0e4 0.0", []string{"1.0e4"}},
		{"1.0e4 2.0e4 3.0e4 0.0", []string{"1.0e4", "2.0e4", "3.0e4"}},
	}

	for i, test := range table {
		geom, err := parseGeometry(runInput("4 2 4.0", test.times))
		if err != nil {
			t.Errorf("%d) unexpected error: %v", i, err)
			continue
		}
		if len(geom.OutputTimes) != len(test.want) {
			t.Errorf("%d) got %v, want %v", i, geom.OutputTimes, test.want)
			continue
		}
		for j := range test.want {
			if geom.OutputTimes[j] != test.want[j] {
				t.Errorf("%d) got %v, want %v", i, geom.OutputTimes, test.want)
				break
			}
		}
	}
}
