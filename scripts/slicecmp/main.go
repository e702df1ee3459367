package main

import (
	"log"
	"os"
	"path"
	"strings"

	"github.com/phil-mansfield/table"

	plt "github.com/phil-mansfield/pyplot"
)

// Overlays slice tables written by the [Export] mode, one curve per file.
// Useful for comparing snapshots or runs along the same cut.

var colors = []string{
	"k", "DarkSlateBlue", "DarkTurquoise", "DarkViolet", "DeepPink", "DimGray",
}

func main() {
	if len(os.Args) < 3 {
		log.Fatalf("Usage: $ %s plot_file slice_file [slice_file ...]", os.Args[0])
	}
	plotFile, sliceFiles := os.Args[1], os.Args[2:]

	plt.Figure()
	for i, fname := range sliceFiles {
		cols, err := table.ReadTable(fname, []int{0, 1}, nil)
		if err != nil { log.Fatal(err.Error()) }
		coords, vals := cols[0], cols[1]

		plt.Plot(coords, vals, plt.LW(2), plt.C(colors[i%len(colors)]))
	}

	plt.Title(strings.Join(names(sliceFiles), ", "))
	plt.XLabel(`coordinate $[{\rm kpc}]$`, plt.FontSize(16))
	plt.YLabel("value", plt.FontSize(16))

	plt.Grid(plt.Axis("y"))
	plt.SaveFig(plotFile)

	plt.Execute()
}

// names strips directories and extensions so the title stays readable.
func names(files []string) []string {
	out := make([]string, len(files))
	for i, f := range files {
		base := path.Base(f)
		out[i] = strings.TrimSuffix(base, path.Ext(base))
	}
	return out
}
