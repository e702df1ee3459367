package main

import (
	"fmt"
	"log"
	"os"

	"gonum.org/v1/gonum/floats"

	"github.com/xshaokun/gofermi/fermi"

	plt "github.com/phil-mansfield/pyplot"
)

// Plots one column of a run's history log against time.

func main() {
	if len(os.Args) != 5 {
		log.Fatalf(
			"Usage: $ %s run_dir history column plot_file\n"+
				"history must be 'energy' or 'gasmass'.", os.Args[0],
		)
	}
	runDir, kind, column, plotFile := os.Args[1], os.Args[2], os.Args[3], os.Args[4]

	d, err := fermi.NewData(runDir)
	if err != nil { log.Fatal(err.Error()) }

	h, err := d.ReadHist(kind)
	if err != nil { log.Fatal(err.Error()) }
	col, err := h.Col(column)
	if err != nil { log.Fatal(err.Error()) }
	if h.Len() == 0 {
		log.Fatalf("The %s history of %s holds no rows.", kind, runDir)
	}

	plt.Figure()
	plt.Plot(h.Time, col, "k", plt.LW(2))

	plt.Title(fmt.Sprintf("%s history", kind))
	plt.XLabel(`$t$ $[{\rm yr}]$`, plt.FontSize(16))
	plt.YLabel(column, plt.FontSize(16))

	if floats.Min(h.Time) > 0 {
		plt.XScale("log")
	}
	if floats.Min(col) > 0 {
		plt.YScale("log")
	}

	plt.Grid(plt.Axis("y"))
	plt.SaveFig(plotFile)

	plt.Execute()
}
