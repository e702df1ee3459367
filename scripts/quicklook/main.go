package main

import (
	"fmt"
	"log"
	"os"
	"path"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/xshaokun/gofermi/fermi"
	"github.com/xshaokun/gofermi/mesh"
	"github.com/xshaokun/gofermi/num"

	plt "github.com/phil-mansfield/pyplot"
)

// Plots 1D profiles of one variable along both axes, cut through the origin.
// The "den" profiles are rescaled to electron number density.

func main() {
	if len(os.Args) != 5 {
		log.Fatalf("Usage: $ %s run_dir variable kprint plot_dir", os.Args[0])
	}

	runDir, v, plotDir := os.Args[1], os.Args[2], os.Args[4]
	kprint, err := strconv.Atoi(os.Args[3])
	if err != nil { log.Fatal(err.Error()) }

	d, err := fermi.NewData(runDir)
	if err != nil { log.Fatal(err.Error()) }

	xh, err := d.ReadCoord("xh")
	if err != nil { log.Fatal(err.Error()) }
	zh, err := d.ReadCoord("zh")
	if err != nil { log.Fatal(err.Error()) }
	grid, err := d.ReadVar(v, kprint)
	if err != nil { log.Fatal(err.Error()) }

	// Cut along both axes through the innermost cells.
	alongZ, err := mesh.Slice(grid, xh, "z", 0)
	if err != nil { log.Fatal(err.Error()) }
	alongR, err := mesh.Slice(grid, zh, "r", 0)
	if err != nil { log.Fatal(err.Error()) }

	yLabel := fmt.Sprintf("%s [code units]", v)
	if v == "den" {
		floats.Scale(mesh.ElectronDensityFactor, alongZ)
		floats.Scale(mesh.ElectronDensityFactor, alongR)
		yLabel = `$n_e$ $[{\rm cm^{-3}}]$`
	}
	title := fmt.Sprintf("%s, %s", v, timeLabel(&d.Geom, kprint))

	profilePlot(zh, alongZ, `$z$ $[{\rm kpc}]$`, yLabel, title,
		path.Join(plotDir, fmt.Sprintf("%s_z%d.png", v, kprint)))
	profilePlot(xh, alongR, `$R$ $[{\rm kpc}]$`, yLabel, title,
		path.Join(plotDir, fmt.Sprintf("%s_r%d.png", v, kprint)))

	plt.Execute()
}

// timeLabel formats the snapshot's recorded output time for a plot title.
func timeLabel(g *fermi.Geometry, kprint int) string {
	if kprint == 0 {
		return "initial atmosphere"
	}
	if kprint > len(g.OutputTimes) {
		return fmt.Sprintf("kprint %d", kprint)
	}

	label := g.OutputTimes[kprint-1]
	t, err := strconv.ParseFloat(label, 64)
	if err != nil {
		return fmt.Sprintf("$t$ = %s yr", label)
	}
	return fmt.Sprintf("$t = %s$ yr", num.FormatLatex(t))
}

func profilePlot(coord, prof []float64, xLabel, yLabel, title, fname string) {
	plt.Figure()
	plt.Plot(coord, prof, "k", plt.LW(2))

	plt.Title(title)
	plt.XLabel(xLabel, plt.FontSize(16))
	plt.YLabel(yLabel, plt.FontSize(16))

	plt.XScale("log")
	if len(prof) > 0 && floats.Min(prof) > 0 {
		plt.YScale("log")
	}

	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)
}
