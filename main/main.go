package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"runtime/pprof"
	"strings"

	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"
	"gopkg.in/gcfg.v1"

	"github.com/xshaokun/gofermi/fermi"
	"github.com/xshaokun/gofermi/mesh"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func main() {
	// The main function manages input sanitization and calls the secondary
	// main functions for each mode. The code tries to fail gracefully if the
	// user provides incorrect input.

	var (
		exportStr, infoStr string
		exampleConfig      string
	)
	vars := map[string]*string{
		"Export":        &exportStr,
		"Info":          &infoStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&exportStr, "Export", "",
		"Configuration file for [Export] mode.",
	)
	flag.StringVar(
		&infoStr, "Info", "",
		"Directory holding a fermi.f run. Prints its grid geometry and "+
			"recorded output times.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Export'.",
	)

	flag.Parse()

	// Figure out the mode and fail with a descriptive error if the user gave
	// incorrect flags.
	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Export":
		wrap := DefaultExportWrapper()
		err := gcfg.ReadFileInto(wrap, exportStr)

		if err != nil { log.Fatal(err.Error()) }
		con := &wrap.Export

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidVariable() {
			log.Fatal("Invalid/non-existent 'Variable' value.")
		} else if !con.ValidRMax() {
			log.Fatal("Invalid 'RMax' value.")
		} else if !con.ValidZMax() {
			log.Fatal("Invalid 'ZMax' value.")
		} else if !con.ValidKprint() {
			log.Fatal("Invalid 'Kprint' value.")
		} else if !con.ValidCoord() {
			log.Fatal("Invalid 'Coord' value.")
		}

		if con.SliceDirection != "" && !con.ValidSliceDirection() {
			log.Fatal("'SliceDirection' must be one of [ r | z ].")
		}

		exportMain(con)

	case "Info":
		infoMain(infoStr)

	case "ExampleConfig":
		switch exampleConfig {
		case "Export":
			fmt.Println(ExampleExportFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only " +
					"recognized argument is 'Export'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but gofermi "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// setupIO opens the log and profile files named in the config, if any, and
// redirects the standard logger into the log file.
func setupIO(con *ExportConfig) *FileGroup {
	var err error
	fg := new(FileGroup)

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil { log.Fatal(err.Error()) }
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil { log.Fatal(err.Error()) }
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil { log.Fatal(err.Error()) }
	}

	return fg
}

// runLogger builds the logger handed to the reader. Reads are traced at
// Debug level, so the trace only shows up when Verbose is set.
func runLogger(con *ExportConfig) logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(log.Writer())
	if con.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// exportMain reads one variable of one snapshot and writes it back out as
// whitespace tables, either the full mirrored mesh or a 1D slice of the
// raw grid.
func exportMain(con *ExportConfig) {
	fg := setupIO(con)
	defer fg.Close()

	d, err := fermi.NewData(con.Input)
	if err != nil { log.Fatal(err.Error()) }
	d.Log = runLogger(con)

	coord, err := d.ReadCoord(con.Coord)
	if err != nil { log.Fatal(err.Error()) }
	grid, err := d.ReadVar(con.Variable, con.Kprint)
	if err != nil { log.Fatal(err.Error()) }

	if err = os.MkdirAll(con.Output, 0777); err != nil {
		log.Fatal(err.Error())
	}

	if con.SliceDirection != "" {
		prof, err := mesh.Slice(grid, coord, con.SliceDirection, con.SliceKpc)
		if err != nil { log.Fatal(err.Error()) }

		out := path.Join(con.Output, fmt.Sprintf(
			"%s_%s_slice.txt", con.Variable, con.SliceDirection,
		))
		log.Printf("Writing to %s", out)
		printSlice(out, con, coord, prof)
		return
	}

	R, Z := mesh.CoordMesh(coord, con.RMax, con.ZMax)
	data, err := mesh.VarMesh(grid, con.Variable, R)
	if err != nil { log.Fatal(err.Error()) }

	outputs := []struct {
		name string
		desc string
		m    *sparse.DenseArray
	}{
		{"R_mesh.txt", "mirrored R coordinates (kpc)", R},
		{"z_mesh.txt", "z coordinates (kpc)", Z},
		{con.Variable + "_mesh.txt",
			fmt.Sprintf("%s at kprint %d", con.Variable, con.Kprint), data},
	}
	for _, o := range outputs {
		out := path.Join(con.Output, o.name)
		log.Printf("Writing to %s", out)
		printMesh(out, o.desc, o.m)
	}
}

func printSlice(fname string, con *ExportConfig, coord, prof []float64) {
	f, err := os.Create(fname)
	if err != nil { log.Fatal(err.Error()) }
	defer f.Close()

	fmt.Fprintf(f, "# %s at kprint %d, cut along %s at %g kpc.\n",
		con.Variable, con.Kprint, con.SliceDirection, con.SliceKpc)
	fmt.Fprintln(f, "# Columns: coordinate (kpc), value.")

	n := len(prof)
	if len(coord) < n { n = len(coord) }
	for i := 0; i < n; i++ {
		fmt.Fprintf(f, "%9.4g %9.4g\n", coord[i], prof[i])
	}
}

func printMesh(fname, desc string, m *sparse.DenseArray) {
	f, err := os.Create(fname)
	if err != nil { log.Fatal(err.Error()) }
	defer f.Close()

	fmt.Fprintf(f, "# %s: %d x %d mesh.\n", desc, m.Shape[0], m.Shape[1])
	for i := 0; i < m.Shape[0]; i++ {
		for j := 0; j < m.Shape[1]; j++ {
			fmt.Fprintf(f, "%9.4g ", m.Get(i, j))
		}
		fmt.Fprintln(f)
	}
}

// infoMain prints the grid geometry and the recorded output times of a run.
func infoMain(dir string) {
	d, err := fermi.NewData(dir)
	if err != nil { log.Fatal(err.Error()) }
	g := &d.Geom

	fmt.Printf("Run directory: %s\n", d.Dir)
	fmt.Printf("Grid: %d zones per axis (%d even + %d log)\n",
		g.Zones, g.EvenZones, g.LogZones)
	fmt.Printf("Even region length: %g (resolution %g)\n",
		g.EvenLength, g.Resolution)

	if len(g.OutputTimes) == 0 {
		fmt.Println("No recorded output times.")
		return
	}
	fmt.Println("Output times:")
	for i, label := range g.OutputTimes {
		fmt.Printf("%4d  %s\n", i+1, label)
	}
}
