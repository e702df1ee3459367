package main

const ExampleExportFile = `[Export]

#######################
# Required Parameters #
#######################

# Directory containing the fermi.f output files. It must hold the run's
# fermi.inp echo next to the ascii.out files.
Input = path/to/run/dir
# Directory which output tables will be written to.
Output = path/to/output/dir

# Variable to export. The velocity components are named uz and ur here,
# everything else keeps fermi.f's own name (den, e, pre, ...).
Variable = den

# Half width of the mirrored mesh along r and its height along z, in kpc.
RMax = 5.0
ZMax = 5.0

#######################
# Optional Parameters #
#######################

# Snapshot to export. 0 is the initial atmosphere, k > 0 the k-th recorded
# output time. Default is 0.
# Kprint = 4

# Coordinate file the mesh is built from. xh and zh hold cell centers, x and
# z cell boundaries. Default is xh.
# Coord = xh

# When SliceDirection is set, a 1D profile is written instead of the full
# mirrored mesh. "z" cuts along z at r = SliceKpc, "r" cuts along r at
# z = SliceKpc.
# SliceDirection = z
# SliceKpc = 0.0

# Log every file read, with its size and value range.
# Verbose = true

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`

type ExportConfig struct {
	// Required
	Input, Output string
	Variable      string
	RMax, ZMax    float64

	// Optional
	Kprint               int
	Coord                string
	SliceDirection       string
	SliceKpc             float64
	Verbose              bool
	LogFile, ProfileFile string
}

type ExportWrapper struct {
	Export ExportConfig
}

func DefaultExportWrapper() *ExportWrapper {
	con := ExportConfig{}
	con.Coord = "xh"
	return &ExportWrapper{con}
}

func (con *ExportConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *ExportConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *ExportConfig) ValidVariable() bool {
	return con.Variable != ""
}
func (con *ExportConfig) ValidRMax() bool {
	return con.RMax > 0
}
func (con *ExportConfig) ValidZMax() bool {
	return con.ZMax > 0
}
func (con *ExportConfig) ValidKprint() bool {
	return con.Kprint >= 0
}
func (con *ExportConfig) ValidCoord() bool {
	return con.Coord != ""
}
func (con *ExportConfig) ValidSliceDirection() bool {
	return con.SliceDirection == "r" || con.SliceDirection == "z"
}
func (con *ExportConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *ExportConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}
