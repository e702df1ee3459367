package fermi

import "errors"

// Failure classes for the read operations. Returned errors wrap one of
// these and are matched with errors.Is; a missing file surfaces as the
// not-exist error from os.Open instead. Nothing is retried or recovered:
// the input files are operator-controlled, and a partial result is worse
// than a hard failure.
var (
	// ErrFormat indicates content that does not parse as the expected
	// numeric or text layout.
	ErrFormat = errors.New("fermi: malformed file content")

	// ErrShape indicates an element count inconsistent with the grid
	// dimensions declared in fermi.inp.
	ErrShape = errors.New("fermi: element count does not match grid")

	// ErrBadArgument indicates an option outside the recognized set.
	ErrBadArgument = errors.New("fermi: unrecognized option")
)
