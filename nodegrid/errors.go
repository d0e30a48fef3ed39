package nodegrid

import "errors"

var (
	// ErrNilGrid indicates New was called without a grid.
	ErrNilGrid = errors.New("nodegrid: grid is nil")
	// ErrPayloadOutOfRange indicates the payload coordinate is off the grid.
	ErrPayloadOutOfRange = errors.New("nodegrid: payload outside grid")
	// ErrEmptyPayload indicates the payload node holds no data.
	ErrEmptyPayload = errors.New("nodegrid: payload node is empty")
	// ErrBadLine indicates a malformed node line in a df listing.
	ErrBadLine = errors.New("nodegrid: malformed node line")
	// ErrNotCompressible indicates the grid does not split cleanly into
	// one empty node, fillers and blockers.
	ErrNotCompressible = errors.New("nodegrid: grid not compressible")
)
