// Package errs defines the sentinel errors shared by every hbin package.
//
// Errors are returned wrapped with context, for example
//
//	fmt.Errorf("%w: axis 1 bin 0 (nbins 4)", errs.ErrRangeViolation)
//
// and callers match them with errors.Is.
package errs

import "errors"

// Configuration errors. These indicate a setup bug, not a data condition.
var (
	// ErrInvalidAxis is returned when axis parameters cannot describe a partition,
	// e.g. zero bins or an empty index range.
	ErrInvalidAxis = errors.New("hbin: invalid axis")

	// ErrInvalidEdges is returned when explicit edges are fewer than two or not sorted.
	ErrInvalidEdges = errors.New("hbin: invalid axis edges")

	// ErrNoAxes is returned when a binner is composed without any axis.
	ErrNoAxes = errors.New("hbin: binner requires at least one axis")

	// ErrArity is returned when the number of coordinates or local indices does
	// not match the number of axes.
	ErrArity = errors.New("hbin: wrong number of arguments")

	// ErrCoordinateType is returned when a coordinate cannot be converted to the
	// edge type of its axis.
	ErrCoordinateType = errors.New("hbin: unsupported coordinate type")

	// ErrCheckCount is returned when a migration axis receives a number of check
	// flags different from the one it was built with.
	ErrCheckCount = errors.New("hbin: migration check count mismatch")

	// ErrNoFillRule is returned when a bin type supports none of the fill rules
	// applicable to the given payload.
	ErrNoFillRule = errors.New("hbin: no fill rule for bin type")

	// ErrSyntax is returned for malformed axis definition input.
	ErrSyntax = errors.New("hbin: axis definition syntax error")

	// ErrNoBinning is returned when no axis table pattern matches a name.
	ErrNoBinning = errors.New("hbin: no binning found")

	// ErrUnknownField is returned when an event source has no field of the
	// requested name.
	ErrUnknownField = errors.New("hbin: unknown event field")

	// ErrNotRegistered is returned when removing a handle the registry does not hold.
	ErrNotRegistered = errors.New("hbin: histogram not registered")
)

// Range errors.
var (
	// ErrRangeViolation is returned when a coordinate falls into an excluded
	// underflow or overflow bin of a strict axis.
	ErrRangeViolation = errors.New("hbin: coordinate out of range")

	// ErrEdgeOutOfRange is returned by explicit edge index checks.
	ErrEdgeOutOfRange = errors.New("hbin: axis edge index out of range")

	// ErrBinOutOfRange is returned by explicit bin index checks.
	ErrBinOutOfRange = errors.New("hbin: axis bin index out of range")
)

// Snapshot errors.
var (
	// ErrInvalidSnapshot is returned when snapshot bytes are truncated or malformed.
	ErrInvalidSnapshot = errors.New("hbin: invalid snapshot")

	// ErrChecksum is returned when the snapshot payload checksum does not match.
	ErrChecksum = errors.New("hbin: snapshot checksum mismatch")

	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("hbin: unsupported compression type")
)
