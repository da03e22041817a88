package mjpeg

import "errors"

var (
	// ErrInvalidStructure is returned when a frame is too short or lacks
	// its SOI/EOI boundary markers.
	ErrInvalidStructure = errors.New("mjpeg: frame missing SOI/EOI boundary markers")

	// ErrDimensionsUnavailable is returned when no SOF0 marker could be
	// located within the frame's scan window.
	ErrDimensionsUnavailable = errors.New("mjpeg: no SOF0 marker found in frame")

	// ErrDimensionMismatch is returned when a frame's dimensions differ
	// from the reference established by the first accepted frame.
	ErrDimensionMismatch = errors.New("mjpeg: frame dimensions differ from stream reference")
)

// IsReject reports whether err is a per-frame rejection rather than a
// sink fault. Rejections are recoverable at frame granularity and leave
// the writer and its output untouched; anything else is fatal to the run.
func IsReject(err error) bool {
	return errors.Is(err, ErrInvalidStructure) ||
		errors.Is(err, ErrDimensionsUnavailable) ||
		errors.Is(err, ErrDimensionMismatch)
}
