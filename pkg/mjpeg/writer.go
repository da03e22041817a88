// Package mjpeg assembles independently encoded JPEG frames into a single
// concatenated MJPEG stream. Frames are appended verbatim; the stream has
// no container-level header, index or separators, each frame delimiting
// itself via its own SOI/EOI markers.
package mjpeg

import (
	"fmt"
	"io"

	"github.com/user/mjpegpack/pkg/jpeg"
)

// Writer appends JPEG frames to an output sink, enforcing that every
// frame shares the pixel dimensions of the first accepted one.
//
// A Writer has exactly one logical owner for its lifetime; it performs no
// internal locking and is not safe for concurrent use.
type Writer struct {
	sink    io.Writer
	ref     jpeg.Dimensions
	haveRef bool
	frames  int
	written int64
}

// NewWriter creates a Writer that appends accepted frames to sink.
func NewWriter(sink io.Writer) *Writer {
	return &Writer{sink: sink}
}

// AddFrame validates buf and, if accepted, appends it unmodified to the
// sink. The first accepted frame establishes the reference dimensions;
// later frames must match them field-wise.
//
// A rejected frame writes nothing and returns one of ErrInvalidStructure,
// ErrDimensionsUnavailable or ErrDimensionMismatch (see IsReject). Any
// other error is a sink write fault and is fatal to the run.
func (w *Writer) AddFrame(buf []byte) error {
	if !jpeg.IsValid(buf) {
		return ErrInvalidStructure
	}
	dims, ok := jpeg.ExtractDimensions(buf)
	if !ok {
		return ErrDimensionsUnavailable
	}
	if w.haveRef && dims != w.ref {
		return fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrDimensionMismatch, dims.Width, dims.Height, w.ref.Width, w.ref.Height)
	}
	n, err := w.sink.Write(buf)
	w.written += int64(n)
	if err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	if !w.haveRef {
		w.ref = dims
		w.haveRef = true
	}
	w.frames++
	return nil
}

// Dimensions returns the reference dimensions established by the first
// accepted frame. ok is false until a frame has been accepted.
func (w *Writer) Dimensions() (dims jpeg.Dimensions, ok bool) {
	return w.ref, w.haveRef
}

// FrameCount returns the number of frames accepted so far.
func (w *Writer) FrameCount() int {
	return w.frames
}

// BytesWritten returns the number of bytes appended to the sink.
func (w *Writer) BytesWritten() int64 {
	return w.written
}
