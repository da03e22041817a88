package pipeline

import (
	"github.com/user/mjpegpack/pkg/mjpeg"
)

// =============================================================================
// Scan Stage Types
// =============================================================================

// ScanInput contains parameters for frame discovery.
type ScanInput struct {
	// Dir is the directory to enumerate.
	Dir string

	// Extensions are the accepted file extensions, including the leading
	// dot. Matching is case-sensitive.
	Extensions []string
}

// DefaultExtensions returns the extension spellings accepted by default.
func DefaultExtensions() []string {
	return []string{".jpg", ".jpeg"}
}

// ScanResult contains the discovered frame files.
type ScanResult struct {
	// Paths are the matching file paths in ascending lexical order.
	Paths []string
}

// =============================================================================
// Assemble Stage Types
// =============================================================================

// AssembleInput contains parameters for feeding frames to the stream writer.
type AssembleInput struct {
	// Paths are the frame files to offer, in final output order.
	Paths []string

	// Writer receives each frame's bytes.
	Writer *mjpeg.Writer
}

// FrameReject records a single rejected frame.
type FrameReject struct {
	// Path is the source file of the rejected frame.
	Path string

	// Reason is one of the mjpeg reject errors.
	Reason error
}

// AssembleResult contains per-frame accounting for a run.
type AssembleResult struct {
	// Offered is the total number of frames offered to the writer.
	Offered int

	// Accepted is the number of frames appended to the output.
	Accepted int

	// Rejects lists the frames that were refused, in offer order.
	Rejects []FrameReject
}
