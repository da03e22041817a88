package ports

import "io"

// StreamSink is the append-only byte sink holding the assembled stream.
// It grows monotonically; no frame boundaries are recorded in it.
type StreamSink interface {
	io.Writer

	// Close flushes and releases the sink. Implementations must tolerate
	// a second Close so callers can both defer it and check its error.
	Close() error

	// BytesWritten returns the number of bytes appended so far.
	BytesWritten() int64
}

// DebugSink abstracts debug output for per-frame artifacts.
// It allows saving copies of processed frames for troubleshooting.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveAcceptedFrame saves a copy of an accepted frame by its offer index.
	SaveAcceptedFrame(index int, data []byte) error

	// SaveRejectedFrame saves a copy of a rejected frame under its source name.
	SaveRejectedFrame(name string, data []byte) error

	// SaveRunJSON saves the run result as JSON.
	SaveRunJSON(data []byte) error
}
