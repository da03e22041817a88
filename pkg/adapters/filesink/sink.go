// Package filesink provides a file-backed output stream sink.
package filesink

import (
	"os"

	"github.com/user/mjpegpack/pkg/ports"
)

// Sink writes the assembled stream to a single file.
type Sink struct {
	file    *os.File
	written int64
	closed  bool
}

// Create opens path for writing, truncating any existing file. The
// returned sink must be closed by the caller; Close is safe to call
// more than once so it can be deferred and also checked explicitly.
func Create(path string) (*Sink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Sink{file: file}, nil
}

// Write appends p to the file.
func (s *Sink) Write(p []byte) (int, error) {
	n, err := s.file.Write(p)
	s.written += int64(n)
	return n, err
}

// Close closes the underlying file. Subsequent calls are no-ops.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.file.Close()
}

// BytesWritten returns the number of bytes appended so far.
func (s *Sink) BytesWritten() int64 {
	return s.written
}

// Ensure Sink implements ports.StreamSink
var _ ports.StreamSink = (*Sink)(nil)
