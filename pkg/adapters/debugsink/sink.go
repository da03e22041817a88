// Package debugsink provides a directory-backed debug sink implementation.
package debugsink

import (
	"fmt"
	"path/filepath"

	"github.com/user/mjpegpack/pkg/ports"
)

// Sink saves debug output to files under a base directory.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new debug Sink.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveAcceptedFrame saves a copy of an accepted frame by its offer index.
func (s *Sink) SaveAcceptedFrame(index int, data []byte) error {
	dir := filepath.Join(s.baseDir, "frames", "accepted")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.jpg", index))
	return s.fs.WriteFile(path, data)
}

// SaveRejectedFrame saves a copy of a rejected frame under its source name.
func (s *Sink) SaveRejectedFrame(name string, data []byte) error {
	dir := filepath.Join(s.baseDir, "frames", "rejected")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	return s.fs.WriteFile(filepath.Join(dir, name), data)
}

// SaveRunJSON saves the run result as JSON.
func (s *Sink) SaveRunJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "run.json"), data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
