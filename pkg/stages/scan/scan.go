// Package scan implements the frame discovery stage.
package scan

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/user/mjpegpack/pkg/pipeline"
	"github.com/user/mjpegpack/pkg/ports"
)

// Stage enumerates a directory and selects the frame files for a run.
type Stage struct {
	fs  ports.FileSystem
	log ports.Logger
}

// New creates a new scan stage.
func New(fs ports.FileSystem, log ports.Logger) *Stage {
	return &Stage{
		fs:  fs,
		log: log.WithComponent("scan"),
	}
}

// Execute returns the paths under input.Dir whose extension exactly
// matches one of input.Extensions, sorted in ascending lexical order.
// Matching is case-sensitive: "frame.JPG" is not selected by ".jpg".
func (s *Stage) Execute(ctx context.Context, input pipeline.ScanInput) (pipeline.ScanResult, error) {
	names, err := s.fs.ListDir(input.Dir)
	if err != nil {
		return pipeline.ScanResult{}, fmt.Errorf("list %s: %w", input.Dir, err)
	}

	var paths []string
	for _, name := range names {
		ext := filepath.Ext(name)
		for _, want := range input.Extensions {
			if ext == want {
				paths = append(paths, filepath.Join(input.Dir, name))
				break
			}
		}
	}
	sort.Strings(paths)

	s.log.Debug("Found %d frame files in %s", len(paths), input.Dir)
	return pipeline.ScanResult{Paths: paths}, nil
}
