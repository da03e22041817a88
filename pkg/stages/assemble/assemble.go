// Package assemble implements the frame feeding stage.
package assemble

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/user/mjpegpack/pkg/mjpeg"
	"github.com/user/mjpegpack/pkg/pipeline"
	"github.com/user/mjpegpack/pkg/ports"
)

// Stage reads frame files in order and offers them to the stream writer.
type Stage struct {
	fs   ports.FileSystem
	sink ports.DebugSink
	log  ports.Logger
}

// New creates a new assemble stage.
func New(fs ports.FileSystem, sink ports.DebugSink, log ports.Logger) *Stage {
	return &Stage{
		fs:   fs,
		sink: sink,
		log:  log.WithComponent("assemble"),
	}
}

// Execute offers every path to the writer in input order. A rejected
// frame is recorded with its reason and processing continues with the
// next one; a file read error or a sink write fault aborts the run.
func (s *Stage) Execute(ctx context.Context, input pipeline.AssembleInput) (pipeline.AssembleResult, error) {
	result := pipeline.AssembleResult{Offered: len(input.Paths)}

	for i, path := range input.Paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		s.log.Debug("Processing %s", filepath.Base(path))
		data, err := s.fs.ReadFile(path)
		if err != nil {
			return result, fmt.Errorf("read frame %s: %w", path, err)
		}

		err = input.Writer.AddFrame(data)
		switch {
		case err == nil:
			result.Accepted++
			if s.sink.Enabled() {
				s.sink.SaveAcceptedFrame(i, data)
			}
		case mjpeg.IsReject(err):
			s.log.Warn("Rejected %s: %s", filepath.Base(path), err)
			result.Rejects = append(result.Rejects, pipeline.FrameReject{
				Path:   path,
				Reason: err,
			})
			if s.sink.Enabled() {
				s.sink.SaveRejectedFrame(filepath.Base(path), data)
			}
		default:
			return result, err
		}
	}

	return result, nil
}
