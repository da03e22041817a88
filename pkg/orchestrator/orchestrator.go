// Package orchestrator coordinates the frame discovery and assembly stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/user/mjpegpack/pkg/mjpeg"
	"github.com/user/mjpegpack/pkg/pipeline"
	"github.com/user/mjpegpack/pkg/ports"
)

// ErrNoFrames is returned when the input directory contains no frame files.
var ErrNoFrames = errors.New("orchestrator: no frame files found in input directory")

// Config contains all configuration for a single assembly run.
type Config struct {
	// InputDir is the directory holding the frame files.
	InputDir string

	// OutputPath is the file receiving the assembled stream.
	OutputPath string

	// Extensions are the accepted file extension spellings.
	Extensions []string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Extensions: pipeline.DefaultExtensions(),
	}
}

// SinkOpener creates the output sink for a run. An open failure is fatal
// to the whole run.
type SinkOpener func(path string) (ports.StreamSink, error)

// Orchestrator coordinates the execution of an assembly run.
type Orchestrator struct {
	scanStage     pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult]
	assembleStage pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult]
	openSink      SinkOpener
	sink          ports.DebugSink
	logger        ports.Logger
}

// New creates a new Orchestrator.
func New(
	scanStage pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult],
	assembleStage pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult],
	openSink SinkOpener,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		scanStage:     scanStage,
		assembleStage: assembleStage,
		openSink:      openSink,
		sink:          sink,
		logger:        logger,
	}
}

// RunResult contains the results of an assembly run for reporting.
type RunResult struct {
	// Frame accounting
	Offered  int
	Accepted int
	Rejects  []pipeline.FrameReject

	// Reference dimensions; zero when no frame was accepted.
	Width  int
	Height int

	// OutputBytes is the size of the assembled stream.
	OutputBytes int64
}

// Run executes a complete assembly run: discover frames, open the output
// sink, and feed the frames to the stream writer in order. The sink is
// closed on every exit path.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info("Scanning %s", config.InputDir)
	scan, err := o.scanStage.Execute(ctx, pipeline.ScanInput{
		Dir:        config.InputDir,
		Extensions: config.Extensions,
	})
	if err != nil {
		o.logger.Error("Failed to scan input directory: %s", err)
		return RunResult{}, fmt.Errorf("scan stage: %w", err)
	}
	if len(scan.Paths) == 0 {
		return RunResult{}, ErrNoFrames
	}
	o.logger.Info("Assembling %d frames into %s", len(scan.Paths), config.OutputPath)

	out, err := o.openSink(config.OutputPath)
	if err != nil {
		o.logger.Error("Failed to open output: %s", err)
		return RunResult{}, fmt.Errorf("open output: %w", err)
	}
	defer out.Close()

	writer := mjpeg.NewWriter(out)
	asm, err := o.assembleStage.Execute(ctx, pipeline.AssembleInput{
		Paths:  scan.Paths,
		Writer: writer,
	})
	if err != nil {
		o.logger.Error("Failed to assemble stream: %s", err)
		return RunResult{}, fmt.Errorf("assemble stage: %w", err)
	}

	if err := out.Close(); err != nil {
		o.logger.Error("Failed to close output: %s", err)
		return RunResult{}, fmt.Errorf("close output: %w", err)
	}

	dims, _ := writer.Dimensions()
	result := RunResult{
		Offered:     asm.Offered,
		Accepted:    asm.Accepted,
		Rejects:     asm.Rejects,
		Width:       dims.Width,
		Height:      dims.Height,
		OutputBytes: writer.BytesWritten(),
	}

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(debugRecord(result), "", "  "); err == nil {
			o.sink.SaveRunJSON(data)
		}
	}

	o.logger.Info("Assembly complete: %d/%d frames, %dx%d",
		result.Accepted, result.Offered, result.Width, result.Height)
	return result, nil
}

// runRecord is the JSON shape of a run result for the debug sink.
type runRecord struct {
	Offered     int            `json:"offered"`
	Accepted    int            `json:"accepted"`
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	OutputBytes int64          `json:"output_bytes"`
	Rejects     []rejectRecord `json:"rejects,omitempty"`
}

type rejectRecord struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

func debugRecord(result RunResult) runRecord {
	rec := runRecord{
		Offered:     result.Offered,
		Accepted:    result.Accepted,
		Width:       result.Width,
		Height:      result.Height,
		OutputBytes: result.OutputBytes,
	}
	for _, r := range result.Rejects {
		rec.Rejects = append(rec.Rejects, rejectRecord{
			File:   filepath.Base(r.Path),
			Reason: r.Reason.Error(),
		})
	}
	return rec
}
