package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/user/mjpegpack/pkg/mjpeg"
	"github.com/user/mjpegpack/pkg/mocks"
	"github.com/user/mjpegpack/pkg/pipeline"
	"github.com/user/mjpegpack/pkg/ports"
)

func frame(width, height int, filler byte) []byte {
	buf := []byte{0xFF, 0xD8}
	buf = append(buf,
		0xFF, 0xC0,
		0x00, 0x11,
		0x08,
		byte(height>>8), byte(height),
		byte(width>>8), byte(width),
	)
	buf = append(buf, filler, filler, filler, filler)
	buf = append(buf, 0xFF, 0xD9)
	return buf
}

// mockScanStage is a mock for the scan stage.
type mockScanStage struct {
	result pipeline.ScanResult
	err    error
}

func (m *mockScanStage) Execute(ctx context.Context, input pipeline.ScanInput) (pipeline.ScanResult, error) {
	if m.err != nil {
		return pipeline.ScanResult{}, m.err
	}
	return m.result, nil
}

// feedingAssembleStage feeds fixed buffers to the writer from the input.
type feedingAssembleStage struct {
	frames [][]byte
}

func (m *feedingAssembleStage) Execute(ctx context.Context, input pipeline.AssembleInput) (pipeline.AssembleResult, error) {
	result := pipeline.AssembleResult{Offered: len(m.frames)}
	for i, buf := range m.frames {
		err := input.Writer.AddFrame(buf)
		switch {
		case err == nil:
			result.Accepted++
		case mjpeg.IsReject(err):
			result.Rejects = append(result.Rejects, pipeline.FrameReject{
				Path:   input.Paths[i],
				Reason: err,
			})
		default:
			return result, err
		}
	}
	return result, nil
}

func TestOrchestrator_Run(t *testing.T) {
	f1 := frame(640, 480, 0x01)
	f2 := frame(640, 480, 0x02)

	scanStage := &mockScanStage{
		result: pipeline.ScanResult{Paths: []string{"/in/0001.jpg", "/in/0002.jpg"}},
	}
	assembleStage := &feedingAssembleStage{frames: [][]byte{f1, f2}}

	sink := mocks.NewStreamSink()
	orch := New(
		scanStage,
		assembleStage,
		func(path string) (ports.StreamSink, error) { return sink, nil },
		mocks.NewDebugSink(false),
		mocks.NewLogger(),
	)

	config := DefaultConfig()
	config.InputDir = "/in"
	config.OutputPath = "/out/stream.mjpeg"

	result, err := orch.Run(context.Background(), config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Accepted != 2 || result.Offered != 2 {
		t.Errorf("got %d/%d, want 2/2", result.Accepted, result.Offered)
	}
	if result.Width != 640 || result.Height != 480 {
		t.Errorf("dimensions = %dx%d, want 640x480", result.Width, result.Height)
	}

	want := append(append([]byte{}, f1...), f2...)
	if !bytes.Equal(sink.Bytes(), want) {
		t.Error("sink does not hold the concatenated frames")
	}
	if result.OutputBytes != int64(len(want)) {
		t.Errorf("OutputBytes = %d, want %d", result.OutputBytes, len(want))
	}
	if !sink.Closed() {
		t.Error("expected sink to be closed")
	}
}

func TestOrchestrator_Run_NoFrames(t *testing.T) {
	orch := New(
		&mockScanStage{result: pipeline.ScanResult{}},
		&feedingAssembleStage{},
		func(path string) (ports.StreamSink, error) {
			t.Fatal("sink must not be opened when there are no frames")
			return nil, nil
		},
		mocks.NewDebugSink(false),
		mocks.NewLogger(),
	)

	_, err := orch.Run(context.Background(), DefaultConfig())
	if !errors.Is(err, ErrNoFrames) {
		t.Errorf("got %v, want ErrNoFrames", err)
	}
}

func TestOrchestrator_Run_ScanError(t *testing.T) {
	scanErr := errors.New("no such directory")
	orch := New(
		&mockScanStage{err: scanErr},
		&feedingAssembleStage{},
		func(path string) (ports.StreamSink, error) { return mocks.NewStreamSink(), nil },
		mocks.NewDebugSink(false),
		mocks.NewLogger(),
	)

	_, err := orch.Run(context.Background(), DefaultConfig())
	if !errors.Is(err, scanErr) {
		t.Errorf("got %v, want wrapped scan error", err)
	}
}

func TestOrchestrator_Run_OpenError(t *testing.T) {
	openErr := errors.New("permission denied")
	orch := New(
		&mockScanStage{result: pipeline.ScanResult{Paths: []string{"/in/0001.jpg"}}},
		&feedingAssembleStage{},
		func(path string) (ports.StreamSink, error) { return nil, openErr },
		mocks.NewDebugSink(false),
		mocks.NewLogger(),
	)

	_, err := orch.Run(context.Background(), DefaultConfig())
	if !errors.Is(err, openErr) {
		t.Errorf("got %v, want wrapped open error", err)
	}
}

func TestOrchestrator_Run_ClosesSinkOnAssembleError(t *testing.T) {
	sink := mocks.NewStreamSink()
	asmErr := errors.New("read failure")
	failing := pipeline.StageFunc[pipeline.AssembleInput, pipeline.AssembleResult](
		func(ctx context.Context, input pipeline.AssembleInput) (pipeline.AssembleResult, error) {
			return pipeline.AssembleResult{}, asmErr
		},
	)

	orch := New(
		&mockScanStage{result: pipeline.ScanResult{Paths: []string{"/in/0001.jpg"}}},
		failing,
		func(path string) (ports.StreamSink, error) { return sink, nil },
		mocks.NewDebugSink(false),
		mocks.NewLogger(),
	)

	_, err := orch.Run(context.Background(), DefaultConfig())
	if !errors.Is(err, asmErr) {
		t.Errorf("got %v, want wrapped assemble error", err)
	}
	if !sink.Closed() {
		t.Error("sink must be closed on the error path")
	}
}

func TestOrchestrator_Run_RejectsReported(t *testing.T) {
	f1 := frame(640, 480, 0x01)
	mismatched := frame(320, 240, 0x02)

	orch := New(
		&mockScanStage{result: pipeline.ScanResult{Paths: []string{"/in/a.jpg", "/in/b.jpg"}}},
		&feedingAssembleStage{frames: [][]byte{f1, mismatched}},
		func(path string) (ports.StreamSink, error) { return mocks.NewStreamSink(), nil },
		mocks.NewDebugSink(false),
		mocks.NewLogger(),
	)

	result, err := orch.Run(context.Background(), DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Accepted != 1 || len(result.Rejects) != 1 {
		t.Fatalf("got accepted=%d rejects=%d, want 1/1", result.Accepted, len(result.Rejects))
	}
	if !errors.Is(result.Rejects[0].Reason, mjpeg.ErrDimensionMismatch) {
		t.Errorf("reject reason = %v, want ErrDimensionMismatch", result.Rejects[0].Reason)
	}
}

func TestOrchestrator_Run_DebugRunJSON(t *testing.T) {
	debug := mocks.NewDebugSink(true)
	orch := New(
		&mockScanStage{result: pipeline.ScanResult{Paths: []string{"/in/a.jpg"}}},
		&feedingAssembleStage{frames: [][]byte{frame(640, 480, 0x01)}},
		func(path string) (ports.StreamSink, error) { return mocks.NewStreamSink(), nil },
		debug,
		mocks.NewLogger(),
	)

	if _, err := orch.Run(context.Background(), DefaultConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(debug.RunJSON) == 0 {
		t.Error("expected run.json content in the debug sink")
	}
}
