package mocks

import (
	"bytes"
	"sync"

	"github.com/user/mjpegpack/pkg/ports"
)

// StreamSink is an in-memory implementation of ports.StreamSink.
type StreamSink struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	closed bool

	WriteFunc func(p []byte) (int, error)
	CloseFunc func() error
}

// NewStreamSink creates a new mock StreamSink.
func NewStreamSink() *StreamSink {
	return &StreamSink{}
}

func (m *StreamSink) Write(p []byte) (int, error) {
	if m.WriteFunc != nil {
		return m.WriteFunc(p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.Write(p)
}

func (m *StreamSink) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *StreamSink) BytesWritten() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(m.buf.Len())
}

// Bytes returns the accumulated stream (for test verification).
func (m *StreamSink) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.Bytes()
}

// Closed reports whether Close was called (for test verification).
func (m *StreamSink) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

var _ ports.StreamSink = (*StreamSink)(nil)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	AcceptedFrames map[int][]byte
	RejectedFrames map[string][]byte
	RunJSON        []byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:        enabled,
		AcceptedFrames: make(map[int][]byte),
		RejectedFrames: make(map[string][]byte),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveAcceptedFrame(index int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AcceptedFrames[index] = data
	return nil
}

func (m *DebugSink) SaveRejectedFrame(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RejectedFrames[name] = data
	return nil
}

func (m *DebugSink) SaveRunJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RunJSON = data
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
