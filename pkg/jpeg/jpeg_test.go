package jpeg

import (
	"bytes"
	"testing"
)

// buildFrame assembles a minimal frame: SOI, a SOF0 segment declaring the
// given dimensions, optional padding, EOI.
func buildFrame(width, height int, padding int) []byte {
	frame := []byte{0xFF, 0xD8}
	frame = append(frame,
		0xFF, 0xC0, // SOF0
		0x00, 0x11, // segment length
		0x08, // precision
		byte(height>>8), byte(height),
		byte(width>>8), byte(width),
	)
	frame = append(frame, bytes.Repeat([]byte{0x42}, padding)...)
	frame = append(frame, 0xFF, 0xD9)
	return frame
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want bool
	}{
		{"nil buffer", nil, false},
		{"empty buffer", []byte{}, false},
		{"too short", []byte{0xFF, 0xD8, 0xD9}, false},
		{"missing SOI", []byte{0x00, 0xD8, 0xFF, 0xD9}, false},
		{"wrong SOI code", []byte{0xFF, 0xD7, 0xFF, 0xD9}, false},
		{"missing EOI", []byte{0xFF, 0xD8, 0xFF, 0x00}, false},
		{"truncated EOI", []byte{0xFF, 0xD8, 0x00, 0xD9}, false},
		{"empty-payload frame", []byte{0xFF, 0xD8, 0xFF, 0xD9}, true},
		{"frame with payload", buildFrame(640, 480, 16), true},
		{"garbage interior still valid", append(append([]byte{0xFF, 0xD8}, bytes.Repeat([]byte{0x00}, 32)...), 0xFF, 0xD9), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.buf); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractDimensions(t *testing.T) {
	frame := buildFrame(640, 480, 16)

	dims, ok := ExtractDimensions(frame)
	if !ok {
		t.Fatal("expected dimensions to be found")
	}
	if dims.Width != 640 || dims.Height != 480 {
		t.Errorf("got %dx%d, want 640x480", dims.Width, dims.Height)
	}
}

func TestExtractDimensions_BigEndianDecode(t *testing.T) {
	// Height bytes (0x01, 0x02) and width bytes (0x03, 0x04) must decode
	// as big-endian 16-bit values.
	frame := buildFrame(0x0304, 0x0102, 8)

	dims, ok := ExtractDimensions(frame)
	if !ok {
		t.Fatal("expected dimensions to be found")
	}
	if want := 1*256 + 2; dims.Height != want {
		t.Errorf("height = %d, want %d", dims.Height, want)
	}
	if want := 3*256 + 4; dims.Width != want {
		t.Errorf("width = %d, want %d", dims.Width, want)
	}
}

func TestExtractDimensions_NoMarker(t *testing.T) {
	buf := append(append([]byte{0xFF, 0xD8}, bytes.Repeat([]byte{0x11}, 32)...), 0xFF, 0xD9)

	if _, ok := ExtractDimensions(buf); ok {
		t.Error("expected no dimensions without a SOF0 marker")
	}
}

func TestExtractDimensions_MarkerTooCloseToEnd(t *testing.T) {
	// The marker pair sits inside the last 8 bytes, so the fixed-offset
	// reads would run out of bounds; the scan must not match it.
	buf := []byte{0xFF, 0xD8, 0x00, 0x00, 0xFF, 0xC0, 0x00, 0x00, 0xFF, 0xD9}

	if _, ok := ExtractDimensions(buf); ok {
		t.Error("expected no match for marker inside the lookahead window")
	}
}

func TestExtractDimensions_FirstMarkerWins(t *testing.T) {
	frame := buildFrame(320, 240, 0)
	// Append a second SOF0 with different dimensions; the forward scan
	// must report the first.
	frame = frame[:len(frame)-2]
	frame = append(frame, 0xFF, 0xC0, 0x00, 0x11, 0x08, 0x04, 0x00, 0x05, 0x00)
	frame = append(frame, 0xFF, 0xD9)

	dims, ok := ExtractDimensions(frame)
	if !ok {
		t.Fatal("expected dimensions to be found")
	}
	if dims.Width != 320 || dims.Height != 240 {
		t.Errorf("got %dx%d, want first marker's 320x240", dims.Width, dims.Height)
	}
}

func TestExtractDimensions_Idempotent(t *testing.T) {
	frame := buildFrame(1920, 1080, 24)

	first, ok1 := ExtractDimensions(frame)
	second, ok2 := ExtractDimensions(frame)
	if ok1 != ok2 || first != second {
		t.Errorf("extraction not idempotent: (%v,%v) vs (%v,%v)", first, ok1, second, ok2)
	}
}

func TestExtractDimensions_ShortBuffer(t *testing.T) {
	if _, ok := ExtractDimensions([]byte{0xFF, 0xC0}); ok {
		t.Error("expected no match in a buffer shorter than the lookahead")
	}
}
