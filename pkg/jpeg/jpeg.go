// Package jpeg provides byte-level inspection of encoded JPEG frames:
// structural validation of the SOI/EOI boundary markers and extraction of
// the declared pixel dimensions from the SOF0 segment.
package jpeg

import "encoding/binary"

// JPEG marker codes used by the frame checks. A marker is the byte 0xFF
// followed by one of these codes.
const (
	markerPrefix = 0xFF

	// SOI marks the start of an image.
	SOI = 0xD8
	// EOI marks the end of an image.
	EOI = 0xD9
	// SOF0 is the baseline start-of-frame segment carrying the pixel
	// dimensions.
	SOF0 = 0xC0
)

// sofLookahead is the number of bytes read past a SOF0 match: the second
// marker byte, the 2-byte segment length, the precision byte, and the two
// big-endian 16-bit dimensions.
const sofLookahead = 8

// Dimensions holds the declared pixel size of a frame.
type Dimensions struct {
	Width  int
	Height int
}

// IsValid reports whether buf is structurally a complete JPEG frame: at
// least 4 bytes long, starting with SOI and ending with EOI. Only the
// boundary bytes are inspected; interior segments are not checked, so a
// bare "FF D8 FF D9" buffer passes.
func IsValid(buf []byte) bool {
	if len(buf) < 4 {
		return false
	}
	if buf[0] != markerPrefix || buf[1] != SOI {
		return false
	}
	n := len(buf)
	return buf[n-2] == markerPrefix && buf[n-1] == EOI
}

// ExtractDimensions scans buf forward from offset 0 for the first SOF0
// marker and decodes the declared height and width from its fixed-layout
// payload. The scan stops sofLookahead bytes before the end of the buffer
// so the payload reads stay in bounds; if no marker is found in that
// window, ok is false.
//
// This is a literal byte-pair search, not a marker-segment walker: an
// FF C0 pair occurring inside entropy-coded data would be matched too,
// and stuffed 0xFF bytes are not unescaped.
func ExtractDimensions(buf []byte) (dims Dimensions, ok bool) {
	for i := 0; i < len(buf)-sofLookahead; i++ {
		if buf[i] != markerPrefix || buf[i+1] != SOF0 {
			continue
		}
		// Payload layout after the marker pair: length (2 bytes),
		// precision (1 byte), height (2 bytes), width (2 bytes).
		h := binary.BigEndian.Uint16(buf[i+5 : i+7])
		w := binary.BigEndian.Uint16(buf[i+7 : i+9])
		return Dimensions{Width: int(w), Height: int(h)}, true
	}
	return Dimensions{}, false
}
