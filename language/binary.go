package language

import "bytes"

// magicSignatures are leading byte sequences of common binary formats.
var magicSignatures = [][]byte{
	{0x00},                  // null byte
	{0xff, 0xd8, 0xff},      // JPEG
	[]byte("\x89PNG\r\n\x1a\n"), // PNG
	[]byte("GIF89a"),        // GIF
	[]byte("BM"),            // BMP
	[]byte("%PDF"),          // PDF
	[]byte("PK\x03\x04"),    // ZIP
}

// IsBinaryContent reports whether data looks like binary rather than text.
// It checks the first 1024 bytes for known magic signatures, then falls back
// to a ratio test: more than 30% null or high-bit bytes means binary.
func IsBinaryContent(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	chunk := data
	if len(chunk) > 1024 {
		chunk = chunk[:1024]
	}

	for _, sig := range magicSignatures {
		if bytes.HasPrefix(chunk, sig) {
			return true
		}
	}

	suspicious := 0
	for _, b := range chunk {
		if b == 0 || b > 0x7f {
			suspicious++
		}
	}
	return suspicious > len(chunk)*3/10
}
