package geometry

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
)

// pngSignature is the fixed 8-byte header every PNG file starts with.
var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// jpegSOI is the JPEG start-of-image marker.
var jpegSOI = []byte{0xFF, 0xD8}

// sniffLimit caps how much of a file SniffFile reads. Frame headers sit
// near the start of the stream; anything past this is not worth reading.
const sniffLimit = 1 << 20

// SniffDimensions extracts the pixel width and height from the leading
// bytes of a PNG or JPEG stream without decoding any pixel data. ok is
// false when no recognizable signature is present or the data is
// truncated before the dimension fields.
func SniffDimensions(b []byte) (width, height int, ok bool) {
	if bytes.HasPrefix(b, pngSignature) {
		return sniffPNG(b)
	}
	if bytes.HasPrefix(b, jpegSOI) {
		return sniffJPEG(b)
	}
	return 0, 0, false
}

// SniffFile reads the head of the file at path and sniffs its
// dimensions.
func SniffFile(path string) (width, height int, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, false
	}
	defer f.Close()

	b, err := io.ReadAll(io.LimitReader(f, sniffLimit))
	if err != nil {
		return 0, 0, false
	}
	return SniffDimensions(b)
}

// sniffPNG reads the IHDR chunk immediately after the signature. Layout:
// signature(8) length(4) type(4) width(4) height(4), all big-endian.
func sniffPNG(b []byte) (int, int, bool) {
	const ihdrEnd = 8 + 4 + 4 + 8
	if len(b) < ihdrEnd {
		return 0, 0, false
	}
	if !bytes.Equal(b[12:16], []byte("IHDR")) {
		return 0, 0, false
	}
	w := binary.BigEndian.Uint32(b[16:20])
	h := binary.BigEndian.Uint32(b[20:24])
	return int(w), int(h), true
}

// sniffJPEG scans marker segments until a start-of-frame marker (second
// byte 0xC0..0xCF) carries the image height and width. Other 0xFF
// markers are skipped by their declared segment length.
func sniffJPEG(b []byte) (int, int, bool) {
	i := 2
	for i+1 < len(b) {
		m0, m1 := b[i], b[i+1]
		switch {
		case m0 == 0xFF && m1 >= 0xC0 && m1 <= 0xCF:
			// Frame header: marker(2) length(2) precision(1) height(2) width(2).
			if i+9 > len(b) {
				return 0, 0, false
			}
			h := binary.BigEndian.Uint16(b[i+5 : i+7])
			w := binary.BigEndian.Uint16(b[i+7 : i+9])
			return int(w), int(h), true
		case m0 == 0xFF:
			if i+4 > len(b) {
				return 0, 0, false
			}
			length := int(binary.BigEndian.Uint16(b[i+2 : i+4]))
			i += 2 + length
		default:
			i += 2
		}
	}
	return 0, 0, false
}
