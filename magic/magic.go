package magic

import "bytes"

// ReadLimit is the number of leading bytes inspected when sniffing a
// file header.
const ReadLimit uint32 = 3072

type (
	Detector func(raw []byte, limit uint32) bool
)

var (
	// Gz matches the gzip file format
	Gz = prefix([]byte{0x1f, 0x8b})
	// Bz2 matches the bzip2 file format
	Bz2 = prefix([]byte("BZh"))
	// Zip matches the zip file format, including empty and spanned archives
	Zip = prefix(
		[]byte{0x50, 0x4b, 0x03, 0x04},
		[]byte{0x50, 0x4b, 0x05, 0x06},
		[]byte{0x50, 0x4b, 0x07, 0x08},
	)
	// SevenZ matches the 7z file format
	SevenZ = prefix([]byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c})
	// Rar matches the rar format, v1.5 and v5 signatures
	Rar = prefix([]byte("Rar!\x1a\x07\x00"), []byte("Rar!\x1a\x07\x01\x00"))
	// Xz matches the xz file format
	Xz = prefix([]byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00})
	// Tar matches the ustar magic at offset 257
	Tar = offset(257, []byte("ustar"))
)

func prefix(sigs ...[]byte) Detector {
	return func(raw []byte, limit uint32) bool {
		for _, sig := range sigs {
			if bytes.HasPrefix(raw, sig) {
				return true
			}
		}
		return false
	}
}

func offset(off int, sig []byte) Detector {
	return func(raw []byte, limit uint32) bool {
		if len(raw) < off+len(sig) {
			return false
		}
		return bytes.Equal(raw[off:off+len(sig)], sig)
	}
}

// Binary reports whether a header looks like binary rather than text. A
// NUL byte, or more than 30% of the window outside the printable plus
// whitespace range, marks the content binary. An empty header is text.
func Binary(raw []byte, limit uint32) bool {
	if uint32(len(raw)) > limit {
		raw = raw[:limit]
	}
	if len(raw) == 0 {
		return false
	}
	if bytes.IndexByte(raw, 0x00) >= 0 {
		return true
	}
	n := 0
	for _, b := range raw {
		if !textByte(b) {
			n++
		}
	}
	return n*100/len(raw) > 30
}

// textByte allows printable ASCII, common whitespace, ESC and the high
// half used by UTF-8 continuation bytes.
func textByte(b byte) bool {
	switch {
	case b >= 0x20 && b < 0x7f:
		return true
	case b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v' || b == '\b' || b == 0x1b:
		return true
	case b >= 0x80:
		return true
	}
	return false
}
