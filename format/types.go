package format

import "bytes"

// CompressionType identifies the archive compression applied to a rule
// export before transport. Exports are usually shipped raw; compressed
// ones are recognized by their frame magic (see DetectCompression).
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed export.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents a Zstandard-framed export.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2/snappy-framed export.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4-framed export.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Delimiter byte sequences of the rule-export wire format. The format is
// not produced by this module; these are the boundaries it assumes.
var (
	// SectionDelimiter marks a section boundary in the export file.
	SectionDelimiter = []byte{0xFF, 0xFF, 0xFF, 0xFF}

	// SubSectionDelimiter marks a subsection boundary within one
	// section's byte range.
	SubSectionDelimiter = []byte{0x00, 0x00, 0x00}
)

// Frame magic prefixes for the supported archive formats.
var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
	s2Magic   = []byte{0xFF, 0x06, 0x00, 0x00, 0x73, 0x4E, 0x61, 0x50, 0x70, 0x59}
)

// DetectCompression sniffs the archive format of data by its frame magic.
//
// A raw export cannot collide with any of the magics: it opens with the
// section delimiter FF FF FF FF, while the S2 stream header starts with
// FF 06. Data too short to carry a magic is reported as uncompressed.
//
// Returns:
//   - CompressionType: detected archive type, CompressionNone for raw data
func DetectCompression(data []byte) CompressionType {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(data, lz4Magic):
		return CompressionLZ4
	case bytes.HasPrefix(data, s2Magic):
		return CompressionS2
	default:
		return CompressionNone
	}
}
