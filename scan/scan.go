// Package scan locates delimiter patterns in a byte buffer and pairs the
// occurrence positions into half-open block ranges.
//
// This is the heart of the dissector: a block spans from the start of one
// delimiter occurrence to the start of the next, so the leading delimiter
// bytes count toward the block's size. The last occurrence in a buffer
// starts no block; a trailing delimiter marks end-of-data.
package scan

import (
	"bytes"
	"fmt"
	"strconv"
)

// Offset is a byte position within a buffer or file. Offsets are plain
// integers everywhere inside the module; they serialize as lowercase
// 0x-prefixed hex strings at the JSON boundary.
type Offset int64

// String formats the offset as lowercase hex, e.g. "0x1a0".
func (o Offset) String() string {
	return fmt.Sprintf("%#x", int64(o))
}

// MarshalJSON encodes the offset as a hex string.
func (o Offset) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(o.String())), nil
}

// Range is a half-open byte interval [Start, End) between two consecutive
// delimiter occurrences. Start is the position where the leading delimiter
// begins; End is where the next delimiter begins.
type Range struct {
	Start Offset
	End   Offset
}

// Len returns the number of bytes the range spans, leading delimiter
// included.
func (r Range) Len() int64 {
	return int64(r.End - r.Start)
}

// IsEmpty reports whether the range holds no payload beyond its leading
// delimiter of patternLen bytes.
func (r Range) IsEmpty(patternLen int) bool {
	return r.Len() <= int64(patternLen)
}

// FindOffsets returns the start position of every non-overlapping
// occurrence of pattern in buf, in increasing order. Each search resumes
// immediately after the end of the previous match, so matches can neither
// overlap nor nest. A nil result means no occurrence; an empty pattern
// matches nothing.
func FindOffsets(buf, pattern []byte) []Offset {
	if len(pattern) == 0 {
		return nil
	}

	var offsets []Offset
	pos := 0
	for {
		i := bytes.Index(buf[pos:], pattern)
		if i < 0 {
			break
		}
		offsets = append(offsets, Offset(pos+i))
		pos += i + len(pattern)
	}

	return offsets
}

// FindBlocks scans buf for pattern and pairs consecutive occurrence
// positions into ranges: occurrence i starts the block that occurrence i+1
// ends. The final occurrence has no successor and is dropped.
//
// Zero or one occurrence yields no blocks, as does an empty buffer. A
// pattern that never occurs is normal input, not an error. The result is
// strictly increasing and non-overlapping, and a pure function of the
// inputs.
func FindBlocks(buf, pattern []byte) []Range {
	offsets := FindOffsets(buf, pattern)
	if len(offsets) < 2 {
		return nil
	}

	blocks := make([]Range, 0, len(offsets)-1)
	for i := 0; i+1 < len(offsets); i++ {
		blocks = append(blocks, Range{Start: offsets[i], End: offsets[i+1]})
	}

	return blocks
}
