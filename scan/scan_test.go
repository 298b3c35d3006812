package scan

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindOffsets(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0x01, 0x02, 0xFF, 0xFF, 0x03, 0xFF, 0xFF}
	pattern := []byte{0xFF, 0xFF}

	offsets := FindOffsets(buf, pattern)
	require.Equal(t, []Offset{0, 4, 7}, offsets)

	// Every reported offset is a true match position.
	for _, off := range offsets {
		require.True(t, bytes.HasPrefix(buf[off:], pattern))
	}
}

func TestFindOffsetsNoOverlap(t *testing.T) {
	// Searches resume after the previous match end, so "aaaa" holds two
	// matches of "aa", not three.
	offsets := FindOffsets([]byte("aaaa"), []byte("aa"))
	require.Equal(t, []Offset{0, 2}, offsets)

	// Five bytes leave a dangling "a" after the second match.
	offsets = FindOffsets([]byte("aaaaa"), []byte("aa"))
	require.Equal(t, []Offset{0, 2}, offsets)
}

func TestFindOffsetsDegenerate(t *testing.T) {
	require.Nil(t, FindOffsets(nil, []byte{0xFF}))
	require.Nil(t, FindOffsets([]byte{0x01, 0x02}, []byte{0xFF}))
	require.Nil(t, FindOffsets([]byte{0x01}, []byte{0x01, 0x02, 0x03}))
	require.Nil(t, FindOffsets([]byte{0x01, 0x02}, nil))
}

func TestFindBlocks(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0x01, 0x02, 0xFF, 0xFF, 0x03, 0xFF, 0xFF, 0x04}
	pattern := []byte{0xFF, 0xFF}

	blocks := FindBlocks(buf, pattern)
	require.Equal(t, []Range{{Start: 0, End: 4}, {Start: 4, End: 7}}, blocks)

	// Strictly increasing and non-overlapping.
	for i := 1; i < len(blocks); i++ {
		require.Equal(t, blocks[i-1].End, blocks[i].Start)
		require.Less(t, blocks[i-1].Start, blocks[i].Start)
	}
}

func TestFindBlocksCount(t *testing.T) {
	// max(0, occurrences-1) blocks, the final occurrence starts none.
	pattern := []byte{0x00, 0x00, 0x00}

	var buf []byte
	for n := 0; n < 5; n++ {
		blocks := FindBlocks(buf, pattern)
		if n < 2 {
			require.Empty(t, blocks)
		} else {
			require.Len(t, blocks, n-1)
		}
		buf = append(buf, pattern...)
		buf = append(buf, 0xAA)
	}
}

func TestFindBlocksIdempotent(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x01, 0xFF, 0xFF, 0xFF, 0xFF, 0x02, 0xFF, 0xFF, 0xFF, 0xFF}
	pattern := []byte{0xFF, 0xFF, 0xFF, 0xFF}

	first := FindBlocks(buf, pattern)
	second := FindBlocks(buf, pattern)
	require.Equal(t, first, second)
	require.Len(t, first, 2)
}

func TestRangeIsEmpty(t *testing.T) {
	// A block spanning exactly its leading delimiter is empty; one byte
	// more is not.
	require.True(t, Range{Start: 0, End: 3}.IsEmpty(3))
	require.True(t, Range{Start: 5, End: 7}.IsEmpty(3))
	require.False(t, Range{Start: 0, End: 4}.IsEmpty(3))
}

func TestOffsetFormatting(t *testing.T) {
	require.Equal(t, "0x0", Offset(0).String())
	require.Equal(t, "0x1a", Offset(26).String())

	data, err := Offset(26).MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"0x1a"`, string(data))
}
