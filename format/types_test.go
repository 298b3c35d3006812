package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/airx/compress"
	"github.com/arloliu/airx/format"
)

func TestDetectCompressionRaw(t *testing.T) {
	// A raw export opens with the section delimiter.
	data := append([]byte{}, format.SectionDelimiter...)
	data = append(data, 0x01, 0x02, 0x03)
	require.Equal(t, format.CompressionNone, format.DetectCompression(data))

	require.Equal(t, format.CompressionNone, format.DetectCompression(nil))
	require.Equal(t, format.CompressionNone, format.DetectCompression([]byte{0x28}))
}

func TestDetectCompressionFrames(t *testing.T) {
	payload := append([]byte{}, format.SectionDelimiter...)
	payload = append(payload, []byte("rule export payload")...)

	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := compress.GetCodec(compression)
		require.NoError(t, err)

		framed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Equal(t, compression, format.DetectCompression(framed),
			"frame magic for %s", compression)
	}
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "None", format.CompressionNone.String())
	require.Equal(t, "Zstd", format.CompressionZstd.String())
	require.Equal(t, "S2", format.CompressionS2.String())
	require.Equal(t, "LZ4", format.CompressionLZ4.String())
	require.Equal(t, "Unknown", format.CompressionType(0xFF).String())
}

func TestDelimiters(t *testing.T) {
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, format.SectionDelimiter)
	require.Equal(t, []byte{0x00, 0x00, 0x00}, format.SubSectionDelimiter)
}
