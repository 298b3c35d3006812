package compress

import (
	"fmt"

	"github.com/arloliu/airx/format"
)

// Codec compresses and decompresses a whole export buffer.
//
// Compress and Decompress both return newly allocated slices owned by the
// caller and never modify their input (the no-op codec, which passes the
// input through, is the one exception). Implementations are safe for
// concurrent use.
type Codec interface {
	// Compress frames and compresses data.
	Compress(data []byte) ([]byte, error)

	// Decompress restores the original bytes from framed compressed
	// data, failing if the frame is corrupted or belongs to another
	// algorithm.
	Decompress(data []byte) ([]byte, error)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec returns the built-in Codec for the given compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
