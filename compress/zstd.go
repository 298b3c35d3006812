package compress

// ZstdCodec handles Zstandard-framed export archives. Zstd is the usual
// choice for exports kept in cold storage: best ratio of the supported
// formats at an acceptable decompression cost.
//
// The implementation is selected at build time: valyala/gozstd (cgo) or
// klauspost/compress/zstd (pure Go), both producing standard zstd frames.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstandard codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
