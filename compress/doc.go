// Package compress provides the archive codecs used to unpack compressed
// rule exports before dissection.
//
// Every codec round-trips a whole export in memory and produces framed
// output, so a compressed export carries the frame magic that
// format.DetectCompression sniffs. Zstandard uses valyala/gozstd on cgo
// builds and klauspost/compress on pure-Go builds.
package compress
