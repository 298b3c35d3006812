// Package airx extracts the byte-range structure of LogRhythm AI Engine
// rule exports (.airx files).
//
// An export is a flat binary document whose internal layout is undocumented
// beyond two delimiter conventions: the 4-byte sequence FF FF FF FF marks
// section boundaries, and the 3-byte sequence 00 00 00 marks subsection
// boundaries within a section. airx locates those delimiters, pairs
// consecutive occurrences into half-open byte ranges, and reports the
// resulting nested structure as JSON. It never interprets the bytes
// between delimiters.
//
// # Basic Usage
//
// Dissecting an export and printing one JSON document per section:
//
//	import "github.com/arloliu/airx"
//
//	sections, err := airx.Extract("AIEngineRule_1000000003_20250409.airx")
//	if err != nil {
//	    return err
//	}
//	for _, sec := range sections {
//	    fmt.Println(sec.Name, sec.Size)
//	}
//
// or, to reproduce the reference tool's output exactly:
//
//	err := airx.Dump(os.Stdout, "AIEngineRule_1000000003_20250409.airx")
//
// Exports compressed for transport (Zstandard, LZ4 frame, or S2 stream)
// are detected by their frame magic and unpacked transparently.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the dissect
// package. For fine-grained control (custom delimiters, rebasing mode,
// logging), use the dissect package directly.
package airx

import (
	"io"

	"github.com/arloliu/airx/compress"
	"github.com/arloliu/airx/dissect"
	"github.com/arloliu/airx/format"
	"github.com/arloliu/airx/source"
)

// Extract dissects the export file at path and returns its sections in
// file order. A compressed export is unpacked in memory first; a raw one
// is dissected straight off the file.
func Extract(path string, opts ...dissect.Option) ([]dissect.Section, error) {
	extractor, err := dissect.NewExtractor(opts...)
	if err != nil {
		return nil, err
	}

	data, err := source.ReadAll(path)
	if err != nil {
		return nil, err
	}

	compression := format.DetectCompression(data)
	if compression == format.CompressionNone {
		return extractor.Extract(path)
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, err
	}

	return extractor.ExtractBytes(raw), nil
}

// Dump dissects the export file at path and writes one pretty-printed JSON
// document per section to w.
func Dump(w io.Writer, path string, opts ...dissect.Option) error {
	sections, err := Extract(path, opts...)
	if err != nil {
		return err
	}

	return dissect.WriteJSON(w, sections)
}
