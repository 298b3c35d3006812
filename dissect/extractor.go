// Package dissect builds the nested section/subsection description of a
// rule export and serializes it as JSON documents.
//
// The dissector does not interpret the bytes between delimiters; it only
// records their position and size.
package dissect

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"github.com/arloliu/airx/errs"
	"github.com/arloliu/airx/format"
	"github.com/arloliu/airx/internal/options"
	"github.com/arloliu/airx/scan"
	"github.com/arloliu/airx/source"
)

// Extractor turns an export into an ordered list of Section records. The
// zero configuration (via NewExtractor with no options) scans with the
// standard delimiters and reproduces the output of the original extraction
// tooling byte for byte.
//
// Rebasing: a subsection's Offset1/Offset2 translate its local boundaries
// into whole-file coordinates. Legacy mode (the default) reproduces the
// original tool's arithmetic exactly, including its quirk of deriving both
// offsets of every subsection after the first from the subsection's local
// end:
//
//	offset_2 = local end + section end - len(inner pattern)     (all j)
//	offset_1 = offset_2                                          (j > 0)
//	offset_1 = local start + section end - len(outer pattern)    (j == 0)
//
// WithLegacyRebase(false) selects the corrected interpretation instead:
// section start + local offset for both boundaries.
type Extractor struct {
	outer  []byte
	inner  []byte
	legacy bool
	logger zerolog.Logger
}

// Option represents a functional option for configuring an Extractor.
type Option = options.Option[*Extractor]

// WithOuterPattern overrides the section delimiter. The pattern must not
// be empty.
func WithOuterPattern(pattern []byte) Option {
	return options.New(func(e *Extractor) error {
		if len(pattern) == 0 {
			return fmt.Errorf("%w: outer pattern", errs.ErrEmptyPattern)
		}
		e.outer = pattern

		return nil
	})
}

// WithInnerPattern overrides the subsection delimiter. The pattern must
// not be empty.
func WithInnerPattern(pattern []byte) Option {
	return options.New(func(e *Extractor) error {
		if len(pattern) == 0 {
			return fmt.Errorf("%w: inner pattern", errs.ErrEmptyPattern)
		}
		e.inner = pattern

		return nil
	})
}

// WithLegacyRebase selects between the original tool's subsection rebasing
// arithmetic (true, the default) and the corrected interpretation (false).
func WithLegacyRebase(enabled bool) Option {
	return options.NoError(func(e *Extractor) {
		e.legacy = enabled
	})
}

// WithLogger sets the logger for per-section debug output. The default
// logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return options.NoError(func(e *Extractor) {
		e.logger = logger
	})
}

// NewExtractor creates an Extractor with the standard delimiters and
// legacy rebasing, then applies opts.
func NewExtractor(opts ...Option) (*Extractor, error) {
	e := &Extractor{
		outer:  format.SectionDelimiter,
		inner:  format.SubSectionDelimiter,
		legacy: true,
		logger: zerolog.Nop(),
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Extract reads the export file at path and returns its Section records in
// file order.
//
// The file is read once whole for the outer scan, then once more per
// section restricted to that section's byte range for the inner scan. Any
// read failure aborts the extraction; no partial section list is returned.
func (e *Extractor) Extract(path string) ([]Section, error) {
	data, err := source.ReadAll(path)
	if err != nil {
		return nil, err
	}

	ranges := scan.FindBlocks(data, e.outer)
	sections := make([]Section, 0, len(ranges))
	for i, r := range ranges {
		buf, err := source.ReadRange(path, int64(r.Start), int64(r.End))
		if err != nil {
			return nil, fmt.Errorf("re-reading section %d: %w", i, err)
		}
		sections = append(sections, e.buildSection(i, r, buf))
	}

	return sections, nil
}

// ExtractBytes dissects an in-memory export. It produces the same records
// as Extract on the file holding data; section sub-buffers are sliced out
// of data instead of re-read. Each section's scan depends only on its own
// byte range.
func (e *Extractor) ExtractBytes(data []byte) []Section {
	ranges := scan.FindBlocks(data, e.outer)
	sections := make([]Section, 0, len(ranges))
	for i, r := range ranges {
		sections = append(sections, e.buildSection(i, r, data[r.Start:r.End]))
	}

	return sections
}

// buildSection assembles the record for section i spanning r, with buf
// holding exactly the section's bytes.
func (e *Extractor) buildSection(i int, r scan.Range, buf []byte) Section {
	sec := Section{
		IsEmpty:      r.IsEmpty(len(e.outer)),
		Name:         fmt.Sprintf("section_%d", i),
		SectionEnd:   r.End,
		SectionStart: r.Start,
		Size:         r.Len(),
		SubSections:  []SubSection{},
	}

	e.logger.Debug().
		Str("section", sec.Name).
		Int64("size", sec.Size).
		Uint64("digest", xxhash.Sum64(buf)).
		Msg("scanned section")

	for j, sr := range scan.FindBlocks(buf, e.inner) {
		offset1, offset2 := e.rebase(j, sr, r)
		sec.SubSections = append(sec.SubSections, SubSection{
			End:     sr.End,
			IsEmpty: sr.IsEmpty(len(e.inner)),
			Name:    fmt.Sprintf("sub_section_%d", j),
			Offset1: offset1,
			Offset2: offset2,
			Size:    sr.Len(),
			Start:   sr.Start,
		})
	}

	return sec
}

// rebase translates the local boundaries of subsection j (range sub,
// inside the section spanning sec) into whole-file offsets.
func (e *Extractor) rebase(j int, sub, sec scan.Range) (scan.Offset, scan.Offset) {
	if !e.legacy {
		return sec.Start + sub.Start, sec.Start + sub.End
	}

	offset2 := sub.End + sec.End - scan.Offset(len(e.inner))
	offset1 := offset2
	if j == 0 {
		offset1 = sub.Start + sec.End - scan.Offset(len(e.outer))
	}

	return offset1, offset2
}

// WriteJSON serializes each section as an independent pretty-printed JSON
// document (4-space indent, keys in lexicographic order) and writes them
// to w in section order, newline-terminated. Zero sections write nothing.
func WriteJSON(w io.Writer, sections []Section) error {
	for i := range sections {
		doc, err := json.MarshalIndent(&sections[i], "", "    ")
		if err != nil {
			return fmt.Errorf("serializing %s: %w", sections[i].Name, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", doc); err != nil {
			return fmt.Errorf("writing %s: %w", sections[i].Name, err)
		}
	}

	return nil
}
