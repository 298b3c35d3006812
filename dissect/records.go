package dissect

import "github.com/arloliu/airx/scan"

// Section describes one top-level block of the export, delimited by the
// section pattern, together with the subsections found inside it.
//
// Struct fields are declared in lexicographic order of their JSON keys:
// the emitted documents must match the original extraction tooling, which
// serializes with sorted keys.
type Section struct {
	// IsEmpty is true when the section holds nothing beyond its leading
	// delimiter bytes.
	IsEmpty bool `json:"is_empty"`
	// Name is "section_<i>" with i the 0-based section index.
	Name string `json:"name"`
	// SectionEnd is the file-absolute offset where the next section
	// delimiter begins.
	SectionEnd scan.Offset `json:"section_end"`
	// SectionStart is the file-absolute offset where this section's
	// delimiter begins.
	SectionStart scan.Offset `json:"section_start"`
	// Size is SectionEnd - SectionStart in bytes.
	Size int64 `json:"size"`
	// SubSections lists the section's subsections in file order. Always
	// non-nil so a section without subsections serializes as [].
	SubSections []SubSection `json:"sub_sections"`
}

// SubSection describes one inner block, delimited by the subsection
// pattern within a single section's byte range. Start and End are local to
// the section's sub-buffer; Offset1 and Offset2 are rebased into the
// coordinate space of the whole file.
type SubSection struct {
	// End is the section-local offset where the next subsection
	// delimiter begins.
	End scan.Offset `json:"end"`
	// IsEmpty is true when the subsection holds nothing beyond its
	// leading delimiter bytes.
	IsEmpty bool `json:"is_empty"`
	// Name is "sub_section_<j>" with j the 0-based subsection index.
	Name string `json:"name"`
	// Offset1 and Offset2 are the rebased boundary offsets. See the
	// rebasing notes on Extractor for their exact derivation.
	Offset1 scan.Offset `json:"offset_1"`
	Offset2 scan.Offset `json:"offset_2"`
	// Size is End - Start in bytes.
	Size int64 `json:"size"`
	// Start is the section-local offset where this subsection's
	// delimiter begins.
	Start scan.Offset `json:"start"`
}
