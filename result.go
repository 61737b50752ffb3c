package sniffkit

import "fmt"

// Result describes what the detector concluded about a file's content.
// A Result is created fresh per call and has no shared state.
type Result struct {
	// Category is always one of the values in Categories.
	Category Category `json:"category"`

	// Subtype is the concrete format, empty when the category could not
	// be narrowed beyond unknown.
	Subtype Subtype `json:"subtype,omitempty"`

	// MIME is always populated, falling back to DefaultMIME.
	MIME string `json:"mime"`
}

// IsImage reports whether the file classified as an image.
func (r *Result) IsImage() bool {
	return r.Category == CategoryImage
}

// IsDocument reports whether the file classified as a document format
// (word processing, spreadsheet, presentation or PDF).
func (r *Result) IsDocument() bool {
	switch r.Category {
	case CategoryWord, CategoryExcel, CategoryPowerPoint, CategoryPDF:
		return true
	}
	return false
}

// IsArchive reports whether the file classified as an archive or
// compressed container.
func (r *Result) IsArchive() bool {
	return r.Category == CategoryMixed
}

// IsUnknown reports whether no signature matched.
func (r *Result) IsUnknown() bool {
	return r.Category == CategoryUnknown
}

// String renders the result as "category/subtype (mime)", omitting the
// subtype when absent.
func (r *Result) String() string {
	if r.Subtype == "" {
		return fmt.Sprintf("%s (%s)", r.Category, r.MIME)
	}
	return fmt.Sprintf("%s/%s (%s)", r.Category, r.Subtype, r.MIME)
}
