package sniffkit

// Category is the broad classification a detection resolves to.
// The set is closed: a Result never carries a value outside it.
type Category string

const (
	CategoryImage      Category = "image"
	CategoryWord       Category = "word"
	CategoryPDF        Category = "pdf"
	CategoryExcel      Category = "excel"
	CategoryPowerPoint Category = "powerpoint"
	CategoryMixed      Category = "mixed"
	CategoryUnknown    Category = "unknown"
)

// Categories lists every category a Result can carry.
var Categories = []Category{
	CategoryImage,
	CategoryWord,
	CategoryPDF,
	CategoryExcel,
	CategoryPowerPoint,
	CategoryMixed,
	CategoryUnknown,
}

// Subtype identifies a concrete file format. Each subtype belongs to
// exactly one category.
type Subtype string

const (
	// Images
	SubtypeJPEG Subtype = "jpeg"
	SubtypePNG  Subtype = "png"
	SubtypeBMP  Subtype = "bmp"
	SubtypeGIF  Subtype = "gif"
	SubtypeTIFF Subtype = "tiff"
	SubtypeICO  Subtype = "ico"
	SubtypeCUR  Subtype = "cur"
	SubtypeWebP Subtype = "webp"
	SubtypeHEIC Subtype = "heic"

	// Word processing
	SubtypeDOC  Subtype = "doc"
	SubtypeDOCX Subtype = "docx"
	SubtypeODT  Subtype = "odt"

	// PDF
	SubtypePDF Subtype = "pdf"

	// Spreadsheets
	SubtypeXLS  Subtype = "xls"
	SubtypeXLSX Subtype = "xlsx"
	SubtypeODS  Subtype = "ods"

	// Presentations
	SubtypePPT  Subtype = "ppt"
	SubtypePPTX Subtype = "pptx"
	SubtypeODP  Subtype = "odp"

	// Archives and compressed containers
	SubtypeZIP   Subtype = "zip"
	SubtypeRAR   Subtype = "rar"
	SubtypeGzip  Subtype = "gzip"
	SubtypeBzip2 Subtype = "bzip2"
	SubtypeXZ    Subtype = "xz"
	Subtype7z    Subtype = "7z"
	SubtypeTar   Subtype = "tar"
	SubtypeZstd  Subtype = "zstd"
)
