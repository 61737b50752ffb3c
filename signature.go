package sniffkit

// Signature pairs a magic byte pattern with the category and subtype it
// identifies. Magic must match the header window exactly at Offset.
type Signature struct {
	Category Category
	Subtype  Subtype
	Offset   int
	Magic    []byte
}

// Container signatures. Headers starting with these are routed through the
// matching resolver before the flat registry is consulted, because the
// outer signature alone is ambiguous across several subtypes.
var (
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// signatures is the flat detection registry. It is an ordered slice, not a
// map: when two patterns could match the same header the earlier record
// wins, so priority is a stated property of this table rather than an
// artifact of iteration order.
//
// The OLE signature appears under word, excel and powerpoint with
// identical bytes. Those records are normally shadowed by the container
// resolvers; when the OLE resolver finds no stream marker the scan reaches
// word/doc first.
var signatures = []Signature{
	// Images
	{CategoryImage, SubtypeJPEG, 0, []byte{0xFF, 0xD8, 0xFF}},
	{CategoryImage, SubtypePNG, 0, []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}},
	{CategoryImage, SubtypeBMP, 0, []byte("BM")},
	{CategoryImage, SubtypeGIF, 0, []byte("GIF87a")},
	{CategoryImage, SubtypeGIF, 0, []byte("GIF89a")},
	{CategoryImage, SubtypeTIFF, 0, []byte{0x49, 0x49, 0x2A, 0x00}}, // little endian
	{CategoryImage, SubtypeTIFF, 0, []byte{0x4D, 0x4D, 0x00, 0x2A}}, // big endian
	{CategoryImage, SubtypeICO, 0, []byte{0x00, 0x00, 0x01, 0x00}},
	{CategoryImage, SubtypeCUR, 0, []byte{0x00, 0x00, 0x02, 0x00}},
	{CategoryImage, SubtypeWebP, 8, []byte("WEBP")}, // after RIFF header
	{CategoryImage, SubtypeHEIC, 4, []byte("ftypheic")},
	{CategoryImage, SubtypeHEIC, 4, []byte("ftypmif1")},

	// Word processing (OLE Compound File)
	{CategoryWord, SubtypeDOC, 0, oleMagic},

	// PDF
	{CategoryPDF, SubtypePDF, 0, []byte("%PDF-")},

	// Spreadsheets (OLE Compound File)
	{CategoryExcel, SubtypeXLS, 0, oleMagic},

	// Presentations (OLE Compound File)
	{CategoryPowerPoint, SubtypePPT, 0, oleMagic},

	// Archives and compressed containers
	{CategoryMixed, SubtypeZIP, 0, zipMagic},
	{CategoryMixed, SubtypeZIP, 0, []byte{0x50, 0x4B, 0x05, 0x06}}, // empty archive
	{CategoryMixed, SubtypeZIP, 0, []byte{0x50, 0x4B, 0x07, 0x08}}, // spanned archive
	{CategoryMixed, SubtypeRAR, 0, []byte("Rar!\x1a\x07\x00")},
	{CategoryMixed, SubtypeRAR, 0, []byte("Rar!\x1a\x07\x01\x00")}, // RAR5
	{CategoryMixed, SubtypeGzip, 0, []byte{0x1F, 0x8B, 0x08}},
	{CategoryMixed, SubtypeBzip2, 0, []byte("BZh")},
	{CategoryMixed, SubtypeXZ, 0, []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}},
	{CategoryMixed, Subtype7z, 0, []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}},
	{CategoryMixed, SubtypeTar, 0, []byte("ustar")},
	{CategoryMixed, SubtypeTar, 257, []byte("ustar")}, // POSIX tar
	{CategoryMixed, SubtypeZstd, 0, []byte{0x28, 0xB5, 0x2F, 0xFD}},
}

// DefaultMIME is returned for unknown files and for subtypes without an
// explicit MIME mapping.
const DefaultMIME = "application/octet-stream"

var mimeTypes = map[Subtype]string{
	SubtypeJPEG:  "image/jpeg",
	SubtypePNG:   "image/png",
	SubtypeBMP:   "image/bmp",
	SubtypeGIF:   "image/gif",
	SubtypeTIFF:  "image/tiff",
	SubtypeICO:   "image/x-icon",
	SubtypeCUR:   "image/x-icon",
	SubtypeWebP:  "image/webp",
	SubtypeHEIC:  "image/heic",
	SubtypeDOCX:  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	SubtypeDOC:   "application/msword",
	SubtypeODT:   "application/vnd.oasis.opendocument.text",
	SubtypePDF:   "application/pdf",
	SubtypeXLSX:  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	SubtypeXLS:   "application/vnd.ms-excel",
	SubtypePPTX:  "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	SubtypePPT:   "application/vnd.ms-powerpoint",
	SubtypeODS:   "application/vnd.oasis.opendocument.spreadsheet",
	SubtypeODP:   "application/vnd.oasis.opendocument.presentation",
	SubtypeZIP:   "application/zip",
	SubtypeRAR:   "application/x-rar-compressed",
	SubtypeGzip:  "application/gzip",
	SubtypeBzip2: "application/x-bzip2",
	SubtypeXZ:    "application/x-xz",
	Subtype7z:    "application/x-7z-compressed",
	SubtypeTar:   "application/x-tar",
	SubtypeZstd:  "application/zstd",
}

// MIMEType returns the MIME type for a subtype. Subtypes without a mapping
// entry (including the empty subtype of unknown results) resolve to
// DefaultMIME.
func MIMEType(sub Subtype) string {
	if mime, ok := mimeTypes[sub]; ok {
		return mime
	}
	return DefaultMIME
}

// Signatures returns a copy of the flat detection registry in priority
// order. The registry itself is immutable after process start.
func Signatures() []Signature {
	out := make([]Signature, len(signatures))
	copy(out, signatures)
	return out
}
