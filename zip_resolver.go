package sniffkit

import (
	"archive/zip"
	"bytes"
	"io"
)

// manifestName is the package manifest entry that declares the document's
// part types in Office Open XML packages.
const manifestName = "[Content_Types].xml"

// manifestReadLimit bounds how much of the manifest is decompressed. A
// well-formed manifest is a few KB; the cap keeps a hostile archive from
// expanding without bound.
const manifestReadLimit = 4 << 20

// contentMarker maps a manifest substring to the format it declares.
type contentMarker struct {
	needle   string
	category Category
	subtype  Subtype
}

// contentMarkers is searched in order; the first marker present in the
// manifest wins.
var contentMarkers = []contentMarker{
	{"wordprocessingml.document", CategoryWord, SubtypeDOCX},
	{"spreadsheetml.sheet", CategoryExcel, SubtypeXLSX},
	{"presentationml.presentation", CategoryPowerPoint, SubtypePPTX},
	{"opendocument.text", CategoryWord, SubtypeODT},
	{"opendocument.spreadsheet", CategoryExcel, SubtypeODS},
	{"opendocument.presentation", CategoryPowerPoint, SubtypeODP},
}

// zipResolver disambiguates ZIP-based Office Open XML and OpenDocument
// packages by locating the package manifest and searching it for format
// markers. Every failure mode -- not a readable archive, no manifest
// entry, unreadable manifest, no marker -- is a plain no-match, never an
// error: the caller's fallback scan still classifies the file as a
// generic ZIP archive.
type zipResolver struct{}

func (zipResolver) Resolve(src io.ReaderAt, size int64) (Category, Subtype, bool) {
	zr, err := zip.NewReader(src, size)
	if err != nil {
		return "", "", false
	}

	for _, f := range zr.File {
		if f.Name != manifestName {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return "", "", false
		}
		manifest, err := io.ReadAll(io.LimitReader(rc, manifestReadLimit))
		rc.Close()
		if err != nil {
			return "", "", false
		}

		for _, m := range contentMarkers {
			if bytes.Contains(manifest, []byte(m.needle)) {
				return m.category, m.subtype, true
			}
		}
		return "", "", false
	}

	return "", "", false
}
