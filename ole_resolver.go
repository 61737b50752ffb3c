package sniffkit

import "bytes"

// oleProbeWindow is how far into the file the resolver looks for stream
// names. The directory sector region of small OLE Compound Files sits in
// the first 512 bytes.
const oleProbeWindow = 512

// oleStreamMarker maps a directory stream name to the legacy Office
// format it identifies.
type oleStreamMarker struct {
	name     []byte
	category Category
	subtype  Subtype
}

// oleStreamMarkers is searched in order; the first stream name present
// wins. Book follows Workbook so older Excel files still resolve.
var oleStreamMarkers = []oleStreamMarker{
	{[]byte("WordDocument"), CategoryWord, SubtypeDOC},
	{[]byte("Workbook"), CategoryExcel, SubtypeXLS},
	{[]byte("Book"), CategoryExcel, SubtypeXLS},
	{[]byte("PowerPoint"), CategoryPowerPoint, SubtypePPT},
}

// oleResolver disambiguates legacy OLE Compound File formats (DOC, XLS,
// PPT) by scanning the start of the file for format-identifying stream
// names. A header too short to probe, or one carrying none of the known
// names, is a plain no-match: the fallback registry scan then classifies
// the file under the first record carrying the OLE signature.
type oleResolver struct{}

func (oleResolver) Resolve(header []byte) (Category, Subtype, bool) {
	probe := header
	if len(probe) > oleProbeWindow {
		probe = probe[:oleProbeWindow]
	}

	for _, m := range oleStreamMarkers {
		if bytes.Contains(probe, m.name) {
			return m.category, m.subtype, true
		}
	}

	return "", "", false
}
