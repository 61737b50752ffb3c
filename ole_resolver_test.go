package sniffkit

import "testing"

func TestOLEResolver(t *testing.T) {
	tests := []struct {
		name     string
		header   []byte
		category Category
		subtype  Subtype
		match    bool
	}{
		{"WordDocument", oleBlob("WordDocument", 64, 512), CategoryWord, SubtypeDOC, true},
		{"Workbook", oleBlob("Workbook", 64, 512), CategoryExcel, SubtypeXLS, true},
		{"Book", oleBlob("Book", 64, 512), CategoryExcel, SubtypeXLS, true},
		{"PowerPoint", oleBlob("PowerPoint", 64, 512), CategoryPowerPoint, SubtypePPT, true},
		{"no markers", oleBlob("", 0, 512), "", "", false},
		{"marker beyond probe window", oleBlob("WordDocument", 520, 1024), "", "", false},
		{"short header", oleBlob("", 0, 8), "", "", false},
		{"empty header", nil, "", "", false},
	}

	var r oleResolver
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, sub, ok := r.Resolve(tt.header)
			if ok != tt.match {
				t.Fatalf("match = %v, want %v", ok, tt.match)
			}
			if cat != tt.category || sub != tt.subtype {
				t.Errorf("got %s/%s, want %s/%s", cat, sub, tt.category, tt.subtype)
			}
		})
	}
}

func TestOLEResolverMarkerPriority(t *testing.T) {
	// WordDocument outranks Workbook when both appear in the probe window.
	header := oleBlob("Workbook", 64, 512)
	copy(header[200:], "WordDocument")

	var r oleResolver
	cat, sub, ok := r.Resolve(header)
	if !ok || cat != CategoryWord || sub != SubtypeDOC {
		t.Errorf("got %s/%s (match=%v), want word/doc", cat, sub, ok)
	}
}
