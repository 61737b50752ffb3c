package sniffkit

import (
	"bytes"
	"testing"
)

func resolveZip(t *testing.T, data []byte) (Category, Subtype, bool) {
	t.Helper()
	var r zipResolver
	return r.Resolve(bytes.NewReader(data), int64(len(data)))
}

func TestZipResolverNoMatch(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"not an archive", []byte("definitely not a zip")},
		{"empty input", nil},
		{"truncated archive", []byte{0x50, 0x4B, 0x03, 0x04, 0x00}},
		{"archive without manifest", buildZip(t, map[string]string{"doc.xml": "wordprocessingml.document"})},
		{"manifest without markers", buildZip(t, map[string]string{"[Content_Types].xml": "<Types/>"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if cat, sub, ok := resolveZip(t, tt.data); ok {
				t.Errorf("expected no match, got %s/%s", cat, sub)
			}
		})
	}
}

func TestZipResolverMatchesManifestMarker(t *testing.T) {
	data := officeZip(t, "openxmlformats-officedocument.spreadsheetml.sheet")

	cat, sub, ok := resolveZip(t, data)
	if !ok {
		t.Fatal("expected a match")
	}
	if cat != CategoryExcel || sub != SubtypeXLSX {
		t.Errorf("got %s/%s, want excel/xlsx", cat, sub)
	}
}

func TestZipResolverIgnoresMarkersOutsideManifest(t *testing.T) {
	// Markers must be found in the manifest entry, not anywhere in the
	// archive.
	data := buildZip(t, map[string]string{
		"[Content_Types].xml": "<Types/>",
		"notes.txt":           "contains wordprocessingml.document in prose",
	})

	if cat, sub, ok := resolveZip(t, data); ok {
		t.Errorf("expected no match, got %s/%s", cat, sub)
	}
}

func TestZipResolverExactManifestName(t *testing.T) {
	data := buildZip(t, map[string]string{
		"sub/[Content_Types].xml": "wordprocessingml.document",
	})

	if cat, sub, ok := resolveZip(t, data); ok {
		t.Errorf("nested manifest must not count, got %s/%s", cat, sub)
	}
}
