package sniffkit

import (
	"archive/zip"
	"bytes"
	"image"
	"image/png"
	"testing"
)

// buildZip assembles an in-memory ZIP archive from entry name to content.
func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	return buf.Bytes()
}

// officeZip builds a ZIP package whose [Content_Types].xml contains the
// given marker strings.
func officeZip(t *testing.T, markers ...string) []byte {
	t.Helper()

	manifest := `<?xml version="1.0"?><Types>`
	for _, m := range markers {
		manifest += `<Override ContentType="application/vnd.` + m + `.main+xml"/>`
	}
	manifest += `</Types>`

	return buildZip(t, map[string]string{
		"[Content_Types].xml": manifest,
		"_rels/.rels":         `<?xml version="1.0"?><Relationships/>`,
	})
}

// oleBlob builds a blob starting with the OLE Compound File signature,
// zero-padded to size, with marker written at offset.
func oleBlob(marker string, offset, size int) []byte {
	blob := make([]byte, size)
	copy(blob, oleMagic)
	copy(blob[offset:], marker)
	return blob
}

// pngBytes encodes a small valid PNG image.
func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 10, 4))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
