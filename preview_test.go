package sniffkit

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blob")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func detectAndPreview(t *testing.T, data []byte, maxEntries int) *Preview {
	t.Helper()
	path := writeTemp(t, data)
	res, err := Detect(path)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	return BuildPreview(Default(), res, path, maxEntries)
}

func TestPreviewImage(t *testing.T) {
	p := detectAndPreview(t, pngBytes(t), 20)

	if p.Kind != PreviewImage {
		t.Fatalf("Kind = %s, want image", p.Kind)
	}
	if p.Warning != "" {
		t.Fatalf("unexpected warning: %s", p.Warning)
	}
	if p.Width != 10 || p.Height != 4 || p.Format != "png" {
		t.Errorf("got %dx%d %s, want 10x4 png", p.Width, p.Height, p.Format)
	}
}

func TestPreviewCorruptImageWarns(t *testing.T) {
	// Valid JPEG magic, garbage body: detection succeeds, preview decoding
	// fails softly.
	data := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, []byte("garbage")...)
	p := detectAndPreview(t, data, 20)

	if p.Kind != PreviewImage {
		t.Fatalf("Kind = %s, want image", p.Kind)
	}
	if p.Warning == "" {
		t.Error("expected a decode warning")
	}
}

func TestPreviewDocumentNotices(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"pdf", []byte("%PDF-1.7\n"), "PDF preview requires an external renderer"},
		{"word", oleBlob("WordDocument", 64, 1024), "this appears to be a word document"},
		{"excel", oleBlob("Workbook", 64, 1024), "this appears to be a excel document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := detectAndPreview(t, tt.data, 20)
			if p.Kind != PreviewNotice {
				t.Fatalf("Kind = %s, want notice", p.Kind)
			}
			if p.Notice != tt.want {
				t.Errorf("Notice = %q, want %q", p.Notice, tt.want)
			}
		})
	}
}

func TestPreviewUnknown(t *testing.T) {
	p := detectAndPreview(t, []byte("just text"), 20)
	if p.Kind != PreviewNone {
		t.Errorf("Kind = %s, want none", p.Kind)
	}
}

func TestPreviewZipEntries(t *testing.T) {
	data := buildZip(t, map[string]string{
		"a.txt": "a",
		"b.txt": "b",
		"c.txt": "c",
	})

	p := detectAndPreview(t, data, 2)
	if p.Kind != PreviewArchive {
		t.Fatalf("Kind = %s, want archive", p.Kind)
	}
	if len(p.Entries) != 2 {
		t.Errorf("listed %d entries, want 2", len(p.Entries))
	}
	if !p.Truncated {
		t.Error("expected truncation marker")
	}
}

func TestPreviewGzipInnerPayload(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(pngBytes(t)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	p := detectAndPreview(t, buf.Bytes(), 20)
	if p.Kind != PreviewArchive {
		t.Fatalf("Kind = %s, want archive", p.Kind)
	}
	if p.Inner == nil {
		t.Fatal("expected inner payload detection")
	}
	if p.Inner.Category != CategoryImage || p.Inner.Subtype != SubtypePNG {
		t.Errorf("inner = %s, want image/png", p.Inner)
	}
}

func TestPreviewZstdInnerPayload(t *testing.T) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zw.Write([]byte("%PDF-1.4\nsome pdf body")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	p := detectAndPreview(t, buf.Bytes(), 20)
	if p.Inner == nil {
		t.Fatal("expected inner payload detection")
	}
	if p.Inner.Category != CategoryPDF {
		t.Errorf("inner = %s, want pdf", p.Inner)
	}
}

func TestPreviewTruncatedGzipWarns(t *testing.T) {
	// Valid gzip magic, truncated stream.
	p := detectAndPreview(t, []byte{0x1F, 0x8B, 0x08, 0x00}, 20)
	if p.Kind != PreviewArchive {
		t.Fatalf("Kind = %s, want archive", p.Kind)
	}
	if p.Warning == "" && p.Inner == nil {
		t.Error("expected either a warning or an inner result")
	}
}
