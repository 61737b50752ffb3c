package sniffkit

import (
	"archive/zip"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	// Decoder registrations for image previews. GIF/JPEG/PNG come from
	// the standard library, the rest from golang.org/x/image.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// PreviewKind discriminates what a Preview carries.
type PreviewKind string

const (
	// PreviewImage carries decoded image dimensions (or a decode warning).
	PreviewImage PreviewKind = "image"
	// PreviewArchive carries an archive entry listing or an inner payload hint.
	PreviewArchive PreviewKind = "archive"
	// PreviewNotice carries a category-name notice only.
	PreviewNotice PreviewKind = "notice"
	// PreviewNone means no preview is available for the file type.
	PreviewNone PreviewKind = "none"
)

// Preview carries presentation hints derived from a detection result.
// Building a preview never fails: anything undecodable surfaces as a
// Warning on a best-effort Preview instead of an error, and previews never
// feed back into detection.
type Preview struct {
	Kind    PreviewKind
	Notice  string
	Warning string

	// Image previews
	Width  int
	Height int
	Format string

	// Archive previews
	Entries   []string
	Truncated bool

	// Inner is the re-detected payload of a compressed container.
	Inner *Result
}

// BuildPreview derives presentation hints for a detected file. maxEntries
// caps archive listings; values < 1 fall back to a single entry.
func BuildPreview(d *Detector, res *Result, path string, maxEntries int) *Preview {
	if d == nil {
		d = Default()
	}
	if maxEntries < 1 {
		maxEntries = 1
	}

	switch res.Category {
	case CategoryImage:
		return previewImage(path)
	case CategoryPDF:
		return &Preview{Kind: PreviewNotice, Notice: "PDF preview requires an external renderer"}
	case CategoryWord, CategoryExcel, CategoryPowerPoint:
		return &Preview{
			Kind:   PreviewNotice,
			Notice: fmt.Sprintf("this appears to be a %s document", res.Category),
		}
	case CategoryMixed:
		return previewArchive(d, res, path, maxEntries)
	default:
		return &Preview{Kind: PreviewNone, Notice: "no preview available for this file type"}
	}
}

func previewImage(path string) *Preview {
	f, err := os.Open(path)
	if err != nil {
		return &Preview{Kind: PreviewImage, Warning: "could not decode image preview"}
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return &Preview{Kind: PreviewImage, Warning: "could not decode image preview"}
	}

	return &Preview{
		Kind:   PreviewImage,
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
	}
}

func previewArchive(d *Detector, res *Result, path string, maxEntries int) *Preview {
	switch res.Subtype {
	case SubtypeZIP:
		return previewZipEntries(path, maxEntries)
	case SubtypeGzip:
		return previewCompressed(d, path, openGzip)
	case SubtypeZstd:
		return previewCompressed(d, path, openZstd)
	default:
		return &Preview{
			Kind:   PreviewArchive,
			Notice: fmt.Sprintf("%s archive contents are not listed", res.Subtype),
		}
	}
}

func previewZipEntries(path string, maxEntries int) *Preview {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return &Preview{Kind: PreviewArchive, Warning: "could not list archive contents"}
	}
	defer zr.Close()

	p := &Preview{Kind: PreviewArchive}
	for _, f := range zr.File {
		if len(p.Entries) == maxEntries {
			p.Truncated = true
			break
		}
		p.Entries = append(p.Entries, f.Name)
	}
	return p
}

// previewCompressed decompresses a bounded prefix of a single-stream
// container and re-detects the inner payload, so a gzipped tarball or a
// zstd-compressed PDF can be reported as such.
func previewCompressed(d *Detector, path string, open func(io.Reader) (io.ReadCloser, error)) *Preview {
	f, err := os.Open(path)
	if err != nil {
		return &Preview{Kind: PreviewArchive, Warning: "could not read compressed payload"}
	}
	defer f.Close()

	rc, err := open(f)
	if err != nil {
		return &Preview{Kind: PreviewArchive, Warning: "could not read compressed payload"}
	}
	defer rc.Close()

	buf := make([]byte, HeaderWindow)
	n, err := io.ReadFull(rc, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return &Preview{Kind: PreviewArchive, Warning: "could not read compressed payload"}
	}

	return &Preview{Kind: PreviewArchive, Inner: d.DetectBytes(buf[:n])}
}

func openGzip(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func openZstd(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return dec.IOReadCloser(), nil
}
