package sniffkit

import (
	"bytes"
	"io"
	"os"
	"sync"
)

// HeaderWindow is the bounded byte prefix read from a file for signature
// inspection. It caps memory and latency on arbitrarily large inputs and
// covers every flat signature pattern in the registry.
const HeaderWindow = 8192

// Detector classifies files by content. It is stateless and safe for
// concurrent use: the registry and MIME table it holds are immutable
// after construction.
type Detector struct {
	signatures []Signature
	mimes      map[Subtype]string
	zip        zipResolver
	ole        oleResolver
}

// New creates a Detector backed by the built-in signature registry.
func New() *Detector {
	return &Detector{
		signatures: signatures,
		mimes:      mimeTypes,
	}
}

// Global default detector (lazy initialized)
var (
	defaultDetector *Detector
	defaultOnce     sync.Once
)

// Default returns the process-wide detector instance.
func Default() *Detector {
	defaultOnce.Do(func() {
		defaultDetector = New()
	})
	return defaultDetector
}

// Detect classifies the file at path using the default detector.
func Detect(path string) (*Result, error) {
	return Default().Detect(path)
}

// DetectBytes classifies an in-memory blob using the default detector.
func DetectBytes(data []byte) *Result {
	return Default().DetectBytes(data)
}

// Detect classifies the file at path. It fails only when path does not
// reference an existing regular file; every other failure mode (unreadable
// bytes, corrupt containers) degrades to CategoryUnknown rather than
// erroring, so a best-effort answer is always produced.
func (d *Detector) Detect(path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, &PathError{Op: "detect", Path: path, Err: ErrNotFound}
	}

	f, err := os.Open(path)
	if err != nil {
		return d.unknown(), nil
	}
	defer f.Close()

	header := make([]byte, HeaderWindow)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return d.unknown(), nil
	}

	return d.classify(header[:n], f, info.Size()), nil
}

// DetectBytes classifies an in-memory blob. Only the first HeaderWindow
// bytes participate in signature matching; container resolution sees the
// full slice.
func (d *Detector) DetectBytes(data []byte) *Result {
	header := data
	if len(header) > HeaderWindow {
		header = header[:HeaderWindow]
	}
	return d.classify(header, bytes.NewReader(data), int64(len(data)))
}

// classify runs the priority pipeline: container resolvers first, then the
// flat registry scan, then unknown. First match wins at every stage.
func (d *Detector) classify(header []byte, src io.ReaderAt, size int64) *Result {
	if bytes.HasPrefix(header, zipMagic) {
		if cat, sub, ok := d.zip.Resolve(src, size); ok {
			return d.result(cat, sub)
		}
	} else if bytes.HasPrefix(header, oleMagic) {
		if cat, sub, ok := d.ole.Resolve(header); ok {
			return d.result(cat, sub)
		}
	}

	// Resolvers that found nothing fall through to the flat scan, so an
	// unresolvable ZIP still classifies as mixed/zip and an unresolvable
	// OLE file lands on the first record carrying the OLE signature.
	for _, sig := range d.signatures {
		end := sig.Offset + len(sig.Magic)
		if end > len(header) {
			continue
		}
		if bytes.Equal(header[sig.Offset:end], sig.Magic) {
			return d.result(sig.Category, sig.Subtype)
		}
	}

	return d.unknown()
}

func (d *Detector) result(cat Category, sub Subtype) *Result {
	mime := DefaultMIME
	if m, ok := d.mimes[sub]; ok {
		mime = m
	}
	return &Result{Category: cat, Subtype: sub, MIME: mime}
}

func (d *Detector) unknown() *Result {
	return &Result{Category: CategoryUnknown, MIME: DefaultMIME}
}
