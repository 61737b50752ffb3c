package sniffkit

import (
	"io"
	"os"
)

// Report is the full inspection outcome for one uploaded blob.
type Report struct {
	// Filename is the caller-supplied name, recorded for display only.
	// It never influences detection.
	Filename string

	// Size is the number of bytes actually persisted and inspected.
	Size int64

	// Result is the content-based classification.
	Result *Result

	// Algorithm and Checksum describe the content digest.
	Algorithm ChecksumAlgorithm
	Checksum  string

	// Header holds up to HeaderHexBytes leading bytes for diagnostics.
	Header []byte

	// Preview carries presentation hints for the detected category.
	Preview *Preview
}

// HeaderHex renders the captured header bytes as space-separated hex.
func (r *Report) HeaderHex() string {
	return HeaderHex(r.Header)
}

// SizeReadable renders the inspected size in human-readable form.
func (r *Report) SizeReadable() string {
	return FormatSizeReadable(r.Size)
}

// Inspector persists uploaded byte blobs to a scoped-lifetime temp file,
// classifies them, and builds a Report. The temp file is removed on every
// exit path: success, detection error, and preview error alike.
type Inspector struct {
	detector       *Detector
	tempDir        string
	maxSize        int64
	algorithm      ChecksumAlgorithm
	previewEntries int
}

// InspectorOption configures an Inspector.
type InspectorOption func(*Inspector)

// WithDetector sets the detector used for classification.
func WithDetector(d *Detector) InspectorOption {
	return func(in *Inspector) { in.detector = d }
}

// WithTempDir sets the directory for scoped upload copies.
func WithTempDir(dir string) InspectorOption {
	return func(in *Inspector) { in.tempDir = dir }
}

// WithMaxSize caps accepted upload sizes in bytes. Zero disables the cap.
func WithMaxSize(n int64) InspectorOption {
	return func(in *Inspector) { in.maxSize = n }
}

// WithChecksum sets the digest algorithm reported for inspected files.
func WithChecksum(algorithm ChecksumAlgorithm) InspectorOption {
	return func(in *Inspector) { in.algorithm = algorithm }
}

// WithPreviewEntries caps how many archive entries a preview lists.
func WithPreviewEntries(n int) InspectorOption {
	return func(in *Inspector) { in.previewEntries = n }
}

// NewInspector creates an Inspector with the given options. Defaults:
// the process-wide detector, the system temp dir, a 100MB size cap and
// xxHash checksums.
func NewInspector(opts ...InspectorOption) *Inspector {
	in := &Inspector{
		detector:       Default(),
		maxSize:        100 * MB,
		algorithm:      ChecksumXXHash,
		previewEntries: 20,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// NewInspectorFromConfig creates an Inspector from environment-derived
// configuration.
func NewInspectorFromConfig(cfg *Config) *Inspector {
	return NewInspector(
		WithTempDir(cfg.TempDir),
		WithMaxSize(cfg.MaxUploadSize),
		WithChecksum(ChecksumAlgorithm(cfg.Checksum)),
		WithPreviewEntries(cfg.PreviewEntries),
	)
}

// Inspect persists the blob from r to a temp file, classifies it and
// assembles the Report. Pass size < 0 when the total is unknown; a known
// size exceeding the cap is rejected before any bytes are copied. The
// temp file never outlives the call.
func (in *Inspector) Inspect(filename string, r io.Reader, size int64) (*Report, error) {
	if in.maxSize > 0 && size > in.maxSize {
		return nil, &PathError{Op: "inspect", Path: filename, Err: ErrInvalidSize}
	}

	tmp, err := os.CreateTemp(in.tempDir, "sniffkit-*")
	if err != nil {
		return nil, err
	}
	path := tmp.Name()
	defer os.Remove(path)

	written, err := in.persist(tmp, r)
	if err != nil {
		return nil, &PathError{Op: "inspect", Path: filename, Err: err}
	}

	result, err := in.detector.Detect(path)
	if err != nil {
		return nil, err
	}

	checksum, err := ChecksumFile(path, in.algorithm)
	if err != nil {
		return nil, err
	}

	header, err := readHeaderBytes(path)
	if err != nil {
		return nil, err
	}

	return &Report{
		Filename:  filename,
		Size:      written,
		Result:    result,
		Algorithm: in.algorithm,
		Checksum:  checksum,
		Header:    header,
		Preview:   BuildPreview(in.detector, result, path, in.previewEntries),
	}, nil
}

// persist copies r into tmp, enforcing the size cap, and closes tmp.
func (in *Inspector) persist(tmp *os.File, r io.Reader) (int64, error) {
	src := r
	if in.maxSize > 0 {
		// One extra byte so an over-limit stream is distinguishable from
		// one that is exactly at the limit.
		src = io.LimitReader(r, in.maxSize+1)
	}

	written, err := io.Copy(tmp, src)
	if err != nil {
		tmp.Close()
		return 0, err
	}
	if in.maxSize > 0 && written > in.maxSize {
		tmp.Close()
		return 0, ErrInvalidSize
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	return written, nil
}

func readHeaderBytes(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, HeaderHexBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return buf[:n], nil
}
