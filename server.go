package sniffkit

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// Server exposes the inspection flow over HTTP: an upload form on GET /
// and a JSON inspection API on POST /api/inspect. It is a thin
// presentation layer; classification semantics live entirely in the
// Inspector it wraps.
type Server struct {
	inspector *Inspector
	logger    *log.Logger
	maxUpload int64
	mux       *http.ServeMux
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the request error logger.
func WithLogger(l *log.Logger) ServerOption {
	return func(s *Server) { s.logger = l }
}

// WithMaxUpload caps the accepted request body size in bytes.
func WithMaxUpload(n int64) ServerOption {
	return func(s *Server) { s.maxUpload = n }
}

// NewServer creates a Server around the given inspector (a default
// inspector when nil).
func NewServer(in *Inspector, opts ...ServerOption) *Server {
	if in == nil {
		in = NewInspector()
	}
	s := &Server{
		inspector: in,
		logger:    log.Default(),
		maxUpload: 100 * MB,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mux = http.NewServeMux()
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /api/inspect", s.handleInspect)

	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

// inspectResponse is the wire shape of an inspection report.
type inspectResponse struct {
	Filename     string           `json:"filename"`
	Size         int64            `json:"size"`
	SizeReadable string           `json:"size_readable"`
	Category     Category         `json:"category"`
	Subtype      Subtype          `json:"subtype,omitempty"`
	MIME         string           `json:"mime"`
	Algorithm    string           `json:"checksum_algorithm"`
	Checksum     string           `json:"checksum"`
	HeaderHex    string           `json:"header_hex"`
	Preview      *previewResponse `json:"preview,omitempty"`
}

type previewResponse struct {
	Kind      PreviewKind `json:"kind"`
	Notice    string      `json:"notice,omitempty"`
	Warning   string      `json:"warning,omitempty"`
	Width     int         `json:"width,omitempty"`
	Height    int         `json:"height,omitempty"`
	Format    string      `json:"format,omitempty"`
	Entries   []string    `json:"entries,omitempty"`
	Truncated bool        `json:"truncated,omitempty"`
	Inner     *Result     `json:"inner,omitempty"`
}

func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.fail(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		s.fail(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	report, err := s.inspector.Inspect(header.Filename, file, header.Size)
	if err != nil {
		if IsInvalidSize(err) {
			s.fail(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		s.logger.Printf("inspect %s: %v", header.Filename, err)
		s.fail(w, http.StatusInternalServerError, "inspection failed")
		return
	}

	s.writeJSON(w, http.StatusOK, reportToResponse(report))
}

func reportToResponse(report *Report) *inspectResponse {
	resp := &inspectResponse{
		Filename:     report.Filename,
		Size:         report.Size,
		SizeReadable: report.SizeReadable(),
		Category:     report.Result.Category,
		Subtype:      report.Result.Subtype,
		MIME:         report.Result.MIME,
		Algorithm:    string(report.Algorithm),
		Checksum:     report.Checksum,
		HeaderHex:    report.HeaderHex(),
	}
	if p := report.Preview; p != nil {
		resp.Preview = &previewResponse{
			Kind:      p.Kind,
			Notice:    p.Notice,
			Warning:   p.Warning,
			Width:     p.Width,
			Height:    p.Height,
			Format:    p.Format,
			Entries:   p.Entries,
			Truncated: p.Truncated,
			Inner:     p.Inner,
		}
	}
	return resp
}

func (s *Server) fail(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Printf("write response: %v", err)
	}
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>sniffkit</title></head>
<body>
  <h1>sniffkit</h1>
  <p>Upload a file to discover its true type, regardless of extension.</p>
  <form action="/api/inspect" method="post" enctype="multipart/form-data">
    <input type="file" name="file" required>
    <button type="submit">Inspect</button>
  </form>
</body>
</html>
`
