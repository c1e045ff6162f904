package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/lawlens/aknrender/internal/htmlout"
	"github.com/lawlens/aknrender/internal/lawdoc"
	"github.com/lawlens/aknrender/internal/render"
	"github.com/lawlens/aknrender/internal/source"
)

// handleRender renders Akoma Ntoso markup from the request body into the
// JSON document tree.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.renderBody(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

// handleRenderHTML renders markup straight to HTML. The size query parameter
// picks the text size class (small/medium/large).
func (s *Server) handleRenderHTML(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.renderBody(w, r)
	if !ok {
		return
	}
	size := htmlout.Size(r.URL.Query().Get("size"))
	if size == "" {
		size = htmlout.Size(s.cfg.DefaultTextSize)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, htmlout.Render(doc, size))
}

func (s *Server) renderBody(w http.ResponseWriter, r *http.Request) (*lawdoc.Document, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxDocumentBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "failed to read request body", http.StatusRequestEntityTooLarge)
		return nil, false
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		jsonError(w, "request body is required", http.StatusBadRequest)
		return nil, false
	}

	doc, err := render.Render(string(data))
	if err != nil {
		s.renderError(w, err)
		return nil, false
	}
	return doc, true
}

// renderError maps the render error taxonomy onto HTTP. Both kinds are
// unprocessable input; the kind field keeps them distinguishable.
func (s *Server) renderError(w http.ResponseWriter, err error) {
	kind := "parse"
	var structureErr *render.StructureError
	if errors.As(err, &structureErr) {
		kind = "structure"
	}
	s.log.Info("render failed", "kind", kind, "error", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(map[string]string{
		"error": err.Error(),
		"kind":  kind,
	})
}

// handleConvert accepts a multipart file upload in any supported format and
// returns the normalized document tree.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxDocumentBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !source.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	src, err := source.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if pdf, ok := src.(*source.PDFSource); ok {
		pdf.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	limited := io.LimitReader(file, s.cfg.MaxDocumentBytes)
	doc, err := src.Load(limited, filename)
	if err != nil {
		s.renderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"filename": filename,
		"document": doc,
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
