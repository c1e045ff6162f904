// Package source normalizes the supported input formats into a lawdoc
// document. Akoma Ntoso XML is the primary, grammar-driven path; markdown,
// docx and pdf are best-effort structural imports for material that has not
// been marked up yet. Imports never carry document metadata.
package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/lawlens/aknrender/internal/lawdoc"
	"github.com/lawlens/aknrender/internal/render"
)

// Source converts raw document bytes into a rendered lawdoc tree.
type Source interface {
	Load(r io.Reader, filename string) (*lawdoc.Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".xml":  true,
	".akn":  true,
	".md":   true,
	".docx": true,
	".pdf":  true,
}

// ForFile returns the appropriate source for a filename.
func ForFile(filename string) (Source, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xml", ".akn":
		return &AknSource{}, nil
	case ".md", ".markdown":
		return &MarkdownSource{}, nil
	case ".docx":
		return &DocxSource{}, nil
	case ".pdf":
		return &PDFSource{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// AknSource handles Akoma Ntoso XML, the grammar-driven path.
type AknSource struct{}

func (s *AknSource) Load(r io.Reader, filename string) (*lawdoc.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return render.Render(string(data))
}
