// Package loader extracts plain text from documents on disk so it can be
// fed to the analysis engine.
package loader

import (
	"os"
	"path/filepath"
	"strings"
)

// Document is the text content of a loaded file.
type Document struct {
	Path string
	Text string
	// Pages is the page count for paginated formats, 0 otherwise.
	Pages int
}

// Loader defines the contract for reading a file and extracting its text content.
type Loader interface {
	Load(path string) (*Document, error)
}

// TextLoader is a generic loader for plain text files (txt, md, html, ...).
type TextLoader struct{}

func NewTextLoader() *TextLoader {
	return &TextLoader{}
}

func (l *TextLoader) Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Document{Path: path, Text: string(content)}, nil
}

// AutoLoader selects the loader from the file extension. Unknown
// extensions are read as plain text.
type AutoLoader struct {
	textLoader Loader
	pdfLoader  Loader
	docxLoader Loader
}

func NewAutoLoader() *AutoLoader {
	return &AutoLoader{
		textLoader: NewTextLoader(),
		pdfLoader:  NewPDFLoader(),
		docxLoader: NewDocxLoader(),
	}
}

func (l *AutoLoader) Load(path string) (*Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return l.pdfLoader.Load(path)
	case ".docx":
		return l.docxLoader.Load(path)
	default:
		return l.textLoader.Load(path)
	}
}

// Supported reports whether path has an extension the AutoLoader handles
// natively. Used by directory walks to skip binaries.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".markdown", ".rst", ".html", ".htm", ".pdf", ".docx":
		return true
	}
	return false
}
