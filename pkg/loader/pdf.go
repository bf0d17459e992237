package loader

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PDFLoader extracts plain text from PDF files with ledongthuc/pdf and
// reads the page count with pdfcpu.
type PDFLoader struct {
	pageCount func(path string) (int, error)
}

func NewPDFLoader() *PDFLoader {
	return &PDFLoader{pageCount: api.PageCountFile}
}

func (l *PDFLoader) Load(path string) (*Document, error) {
	text, pages, err := extractPDFText(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	// pdfcpu validates the cross-reference table more strictly; a failure
	// here keeps the extracted text and the reader's own count.
	if n, err := l.pageCount(path); err != nil {
		slog.Warn("[PDF] Page count fallback", "path", path, "error", err)
	} else {
		pages = n
	}

	return &Document{Path: path, Text: text, Pages: pages}, nil
}

func extractPDFText(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	var buf bytes.Buffer
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		p := r.Page(pageIndex)
		if p.V.IsNull() {
			continue
		}

		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", 0, fmt.Errorf("failed to extract text from page %d: %w", pageIndex, err)
		}

		buf.WriteString(text)
		// Pages end a sentence block.
		buf.WriteString("\n")
	}

	return buf.String(), totalPage, nil
}
