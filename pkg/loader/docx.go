package loader

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// DocxLoader extracts paragraph text from .docx files.
type DocxLoader struct{}

func NewDocxLoader() *DocxLoader {
	return &DocxLoader{}
}

func (l *DocxLoader) Load(path string) (*Document, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open docx zip: %w", err)
	}
	defer r.Close()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("invalid docx: word/document.xml not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	text, err := parseDocxXML(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse docx %s: %w", path, err)
	}
	return &Document{Path: path, Text: text}, nil
}

// parseDocxXML streams the document XML and joins non-empty paragraphs
// with blank lines. Tabs and breaks inside a paragraph become spaces.
func parseDocxXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inParagraph := false
	inTextNode := false

	for {
		t, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch se := t.(type) {
		case xml.StartElement:
			switch se.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inTextNode = true
			case "tab", "br":
				if inParagraph {
					current.WriteByte(' ')
				}
			}

		case xml.CharData:
			if inParagraph && inTextNode {
				current.Write(se)
			}

		case xml.EndElement:
			switch se.Name.Local {
			case "t":
				inTextNode = false
			case "p":
				if text := strings.TrimSpace(current.String()); text != "" {
					paragraphs = append(paragraphs, text)
				}
				inParagraph = false
			}
		}
	}

	return strings.Join(paragraphs, "\n\n"), nil
}
