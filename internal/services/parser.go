package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

type ParserService interface {
	ExtractText(data []byte, ext string) (string, error)
}

type parserService struct{}

func NewParserService() ParserService {
	return &parserService{}
}

// ExtractText pulls plain text out of an uploaded resume file. Uploads are
// processed in memory and never written to disk. PDF, TXT and Markdown are
// supported.
func (p *parserService) ExtractText(data []byte, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case ".pdf":
		return p.extractPDF(data)
	case ".txt", ".md":
		return CleanText(string(data)), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func (p *parserService) extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return CleanText(text), nil
}

// CleanText trims each line and drops blank ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
