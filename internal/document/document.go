// Package document turns uploaded resume files (PDF, DOCX, TXT, HTML)
// into plain-text RawDocuments for extraction.
package document

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// DetectFormat maps a file extension to a SourceFormat. Unknown extensions
// return an UnsupportedFormatError.
func DetectFormat(path string) (types.SourceFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return types.FormatPDF, nil
	case ".docx":
		return types.FormatDOCX, nil
	case ".txt", ".text", ".md":
		return types.FormatTXT, nil
	case ".html", ".htm":
		return types.FormatHTML, nil
	default:
		return "", &UnsupportedFormatError{Format: ext}
	}
}

// Parse decodes raw document bytes into plain text according to format.
func Parse(data []byte, format types.SourceFormat) (types.RawDocument, error) {
	var (
		text string
		err  error
	)
	switch format {
	case types.FormatPDF:
		text, err = pdfText(data)
	case types.FormatDOCX:
		text, err = docxText(data)
	case types.FormatTXT:
		text, err = plainText(data)
	case types.FormatHTML:
		text, err = htmlText(data)
	default:
		return types.RawDocument{}, &UnsupportedFormatError{Format: string(format)}
	}
	if err != nil {
		return types.RawDocument{}, err
	}
	return types.RawDocument{Text: text, Format: format}, nil
}

// ParseFile reads a file from disk, detects its format from the extension,
// and decodes it.
func ParseFile(path string) (types.RawDocument, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return types.RawDocument{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RawDocument{}, &DecodeError{Format: string(format), Message: "reading file", Cause: err}
	}
	return Parse(data, format)
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Format: "pdf", Message: "opening document", Cause: err}
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Format: "docx", Message: "opening document", Cause: err}
	}
	defer doc.Close()

	return flattenDocxXML(doc.Editable().GetContent()), nil
}

// flattenDocxXML converts the raw document.xml content into plain text:
// paragraph closes become newlines, every other tag is dropped.
func flattenDocxXML(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	var b strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// plainText decodes text bytes as UTF-8, falling back to GBK for legacy
// Chinese resumes exported by older tools.
func plainText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
	if err != nil {
		return "", &DecodeError{Format: "txt", Message: "text is neither valid UTF-8 nor GBK", Cause: err}
	}
	return string(decoded), nil
}

func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &DecodeError{Format: "html", Message: "parsing HTML", Cause: err}
	}
	doc.Find("script, style, noscript").Remove()

	var b strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		b.WriteString(s.Text())
	})
	text := b.String()
	if text == "" {
		text = doc.Text()
	}
	return normalizeLines(text), nil
}

// normalizeLines trims each line and drops runs of blank lines so section
// keyword anchoring sees clean line boundaries.
func normalizeLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n")
}
