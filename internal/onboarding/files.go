package onboarding

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// UploadedFile is one document submitted with the onboarding form.
type UploadedFile struct {
	Name    string
	Content []byte
}

// ExtractText pulls knowledge text out of an uploaded document. PDFs get a
// best-effort structured parse; anything else, or a PDF that fails to parse,
// is treated as plain text.
func ExtractText(file UploadedFile) string {
	if bytes.HasPrefix(file.Content, []byte("%PDF-")) {
		if text, err := extractPDFText(file.Content); err == nil && strings.TrimSpace(text) != "" {
			return text
		}
	}
	return string(file.Content)
}

func extractPDFText(data []byte) (text string, err error) {
	// The pdf package panics on some malformed documents; extraction is
	// best-effort so a panic degrades to the plain-text path.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("onboarding: pdf parse panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("onboarding: opening pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("onboarding: extracting pdf text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", fmt.Errorf("onboarding: reading pdf text: %w", err)
	}
	return sb.String(), nil
}
