// Package extraction converts uploaded document bytes into raw text.
// It validates the document before parsing and reports structured errors so
// callers can tell a corrupt upload from a scanned, text-free one.
package extraction

import (
	"bytes"
	"encoding/base64"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfMagic is the 5-byte signature every well-formed PDF starts with.
const pdfMagic = "%PDF-"

// DefaultMaxBytes is the default document size ceiling (10 MiB).
const DefaultMaxBytes = 10 << 20

// Options configures extraction limits.
type Options struct {
	// MaxBytes is the document size ceiling. Zero means DefaultMaxBytes.
	MaxBytes int
}

// Result holds the raw (uncleaned) text recovered from a document.
type Result struct {
	Text      string
	PageCount int
}

// Extract parses document bytes into raw text plus page metadata.
// It is purely functional over the input buffer: no temp files, no persistence.
func Extract(data []byte, opts Options) (*Result, error) {
	limit := opts.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}

	if len(data) == 0 {
		return nil, &UnsupportedError{Reason: "empty document"}
	}
	if len(data) > limit {
		return nil, &TooLargeError{Size: len(data), Limit: limit}
	}
	if !bytes.HasPrefix(data, []byte(pdfMagic)) {
		return nil, &UnsupportedError{Reason: "missing PDF signature"}
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "encrypt") {
			return nil, &UnsupportedError{Reason: "password-protected document", Cause: err}
		}
		return nil, &UnsupportedError{Reason: "malformed document structure", Cause: err}
	}

	var sb strings.Builder
	pageCount := reader.NumPage()
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single broken page should not discard the rest of the document.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	if strings.TrimSpace(sb.String()) == "" {
		return nil, &UnreadableError{PageCount: pageCount}
	}

	return &Result{Text: sb.String(), PageCount: pageCount}, nil
}

// DecodePayload converts a transport-encoded document into raw bytes.
// The payload is base64 text, optionally carrying a data-URI prefix
// ("data:application/pdf;base64,....") which is stripped before decoding.
func DecodePayload(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Some clients emit URL-safe base64 for uploads.
		data, err = base64.URLEncoding.DecodeString(payload)
		if err != nil {
			return nil, &DecodeError{Cause: err}
		}
	}
	return data, nil
}
