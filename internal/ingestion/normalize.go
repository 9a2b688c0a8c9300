// Package ingestion cleans raw extracted document text into plain text the
// rest of the pipeline can score and analyze.
package ingestion

import (
	"regexp"
	"strings"
)

// MinUsableLength is the minimum normalized length below which callers must
// treat extraction as failed even when the extractor itself succeeded.
const MinUsableLength = 50

var (
	excessiveNewlines = regexp.MustCompile(`\n{3,}`)
	horizontalRuns    = regexp.MustCompile(`[ \t]{2,}`)
	lowerThenUpper    = regexp.MustCompile(`([a-z])([A-Z])`)
	letterThenDigit   = regexp.MustCompile(`([A-Za-z])([0-9])`)
	digitThenLetter   = regexp.MustCompile(`([0-9])([A-Za-z])`)
)

// Normalize cleans raw extracted text. It is total (garbage in, empty string
// out, never an error) and idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	// 1. Unify line-break styles (CRLF/CR -> LF)
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// 2. Collapse paragraph gaps and horizontal whitespace runs
	text = excessiveNewlines.ReplaceAllString(text, "\n\n")
	text = horizontalRuns.ReplaceAllString(text, " ")

	// 3. Drop everything outside printable ASCII plus newline
	text = stripNonPrintable(text)

	// 4. Drop page-number lines (digits and whitespace only)
	text = dropNumericLines(text)

	// 5. Repair word boundaries lost by naive extraction
	text = lowerThenUpper.ReplaceAllString(text, "$1 $2")
	text = letterThenDigit.ReplaceAllString(text, "$1 $2")
	text = digitThenLetter.ReplaceAllString(text, "$1 $2")

	// 6. Re-collapse and trim
	text = excessiveNewlines.ReplaceAllString(text, "\n\n")
	text = horizontalRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// stripNonPrintable keeps printable ASCII (0x20-0x7E) and newlines.
func stripNonPrintable(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r == '\n' || (r >= 0x20 && r <= 0x7e) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// dropNumericLines removes lines consisting solely of digits and whitespace.
// Blank lines are preserved: they mark paragraph gaps, not page numbers.
func dropNumericLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if isNumericLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func isNumericLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if (r < '0' || r > '9') && r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}
