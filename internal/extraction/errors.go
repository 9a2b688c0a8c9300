package extraction

import "fmt"

// TooLargeError indicates the uploaded document exceeds the configured size ceiling.
type TooLargeError struct {
	Size  int
	Limit int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("document too large: %d bytes (limit %d)", e.Size, e.Limit)
}

// UnsupportedError indicates the document is not a format the extractor can read:
// wrong signature, password-protected, or structurally invalid.
type UnsupportedError struct {
	Reason string
	Cause  error
}

func (e *UnsupportedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unsupported document: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("unsupported document: %s", e.Reason)
}

func (e *UnsupportedError) Unwrap() error {
	return e.Cause
}

// UnreadableError indicates the document parsed but yielded no textual content,
// typically a scanned or image-only document.
type UnreadableError struct {
	PageCount int
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("no readable text in document (%d pages)", e.PageCount)
}

// TooShortError indicates the document produced text, but too little of it to
// treat extraction as successful once normalized.
type TooShortError struct {
	Length int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("extracted text too short: %d characters", e.Length)
}

// DecodeError indicates the transport payload could not be decoded into document bytes.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode document payload: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
