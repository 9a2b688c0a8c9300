// Package server provides the HTTP REST API for the resume analysis pipeline.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-insight/internal/analysis"
	"github.com/jonathan/resume-insight/internal/extraction"
)

// HTTPStatus returns the appropriate HTTP status code for a pipeline error.
func HTTPStatus(err error) int {
	var (
		invalidInput *analysis.InvalidInputError
		tooLarge     *extraction.TooLargeError
		unsupported  *extraction.UnsupportedError
		unreadable   *extraction.UnreadableError
		tooShort     *extraction.TooShortError
		decode       *extraction.DecodeError
		unavailable  *analysis.ServiceUnavailableError
		rateLimited  *analysis.RateLimitedError
		timeout      *analysis.TimeoutError
	)

	switch {
	case errors.As(err, &invalidInput), errors.As(err, &decode):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &unsupported), errors.As(err, &unreadable), errors.As(err, &tooShort):
		return http.StatusUnprocessableEntity
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &rateLimited):
		return http.StatusTooManyRequests
	case errors.As(err, &timeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// userMessage maps an error to the message surfaced to end users. Document
// and input errors are specific so the user can fix their upload; external
// service failures stay generic while the precise cause is logged internally.
func userMessage(err error) string {
	var (
		unavailable *analysis.ServiceUnavailableError
		rateLimited *analysis.RateLimitedError
		timeout     *analysis.TimeoutError
		malformed   *analysis.MalformedResponseError
	)

	switch {
	case errors.As(err, &unavailable):
		return "Analysis is temporarily unavailable. Please try again later."
	case errors.As(err, &rateLimited), errors.As(err, &timeout):
		return "The analysis service is busy. Please try again shortly."
	case errors.As(err, &malformed):
		return "Analysis failed to produce a usable result. Please try again."
	default:
		return err.Error()
	}
}
