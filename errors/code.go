package errors

import (
	"net/http"
)

func BadRequest() ErrorEnricher   { return WithCode(http.StatusBadRequest) }
func Unauthorized() ErrorEnricher { return WithCode(http.StatusUnauthorized) }
func Forbidden() ErrorEnricher    { return WithCode(http.StatusForbidden) }
func NotFound() ErrorEnricher     { return WithCode(http.StatusNotFound) }

// Code extracts the HTTP status carried by err, falling back to DefaultCode
// for plain errors.
func Code(err error) int {
	if err, ok := err.(Error); ok {
		return err.Code()
	}
	return DefaultCode
}

// Tag extracts the machine-readable tag carried by err, or "" for plain
// errors.
func Tag(err error) string {
	if err, ok := err.(Error); ok {
		return err.Tag()
	}
	return ""
}
