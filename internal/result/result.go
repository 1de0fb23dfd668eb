// Package result defines the uniform outcome type that crosses every
// component boundary of the façade, from the validators up to the HTTP
// handlers, together with the error-kind taxonomy used to classify
// failures.
package result

import (
	"fmt"
	"net/http"
)

// Kind classifies a failure so callers can react without parsing messages.
type Kind string

const (
	KindValidationError    Kind = "VALIDATION_ERROR"
	KindAuthenticationErr  Kind = "AUTHENTICATION_ERROR"
	KindForbidden          Kind = "FORBIDDEN_ERROR"
	KindNotFound           Kind = "NOT_FOUND_ERROR"
	KindMethodNotAllowed   Kind = "METHOD_NOT_ALLOWED"
	KindBadRequest         Kind = "BAD_REQUEST"
	KindServerError        Kind = "SERVER_ERROR"
	KindServiceUnavailable Kind = "SERVICE_UNAVAILABLE"
	KindTimeoutError       Kind = "TIMEOUT_ERROR"
	KindNetworkError       Kind = "NETWORK_ERROR"
	KindUnknownError       Kind = "UNKNOWN_ERROR"
	KindPaymentRejected    Kind = "PAYMENT_REJECTED"
)

// Result is the uniform outcome contract. A success carries Data and a
// status code; a failure carries a non-empty Error, a Kind and a status
// code. Every public operation of the façade returns one of these, so
// callers never receive an unstructured fault.
type Result[T any] struct {
	Success     bool   `json:"success"`
	Data        T      `json:"data,omitempty"`
	Error       string `json:"error,omitempty"`
	Code        Kind   `json:"code,omitempty"`
	StatusCode  int    `json:"statusCode,omitempty"`
	ShouldRetry bool   `json:"shouldRetry,omitempty"`
}

// OK wraps data in a successful result with status 200.
func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data, StatusCode: http.StatusOK}
}

// OKStatus wraps data in a successful result with an explicit status code.
func OKStatus[T any](data T, status int) Result[T] {
	return Result[T]{Success: true, Data: data, StatusCode: status}
}

// Fail builds a failed result from a message, kind and status code.
func Fail[T any](msg string, code Kind, status int) Result[T] {
	return Result[T]{Success: false, Error: msg, Code: code, StatusCode: status}
}

// Failf is Fail with a formatted message.
func Failf[T any](code Kind, status int, format string, args ...any) Result[T] {
	return Fail[T](fmt.Sprintf(format, args...), code, status)
}

// Invalid builds a 400 VALIDATION_ERROR failure.
func Invalid[T any](msg string) Result[T] {
	return Fail[T](msg, KindValidationError, http.StatusBadRequest)
}

// Internal builds a 500 VALIDATION_ERROR failure. Used when an internal
// invariant breaks (a successful validation carrying no data) so the
// caller still receives a structured result instead of a fault.
func Internal[T any](msg string) Result[T] {
	return Fail[T](msg, KindValidationError, http.StatusInternalServerError)
}

// Forward converts a failed result of one data type into a failed result
// of another, preserving message, kind, status and retry hint. Calling it
// on a successful result is a programming error; the forwarded value is
// marked failed regardless.
func Forward[T, U any](from Result[U]) Result[T] {
	return Result[T]{
		Success:     false,
		Error:       from.Error,
		Code:        from.Code,
		StatusCode:  from.StatusCode,
		ShouldRetry: from.ShouldRetry,
	}
}

// FromStatus maps an upstream HTTP status code onto the façade's error
// taxonomy. The wording mirrors what the gateway integration reports to
// merchants, so handlers can pass it through untouched.
func FromStatus(status int) (msg string, code Kind, shouldRetry bool) {
	switch status {
	case http.StatusBadRequest:
		return "Invalid request format. Please check the card BIN format.", KindBadRequest, false
	case http.StatusUnauthorized:
		return "Authentication failed. Please verify your merchant credentials.", KindAuthenticationErr, false
	case http.StatusForbidden:
		return "Access forbidden. Your IP may not be authorized for this merchant account.", KindForbidden, false
	case http.StatusNotFound:
		return "Card BIN not found or endpoint unavailable. The BIN may not exist in our database.", KindNotFound, false
	case http.StatusMethodNotAllowed:
		return "HTTP method not allowed. Please contact support.", KindMethodNotAllowed, false
	case http.StatusInternalServerError:
		return "Internal server error. Please try again in a few moments.", KindServerError, true
	case http.StatusBadGateway:
		return "Bad gateway error. The payment service may be temporarily unavailable.", KindServerError, true
	case http.StatusServiceUnavailable:
		return "Service temporarily unavailable. Please try again later.", KindServiceUnavailable, true
	default:
		return fmt.Sprintf("Unexpected HTTP status: %d", status), KindUnknownError, status >= 500
	}
}
