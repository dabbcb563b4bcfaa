package toncenter

import (
	"errors"
	"fmt"
	"net/http"
)

const defaultRateLimitMessage = "Rate limit exceeded"

// RateLimitError is returned when the gateway answers with code 429.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	if e.Message == "" {
		return defaultRateLimitMessage
	}
	return e.Message
}

func (e *RateLimitError) StatusCode() int {
	return http.StatusTooManyRequests
}

// ClientError covers every 4xx code except 429.
type ClientError struct {
	Code    int
	Message string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("Client error (%d): %s", e.Code, e.Message)
}

func (e *ClientError) StatusCode() int {
	return e.Code
}

// ServerError covers every failure code outside the 4xx band.
type ServerError struct {
	Code    int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("Server error (%d): %s", e.Code, e.Message)
}

func (e *ServerError) StatusCode() int {
	return e.Code
}

// ProtocolError means the response did not follow the envelope contract.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "Invalid response from server, " + e.Reason
}

// TransportError wraps anything that went wrong before an envelope could be
// decoded: building the request, the round trip, or reading the body.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("[requestToncenter %s %s] %s", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// classify turns a failure code reported inside an envelope into a typed error.
func classify(code int, message string) error {
	switch {
	case code == http.StatusTooManyRequests:
		return &RateLimitError{Message: message}
	case code >= 400 && code < 500:
		return &ClientError{Code: code, Message: message}
	default:
		return &ServerError{Code: code, Message: message}
	}
}

func IsRateLimited(err error) bool {
	var target *RateLimitError
	return errors.As(err, &target)
}

func IsClientError(err error) bool {
	var target *ClientError
	return errors.As(err, &target)
}

func IsServerError(err error) bool {
	var target *ServerError
	return errors.As(err, &target)
}

func IsProtocolError(err error) bool {
	var target *ProtocolError
	return errors.As(err, &target)
}

func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// StatusCode extracts the gateway code from a classified error. It returns 0
// for protocol and transport failures.
func StatusCode(err error) int {
	var coded interface{ StatusCode() int }
	if errors.As(err, &coded) {
		return coded.StatusCode()
	}
	return 0
}
