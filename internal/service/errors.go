package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"

	"seoscan/internal/config"
)

type ErrorKind string

const (
	ErrKindMissingInput      ErrorKind = "MissingInput"
	ErrKindDomainNotFound    ErrorKind = "DomainNotFound"
	ErrKindConnectionRefused ErrorKind = "ConnectionRefused"
	ErrKindTimeout           ErrorKind = "Timeout"
	ErrKindUpstreamHTTP      ErrorKind = "UpstreamHttpError"
	ErrKindUnknown           ErrorKind = "UnknownError"
)

// ScanError is the only error type that leaves the service package. Message
// is safe to show to users; Err keeps the underlying cause for logs.
type ScanError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *ScanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func NewScanError(kind ErrorKind, status int, message string, err error) *ScanError {
	return &ScanError{Kind: kind, Status: status, Message: message, Err: err}
}

// MissingInput is returned when no url was supplied.
func MissingInput() *ScanError {
	return NewScanError(ErrKindMissingInput, http.StatusBadRequest, config.ErrURLRequired, nil)
}

// AsScanError returns err as a *ScanError, wrapping anything else as an
// unknown error.
func AsScanError(err error) *ScanError {
	var se *ScanError
	if errors.As(err, &se) {
		return se
	}
	return NewScanError(ErrKindUnknown, http.StatusInternalServerError, config.ErrUnknown, err)
}

// upstreamStatusError reports a non-2xx answer from the scanned site.
type upstreamStatusError struct {
	StatusCode int
}

func (e *upstreamStatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

// classify maps a fetch or parse failure onto the error taxonomy.
func classify(err error) *ScanError {
	var se *ScanError
	if errors.As(err, &se) {
		return se
	}

	var statusErr *upstreamStatusError
	if errors.As(err, &statusErr) {
		return NewScanError(ErrKindUpstreamHTTP, statusErr.StatusCode,
			fmt.Sprintf("Server responded with status %d", statusErr.StatusCode), err)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && !dnsErr.IsTimeout {
		return NewScanError(ErrKindDomainNotFound, http.StatusNotFound, config.ErrDomainNotFound, err)
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return NewScanError(ErrKindConnectionRefused, http.StatusBadGateway, config.ErrConnectionRefused, err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return NewScanError(ErrKindTimeout, http.StatusGatewayTimeout, config.ErrRequestTimeout, err)
	}

	return NewScanError(ErrKindUnknown, http.StatusInternalServerError, config.ErrUnknown, err)
}
