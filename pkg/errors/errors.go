package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies where in the action pipeline a failure happened.
type Kind int

const (
	KindEncoding Kind = iota + 1
	KindUnsupportedSigningMode
	KindSignature
	KindTransport
	KindResponseDecode
)

func (k Kind) String() string {
	switch k {
	case KindEncoding:
		return "encoding failure"
	case KindUnsupportedSigningMode:
		return "unsupported signing mode"
	case KindSignature:
		return "signature failure"
	case KindTransport:
		return "transport failure"
	case KindResponseDecode:
		return "response decode failure"
	}
	return "unknown failure"
}

// ExchangeError is returned by every stage of building, signing and sending an action.
type ExchangeError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *ExchangeError) Error() string {
	msg := e.Kind.String()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ExchangeError) Unwrap() error {
	return e.Err
}

// Is matches a kind sentinel (an ExchangeError without a message) or an identical error.
func (e *ExchangeError) Is(target error) bool {
	t, ok := target.(*ExchangeError)
	if !ok || t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// Kind sentinels, usable with errors.Is
var (
	ErrEncoding               = &ExchangeError{Kind: KindEncoding}
	ErrUnsupportedSigningMode = &ExchangeError{Kind: KindUnsupportedSigningMode}
	ErrSignature              = &ExchangeError{Kind: KindSignature}
	ErrTransport              = &ExchangeError{Kind: KindTransport}
	ErrResponseDecode         = &ExchangeError{Kind: KindResponseDecode}
)

// Common errors
var (
	ErrAlreadySent  = pkgerrors.New("signed action has already been sent")
	ErrNoTransport  = pkgerrors.New("no transport configured")
	ErrNoSigner     = pkgerrors.New("no signer configured")
	ErrUnknownAsset = pkgerrors.New("unknown asset")
	ErrClosed       = pkgerrors.New("connection closed")
)

func newError(kind Kind, err error, format string, args ...interface{}) *ExchangeError {
	return &ExchangeError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     pkgerrors.WithStack(err),
	}
}

// NewEncodingError reports an intent that could not be serialized or hashed.
func NewEncodingError(err error, format string, args ...interface{}) error {
	return newError(KindEncoding, err, format, args...)
}

// NewUnsupportedSigningModeError reports an action type no signing scheme covers.
func NewUnsupportedSigningModeError(actionType string) error {
	return newError(KindUnsupportedSigningMode, nil, "action type %q", actionType)
}

func NewSignatureError(err error, format string, args ...interface{}) error {
	return newError(KindSignature, err, format, args...)
}

func NewTransportError(err error, format string, args ...interface{}) error {
	return newError(KindTransport, err, format, args...)
}

func NewResponseDecodeError(err error, format string, args ...interface{}) error {
	return newError(KindResponseDecode, err, format, args...)
}

// APIError is the message of an "err" status returned by the exchange.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "exchange error: " + e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(message string) *APIError {
	return &APIError{Message: message}
}

// HTTPError is a non-2xx answer from the API host.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}
