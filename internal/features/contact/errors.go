package contact

import (
	"errors"
	"net/http"
)

// Kind classifies relay failures.
type Kind string

const (
	KindValidation Kind = "validation"
	KindDelivery   Kind = "delivery"
	KindInternal   Kind = "internal"
)

// Visitor-facing messages. The relay exposes no error codes.
const (
	MessageValidation = "필수 항목을 입력해주세요."
	MessageDelivery   = "알림 전송에 실패했습니다."
	MessageInternal   = "서버 오류가 발생했습니다."
)

// Error is a typed relay failure.
type Error struct {
	Kind    Kind
	Message string // for logs only
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// E builds an Error without a cause.
func E(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an Error around cause.
func Wrap(kind Kind, message string, cause error) error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf reports the kind of err. Untyped errors are internal.
func KindOf(err error) Kind {
	var relayErr *Error
	if errors.As(err, &relayErr) {
		return relayErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to the status code sent to the caller.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if KindOf(err) == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// PublicMessage maps an error to the fixed localized text sent to the caller.
func PublicMessage(err error) string {
	switch KindOf(err) {
	case KindValidation:
		return MessageValidation
	case KindDelivery:
		return MessageDelivery
	default:
		return MessageInternal
	}
}
