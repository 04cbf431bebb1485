package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the machine-readable classification of a domain failure. The kind
// is the only part of an error exposed to API callers; the detail string is
// for logs.
type Kind string

const (
	KindDuplicateUsername Kind = "DUPLICATED_USERNAME"
	KindUserNotFound      Kind = "USER_NOT_FOUND"
	KindInvalidPassword   Kind = "INVALID_PASSWORD"
	KindInvalidToken      Kind = "INVALID_TOKEN"
	KindPostNotFound      Kind = "POST_NOT_FOUND"
	KindInvalidPermission Kind = "INVALID_PERMISSION"
	KindInternal          Kind = "INTERNAL_SERVER_ERROR"
)

type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	}
}

// KindOf extracts the kind from an error chain. Unrecognized failures
// classify as internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func HTTPStatus(kind Kind) int {
	switch kind {
	case KindDuplicateUsername:
		return http.StatusConflict
	case KindUserNotFound, KindPostNotFound:
		return http.StatusNotFound
	case KindInvalidPassword, KindInvalidToken, KindInvalidPermission:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
