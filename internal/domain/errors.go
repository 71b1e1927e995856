package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrValidation       = errors.New("validation error")

	ErrChannelNotFound = fmt.Errorf("channel %w", ErrNotFound)
	ErrMessageNotFound = fmt.Errorf("message %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrNotInRoom       = fmt.Errorf("not in room: %w", ErrPermissionDenied)
	ErrNotAuthor       = fmt.Errorf("not the author: %w", ErrPermissionDenied)
	ErrEmptyContent    = fmt.Errorf("empty content: %w", ErrValidation)
	ErrContentTooLong  = fmt.Errorf("content too long: %w", ErrValidation)

	// ErrMessageDeleted — удалённое сообщение больше не редактируется.
	ErrMessageDeleted = fmt.Errorf("message deleted: %w", ErrNotFound)
)

// Коды ошибок, уходящие клиенту в ack.
const (
	CodeUnauthorized     = "unauthorized"
	CodeNotFound         = "not_found"
	CodePermissionDenied = "permission_denied"
	CodeValidation       = "validation"
	CodeInternal         = "internal"
)

func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrPermissionDenied):
		return CodePermissionDenied
	case errors.Is(err, ErrValidation):
		return CodeValidation
	default:
		return CodeInternal
	}
}
