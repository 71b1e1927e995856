package security

import (
	"fmt"

	"github.com/cwrk-planet/chat-service/internal/domain"
)

var (
	ErrMissingToken    = fmt.Errorf("missing token: %w", domain.ErrUnauthorized)
	ErrInvalidToken    = fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	ErrInvalidIssuer   = fmt.Errorf("invalid issuer: %w", domain.ErrUnauthorized)
	ErrInvalidAudience = fmt.Errorf("invalid audience: %w", domain.ErrUnauthorized)
	ErrTokenExpired    = fmt.Errorf("token expired: %w", domain.ErrUnauthorized)
	ErrInvalidSubject  = fmt.Errorf("invalid subject: %w", domain.ErrUnauthorized)
)
