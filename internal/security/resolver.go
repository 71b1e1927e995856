package security

import (
	"context"
	"errors"
	"fmt"

	"github.com/cwrk-planet/chat-service/internal/domain"
)

type UserStore interface {
	GetByID(ctx context.Context, id int64) (domain.Identity, error)
}

// IdentityResolver: access token -> пользователь из БД.
type IdentityResolver struct {
	verifier *Verifier
	users    UserStore
}

func NewIdentityResolver(verifier *Verifier, users UserStore) *IdentityResolver {
	return &IdentityResolver{verifier: verifier, users: users}
}

// Resolve возвращает ошибку, оборачивающую domain.ErrUnauthorized, если личность не установлена.
// Ошибки хранилища (кроме not found) пробрасываются как есть.
func (r *IdentityResolver) Resolve(ctx context.Context, token string) (domain.Identity, error) {
	claims, err := r.verifier.ParseAndValidate(token)
	if err != nil {
		return domain.Identity{}, err
	}
	uid, err := SubjectAsUserID(claims)
	if err != nil {
		return domain.Identity{}, err
	}
	id, err := r.users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Identity{}, fmt.Errorf("user %d: %w", uid, domain.ErrUnauthorized)
		}
		return domain.Identity{}, err
	}
	return id, nil
}
