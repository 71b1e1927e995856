package service

import (
	"context"
	"fmt"

	"github.com/cwrk-planet/chat-service/internal/domain"
)

// PermissionService читает override на каждый вызов: права могут поменяться между событиями.
type PermissionService struct {
	channels  ChannelStore
	overrides OverrideStore
}

func NewPermissionService(channels ChannelStore, overrides OverrideStore) *PermissionService {
	return &PermissionService{channels: channels, overrides: overrides}
}

func (s *PermissionService) Resolve(ctx context.Context, id domain.Identity, ch domain.Channel) (domain.Capabilities, error) {
	if id.IsAdmin {
		return domain.Resolve(id, ch, nil), nil
	}
	ov, err := s.overrides.Get(ctx, ch.ID, id.ID)
	if err != nil {
		return domain.Capabilities{}, fmt.Errorf("load override: %w", err)
	}
	return domain.Resolve(id, ch, ov), nil
}

// ChannelAccess — канал вместе с правами вызывающего.
type ChannelAccess struct {
	Channel domain.Channel
	Caps    domain.Capabilities
}

// Visible — каналы, которые пользователь может видеть, в порядке priority.
func (s *PermissionService) Visible(ctx context.Context, id domain.Identity) ([]ChannelAccess, error) {
	chs, err := s.channels.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	out := make([]ChannelAccess, 0, len(chs))
	for _, ch := range chs {
		caps, err := s.Resolve(ctx, id, ch)
		if err != nil {
			return nil, err
		}
		if caps.View {
			out = append(out, ChannelAccess{Channel: ch, Caps: caps})
		}
	}
	return out, nil
}

// Require находит канал по slug и проверяет одну способность.
func (s *PermissionService) Require(ctx context.Context, id domain.Identity, slug string, c domain.Capability) (domain.Channel, error) {
	ch, err := s.channels.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Channel{}, err
	}
	caps, err := s.Resolve(ctx, id, ch)
	if err != nil {
		return domain.Channel{}, err
	}
	if !caps.Has(c) {
		return domain.Channel{}, fmt.Errorf("%s on %q: %w", c, slug, domain.ErrPermissionDenied)
	}
	return ch, nil
}
