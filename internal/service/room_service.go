package service

import (
	"context"

	"github.com/cwrk-planet/chat-service/internal/domain"
)

type RoomService struct {
	perms  *PermissionService
	rooms  Rooms
	typing TypingRegistry
}

func NewRoomService(perms *PermissionService, rooms Rooms, typing TypingRegistry) *RoomService {
	return &RoomService{perms: perms, rooms: rooms, typing: typing}
}

// Join подписывает соединение на комнату канала, если канал виден пользователю.
func (s *RoomService) Join(ctx context.Context, id domain.Identity, slug string) error {
	if _, err := s.perms.Require(ctx, id, slug, domain.CapView); err != nil {
		return err
	}
	s.rooms.Subscribe(id.ID, slug)
	return nil
}

// Leave отписывает и снимает typing в этой комнате. Прав не требует.
func (s *RoomService) Leave(_ context.Context, id domain.Identity, slug string) {
	s.rooms.Unsubscribe(id.ID, slug)
	s.typing.SetTyping(slug, id.ID, false)
}

// Typing: нужен join; для is_typing=true ещё и право send. Снять флаг можно всегда.
func (s *RoomService) Typing(ctx context.Context, id domain.Identity, slug string, isTyping bool) error {
	if !isTyping {
		s.typing.SetTyping(slug, id.ID, false)
		return nil
	}
	if !s.rooms.IsMember(id.ID, slug) {
		return domain.ErrNotInRoom
	}
	if _, err := s.perms.Require(ctx, id, slug, domain.CapSend); err != nil {
		return err
	}
	s.typing.SetTyping(slug, id.ID, true)
	return nil
}
