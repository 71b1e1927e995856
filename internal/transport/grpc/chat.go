package grpcx

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/cwrk-planet/chat-service/internal/domain"
	"github.com/cwrk-planet/chat-service/internal/postgres"
	"github.com/cwrk-planet/chat-service/internal/service"

	chatv1 "github.com/cwrk-planet/chat-service/proto/gen/chat/v1"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const mdAuthorization = "authorization"

type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (domain.Identity, error)
}

type HistorySvc interface {
	History(ctx context.Context, id domain.Identity, slug, after string, limit int) ([]service.MessageView, string, error)
}

type ChannelLister interface {
	Visible(ctx context.Context, id domain.Identity) ([]service.ChannelAccess, error)
}

// Roster — чтение эфемерного состояния; реализует presence.Registry.
type Roster interface {
	Online() []domain.Identity
	Voice() []domain.Identity
	Speaking() []int64
}

// ChatAPI — chat.v1.ChatService поверх тех же сервисов, что и HTTP/WS.
type ChatAPI struct {
	chatv1.UnimplementedChatServiceServer

	resolver IdentityResolver
	chat     HistorySvc
	channels ChannelLister
	roster   Roster
}

func NewChatAPI(resolver IdentityResolver, chat HistorySvc, channels ChannelLister, roster Roster) *ChatAPI {
	return &ChatAPI{
		resolver: resolver,
		chat:     chat,
		channels: channels,
		roster:   roster,
	}
}

// -------- helpers --------

func (a *ChatAPI) userFromMD(ctx context.Context) (domain.Identity, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return domain.Identity{}, status.Error(codes.Unauthenticated, "missing metadata")
	}
	// Authorization: Bearer <access_token>
	auth := first(md.Get(mdAuthorization))
	if auth == "" {
		return domain.Identity{}, status.Error(codes.Unauthenticated, "missing authorization")
	}
	if !strings.HasPrefix(strings.ToLower(auth), "bearer ") || len(auth) <= 7 {
		return domain.Identity{}, status.Error(codes.Unauthenticated, "invalid authorization")
	}
	id, err := a.resolver.Resolve(ctx, strings.TrimSpace(auth[7:]))
	if err != nil {
		return domain.Identity{}, mapErr(err)
	}
	return id, nil
}

func first(ss []string) string {
	if len(ss) == 0 {
		return ""
	}

	return ss[0]
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, postgres.ErrInvalidCursor):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, domain.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		slog.Error("grpc internal error", slog.Any("err", err))
		return status.Error(codes.Internal, "internal error")
	}
}

func mapUser(id domain.Identity) *chatv1.User {
	return &chatv1.User{
		Id:          id.ID,
		Username:    id.Username,
		DisplayName: id.DisplayName,
		AvatarUrl:   id.AvatarURL,
		IsAdmin:     id.IsAdmin,
	}
}

func mapUsers(ids []domain.Identity) []*chatv1.User {
	out := make([]*chatv1.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, mapUser(id))
	}
	return out
}

func mapChat(m service.MessageView) *chatv1.ChatMessage {
	out := &chatv1.ChatMessage{
		Id:      m.ID,
		Channel: m.Channel,
		Author: &chatv1.User{
			Id:          m.Author.ID,
			Username:    m.Author.Username,
			DisplayName: m.Author.DisplayName,
			AvatarUrl:   m.Author.AvatarURL,
			IsAdmin:     m.Author.IsAdmin,
		},
		Content:   m.Content,
		Html:      m.HTML,
		IsDeleted: m.IsDeleted,
		Edited:    m.Edited,
		CreatedAt: timestamppb.New(m.CreatedAt),
		UpdatedAt: timestamppb.New(m.UpdatedAt),
	}
	if m.ReplyTo != nil {
		out.ReplyToId = m.ReplyTo.ID
	}
	return out
}

// -------- methods --------

func (a *ChatAPI) GetChatHistory(ctx context.Context, in *chatv1.GetChatHistoryRequest) (*chatv1.GetChatHistoryResponse, error) {
	id, err := a.userFromMD(ctx)
	if err != nil {
		return nil, err
	}
	limit := int(in.GetLimit())
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	items, next, err := a.chat.History(ctx, id, in.GetChannel(), in.GetAfter(), limit)
	if err != nil {
		return nil, mapErr(err)
	}

	out := &chatv1.GetChatHistoryResponse{
		Items:      make([]*chatv1.ChatMessage, 0, len(items)),
		NextCursor: next,
	}
	for _, m := range items {
		out.Items = append(out.Items, mapChat(m))
	}

	return out, nil
}

func (a *ChatAPI) ListChannels(ctx context.Context, _ *chatv1.ListChannelsRequest) (*chatv1.ListChannelsResponse, error) {
	id, err := a.userFromMD(ctx)
	if err != nil {
		return nil, err
	}
	visible, err := a.channels.Visible(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	out := &chatv1.ListChannelsResponse{
		Items: make([]*chatv1.Channel, 0, len(visible)),
	}
	for _, v := range visible {
		out.Items = append(out.Items, &chatv1.Channel{
			Id:       v.Channel.ID,
			Slug:     v.Channel.Slug,
			Name:     v.Channel.Name,
			Priority: int32(v.Channel.Priority),
			CanView:  v.Caps.View,
			CanRead:  v.Caps.Read,
			CanSend:  v.Caps.Send,
		})
	}

	return out, nil
}

func (a *ChatAPI) GetOnlineUsers(ctx context.Context, _ *chatv1.GetOnlineUsersRequest) (*chatv1.GetOnlineUsersResponse, error) {
	if _, err := a.userFromMD(ctx); err != nil {
		return nil, err
	}

	return &chatv1.GetOnlineUsersResponse{Users: mapUsers(a.roster.Online())}, nil
}

func (a *ChatAPI) GetVoiceRoom(ctx context.Context, _ *chatv1.GetVoiceRoomRequest) (*chatv1.GetVoiceRoomResponse, error) {
	if _, err := a.userFromMD(ctx); err != nil {
		return nil, err
	}

	return &chatv1.GetVoiceRoomResponse{
		Users:           mapUsers(a.roster.Voice()),
		SpeakingUserIds: a.roster.Speaking(),
	}, nil
}
