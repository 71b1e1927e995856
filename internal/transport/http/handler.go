package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cwrk-planet/chat-service/internal/domain"
	"github.com/cwrk-planet/chat-service/internal/postgres"
	"github.com/cwrk-planet/chat-service/internal/service"
	httpmw "github.com/cwrk-planet/chat-service/internal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type HistorySvc interface {
	History(ctx context.Context, id domain.Identity, slug, after string, limit int) ([]service.MessageView, string, error)
}

type ChannelLister interface {
	Visible(ctx context.Context, id domain.Identity) ([]service.ChannelAccess, error)
}

type Handler struct {
	chat  HistorySvc
	perms ChannelLister
}

func NewHandler(chat HistorySvc, perms ChannelLister) *Handler {
	return &Handler{chat: chat, perms: perms}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// GET /channels/{slug}/messages?after=&limit=
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := httpmw.IdentityFromCtx(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: domain.CodeUnauthorized})
		return
	}

	slug := chi.URLParam(r, "slug")
	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}
	after := r.URL.Query().Get("after")

	items, next, err := h.chat.History(r.Context(), id, slug, after, limit)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			slog.Error("handler.GetHistory:", slog.Any("err", err))
		}
		writeJSON(w, status, ErrorResponse{Error: codeFor(err)})
		return
	}
	if items == nil {
		items = []service.MessageView{}
	}

	writeJSON(w, http.StatusOK, HistoryResponse{Items: items, NextCursor: next})
}

// GET /channels
func (h *Handler) ListChannels(w http.ResponseWriter, r *http.Request) {
	id, ok := httpmw.IdentityFromCtx(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: domain.CodeUnauthorized})
		return
	}

	visible, err := h.perms.Visible(r.Context(), id)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			slog.Error("handler.ListChannels:", slog.Any("err", err))
		}
		writeJSON(w, status, ErrorResponse{Error: codeFor(err)})
		return
	}

	items := make([]ChannelItem, 0, len(visible))
	for _, v := range visible {
		items = append(items, ChannelItem{
			Slug:     v.Channel.Slug,
			Name:     v.Channel.Name,
			Priority: v.Channel.Priority,
			CanView:  v.Caps.View,
			CanRead:  v.Caps.Read,
			CanSend:  v.Caps.Send,
		})
	}
	writeJSON(w, http.StatusOK, ChannelsResponse{Items: items})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, postgres.ErrInvalidCursor):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func codeFor(err error) string {
	if errors.Is(err, postgres.ErrInvalidCursor) {
		return "invalid_cursor"
	}
	return domain.ErrorCode(err)
}
