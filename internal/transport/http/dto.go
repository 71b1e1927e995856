package http

import "github.com/cwrk-planet/chat-service/internal/service"

type ErrorResponse struct {
	Error string `json:"error"`
}

type HistoryResponse struct {
	Items      []service.MessageView `json:"items"`
	NextCursor string                `json:"next_cursor,omitempty"`
}

type ChannelItem struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	CanView  bool   `json:"can_view"`
	CanRead  bool   `json:"can_read"`
	CanSend  bool   `json:"can_send"`
}

type ChannelsResponse struct {
	Items []ChannelItem `json:"items"`
}
