package ws

import (
	"encoding/json"
	"time"

	"github.com/cwrk-planet/chat-service/internal/domain"
)

// Входящие события
const (
	TypeJoin             = "join"
	TypeLeave            = "leave"
	TypeTyping           = "typing"
	TypeSendMessage      = "send_message"
	TypeEditMessage      = "edit_message"
	TypeDeleteMessage    = "delete_message"
	TypeJoinVoice        = "join_voice_room"
	TypeLeaveVoice       = "leave_voice_room"
	TypeRequestVoiceRoom = "request_voice_room"
	TypeVoiceSignal      = "voice_signal" // и входящее, и исходящее
	TypeVoiceActivity    = "voice_activity"
	TypePing             = "ping"
)

// Исходящие события
const (
	TypeOnlineUpdate        = "online_update"
	TypeTypingUpdate        = "typing_update"
	TypeNewMessage          = "new_message"
	TypeMessageUpdated      = "message_updated"
	TypeMessageDeleted      = "message_deleted"
	TypeVoiceRoomUpdate     = "voice_room_update"
	TypeVoiceActivityUpdate = "voice_activity_update"
	TypeNotification        = "notification"
	TypeAck                 = "ack"
	TypePong                = "pong"
)

// Message — конверт для всех событий. Ref — корреляционный id клиента, эхо в ack.
type Message struct {
	Type    string      `json:"type"`
	Ref     string      `json:"ref,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

type UserItem struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	IsAdmin     bool   `json:"is_admin,omitempty"`
}

func userItems(ids []domain.Identity) []UserItem {
	out := make([]UserItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, UserItem{
			ID:          id.ID,
			Username:    id.Username,
			DisplayName: id.Name(),
			AvatarURL:   id.AvatarURL,
			IsAdmin:     id.IsAdmin,
		})
	}
	return out
}

// --- inbound payloads ---

type ChannelPayload struct {
	Channel string `json:"channel"`
}

type TypingPayload struct {
	Channel  string `json:"channel"`
	IsTyping bool   `json:"is_typing"`
}

type SendMessagePayload struct {
	Channel string `json:"channel"`
	Content string `json:"content"`
	ReplyTo *int64 `json:"reply_to,omitempty"`
}

type EditMessagePayload struct {
	MessageID int64  `json:"message_id"`
	Content   string `json:"content"`
}

type DeleteMessagePayload struct {
	MessageID int64 `json:"message_id"`
}

type VoiceSignalPayload struct {
	TargetID int64           `json:"target_id"`
	Signal   json.RawMessage `json:"signal"`
}

type VoiceActivityPayload struct {
	IsSpeaking bool `json:"is_speaking"`
}

// --- outbound payloads ---

type OnlineUpdatePayload struct {
	Users []UserItem `json:"users"`
}

type TypingUpdatePayload struct {
	Channel string     `json:"channel"`
	Users   []UserItem `json:"users"`
}

type MessageDeletedPayload struct {
	MessageID int64  `json:"message_id"`
	Channel   string `json:"channel"`
}

type VoiceRoomUpdatePayload struct {
	Users []UserItem `json:"users"`
}

type VoiceActivityUpdatePayload struct {
	SpeakingUserIDs []int64 `json:"speaking_user_ids"`
}

type VoiceSignalOutPayload struct {
	FromID int64           `json:"from_id"`
	Signal json.RawMessage `json:"signal"`
}

type NotificationPayload struct {
	ID        int64     `json:"id,omitempty"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AckPayload — ответ на request/response события.
type AckPayload struct {
	OK        bool   `json:"ok"`
	MessageID int64  `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

func decode(payload interface{}, dst interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, dst)
}
