package ws

import (
	"encoding/json"

	"github.com/cwrk-planet/chat-service/internal/domain"
	"github.com/cwrk-planet/chat-service/internal/service"
)

// Hub реализует service.ChatPublisher, service.VoicePublisher и presence.Notifier.

func (h *Hub) MessageCreated(room string, v service.MessageView) {
	h.Broadcast(room, Message{Type: TypeNewMessage, Payload: v})
}

func (h *Hub) MessageUpdated(room string, v service.MessageView) {
	h.Broadcast(room, Message{Type: TypeMessageUpdated, Payload: v})
}

func (h *Hub) MessageDeleted(room string, messageID int64) {
	h.Broadcast(room, Message{
		Type:    TypeMessageDeleted,
		Payload: MessageDeletedPayload{MessageID: messageID, Channel: room},
	})
}

func (h *Hub) Notify(userID int64, n domain.Notification) {
	h.SendTo(userID, Message{
		Type: TypeNotification,
		Payload: NotificationPayload{
			ID:        n.ID,
			Title:     n.Title,
			Body:      n.Body,
			Link:      n.Link,
			CreatedAt: n.CreatedAt,
		},
	})
}

func (h *Hub) VoiceSignal(to, from int64, signal json.RawMessage) bool {
	return h.SendTo(to, Message{
		Type:    TypeVoiceSignal,
		Payload: VoiceSignalOutPayload{FromID: from, Signal: signal},
	})
}

func (h *Hub) VoiceRoster(to int64, members []domain.Identity, speaking []int64) {
	h.SendTo(to, Message{Type: TypeVoiceRoomUpdate, Payload: VoiceRoomUpdatePayload{Users: userItems(members)}})
	h.SendTo(to, Message{Type: TypeVoiceActivityUpdate, Payload: VoiceActivityUpdatePayload{SpeakingUserIDs: speaking}})
}

// --- presence.Notifier ---

func (h *Hub) OnlineChanged(roster []domain.Identity) {
	h.BroadcastAll(Message{Type: TypeOnlineUpdate, Payload: OnlineUpdatePayload{Users: userItems(roster)}})
}

func (h *Hub) TypingChanged(room string, typing []domain.Identity) {
	h.Broadcast(room, Message{Type: TypeTypingUpdate, Payload: TypingUpdatePayload{Channel: room, Users: userItems(typing)}})
}

func (h *Hub) VoiceChanged(members []domain.Identity) {
	h.BroadcastAll(Message{Type: TypeVoiceRoomUpdate, Payload: VoiceRoomUpdatePayload{Users: userItems(members)}})
}

func (h *Hub) SpeakingChanged(speaking []int64) {
	h.BroadcastAll(Message{Type: TypeVoiceActivityUpdate, Payload: VoiceActivityUpdatePayload{SpeakingUserIDs: speaking}})
}
