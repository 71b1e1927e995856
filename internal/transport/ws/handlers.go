package ws

import (
	"context"
	"log/slog"

	"github.com/cwrk-planet/chat-service/internal/domain"
)

func (s *Server) dispatch(ctx context.Context, c *wsConn, msg Message) {
	id := c.user

	switch msg.Type {
	case TypePing:
		_ = c.Send(Message{Type: TypePong, Ref: msg.Ref})
		s.metrics.Event(msg.Type, "ok")

	case TypeJoin:
		var p ChannelPayload
		if !s.decodeOrReject(c, msg, &p) {
			return
		}
		err := s.rooms.Join(ctx, id, p.Channel)
		if err == nil {
			// новому участнику — текущий typing-ростер комнаты
			_ = c.Send(Message{Type: TypeTypingUpdate, Payload: TypingUpdatePayload{
				Channel: p.Channel,
				Users:   userItems(s.presence.Typing(p.Channel)),
			}})
		}
		s.finish(c, msg, err, 0)

	case TypeLeave:
		var p ChannelPayload
		if !s.decodeOrReject(c, msg, &p) {
			return
		}
		s.rooms.Leave(ctx, id, p.Channel)
		s.finish(c, msg, nil, 0)

	case TypeTyping:
		var p TypingPayload
		if !s.decodeOrReject(c, msg, &p) {
			return
		}
		s.finish(c, msg, s.rooms.Typing(ctx, id, p.Channel, p.IsTyping), 0)

	case TypeSendMessage:
		var p SendMessagePayload
		if !s.decodeOrReject(c, msg, &p) {
			return
		}
		m, err := s.chat.Send(ctx, id, p.Channel, p.Content, p.ReplyTo)
		var msgID int64
		if err == nil {
			msgID = m.ID
			s.metrics.MessagesSent.Inc()
		}
		// send_message отвечает всегда, даже без ref
		s.ack(c, msg.Ref, ackFor(err, msgID))
		s.record(c, msg.Type, err)

	case TypeEditMessage:
		var p EditMessagePayload
		if !s.decodeOrReject(c, msg, &p) {
			return
		}
		_, err := s.chat.Edit(ctx, id, p.MessageID, p.Content)
		s.finish(c, msg, err, p.MessageID)

	case TypeDeleteMessage:
		var p DeleteMessagePayload
		if !s.decodeOrReject(c, msg, &p) {
			return
		}
		_, err := s.chat.Delete(ctx, id, p.MessageID)
		s.finish(c, msg, err, p.MessageID)

	case TypeJoinVoice:
		s.voice.Join(id)
		s.finish(c, msg, nil, 0)

	case TypeLeaveVoice:
		s.voice.Leave(id)
		s.finish(c, msg, nil, 0)

	case TypeRequestVoiceRoom:
		s.voice.Request(id)
		s.metrics.Event(msg.Type, "ok")

	case TypeVoiceSignal:
		var p VoiceSignalPayload
		if !s.decodeOrReject(c, msg, &p) {
			return
		}
		// без ответа отправителю: relay либо состоялся, либо молча отброшен
		if s.voice.Signal(id, p.TargetID, p.Signal) {
			s.metrics.Event(msg.Type, "ok")
		} else {
			s.metrics.Event(msg.Type, "dropped")
		}

	case TypeVoiceActivity:
		var p VoiceActivityPayload
		if !s.decodeOrReject(c, msg, &p) {
			return
		}
		s.voice.SetSpeaking(id, p.IsSpeaking)
		s.metrics.Event(msg.Type, "ok")

	default:
		s.metrics.Event("unknown", "ignored")
		slog.Debug("ws unknown event", "conn", c.id, "user", id.ID, "type", msg.Type)
	}
}

func (s *Server) decodeOrReject(c *wsConn, msg Message, dst interface{}) bool {
	if err := decode(msg.Payload, dst); err != nil {
		s.metrics.Event(msg.Type, "bad_payload")
		if msg.Ref != "" || msg.Type == TypeSendMessage {
			s.ack(c, msg.Ref, AckPayload{Error: domain.CodeValidation})
		}
		return false
	}
	return true
}

// finish пишет метрику и, если клиент прислал ref, отвечает ack.
func (s *Server) finish(c *wsConn, msg Message, err error, msgID int64) {
	s.record(c, msg.Type, err)
	if msg.Ref != "" {
		s.ack(c, msg.Ref, ackFor(err, msgID))
	}
}

func (s *Server) record(c *wsConn, typ string, err error) {
	if err == nil {
		s.metrics.Event(typ, "ok")
		return
	}
	code := domain.ErrorCode(err)
	s.metrics.Event(typ, code)
	if code == domain.CodeInternal {
		slog.Warn("ws event failed", "conn", c.id, "user", c.user.ID, "type", typ, slog.Any("err", err))
		return
	}
	slog.Debug("ws event rejected", "conn", c.id, "user", c.user.ID, "type", typ, "code", code, slog.Any("err", err))
}

func (s *Server) ack(c *wsConn, ref string, p AckPayload) {
	_ = c.Send(Message{Type: TypeAck, Ref: ref, Payload: p})
}

func ackFor(err error, msgID int64) AckPayload {
	if err != nil {
		return AckPayload{OK: false, Error: domain.ErrorCode(err)}
	}
	return AckPayload{OK: true, MessageID: msgID}
}
