package service

import (
	"encoding/json"
	"log/slog"

	"github.com/cwrk-planet/chat-service/internal/domain"
)

// VoiceService — одна общая голосовая комната на процесс.
type VoiceService struct {
	registry VoiceRegistry
	pub      VoicePublisher
}

func NewVoiceService(registry VoiceRegistry, pub VoicePublisher) *VoiceService {
	return &VoiceService{registry: registry, pub: pub}
}

// Join — ростер рассылается реестром всем соединениям, если состав изменился.
func (s *VoiceService) Join(id domain.Identity) bool {
	return s.registry.JoinVoice(id.ID)
}

func (s *VoiceService) Leave(id domain.Identity) bool {
	left, _ := s.registry.LeaveVoice(id.ID)
	return left
}

// Signal передаёт payload только адресату и только если оба в голосовой комнате.
func (s *VoiceService) Signal(id domain.Identity, targetID int64, signal json.RawMessage) bool {
	if !s.registry.BothInVoice(id.ID, targetID) {
		slog.Debug("voice signal dropped", "from", id.ID, "to", targetID)
		return false
	}
	return s.pub.VoiceSignal(targetID, id.ID, signal)
}

func (s *VoiceService) SetSpeaking(id domain.Identity, speaking bool) bool {
	return s.registry.SetSpeaking(id.ID, speaking)
}

// Request отправляет текущий ростер только запросившему.
func (s *VoiceService) Request(id domain.Identity) {
	s.pub.VoiceRoster(id.ID, s.registry.Voice(), s.registry.Speaking())
}
