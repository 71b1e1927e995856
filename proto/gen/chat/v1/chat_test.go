package chatv1

import (
	"testing"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestDescriptor_Registered(t *testing.T) {
	fd, err := protoregistry.GlobalFiles.FindFileByPath("chat/v1/chat.proto")
	if err != nil {
		t.Fatalf("file not registered: %v", err)
	}
	if n := fd.Messages().Len(); n != 11 {
		t.Fatalf("expected 11 messages, got %d", n)
	}
	svc := fd.Services().ByName("ChatService")
	if svc == nil || svc.Methods().Len() != 4 {
		t.Fatalf("ChatService not described: %v", svc)
	}
	m := svc.Methods().ByName("GetChatHistory")
	if m.Input().FullName() != "chat.v1.GetChatHistoryRequest" || m.Output().FullName() != "chat.v1.GetChatHistoryResponse" {
		t.Fatalf("GetChatHistory types: %s -> %s", m.Input().FullName(), m.Output().FullName())
	}
	// поле-сообщение резолвится в реальный Timestamp
	ts := (&ChatMessage{}).ProtoReflect().Descriptor().Fields().ByName("created_at")
	if ts.Message().FullName() != "google.protobuf.Timestamp" {
		t.Fatalf("created_at type: %s", ts.Message().FullName())
	}
}

func TestChatMessage_WireRoundTrip(t *testing.T) {
	at := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	in := &GetChatHistoryResponse{
		Items: []*ChatMessage{{
			Id:        7,
			Channel:   "general",
			Author:    &User{Id: 1, Username: "alice"},
			Content:   "hi",
			ReplyToId: 3,
			CreatedAt: timestamppb.New(at),
		}},
		NextCursor: "abc",
	}
	b, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out GetChatHistoryResponse
	if err := proto.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !proto.Equal(in, &out) {
		t.Fatalf("round trip mismatch:\n in=%v\nout=%v", in, &out)
	}
	if got := out.GetItems()[0].GetCreatedAt().AsTime(); !got.Equal(at) {
		t.Fatalf("created_at: %v", got)
	}
	// nil-геттеры не паникуют
	var nilMsg *ChatMessage
	if nilMsg.GetAuthor().GetUsername() != "" {
		t.Fatalf("nil getters must return zero values")
	}
}
