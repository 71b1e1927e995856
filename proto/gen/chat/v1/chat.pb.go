// Типы и дескриптор chat/v1/chat.proto в раскладке protoc-gen-go.
// При изменении .proto правятся вместе: структуры, fileDesc и depIdxs.

package chatv1

import (
	"reflect"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/runtime/protoimpl"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type User struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Username      string                 `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
	DisplayName   string                 `protobuf:"bytes,3,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	AvatarUrl     string                 `protobuf:"bytes,4,opt,name=avatar_url,json=avatarUrl,proto3" json:"avatar_url,omitempty"`
	IsAdmin       bool                   `protobuf:"varint,5,opt,name=is_admin,json=isAdmin,proto3" json:"is_admin,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_chat_v1_chat_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *User) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *User) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *User) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *User) GetAvatarUrl() string {
	if x != nil {
		return x.AvatarUrl
	}
	return ""
}

func (x *User) GetIsAdmin() bool {
	if x != nil {
		return x.IsAdmin
	}
	return false
}

type ChatMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Channel       string                 `protobuf:"bytes,2,opt,name=channel,proto3" json:"channel,omitempty"`
	Author        *User                  `protobuf:"bytes,3,opt,name=author,proto3" json:"author,omitempty"`
	Content       string                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	Html          string                 `protobuf:"bytes,5,opt,name=html,proto3" json:"html,omitempty"`
	ReplyToId     int64                  `protobuf:"varint,6,opt,name=reply_to_id,json=replyToId,proto3" json:"reply_to_id,omitempty"`
	IsDeleted     bool                   `protobuf:"varint,7,opt,name=is_deleted,json=isDeleted,proto3" json:"is_deleted,omitempty"`
	Edited        bool                   `protobuf:"varint,8,opt,name=edited,proto3" json:"edited,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatMessage) Reset() {
	*x = ChatMessage{}
	mi := &file_chat_v1_chat_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatMessage) ProtoMessage() {}

func (x *ChatMessage) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *ChatMessage) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *ChatMessage) GetChannel() string {
	if x != nil {
		return x.Channel
	}
	return ""
}

func (x *ChatMessage) GetAuthor() *User {
	if x != nil {
		return x.Author
	}
	return nil
}

func (x *ChatMessage) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *ChatMessage) GetHtml() string {
	if x != nil {
		return x.Html
	}
	return ""
}

func (x *ChatMessage) GetReplyToId() int64 {
	if x != nil {
		return x.ReplyToId
	}
	return 0
}

func (x *ChatMessage) GetIsDeleted() bool {
	if x != nil {
		return x.IsDeleted
	}
	return false
}

func (x *ChatMessage) GetEdited() bool {
	if x != nil {
		return x.Edited
	}
	return false
}

func (x *ChatMessage) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *ChatMessage) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type GetChatHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Channel       string                 `protobuf:"bytes,1,opt,name=channel,proto3" json:"channel,omitempty"`
	After         string                 `protobuf:"bytes,2,opt,name=after,proto3" json:"after,omitempty"`
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetChatHistoryRequest) Reset() {
	*x = GetChatHistoryRequest{}
	mi := &file_chat_v1_chat_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetChatHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetChatHistoryRequest) ProtoMessage() {}

func (x *GetChatHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *GetChatHistoryRequest) GetChannel() string {
	if x != nil {
		return x.Channel
	}
	return ""
}

func (x *GetChatHistoryRequest) GetAfter() string {
	if x != nil {
		return x.After
	}
	return ""
}

func (x *GetChatHistoryRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type GetChatHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*ChatMessage         `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	NextCursor    string                 `protobuf:"bytes,2,opt,name=next_cursor,json=nextCursor,proto3" json:"next_cursor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetChatHistoryResponse) Reset() {
	*x = GetChatHistoryResponse{}
	mi := &file_chat_v1_chat_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetChatHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetChatHistoryResponse) ProtoMessage() {}

func (x *GetChatHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *GetChatHistoryResponse) GetItems() []*ChatMessage {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *GetChatHistoryResponse) GetNextCursor() string {
	if x != nil {
		return x.NextCursor
	}
	return ""
}

type Channel struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Slug          string                 `protobuf:"bytes,2,opt,name=slug,proto3" json:"slug,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Priority      int32                  `protobuf:"varint,4,opt,name=priority,proto3" json:"priority,omitempty"`
	CanView       bool                   `protobuf:"varint,5,opt,name=can_view,json=canView,proto3" json:"can_view,omitempty"`
	CanRead       bool                   `protobuf:"varint,6,opt,name=can_read,json=canRead,proto3" json:"can_read,omitempty"`
	CanSend       bool                   `protobuf:"varint,7,opt,name=can_send,json=canSend,proto3" json:"can_send,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Channel) Reset() {
	*x = Channel{}
	mi := &file_chat_v1_chat_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Channel) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Channel) ProtoMessage() {}

func (x *Channel) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *Channel) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Channel) GetSlug() string {
	if x != nil {
		return x.Slug
	}
	return ""
}

func (x *Channel) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Channel) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

func (x *Channel) GetCanView() bool {
	if x != nil {
		return x.CanView
	}
	return false
}

func (x *Channel) GetCanRead() bool {
	if x != nil {
		return x.CanRead
	}
	return false
}

func (x *Channel) GetCanSend() bool {
	if x != nil {
		return x.CanSend
	}
	return false
}

type ListChannelsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListChannelsRequest) Reset() {
	*x = ListChannelsRequest{}
	mi := &file_chat_v1_chat_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListChannelsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListChannelsRequest) ProtoMessage() {}

func (x *ListChannelsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type ListChannelsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*Channel             `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListChannelsResponse) Reset() {
	*x = ListChannelsResponse{}
	mi := &file_chat_v1_chat_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListChannelsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListChannelsResponse) ProtoMessage() {}

func (x *ListChannelsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *ListChannelsResponse) GetItems() []*Channel {
	if x != nil {
		return x.Items
	}
	return nil
}

type GetOnlineUsersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOnlineUsersRequest) Reset() {
	*x = GetOnlineUsersRequest{}
	mi := &file_chat_v1_chat_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOnlineUsersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOnlineUsersRequest) ProtoMessage() {}

func (x *GetOnlineUsersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type GetOnlineUsersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Users         []*User                `protobuf:"bytes,1,rep,name=users,proto3" json:"users,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOnlineUsersResponse) Reset() {
	*x = GetOnlineUsersResponse{}
	mi := &file_chat_v1_chat_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOnlineUsersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOnlineUsersResponse) ProtoMessage() {}

func (x *GetOnlineUsersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *GetOnlineUsersResponse) GetUsers() []*User {
	if x != nil {
		return x.Users
	}
	return nil
}

type GetVoiceRoomRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVoiceRoomRequest) Reset() {
	*x = GetVoiceRoomRequest{}
	mi := &file_chat_v1_chat_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVoiceRoomRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVoiceRoomRequest) ProtoMessage() {}

func (x *GetVoiceRoomRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type GetVoiceRoomResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Users           []*User                `protobuf:"bytes,1,rep,name=users,proto3" json:"users,omitempty"`
	SpeakingUserIds []int64                `protobuf:"varint,2,rep,packed,name=speaking_user_ids,json=speakingUserIds,proto3" json:"speaking_user_ids,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetVoiceRoomResponse) Reset() {
	*x = GetVoiceRoomResponse{}
	mi := &file_chat_v1_chat_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVoiceRoomResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVoiceRoomResponse) ProtoMessage() {}

func (x *GetVoiceRoomResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_v1_chat_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *GetVoiceRoomResponse) GetUsers() []*User {
	if x != nil {
		return x.Users
	}
	return nil
}

func (x *GetVoiceRoomResponse) GetSpeakingUserIds() []int64 {
	if x != nil {
		return x.SpeakingUserIds
	}
	return nil
}

var File_chat_v1_chat_proto protoreflect.FileDescriptor

func field(name string, num int32, typ descriptorpb.FieldDescriptorProto_Type, typeName string, repeated bool) *descriptorpb.FieldDescriptorProto {
	label := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
	if repeated {
		label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED
	}
	f := &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(num),
		Label:    label.Enum(),
		Type:     typ.Enum(),
		JsonName: proto.String(jsonName(name)),
	}
	if typeName != "" {
		f.TypeName = proto.String(typeName)
	}
	return f
}

func jsonName(s string) string {
	out := make([]byte, 0, len(s))
	upper := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			upper = true
			continue
		}
		if upper && 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		out = append(out, c)
	}
	return string(out)
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

func method(name, in, out string) *descriptorpb.MethodDescriptorProto {
	return &descriptorpb.MethodDescriptorProto{
		Name:       proto.String(name),
		InputType:  proto.String(".chat.v1." + in),
		OutputType: proto.String(".chat.v1." + out),
	}
}

// fileDesc повторяет chat/v1/chat.proto.
func fileDesc() *descriptorpb.FileDescriptorProto {
	const (
		tInt64  = descriptorpb.FieldDescriptorProto_TYPE_INT64
		tInt32  = descriptorpb.FieldDescriptorProto_TYPE_INT32
		tString = descriptorpb.FieldDescriptorProto_TYPE_STRING
		tBool   = descriptorpb.FieldDescriptorProto_TYPE_BOOL
		tMsg    = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
	)
	const ts = ".google.protobuf.Timestamp"

	return &descriptorpb.FileDescriptorProto{
		Name:       proto.String("chat/v1/chat.proto"),
		Package:    proto.String("chat.v1"),
		Dependency: []string{"google/protobuf/timestamp.proto"},
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/cwrk-planet/chat-service/proto/gen/chat/v1;chatv1"),
		},
		Syntax: proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			message("User",
				field("id", 1, tInt64, "", false),
				field("username", 2, tString, "", false),
				field("display_name", 3, tString, "", false),
				field("avatar_url", 4, tString, "", false),
				field("is_admin", 5, tBool, "", false),
			),
			message("ChatMessage",
				field("id", 1, tInt64, "", false),
				field("channel", 2, tString, "", false),
				field("author", 3, tMsg, ".chat.v1.User", false),
				field("content", 4, tString, "", false),
				field("html", 5, tString, "", false),
				field("reply_to_id", 6, tInt64, "", false),
				field("is_deleted", 7, tBool, "", false),
				field("edited", 8, tBool, "", false),
				field("created_at", 9, tMsg, ts, false),
				field("updated_at", 10, tMsg, ts, false),
			),
			message("GetChatHistoryRequest",
				field("channel", 1, tString, "", false),
				field("after", 2, tString, "", false),
				field("limit", 3, tInt32, "", false),
			),
			message("GetChatHistoryResponse",
				field("items", 1, tMsg, ".chat.v1.ChatMessage", true),
				field("next_cursor", 2, tString, "", false),
			),
			message("Channel",
				field("id", 1, tInt64, "", false),
				field("slug", 2, tString, "", false),
				field("name", 3, tString, "", false),
				field("priority", 4, tInt32, "", false),
				field("can_view", 5, tBool, "", false),
				field("can_read", 6, tBool, "", false),
				field("can_send", 7, tBool, "", false),
			),
			message("ListChannelsRequest"),
			message("ListChannelsResponse",
				field("items", 1, tMsg, ".chat.v1.Channel", true),
			),
			message("GetOnlineUsersRequest"),
			message("GetOnlineUsersResponse",
				field("users", 1, tMsg, ".chat.v1.User", true),
			),
			message("GetVoiceRoomRequest"),
			message("GetVoiceRoomResponse",
				field("users", 1, tMsg, ".chat.v1.User", true),
				field("speaking_user_ids", 2, tInt64, "", true),
			),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("ChatService"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("GetChatHistory", "GetChatHistoryRequest", "GetChatHistoryResponse"),
				method("ListChannels", "ListChannelsRequest", "ListChannelsResponse"),
				method("GetOnlineUsers", "GetOnlineUsersRequest", "GetOnlineUsersResponse"),
				method("GetVoiceRoom", "GetVoiceRoomRequest", "GetVoiceRoomResponse"),
			},
		}},
	}
}

func file_chat_v1_chat_proto_rawDesc() []byte {
	b, err := proto.MarshalOptions{Deterministic: true}.Marshal(fileDesc())
	if err != nil {
		panic("chatv1: marshal descriptor: " + err.Error())
	}
	return b
}

var file_chat_v1_chat_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_chat_v1_chat_proto_goTypes = []any{
	(*User)(nil),                   // 0: chat.v1.User
	(*ChatMessage)(nil),            // 1: chat.v1.ChatMessage
	(*GetChatHistoryRequest)(nil),  // 2: chat.v1.GetChatHistoryRequest
	(*GetChatHistoryResponse)(nil), // 3: chat.v1.GetChatHistoryResponse
	(*Channel)(nil),                // 4: chat.v1.Channel
	(*ListChannelsRequest)(nil),    // 5: chat.v1.ListChannelsRequest
	(*ListChannelsResponse)(nil),   // 6: chat.v1.ListChannelsResponse
	(*GetOnlineUsersRequest)(nil),  // 7: chat.v1.GetOnlineUsersRequest
	(*GetOnlineUsersResponse)(nil), // 8: chat.v1.GetOnlineUsersResponse
	(*GetVoiceRoomRequest)(nil),    // 9: chat.v1.GetVoiceRoomRequest
	(*GetVoiceRoomResponse)(nil),   // 10: chat.v1.GetVoiceRoomResponse
	(*timestamppb.Timestamp)(nil),  // 11: google.protobuf.Timestamp
}
var file_chat_v1_chat_proto_depIdxs = []int32{
	0,  // 0: chat.v1.ChatMessage.author:type_name -> chat.v1.User
	11, // 1: chat.v1.ChatMessage.created_at:type_name -> google.protobuf.Timestamp
	11, // 2: chat.v1.ChatMessage.updated_at:type_name -> google.protobuf.Timestamp
	1,  // 3: chat.v1.GetChatHistoryResponse.items:type_name -> chat.v1.ChatMessage
	4,  // 4: chat.v1.ListChannelsResponse.items:type_name -> chat.v1.Channel
	0,  // 5: chat.v1.GetOnlineUsersResponse.users:type_name -> chat.v1.User
	0,  // 6: chat.v1.GetVoiceRoomResponse.users:type_name -> chat.v1.User
	2,  // 7: chat.v1.ChatService.GetChatHistory:input_type -> chat.v1.GetChatHistoryRequest
	5,  // 8: chat.v1.ChatService.ListChannels:input_type -> chat.v1.ListChannelsRequest
	7,  // 9: chat.v1.ChatService.GetOnlineUsers:input_type -> chat.v1.GetOnlineUsersRequest
	9,  // 10: chat.v1.ChatService.GetVoiceRoom:input_type -> chat.v1.GetVoiceRoomRequest
	3,  // 11: chat.v1.ChatService.GetChatHistory:output_type -> chat.v1.GetChatHistoryResponse
	6,  // 12: chat.v1.ChatService.ListChannels:output_type -> chat.v1.ListChannelsResponse
	8,  // 13: chat.v1.ChatService.GetOnlineUsers:output_type -> chat.v1.GetOnlineUsersResponse
	10, // 14: chat.v1.ChatService.GetVoiceRoom:output_type -> chat.v1.GetVoiceRoomResponse
	11, // [11:15] is the sub-list for method output_type
	7,  // [7:11] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_chat_v1_chat_proto_init() }
func file_chat_v1_chat_proto_init() {
	if File_chat_v1_chat_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_chat_v1_chat_proto_rawDesc(),
			NumEnums:      0,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_chat_v1_chat_proto_goTypes,
		DependencyIndexes: file_chat_v1_chat_proto_depIdxs,
		MessageInfos:      file_chat_v1_chat_proto_msgTypes,
	}.Build()
	File_chat_v1_chat_proto = out.File
	file_chat_v1_chat_proto_goTypes = nil
	file_chat_v1_chat_proto_depIdxs = nil
}
