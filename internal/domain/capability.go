package domain

type Capability uint8

const (
	CapView Capability = 1 << iota
	CapRead
	CapSend
	CapAdmin
)

func (c Capability) String() string {
	switch c {
	case CapView:
		return "view"
	case CapRead:
		return "read"
	case CapSend:
		return "send"
	case CapAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

type Capabilities struct {
	View  bool `json:"can_view"`
	Read  bool `json:"can_read"`
	Send  bool `json:"can_send"`
	Admin bool `json:"is_admin"`
}

func (c Capabilities) Has(cap Capability) bool {
	switch cap {
	case CapView:
		return c.View
	case CapRead:
		return c.Read
	case CapSend:
		return c.Send
	case CapAdmin:
		return c.Admin
	default:
		return false
	}
}

// Resolve вычисляет права пользователя в канале.
// Админ получает всё. Если есть override, его флаги заменяют дефолты канала целиком.
func Resolve(id Identity, ch Channel, ov *Override) Capabilities {
	if id.IsAdmin {
		return Capabilities{View: true, Read: true, Send: true, Admin: true}
	}
	if ov != nil {
		return Capabilities{View: ov.CanView, Read: ov.CanRead, Send: ov.CanSend}
	}
	return Capabilities{View: ch.Defaults.View, Read: ch.Defaults.Read, Send: ch.Defaults.Send}
}
