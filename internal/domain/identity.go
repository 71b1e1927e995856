package domain

// Identity — пользователь, загруженный один раз на соединение.
type Identity struct {
	ID          int64  `db:"id"`
	Username    string `db:"username"`
	DisplayName string `db:"display_name"`
	AvatarURL   string `db:"avatar_url"`
	IsAdmin     bool   `db:"is_admin"`
}

// Name возвращает отображаемое имя, падая обратно на username.
func (i Identity) Name() string {
	if i.DisplayName != "" {
		return i.DisplayName
	}
	return i.Username
}
