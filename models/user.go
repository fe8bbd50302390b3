package models

import "time"

// User представляет пользователя системы.
// Тэги `db` используются для маппинга с полями БД с помощью sqlx.
// Тэги `json` используются для (де)сериализации JSON.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"` // Не отправляем хеш пароля в JSON
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// UserSummary - публичное представление пользователя (создатель плейлиста, получатели доступа).
type UserSummary struct {
	ID    int64  `db:"id" json:"id"`
	Email string `db:"email" json:"email"`
}

// Profile представляет ответ GET /me.
type Profile struct {
	ID              int64      `json:"id"`
	Email           string     `json:"email"`
	Playlists       []Playlist `json:"playlists"`
	SharedPlaylists []Playlist `json:"sharedPlaylists"`
}

// RegisterRequest представляет тело запроса на регистрацию.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse представляет тело ответа при успешной регистрации.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginRequest представляет тело запроса на вход.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse представляет тело ответа при успешном входе.
type LoginResponse struct {
	Token string `json:"token"`
}

// MessageResponse - универсальный ответ с сообщением (в том числе об ошибке).
type MessageResponse struct {
	Message string `json:"message"`
}
