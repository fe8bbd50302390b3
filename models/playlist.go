package models

import "time"

// Playlist представляет плейлист пользователя.
type Playlist struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	IsSecret    bool      `db:"is_secret" json:"isSecret"`
	CreatorID   int64     `db:"creator_id" json:"creatorId"` // Владелец, не меняется после создания
	CoverKey    *string   `db:"cover_key" json:"coverKey"`   // Ключ обложки в файловом хранилище, может быть NULL
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// PlaylistDetail - плейлист вместе с создателем, песнями и списком пользователей с доступом.
type PlaylistDetail struct {
	Playlist
	Creator       UserSummary   `json:"creator"`
	Songs         []Song        `json:"songs"`
	SharedWith    []UserSummary `json:"sharedWith"`
	CoverImageURL string        `json:"coverImageUrl,omitempty"`
}

// SharedPlaylist - запись о предоставлении пользователю доступа к плейлисту на чтение.
type SharedPlaylist struct {
	ID         int64     `db:"id" json:"id"`
	PlaylistID int64     `db:"playlist_id" json:"playlistId"`
	UserID     int64     `db:"user_id" json:"userId"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// CreatePlaylistRequest представляет тело запроса на создание плейлиста.
type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsSecret    bool   `json:"isSecret"`
}

// UpdatePlaylistRequest - частичное обновление: nil означает "не менять".
type UpdatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsSecret    *bool   `json:"isSecret"`
}

// PlaylistsResponse - список плейлистов текущего пользователя.
type PlaylistsResponse struct {
	Playlists []Playlist `json:"playlists"`
}

// CoverResponse - ответ на загрузку обложки.
type CoverResponse struct {
	Message  string   `json:"message"`
	Playlist Playlist `json:"playlist"`
}

// ShareRequest представляет тело запроса на предоставление доступа.
type ShareRequest struct {
	UserID int64 `json:"userId"`
}

// ShareResponse - ответ на успешное предоставление доступа.
type ShareResponse struct {
	Message string         `json:"message"`
	Shared  SharedPlaylist `json:"shared"`
}
