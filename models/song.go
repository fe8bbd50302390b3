package models

import "time"

// Song - песня. Песни общие для всех плейлистов и уникальны по паре (name, artist).
type Song struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Artist    string    `db:"artist" json:"artist"`
	URL       string    `db:"url" json:"url"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// AddSongRequest представляет тело запроса на добавление песни в плейлист.
type AddSongRequest struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
	URL    string `json:"url"`
}

// AddSongResponse - ответ на добавление песни.
type AddSongResponse struct {
	Message string `json:"message"`
	Song    Song   `json:"song"`
}
