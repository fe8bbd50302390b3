// Package access содержит политику доступа к плейлистам.
// Решения принимаются только по уже загруженным данным: владелец и список пользователей с доступом.
package access

import (
	"errors"
	"slices"
)

// MaxSecretPlaylists - максимальное количество секретных плейлистов у одного пользователя.
const MaxSecretPlaylists = 10

// Operation - действие над плейлистом, для которого запрашивается доступ.
type Operation int

const (
	Read        Operation = iota // Просмотр плейлиста
	ListSongs                    // Просмотр песен плейлиста
	Update                       // Изменение названия, описания, секретности
	Delete                       // Удаление плейлиста
	AddSong                      // Добавление песни
	Share                        // Предоставление доступа другому пользователю
	ListShares                   // Просмотр пользователей с доступом
	UploadCover                  // Загрузка обложки
)

func (op Operation) String() string {
	switch op {
	case Read:
		return "read"
	case ListSongs:
		return "list-songs"
	case Update:
		return "update"
	case Delete:
		return "delete"
	case AddSong:
		return "add-song"
	case Share:
		return "share"
	case ListShares:
		return "list-shares"
	case UploadCover:
		return "upload-cover"
	default:
		return "unknown"
	}
}

// Resource описывает плейлист с точки зрения политики доступа.
type Resource struct {
	OwnerID    int64
	SharedWith []int64 // ID пользователей, которым предоставлен доступ на чтение
}

// IsOwner сообщает, является ли пользователь владельцем плейлиста.
func (r Resource) IsOwner(userID int64) bool {
	return r.OwnerID == userID
}

// IsShared сообщает, предоставлен ли пользователю доступ к плейлисту.
func (r Resource) IsShared(userID int64) bool {
	return slices.Contains(r.SharedWith, userID)
}

// Allowed решает, может ли пользователь выполнить операцию над плейлистом.
// Чтение доступно владельцу и пользователям из списка доступа, все остальное - только владельцу.
func Allowed(requesterID int64, r Resource, op Operation) bool {
	switch op {
	case Read, ListSongs:
		return r.IsOwner(requesterID) || r.IsShared(requesterID)
	case Update, Delete, AddSong, Share, ListShares, UploadCover:
		return r.IsOwner(requesterID)
	default:
		return false
	}
}

// Authorize возвращает ErrForbidden, если операция не разрешена.
func Authorize(requesterID int64, r Resource, op Operation) error {
	if !Allowed(requesterID, r, op) {
		return ErrForbidden
	}
	return nil
}

// CheckSecretQuota проверяет лимит секретных плейлистов.
// currentSecret - сколько секретных плейлистов у пользователя уже есть.
func CheckSecretQuota(wantSecret bool, currentSecret int) error {
	if wantSecret && currentSecret >= MaxSecretPlaylists {
		return ErrSecretQuotaExceeded
	}
	return nil
}

// Ошибки политики доступа.
var (
	ErrForbidden           = errors.New("доступ к плейлисту запрещен")
	ErrSecretQuotaExceeded = errors.New("достигнут лимит секретных плейлистов")
)
