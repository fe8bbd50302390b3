package services

import (
	"errors"

	"github.com/maynagashev/playlists/internal/access"
)

// Ошибки слоя сервисов. Обработчики сопоставляют их с HTTP статусами через errors.Is.
var (
	ErrValidation    = errors.New("некорректные данные запроса")
	ErrEmailTaken    = errors.New("email уже зарегистрирован")
	ErrUnknownEmail  = errors.New("пользователь с таким email не найден")
	ErrWrongPassword = errors.New("неверный пароль")

	ErrUserNotFound          = errors.New("пользователь не найден")
	ErrPlaylistNotFound      = errors.New("плейлист не найден")
	ErrAlreadyShared         = errors.New("плейлист уже доступен этому пользователю")
	ErrShareWithSelf         = errors.New("нельзя предоставить доступ самому себе")
	ErrSongAlreadyInPlaylist = errors.New("песня уже есть в плейлисте")

	ErrInvalidImage  = errors.New("файл не является изображением JPEG или PNG")
	ErrImageTooLarge = errors.New("размер изображения превышает допустимый")

	// Ошибки политики доступа пробрасываются без изменений.
	ErrForbidden           = access.ErrForbidden
	ErrSecretQuotaExceeded = access.ErrSecretQuotaExceeded
)
