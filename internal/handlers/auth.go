package handlers

import (
	"log"
	"net/http"

	"github.com/maynagashev/playlists/internal/middleware"
	"github.com/maynagashev/playlists/internal/services"
	"github.com/maynagashev/playlists/models"
)

// AuthHandler обрабатывает HTTP-запросы, связанные с аутентификацией.
type AuthHandler struct {
	service services.AuthService // Зависимость от интерфейса, а не конкретной реализации
}

// NewAuthHandler создает новый экземпляр AuthHandler.
func NewAuthHandler(s services.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeJSON(w, r, "AuthHandler:Register", &req) {
		return
	}

	if req.Email == "" || req.Password == "" {
		log.Printf("[AuthHandler:Register] Пустой email или пароль при регистрации")
		writeError(w, http.StatusBadRequest, "Email и пароль обязательны")
		return
	}

	userID, err := h.service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, "AuthHandler:Register", err)
		return
	}

	writeJSON(w, http.StatusCreated, models.RegisterResponse{
		Message: "Пользователь успешно зарегистрирован",
		UserID:  userID,
	})
}

// Login обрабатывает запрос на вход пользователя.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, "AuthHandler:Login", &req) {
		return
	}

	if req.Email == "" || req.Password == "" {
		log.Printf("[AuthHandler:Login] Пустой email или пароль при входе")
		writeError(w, http.StatusBadRequest, "Email и пароль обязательны")
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, "AuthHandler:Login", err)
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{Token: token})
}

// Me возвращает профиль текущего пользователя с его плейлистами.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		log.Printf("[AuthHandler:Me] Не удалось получить пользователя из контекста")
		writeError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), user)
	if err != nil {
		writeServiceError(w, "AuthHandler:Me", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
