package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ulil-albab/MasjidManager/internal/auth"
)

type Handler struct {
	service      *Service
	jwtManager   *auth.JWTManager
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errorDetail ...string)
}

func NewHandler(
	service *Service,
	jwtManager *auth.JWTManager,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errorDetail ...string),
) *Handler {
	if service == nil || jwtManager == nil {
		log.Fatal("Service and JWT manager must not be nil")
		return nil
	}
	if respondJSON == nil || respondError == nil {
		log.Fatal("Respond functions must not be nil")
		return nil
	}
	return &Handler{
		service:      service,
		jwtManager:   jwtManager,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.Register(req.Name, req.Email, req.Password)
	if err != nil {
		h.handleServiceError(w, err, "registration")
		return
	}

	h.startSession(w, account, http.StatusCreated)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	h.startSession(w, account, http.StatusOK)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.SetSessionCookie(w, "")
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Berhasil logout",
	})
}

// CurrentUser returns the account behind the session; it sits behind the
// Authenticate middleware.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, auth.ErrMissingToken.Error())
		return
	}

	account, err := h.service.GetByID(identity.ID)
	if err != nil {
		h.handleServiceError(w, err, "current user")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"data": account,
	})
}

func (h *Handler) startSession(w http.ResponseWriter, account *User, status int) {
	token, err := h.jwtManager.GenerateToken(account.ID)
	if err != nil {
		log.Printf("Error signing session token: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Terjadi kesalahan pada server")
		return
	}
	auth.SetSessionCookie(w, token)

	h.respondJSON(w, status, map[string]interface{}{
		"data": account,
	})
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, ErrFieldsRequired),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrPasswordTooShort),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrCredentialsRequired),
		errors.Is(err, ErrInvalidCredentials):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUserNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("Error during %s: %v", operation, err)
		h.respondError(w, http.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}
