package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

const RolePengurus = "pengurus"

// Identity is the authenticated caller as the middleware sees it.
type Identity struct {
	ID   string
	Role string
}

type IdentityProvider interface {
	IdentityByID(id string) (Identity, error)
}

type contextKey int

const identityKey contextKey = 0

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

type Service struct {
	jwtManager *JWTManager
	identities IdentityProvider
}

func NewService(jwtManager *JWTManager, identities IdentityProvider) *Service {
	return &Service{jwtManager: jwtManager, identities: identities}
}

// Authenticate resolves the session cookie to an identity and stores it in
// the request context.
func (s *Service) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, ErrMissingToken.Error())
			return
		}

		userID, err := s.jwtManager.ValidateToken(cookie.Value)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, ErrInvalidToken.Error())
			return
		}

		identity, err := s.identities.IdentityByID(userID)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, ErrInvalidToken.Error())
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePengurus additionally restricts the route to administrators.
func (s *Service) RequirePengurus(next http.Handler) http.Handler {
	return s.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok || identity.Role != RolePengurus {
			writeJSONError(w, http.StatusForbidden, "Anda tidak memiliki akses")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
