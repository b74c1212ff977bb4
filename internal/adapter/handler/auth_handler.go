package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
	"github.com/rl1809/storefront/internal/port"
)

// AuthHandler implements the login stub: fixture-backed credentials, a
// short-lived JWT, and the user blob saved in the session store. It
// provides no real account security.
type AuthHandler struct {
	catalog    *service.CatalogService
	sessions   port.SessionRepository
	secret     []byte
	sessionTTL time.Duration
}

func NewAuthHandler(catalog *service.CatalogService, sessions port.SessionRepository, secret string, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		catalog:    catalog,
		sessions:   sessions,
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
	}
}

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, ok := h.catalog.UserByEmail(req.Email)
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if user.Status == domain.UserStatusBlocked {
		writeError(w, http.StatusForbidden, "account is blocked")
		return
	}

	h.issueSession(w, r, user)
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}
	if _, exists := h.catalog.UserByEmail(req.Email); exists {
		writeError(w, http.StatusConflict, "email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not create account")
		return
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         domain.RoleCustomer,
		Status:       domain.UserStatusActive,
		JoinDate:     time.Now(),
		PasswordHash: string(hash),
	}
	h.catalog.AddUser(user)

	h.issueSession(w, r, user)
}

// Me returns the session blob for the authenticated user, falling back
// to the catalog when the session has expired.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims := ClaimsFromContext(r.Context())

	blob, err := h.sessions.GetSession(r.Context(), claims.UserID)
	if err != nil {
		log.Printf("session read failed for %s: %v", claims.UserID, err)
	}
	if blob != nil {
		var user domain.User
		if err := json.Unmarshal(blob, &user); err == nil {
			writeJSON(w, http.StatusOK, user)
			return
		}
	}

	user, ok := h.catalog.UserByID(claims.UserID)
	if !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims := ClaimsFromContext(r.Context())
	if err := h.sessions.DeleteSession(r.Context(), claims.UserID); err != nil {
		log.Printf("session delete failed for %s: %v", claims.UserID, err)
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *AuthHandler) issueSession(w http.ResponseWriter, r *http.Request, user domain.User) {
	claims := &Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(h.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	// The session blob mirrors the browser-local user record; losing it
	// only costs a catalog lookup, so failures are logged and ignored.
	if blob, err := json.Marshal(user); err == nil {
		if err := h.sessions.SaveSession(r.Context(), user.ID, blob, h.sessionTTL); err != nil {
			log.Printf("session store failed for %s: %v", user.ID, err)
		}
	}

	writeJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}
