package http

import (
	"net/http"
	"strconv"

	"feedbackhub-backend/internal/domain"
	"feedbackhub-backend/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	OrganizationID int32  `json:"organization_id"`
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Register bootstraps the first user of a new organization as owner.
// POST /api/auth/register?organization_id=
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	orgID, err := strconv.ParseInt(r.URL.Query().Get("organization_id"), 10, 32)
	if err != nil || orgID <= 0 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "organization_id query parameter is required")
		return
	}

	var req registerRequest
	if err := parseJSONBody(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}

	user, token, err := h.authSvc.Register(r.Context(), int32(orgID), req.Name, req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{Token: token, User: user})
}

// Login authenticates against (organization, email, password).
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := parseJSONBody(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}
	if req.OrganizationID <= 0 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "organization_id is required")
		return
	}

	user, token, err := h.authSvc.Login(r.Context(), req.OrganizationID, req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Token: token, User: user})
}

// Me returns the caller's user row.
// GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	user, err := h.authSvc.Me(r.Context(), actor)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
