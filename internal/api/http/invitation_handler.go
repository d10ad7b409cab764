package http

import (
	"net/http"

	"feedbackhub-backend/internal/domain"
	"feedbackhub-backend/internal/service"
)

type InvitationHandler struct {
	inviteSvc service.InvitationService
}

func NewInvitationHandler(inviteSvc service.InvitationService) *InvitationHandler {
	return &InvitationHandler{inviteSvc: inviteSvc}
}

type createInvitationRequest struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

type acceptInvitationRequest struct {
	Token    string `json:"token"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Create issues an invitation for a new member.
// POST /api/invitations (admin/owner)
func (h *InvitationHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	var req createInvitationRequest
	if err := parseJSONBody(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}
	inv, err := h.inviteSvc.Invite(r.Context(), actor, req.Email, req.Role)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

// List returns the org's pending invitations.
// GET /api/invitations (admin/owner)
func (h *InvitationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	invites, err := h.inviteSvc.ListPending(r.Context(), actor)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invites)
}

// Accept consumes an invitation token and creates the user.
// POST /api/invitations/accept (public)
func (h *InvitationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	var req acceptInvitationRequest
	if err := parseJSONBody(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}
	user, token, err := h.inviteSvc.Accept(r.Context(), req.Token, req.Name, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{Token: token, User: user})
}
