package http

import (
	"net/http"

	"feedbackhub-backend/internal/service"
)

type OrganizationHandler struct {
	orgSvc service.OrganizationService
}

func NewOrganizationHandler(orgSvc service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgSvc: orgSvc}
}

type createOrganizationRequest struct {
	Name   string `json:"name"`
	Domain string `json:"domain,omitempty"`
}

// Create registers a new organization for the setup flow.
// POST /api/organizations
func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrganizationRequest
	if err := parseJSONBody(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}
	org, err := h.orgSvc.Create(r.Context(), req.Name, req.Domain)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, org)
}

// Deactivate soft-disables the caller's organization.
// DELETE /api/organizations/{id} (owner)
func (h *OrganizationHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.orgSvc.Deactivate(r.Context(), actor, id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "organization deactivated"})
}

// List returns active organizations for the login org-picker.
// GET /api/organizations
func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.orgSvc.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orgs)
}
