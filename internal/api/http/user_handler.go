package http

import (
	"net/http"
	"strconv"

	"feedbackhub-backend/internal/domain"
	"feedbackhub-backend/internal/service"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

type updateUserRequest struct {
	Role         *domain.Role `json:"role,omitempty"`
	IsActive     *bool        `json:"is_active,omitempty"`
	ManagerID    *int32       `json:"manager_id,omitempty"`
	ClearManager bool         `json:"clear_manager,omitempty"`
}

// List returns every user in the caller's org.
// GET /api/users (admin/owner)
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	users, err := h.userSvc.ListUsers(r.Context(), actor)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// Update changes role, activation or manager assignment.
// PUT /api/users/{id} (admin/owner)
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateUserRequest
	if err := parseJSONBody(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}
	user, err := h.userSvc.UpdateUser(r.Context(), actor, id, service.UpdateUserParams{
		Role:         req.Role,
		IsActive:     req.IsActive,
		ManagerID:    req.ManagerID,
		ClearManager: req.ClearManager,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// ListEmployees returns the caller's team directory with feedback
// aggregates.
// GET /api/employees (manager+)
func (h *UserHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	employees, err := h.userSvc.ListEmployees(r.Context(), actor)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

// GetEmployee returns a single profile, visibility per the guard.
// GET /api/employees/{id}
func (h *UserHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	employee, err := h.userSvc.GetEmployee(r.Context(), actor, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

// pathID parses a route variable as an id, writing the validation
// failure itself so callers can just return.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid "+name)
		return 0, false
	}
	return int32(id), true
}
