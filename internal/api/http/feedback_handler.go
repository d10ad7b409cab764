package http

import (
	"net/http"

	"feedbackhub-backend/internal/domain"
	"feedbackhub-backend/internal/service"
)

type FeedbackHandler struct {
	feedbackSvc service.FeedbackService
}

func NewFeedbackHandler(feedbackSvc service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackSvc: feedbackSvc}
}

type feedbackRequest struct {
	EmployeeID   int32            `json:"employee_id"`
	Strengths    string           `json:"strengths"`
	Improvements string           `json:"improvements"`
	Sentiment    domain.Sentiment `json:"sentiment"`
	Tags         []string         `json:"tags"`
}

type commentRequest struct {
	Comment string `json:"comment"`
}

// Create authors a new feedback item.
// POST /api/feedback (manager+)
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	var req feedbackRequest
	if err := parseJSONBody(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}
	fb, err := h.feedbackSvc.Create(r.Context(), actor, service.FeedbackParams{
		EmployeeID:   req.EmployeeID,
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		Sentiment:    req.Sentiment,
		Tags:         req.Tags,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, fb)
}

// Get returns one feedback item, visibility per the guard.
// GET /api/feedback/{id}
func (h *FeedbackHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	fb, err := h.feedbackSvc.Get(r.Context(), actor, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fb)
}

// Update edits the content fields; acknowledgment and the employee
// comment are never touched.
// PUT /api/feedback/{id} (author or admin/owner)
func (h *FeedbackHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req feedbackRequest
	if err := parseJSONBody(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}
	fb, err := h.feedbackSvc.Update(r.Context(), actor, id, service.FeedbackParams{
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		Sentiment:    req.Sentiment,
		Tags:         req.Tags,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fb)
}

// Delete hard-deletes a feedback item.
// DELETE /api/feedback/{id} (author or admin/owner)
func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.feedbackSvc.Delete(r.Context(), actor, id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "feedback deleted"})
}

// Received returns the caller's own feedback.
// GET /api/feedback/received
func (h *FeedbackHandler) Received(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	items, err := h.feedbackSvc.Received(r.Context(), actor)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ForEmployee returns one employee's history, scoped per the guard.
// GET /api/feedback/employee/{id}
func (h *FeedbackHandler) ForEmployee(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	items, err := h.feedbackSvc.ForEmployee(r.Context(), actor, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Acknowledge flips the one-way flag for the target employee.
// POST /api/feedback/{id}/acknowledge
func (h *FeedbackHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.feedbackSvc.Acknowledge(r.Context(), actor, id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "feedback acknowledged"})
}

// Comment stores the employee's response.
// POST /api/feedback/{id}/comment
func (h *FeedbackHandler) Comment(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req commentRequest
	if err := parseJSONBody(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := h.feedbackSvc.Comment(r.Context(), actor, id, req.Comment); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "comment added"})
}

// Stats returns the caller's dashboard aggregates.
// GET /api/dashboard/stats (manager+)
func (h *FeedbackHandler) Stats(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	stats, err := h.feedbackSvc.ManagerStats(r.Context(), actor)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
