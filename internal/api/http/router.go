package http

import (
	"net/http"

	"feedbackhub-backend/internal/config"
	"feedbackhub-backend/internal/security"
	"feedbackhub-backend/internal/service"

	"github.com/gorilla/mux"
)

// Handlers groups the per-resource handlers wired into the router.
type Handlers struct {
	Auth       *AuthHandler
	Org        *OrganizationHandler
	Invitation *InvitationHandler
	User       *UserHandler
	Feedback   *FeedbackHandler
}

func NewHandlers(
	authSvc service.AuthService,
	orgSvc service.OrganizationService,
	inviteSvc service.InvitationService,
	userSvc service.UserService,
	feedbackSvc service.FeedbackService,
) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(authSvc),
		Org:        NewOrganizationHandler(orgSvc),
		Invitation: NewInvitationHandler(inviteSvc),
		User:       NewUserHandler(userSvc),
		Feedback:   NewFeedbackHandler(feedbackSvc),
	}
}

// NewRouter assembles the REST surface. Public routes carry no token;
// everything else goes through the authentication middleware.
func NewRouter(cfg *config.Config, tokens security.TokenManager, h *Handlers) http.Handler {
	r := mux.NewRouter()
	r.Use(RequestLogging)
	r.Use(Recovery)

	api := r.PathPrefix("/api").Subrouter()

	// Public surface: org setup, bootstrap registration, login,
	// invitation acceptance.
	api.HandleFunc("/health", handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/organizations", h.Org.Create).Methods(http.MethodPost)
	api.HandleFunc("/organizations", h.Org.List).Methods(http.MethodGet)
	api.HandleFunc("/auth/register", h.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/invitations/accept", h.Invitation.Accept).Methods(http.MethodPost)

	// Authenticated surface.
	secured := r.PathPrefix("/api").Subrouter()
	secured.Use(Authentication(tokens))

	secured.HandleFunc("/auth/me", h.Auth.Me).Methods(http.MethodGet)
	secured.HandleFunc("/organizations/{id:[0-9]+}", h.Org.Deactivate).Methods(http.MethodDelete)

	secured.HandleFunc("/invitations", h.Invitation.Create).Methods(http.MethodPost)
	secured.HandleFunc("/invitations", h.Invitation.List).Methods(http.MethodGet)

	secured.HandleFunc("/users", h.User.List).Methods(http.MethodGet)
	secured.HandleFunc("/users/{id:[0-9]+}", h.User.Update).Methods(http.MethodPut)
	secured.HandleFunc("/employees", h.User.ListEmployees).Methods(http.MethodGet)
	secured.HandleFunc("/employees/{id:[0-9]+}", h.User.GetEmployee).Methods(http.MethodGet)

	// Literal segments first so "received" never parses as an id.
	secured.HandleFunc("/feedback/received", h.Feedback.Received).Methods(http.MethodGet)
	secured.HandleFunc("/feedback/employee/{id:[0-9]+}", h.Feedback.ForEmployee).Methods(http.MethodGet)
	secured.HandleFunc("/feedback", h.Feedback.Create).Methods(http.MethodPost)
	secured.HandleFunc("/feedback/{id:[0-9]+}", h.Feedback.Get).Methods(http.MethodGet)
	secured.HandleFunc("/feedback/{id:[0-9]+}", h.Feedback.Update).Methods(http.MethodPut)
	secured.HandleFunc("/feedback/{id:[0-9]+}", h.Feedback.Delete).Methods(http.MethodDelete)
	secured.HandleFunc("/feedback/{id:[0-9]+}/acknowledge", h.Feedback.Acknowledge).Methods(http.MethodPost)
	secured.HandleFunc("/feedback/{id:[0-9]+}/comment", h.Feedback.Comment).Methods(http.MethodPost)

	secured.HandleFunc("/dashboard/stats", h.Feedback.Stats).Methods(http.MethodGet)

	return CORS(cfg)(r)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
