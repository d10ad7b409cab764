package domain

import "time"

type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// CanManageReports reports whether a user holding this role may appear
// as another user's manager_id.
func (r Role) CanManageReports() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleManager:
		return true
	}
	return false
}

type User struct {
	ID           int32      `json:"id"`
	OrgID        int32      `json:"org_id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	ManagerID    *int32     `json:"manager_id,omitempty"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// EmployeeSummary is the manager-facing directory row: a direct report
// plus aggregates over the feedback they have received.
type EmployeeSummary struct {
	ID               int32      `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	FeedbackCount    int32      `json:"feedback_count"`
	LastFeedbackDate *time.Time `json:"last_feedback_date,omitempty"`
	AvgSentiment     float64    `json:"avg_sentiment"`
}
