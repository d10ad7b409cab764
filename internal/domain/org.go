package domain

import "time"

type Organization struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain,omitempty"` // email-domain hint for auto-assignment, never enforced
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
