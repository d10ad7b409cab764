package domain

import "time"

type InvitationState string

const (
	InvitationPending  InvitationState = "PENDING"
	InvitationAccepted InvitationState = "ACCEPTED"
	InvitationExpired  InvitationState = "EXPIRED"
)

type Invitation struct {
	ID          int32      `json:"id"`
	OrgID       int32      `json:"org_id"`
	Email       string     `json:"email"`
	Role        Role       `json:"role"`
	Token       string     `json:"token"`
	InvitedByID int32      `json:"invited_by"`
	ExpiresAt   time.Time  `json:"expires_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// State is derived, never stored. ACCEPTED and EXPIRED are terminal.
func (i *Invitation) State(now time.Time) InvitationState {
	if i.AcceptedAt != nil {
		return InvitationAccepted
	}
	if now.After(i.ExpiresAt) {
		return InvitationExpired
	}
	return InvitationPending
}
