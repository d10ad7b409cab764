// Package auth holds the tenancy and authorization guard: pure,
// deterministic decision functions consulted before every domain read
// and mutation. A nil return is ALLOW; a returned error is the DENY
// reason and is never downgraded by callers.
//
// Cross-organization access is rejected first and unconditionally.
// Entity-targeted checks report it as domain.ErrNotFound so the
// existence of rows in other organizations never leaks.
package auth

import (
	"fmt"

	"feedbackhub-backend/internal/domain"
)

// Actor is the verified identity a request acts as, decoded from the
// session token. It is passed explicitly into every service call; there
// is no ambient current-user state.
type Actor struct {
	ID    int32
	OrgID int32
	Role  domain.Role
}

// capabilities describes what a role may do beyond its own rows.
// Adding a role is one new entry here, not a scattered edit.
type capabilities struct {
	ManageUsers       bool // invite, role change, activate/deactivate
	GrantOwnerRole    bool // owner-role changes reserved to owners
	ViewAllFeedback   bool // org-wide feedback reads
	ManageAnyFeedback bool // edit/delete feedback they did not author
	CreateFeedback    bool // author feedback at all
	ViewTeam          bool // employee directory access
}

var roleCaps = map[domain.Role]capabilities{
	domain.RoleOwner: {
		ManageUsers:       true,
		GrantOwnerRole:    true,
		ViewAllFeedback:   true,
		ManageAnyFeedback: true,
		CreateFeedback:    true,
		ViewTeam:          true,
	},
	domain.RoleAdmin: {
		ManageUsers:       true,
		ViewAllFeedback:   true,
		ManageAnyFeedback: true,
		CreateFeedback:    true,
		ViewTeam:          true,
	},
	domain.RoleManager: {
		CreateFeedback: true,
		ViewTeam:       true,
	},
	domain.RoleEmployee: {},
}

func caps(r domain.Role) capabilities {
	return roleCaps[r]
}

// SameOrg reports whether the actor and a row share a tenant.
func SameOrg(actor Actor, orgID int32) bool {
	return actor.OrgID == orgID
}

// CanManageUsers gates administrative user operations (invitations,
// listings, role changes, activation).
func CanManageUsers(actor Actor) error {
	if !caps(actor.Role).ManageUsers {
		return fmt.Errorf("%w: role %s cannot manage users", domain.ErrForbidden, actor.Role)
	}
	return nil
}

// CanSetRole gates a role transition on a target user. Admins may not
// grant the owner role nor demote an owner; both are owner-only.
func CanSetRole(actor Actor, target *domain.User, newRole domain.Role) error {
	if !SameOrg(actor, target.OrgID) {
		return domain.ErrNotFound
	}
	if err := CanManageUsers(actor); err != nil {
		return err
	}
	if (newRole == domain.RoleOwner || target.Role == domain.RoleOwner) && !caps(actor.Role).GrantOwnerRole {
		return fmt.Errorf("%w: owner role changes are reserved to owners", domain.ErrForbidden)
	}
	return nil
}

// CanViewTeam gates the employee directory.
func CanViewTeam(actor Actor) error {
	if !caps(actor.Role).ViewTeam {
		return fmt.Errorf("%w: role %s cannot view the employee directory", domain.ErrForbidden, actor.Role)
	}
	return nil
}

// CanViewEmployee gates a single profile read: self, the employee's own
// manager, or an org administrator.
func CanViewEmployee(actor Actor, target *domain.User) error {
	if !SameOrg(actor, target.OrgID) {
		return domain.ErrNotFound
	}
	if actor.ID == target.ID || caps(actor.Role).ManageUsers {
		return nil
	}
	if target.ManagerID != nil && *target.ManagerID == actor.ID {
		return nil
	}
	return fmt.Errorf("%w: not your report", domain.ErrForbidden)
}

// CanCreateFeedback gates authorship: managers for their direct reports
// only (non-transitive), admins and owners for anyone in-org.
func CanCreateFeedback(actor Actor, employee *domain.User) error {
	if !SameOrg(actor, employee.OrgID) {
		return domain.ErrNotFound
	}
	c := caps(actor.Role)
	if !c.CreateFeedback {
		return fmt.Errorf("%w: role %s cannot give feedback", domain.ErrForbidden, actor.Role)
	}
	if c.ManageAnyFeedback {
		return nil
	}
	if employee.ManagerID == nil || *employee.ManagerID != actor.ID {
		return fmt.Errorf("%w: employee is not a direct report", domain.ErrNotFound)
	}
	return nil
}

// CanReadFeedback gates a single feedback read: the target employee,
// the authoring manager, a manager of the target employee, or an org
// administrator.
func CanReadFeedback(actor Actor, fb *domain.Feedback, employee *domain.User) error {
	if !SameOrg(actor, fb.OrgID) {
		return domain.ErrNotFound
	}
	if caps(actor.Role).ViewAllFeedback {
		return nil
	}
	if actor.ID == fb.EmployeeID || actor.ID == fb.ManagerID {
		return nil
	}
	if employee != nil && employee.ManagerID != nil && *employee.ManagerID == actor.ID {
		return nil
	}
	return fmt.Errorf("%w: feedback is not visible to this user", domain.ErrForbidden)
}

// CanManageFeedback gates content edits and deletion: the authoring
// manager, or an admin/owner oversight action. Administrative oversight
// never extends to the employee-owned fields (acknowledged, comment).
func CanManageFeedback(actor Actor, fb *domain.Feedback) error {
	if !SameOrg(actor, fb.OrgID) {
		return domain.ErrNotFound
	}
	if actor.ID == fb.ManagerID || caps(actor.Role).ManageAnyFeedback {
		return nil
	}
	return fmt.Errorf("%w: only the authoring manager or an administrator may modify feedback", domain.ErrForbidden)
}

// CanRespondToFeedback gates acknowledgment and commenting: only the
// feedback's target employee, regardless of role seniority.
func CanRespondToFeedback(actor Actor, fb *domain.Feedback) error {
	if !SameOrg(actor, fb.OrgID) {
		return domain.ErrNotFound
	}
	if actor.ID != fb.EmployeeID {
		return fmt.Errorf("%w: only the target employee may respond", domain.ErrForbidden)
	}
	return nil
}

// FeedbackScope describes which rows a list query may return for an
// actor. Exactly one filter applies.
type FeedbackScope struct {
	All        bool  // entire organization
	EmployeeID int32 // rows targeting this employee
	ManagerID  int32 // rows authored by, or targeting reports of, this manager
}

// ScopeForHistory returns the row filter for an employee's feedback
// history as seen by the actor.
func ScopeForHistory(actor Actor) FeedbackScope {
	c := caps(actor.Role)
	switch {
	case c.ViewAllFeedback:
		return FeedbackScope{All: true}
	case c.CreateFeedback:
		return FeedbackScope{ManagerID: actor.ID}
	default:
		return FeedbackScope{EmployeeID: actor.ID}
	}
}
