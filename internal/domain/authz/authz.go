// Package authz is the single decision point for role- and ownership-based
// access control. Decide is pure: no I/O, no side effects.
package authz

import "elite-paisa-backend/internal/domain/user"

type Action string

const (
	ActionCreateLoanType            Action = "createLoanType"
	ActionUpdateLoanType            Action = "updateLoanType"
	ActionDeleteLoanType            Action = "deleteLoanType"
	ActionListLoanTypes             Action = "listLoanTypes"
	ActionGetLoanTypeByID           Action = "getLoanTypeById"
	ActionApplyForLoan              Action = "applyForLoan"
	ActionViewOwnApplications       Action = "viewOwnApplications"
	ActionViewAllApplications       Action = "viewAllApplications"
	ActionViewApplicationByID       Action = "viewApplicationById"
	ActionSetApplicationStatus      Action = "setApplicationStatus"
	ActionUploadApplicationDocument Action = "uploadApplicationDocument"
	ActionViewProfileByID           Action = "viewProfileById"
	ActionViewAllProfiles           Action = "viewAllProfiles"
	ActionViewDashboard             Action = "viewDashboard"
)

type Reason string

const (
	ReasonNone             Reason = ""
	ReasonNoToken          Reason = "NoToken"
	ReasonInsufficientRole Reason = "InsufficientRole"
	ReasonNotOwner         Reason = "NotOwner"
)

// Resource carries the ownership facts a decision may need. OwnerID is the
// public id of the identity owning the resource.
type Resource struct {
	OwnerID string
}

type Decision struct {
	Allowed bool
	Reason  Reason
}

// Message renders a denial reason for the response envelope.
func (d Decision) Message() string {
	switch d.Reason {
	case ReasonNoToken:
		return "Not authorized, no token"
	case ReasonNotOwner:
		return "Access denied. You can only access your own resources."
	default:
		return "Access denied. Insufficient rights."
	}
}

func allow() Decision        { return Decision{Allowed: true} }
func deny(r Reason) Decision { return Decision{Allowed: false, Reason: r} }

var adminOnly = map[Action]bool{
	ActionCreateLoanType:       true,
	ActionUpdateLoanType:       true,
	ActionDeleteLoanType:       true,
	ActionSetApplicationStatus: true,
	ActionViewAllApplications:  true,
	ActionViewAllProfiles:      true,
	ActionViewDashboard:        true,
}

var clientOnly = map[Action]bool{
	ActionApplyForLoan:              true,
	ActionViewOwnApplications:       true,
	ActionUploadApplicationDocument: true,
}

// Decide maps (principal, action, resource) to allow/deny. Rules are checked
// in order and the first match wins; every externally reachable action maps
// to exactly one rule. A nil principal is an unauthenticated caller.
func Decide(p *user.Principal, action Action, res Resource) Decision {
	// Catalog reads are open to everyone, token or not.
	if action == ActionListLoanTypes || action == ActionGetLoanTypeByID {
		return allow()
	}
	if p == nil {
		return deny(ReasonNoToken)
	}
	if adminOnly[action] {
		if p.Role != user.RoleAdmin {
			return deny(ReasonInsufficientRole)
		}
		return allow()
	}
	if clientOnly[action] {
		if p.Role != user.RoleClient {
			return deny(ReasonInsufficientRole)
		}
		return allow()
	}
	switch action {
	case ActionViewApplicationByID, ActionViewProfileByID:
		if p.Role == user.RoleAdmin || p.ID == res.OwnerID {
			return allow()
		}
		return deny(ReasonNotOwner)
	}
	// Unknown actions are denied rather than silently allowed.
	return deny(ReasonInsufficientRole)
}
