// Package policy answers "may this user perform this action on this module".
// It is a pure function of the user's role and the explicit grant rows the
// caller supplies: no storage, no side effects, safe to call from any number
// of goroutines.
package policy

import (
	"prism/shared/constant"
)

type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// ParseAction maps a wire string to an Action. The second return is false for
// anything unrecognised; evaluation treats that as a denial, never an error.
func ParseAction(value string) (Action, bool) {
	switch Action(value) {
	case ActionView, ActionCreate, ActionEdit, ActionDelete:
		return Action(value), true
	default:
		return "", false
	}
}

// knownModules is the closed set of module names grants can apply to.
// Requests against anything else fail closed.
var knownModules = map[string]struct{}{
	constant.ModuleBookings:  {},
	constant.ModuleChalans:   {},
	constant.ModuleCustomers: {},
	constant.ModuleProjects:  {},
	constant.ModuleRooms:     {},
	constant.ModuleEditors:   {},
	constant.ModuleLeaves:    {},
	constant.ModuleReports:   {},
	constant.ModuleUsers:     {},
	constant.ModuleAccess:    {},
	constant.ModuleCompanies: {},
}

// KnownModule reports whether the module name is one the evaluator recognises.
func KnownModule(module string) bool {
	_, ok := knownModules[module]

	return ok
}

// Subject is the authenticated identity being checked.
type Subject struct {
	ID   string
	Role string
}

// Grant is one explicit per-user per-module capability row. A row, when
// present, is the full answer for its module: each flag stands on its own.
type Grant struct {
	UserID    string
	Module    string
	CanView   bool
	CanCreate bool
	CanEdit   bool
	CanDelete bool
}

// Allows returns the flag matching the action.
func (g Grant) Allows(action Action) bool {
	switch action {
	case ActionView:
		return g.CanView
	case ActionCreate:
		return g.CanCreate
	case ActionEdit:
		return g.CanEdit
	case ActionDelete:
		return g.CanDelete
	default:
		return false
	}
}

// Evaluator holds the single policy knob. The seed data never writes a
// restrictive row for an admin, so whether such a row should be able to
// restrict one is configuration, not a hardcoded answer.
type Evaluator struct {
	// AdminBypassesGrants, when true, makes the admin role unconditional:
	// explicit grant rows are ignored for admins.
	AdminBypassesGrants bool
}

// CanPerform evaluates the request against the supplied grant snapshot.
//
// An explicit row for (subject, module) overrides the role default. With no
// row, admins are allowed everything and every other role nothing: explicit
// grants are purely additive for non-admins. Unknown modules and unknown
// actions are denied.
func (e Evaluator) CanPerform(subject Subject, grants []Grant, module string, action Action) bool {
	if !KnownModule(module) {
		return false
	}

	if _, ok := ParseAction(string(action)); !ok {
		return false
	}

	isAdmin := subject.Role == constant.RoleAdmin

	if isAdmin && e.AdminBypassesGrants {
		return true
	}

	for _, grant := range grants {
		if grant.UserID == subject.ID && grant.Module == module {
			return grant.Allows(action)
		}
	}

	return isAdmin
}
