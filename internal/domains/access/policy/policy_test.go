package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prism/internal/domains/access/policy"
	"prism/shared/constant"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected policy.Action
		ok       bool
	}{
		{input: "view", expected: policy.ActionView, ok: true},
		{input: "create", expected: policy.ActionCreate, ok: true},
		{input: "edit", expected: policy.ActionEdit, ok: true},
		{input: "delete", expected: policy.ActionDelete, ok: true},
		{input: "update", ok: false},
		{input: "", ok: false},
		{input: "VIEW", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			action, ok := policy.ParseAction(tt.input)

			assert.Equal(t, tt.ok, ok)

			if tt.ok {
				assert.Equal(t, tt.expected, action)
			}
		})
	}
}

func TestCanPerform_AdminDefaultAllows(t *testing.T) {
	evaluator := policy.Evaluator{AdminBypassesGrants: true}
	admin := policy.Subject{ID: "admin-1", Role: constant.RoleAdmin}

	for _, module := range []string{constant.ModuleBookings, constant.ModuleChalans, constant.ModuleReports} {
		for _, action := range []policy.Action{policy.ActionView, policy.ActionCreate, policy.ActionEdit, policy.ActionDelete} {
			assert.True(t, evaluator.CanPerform(admin, nil, module, action),
				"admin should be allowed %s on %s with no grant rows", action, module)
		}
	}
}

func TestCanPerform_NonAdminDefaultDenies(t *testing.T) {
	evaluator := policy.Evaluator{AdminBypassesGrants: true}

	for _, role := range []string{constant.RoleGST, constant.RoleNonGST} {
		subject := policy.Subject{ID: "user-1", Role: role}

		assert.False(t, evaluator.CanPerform(subject, nil, constant.ModuleBookings, policy.ActionView))
		assert.False(t, evaluator.CanPerform(subject, nil, constant.ModuleChalans, policy.ActionCreate))
	}
}

func TestCanPerform_ExplicitGrantIsAdditive(t *testing.T) {
	evaluator := policy.Evaluator{AdminBypassesGrants: true}
	accountant := policy.Subject{ID: "accountant-1", Role: constant.RoleNonGST}

	assert.False(t, evaluator.CanPerform(accountant, nil, constant.ModuleChalans, policy.ActionCreate))

	grants := []policy.Grant{
		{UserID: "accountant-1", Module: constant.ModuleChalans, CanView: true, CanCreate: true},
	}

	assert.True(t, evaluator.CanPerform(accountant, grants, constant.ModuleChalans, policy.ActionCreate))
	assert.True(t, evaluator.CanPerform(accountant, grants, constant.ModuleChalans, policy.ActionView))
	assert.False(t, evaluator.CanPerform(accountant, grants, constant.ModuleChalans, policy.ActionEdit))
	assert.False(t, evaluator.CanPerform(accountant, grants, constant.ModuleChalans, policy.ActionDelete))
}

func TestCanPerform_GrantForOtherUserOrModuleIgnored(t *testing.T) {
	evaluator := policy.Evaluator{AdminBypassesGrants: true}
	subject := policy.Subject{ID: "user-1", Role: constant.RoleGST}

	grants := []policy.Grant{
		{UserID: "user-2", Module: constant.ModuleBookings, CanView: true},
		{UserID: "user-1", Module: constant.ModuleReports, CanView: true},
	}

	assert.False(t, evaluator.CanPerform(subject, grants, constant.ModuleBookings, policy.ActionView))
	assert.True(t, evaluator.CanPerform(subject, grants, constant.ModuleReports, policy.ActionView))
}

func TestCanPerform_UnknownModuleFailsClosed(t *testing.T) {
	evaluator := policy.Evaluator{AdminBypassesGrants: true}
	admin := policy.Subject{ID: "admin-1", Role: constant.RoleAdmin}

	assert.False(t, evaluator.CanPerform(admin, nil, "payroll", policy.ActionView))
	assert.False(t, evaluator.CanPerform(admin, nil, "", policy.ActionView))
}

func TestCanPerform_UnknownActionFailsClosed(t *testing.T) {
	evaluator := policy.Evaluator{AdminBypassesGrants: true}
	admin := policy.Subject{ID: "admin-1", Role: constant.RoleAdmin}

	assert.False(t, evaluator.CanPerform(admin, nil, constant.ModuleBookings, policy.Action("approve")))
}

func TestCanPerform_AdminBypassFlag(t *testing.T) {
	admin := policy.Subject{ID: "admin-1", Role: constant.RoleAdmin}
	restrictive := []policy.Grant{
		{UserID: "admin-1", Module: constant.ModuleChalans},
	}

	bypassing := policy.Evaluator{AdminBypassesGrants: true}
	assert.True(t, bypassing.CanPerform(admin, restrictive, constant.ModuleChalans, policy.ActionDelete),
		"with bypass on, a restrictive row cannot limit an admin")

	strict := policy.Evaluator{AdminBypassesGrants: false}
	assert.False(t, strict.CanPerform(admin, restrictive, constant.ModuleChalans, policy.ActionDelete),
		"with bypass off, the explicit row is authoritative")
	assert.True(t, strict.CanPerform(admin, nil, constant.ModuleChalans, policy.ActionDelete),
		"with bypass off but no row, the admin role default still allows")
}

func TestCanPerform_IsPure(t *testing.T) {
	evaluator := policy.Evaluator{AdminBypassesGrants: true}
	subject := policy.Subject{ID: "user-1", Role: constant.RoleGST}
	grants := []policy.Grant{
		{UserID: "user-1", Module: constant.ModuleBookings, CanView: true, CanCreate: true, CanEdit: true},
	}

	first := evaluator.CanPerform(subject, grants, constant.ModuleBookings, policy.ActionEdit)
	second := evaluator.CanPerform(subject, grants, constant.ModuleBookings, policy.ActionEdit)

	assert.Equal(t, first, second)
	assert.True(t, first)
}
