// Package authz decides what each organization role may do.
package authz

import (
	"fmt"
	"sync"

	"widget-admin-backend/internal/database/models"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Resources guarded by organization roles
const (
	ResourceOrganization = "organization"
	ResourceMember       = "member"
	ResourceInvitation   = "invitation"
	ResourceWidget       = "widget"
	ResourceLinkRule     = "link_rule"
	ResourceWebhook      = "webhook"
	ResourceKnowledge    = "knowledge"
	ResourceAudit        = "audit"
	ResourceBilling      = "billing"
	ResourceDirectory    = "directory"
)

// Actions
const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionDelete = "delete"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// defaultPolicy grants each role its own rules; admin inherits member and owner inherits admin.
var defaultPolicy = [][]string{
	{string(models.RoleMember), ResourceOrganization, ActionRead},
	{string(models.RoleMember), ResourceMember, ActionRead},
	{string(models.RoleMember), ResourceWidget, ActionRead},
	{string(models.RoleMember), ResourceLinkRule, ActionRead},
	{string(models.RoleMember), ResourceKnowledge, ActionRead},

	{string(models.RoleAdmin), ResourceOrganization, ActionWrite},
	{string(models.RoleAdmin), ResourceMember, ActionWrite},
	{string(models.RoleAdmin), ResourceInvitation, "*"},
	{string(models.RoleAdmin), ResourceWidget, "*"},
	{string(models.RoleAdmin), ResourceLinkRule, "*"},
	{string(models.RoleAdmin), ResourceWebhook, "*"},
	{string(models.RoleAdmin), ResourceKnowledge, "*"},
	{string(models.RoleAdmin), ResourceAudit, ActionRead},
	{string(models.RoleAdmin), ResourceDirectory, ActionRead},
	{string(models.RoleAdmin), ResourceBilling, ActionRead},

	{string(models.RoleOwner), "*", "*"},
}

var defaultGrouping = [][]string{
	{string(models.RoleAdmin), string(models.RoleMember)},
	{string(models.RoleOwner), string(models.RoleAdmin)},
}

// Enforcer evaluates (role, resource, action) requests
type Enforcer struct {
	mu  sync.RWMutex
	enf *casbin.Enforcer
}

// NewEnforcer builds an enforcer loaded with the built-in role policy
func NewEnforcer() (*Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("authz: invalid model: %w", err)
	}
	enf, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("authz: failed to initialize enforcer: %w", err)
	}
	if _, err := enf.AddPolicies(defaultPolicy); err != nil {
		return nil, fmt.Errorf("authz: failed to load policies: %w", err)
	}
	if _, err := enf.AddGroupingPolicies(defaultGrouping); err != nil {
		return nil, fmt.Errorf("authz: failed to load role hierarchy: %w", err)
	}
	return &Enforcer{enf: enf}, nil
}

// Can reports whether role may perform action on resource
func (e *Enforcer) Can(role models.Role, resource, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	ok, err := e.enf.Enforce(string(role), resource, action)
	if err != nil {
		return false, fmt.Errorf("authz: enforce failed: %w", err)
	}
	return ok, nil
}
