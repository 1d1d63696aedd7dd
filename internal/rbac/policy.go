package rbac

// defaultRoleHierarchy is the precedence used to pick a user's single
// highest role for the ArgoCD policy document when the operator hasn't
// overridden it via config.Defaults.RoleHierarchy.
var defaultRoleHierarchy = []string{"cluster-admin", "system-admin", "platform-operator", "app-developer"}

// policyHeader is the static set of ArgoCD permission-grant lines that
// apply to every cluster regardless of which users are enrolled. The exact
// text is part of the RBAC controller's public contract with ArgoCD's RBAC
// model, so it's kept as a constant rather than re-derived. Roles are
// hierarchical: a user should hold exactly one, and higher roles do not
// automatically inherit lower ones in this table — each role's lines are
// spelled out in full.
const policyHeader = `# ============================================
# Application Developer Role
# ============================================
# Can work with apps in the 'apps' project only
p, role:app-developer, applications, get, apps/*, allow
p, role:app-developer, applications, sync, apps/*, allow
p, role:app-developer, applications, override, apps/*, allow
p, role:app-developer, applications, action/*, apps/*, allow
p, role:app-developer, logs, get, apps/*, allow
p, role:app-developer, exec, create, apps/*, allow

# ============================================
# Platform Operator Role
# ============================================
# Full access to apps project
p, role:platform-operator, applications, *, apps/*, allow
p, role:platform-operator, logs, get, */*, allow
p, role:platform-operator, exec, create, */*, allow

# Can view default project apps (but not modify)
p, role:platform-operator, applications, get, default/*, allow

# Can manage projects and repositories
p, role:platform-operator, projects, get, *, allow
p, role:platform-operator, projects, create, *, allow
p, role:platform-operator, projects, update, *, allow
p, role:platform-operator, repositories, get, *, allow
p, role:platform-operator, repositories, create, *, allow
p, role:platform-operator, repositories, update, *, allow

# ============================================
# System Administrator Role
# ============================================
# Full access to all projects and ArgoCD management
p, role:system-admin, applications, *, */*, allow
p, role:system-admin, logs, *, */*, allow
p, role:system-admin, exec, *, */*, allow
p, role:system-admin, projects, *, *, allow
p, role:system-admin, repositories, *, *, allow
p, role:system-admin, certificates, *, *, allow
p, role:system-admin, gpgkeys, *, *, allow
p, role:system-admin, accounts, get, *, allow
p, role:system-admin, accounts, update, *, allow

# ============================================
# Cluster Admin Role
# ============================================
# Break-glass full access
p, role:cluster-admin, *, *, *, allow

# ============================================
# Role Assignments (Generated from User CRDs)
# ============================================
`

// highestRole returns the first entry of hierarchy present in roles, or ""
// if none match. An empty hierarchy falls back to defaultRoleHierarchy.
func highestRole(roles []string, hierarchy []string) string {
	if len(hierarchy) == 0 {
		hierarchy = defaultRoleHierarchy
	}
	has := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		has[r] = struct{}{}
	}
	for _, candidate := range hierarchy {
		if _, ok := has[candidate]; ok {
			return candidate
		}
	}
	return ""
}

// grantLine formats one ArgoCD policy.csv "g" line for an enabled user.
func grantLine(email, role string) string {
	return "g, " + email + ", role:" + role + "\n"
}
