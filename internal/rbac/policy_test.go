package rbac

import "testing"

func TestHighestRolePicksMostPrivileged(t *testing.T) {
	cases := []struct {
		roles []string
		want  string
	}{
		{[]string{"app-developer"}, "app-developer"},
		{[]string{"app-developer", "platform-operator"}, "platform-operator"},
		{[]string{"app-developer", "cluster-admin", "system-admin"}, "cluster-admin"},
		{[]string{"unknown-role"}, ""},
		{nil, ""},
	}

	for _, tc := range cases {
		got := highestRole(tc.roles, nil)
		if got != tc.want {
			t.Errorf("highestRole(%v) = %q, want %q", tc.roles, got, tc.want)
		}
	}
}

func TestHighestRoleHonorsOverriddenHierarchy(t *testing.T) {
	hierarchy := []string{"app-developer", "platform-operator", "system-admin", "cluster-admin"}
	got := highestRole([]string{"cluster-admin", "app-developer"}, hierarchy)
	if got != "app-developer" {
		t.Fatalf("highestRole() with overridden hierarchy = %q, want app-developer", got)
	}
}

func TestGrantLineFormat(t *testing.T) {
	got := grantLine("alice@example.com", "platform-operator")
	want := "g, alice@example.com, role:platform-operator\n"
	if got != want {
		t.Fatalf("grantLine() = %q, want %q", got, want)
	}
}
