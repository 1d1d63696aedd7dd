package rbac

import (
	"context"
	"strings"
	"testing"

	"github.com/go-logr/logr/testr"
	corev1 "k8s.io/api/core/v1"
	rbacv1 "k8s.io/api/rbac/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	zv1 "github.com/zengarden-space/homelab-operators/apis/zengarden/v1"
	"github.com/zengarden-space/homelab-operators/internal/gateway"
)

func newRBACTestReconciler(t *testing.T, objs ...client.Object) *Reconciler {
	t.Helper()
	scheme := runtime.NewScheme()
	if err := clientgoscheme.AddToScheme(scheme); err != nil {
		t.Fatal(err)
	}
	if err := zv1.AddToScheme(scheme); err != nil {
		t.Fatal(err)
	}

	c := fake.NewClientBuilder().WithScheme(scheme).WithObjects(objs...).
		WithStatusSubresource(&zv1.User{}).Build()
	return &Reconciler{Gateway: gateway.New(c, scheme), Log: testr.New(t)}
}

func boolPtr(b bool) *bool { return &b }

func TestEnsureBindingCreatesWhenEnabledAndAbsent(t *testing.T) {
	r := newRBACTestReconciler(t)
	ctx := context.Background()

	name, ensured, err := r.ensureBinding(ctx, "app-developer", "team-a", "alice", "alice@example.com", true)
	if err != nil {
		t.Fatalf("ensureBinding() error = %v", err)
	}
	if !ensured {
		t.Fatal("expected binding to be ensured")
	}
	if name != "homelab:app-developer:alice" {
		t.Fatalf("unexpected binding name: %s", name)
	}

	var rb rbacv1.RoleBinding
	if err := r.Gateway.Get(ctx, types.NamespacedName{Name: name, Namespace: "team-a"}, &rb); err != nil {
		t.Fatalf("expected RoleBinding to exist: %v", err)
	}
	if len(rb.Subjects) != 1 || rb.Subjects[0].Name != "alice@example.com" {
		t.Fatalf("unexpected subjects: %+v", rb.Subjects)
	}
}

func TestEnsureBindingNoOpWhenDisabledAndAbsent(t *testing.T) {
	r := newRBACTestReconciler(t)
	ctx := context.Background()

	name, ensured, err := r.ensureBinding(ctx, "app-developer", "team-a", "bob", "bob@example.com", false)
	if err != nil {
		t.Fatalf("ensureBinding() error = %v", err)
	}
	if ensured {
		t.Fatal("expected ensureBinding to report false when disabled and absent")
	}

	var rb rbacv1.RoleBinding
	err = r.Gateway.Get(ctx, types.NamespacedName{Name: name, Namespace: "team-a"}, &rb)
	if err == nil {
		t.Fatal("expected no RoleBinding to have been created")
	}
}

func TestEnsureBindingAddsSubjectWithoutDisturbingOthers(t *testing.T) {
	existing := &rbacv1.RoleBinding{
		ObjectMeta: metav1.ObjectMeta{Name: "homelab:app-developer:alice", Namespace: "team-a"},
		RoleRef:    rbacv1.RoleRef{APIGroup: "rbac.authorization.k8s.io", Kind: "ClusterRole", Name: "homelab:app-developer"},
		Subjects:   []rbacv1.Subject{{Kind: "User", APIGroup: "rbac.authorization.k8s.io", Name: "carol@example.com"}},
	}
	r := newRBACTestReconciler(t, existing)
	ctx := context.Background()

	_, ensured, err := r.ensureBinding(ctx, "app-developer", "team-a", "alice", "alice@example.com", true)
	if err != nil {
		t.Fatalf("ensureBinding() error = %v", err)
	}
	if !ensured {
		t.Fatal("expected binding to be ensured")
	}

	var rb rbacv1.RoleBinding
	if err := r.Gateway.Get(ctx, types.NamespacedName{Name: "homelab:app-developer:alice", Namespace: "team-a"}, &rb); err != nil {
		t.Fatal(err)
	}
	names := map[string]bool{}
	for _, s := range rb.Subjects {
		names[s.Name] = true
	}
	if !names["carol@example.com"] || !names["alice@example.com"] {
		t.Fatalf("expected both subjects present, got %+v", rb.Subjects)
	}
}

func TestEnsureBindingRemovesSubjectWhenDisabled(t *testing.T) {
	existing := &rbacv1.RoleBinding{
		ObjectMeta: metav1.ObjectMeta{Name: "homelab:app-developer:alice", Namespace: "team-a"},
		RoleRef:    rbacv1.RoleRef{APIGroup: "rbac.authorization.k8s.io", Kind: "ClusterRole", Name: "homelab:app-developer"},
		Subjects: []rbacv1.Subject{
			{Kind: "User", APIGroup: "rbac.authorization.k8s.io", Name: "carol@example.com"},
			{Kind: "User", APIGroup: "rbac.authorization.k8s.io", Name: "alice@example.com"},
		},
	}
	r := newRBACTestReconciler(t, existing)
	ctx := context.Background()

	_, _, err := r.ensureBinding(ctx, "app-developer", "team-a", "alice", "alice@example.com", false)
	if err != nil {
		t.Fatalf("ensureBinding() error = %v", err)
	}

	var rb rbacv1.RoleBinding
	if err := r.Gateway.Get(ctx, types.NamespacedName{Name: "homelab:app-developer:alice", Namespace: "team-a"}, &rb); err != nil {
		t.Fatal(err)
	}
	if len(rb.Subjects) != 1 || rb.Subjects[0].Name != "carol@example.com" {
		t.Fatalf("expected only carol to remain, got %+v", rb.Subjects)
	}
}

func TestResolveRoleNamespacesParsesAnnotations(t *testing.T) {
	role := &rbacv1.ClusterRole{
		ObjectMeta: metav1.ObjectMeta{
			Name: "homelab:app-developer",
			Annotations: map[string]string{
				annoRole:       "app-developer",
				annoNamespaces: "team-a, team-b, team-a",
			},
		},
	}
	r := newRBACTestReconciler(t, role)

	result, err := r.resolveRoleNamespaces(context.Background())
	if err != nil {
		t.Fatalf("resolveRoleNamespaces() error = %v", err)
	}
	got := result["app-developer"]
	if len(got) != 2 {
		t.Fatalf("expected duplicate namespace to be deduped, got %+v", got)
	}
}

func TestReconcileUserPatchesStatus(t *testing.T) {
	role := &rbacv1.ClusterRole{
		ObjectMeta: metav1.ObjectMeta{
			Name: "homelab:app-developer",
			Annotations: map[string]string{
				annoRole:       "app-developer",
				annoNamespaces: "team-a",
			},
		},
	}
	user := &zv1.User{
		ObjectMeta: metav1.ObjectMeta{Name: "alice"},
		Spec:       zv1.UserSpec{Email: "alice@example.com", Roles: []string{"app-developer"}, Enabled: boolPtr(true)},
	}
	r := newRBACTestReconciler(t, role, user)
	ctx := context.Background()

	roleNamespaces, err := r.resolveRoleNamespaces(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.reconcileUser(ctx, user, roleNamespaces); err != nil {
		t.Fatalf("reconcileUser() error = %v", err)
	}

	var rb rbacv1.RoleBinding
	if err := r.Gateway.Get(ctx, types.NamespacedName{Name: "homelab:app-developer:alice", Namespace: "team-a"}, &rb); err != nil {
		t.Fatalf("expected role binding to be created: %v", err)
	}

	var live zv1.User
	if err := r.Gateway.Get(ctx, types.NamespacedName{Name: "alice"}, &live); err != nil {
		t.Fatal(err)
	}
	if got := live.Status.RoleBindings["team-a"]; len(got) != 1 || got[0] != "homelab:app-developer:alice" {
		t.Fatalf("unexpected status roleBindings: %+v", live.Status.RoleBindings)
	}
}

func TestReconcileArgoCDPolicyGeneratesExpectedConfigMap(t *testing.T) {
	argocdNS := &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "argocd"}}
	r := newRBACTestReconciler(t, argocdNS)
	ctx := context.Background()

	users := []zv1.User{
		{
			ObjectMeta: metav1.ObjectMeta{Name: "alice"},
			Spec:       zv1.UserSpec{Email: "alice@example.com", Roles: []string{"app-developer", "platform-operator"}, Enabled: boolPtr(true)},
		},
		{
			ObjectMeta: metav1.ObjectMeta{Name: "bob"},
			Spec:       zv1.UserSpec{Email: "bob@example.com", Roles: []string{"app-developer"}, Enabled: boolPtr(false)},
		},
	}

	if err := r.reconcileArgoCDPolicy(ctx, users); err != nil {
		t.Fatalf("reconcileArgoCDPolicy() error = %v", err)
	}

	var cm corev1.ConfigMap
	if err := r.Gateway.Get(ctx, types.NamespacedName{Name: "argocd-rbac-cm", Namespace: "argocd"}, &cm); err != nil {
		t.Fatalf("expected ConfigMap to exist: %v", err)
	}

	policy := cm.Data["policy.csv"]
	wantAlice := grantLine("alice@example.com", "platform-operator")
	if !strings.Contains(policy, wantAlice) {
		t.Fatalf("expected policy to contain %q, got %q", wantAlice, policy)
	}
	if strings.Contains(policy, "bob@example.com") {
		t.Fatalf("expected disabled user to be excluded, got %q", policy)
	}
}

func TestReconcileArgoCDPolicySkipsWhenNamespaceAbsent(t *testing.T) {
	r := newRBACTestReconciler(t)
	ctx := context.Background()

	if err := r.reconcileArgoCDPolicy(ctx, nil); err != nil {
		t.Fatalf("reconcileArgoCDPolicy() error = %v", err)
	}

	var cm corev1.ConfigMap
	err := r.Gateway.Get(ctx, types.NamespacedName{Name: "argocd-rbac-cm", Namespace: "argocd"}, &cm)
	if err == nil {
		t.Fatal("expected no ConfigMap when argocd namespace does not exist")
	}
}

func TestReconcileArgoCDPolicyHonorsNamespaceAndHierarchyOverrides(t *testing.T) {
	argocdNS := &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "gitops"}}
	r := newRBACTestReconciler(t, argocdNS)
	r.ArgoCDNamespace = "gitops"
	r.RoleHierarchy = []string{"app-developer", "platform-operator", "system-admin", "cluster-admin"}
	ctx := context.Background()

	users := []zv1.User{
		{
			ObjectMeta: metav1.ObjectMeta{Name: "alice"},
			Spec:       zv1.UserSpec{Email: "alice@example.com", Roles: []string{"app-developer", "platform-operator"}, Enabled: boolPtr(true)},
		},
	}

	if err := r.reconcileArgoCDPolicy(ctx, users); err != nil {
		t.Fatalf("reconcileArgoCDPolicy() error = %v", err)
	}

	var cm corev1.ConfigMap
	if err := r.Gateway.Get(ctx, types.NamespacedName{Name: "argocd-rbac-cm", Namespace: "gitops"}, &cm); err != nil {
		t.Fatalf("expected ConfigMap in overridden namespace: %v", err)
	}

	wantAlice := grantLine("alice@example.com", "app-developer")
	if !strings.Contains(cm.Data["policy.csv"], wantAlice) {
		t.Fatalf("expected overridden hierarchy to pick app-developer, got %q", cm.Data["policy.csv"])
	}
}
