// Package rbac materializes per-user RoleBindings across annotation-selected
// namespaces and regenerates the cluster's ArgoCD RBAC policy document.
package rbac

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"
	corev1 "k8s.io/api/core/v1"
	rbacv1 "k8s.io/api/rbac/v1"
	apimeta "k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"

	zv1 "github.com/zengarden-space/homelab-operators/apis/zengarden/v1"
	"github.com/zengarden-space/homelab-operators/internal/engine"
	"github.com/zengarden-space/homelab-operators/internal/gateway"
	"github.com/zengarden-space/homelab-operators/internal/metrics"
)

const (
	managedBy = "rbac-operator"

	labelManagedBy = "app.kubernetes.io/managed-by"
	labelRole      = "zengarden.space/role"
	labelUser      = "zengarden.space/user"

	annoRole       = "zengarden.space/role"
	annoNamespaces = "zengarden.space/namespaces"

	argocdSentinel = "@argocd"
)

var userGVK = schema.GroupVersionKind{Group: "zengarden.space", Version: "v1", Kind: "User"}

var applicationListGVK = schema.GroupVersionKind{Group: "argoproj.io", Version: "v1alpha1", Kind: "ApplicationList"}

// Reconciler implements the RBAC controller's role resolution, binding
// fan-out, and ArgoCD policy synthesis. Every dispatched event of any kind
// triggers ReconcileAll, not just events for User/ClusterRole objects.
type Reconciler struct {
	Gateway *gateway.Gateway
	Log     logr.Logger

	// RoleHierarchy overrides the default highest-role-wins precedence
	// used to pick a user's single role for the ArgoCD policy document.
	// Empty falls back to defaultRoleHierarchy.
	RoleHierarchy []string

	// ArgoCDNamespace is the namespace the argocd-rbac-cm ConfigMap lives
	// in. Defaults to "argocd" when unset.
	ArgoCDNamespace string
}

func (r *Reconciler) argocdNamespace() string {
	if r.ArgoCDNamespace == "" {
		return "argocd"
	}
	return r.ArgoCDNamespace
}

// Handlers acknowledges the kinds this controller watches for. The
// substantive work happens in ReconcileAll, wired as the engine's
// OnEveryEvent hook and periodic resync — these handlers exist only so
// dispatch metrics reflect a recognized kind rather than "unrecognized".
func (r *Reconciler) Handlers() map[string]engine.Handler {
	ack := func(ctx context.Context, rec engine.Record) error { return nil }
	return map[string]engine.Handler{
		"User":        ack,
		"ClusterRole": ack,
		"Application": ack,
	}
}

// ReconcileAll resolves the role→namespace map once, fans out RoleBindings
// for every User, and regenerates the ArgoCD policy document.
func (r *Reconciler) ReconcileAll(ctx context.Context) error {
	roleNamespaces, err := r.resolveRoleNamespaces(ctx)
	if err != nil {
		return fmt.Errorf("resolving role namespaces: %w", err)
	}

	var users zv1.UserList
	if err := r.Gateway.List(ctx, &users); err != nil {
		return fmt.Errorf("listing users: %w", err)
	}

	for i := range users.Items {
		user := &users.Items[i]
		if err := r.reconcileUser(ctx, user, roleNamespaces); err != nil {
			r.Log.Error(err, "reconciling user", "name", user.Name)
		}
	}

	if err := r.reconcileArgoCDPolicy(ctx, users.Items); err != nil {
		r.Log.Error(err, "reconciling argocd policy")
	}
	return nil
}

// resolveRoleNamespaces builds role -> [namespaces] from every annotated
// ClusterRole, expanding "@argocd" lazily and at most once per call.
func (r *Reconciler) resolveRoleNamespaces(ctx context.Context) (map[string][]string, error) {
	var roles rbacv1.ClusterRoleList
	if err := r.Gateway.List(ctx, &roles); err != nil {
		return nil, fmt.Errorf("listing cluster roles: %w", err)
	}

	result := map[string][]string{}
	seen := map[string]map[string]struct{}{}

	var argocdNamespaces []string
	var argocdLoaded bool

	for _, cr := range roles.Items {
		role := cr.Annotations[annoRole]
		nsAnno := cr.Annotations[annoNamespaces]
		if role == "" || nsAnno == "" {
			continue
		}

		for _, entry := range strings.Split(nsAnno, ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}

			var namespaces []string
			if entry == argocdSentinel {
				if !argocdLoaded {
					var err error
					argocdNamespaces, err = r.listApplicationNamespaces(ctx)
					if err != nil {
						return nil, err
					}
					argocdLoaded = true
				}
				namespaces = argocdNamespaces
			} else {
				namespaces = []string{entry}
			}

			if seen[role] == nil {
				seen[role] = map[string]struct{}{}
			}
			for _, ns := range namespaces {
				if _, dup := seen[role][ns]; dup {
					continue
				}
				seen[role][ns] = struct{}{}
				result[role] = append(result[role], ns)
			}
		}
	}
	return result, nil
}

// listApplicationNamespaces reads spec.destination.namespace off every
// argoproj.io/v1alpha1 Application, a read-only external collaborator
// this controller never writes to.
func (r *Reconciler) listApplicationNamespaces(ctx context.Context) ([]string, error) {
	list := &unstructured.UnstructuredList{}
	list.SetGroupVersionKind(applicationListGVK)

	if err := r.Gateway.List(ctx, list); err != nil {
		return nil, fmt.Errorf("listing argocd applications: %w", err)
	}

	var namespaces []string
	seen := map[string]struct{}{}
	for _, item := range list.Items {
		ns, found, err := unstructured.NestedString(item.Object, "spec", "destination", "namespace")
		if err != nil || !found || ns == "" {
			continue
		}
		if _, dup := seen[ns]; dup {
			continue
		}
		seen[ns] = struct{}{}
		namespaces = append(namespaces, ns)
	}
	return namespaces, nil
}

// reconcileUser upserts the bindings for one user's roles and patches its
// status with the ensured binding map and a Ready condition.
func (r *Reconciler) reconcileUser(ctx context.Context, user *zv1.User, roleNamespaces map[string][]string) error {
	bindings := map[string][]string{}
	enabled := user.IsEnabled()

	for _, role := range user.Spec.Roles {
		namespaces, ok := roleNamespaces[role]
		if !ok {
			continue
		}
		for _, ns := range namespaces {
			name, ensured, err := r.ensureBinding(ctx, role, ns, user.Name, user.Spec.Email, enabled)
			if err != nil {
				r.Log.Error(err, "ensuring role binding", "role", role, "namespace", ns, "user", user.Name)
				continue
			}
			if ensured {
				bindings[ns] = append(bindings[ns], name)
			}
		}
	}

	conditions := append([]metav1.Condition{}, user.Status.Conditions...)
	apimeta.SetStatusCondition(&conditions, metav1.Condition{
		Type:    "Ready",
		Status:  metav1.ConditionTrue,
		Reason:  "Reconciled",
		Message: "role bindings ensured",
	})

	return r.Gateway.PatchStatus(ctx, userGVK, "", user.Name, map[string]interface{}{
		"conditions":   conditions,
		"roleBindings": bindings,
		"lastSynced":   metav1.NewTime(time.Now().UTC()).Format(time.RFC3339),
	})
}

// ensureBinding applies an in-place subject edit: create the binding (with
// the subject) only if enabled; otherwise add/remove the subject on an
// existing binding without touching other subjects, and do nothing if the
// binding is absent and the user is disabled.
func (r *Reconciler) ensureBinding(ctx context.Context, role, namespace, userName, email string, enabled bool) (string, bool, error) {
	name := "homelab:" + role + ":" + userName
	key := types.NamespacedName{Namespace: namespace, Name: name}

	var live rbacv1.RoleBinding
	found, err := gateway.Get(ctx, r.Gateway, key, &live)
	if err != nil {
		return name, false, err
	}

	labels := map[string]string{
		labelManagedBy: managedBy,
		labelRole:      role,
		labelUser:      userName,
	}

	if !found {
		if !enabled {
			return name, false, nil
		}
		desired := &rbacv1.RoleBinding{
			ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace, Labels: labels},
			RoleRef: rbacv1.RoleRef{
				APIGroup: "rbac.authorization.k8s.io",
				Kind:     "ClusterRole",
				Name:     "homelab:" + role,
			},
			Subjects: []rbacv1.Subject{{Kind: "User", APIGroup: "rbac.authorization.k8s.io", Name: email}},
		}
		if err := r.Gateway.Create(ctx, desired); err != nil {
			return name, false, fmt.Errorf("creating role binding %s/%s: %w", namespace, name, err)
		}
		metrics.RecordRBACBinding(role, "create")
		return name, true, nil
	}

	idx := -1
	for i, s := range live.Subjects {
		if s.Kind == "User" && s.Name == email {
			idx = i
			break
		}
	}

	changed := false
	switch {
	case enabled && idx == -1:
		live.Subjects = append(live.Subjects, rbacv1.Subject{Kind: "User", APIGroup: "rbac.authorization.k8s.io", Name: email})
		changed = true
	case !enabled && idx != -1:
		live.Subjects = append(live.Subjects[:idx], live.Subjects[idx+1:]...)
		changed = true
	}
	gateway.MergeLabels(&live, labels)

	if changed {
		if err := r.Gateway.Update(ctx, &live); err != nil {
			return name, false, fmt.Errorf("updating role binding %s/%s: %w", namespace, name, err)
		}
		action := "add-subject"
		if !enabled {
			action = "remove-subject"
		}
		metrics.RecordRBACBinding(role, action)
	}
	return name, true, nil
}

// reconcileArgoCDPolicy regenerates the argocd-rbac-cm ConfigMap when the
// argocd namespace exists.
func (r *Reconciler) reconcileArgoCDPolicy(ctx context.Context, users []zv1.User) error {
	namespace := r.argocdNamespace()

	var ns corev1.Namespace
	found, err := gateway.Get(ctx, r.Gateway, types.NamespacedName{Name: namespace}, &ns)
	if err != nil {
		return fmt.Errorf("checking argocd namespace: %w", err)
	}
	if !found {
		return nil
	}

	var policy strings.Builder
	policy.WriteString(policyHeader)
	for _, user := range users {
		if !user.IsEnabled() {
			continue
		}
		role := highestRole(user.Spec.Roles, r.RoleHierarchy)
		if role == "" {
			continue
		}
		policy.WriteString(grantLine(user.Spec.Email, role))
	}

	desired := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "argocd-rbac-cm",
			Namespace: namespace,
			Labels:    map[string]string{labelManagedBy: managedBy},
		},
		Data: map[string]string{
			"policy.csv":     policy.String(),
			"policy.default": "role:readonly",
			"scopes":         "[groups, email]",
		},
	}

	return gateway.Upsert(ctx, r.Gateway, desired, func(live *corev1.ConfigMap) error {
		live.Data = desired.Data
		gateway.MergeLabels(live, desired.Labels)
		return nil
	})
}
