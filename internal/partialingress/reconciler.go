package partialingress

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	zv1 "github.com/zengarden-space/homelab-operators/apis/zengarden/v1"
	"github.com/zengarden-space/homelab-operators/internal/engine"
	"github.com/zengarden-space/homelab-operators/internal/gateway"
	"github.com/zengarden-space/homelab-operators/internal/metrics"
)

const (
	managedBy = "partial-ingress-operator"

	labelManagedBy   = "app.kubernetes.io/managed-by"
	labelSource      = "partial-ingress.zengarden.space/source"
	labelReplicated  = "partial-ingress.zengarden.space/replicated"
	labelHostname    = "partial-ingress.zengarden.space/hostname"
	annoReplicatedFor = "partial-ingress.zengarden.space/replicated-for"
	annoSourcePartial = "partial-ingress.zengarden.space/source-partial-ingress"
)

var (
	partialIngressGVK      = schema.GroupVersionKind{Group: "zengarden.space", Version: "v1", Kind: "PartialIngress"}
	compositeIngressHostGVK = schema.GroupVersionKind{Group: "zengarden.space", Version: "v1", Kind: "CompositeIngressHost"}
)

// Reconciler implements the PartialIngress controller's domain logic: the
// local projection, the composite fan-out and its override subtraction,
// the orphan-replica cleanup on delete, and the read-only
// CompositeIngressHost status report.
type Reconciler struct {
	Gateway *gateway.Gateway
	Log     logr.Logger
}

// Handlers returns the engine.Handler map for the "PartialIngress" and
// "CompositeIngressHost" kinds.
func (r *Reconciler) Handlers() map[string]engine.Handler {
	return map[string]engine.Handler{
		"PartialIngress":       r.handlePartialIngress,
		"CompositeIngressHost": r.handleCompositeIngressHost,
	}
}

func (r *Reconciler) handlePartialIngress(ctx context.Context, rec engine.Record) error {
	if rec.Deleting() {
		return r.cleanupOrphanedReplicas(ctx)
	}

	var pi zv1.PartialIngress
	if err := json.Unmarshal(rec.Raw, &pi); err != nil {
		return fmt.Errorf("decoding PartialIngress %s/%s: %w", rec.Namespace, rec.Name, err)
	}
	pi.UID = types.UID(rec.UID)

	if len(pi.Spec.Rules) == 0 {
		r.Log.Info("PartialIngress has no rules, skipping", "name", pi.Name, "namespace", pi.Namespace)
		_ = r.Gateway.PatchStatus(ctx, partialIngressGVK, pi.Namespace, pi.Name, map[string]interface{}{
			"lastSynced": metav1.NewTime(time.Now().UTC()).Format(time.RFC3339),
			"syncStatus": "Failed",
			"message":    "spec has no rules",
		})
		return nil
	}
	host := pi.Spec.Rules[0].Host
	class := ingressClassOf(pi.Spec.IngressClassName)

	localName, err := r.projectLocal(ctx, &pi)
	if err != nil {
		_ = r.patchPartialIngressStatus(ctx, &pi, "", nil, "Failed", err.Error())
		return err
	}

	replicas, err := r.fanOut(ctx, &pi, host, class)
	if err != nil {
		_ = r.patchPartialIngressStatus(ctx, &pi, localName, replicas, "Failed", err.Error())
		return err
	}

	return r.patchPartialIngressStatus(ctx, &pi, localName, replicas, "Synced", "")
}

func ingressClassOf(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// projectLocal builds the same-namespace direct projection of the
// PartialIngress spec and upserts it.
func (r *Reconciler) projectLocal(ctx context.Context, pi *zv1.PartialIngress) (string, error) {
	desired := &networkingv1.Ingress{
		ObjectMeta: metav1.ObjectMeta{
			Name:      pi.Name,
			Namespace: pi.Namespace,
			Labels: map[string]string{
				labelManagedBy: managedBy,
				labelSource:    pi.Name,
			},
			Annotations: pi.Spec.Annotations,
			OwnerReferences: []metav1.OwnerReference{
				gateway.NewOwnerReference(partialIngressGVK.GroupVersion().String(), partialIngressGVK.Kind, pi.Name, pi.UID),
			},
		},
		Spec: networkingv1.IngressSpec{
			IngressClassName: pi.Spec.IngressClassName,
			Rules:            pi.Spec.Rules,
			TLS:              pi.Spec.TLS,
			DefaultBackend:   pi.Spec.DefaultBackend,
		},
	}

	err := gateway.Upsert(ctx, r.Gateway, desired, func(live *networkingv1.Ingress) error {
		live.Spec = desired.Spec
		live.Annotations = desired.Annotations
		gateway.MergeLabels(live, desired.Labels)
		live.OwnerReferences = desired.OwnerReferences
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("projecting local ingress: %w", err)
	}
	return desired.Name, nil
}

// fanOut replicates, for every matching CompositeIngressHost, each
// template ingress under the partial's hostname, carrying only paths not
// claimed by any PartialIngress (this one included) for that hostname.
func (r *Reconciler) fanOut(ctx context.Context, pi *zv1.PartialIngress, host, class string) ([]zv1.ReplicaRef, error) {
	var cihList zv1.CompositeIngressHostList
	if err := r.Gateway.List(ctx, &cihList); err != nil {
		return nil, fmt.Errorf("listing composite ingress hosts: %w", err)
	}

	overrides, err := r.buildOverrideSet(ctx, host, class)
	if err != nil {
		return nil, err
	}

	var replicas []zv1.ReplicaRef
	for i := range cihList.Items {
		cih := &cihList.Items[i]
		if cih.Spec.IngressClassName != class || !MatchesHostPattern(cih.Spec.HostPattern, host) {
			continue
		}

		templates, err := r.findTemplates(ctx, cih.Namespace, cih.Spec.BaseHost, class)
		if err != nil {
			return replicas, err
		}

		for _, tmpl := range templates {
			ref, created, err := r.replicateTemplate(ctx, cih, &tmpl, host, class, pi, overrides)
			if err != nil {
				return replicas, err
			}
			if created {
				replicas = append(replicas, ref)
			}
		}
	}
	return replicas, nil
}

// buildOverrideSet computes, for one (host, class) pair, the union of path
// strings from the first rule of every non-deleting PartialIngress whose
// class matches and whose first rule's host equals host.
func (r *Reconciler) buildOverrideSet(ctx context.Context, host, class string) (map[string]struct{}, error) {
	var list zv1.PartialIngressList
	if err := r.Gateway.List(ctx, &list); err != nil {
		return nil, fmt.Errorf("listing partial ingresses: %w", err)
	}

	set := map[string]struct{}{}
	for _, other := range list.Items {
		if other.DeletionTimestamp != nil {
			continue
		}
		if len(other.Spec.Rules) == 0 || ingressClassOf(other.Spec.IngressClassName) != class {
			continue
		}
		rule := other.Spec.Rules[0]
		if rule.Host != host || rule.HTTP == nil {
			continue
		}
		for _, p := range rule.HTTP.Paths {
			set[p.Path] = struct{}{}
		}
	}
	return set, nil
}

// findTemplates lists ingresses in namespace with the given class that
// carry a rule whose host equals baseHost.
func (r *Reconciler) findTemplates(ctx context.Context, namespace, baseHost, class string) ([]networkingv1.Ingress, error) {
	var list networkingv1.IngressList
	if err := r.Gateway.List(ctx, &list, client.InNamespace(namespace)); err != nil {
		return nil, fmt.Errorf("listing base ingresses in %s: %w", namespace, err)
	}

	var templates []networkingv1.Ingress
	for _, ing := range list.Items {
		if ingressClassOf(ing.Spec.IngressClassName) != class {
			continue
		}
		for _, rule := range ing.Spec.Rules {
			if rule.Host == baseHost {
				templates = append(templates, ing)
				break
			}
		}
	}
	return templates, nil
}

// replicateTemplate upserts (or skips, if the carry set is empty) the
// replica for one template ingress.
func (r *Reconciler) replicateTemplate(ctx context.Context, cih *zv1.CompositeIngressHost, tmpl *networkingv1.Ingress, host, class string, pi *zv1.PartialIngress, overrides map[string]struct{}) (zv1.ReplicaRef, bool, error) {
	var templateRule *networkingv1.IngressRule
	for i := range tmpl.Spec.Rules {
		if tmpl.Spec.Rules[i].Host == cih.Spec.BaseHost {
			templateRule = &tmpl.Spec.Rules[i]
			break
		}
	}
	if templateRule == nil || templateRule.HTTP == nil {
		return zv1.ReplicaRef{}, false, nil
	}

	var carry []networkingv1.HTTPIngressPath
	for _, p := range templateRule.HTTP.Paths {
		if _, overridden := overrides[p.Path]; !overridden {
			carry = append(carry, p)
		}
	}
	if len(carry) == 0 {
		return zv1.ReplicaRef{}, false, nil
	}

	hash := Hash8(host, class)
	name := tmpl.Name + "-" + hash

	tls := make([]networkingv1.IngressTLS, 0, len(tmpl.Spec.TLS))
	for _, t := range tmpl.Spec.TLS {
		entry := networkingv1.IngressTLS{Hosts: []string{host}}
		if t.SecretName != "" {
			entry.SecretName = t.SecretName + "-" + hash
		}
		tls = append(tls, entry)
	}

	annotations := map[string]string{}
	for k, v := range tmpl.Annotations {
		annotations[k] = v
	}
	annotations[annoReplicatedFor] = host
	annotations[annoSourcePartial] = pi.Namespace + "/" + pi.Name

	desired := &networkingv1.Ingress{
		ObjectMeta: metav1.ObjectMeta{
			Name:        name,
			Namespace:   cih.Namespace,
			Labels: map[string]string{
				labelManagedBy:  managedBy,
				labelReplicated: "true",
				labelHostname:   host,
			},
			Annotations: annotations,
			OwnerReferences: []metav1.OwnerReference{
				gateway.NewOwnerReference(compositeIngressHostGVK.GroupVersion().String(), compositeIngressHostGVK.Kind, cih.Name, cih.UID),
			},
		},
		Spec: networkingv1.IngressSpec{
			IngressClassName: tmpl.Spec.IngressClassName,
			Rules: []networkingv1.IngressRule{
				{
					Host: host,
					IngressRuleValue: networkingv1.IngressRuleValue{
						HTTP: &networkingv1.HTTPIngressRuleValue{Paths: carry},
					},
				},
			},
			TLS: tls,
		},
	}

	err := gateway.Upsert(ctx, r.Gateway, desired, func(live *networkingv1.Ingress) error {
		live.Spec = desired.Spec
		live.Annotations = desired.Annotations
		gateway.MergeLabels(live, desired.Labels)
		live.OwnerReferences = desired.OwnerReferences
		return nil
	})
	if err != nil {
		return zv1.ReplicaRef{}, false, fmt.Errorf("replicating ingress %s/%s: %w", cih.Namespace, name, err)
	}
	metrics.RecordIngressReplica(cih.Namespace, "upsert")

	return zv1.ReplicaRef{
		Name:          name,
		Namespace:     cih.Namespace,
		SourceIngress: cih.Namespace + "/" + tmpl.Name,
	}, true, nil
}

// cleanupOrphanedReplicas compensates for replicas being owned by the
// CompositeIngressHost rather than the PartialIngress: when a
// PartialIngress is deleted, every CIH it used to match is checked for any
// other still-matching PartialIngress; if none remain, the CIH's replicas
// are deleted explicitly.
func (r *Reconciler) cleanupOrphanedReplicas(ctx context.Context) error {
	var cihList zv1.CompositeIngressHostList
	if err := r.Gateway.List(ctx, &cihList); err != nil {
		return fmt.Errorf("listing composite ingress hosts: %w", err)
	}

	var piList zv1.PartialIngressList
	if err := r.Gateway.List(ctx, &piList); err != nil {
		return fmt.Errorf("listing partial ingresses: %w", err)
	}

	for i := range cihList.Items {
		cih := &cihList.Items[i]
		if r.hasMatchingPartial(piList.Items, cih) {
			continue
		}
		if err := r.deleteReplicasOwnedBy(ctx, cih); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reconciler) hasMatchingPartial(all []zv1.PartialIngress, cih *zv1.CompositeIngressHost) bool {
	for _, pi := range all {
		if pi.DeletionTimestamp != nil || len(pi.Spec.Rules) == 0 {
			continue
		}
		if ingressClassOf(pi.Spec.IngressClassName) != cih.Spec.IngressClassName {
			continue
		}
		if MatchesHostPattern(cih.Spec.HostPattern, pi.Spec.Rules[0].Host) {
			return true
		}
	}
	return false
}

func (r *Reconciler) deleteReplicasOwnedBy(ctx context.Context, cih *zv1.CompositeIngressHost) error {
	var list networkingv1.IngressList
	if err := r.Gateway.List(ctx, &list, client.InNamespace(cih.Namespace), client.MatchingLabels{labelReplicated: "true"}); err != nil {
		return fmt.Errorf("listing replicated ingresses in %s: %w", cih.Namespace, err)
	}

	for i := range list.Items {
		ing := &list.Items[i]
		if !ownedBy(ing.OwnerReferences, cih.Name) {
			continue
		}
		if err := r.Gateway.DeleteIfExists(ctx, ing); err != nil {
			return fmt.Errorf("deleting orphaned replica %s/%s: %w", ing.Namespace, ing.Name, err)
		}
		metrics.RecordIngressReplica(cih.Namespace, "delete")
	}
	return nil
}

func ownedBy(refs []metav1.OwnerReference, name string) bool {
	for _, ref := range refs {
		if ref.Kind == compositeIngressHostGVK.Kind && ref.Name == name {
			return true
		}
	}
	return false
}

// handleCompositeIngressHost produces a read-only status report: the count
// of base ingresses discovered under the CIH's baseHost and class. Replica
// lifecycle for this kind is handled entirely by owner-reference garbage
// collection; no other action is taken.
func (r *Reconciler) handleCompositeIngressHost(ctx context.Context, rec engine.Record) error {
	if rec.Deleting() {
		return nil
	}

	var cih zv1.CompositeIngressHost
	if err := json.Unmarshal(rec.Raw, &cih); err != nil {
		return fmt.Errorf("decoding CompositeIngressHost %s/%s: %w", rec.Namespace, rec.Name, err)
	}

	templates, err := r.findTemplates(ctx, cih.Namespace, cih.Spec.BaseHost, cih.Spec.IngressClassName)
	if err != nil {
		return err
	}

	return r.Gateway.PatchStatus(ctx, compositeIngressHostGVK, cih.Namespace, cih.Name, map[string]interface{}{
		"baseIngressCount": len(templates),
		"lastSynced":       metav1.NewTime(time.Now().UTC()).Format(time.RFC3339),
	})
}

func (r *Reconciler) patchPartialIngressStatus(ctx context.Context, pi *zv1.PartialIngress, localName string, replicas []zv1.ReplicaRef, syncStatus, message string) error {
	fields := map[string]interface{}{
		"lastSynced": metav1.NewTime(time.Now().UTC()).Format(time.RFC3339),
		"syncStatus": syncStatus,
	}
	if localName != "" {
		fields["localIngressName"] = localName
	}
	if replicas != nil {
		fields["replicas"] = replicas
	}
	if message != "" {
		fields["message"] = message
	}
	if err := r.Gateway.PatchStatus(ctx, partialIngressGVK, pi.Namespace, pi.Name, fields); err != nil {
		r.Log.Error(err, "patching PartialIngress status", "name", pi.Name, "namespace", pi.Namespace)
	}
	if message != "" {
		return fmt.Errorf("%s", message)
	}
	return nil
}
