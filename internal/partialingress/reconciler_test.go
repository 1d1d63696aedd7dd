package partialingress

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-logr/logr/testr"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	zv1 "github.com/zengarden-space/homelab-operators/apis/zengarden/v1"
	"github.com/zengarden-space/homelab-operators/internal/engine"
	"github.com/zengarden-space/homelab-operators/internal/gateway"
)

func newPartialIngressTestReconciler(t *testing.T, objs ...client.Object) *Reconciler {
	t.Helper()
	scheme := runtime.NewScheme()
	if err := clientgoscheme.AddToScheme(scheme); err != nil {
		t.Fatal(err)
	}
	if err := zv1.AddToScheme(scheme); err != nil {
		t.Fatal(err)
	}

	c := fake.NewClientBuilder().WithScheme(scheme).WithObjects(objs...).
		WithStatusSubresource(&zv1.PartialIngress{}, &zv1.CompositeIngressHost{}).Build()
	return &Reconciler{Gateway: gateway.New(c, scheme), Log: testr.New(t)}
}

func httpPath(path, serviceName string) networkingv1.HTTPIngressPath {
	pt := networkingv1.PathTypePrefix
	return networkingv1.HTTPIngressPath{
		Path:     path,
		PathType: &pt,
		Backend: networkingv1.IngressBackend{
			Service: &networkingv1.IngressServiceBackend{
				Name: serviceName,
				Port: networkingv1.ServiceBackendPort{Number: 80},
			},
		},
	}
}

func baseIngress(name, namespace, class, host string, paths ...networkingv1.HTTPIngressPath) *networkingv1.Ingress {
	return &networkingv1.Ingress{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
		Spec: networkingv1.IngressSpec{
			IngressClassName: &class,
			Rules: []networkingv1.IngressRule{{
				Host: host,
				IngressRuleValue: networkingv1.IngressRuleValue{
					HTTP: &networkingv1.HTTPIngressRuleValue{Paths: paths},
				},
			}},
		},
	}
}

func partialIngressRecord(t *testing.T, pi *zv1.PartialIngress) engine.Record {
	t.Helper()
	raw, err := json.Marshal(pi)
	if err != nil {
		t.Fatal(err)
	}
	return engine.Record{
		Kind:      "PartialIngress",
		Name:      pi.Name,
		Namespace: pi.Namespace,
		UID:       string(pi.UID),
		Raw:       raw,
		EventType: engine.EventAdded,
	}
}

func TestProjectLocalCreatesSameNamespaceIngress(t *testing.T) {
	class := "nginx"
	pi := &zv1.PartialIngress{
		ObjectMeta: metav1.ObjectMeta{Name: "checkout", Namespace: "team-a", UID: types.UID("pi-uid")},
		Spec: zv1.PartialIngressSpec{
			IngressClassName: &class,
			Rules: []networkingv1.IngressRule{{
				Host: "checkout.staging.example.com",
				IngressRuleValue: networkingv1.IngressRuleValue{
					HTTP: &networkingv1.HTTPIngressRuleValue{Paths: []networkingv1.HTTPIngressPath{httpPath("/", "checkout-svc")}},
				},
			}},
		},
	}

	r := newPartialIngressTestReconciler(t)
	ctx := context.Background()

	if err := r.handlePartialIngress(ctx, partialIngressRecord(t, pi)); err != nil {
		t.Fatalf("handlePartialIngress() error = %v", err)
	}

	var ing networkingv1.Ingress
	if err := r.Gateway.Get(ctx, types.NamespacedName{Name: "checkout", Namespace: "team-a"}, &ing); err != nil {
		t.Fatalf("expected local ingress to exist: %v", err)
	}
	if ing.Spec.Rules[0].Host != "checkout.staging.example.com" {
		t.Errorf("unexpected host: %s", ing.Spec.Rules[0].Host)
	}
}

func TestHandlePartialIngressWithNoRulesAcknowledges(t *testing.T) {
	pi := &zv1.PartialIngress{
		ObjectMeta: metav1.ObjectMeta{Name: "broken", Namespace: "team-a"},
	}
	r := newPartialIngressTestReconciler(t, pi)

	if err := r.handlePartialIngress(context.Background(), partialIngressRecord(t, pi)); err != nil {
		t.Fatalf("expected no error for PartialIngress with no rules, got %v", err)
	}

	var live zv1.PartialIngress
	if err := r.Gateway.Get(context.Background(), types.NamespacedName{Name: "broken", Namespace: "team-a"}, &live); err != nil {
		t.Fatalf("expected PartialIngress to still exist: %v", err)
	}
	if live.Status.SyncStatus != "Failed" || live.Status.Message != "spec has no rules" {
		t.Fatalf("unexpected status: %+v", live.Status)
	}
}

func TestFanOutReplicatesTemplateAndSubtractsOverrides(t *testing.T) {
	class := "nginx"
	cih := &zv1.CompositeIngressHost{
		ObjectMeta: metav1.ObjectMeta{Name: "shared-host", Namespace: "platform", UID: types.UID("cih-uid")},
		Spec: zv1.CompositeIngressHostSpec{
			BaseHost:         "app.base.example.com",
			HostPattern:      "*.staging.example.com",
			IngressClassName: class,
		},
	}
	template := baseIngress("checkout-base", "platform", class, "app.base.example.com",
		httpPath("/", "checkout-svc"), httpPath("/admin", "admin-svc"))

	overridingOther := &zv1.PartialIngress{
		ObjectMeta: metav1.ObjectMeta{Name: "admin-override", Namespace: "team-b"},
		Spec: zv1.PartialIngressSpec{
			IngressClassName: &class,
			Rules: []networkingv1.IngressRule{{
				Host: "checkout.staging.example.com",
				IngressRuleValue: networkingv1.IngressRuleValue{
					HTTP: &networkingv1.HTTPIngressRuleValue{Paths: []networkingv1.HTTPIngressPath{httpPath("/admin", "team-b-admin-svc")}},
				},
			}},
		},
	}

	pi := &zv1.PartialIngress{
		ObjectMeta: metav1.ObjectMeta{Name: "checkout", Namespace: "team-a", UID: types.UID("pi-uid")},
		Spec: zv1.PartialIngressSpec{
			IngressClassName: &class,
			Rules: []networkingv1.IngressRule{{
				Host: "checkout.staging.example.com",
				IngressRuleValue: networkingv1.IngressRuleValue{
					HTTP: &networkingv1.HTTPIngressRuleValue{Paths: []networkingv1.HTTPIngressPath{httpPath("/", "checkout-svc")}},
				},
			}},
		},
	}

	r := newPartialIngressTestReconciler(t, cih, template, overridingOther)
	ctx := context.Background()

	if err := r.handlePartialIngress(ctx, partialIngressRecord(t, pi)); err != nil {
		t.Fatalf("handlePartialIngress() error = %v", err)
	}

	wantName := "checkout-base-" + Hash8("checkout.staging.example.com", class)
	var replica networkingv1.Ingress
	if err := r.Gateway.Get(ctx, types.NamespacedName{Name: wantName, Namespace: "platform"}, &replica); err != nil {
		t.Fatalf("expected replica ingress %s to exist: %v", wantName, err)
	}

	paths := replica.Spec.Rules[0].HTTP.Paths
	if len(paths) != 1 || paths[0].Path != "/" {
		t.Fatalf("expected only the non-overridden path to carry over, got %+v", paths)
	}
}

func TestCleanupOrphanedReplicasDeletesWhenNoPartialIngressMatches(t *testing.T) {
	class := "nginx"
	cih := &zv1.CompositeIngressHost{
		ObjectMeta: metav1.ObjectMeta{Name: "shared-host", Namespace: "platform", UID: types.UID("cih-uid")},
		Spec: zv1.CompositeIngressHostSpec{
			BaseHost:         "app.base.example.com",
			HostPattern:      "*.staging.example.com",
			IngressClassName: class,
		},
	}
	replica := &networkingv1.Ingress{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "checkout-base-abcd1234",
			Namespace: "platform",
			Labels:    map[string]string{labelReplicated: "true"},
			OwnerReferences: []metav1.OwnerReference{
				gateway.NewOwnerReference("zengarden.space/v1", "CompositeIngressHost", "shared-host", types.UID("cih-uid")),
			},
		},
		Spec: networkingv1.IngressSpec{
			Rules: []networkingv1.IngressRule{{Host: "checkout.staging.example.com"}},
		},
	}

	r := newPartialIngressTestReconciler(t, cih, replica)
	ctx := context.Background()

	if err := r.cleanupOrphanedReplicas(ctx); err != nil {
		t.Fatalf("cleanupOrphanedReplicas() error = %v", err)
	}

	var check networkingv1.Ingress
	err := r.Gateway.Get(ctx, types.NamespacedName{Name: "checkout-base-abcd1234", Namespace: "platform"}, &check)
	if err == nil {
		t.Fatal("expected orphaned replica to be deleted")
	}
}
