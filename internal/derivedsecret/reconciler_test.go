package derivedsecret

import (
	"context"
	"testing"
	"time"

	"github.com/go-logr/logr/testr"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	zv1 "github.com/zengarden-space/homelab-operators/apis/zengarden/v1"
	"github.com/zengarden-space/homelab-operators/internal/config"
	"github.com/zengarden-space/homelab-operators/internal/engine"
	"github.com/zengarden-space/homelab-operators/internal/gateway"
)

func newTestReconciler(t *testing.T, objs ...runtime.Object) (*Reconciler, *fake.ClientBuilder) {
	t.Helper()
	scheme := runtime.NewScheme()
	if err := clientgoscheme.AddToScheme(scheme); err != nil {
		t.Fatal(err)
	}
	if err := zv1.AddToScheme(scheme); err != nil {
		t.Fatal(err)
	}

	builder := fake.NewClientBuilder().WithScheme(scheme).WithRuntimeObjects(objs...)
	c := builder.Build()

	return &Reconciler{
		Gateway: gateway.New(c, scheme),
		Master:  "test-master-password",
		Params:  config.DefaultArgon2Params(),
		Log:     testr.New(t),
	}, builder
}

func derivedSecretRecord(name, namespace string, deleting bool, spec string) engine.Record {
	raw := []byte(`{"kind":"DerivedSecret","metadata":{"name":"` + name + `","namespace":"` + namespace + `"},"spec":` + spec + `}`)
	return engine.Record{
		Kind:      "DerivedSecret",
		Name:      name,
		Namespace: namespace,
		Raw:       raw,
		EventType: engine.EventAdded,
	}
}

func TestHandleCreatesSecretWithDerivedFields(t *testing.T) {
	r, _ := newTestReconciler(t)
	ctx := context.Background()

	rec := derivedSecretRecord("db-creds", "default", false, `{"password":16,"username":8}`)
	if err := r.handle(ctx, rec); err != nil {
		t.Fatalf("handle() error = %v", err)
	}

	var secret corev1.Secret
	if err := r.Gateway.Get(ctx, types.NamespacedName{Name: "db-creds", Namespace: "default"}, &secret); err != nil {
		t.Fatalf("expected Secret to exist: %v", err)
	}

	if len(secret.Data["password"]) != 16 {
		t.Errorf("password field length = %d, want 16", len(secret.Data["password"]))
	}
	if len(secret.Data["username"]) != 8 {
		t.Errorf("username field length = %d, want 8", len(secret.Data["username"]))
	}
}

func TestHandleIsDeterministicAcrossReconciles(t *testing.T) {
	r, _ := newTestReconciler(t)
	ctx := context.Background()

	rec := derivedSecretRecord("db-creds", "default", false, `{"password":16}`)
	if err := r.handle(ctx, rec); err != nil {
		t.Fatal(err)
	}
	var first corev1.Secret
	if err := r.Gateway.Get(ctx, types.NamespacedName{Name: "db-creds", Namespace: "default"}, &first); err != nil {
		t.Fatal(err)
	}

	if err := r.handle(ctx, rec); err != nil {
		t.Fatal(err)
	}
	var second corev1.Secret
	if err := r.Gateway.Get(ctx, types.NamespacedName{Name: "db-creds", Namespace: "default"}, &second); err != nil {
		t.Fatal(err)
	}

	if string(first.Data["password"]) != string(second.Data["password"]) {
		t.Fatalf("derived value changed across reconciles: %q != %q", first.Data["password"], second.Data["password"])
	}
}

func TestHandlePreservesUnmanagedKeys(t *testing.T) {
	r, _ := newTestReconciler(t)
	ctx := context.Background()

	rec := derivedSecretRecord("db-creds", "default", false, `{"password":16}`)
	if err := r.handle(ctx, rec); err != nil {
		t.Fatal(err)
	}

	var secret corev1.Secret
	if err := r.Gateway.Get(ctx, types.NamespacedName{Name: "db-creds", Namespace: "default"}, &secret); err != nil {
		t.Fatal(err)
	}
	secret.Data["manually-added"] = []byte("keep-me")
	if err := r.Gateway.Update(ctx, &secret); err != nil {
		t.Fatal(err)
	}

	if err := r.handle(ctx, rec); err != nil {
		t.Fatal(err)
	}

	var after corev1.Secret
	if err := r.Gateway.Get(ctx, types.NamespacedName{Name: "db-creds", Namespace: "default"}, &after); err != nil {
		t.Fatal(err)
	}
	if string(after.Data["manually-added"]) != "keep-me" {
		t.Fatalf("unmanaged key was not preserved, got %q", after.Data["manually-added"])
	}
}

func TestHandleSkipsNonIntegerFields(t *testing.T) {
	r, _ := newTestReconciler(t)
	ctx := context.Background()

	rec := derivedSecretRecord("db-creds", "default", false, `{"password":16,"bad":"not-a-number"}`)
	if err := r.handle(ctx, rec); err != nil {
		t.Fatal(err)
	}

	var secret corev1.Secret
	if err := r.Gateway.Get(ctx, types.NamespacedName{Name: "db-creds", Namespace: "default"}, &secret); err != nil {
		t.Fatal(err)
	}
	if _, ok := secret.Data["bad"]; ok {
		t.Fatal("expected non-integer field to be skipped")
	}
	if len(secret.Data["password"]) != 16 {
		t.Fatal("expected valid field to still be derived")
	}
}

func TestHandleDeletingIsNoOp(t *testing.T) {
	r, _ := newTestReconciler(t)
	ctx := context.Background()

	rec := derivedSecretRecord("db-creds", "default", true, `{"password":16}`)
	rec.DeletionTimestamp = nil
	rec2 := rec
	rec2.EventType = engine.EventDeleted
	rec2.Raw = []byte(`{"kind":"DerivedSecret","metadata":{"name":"db-creds","namespace":"default","deletionTimestamp":"2024-01-01T00:00:00Z"}}`)

	deletedAt := metav1.NewTime(mustParseRFC3339(t, "2024-01-01T00:00:00Z"))
	rec2.DeletionTimestamp = &deletedAt

	if err := r.handle(ctx, rec2); err != nil {
		t.Fatalf("handle() on deleting record should no-op, got error = %v", err)
	}

	var secret corev1.Secret
	err := r.Gateway.Get(ctx, types.NamespacedName{Name: "db-creds", Namespace: "default"}, &secret)
	if err == nil {
		t.Fatal("expected no Secret to have been created for a deleting record")
	}
}

func mustParseRFC3339(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}
