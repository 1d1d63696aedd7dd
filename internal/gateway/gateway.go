// Package gateway is the thin typed facade over the Kubernetes API that
// every reconciler writes through. It centralizes the idempotent
// GET-then-CREATE/REPLACE/DELETE contract so each controller's domain
// logic only has to describe the desired object.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Gateway wraps a controller-runtime client without ever registering a
// watch or informer: every call below is a direct, synchronous API
// round-trip.
type Gateway struct {
	client.Client
	Scheme *runtime.Scheme
}

func New(c client.Client, scheme *runtime.Scheme) *Gateway {
	return &Gateway{Client: c, Scheme: scheme}
}

// Upsert applies the GET; CREATE-if-absent; REPLACE-if-present contract.
// desired must already carry the identity (name/namespace)
// and any owner references/labels the caller wants persisted; mutate is
// called with the fetched live object so callers can preserve fields they
// don't manage (e.g. DerivedSecret's unmanaged keys) before the REPLACE.
func Upsert[T client.Object](ctx context.Context, g *Gateway, desired T, mutate func(live T) error) error {
	key := client.ObjectKeyFromObject(desired)
	live := desired.DeepCopyObject().(T)

	err := g.Get(ctx, key, live)
	switch {
	case apierrors.IsNotFound(err):
		if err := g.Create(ctx, desired); err != nil {
			return fmt.Errorf("creating %T %s: %w", desired, key, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("getting %T %s: %w", desired, key, err)
	}

	if mutate != nil {
		if err := mutate(live); err != nil {
			return fmt.Errorf("merging %T %s: %w", desired, key, err)
		}
	}
	live.SetResourceVersion(desired.GetResourceVersion())
	if err := g.Update(ctx, live); err != nil {
		return fmt.Errorf("updating %T %s: %w", desired, key, err)
	}
	return nil
}

// DeleteIfExists issues a DELETE and treats 404 as success: not-found on
// delete is never an error.
func (g *Gateway) DeleteIfExists(ctx context.Context, obj client.Object) error {
	if err := g.Delete(ctx, obj); err != nil && !apierrors.IsNotFound(err) {
		return fmt.Errorf("deleting %T %s/%s: %w", obj, obj.GetNamespace(), obj.GetName(), err)
	}
	return nil
}

// Get fills obj and returns (true, nil) if found, (false, nil) on 404, and
// (false, err) on any other error: GET returns absent, not an error.
func Get[T client.Object](ctx context.Context, g *Gateway, key types.NamespacedName, obj T) (bool, error) {
	if err := g.Client.Get(ctx, key, obj); err != nil {
		if apierrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SetControllerOwnerRef sets owner on child with controller=true,
// blockOwnerDeletion=true via metav1.NewControllerRef.
func SetControllerOwnerRef(owner client.Object, child client.Object, gvk schema.GroupVersionKind) {
	child.SetOwnerReferences(append(child.GetOwnerReferences(), *metav1.NewControllerRef(owner, gvk)))
}

// MergeLabels sets each key in add on obj's label map, creating the map if
// necessary, without disturbing labels it doesn't own.
func MergeLabels(obj client.Object, add map[string]string) {
	labels := obj.GetLabels()
	if labels == nil {
		labels = map[string]string{}
	}
	for k, v := range add {
		labels[k] = v
	}
	obj.SetLabels(labels)
}

// NewOwnerReference builds a controller owner reference from the bare
// identity fields carried by an engine.Record, for callers that only have
// an object header rather than a typed client.Object to hand to
// metav1.NewControllerRef.
func NewOwnerReference(apiVersion, kind, name string, uid types.UID) metav1.OwnerReference {
	isController := true
	blockDeletion := true
	return metav1.OwnerReference{
		APIVersion:         apiVersion,
		Kind:               kind,
		Name:               name,
		UID:                uid,
		Controller:         &isController,
		BlockOwnerDeletion: &blockDeletion,
	}
}

// PatchStatus PATCHes the /status subresource of the named object with a
// JSON merge patch built from fields. It operates against an unstructured
// view so callers never need to round-trip the object's (possibly
// loosely-typed) spec just to touch status.
func (g *Gateway) PatchStatus(ctx context.Context, gvk schema.GroupVersionKind, namespace, name string, fields map[string]interface{}) error {
	obj := &unstructured.Unstructured{}
	obj.SetGroupVersionKind(gvk)
	obj.SetNamespace(namespace)
	obj.SetName(name)

	body, err := json.Marshal(map[string]interface{}{"status": fields})
	if err != nil {
		return fmt.Errorf("encoding status patch for %s/%s: %w", namespace, name, err)
	}

	if err := g.Status().Patch(ctx, obj, client.RawPatch(types.MergePatchType, body)); err != nil {
		return fmt.Errorf("patching status for %s %s/%s: %w", gvk.Kind, namespace, name, err)
	}
	return nil
}
