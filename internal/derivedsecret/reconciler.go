package derivedsecret

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"

	"github.com/zengarden-space/homelab-operators/internal/config"
	"github.com/zengarden-space/homelab-operators/internal/engine"
	"github.com/zengarden-space/homelab-operators/internal/gateway"
	"github.com/zengarden-space/homelab-operators/internal/metrics"
)

const (
	managedBy   = "derived-secret-operator"
	labelManagedBy   = "app.kubernetes.io/managed-by"
	labelDerivedFrom = "zengarden.space/derived-from"
)

var gvk = schema.GroupVersionKind{Group: "zengarden.space", Version: "v1", Kind: "DerivedSecret"}

// wireObject is the loosely-typed view of an incoming DerivedSecret event:
// spec values are decoded lazily so a non-integer length can be skipped
// per-field instead of failing the whole object.
type wireObject struct {
	Metadata struct {
		Name      string `json:"name"`
		Namespace string `json:"namespace"`
		UID       string `json:"uid"`
	} `json:"metadata"`
	Spec map[string]json.RawMessage `json:"spec"`
}

// Reconciler implements the DerivedSecret controller's domain logic.
type Reconciler struct {
	Gateway *gateway.Gateway
	Master  string
	Params  config.Argon2Params
	Log     logr.Logger
}

// Handler returns the engine.Handler to register for the "DerivedSecret" kind.
func (r *Reconciler) Handler() engine.Handler {
	return r.handle
}

func (r *Reconciler) handle(ctx context.Context, rec engine.Record) error {
	if rec.Deleting() {
		// The target Secret carries a controller owner reference; cluster
		// GC removes it automatically.
		return nil
	}

	var obj wireObject
	if err := json.Unmarshal(rec.Raw, &obj); err != nil {
		return fmt.Errorf("decoding DerivedSecret %s/%s: %w", rec.Namespace, rec.Name, err)
	}

	id := Identity(obj.Metadata.Namespace, obj.Metadata.Name)
	effective := make(map[string]int, len(obj.Spec))
	for field, raw := range obj.Spec {
		var length int
		if err := json.Unmarshal(raw, &length); err != nil || length <= 0 {
			r.Log.Info("skipping non-integer derived secret field", "derivedSecret", id, "field", field)
			continue
		}
		effective[field] = length
	}

	if len(effective) == 0 {
		r.Log.Info("no valid fields, skipping secret creation", "derivedSecret", id)
		return r.patchStatus(ctx, obj, "", "Synced", "no valid fields in spec")
	}

	data := make(map[string][]byte, len(effective))
	for field, length := range effective {
		value := Derive(r.Master, id, field, length, r.Params)
		data[field] = []byte(value)
		metrics.RecordDerivedField(obj.Metadata.Namespace)
	}

	desired := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      obj.Metadata.Name,
			Namespace: obj.Metadata.Namespace,
			Labels: map[string]string{
				labelManagedBy:   managedBy,
				labelDerivedFrom: obj.Metadata.Name,
			},
			OwnerReferences: []metav1.OwnerReference{
				gateway.NewOwnerReference(gvk.GroupVersion().String(), gvk.Kind, obj.Metadata.Name, types.UID(obj.Metadata.UID)),
			},
		},
		Type: corev1.SecretTypeOpaque,
		Data: data,
	}

	err := gateway.Upsert(ctx, r.Gateway, desired, func(live *corev1.Secret) error {
		// Preserve unmanaged keys: only the keys produced by the current
		// request are overwritten.
		if live.Data == nil {
			live.Data = map[string][]byte{}
		}
		for k, v := range desired.Data {
			live.Data[k] = v
		}
		gateway.MergeLabels(live, desired.Labels)
		live.Type = corev1.SecretTypeOpaque
		live.OwnerReferences = desired.OwnerReferences
		return nil
	})
	if err != nil {
		_ = r.patchStatus(ctx, obj, "", "Failed", err.Error())
		return err
	}

	return r.patchStatus(ctx, obj, obj.Metadata.Name, "Synced", "")
}

func (r *Reconciler) patchStatus(ctx context.Context, obj wireObject, secretName, syncStatus, message string) error {
	fields := map[string]interface{}{
		"lastSynced": metav1.NewTime(time.Now().UTC()).Format(time.RFC3339),
		"syncStatus": syncStatus,
	}
	if secretName != "" {
		fields["secretName"] = secretName
	}
	if message != "" {
		fields["message"] = message
	}
	if err := r.Gateway.PatchStatus(ctx, gvk, obj.Metadata.Namespace, obj.Metadata.Name, fields); err != nil {
		// Status-patch failures are logged but never propagated.
		r.Log.Error(err, "patching DerivedSecret status", "name", obj.Metadata.Name, "namespace", obj.Metadata.Namespace)
	}
	return nil
}
