package grafana

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"

	zv1 "github.com/zengarden-space/homelab-operators/apis/zengarden/v1"
	"github.com/zengarden-space/homelab-operators/internal/engine"
	"github.com/zengarden-space/homelab-operators/internal/gateway"
)

const (
	familyAlertRules = "alert-rules"
	familyPolicies   = "policies"
	familyMuteTimings = "mute-timings"
	familyTemplates  = "templates"

	pathAlertRules  = "/api/v1/provisioning/alert-rules"
	pathPolicies    = "/api/v1/provisioning/policies"
	pathMuteTimings = "/api/v1/provisioning/mute-timings"
	pathTemplates   = "/api/v1/provisioning/templates"
)

var (
	alertRuleGVK    = schema.GroupVersionKind{Group: "monitoring.zengarden.space", Version: "v1", Kind: "GrafanaAlertRule"}
	policyGVK       = schema.GroupVersionKind{Group: "monitoring.zengarden.space", Version: "v1", Kind: "GrafanaNotificationPolicy"}
	muteTimingGVK   = schema.GroupVersionKind{Group: "monitoring.zengarden.space", Version: "v1", Kind: "GrafanaMuteTiming"}
	templateGVK     = schema.GroupVersionKind{Group: "monitoring.zengarden.space", Version: "v1", Kind: "GrafanaNotificationTemplate"}
)

// Reconciler mirrors the four Grafana alerting CRD kinds into a remote
// Grafana instance's provisioning API.
type Reconciler struct {
	Gateway *gateway.Gateway
	Log     logr.Logger

	// NewAPI is overridable in tests to substitute an in-memory fake for
	// the real HTTP client.
	NewAPI func(creds Credentials, family string) API
}

func (r *Reconciler) api(creds Credentials, family string) API {
	if r.NewAPI != nil {
		return r.NewAPI(creds, family)
	}
	return NewHTTPAPI(creds, family)
}

// Handlers returns the engine.Handler map for the four Grafana kinds.
// Synchronization events never reach these handlers: a bundle's objects
// belong to whichever kind it was issued for, so a single kind's handler
// cannot speak for all four families. See ReconcileAll, wired through the
// engine's OnSynchronization hook instead.
func (r *Reconciler) Handlers() map[string]engine.Handler {
	return map[string]engine.Handler{
		"GrafanaAlertRule":            r.handleAlertRule,
		"GrafanaNotificationPolicy":   r.handlePolicy,
		"GrafanaMuteTiming":           r.handleMuteTiming,
		"GrafanaNotificationTemplate": r.handleTemplate,
	}
}

// ReconcileAll performs a full pass over every resource of all four
// Grafana kinds, in turn. A Synchronization event triggers this
// regardless of which kind happens to lead the event bundle.
func (r *Reconciler) ReconcileAll(ctx context.Context) error {
	if err := r.reconcileAllAlertRules(ctx); err != nil {
		return err
	}
	if err := r.reconcileAllPolicies(ctx); err != nil {
		return err
	}
	if err := r.reconcileAllMuteTimings(ctx); err != nil {
		return err
	}
	return r.reconcileAllTemplates(ctx)
}

// --- alert rules ---

func (r *Reconciler) handleAlertRule(ctx context.Context, rec engine.Record) error {
	var wire struct {
		Spec   zv1.GrafanaAlertRuleSpec   `json:"spec"`
		Status zv1.GrafanaAlertRuleStatus `json:"status"`
	}
	if err := json.Unmarshal(rec.Raw, &wire); err != nil {
		return fmt.Errorf("decoding GrafanaAlertRule %s/%s: %w", rec.Namespace, rec.Name, err)
	}
	ar := &zv1.GrafanaAlertRule{
		ObjectMeta: metav1.ObjectMeta{Name: rec.Name, Namespace: rec.Namespace},
		Spec:       wire.Spec,
		Status:     wire.Status,
	}
	if rec.Deleting() {
		return r.deleteAlertRule(ctx, ar)
	}
	return r.applyAlertRule(ctx, ar)
}

func (r *Reconciler) applyAlertRule(ctx context.Context, ar *zv1.GrafanaAlertRule) error {
	creds, err := ResolveCredentials(ctx, r.Gateway, ar.Spec.GrafanaRef, ar.Namespace)
	if err != nil {
		_ = r.patchSyncStatus(ctx, alertRuleGVK, ar.Namespace, ar.Name, nil, "Failed", err.Error())
		return err
	}
	api := r.api(creds, familyAlertRules)

	body := map[string]interface{}{
		"folderUID":    ar.Spec.FolderUID,
		"ruleGroup":    ar.Spec.RuleGroup,
		"title":        ar.Spec.Title,
		"condition":    ar.Spec.Condition,
		"noDataState":  ar.Spec.NoDataState,
		"execErrState": ar.Spec.ExecErrState,
		"for":          ar.Spec.For,
		"annotations":  ar.Spec.Annotations,
		"labels":       ar.Spec.Labels,
		"data":         ar.Spec.Data,
	}

	var result json.RawMessage
	if ar.Status.UID != "" {
		result, err = api.Replace(ctx, pathAlertRules+"/"+ar.Status.UID, body)
	} else {
		result, err = api.Create(ctx, pathAlertRules, body)
	}
	if err != nil {
		_ = r.patchSyncStatus(ctx, alertRuleGVK, ar.Namespace, ar.Name, nil, "Failed", err.Error())
		return err
	}

	uid := ar.Status.UID
	if uid == "" {
		var created struct {
			UID string `json:"uid"`
		}
		if err := json.Unmarshal(result, &created); err == nil {
			uid = created.UID
		}
	}

	return r.patchSyncStatus(ctx, alertRuleGVK, ar.Namespace, ar.Name, map[string]interface{}{"uid": uid}, "Synced", "")
}

func (r *Reconciler) deleteAlertRule(ctx context.Context, ar *zv1.GrafanaAlertRule) error {
	if ar.Status.UID == "" {
		return nil
	}
	creds, err := ResolveCredentials(ctx, r.Gateway, ar.Spec.GrafanaRef, ar.Namespace)
	if err != nil {
		return err
	}
	return r.api(creds, familyAlertRules).Delete(ctx, pathAlertRules+"/"+ar.Status.UID)
}

func (r *Reconciler) reconcileAllAlertRules(ctx context.Context) error {
	var list zv1.GrafanaAlertRuleList
	if err := r.Gateway.List(ctx, &list); err != nil {
		return fmt.Errorf("listing GrafanaAlertRules: %w", err)
	}
	for i := range list.Items {
		item := &list.Items[i]
		var err error
		if item.DeletionTimestamp != nil {
			err = r.deleteAlertRule(ctx, item)
		} else {
			err = r.applyAlertRule(ctx, item)
		}
		if err != nil {
			r.Log.Error(err, "reconciling alert rule during sync", "name", item.Name, "namespace", item.Namespace)
		}
	}
	return nil
}

// --- notification policy (singleton) ---

func (r *Reconciler) handlePolicy(ctx context.Context, rec engine.Record) error {
	var wire struct {
		Spec   zv1.GrafanaNotificationPolicySpec `json:"spec"`
		Status zv1.GrafanaSyncStatus             `json:"status"`
	}
	if err := json.Unmarshal(rec.Raw, &wire); err != nil {
		return fmt.Errorf("decoding GrafanaNotificationPolicy %s/%s: %w", rec.Namespace, rec.Name, err)
	}
	policy := &zv1.GrafanaNotificationPolicy{
		ObjectMeta: metav1.ObjectMeta{Name: rec.Name, Namespace: rec.Namespace},
		Spec:       wire.Spec,
		Status:     wire.Status,
	}
	if rec.Deleting() {
		return r.deletePolicy(ctx, policy)
	}
	return r.applyPolicy(ctx, policy)
}

func (r *Reconciler) applyPolicy(ctx context.Context, p *zv1.GrafanaNotificationPolicy) error {
	creds, err := ResolveCredentials(ctx, r.Gateway, p.Spec.GrafanaRef, p.Namespace)
	if err != nil {
		_ = r.patchSyncStatus(ctx, policyGVK, p.Namespace, p.Name, nil, "Failed", err.Error())
		return err
	}
	api := r.api(creds, familyPolicies)

	body := map[string]interface{}{
		"receiver":          p.Spec.Receiver,
		"group_by":          p.Spec.GroupBy,
		"group_wait":        p.Spec.GroupWait,
		"group_interval":    p.Spec.GroupInterval,
		"repeat_interval":   p.Spec.RepeatInterval,
		"object_matchers":   p.Spec.Matchers,
		"mute_time_intervals": p.Spec.MuteTimeIntervals,
		"routes":            p.Spec.Routes,
	}

	// The policy tree is a singleton: PUT always replaces it whole, there
	// is no GET-then-branch.
	if _, err := api.Replace(ctx, pathPolicies, body); err != nil {
		_ = r.patchSyncStatus(ctx, policyGVK, p.Namespace, p.Name, nil, "Failed", err.Error())
		return err
	}
	return r.patchSyncStatus(ctx, policyGVK, p.Namespace, p.Name, nil, "Synced", "")
}

func (r *Reconciler) deletePolicy(ctx context.Context, p *zv1.GrafanaNotificationPolicy) error {
	creds, err := ResolveCredentials(ctx, r.Gateway, p.Spec.GrafanaRef, p.Namespace)
	if err != nil {
		return err
	}
	return r.api(creds, familyPolicies).Delete(ctx, pathPolicies)
}

func (r *Reconciler) reconcileAllPolicies(ctx context.Context) error {
	var list zv1.GrafanaNotificationPolicyList
	if err := r.Gateway.List(ctx, &list); err != nil {
		return fmt.Errorf("listing GrafanaNotificationPolicies: %w", err)
	}
	for i := range list.Items {
		item := &list.Items[i]
		var err error
		if item.DeletionTimestamp != nil {
			err = r.deletePolicy(ctx, item)
		} else {
			err = r.applyPolicy(ctx, item)
		}
		if err != nil {
			r.Log.Error(err, "reconciling notification policy during sync", "name", item.Name, "namespace", item.Namespace)
		}
	}
	return nil
}

// --- mute timings ---

func (r *Reconciler) handleMuteTiming(ctx context.Context, rec engine.Record) error {
	var wire struct {
		Spec   zv1.GrafanaMuteTimingSpec   `json:"spec"`
		Status zv1.GrafanaMuteTimingStatus `json:"status"`
	}
	if err := json.Unmarshal(rec.Raw, &wire); err != nil {
		return fmt.Errorf("decoding GrafanaMuteTiming %s/%s: %w", rec.Namespace, rec.Name, err)
	}
	mt := &zv1.GrafanaMuteTiming{
		ObjectMeta: metav1.ObjectMeta{Name: rec.Name, Namespace: rec.Namespace},
		Spec:       wire.Spec,
		Status:     wire.Status,
	}
	if rec.Deleting() {
		return r.deleteMuteTiming(ctx, mt)
	}
	return r.applyMuteTiming(ctx, mt)
}

func (r *Reconciler) applyMuteTiming(ctx context.Context, mt *zv1.GrafanaMuteTiming) error {
	creds, err := ResolveCredentials(ctx, r.Gateway, mt.Spec.GrafanaRef, mt.Namespace)
	if err != nil {
		_ = r.patchSyncStatus(ctx, muteTimingGVK, mt.Namespace, mt.Name, nil, "Failed", err.Error())
		return err
	}
	api := r.api(creds, familyMuteTimings)

	body := map[string]interface{}{
		"name":           mt.Spec.Name,
		"time_intervals": mt.Spec.Intervals,
	}

	path := pathMuteTimings + "/" + mt.Spec.Name
	_, found, err := api.Get(ctx, path)
	if err != nil {
		_ = r.patchSyncStatus(ctx, muteTimingGVK, mt.Namespace, mt.Name, nil, "Failed", err.Error())
		return err
	}

	var result json.RawMessage
	if found {
		result, err = api.Replace(ctx, path, body)
	} else {
		result, err = api.Create(ctx, pathMuteTimings, body)
	}
	if err != nil {
		_ = r.patchSyncStatus(ctx, muteTimingGVK, mt.Namespace, mt.Name, nil, "Failed", err.Error())
		return err
	}

	var decoded struct {
		Version string `json:"version"`
	}
	_ = json.Unmarshal(result, &decoded)

	return r.patchSyncStatus(ctx, muteTimingGVK, mt.Namespace, mt.Name, map[string]interface{}{"version": decoded.Version}, "Synced", "")
}

func (r *Reconciler) deleteMuteTiming(ctx context.Context, mt *zv1.GrafanaMuteTiming) error {
	creds, err := ResolveCredentials(ctx, r.Gateway, mt.Spec.GrafanaRef, mt.Namespace)
	if err != nil {
		return err
	}
	return r.api(creds, familyMuteTimings).Delete(ctx, pathMuteTimings+"/"+mt.Spec.Name)
}

func (r *Reconciler) reconcileAllMuteTimings(ctx context.Context) error {
	var list zv1.GrafanaMuteTimingList
	if err := r.Gateway.List(ctx, &list); err != nil {
		return fmt.Errorf("listing GrafanaMuteTimings: %w", err)
	}
	for i := range list.Items {
		item := &list.Items[i]
		var err error
		if item.DeletionTimestamp != nil {
			err = r.deleteMuteTiming(ctx, item)
		} else {
			err = r.applyMuteTiming(ctx, item)
		}
		if err != nil {
			r.Log.Error(err, "reconciling mute timing during sync", "name", item.Name, "namespace", item.Namespace)
		}
	}
	return nil
}

// --- notification templates ---

func (r *Reconciler) handleTemplate(ctx context.Context, rec engine.Record) error {
	var wire struct {
		Spec   zv1.GrafanaNotificationTemplateSpec   `json:"spec"`
		Status zv1.GrafanaNotificationTemplateStatus `json:"status"`
	}
	if err := json.Unmarshal(rec.Raw, &wire); err != nil {
		return fmt.Errorf("decoding GrafanaNotificationTemplate %s/%s: %w", rec.Namespace, rec.Name, err)
	}
	tmpl := &zv1.GrafanaNotificationTemplate{
		ObjectMeta: metav1.ObjectMeta{Name: rec.Name, Namespace: rec.Namespace},
		Spec:       wire.Spec,
		Status:     wire.Status,
	}
	if rec.Deleting() {
		return r.deleteTemplate(ctx, tmpl)
	}
	return r.applyTemplate(ctx, tmpl)
}

// applyTemplate always issues a PUT: Grafana's notification-template
// provisioning endpoint has no separate create call.
func (r *Reconciler) applyTemplate(ctx context.Context, tmpl *zv1.GrafanaNotificationTemplate) error {
	creds, err := ResolveCredentials(ctx, r.Gateway, tmpl.Spec.GrafanaRef, tmpl.Namespace)
	if err != nil {
		_ = r.patchSyncStatus(ctx, templateGVK, tmpl.Namespace, tmpl.Name, nil, "Failed", err.Error())
		return err
	}
	api := r.api(creds, familyTemplates)

	body := map[string]interface{}{
		"name":     tmpl.Spec.Name,
		"template": tmpl.Spec.Template,
	}

	result, err := api.Replace(ctx, pathTemplates+"/"+tmpl.Spec.Name, body)
	if err != nil {
		_ = r.patchSyncStatus(ctx, templateGVK, tmpl.Namespace, tmpl.Name, nil, "Failed", err.Error())
		return err
	}

	var decoded struct {
		Version string `json:"version"`
	}
	_ = json.Unmarshal(result, &decoded)

	return r.patchSyncStatus(ctx, templateGVK, tmpl.Namespace, tmpl.Name, map[string]interface{}{"version": decoded.Version}, "Synced", "")
}

func (r *Reconciler) deleteTemplate(ctx context.Context, tmpl *zv1.GrafanaNotificationTemplate) error {
	creds, err := ResolveCredentials(ctx, r.Gateway, tmpl.Spec.GrafanaRef, tmpl.Namespace)
	if err != nil {
		return err
	}
	return r.api(creds, familyTemplates).Delete(ctx, pathTemplates+"/"+tmpl.Spec.Name)
}

func (r *Reconciler) reconcileAllTemplates(ctx context.Context) error {
	var list zv1.GrafanaNotificationTemplateList
	if err := r.Gateway.List(ctx, &list); err != nil {
		return fmt.Errorf("listing GrafanaNotificationTemplates: %w", err)
	}
	for i := range list.Items {
		item := &list.Items[i]
		var err error
		if item.DeletionTimestamp != nil {
			err = r.deleteTemplate(ctx, item)
		} else {
			err = r.applyTemplate(ctx, item)
		}
		if err != nil {
			r.Log.Error(err, "reconciling notification template during sync", "name", item.Name, "namespace", item.Namespace)
		}
	}
	return nil
}

func (r *Reconciler) patchSyncStatus(ctx context.Context, gvk schema.GroupVersionKind, namespace, name string, extra map[string]interface{}, syncStatus, message string) error {
	fields := map[string]interface{}{
		"lastSynced": metav1.NewTime(time.Now().UTC()).Format(time.RFC3339),
		"syncStatus": syncStatus,
	}
	for k, v := range extra {
		fields[k] = v
	}
	if message != "" {
		fields["message"] = message
	}
	if err := r.Gateway.PatchStatus(ctx, gvk, namespace, name, fields); err != nil {
		r.Log.Error(err, "patching Grafana resource status", "kind", gvk.Kind, "name", name, "namespace", namespace)
	}
	return nil
}
