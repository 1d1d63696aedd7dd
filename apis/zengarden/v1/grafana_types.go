package v1

import (
	"encoding/json"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// GrafanaSecretRef points at the cluster Secret holding the Grafana URL
// (key "url"), org id (key "orgId", defaulting to "1"), and API token. Key
// names the token's key within the Secret; empty defaults to "token".
type GrafanaSecretRef struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace,omitempty"`
	Key       string `json:"key,omitempty"`
}

// GrafanaSyncStatus is the shared status shape written by every Grafana
// sub-reconciler.
type GrafanaSyncStatus struct {
	LastSynced *metav1.Time `json:"lastSynced,omitempty"`
	SyncStatus string       `json:"syncStatus,omitempty"`
	Message    string       `json:"message,omitempty"`
}

// GrafanaAlertRuleSpec carries the fields needed to provision one alert
// rule via /api/v1/provisioning/alert-rules.
type GrafanaAlertRuleSpec struct {
	GrafanaRef   GrafanaSecretRef  `json:"grafanaRef"`
	FolderUID    string            `json:"folderUID"`
	RuleGroup    string            `json:"ruleGroup"`
	Title        string            `json:"title"`
	Condition    string            `json:"condition"`
	NoDataState  string            `json:"noDataState,omitempty"`
	ExecErrState string            `json:"execErrState,omitempty"`
	For          string            `json:"for,omitempty"`
	Annotations  map[string]string `json:"annotations,omitempty"`
	Labels       map[string]string `json:"labels,omitempty"`
	Data         []json.RawMessage `json:"data,omitempty"`
}

// GrafanaAlertRuleStatus additionally carries the Grafana-assigned uid,
// which becomes authoritative for subsequent PUTs.
type GrafanaAlertRuleStatus struct {
	GrafanaSyncStatus `json:",inline"`
	UID               string `json:"uid,omitempty"`
	Provenance        string `json:"provenance,omitempty"`
}

// GrafanaAlertRule is the Schema for the grafanaalertrules API.
type GrafanaAlertRule struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   GrafanaAlertRuleSpec   `json:"spec,omitempty"`
	Status GrafanaAlertRuleStatus `json:"status,omitempty"`
}

// GrafanaAlertRuleList contains a list of GrafanaAlertRule.
type GrafanaAlertRuleList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []GrafanaAlertRule `json:"items"`
}

// GrafanaMatcher is one object_matchers triple.
type GrafanaMatcher struct {
	Label string `json:"label"`
	Match string `json:"match"`
	Value string `json:"value"`
}

// GrafanaRoute is a notification-policy subtree. Routes nest arbitrarily in
// Grafana's model; this keeps nested routes as raw JSON rather than a
// recursive Go type, since the controller only mirrors the payload rather
// than interpreting routing decisions itself.
type GrafanaRoute struct {
	Receiver string           `json:"receiver,omitempty"`
	Matchers []GrafanaMatcher `json:"matchers,omitempty"`
	Routes   []json.RawMessage `json:"routes,omitempty"`
}

// GrafanaNotificationPolicySpec mirrors the singleton policy tree.
type GrafanaNotificationPolicySpec struct {
	GrafanaRef        GrafanaSecretRef `json:"grafanaRef"`
	Receiver          string           `json:"receiver"`
	GroupBy           []string         `json:"groupBy,omitempty"`
	GroupWait         string           `json:"groupWait,omitempty"`
	GroupInterval     string           `json:"groupInterval,omitempty"`
	RepeatInterval    string           `json:"repeatInterval,omitempty"`
	Matchers          []GrafanaMatcher `json:"matchers,omitempty"`
	MuteTimeIntervals []string         `json:"muteTimeIntervals,omitempty"`
	Routes            []GrafanaRoute   `json:"routes,omitempty"`
}

// GrafanaNotificationPolicy is the Schema for the singleton policy tree.
type GrafanaNotificationPolicy struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   GrafanaNotificationPolicySpec `json:"spec,omitempty"`
	Status GrafanaSyncStatus             `json:"status,omitempty"`
}

// GrafanaNotificationPolicyList contains a list of GrafanaNotificationPolicy.
type GrafanaNotificationPolicyList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []GrafanaNotificationPolicy `json:"items"`
}

// GrafanaMuteTimeInterval is one time_intervals entry understood by Grafana.
type GrafanaMuteTimeInterval struct {
	Times       []string `json:"times,omitempty"`
	Weekdays    []string `json:"weekdays,omitempty"`
	DaysOfMonth []string `json:"daysOfMonth,omitempty"`
	Months      []string `json:"months,omitempty"`
	Years       []string `json:"years,omitempty"`
}

// GrafanaMuteTimingSpec mirrors one named mute timing.
type GrafanaMuteTimingSpec struct {
	GrafanaRef GrafanaSecretRef          `json:"grafanaRef"`
	Name       string                    `json:"name"`
	Intervals  []GrafanaMuteTimeInterval `json:"intervals,omitempty"`
}

// GrafanaMuteTimingStatus additionally carries the Grafana-assigned version.
type GrafanaMuteTimingStatus struct {
	GrafanaSyncStatus `json:",inline"`
	Version           string `json:"version,omitempty"`
}

// GrafanaMuteTiming is the Schema for the grafanamutetimings API.
type GrafanaMuteTiming struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   GrafanaMuteTimingSpec   `json:"spec,omitempty"`
	Status GrafanaMuteTimingStatus `json:"status,omitempty"`
}

// GrafanaMuteTimingList contains a list of GrafanaMuteTiming.
type GrafanaMuteTimingList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []GrafanaMuteTiming `json:"items"`
}

// GrafanaNotificationTemplateSpec mirrors one notification template.
// Grafana's provisioning API treats both create and update of a template
// as a PUT to the named resource; there is no POST path (see
// Reconciler.applyTemplate in internal/grafana, which encodes this).
type GrafanaNotificationTemplateSpec struct {
	GrafanaRef GrafanaSecretRef `json:"grafanaRef"`
	Name       string           `json:"name"`
	Template   string           `json:"template"`
}

// GrafanaNotificationTemplateStatus additionally carries the Grafana-assigned version.
type GrafanaNotificationTemplateStatus struct {
	GrafanaSyncStatus `json:",inline"`
	Version           string `json:"version,omitempty"`
}

// GrafanaNotificationTemplate is the Schema for the grafananotificationtemplates API.
type GrafanaNotificationTemplate struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   GrafanaNotificationTemplateSpec   `json:"spec,omitempty"`
	Status GrafanaNotificationTemplateStatus `json:"status,omitempty"`
}

// GrafanaNotificationTemplateList contains a list of GrafanaNotificationTemplate.
type GrafanaNotificationTemplateList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []GrafanaNotificationTemplate `json:"items"`
}

func init() {
	MonitoringSchemeBuilder.Register(&GrafanaAlertRule{}, &GrafanaAlertRuleList{})
	MonitoringSchemeBuilder.Register(&GrafanaNotificationPolicy{}, &GrafanaNotificationPolicyList{})
	MonitoringSchemeBuilder.Register(&GrafanaMuteTiming{}, &GrafanaMuteTimingList{})
	MonitoringSchemeBuilder.Register(&GrafanaNotificationTemplate{}, &GrafanaNotificationTemplateList{})
}
