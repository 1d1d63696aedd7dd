package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	// ReconciliationsTotal tracks dispatched events per controller, kind,
	// and result (success/error).
	ReconciliationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homelab_operator_reconciliations_total",
			Help: "Total number of reconciliations by controller, kind, and result",
		},
		[]string{"controller", "kind", "result"},
	)

	// ReconciliationDuration tracks per-event handler latency.
	ReconciliationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "homelab_operator_reconciliation_duration_seconds",
			Help:    "Duration of a single dispatched event's handler",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"controller", "kind"},
	)

	// DerivedSecretsDerived counts individual field derivations performed
	// by the DerivedSecret controller.
	DerivedSecretsDerived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homelab_operator_derived_fields_total",
			Help: "Total number of secret fields derived",
		},
		[]string{"namespace"},
	)

	// IngressReplicasManaged tracks the number of replicated ingresses
	// created or removed by the PartialIngress controller.
	IngressReplicasManaged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homelab_operator_ingress_replicas_total",
			Help: "Total number of replicated ingress upserts and deletes",
		},
		[]string{"namespace", "action"},
	)

	// GrafanaAPICalls tracks outbound calls to the Grafana provisioning API.
	GrafanaAPICalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homelab_operator_grafana_api_calls_total",
			Help: "Total number of Grafana provisioning API calls by resource family and result",
		},
		[]string{"family", "method", "result"},
	)

	// RBACBindingsManaged tracks RoleBinding upserts performed per role.
	RBACBindingsManaged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homelab_operator_rbac_bindings_total",
			Help: "Total number of RoleBinding upserts by role and action",
		},
		[]string{"role", "action"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		ReconciliationsTotal,
		ReconciliationDuration,
		DerivedSecretsDerived,
		IngressReplicasManaged,
		GrafanaAPICalls,
		RBACBindingsManaged,
	)
}

// RecordReconciliation records one dispatched event's outcome.
func RecordReconciliation(controller, kind, result string) {
	ReconciliationsTotal.WithLabelValues(controller, kind, result).Inc()
}

// ObserveReconciliationDuration records one dispatched event's handler latency.
func ObserveReconciliationDuration(controller, kind string, seconds float64) {
	ReconciliationDuration.WithLabelValues(controller, kind).Observe(seconds)
}

// RecordDerivedField records one derived secret field.
func RecordDerivedField(namespace string) {
	DerivedSecretsDerived.WithLabelValues(namespace).Inc()
}

// RecordIngressReplica records a replicated-ingress upsert or delete.
func RecordIngressReplica(namespace, action string) {
	IngressReplicasManaged.WithLabelValues(namespace, action).Inc()
}

// RecordGrafanaCall records one Grafana provisioning API call.
func RecordGrafanaCall(family, method, result string) {
	GrafanaAPICalls.WithLabelValues(family, method, result).Inc()
}

// RecordRBACBinding records one RoleBinding upsert.
func RecordRBACBinding(role, action string) {
	RBACBindingsManaged.WithLabelValues(role, action).Inc()
}
