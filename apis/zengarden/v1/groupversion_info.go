// Package v1 contains the Go types for the zengarden.space/v1 and
// monitoring.zengarden.space/v1 custom resources reconciled by this
// controller suite. Schema registration (CRD manifests, validation) is a
// collaborator outside this repository; these types exist so reconciler
// code has a typed view of spec/status instead of working on unstructured
// maps everywhere.
package v1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

var (
	// GroupVersion is the custom-resource group/version for derived
	// secrets, ingress composition, and RBAC objects.
	GroupVersion = schema.GroupVersion{Group: "zengarden.space", Version: "v1"}

	// MonitoringGroupVersion is the group/version for the Grafana mirror
	// resources, which live in a separate API group in the cluster.
	MonitoringGroupVersion = schema.GroupVersion{Group: "monitoring.zengarden.space", Version: "v1"}

	// SchemeBuilder registers zengarden.space/v1 types with a runtime scheme.
	SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

	// MonitoringSchemeBuilder registers the Grafana mirror types.
	MonitoringSchemeBuilder = &scheme.Builder{GroupVersion: MonitoringGroupVersion}

	// AddToScheme adds zengarden.space/v1 types to a scheme.
	AddToScheme = SchemeBuilder.AddToScheme

	// AddMonitoringToScheme adds monitoring.zengarden.space/v1 types to a scheme.
	AddMonitoringToScheme = MonitoringSchemeBuilder.AddToScheme
)
