package v1

import (
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PartialIngressSpec mirrors a native ingress spec. At most one host is
// consumed per resource: the first rule's host.
type PartialIngressSpec struct {
	IngressClassName *string                    `json:"ingressClassName,omitempty"`
	Rules            []networkingv1.IngressRule `json:"rules,omitempty"`
	TLS              []networkingv1.IngressTLS  `json:"tls,omitempty"`
	DefaultBackend   *networkingv1.IngressBackend `json:"defaultBackend,omitempty"`
	Annotations      map[string]string          `json:"annotations,omitempty"`
}

// ReplicaRef names a replicated ingress produced for one template.
type ReplicaRef struct {
	Name          string `json:"name"`
	Namespace     string `json:"namespace"`
	SourceIngress string `json:"sourceIngress"`
}

// PartialIngressStatus records the local projection and every replica
// generated on its behalf.
type PartialIngressStatus struct {
	LocalIngressName string       `json:"localIngressName,omitempty"`
	Replicas         []ReplicaRef `json:"replicas,omitempty"`
	LastSynced       *metav1.Time `json:"lastSynced,omitempty"`
	SyncStatus       string       `json:"syncStatus,omitempty"`
	Message          string       `json:"message,omitempty"`
}

// PartialIngress is the Schema for the partialingresses API.
type PartialIngress struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   PartialIngressSpec   `json:"spec,omitempty"`
	Status PartialIngressStatus `json:"status,omitempty"`
}

// PartialIngressList contains a list of PartialIngress.
type PartialIngressList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []PartialIngress `json:"items"`
}

// CompositeIngressHostSpec declares a base host/class whose ingresses act
// as templates for any PartialIngress whose first-rule host matches
// HostPattern (shell-glob semantics).
type CompositeIngressHostSpec struct {
	BaseHost         string `json:"baseHost"`
	HostPattern      string `json:"hostPattern"`
	IngressClassName string `json:"ingressClassName"`
}

// CompositeIngressHostStatus carries a read-only count of discovered base
// ingresses.
type CompositeIngressHostStatus struct {
	BaseIngressCount int          `json:"baseIngressCount,omitempty"`
	LastSynced       *metav1.Time `json:"lastSynced,omitempty"`
}

// CompositeIngressHost is the Schema for the compositeingresshosts API.
type CompositeIngressHost struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   CompositeIngressHostSpec   `json:"spec,omitempty"`
	Status CompositeIngressHostStatus `json:"status,omitempty"`
}

// CompositeIngressHostList contains a list of CompositeIngressHost.
type CompositeIngressHostList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []CompositeIngressHost `json:"items"`
}

func init() {
	SchemeBuilder.Register(&PartialIngress{}, &PartialIngressList{})
	SchemeBuilder.Register(&CompositeIngressHost{}, &CompositeIngressHostList{})
}
