package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// DerivedSecretSpec maps a field name to the character length of the value
// that should be derived for it. Non-integer or non-positive values in the
// raw payload are skipped field by field rather than crashing a reconcile;
// see internal/derivedsecret for the untyped-to-typed conversion.
type DerivedSecretSpec map[string]int

// DerivedSecretStatus reports the last successful materialization.
type DerivedSecretStatus struct {
	SecretName string       `json:"secretName,omitempty"`
	LastSynced *metav1.Time `json:"lastSynced,omitempty"`
	SyncStatus string       `json:"syncStatus,omitempty"`
	Message    string       `json:"message,omitempty"`
}

// DerivedSecret is the Schema for the derivedsecrets API.
type DerivedSecret struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   DerivedSecretSpec   `json:"spec,omitempty"`
	Status DerivedSecretStatus `json:"status,omitempty"`
}

// DerivedSecretList contains a list of DerivedSecret.
type DerivedSecretList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []DerivedSecret `json:"items"`
}

func init() {
	SchemeBuilder.Register(&DerivedSecret{}, &DerivedSecretList{})
}
