package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// UserSpec declares a person's roles. Enabled defaults to true; a nil
// pointer is treated as enabled (see internal/rbac).
type UserSpec struct {
	Email   string   `json:"email"`
	Roles   []string `json:"roles,omitempty"`
	Enabled *bool    `json:"enabled,omitempty"`
}

// UserStatus reports the bindings this controller has ensured for the user
// and a Ready condition summarizing the last reconcile.
type UserStatus struct {
	Conditions   []metav1.Condition  `json:"conditions,omitempty"`
	RoleBindings map[string][]string `json:"roleBindings,omitempty"`
	LastSynced   *metav1.Time        `json:"lastSynced,omitempty"`
}

// User is the Schema for the cluster-scoped users API.
type User struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   UserSpec   `json:"spec,omitempty"`
	Status UserStatus `json:"status,omitempty"`
}

// UserList contains a list of User.
type UserList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []User `json:"items"`
}

func init() {
	SchemeBuilder.Register(&User{}, &UserList{})
}

// IsEnabled reports whether the user is enabled, defaulting to true when
// unset.
func (u *User) IsEnabled() bool {
	return u.Spec.Enabled == nil || *u.Spec.Enabled
}
