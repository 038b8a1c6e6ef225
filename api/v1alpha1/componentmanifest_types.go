package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ComponentManifest declares one component's children, collections, and the
// capability offers routed between them. The teardown controller derives the
// shutdown order of the component's live workloads from these offers.
//
// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=cm
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`
type ComponentManifest struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ComponentManifestSpec   `json:"spec"`
	Status ComponentManifestStatus `json:"status,omitempty"`
}

type ComponentManifestSpec struct {
	// Children are the statically declared child components.
	Children []ChildDecl `json:"children,omitempty"`

	// Collections are dynamically populated groups of child instances.
	Collections []CollectionDecl `json:"collections,omitempty"`

	// Offers route capabilities between the declared children/collections.
	Offers []OfferDecl `json:"offers,omitempty"`

	// Storage binds storage capability names to their backing directory
	// source. Storage offers resolve through this table.
	Storage []StorageDecl `json:"storage,omitempty"`

	// MinRuntime optionally constrains the platform runtime version
	// (semver constraint).
	MinRuntime string `json:"minRuntime,omitempty"`
}

type ChildDecl struct {
	Name string `json:"name"`
	// Version of the child component, when pinned. Must be valid semver.
	Version string `json:"version,omitempty"`
}

type CollectionDecl struct {
	Name string `json:"name"`
}

type OfferDecl struct {
	Kind       CapabilityKind `json:"kind"`
	Capability string         `json:"capability"`
	From       SourceRef      `json:"from"`
	To         TargetRef      `json:"to"`
}

type StorageDecl struct {
	Name string    `json:"name"`
	From SourceRef `json:"from"`
}

type ComponentManifestStatus struct {
	Phase      string             `json:"phase,omitempty"`
	Message    string             `json:"message,omitempty"`
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// ComponentManifestList contains a list of ComponentManifest.
// +kubebuilder:object:root=true
type ComponentManifestList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ComponentManifest `json:"items"`
}

func init() {
	SchemeBuilder.Register(&ComponentManifest{}, &ComponentManifestList{})
}
