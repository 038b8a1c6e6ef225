package v1alpha1

// CapabilityKind is the kind of capability an offer routes. The kind does
// not affect teardown ordering; storage offers merely resolve their provider
// through the manifest's storage declarations.
type CapabilityKind string

const (
	CapabilityService   CapabilityKind = "service"
	CapabilityDirectory CapabilityKind = "directory"
	CapabilityStorage   CapabilityKind = "storage"
	CapabilityRunner    CapabilityKind = "runner"
)

// SourceOrigin names where an offered capability comes from.
type SourceOrigin string

const (
	OriginSelf      SourceOrigin = "self"
	OriginParent    SourceOrigin = "parent"
	OriginFramework SourceOrigin = "framework"
	OriginChild     SourceOrigin = "child"
)

// SourceRef points at the origin of a capability. Child is required when
// Origin is "child" and ignored otherwise.
type SourceRef struct {
	Origin SourceOrigin `json:"origin"`
	Child  string       `json:"child,omitempty"`
}

// TargetRef points at a declared child or collection. Exactly one of the
// fields must be set.
type TargetRef struct {
	Child      string `json:"child,omitempty"`
	Collection string `json:"collection,omitempty"`
}
