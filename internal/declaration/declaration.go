package declaration

// NodeKind discriminates declaration-time references.
type NodeKind string

const (
	NodeChild      NodeKind = "child"
	NodeCollection NodeKind = "collection"
)

// Node identifies a declared child or collection by name. It refers to the
// declaration, never to a live instance; a single Node may correspond to
// zero, one, or many running instances at any point in time.
type Node struct {
	Kind NodeKind
	Name string
}

func ChildNode(name string) Node      { return Node{Kind: NodeChild, Name: name} }
func CollectionNode(name string) Node { return Node{Kind: NodeCollection, Name: name} }

func (n Node) String() string { return string(n.Kind) + ":" + n.Name }

// Kind is the capability kind carried by an offer. The kind never influences
// shutdown ordering; storage offers only differ in that their true provider
// is resolved through a StorageDeclaration first.
type Kind string

const (
	KindService   Kind = "service"
	KindDirectory Kind = "directory"
	KindStorage   Kind = "storage"
	KindRunner    Kind = "runner"
)

// SourceKind names where an offered capability originates.
type SourceKind string

const (
	SourceSelf      SourceKind = "self"
	SourceParent    SourceKind = "parent"
	SourceFramework SourceKind = "framework"
	SourceChild     SourceKind = "child"
)

// OfferSource is the origin of an offered capability. Child is set only when
// Kind == SourceChild.
type OfferSource struct {
	Kind  SourceKind
	Child string
}

func FromSelf() OfferSource             { return OfferSource{Kind: SourceSelf} }
func FromParent() OfferSource           { return OfferSource{Kind: SourceParent} }
func FromFramework() OfferSource        { return OfferSource{Kind: SourceFramework} }
func FromChild(name string) OfferSource { return OfferSource{Kind: SourceChild, Child: name} }

// External reports whether the source lives outside the declared children
// (self, parent, or framework). External sources produce no shutdown edge.
func (s OfferSource) External() bool { return s.Kind != SourceChild }

func (s OfferSource) String() string {
	if s.Kind == SourceChild {
		return "child:" + s.Child
	}
	return string(s.Kind)
}

// Offer routes one capability from a source to a declared child or
// collection.
type Offer struct {
	Kind       Kind
	Capability string
	Source     OfferSource
	Target     Node
}

// StorageDeclaration binds a storage capability name to the directory source
// backing it. Storage offers name the capability; the backing source is the
// actual provider for dependency purposes.
type StorageDeclaration struct {
	Name    string
	Backing OfferSource
}

// Child declares one static child. Version, when set, is the child's
// component version and must be valid semver.
type Child struct {
	Name    string
	Version string
}

// Declaration is the read-only routing declaration of one component:
// its static children, its collections, the capability offers routed between
// them, and the storage declarations those offers may resolve through.
type Declaration struct {
	Name        string
	Children    []Child
	Collections []string
	Offers      []Offer
	Storage     []StorageDeclaration

	// MinRuntime optionally constrains the platform runtime version this
	// component requires, as a semver constraint (">=1.4.0", "^2").
	MinRuntime string
}

// StorageFor looks up the storage declaration backing the named storage
// capability.
func (d Declaration) StorageFor(name string) (StorageDeclaration, bool) {
	for _, s := range d.Storage {
		if s.Name == name {
			return s, true
		}
	}
	return StorageDeclaration{}, false
}

// HasChild reports whether name is among the declared static children.
func (d Declaration) HasChild(name string) bool {
	for _, c := range d.Children {
		if c.Name == name {
			return true
		}
	}
	return false
}

// HasCollection reports whether name is among the declared collections.
func (d Declaration) HasCollection(name string) bool {
	for _, c := range d.Collections {
		if c == name {
			return true
		}
	}
	return false
}
