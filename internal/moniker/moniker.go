// Package moniker identifies live component instances.
//
// A Moniker exists only while its instance runs: it is minted when the
// runtime starts an instance and is meaningless once the instance stops.
// Declaration-time references (children, collections) are declaration.Node
// values; Node maps a live instance back to the declared entity it belongs
// to.
package moniker

import (
	"github.com/google/uuid"

	"github.com/anvil-platform/quench/internal/declaration"
)

// Moniker is the concrete, unique identity of one live instance: the
// declared child name, the collection it lives in (empty for static
// children), and a per-start instance discriminator.
type Moniker struct {
	Name       string
	Collection string
	InstanceID string
}

// New mints a moniker for a freshly started static child instance.
func New(name string) Moniker {
	return Moniker{Name: name, InstanceID: uuid.NewString()}
}

// NewInCollection mints a moniker for a freshly started collection member.
func NewInCollection(collection, name string) Moniker {
	return Moniker{Name: name, Collection: collection, InstanceID: uuid.NewString()}
}

// Node returns the declared entity this instance belongs to: the collection
// for collection members, the child name otherwise.
func (m Moniker) Node() declaration.Node {
	if m.Collection != "" {
		return declaration.CollectionNode(m.Collection)
	}
	return declaration.ChildNode(m.Name)
}

func (m Moniker) String() string {
	if m.Collection != "" {
		return m.Collection + ":" + m.Name + ":" + m.InstanceID
	}
	return m.Name + ":" + m.InstanceID
}
