package shutdown

import (
	"github.com/anvil-platform/quench/internal/declaration"
	"github.com/anvil-platform/quench/internal/moniker"
)

// Expand resolves a declared node against a live-instance snapshot.
//
// A child node matches every static instance with that declared name. At
// most one is the norm, but a recreate-in-flight can legitimately leave the
// old and new instance alive at once; all matches are included. A collection
// node matches every current member of the collection, in any number
// including zero. No ordering is implied.
func Expand(node declaration.Node, live []moniker.Moniker) map[moniker.Moniker]struct{} {
	matches := make(map[moniker.Moniker]struct{})
	for _, m := range live {
		switch node.Kind {
		case declaration.NodeChild:
			if m.Collection == "" && m.Name == node.Name {
				matches[m] = struct{}{}
			}
		case declaration.NodeCollection:
			if m.Collection == node.Name {
				matches[m] = struct{}{}
			}
		}
	}
	return matches
}
