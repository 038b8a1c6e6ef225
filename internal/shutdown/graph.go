// Package shutdown computes and drives dependency-ordered shutdown of one
// component's live children.
//
// The order is derived from the component's capability routing declaration:
// a child that receives a capability from another child must finish stopping
// before its provider may stop. The package does not decide whether to shut
// a subtree down, does not retry failed stops, and does not break cycles.
package shutdown

import (
	"github.com/anvil-platform/quench/internal/declaration"
)

// DependencyGraph maps each declared node to the set of declared nodes that
// receive a capability from it. Those dependents must stop before the node
// itself may stop.
type DependencyGraph map[declaration.Node]map[declaration.Node]struct{}

// BuildGraph derives the abstract dependency graph from a component's
// declaration. The result is deterministic, independent of runtime state,
// and may be cached per declaration.
//
// Only offers sourced from a declared child contribute an edge. Offers
// sourced from the component itself, its parent, or the framework cannot
// order sibling shutdown and are skipped. Storage offers resolve their true
// provider through the declaration's storage declarations first.
func BuildGraph(decl declaration.Declaration) (DependencyGraph, error) {
	graph := make(DependencyGraph, len(decl.Children)+len(decl.Collections))
	for _, c := range decl.Children {
		graph[declaration.ChildNode(c.Name)] = make(map[declaration.Node]struct{})
	}
	for _, name := range decl.Collections {
		graph[declaration.CollectionNode(name)] = make(map[declaration.Node]struct{})
	}

	for _, offer := range decl.Offers {
		source := offer.Source
		if offer.Kind == declaration.KindStorage {
			backing, ok := decl.StorageFor(offer.Capability)
			if !ok {
				return nil, &MalformedDeclarationError{
					Source: "storage:" + offer.Capability,
					Target: offer.Target.String(),
				}
			}
			source = backing.Backing
		}
		if source.External() {
			continue
		}

		sourceNode := declaration.ChildNode(source.Child)
		dependents, ok := graph[sourceNode]
		if !ok {
			return nil, &MalformedDeclarationError{Source: sourceNode.String(), Target: offer.Target.String()}
		}
		if _, ok := graph[offer.Target]; !ok {
			return nil, &MalformedDeclarationError{Source: sourceNode.String(), Target: offer.Target.String()}
		}
		dependents[offer.Target] = struct{}{}
	}

	return graph, nil
}
