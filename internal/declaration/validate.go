package declaration

import (
	"fmt"
	"strings"

	mm "github.com/Masterminds/semver/v3"
)

// Validate checks a declaration for structural problems before it is handed
// to the shutdown machinery: duplicate names, offers or storage declarations
// referencing undeclared children/collections, and malformed version strings.
//
// The graph builder re-checks referential integrity defensively; callers are
// not required to have validated first.
func Validate(d Declaration) error {
	seen := make(map[Node]struct{}, len(d.Children)+len(d.Collections))
	for _, c := range d.Children {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("declaration %q: child with empty name", d.Name)
		}
		n := ChildNode(c.Name)
		if _, dup := seen[n]; dup {
			return fmt.Errorf("declaration %q: duplicate child %q", d.Name, c.Name)
		}
		seen[n] = struct{}{}
		if c.Version != "" {
			if _, err := mm.NewVersion(c.Version); err != nil {
				return fmt.Errorf("declaration %q: child %q version %q: %w", d.Name, c.Name, c.Version, err)
			}
		}
	}
	for _, name := range d.Collections {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("declaration %q: collection with empty name", d.Name)
		}
		n := CollectionNode(name)
		if _, dup := seen[n]; dup {
			return fmt.Errorf("declaration %q: duplicate collection %q", d.Name, name)
		}
		seen[n] = struct{}{}
	}

	for _, s := range d.Storage {
		if s.Backing.Kind == SourceChild && !d.HasChild(s.Backing.Child) {
			return fmt.Errorf("declaration %q: storage %q backed by undeclared child %q", d.Name, s.Name, s.Backing.Child)
		}
	}

	for _, o := range d.Offers {
		if o.Kind == KindStorage {
			if _, ok := d.StorageFor(o.Capability); !ok {
				return fmt.Errorf("declaration %q: storage offer %q has no storage declaration", d.Name, o.Capability)
			}
		} else if o.Source.Kind == SourceChild && !d.HasChild(o.Source.Child) {
			return fmt.Errorf("declaration %q: offer %q sourced from undeclared child %q", d.Name, o.Capability, o.Source.Child)
		}
		if _, ok := seen[o.Target]; !ok {
			return fmt.Errorf("declaration %q: offer %q targets undeclared %s", d.Name, o.Capability, o.Target)
		}
	}

	if d.MinRuntime != "" {
		if _, err := mm.NewConstraint(d.MinRuntime); err != nil {
			return fmt.Errorf("declaration %q: minRuntime %q: %w", d.Name, d.MinRuntime, err)
		}
	}
	return nil
}

// RuntimeCompatible reports whether the given platform runtime version
// satisfies the declaration's MinRuntime constraint. An empty constraint
// matches any runtime. Malformed inputs are reported as errors rather than
// silently matching.
func RuntimeCompatible(d Declaration, runtimeVersion string) (bool, error) {
	if d.MinRuntime == "" {
		return true, nil
	}
	c, err := mm.NewConstraint(d.MinRuntime)
	if err != nil {
		return false, fmt.Errorf("minRuntime %q: %w", d.MinRuntime, err)
	}
	v, err := mm.NewVersion(runtimeVersion)
	if err != nil {
		return false, fmt.Errorf("runtime version %q: %w", runtimeVersion, err)
	}
	return c.Check(v), nil
}
