package shutdown

import (
	"fmt"
	"strings"

	"github.com/anvil-platform/quench/internal/moniker"
)

// MalformedDeclarationError reports an offer whose resolved source or target
// is not among the declared children and collections. Upstream validation
// should have rejected such declarations; the graph builder still detects
// them rather than silently misrouting the shutdown order.
type MalformedDeclarationError struct {
	Source string
	Target string
}

func (e *MalformedDeclarationError) Error() string {
	return fmt.Sprintf("malformed declaration: offer from %q to %q references undeclared node", e.Source, e.Target)
}

// StopError reports a failed stop of one instance. It aborts the whole
// shutdown attempt; the underlying cause is available via Unwrap.
type StopError struct {
	Moniker moniker.Moniker
	Err     error
}

func (e *StopError) Error() string {
	return fmt.Sprintf("stop %s: %v", e.Moniker, e.Err)
}

func (e *StopError) Unwrap() error { return e.Err }

// CycleError reports that the scheduling loop drained with instances left
// over: the remaining monikers form at least one dependency cycle and none
// of them were stopped.
type CycleError struct {
	Remaining []moniker.Moniker
}

func (e *CycleError) Error() string {
	names := make([]string, len(e.Remaining))
	for i, m := range e.Remaining {
		names[i] = m.String()
	}
	return fmt.Sprintf("dependency cycle among live instances: %s", strings.Join(names, ", "))
}
