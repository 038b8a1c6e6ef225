package shutdown

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-logr/logr"

	"github.com/anvil-platform/quench/internal/declaration"
	"github.com/anvil-platform/quench/internal/moniker"
)

// State tracks a component's shutdown lifecycle. The zero value means
// running.
type State string

const (
	StateRunning      State = "running"
	StateShuttingDown State = "shutting-down"
	StateStopped      State = "stopped"
)

// LiveInstanceProvider supplies a point-in-time snapshot of the component's
// running child instances. The snapshot is taken once per shutdown attempt;
// the scheduler never re-queries mid-run.
type LiveInstanceProvider interface {
	ListInstances(ctx context.Context) ([]moniker.Moniker, error)
}

// LiveInstanceProviderFunc adapts a function to LiveInstanceProvider.
type LiveInstanceProviderFunc func(ctx context.Context) ([]moniker.Moniker, error)

func (f LiveInstanceProviderFunc) ListInstances(ctx context.Context) ([]moniker.Moniker, error) {
	return f(ctx)
}

// CleanupFunc is deferred work returned by a component's own stop, awaited
// after the stop succeeds.
type CleanupFunc func(ctx context.Context) error

// SelfStopper stops the component itself once all dependent children are
// down.
type SelfStopper interface {
	Stop(ctx context.Context) ([]CleanupFunc, error)
}

// SelfStopperFunc adapts a function to SelfStopper.
type SelfStopperFunc func(ctx context.Context) ([]CleanupFunc, error)

func (f SelfStopperFunc) Stop(ctx context.Context) ([]CleanupFunc, error) { return f(ctx) }

// EventSink receives lifecycle notifications. ComponentStopped fires at most
// once per shutdown, only on a genuine running-to-stopped transition.
type EventSink interface {
	ComponentStopped(id string)
}

// Component orchestrates dependency-ordered shutdown of one component and
// its live children.
//
// Live is nil for a component that was never resolved: such a component can
// have no running children, so graph construction is skipped and only the
// component itself is stopped. Events and Log are optional.
type Component struct {
	ID      string
	Decl    declaration.Declaration
	Live    LiveInstanceProvider
	Stopper InstanceStopper
	Self    SelfStopper
	Events  EventSink
	Log     logr.Logger

	mu    sync.Mutex
	state State
}

// State returns the component's current lifecycle state.
func (c *Component) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == "" {
		return StateRunning
	}
	return c.state
}

// Shutdown stops the component's live children in dependency order, then the
// component itself. It is idempotent once the component is stopped. On any
// error the component remains shutting-down and the error propagates to the
// caller unretried; a later call starts a fresh attempt.
func (c *Component) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateStopped {
		c.mu.Unlock()
		return nil
	}
	c.state = StateShuttingDown
	c.mu.Unlock()

	shutdownRunTotal.Inc()
	if err := c.shutdownChildren(ctx); err != nil {
		return err
	}

	cleanups, err := c.Self.Stop(ctx)
	if err != nil {
		shutdownErrorTotal.WithLabelValues("self_stop").Inc()
		return fmt.Errorf("stop component %s: %w", c.ID, err)
	}
	var firstErr error
	for _, cleanup := range cleanups {
		if cerr := cleanup(ctx); cerr != nil && firstErr == nil {
			firstErr = cerr
		}
	}
	if firstErr != nil {
		shutdownErrorTotal.WithLabelValues("cleanup").Inc()
		return fmt.Errorf("component %s cleanup: %w", c.ID, firstErr)
	}

	c.mu.Lock()
	c.state = StateStopped
	c.mu.Unlock()

	c.Log.Info("component stopped", "component", c.ID)
	if c.Events != nil {
		c.Events.ComponentStopped(c.ID)
	}
	return nil
}

func (c *Component) shutdownChildren(ctx context.Context) error {
	if c.Live == nil {
		// Never resolved: no runtime state exists, so nothing can be running
		// underneath.
		return nil
	}

	live, err := c.Live.ListInstances(ctx)
	if err != nil {
		shutdownErrorTotal.WithLabelValues("snapshot").Inc()
		return fmt.Errorf("snapshot live instances of %s: %w", c.ID, err)
	}

	graph, err := BuildGraph(c.Decl)
	if err != nil {
		shutdownErrorTotal.WithLabelValues("malformed").Inc()
		return err
	}

	scheduler := NewScheduler(graph, live, c.Stopper, c.Log)
	if err := scheduler.Execute(ctx); err != nil {
		var cycle *CycleError
		if errors.As(err, &cycle) {
			shutdownErrorTotal.WithLabelValues("cycle").Inc()
		} else {
			shutdownErrorTotal.WithLabelValues("stop").Inc()
		}
		return err
	}
	return nil
}
