package shutdown

import (
	"context"
	"sort"
	"time"

	"github.com/go-logr/logr"

	"github.com/anvil-platform/quench/internal/moniker"
)

// InstanceStopper stops one live instance. Implementations must tolerate
// concurrent calls for distinct monikers; the scheduler never issues two
// calls for the same moniker.
type InstanceStopper interface {
	StopInstance(ctx context.Context, m moniker.Moniker) error
}

// InstanceStopperFunc adapts a function to InstanceStopper.
type InstanceStopperFunc func(ctx context.Context, m moniker.Moniker) error

func (f InstanceStopperFunc) StopInstance(ctx context.Context, m moniker.Moniker) error {
	return f(ctx, m)
}

// shutdownInfo is the per-provider bookkeeping: the set of live instances
// that must finish stopping before this provider may stop. Mutated only by
// removal, only by the scheduler that owns it.
type shutdownInfo struct {
	moniker    moniker.Moniker
	dependents map[moniker.Moniker]struct{}
}

// Scheduler drives one dependency-ordered shutdown pass over a fixed
// live-instance snapshot. Both maps are built once in NewScheduler and owned
// exclusively by the goroutine running Execute; a Scheduler is single-use.
type Scheduler struct {
	providers            map[moniker.Moniker]*shutdownInfo
	consumersToProviders map[moniker.Moniker][]moniker.Moniker
	stopper              InstanceStopper
	log                  logr.Logger
}

// NewScheduler materializes the abstract graph against the live snapshot.
// Every live instance of a declared node becomes a provider whose dependent
// set is the union of the node's expanded dependents. Instances of the same
// declared node share the same dependent set by construction, but each gets
// its own copy since dependents are consumed per provider.
func NewScheduler(graph DependencyGraph, live []moniker.Moniker, stopper InstanceStopper, log logr.Logger) *Scheduler {
	s := &Scheduler{
		providers:            make(map[moniker.Moniker]*shutdownInfo),
		consumersToProviders: make(map[moniker.Moniker][]moniker.Moniker),
		stopper:              stopper,
		log:                  log,
	}

	for node, abstractDeps := range graph {
		concrete := make(map[moniker.Moniker]struct{})
		for dep := range abstractDeps {
			for m := range Expand(dep, live) {
				concrete[m] = struct{}{}
			}
		}
		for provider := range Expand(node, live) {
			dependents := make(map[moniker.Moniker]struct{}, len(concrete))
			for m := range concrete {
				dependents[m] = struct{}{}
			}
			s.providers[provider] = &shutdownInfo{moniker: provider, dependents: dependents}
		}
	}

	for provider, info := range s.providers {
		for consumer := range info.dependents {
			s.consumersToProviders[consumer] = append(s.consumersToProviders[consumer], provider)
		}
	}

	return s
}

type stopResult struct {
	moniker moniker.Moniker
	err     error
}

// Execute stops every provider exactly once, launching all currently-safe
// stops concurrently and promoting newly-unblocked providers as each stop
// completes. The first stop failure aborts immediately with a *StopError;
// already-launched stops are left running and are not cancelled. If the loop
// drains with providers left over they form a cycle and a *CycleError is
// returned with the survivors.
func (s *Scheduler) Execute(ctx context.Context) error {
	total := len(s.providers)
	// Sized for every provider so that stops abandoned by an abort can still
	// post their result without blocking.
	results := make(chan stopResult, total)

	ready := make([]moniker.Moniker, 0, total)
	for m, info := range s.providers {
		if len(info.dependents) == 0 {
			ready = append(ready, m)
		}
	}
	for _, m := range ready {
		delete(s.providers, m)
	}

	inFlight := 0
	for len(ready) > 0 || inFlight > 0 {
		for _, m := range ready {
			inFlight++
			go func(m moniker.Moniker) {
				start := time.Now()
				err := s.stopper.StopInstance(ctx, m)
				instanceStopDuration.Observe(time.Since(start).Seconds())
				results <- stopResult{moniker: m, err: err}
			}(m)
		}
		ready = ready[:0]

		res := <-results
		inFlight--
		if res.err != nil {
			instanceStopFailureTotal.Inc()
			return &StopError{Moniker: res.moniker, Err: res.err}
		}
		instanceStopTotal.Inc()
		s.log.V(1).Info("instance stopped", "moniker", res.moniker.String())

		for _, provider := range s.consumersToProviders[res.moniker] {
			info, ok := s.providers[provider]
			if !ok {
				continue
			}
			delete(info.dependents, res.moniker)
			if len(info.dependents) == 0 {
				delete(s.providers, provider)
				ready = append(ready, provider)
			}
		}
	}

	if len(s.providers) > 0 {
		remaining := make([]moniker.Moniker, 0, len(s.providers))
		for m := range s.providers {
			remaining = append(remaining, m)
		}
		sort.Slice(remaining, func(i, j int) bool {
			return remaining[i].String() < remaining[j].String()
		})
		return &CycleError{Remaining: remaining}
	}
	return nil
}
