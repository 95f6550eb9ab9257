// Package store implements the entity stores: one authoritative
// in-memory collection per entity type, synchronized as a whole to a
// persisted key-value backend. Each store follows the same lifecycle
// (lazy load, first-run seeding, synchronous persist on mutation) via
// a shared generic engine.
package store

import (
	"github.com/revisor-lab/revisor/pkg/domain/interfaces"
)

// Stores bundles the five entity stores over one backend
type Stores struct {
	AuditTypes *AuditTypeStore
	Audits     *AuditStore
	Executions *ChecklistStore
	Actions    *ActionStore
	Reports    *ReportStore
}

type options struct {
	clock interfaces.Clock
	seeds Seeds
}

type Option func(*options)

// WithClock pins the timestamp source, mainly for tests
func WithClock(clock interfaces.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithSeeds replaces the built-in default records. Pass an empty Seeds
// to start every store blank.
func WithSeeds(seeds Seeds) Option {
	return func(o *options) {
		o.seeds = seeds
	}
}

// New builds the store bundle over the given backend
func New(backend interfaces.Backend, opts ...Option) *Stores {
	o := &options{
		clock: interfaces.RealClock,
		seeds: DefaultSeeds(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Stores{
		AuditTypes: newAuditTypeStore(backend, o.clock, o.seeds.AuditTypes),
		Audits:     newAuditStore(backend, o.clock, o.seeds.Audits),
		Executions: newChecklistStore(backend, o.clock, o.seeds.Executions),
		Actions:    newActionStore(backend, o.clock, o.seeds.Actions),
		Reports:    newReportStore(backend, o.clock, o.seeds.Reports),
	}
}
