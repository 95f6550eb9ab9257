package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/revisor-lab/revisor/pkg/domain/interfaces"
	"github.com/revisor-lab/revisor/pkg/kv"
	"github.com/revisor-lab/revisor/pkg/utils/logging"
)

const initializedValue = "true"

// config parameterizes the generic collection engine for one entity
// type. T is the entity, P its patch type.
type config[T any, P any] struct {
	// name prefixes the backend keys: "<name>_data",
	// "<name>_initialized" and, when ledger is set,
	// "<name>_deleted_ids".
	name string

	// seed is written on the very first activation only
	seed []T

	// ledger enables the persisted deleted-ids ledger consulted when
	// defaults are restored
	ledger bool

	id        func(*T) int
	setID     func(*T, int)
	stamp     func(*T, interfaces.Clock) // nil when the entity carries no creation timestamp
	clone     func(T) T
	apply     func(P, *T)
	normalize func(*T) error
}

// engine owns the authoritative in-memory collection for one entity
// type and keeps it synchronized to the backend. All operations are
// synchronous; every successful mutation persists the whole collection.
// Storage failures are logged and swallowed: the in-memory state stays
// authoritative for the session.
type engine[T any, P any] struct {
	mu      sync.Mutex
	backend interfaces.Backend
	clock   interfaces.Clock
	cfg     config[T, P]
	items   []T
	loaded  bool
}

func newEngine[T any, P any](backend interfaces.Backend, clock interfaces.Clock, cfg config[T, P]) *engine[T, P] {
	if clock == nil {
		clock = interfaces.RealClock
	}
	return &engine[T, P]{
		backend: backend,
		clock:   clock,
		cfg:     cfg,
	}
}

func (e *engine[T, P]) dataKey() string   { return e.cfg.name + "_data" }
func (e *engine[T, P]) markerKey() string { return e.cfg.name + "_initialized" }
func (e *engine[T, P]) ledgerKey() string { return e.cfg.name + "_deleted_ids" }

// ensureLoaded runs the first-activation state machine. Callers must
// hold the mutex.
func (e *engine[T, P]) ensureLoaded(ctx context.Context) {
	if e.loaded {
		return
	}
	e.loaded = true

	if items := e.loadCollection(ctx); len(items) > 0 {
		e.items = items
		return
	}

	if !e.initialized(ctx) {
		// First run: seed the collection and mark initialized.
		e.items = e.cloneAll(e.cfg.seed)
		e.persist(ctx)
		e.markInitialized(ctx)
		return
	}

	// Marker present but no usable data. Ledger-enabled stores restore
	// the seed records the user has not explicitly deleted; the rest
	// stay deliberately empty.
	if e.cfg.ledger {
		e.items = e.seedMinusLedger(ctx)
		if len(e.items) > 0 {
			e.persist(ctx)
		}
		e.markInitialized(ctx)
		return
	}

	e.items = []T{}
}

// loadCollection reads and decodes the persisted collection. Malformed
// records are dropped individually so one bad element never discards
// its siblings. Read failures degrade to "no data".
func (e *engine[T, P]) loadCollection(ctx context.Context) []T {
	blob, err := e.backend.Get(ctx, e.dataKey())
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			logging.From(ctx).Warn("failed to load collection, treating as empty",
				"store", e.cfg.name, "error", err)
		}
		return nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(blob, &raws); err != nil {
		logging.From(ctx).Warn("persisted collection is not a JSON array, treating as empty",
			"store", e.cfg.name, "error", err)
		return nil
	}

	items := make([]T, 0, len(raws))
	for _, raw := range raws {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			logging.From(ctx).Warn("dropping malformed record",
				"store", e.cfg.name, "error", err)
			continue
		}
		if e.cfg.normalize != nil {
			if err := e.cfg.normalize(&item); err != nil {
				logging.From(ctx).Warn("dropping record that failed normalization",
					"store", e.cfg.name, "error", err)
				continue
			}
		}
		items = append(items, item)
	}
	return items
}

func (e *engine[T, P]) initialized(ctx context.Context) bool {
	blob, err := e.backend.Get(ctx, e.markerKey())
	return err == nil && string(blob) == initializedValue
}

func (e *engine[T, P]) markInitialized(ctx context.Context) {
	if err := e.backend.Put(ctx, e.markerKey(), []byte(initializedValue)); err != nil {
		logging.From(ctx).Warn("failed to write first-run marker",
			"store", e.cfg.name, "error", err)
	}
}

// persist writes the whole collection. Failures are logged, never
// propagated: the worst outcome is an unsaved change.
func (e *engine[T, P]) persist(ctx context.Context) {
	blob, err := json.Marshal(e.items)
	if err != nil {
		logging.From(ctx).Warn("failed to encode collection",
			"store", e.cfg.name, "error", err)
		return
	}
	if err := e.backend.Put(ctx, e.dataKey(), blob); err != nil {
		logging.From(ctx).Warn("failed to persist collection",
			"store", e.cfg.name, "error", err)
	}
}

func (e *engine[T, P]) deletedIDs(ctx context.Context) []int {
	if !e.cfg.ledger {
		return nil
	}
	blob, err := e.backend.Get(ctx, e.ledgerKey())
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			logging.From(ctx).Warn("failed to load deleted-ids ledger",
				"store", e.cfg.name, "error", err)
		}
		return nil
	}
	var ids []int
	if err := json.Unmarshal(blob, &ids); err != nil {
		logging.From(ctx).Warn("malformed deleted-ids ledger, treating as empty",
			"store", e.cfg.name, "error", err)
		return nil
	}
	return ids
}

func (e *engine[T, P]) markDeleted(ctx context.Context, id int) {
	ids := e.deletedIDs(ctx)
	for _, existing := range ids {
		if existing == id {
			return
		}
	}
	ids = append(ids, id)
	blob, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := e.backend.Put(ctx, e.ledgerKey(), blob); err != nil {
		logging.From(ctx).Warn("failed to persist deleted-ids ledger",
			"store", e.cfg.name, "error", err)
	}
}

func (e *engine[T, P]) seedMinusLedger(ctx context.Context) []T {
	deleted := e.deletedIDs(ctx)
	isDeleted := func(id int) bool {
		for _, d := range deleted {
			if d == id {
				return true
			}
		}
		return false
	}

	items := make([]T, 0, len(e.cfg.seed))
	for _, s := range e.cfg.seed {
		if isDeleted(e.cfg.id(&s)) {
			continue
		}
		items = append(items, e.cfg.clone(s))
	}
	return items
}

func (e *engine[T, P]) cloneAll(items []T) []T {
	copied := make([]T, 0, len(items))
	for _, item := range items {
		copied = append(copied, e.cfg.clone(item))
	}
	return copied
}

func (e *engine[T, P]) nextID() int {
	maxID := 0
	for i := range e.items {
		if id := e.cfg.id(&e.items[i]); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// List returns a snapshot of the collection
func (e *engine[T, P]) List(ctx context.Context) []T {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureLoaded(ctx)

	return e.cloneAll(e.items)
}

// Get returns the record with the given ID
func (e *engine[T, P]) Get(ctx context.Context, id int) (T, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureLoaded(ctx)

	for i := range e.items {
		if e.cfg.id(&e.items[i]) == id {
			return e.cfg.clone(e.items[i]), true
		}
	}
	var zero T
	return zero, false
}

// Add assigns the next ID, stamps the creation time where the entity
// carries one, appends the record and persists the collection. The ID
// is max(existing)+1, so deleting the highest record frees its ID for
// reuse; that is long-standing store behavior, not an accident.
func (e *engine[T, P]) Add(ctx context.Context, item T) T {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureLoaded(ctx)

	created := e.cfg.clone(item)
	e.cfg.setID(&created, e.nextID())
	if e.cfg.stamp != nil {
		e.cfg.stamp(&created, e.clock)
	}

	e.items = append(e.items, created)
	e.persist(ctx)
	return e.cfg.clone(created)
}

// Update shallow-merges the patch onto the matching record. A missing
// ID is a silent no-op.
func (e *engine[T, P]) Update(ctx context.Context, id int, patch P) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureLoaded(ctx)

	for i := range e.items {
		if e.cfg.id(&e.items[i]) == id {
			e.cfg.apply(patch, &e.items[i])
			e.persist(ctx)
			return
		}
	}
}

// Remove filters the record out and persists the reduced collection.
// Ledger-enabled stores also record the ID so a defaults restore never
// resurrects it. A missing ID is a silent no-op.
func (e *engine[T, P]) Remove(ctx context.Context, id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureLoaded(ctx)

	for i := range e.items {
		if e.cfg.id(&e.items[i]) == id {
			if e.cfg.ledger {
				e.markDeleted(ctx, id)
			}
			e.items = append(e.items[:i], e.items[i+1:]...)
			e.persist(ctx)
			return
		}
	}
}

// mutate locates the record and hands it to fn for in-place edits,
// persisting when fn reports a change. Used for nested-collection
// operations. A missing ID is a silent no-op.
func (e *engine[T, P]) mutate(ctx context.Context, id int, fn func(*T) bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureLoaded(ctx)

	for i := range e.items {
		if e.cfg.id(&e.items[i]) == id {
			if fn(&e.items[i]) {
				e.persist(ctx)
			}
			return
		}
	}
}

// ClearAll empties the collection and erases every persisted key for
// this store, including the first-run marker, so a later fresh session
// reseeds naturally.
func (e *engine[T, P]) ClearAll(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.loaded = true
	e.items = []T{}

	for _, key := range []string{e.dataKey(), e.markerKey(), e.ledgerKey()} {
		if err := e.backend.Delete(ctx, key); err != nil {
			logging.From(ctx).Warn("failed to erase store key",
				"store", e.cfg.name, "key", key, "error", err)
		}
	}
}

// RestoreDefaults recomputes the seed set minus the deleted-ids ledger,
// persists it and re-marks the store initialized.
func (e *engine[T, P]) RestoreDefaults(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.loaded = true
	e.items = e.seedMinusLedger(ctx)
	e.persist(ctx)
	e.markInitialized(ctx)
}

// Count returns the number of records currently in the collection
func (e *engine[T, P]) Count(ctx context.Context) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureLoaded(ctx)

	return len(e.items)
}
