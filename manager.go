package rift

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// EntityManager owns every entity slot, component pool and query cache. All
// structural operations run on the caller's goroutine and are mutually
// exclusive; the only concurrent primitive is ParForEntitiesWith, which
// locks the manager against structural change for its duration.
//
// The manager must not be copied once in use: entity handles keep a pointer
// to it.
type EntityManager struct {
	// Parallel per-slot state. A slot is either on the free stack or live
	// with a version of at least 1.
	masks    []ComponentMask
	versions []uint32

	free    []uint32  // LIFO of reusable slots
	pending SparseSet // slots marked for destruction this frame

	pools  []componentPool // family-indexed, lazily instantiated
	caches map[ComponentMask]*SparseSet

	resources Resources

	inParallel atomic.Bool
	log        *zap.Logger
}

// NewEntityManager creates an empty manager. Options may pre-size the slot
// arrays and attach a logger for debug instrumentation.
func NewEntityManager(opts ...Option) *EntityManager {
	em := &EntityManager{
		caches: make(map[ComponentMask]*SparseSet),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(em)
	}
	return em
}

// CreateEntity allocates a new entity and returns a handle to it. Slots are
// reused from the free stack before new ones are grown; a reused slot keeps
// the version its last destruction bumped it to, so stale handles stay
// stale.
func (em *EntityManager) CreateEntity() Entity {
	em.checkMutable()
	var i uint32
	if n := len(em.free); n > 0 {
		i = em.free[n-1]
		em.free = em.free[:n-1]
	} else {
		i = uint32(len(em.masks))
		em.masks = append(em.masks, ComponentMask{})
		em.versions = append(em.versions, 1)
	}
	return Entity{em: em, id: NewID(i, em.versions[i])}
}

// CreateEntities allocates n entities at once and returns their handles.
func (em *EntityManager) CreateEntities(n int) []Entity {
	if n <= 0 {
		return nil
	}
	ents := make([]Entity, n)
	for i := range ents {
		ents[i] = em.CreateEntity()
	}
	return ents
}

// CreateCopy allocates a new entity and gives it a copy of every component
// src owns. Component duplication is a plain Go assignment, so pointer
// fields are shared between the two entities. The copy joins every query
// cache its mask satisfies.
//
// It panics if src is invalid or belongs to another manager.
func (em *EntityManager) CreateCopy(src Entity) Entity {
	if src.em != em {
		panic("rift: cannot copy an entity owned by another manager")
	}
	if !src.Valid() {
		panic("rift: cannot copy an invalid entity")
	}
	dst := em.CreateEntity()
	srcIdx, dstIdx := src.id.Index(), dst.id.Index()
	mask := em.masks[srcIdx]
	mask.forEachBit(func(f ComponentFamily) {
		p := em.pools[f]
		p.grow(int(dstIdx) + 1)
		p.copySlot(dstIdx, srcIdx)
	})
	em.masks[dstIdx] = mask
	em.insertIntoMatchingCaches(dstIdx)
	return dst
}

// Valid reports whether id addresses a live slot with a matching version.
func (em *EntityManager) Valid(id ID) bool {
	i := id.Index()
	return int(i) < len(em.versions) && em.versions[i] == id.Version()
}

// destroy queues a slot for the next Flush. Set semantics: aliased handles
// destroying the same slot repeatedly queue it once.
func (em *EntityManager) destroy(i uint32) {
	em.checkMutable()
	if !em.pending.Contains(i) {
		em.pending.Insert(i)
	}
}

// Flush finalises every pending destruction: the slot leaves all query
// caches, its mask is cleared, its version is bumped (invalidating every
// outstanding handle), and it returns to the free stack. Component pool
// bytes are left in place until the next insert overwrites them; component
// types must not rely on teardown side effects.
//
// Hosts call Flush once per frame, normally via SystemManager.UpdateAll.
func (em *EntityManager) Flush() {
	em.checkMutable()
	if em.pending.Empty() {
		return
	}
	n := em.pending.Len()
	for _, i := range em.pending.Dense() {
		em.eraseFromAllCaches(i)
		em.masks[i] = ComponentMask{}
		em.versions[i]++
		em.free = append(em.free, i)
	}
	em.pending.Clear()
	em.log.Debug("flushed destroyed entities", zap.Int("count", n))
}

// Clear destroys every entity immediately, invalidating all outstanding
// handles and recycling every slot. Query caches are dropped entirely and
// rebuilt on their next use. Pool storage is retained.
func (em *EntityManager) Clear() {
	em.checkMutable()
	em.free = em.free[:0]
	for i := range em.masks {
		em.masks[i] = ComponentMask{}
		em.versions[i]++
	}
	// Refill the free stack so the lowest slot is reused first.
	for i := len(em.masks) - 1; i >= 0; i-- {
		em.free = append(em.free, uint32(i))
	}
	em.pending.Clear()
	em.caches = make(map[ComponentMask]*SparseSet)
	em.log.Debug("cleared entity manager", zap.Int("slots", len(em.masks)))
}

// Size returns the number of live entities, including those marked for
// destruction but not yet flushed.
func (em *EntityManager) Size() int {
	return len(em.masks) - len(em.free)
}

// Capacity returns the total number of slots the manager has ever grown to.
func (em *EntityManager) Capacity() int {
	return len(em.masks)
}

// NumberOfReusableEntities returns the size of the free stack.
func (em *EntityManager) NumberOfReusableEntities() int {
	return len(em.free)
}

// NumberOfEntitiesToDestroy returns the number of slots awaiting Flush.
func (em *EntityManager) NumberOfEntitiesToDestroy() int {
	return em.pending.Len()
}

// MaskFor returns the component mask for a live entity. It panics if id is
// invalid.
func (em *EntityManager) MaskFor(id ID) ComponentMask {
	if !em.Valid(id) {
		panic("rift: cannot fetch the component mask of an invalid entity")
	}
	return em.masks[id.Index()]
}

// Resources returns the manager's resource store.
func (em *EntityManager) Resources() *Resources {
	return &em.resources
}

// checkMutable panics when a structural mutation is attempted from inside a
// parallel iteration visitor.
func (em *EntityManager) checkMutable() {
	if em.inParallel.Load() {
		panic("rift: structural change during parallel iteration")
	}
}

func (em *EntityManager) beginParallel() {
	if !em.inParallel.CompareAndSwap(false, true) {
		panic("rift: nested parallel iteration")
	}
}

func (em *EntityManager) endParallel() {
	em.inParallel.Store(false)
}
