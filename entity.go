package rift

import "fmt"

// ID is a versionable index. The low 32 bits address a slot in the
// EntityManager's parallel arrays; the high 32 bits carry the slot's
// generation at the time the handle was issued. The zero value (version 0)
// is the invalid sentinel: no live entity ever has version 0.
type ID uint64

// InvalidID is the sentinel for operations that have no entity to refer to.
// It never validates against any manager.
const InvalidID ID = 0

// NewID packs a slot index and a version into an ID.
func NewID(index, version uint32) ID {
	return ID(uint64(index) | uint64(version)<<32)
}

// Index returns the slot portion of the ID.
func (id ID) Index() uint32 {
	return uint32(id)
}

// Version returns the generation portion of the ID.
func (id ID) Version() uint32 {
	return uint32(uint64(id) >> 32)
}

// Number returns the packed 64-bit value. IDs are totally ordered by it.
func (id ID) Number() uint64 {
	return uint64(id)
}

func (id ID) String() string {
	return fmt.Sprintf("ID(index=%d,version=%d)", id.Index(), id.Version())
}

// Entity is a copyable value handle to an entity: the pair of the manager
// that issued it and the versioned ID it was issued with. Two handles are
// equal only when both halves match. A handle stays usable until the slot's
// version moves past it, which happens when a destroy is flushed.
//
// Handles hold a plain pointer to their manager and must not outlive it.
type Entity struct {
	em *EntityManager
	id ID
}

// ID returns the handle's versioned ID.
func (e Entity) ID() ID {
	return e.id
}

// Manager returns the manager that issued this handle, or nil for the zero
// handle.
func (e Entity) Manager() *EntityManager {
	return e.em
}

// Valid reports whether the handle still addresses a live slot: its version
// must equal the slot's current version. The zero Entity is never valid.
func (e Entity) Valid() bool {
	return e.em != nil && e.em.Valid(e.id)
}

// Destroy marks the entity for destruction at the end of the current frame.
// The entity and every other handle aliasing its slot remain valid and fully
// usable until the manager's next Flush. Marking the same slot repeatedly is
// a no-op.
//
// It panics if the handle is invalid.
func (e Entity) Destroy() {
	if !e.Valid() {
		panic("rift: cannot destroy an invalid entity")
	}
	e.em.destroy(e.id.Index())
}

// MarkedForDestruction reports whether the entity's slot is queued for the
// next Flush. It panics if the handle is invalid.
func (e Entity) MarkedForDestruction() bool {
	if !e.Valid() {
		panic("rift: cannot inspect an invalid entity")
	}
	return e.em.pending.Contains(e.id.Index())
}

// ComponentMask returns a copy of the entity's current component mask.
// It panics if the handle is invalid.
func (e Entity) ComponentMask() ComponentMask {
	if !e.Valid() {
		panic("rift: cannot fetch the component mask of an invalid entity")
	}
	return e.em.masks[e.id.Index()]
}

// Less orders handles by their packed IDs. Ordering is only meaningful
// between handles issued by the same manager.
func (e Entity) Less(other Entity) bool {
	return e.id < other.id
}

// Hash folds the handle's ID into 32 bits (index XOR version).
func (e Entity) Hash() uint32 {
	return e.id.Index() ^ e.id.Version()
}

func (e Entity) String() string {
	return fmt.Sprintf("Entity(%v)", e.id)
}
