package rift

// Component operations are package-level generic functions over an entity
// handle; Go methods cannot carry their own type parameters. Every function
// validates the handle and asserts its component-level precondition,
// panicking on misuse. None of them has a recoverable failure mode.
//
// Component types must be plain data: any 'static struct works, and copies
// made by Replace and CreateCopy are plain assignments.

// Add attaches a freshly constructed component of type C to the entity and
// returns a pointer to it. The entity joins every existing query cache its
// new mask satisfies.
//
// It panics if the handle is invalid or the entity already has a C.
func Add[C any](e Entity, c C) *C {
	em := mustManager(e, "cannot add a component to an invalid entity")
	em.checkMutable()
	f := FamilyOf[C]()
	i := e.id.Index()
	if em.masks[i].Test(f) {
		panic("rift: entity already has a component of the given type")
	}
	p := poolFor[C](em, f)
	// Grow before flipping the bit so the registry stays coherent if
	// allocation aborts.
	p.grow(int(i) + 1)
	p.data[i] = c
	em.masks[i].set(f)
	em.insertIntoCaches(i, f)
	return &p.data[i]
}

// Replace overwrites the entity's existing component of type C. Mask and
// query caches are untouched.
//
// It panics if the handle is invalid or the entity has no C.
func Replace[C any](e Entity, c C) *C {
	em := mustManager(e, "cannot replace a component on an invalid entity")
	f := FamilyOf[C]()
	i := e.id.Index()
	if !em.masks[i].Test(f) {
		panic("rift: entity does not have a component of the given type")
	}
	p := poolFor[C](em, f)
	p.data[i] = c
	return &p.data[i]
}

// Remove detaches the entity's component of type C. The entity leaves every
// query cache whose signature includes C. The pool slot is not cleared; its
// bytes are overwritten by the next Add on this slot, so component types
// must not rely on teardown side effects.
//
// It panics if the handle is invalid or the entity has no C.
func Remove[C any](e Entity) {
	em := mustManager(e, "cannot remove a component from an invalid entity")
	em.checkMutable()
	f := FamilyOf[C]()
	i := e.id.Index()
	if !em.masks[i].Test(f) {
		panic("rift: entity does not have a component of the given type")
	}
	em.eraseFromCaches(i, f)
	em.masks[i].unset(f)
}

// Has reports whether the entity owns a component of type C. It panics if
// the handle is invalid.
func Has[C any](e Entity) bool {
	em := mustManager(e, "cannot check components of an invalid entity")
	return em.masks[e.id.Index()].Test(FamilyOf[C]())
}

// Get returns a pointer to the entity's component of type C. The pointer
// addresses the pool's current storage: an Add or CreateCopy that grows the
// pool for C moves that storage, after which writes through the old pointer
// no longer reach the component, and the slot belongs to a new entity once
// it is reused after a flush. Holding the pointer across such calls is a
// misuse the manager cannot detect.
//
// It panics if the handle is invalid or the entity has no C.
func Get[C any](e Entity) *C {
	em := mustManager(e, "cannot fetch a component of an invalid entity")
	f := FamilyOf[C]()
	i := e.id.Index()
	if !em.masks[i].Test(f) {
		panic("rift: entity does not have a component of the given type")
	}
	return poolFor[C](em, f).at(i)
}

// GetSafe is the non-panicking accessor: it returns (nil, false) when the
// handle is invalid or the entity has no C.
func GetSafe[C any](e Entity) (*C, bool) {
	if !e.Valid() {
		return nil, false
	}
	em := e.em
	f := FamilyOf[C]()
	i := e.id.Index()
	if !em.masks[i].Test(f) {
		return nil, false
	}
	return poolFor[C](em, f).at(i), true
}

func mustManager(e Entity, msg string) *EntityManager {
	if !e.Valid() {
		panic("rift: " + msg)
	}
	return e.em
}
