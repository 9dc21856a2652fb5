package rift

// Sequential iteration resolves the signature's query cache (building it on
// first use) and applies the visitor to every slot in the cache's dense
// array, passing a live handle plus pointers into the component pools.
//
// Visitors may mutate components, add or remove components on any entity
// (including the one being visited) and call Destroy. Mutations that change
// membership in the signature under iteration edit the dense array the loop
// is scanning: an entity inserted during the pass is appended to it and is
// visited later in the same pass, and erasing swaps the last entry into the
// erased position, so that moved entity is visited later only if the
// erased position lies beyond the cursor; if the erased entity is the
// current one or was already visited, the moved entity is skipped for the
// rest of the pass. Entities that are never moved are visited exactly once;
// code must not depend on more than that.
//
// An arity exists per component count; signatures are order-independent.

// ForEntitiesWith applies f to every entity that has a component of type A.
func ForEntitiesWith[A any](em *EntityManager, f func(Entity, *A)) {
	fa := FamilyOf[A]()
	c := em.cacheFor(maskOf(fa))
	pa := poolFor[A](em, fa)
	for i := 0; i < c.Len(); i++ {
		idx := c.dense[i]
		f(Entity{em: em, id: NewID(idx, em.versions[idx])}, pa.at(idx))
	}
}

// ForEntitiesWith2 applies f to every entity that has components of types A
// and B.
func ForEntitiesWith2[A, B any](em *EntityManager, f func(Entity, *A, *B)) {
	fa, fb := FamilyOf[A](), FamilyOf[B]()
	c := em.cacheFor(SignatureFor2[A, B]())
	pa := poolFor[A](em, fa)
	pb := poolFor[B](em, fb)
	for i := 0; i < c.Len(); i++ {
		idx := c.dense[i]
		f(Entity{em: em, id: NewID(idx, em.versions[idx])}, pa.at(idx), pb.at(idx))
	}
}

// ForEntitiesWith3 applies f to every entity that has components of types A,
// B and C.
func ForEntitiesWith3[A, B, C any](em *EntityManager, f func(Entity, *A, *B, *C)) {
	fa, fb, fc := FamilyOf[A](), FamilyOf[B](), FamilyOf[C]()
	c := em.cacheFor(SignatureFor3[A, B, C]())
	pa := poolFor[A](em, fa)
	pb := poolFor[B](em, fb)
	pc := poolFor[C](em, fc)
	for i := 0; i < c.Len(); i++ {
		idx := c.dense[i]
		f(Entity{em: em, id: NewID(idx, em.versions[idx])}, pa.at(idx), pb.at(idx), pc.at(idx))
	}
}

// ForEntitiesWith4 applies f to every entity that has components of types A,
// B, C and D.
func ForEntitiesWith4[A, B, C, D any](em *EntityManager, f func(Entity, *A, *B, *C, *D)) {
	fa, fb, fc, fd := FamilyOf[A](), FamilyOf[B](), FamilyOf[C](), FamilyOf[D]()
	c := em.cacheFor(SignatureFor4[A, B, C, D]())
	pa := poolFor[A](em, fa)
	pb := poolFor[B](em, fb)
	pc := poolFor[C](em, fc)
	pd := poolFor[D](em, fd)
	for i := 0; i < c.Len(); i++ {
		idx := c.dense[i]
		f(Entity{em: em, id: NewID(idx, em.versions[idx])}, pa.at(idx), pb.at(idx), pc.at(idx), pd.at(idx))
	}
}

// ForEntitiesWith5 applies f to every entity that has components of the
// five listed types.
func ForEntitiesWith5[A, B, C, D, E any](em *EntityManager, f func(Entity, *A, *B, *C, *D, *E)) {
	fa, fb, fc, fd, fe := FamilyOf[A](), FamilyOf[B](), FamilyOf[C](), FamilyOf[D](), FamilyOf[E]()
	c := em.cacheFor(SignatureFor5[A, B, C, D, E]())
	pa := poolFor[A](em, fa)
	pb := poolFor[B](em, fb)
	pc := poolFor[C](em, fc)
	pd := poolFor[D](em, fd)
	pe := poolFor[E](em, fe)
	for i := 0; i < c.Len(); i++ {
		idx := c.dense[i]
		f(Entity{em: em, id: NewID(idx, em.versions[idx])}, pa.at(idx), pb.at(idx), pc.at(idx), pd.at(idx), pe.at(idx))
	}
}

// ForEntitiesWith6 applies f to every entity that has components of the six
// listed types.
func ForEntitiesWith6[A, B, C, D, E, F any](em *EntityManager, f func(Entity, *A, *B, *C, *D, *E, *F)) {
	fa, fb, fc, fd, fe, ff := FamilyOf[A](), FamilyOf[B](), FamilyOf[C](), FamilyOf[D](), FamilyOf[E](), FamilyOf[F]()
	c := em.cacheFor(SignatureFor6[A, B, C, D, E, F]())
	pa := poolFor[A](em, fa)
	pb := poolFor[B](em, fb)
	pc := poolFor[C](em, fc)
	pd := poolFor[D](em, fd)
	pe := poolFor[E](em, fe)
	pf := poolFor[F](em, ff)
	for i := 0; i < c.Len(); i++ {
		idx := c.dense[i]
		f(Entity{em: em, id: NewID(idx, em.versions[idx])}, pa.at(idx), pb.at(idx), pc.at(idx), pd.at(idx), pe.at(idx), pf.at(idx))
	}
}

// NumberOfEntitiesWith returns how many entities have a component of type A.
// Like iteration, it builds and then reuses the signature's query cache.
func NumberOfEntitiesWith[A any](em *EntityManager) int {
	return em.cacheFor(SignatureFor[A]()).Len()
}

// NumberOfEntitiesWith2 returns how many entities have components of types A
// and B.
func NumberOfEntitiesWith2[A, B any](em *EntityManager) int {
	return em.cacheFor(SignatureFor2[A, B]()).Len()
}

// NumberOfEntitiesWith3 returns how many entities have components of types
// A, B and C.
func NumberOfEntitiesWith3[A, B, C any](em *EntityManager) int {
	return em.cacheFor(SignatureFor3[A, B, C]()).Len()
}

// NumberOfEntitiesWith4 returns how many entities have components of types
// A, B, C and D.
func NumberOfEntitiesWith4[A, B, C, D any](em *EntityManager) int {
	return em.cacheFor(SignatureFor4[A, B, C, D]()).Len()
}

// NumberOfEntitiesWith5 returns how many entities have components of the
// five listed types.
func NumberOfEntitiesWith5[A, B, C, D, E any](em *EntityManager) int {
	return em.cacheFor(SignatureFor5[A, B, C, D, E]()).Len()
}

// NumberOfEntitiesWith6 returns how many entities have components of the
// six listed types.
func NumberOfEntitiesWith6[A, B, C, D, E, F any](em *EntityManager) int {
	return em.cacheFor(SignatureFor6[A, B, C, D, E, F]()).Len()
}
