package rift

// componentPool is the type-erased face of a typed pool. The manager stores
// pools keyed by family and only ever needs two untyped operations: growth
// ahead of a mask flip, and slot duplication for entity copies. Everything
// typed goes through poolFor at the generic API boundary.
type componentPool interface {
	grow(n int)
	copySlot(dst, src uint32)
}

// pool is dense storage of one component type, addressed by entity slot
// index. The pool keeps no occupancy flags: the owning entity's mask bit is
// the only source of truth, and slots whose bit is unset may hold stale
// bytes until the next insert overwrites them.
type pool[C any] struct {
	data []C
}

// grow extends storage to cover slots [0, n), reallocating geometrically.
func (p *pool[C]) grow(n int) {
	if n <= len(p.data) {
		return
	}
	if cap(p.data) >= n {
		p.data = p.data[:n]
		return
	}
	grown := make([]C, n, max(2*cap(p.data), n))
	copy(grown, p.data)
	p.data = grown
}

func (p *pool[C]) copySlot(dst, src uint32) {
	p.data[dst] = p.data[src]
}

// at returns the component at slot i. The caller guarantees occupancy via
// the mask.
func (p *pool[C]) at(i uint32) *C {
	return &p.data[i]
}

// poolFor returns the manager's pool for family f, instantiating it on
// first use. f must be the family of C.
func poolFor[C any](em *EntityManager, f ComponentFamily) *pool[C] {
	if int(f) >= len(em.pools) {
		grown := make([]componentPool, f+1)
		copy(grown, em.pools)
		em.pools = grown
	}
	if em.pools[f] == nil {
		em.pools[f] = &pool[C]{}
	}
	return em.pools[f].(*pool[C])
}
