package rift

import "go.uber.org/zap"

// Query caches memoize, per signature, the sparse set of slots whose mask is
// a superset of that signature. A cache is built once by a full scan and
// kept coherent incrementally by the helpers below. Every code path that
// flips a mask bit must go through exactly one of them; missing a site
// corrupts caches silently, so no caller touches a cache set directly.

// cacheFor returns the cache for sig, building it on first use.
func (em *EntityManager) cacheFor(sig ComponentMask) *SparseSet {
	if set, ok := em.caches[sig]; ok {
		return set
	}
	set := &SparseSet{}
	for i := range em.masks {
		if em.masks[i].contains(sig) {
			set.Insert(uint32(i))
		}
	}
	em.caches[sig] = set
	em.log.Debug("built query cache",
		zap.Int("entities", set.Len()),
		zap.Int("caches", len(em.caches)))
	return set
}

// insertIntoCaches records that family f was just set on slot i's mask. The
// slot joins every cache whose signature includes f and is now satisfied.
func (em *EntityManager) insertIntoCaches(i uint32, f ComponentFamily) {
	mask := em.masks[i]
	for sig, set := range em.caches {
		if sig.Test(f) && mask.contains(sig) {
			set.Insert(i)
		}
	}
}

// eraseFromCaches records that family f is about to be unset on slot i's
// mask. Must run before the bit flips: the slot leaves every cache whose
// signature includes f and was satisfied until now.
func (em *EntityManager) eraseFromCaches(i uint32, f ComponentFamily) {
	mask := em.masks[i]
	for sig, set := range em.caches {
		if sig.Test(f) && mask.contains(sig) {
			set.Erase(i)
		}
	}
}

// insertIntoMatchingCaches records that slot i's mask was populated
// wholesale (entity copy). The slot joins every cache it satisfies.
func (em *EntityManager) insertIntoMatchingCaches(i uint32) {
	mask := em.masks[i]
	for sig, set := range em.caches {
		if mask.contains(sig) {
			set.Insert(i)
		}
	}
}

// eraseFromAllCaches removes slot i everywhere its (still intact) mask put
// it. Runs on the flush side of destruction, before the mask clears.
func (em *EntityManager) eraseFromAllCaches(i uint32) {
	mask := em.masks[i]
	for sig, set := range em.caches {
		if mask.contains(sig) {
			set.Erase(i)
		}
	}
}
