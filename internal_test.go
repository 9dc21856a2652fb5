package rift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type posComp struct{ X, Y float64 }
type dirComp struct{ X, Y float64 }
type tagComp struct{}

// checkCacheCoherence asserts that every cached signature holds exactly the
// slots whose mask is a superset of it.
func checkCacheCoherence(t *testing.T, em *EntityManager) {
	t.Helper()
	for sig, set := range em.caches {
		for i := range em.masks {
			want := em.masks[i].contains(sig)
			require.Equal(t, want, set.Contains(uint32(i)),
				"cache for %v disagrees with mask of slot %d", sig, i)
		}
	}
}

func TestCachesStayCoherent(t *testing.T) {
	ResetComponentRegistry()
	em := NewEntityManager()

	// Warm caches for every signature combination in play.
	NumberOfEntitiesWith[posComp](em)
	NumberOfEntitiesWith[dirComp](em)
	NumberOfEntitiesWith2[posComp, dirComp](em)
	NumberOfEntitiesWith2[posComp, tagComp](em)

	ents := em.CreateEntities(32)
	for i, e := range ents {
		Add(e, posComp{X: float64(i)})
		if i%2 == 0 {
			Add(e, dirComp{})
		}
		if i%3 == 0 {
			Add(e, tagComp{})
		}
	}
	checkCacheCoherence(t, em)

	for i, e := range ents {
		switch i % 4 {
		case 0:
			Remove[posComp](e)
		case 1:
			e.Destroy()
		case 2:
			em.CreateCopy(e)
		}
	}
	checkCacheCoherence(t, em)

	em.Flush()
	checkCacheCoherence(t, em)

	em.Clear()
	checkCacheCoherence(t, em)
}

func TestCacheBuildOnMissScansExistingEntities(t *testing.T) {
	ResetComponentRegistry()
	em := NewEntityManager()
	ents := em.CreateEntities(10)
	for _, e := range ents[:7] {
		Add(e, posComp{})
	}

	// No cache exists yet; the first query builds it by scanning.
	require.Empty(t, em.caches)
	assert.Equal(t, 7, NumberOfEntitiesWith[posComp](em))
	require.Len(t, em.caches, 1)

	// Subsequent mutations maintain the entry instead of rebuilding.
	Add(ents[7], posComp{})
	assert.Equal(t, 8, NumberOfEntitiesWith[posComp](em))
	checkCacheCoherence(t, em)
}

func TestComponentFamiliesAreStable(t *testing.T) {
	ResetComponentRegistry()
	f1 := FamilyOf[posComp]()
	f2 := FamilyOf[dirComp]()
	assert.NotEqual(t, f1, f2)
	assert.Equal(t, f1, FamilyOf[posComp]())
	assert.Equal(t, f2, FamilyOf[dirComp]())
}

func TestComponentRegistryBound(t *testing.T) {
	ResetComponentRegistry()
	defer ResetComponentRegistry()

	// Filling the registry up to the bound succeeds...
	nextComponentFamily = MaxComponentTypes - 1
	assert.NotPanics(t, func() { FamilyOf[struct{ last int }]() })

	// ...and one more type past it aborts.
	assert.Panics(t, func() { FamilyOf[struct{ overflow int }]() })
}

func TestPoolKeepsStaleBytesUnaddressable(t *testing.T) {
	ResetComponentRegistry()
	em := NewEntityManager()
	e := em.CreateEntity()
	Add(e, posComp{X: 5})
	Remove[posComp](e)

	// The mask bit is the source of truth; the pool slot's bytes remain
	// but cannot be reached through the API.
	f := FamilyOf[posComp]()
	assert.False(t, em.masks[e.id.Index()].Test(f))
	assert.False(t, Has[posComp](e))

	// A fresh insert overwrites them.
	Add(e, posComp{X: 7})
	assert.Equal(t, 7.0, Get[posComp](e).X)
}

func TestFreeStackIsLIFO(t *testing.T) {
	ResetComponentRegistry()
	em := NewEntityManager()
	ents := em.CreateEntities(3)
	for _, e := range ents {
		e.Destroy()
	}
	em.Flush()

	// The most recently freed slot is reused first.
	e := em.CreateEntity()
	assert.Equal(t, ents[2].id.Index(), e.id.Index())
}
