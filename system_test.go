package rift_test

import (
	"testing"

	rift "github.com/N-A-D/Rift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test systems ---

type MovementSystem struct{}

func (MovementSystem) Update(em *rift.EntityManager, dt float64) {
	rift.ForEntitiesWith2(em, func(_ rift.Entity, p *Position, d *Direction) {
		p.X += d.X * dt
		p.Y += d.Y * dt
	})
}

type DecaySystem struct {
	Threshold int
}

func (s *DecaySystem) Update(em *rift.EntityManager, _ float64) {
	rift.ForEntitiesWith(em, func(e rift.Entity, h *Health) {
		h.Current--
		if h.Current <= s.Threshold {
			e.Destroy()
		}
	})
}

type orderProbe struct {
	name string
	log  *[]string
}

func (s orderProbe) Update(*rift.EntityManager, float64) {
	*s.log = append(*s.log, s.name)
}

type probeA struct{ orderProbe }
type probeB struct{ orderProbe }

func TestMovementSystem(t *testing.T) {
	em := newManager(t)
	sm := rift.NewSystemManager(em)
	rift.AddSystem(sm, MovementSystem{})

	ents := em.CreateEntities(4)
	for _, e := range ents {
		rift.Add(e, Position{})
		rift.Add(e, Direction{X: 1, Y: 0})
	}

	sm.UpdateAll(1.0)
	for _, e := range ents {
		assert.Equal(t, Position{X: 1, Y: 0}, *rift.Get[Position](e))
	}
}

func TestSystemRegistration(t *testing.T) {
	em := newManager(t)
	sm := rift.NewSystemManager(em)

	assert.False(t, rift.HasSystem[*DecaySystem](sm))
	rift.AddSystem(sm, &DecaySystem{Threshold: 1})
	require.True(t, rift.HasSystem[*DecaySystem](sm))
	assert.Equal(t, 1, rift.GetSystem[*DecaySystem](sm).Threshold)

	assert.Panics(t, func() { rift.AddSystem(sm, &DecaySystem{}) })

	rift.RemoveSystem[*DecaySystem](sm)
	assert.False(t, rift.HasSystem[*DecaySystem](sm))
	assert.Panics(t, func() { rift.RemoveSystem[*DecaySystem](sm) })
	assert.Panics(t, func() { rift.GetSystem[*DecaySystem](sm) })
}

func TestUpdateAllFlushesDeferredDestructions(t *testing.T) {
	em := newManager(t)
	sm := rift.NewSystemManager(em)
	rift.AddSystem(sm, &DecaySystem{Threshold: 0})

	ents := em.CreateEntities(3)
	for _, e := range ents {
		rift.Add(e, Health{Current: 1, Max: 1})
	}

	sm.UpdateAll(1.0)
	for _, e := range ents {
		assert.False(t, e.Valid())
	}
	assert.Equal(t, 0, em.Size())
}

func TestUpdateAllRunsInFamilyOrder(t *testing.T) {
	em := newManager(t)
	sm := rift.NewSystemManager(em)

	var log []string
	// Registration order assigns families, which fixes the update order.
	rift.AddSystem(sm, probeA{orderProbe{name: "a", log: &log}})
	rift.AddSystem(sm, probeB{orderProbe{name: "b", log: &log}})

	sm.UpdateAll(0)
	assert.Equal(t, []string{"a", "b"}, log)
}

func TestUpdateSystemsRunsListedOrder(t *testing.T) {
	em := newManager(t)
	sm := rift.NewSystemManager(em)

	var log []string
	a := probeA{orderProbe{name: "a", log: &log}}
	b := probeB{orderProbe{name: "b", log: &log}}
	rift.AddSystem(sm, a)
	rift.AddSystem(sm, b)

	sm.UpdateSystems(0, b, a)
	assert.Equal(t, []string{"b", "a"}, log)

	e := em.CreateEntity()
	e.Destroy()
	sm.UpdateSystems(0)
	assert.False(t, e.Valid())
}
