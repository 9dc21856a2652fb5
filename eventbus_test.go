package rift_test

import (
	"testing"

	rift "github.com/N-A-D/Rift"
	"github.com/stretchr/testify/assert"
)

type collisionEvent struct {
	Damage int
}

type spawnEvent struct {
	At Position
}

func TestEventBusSubscribeAndPublish(t *testing.T) {
	bus := &rift.EventBus{}
	received := 0
	rift.Subscribe(bus, func(e collisionEvent) {
		received += e.Damage
	})
	rift.Subscribe(bus, func(e collisionEvent) {
		received += e.Damage * 2
	})

	rift.Publish(bus, collisionEvent{Damage: 1})
	assert.Equal(t, 3, received)
	rift.Publish(bus, collisionEvent{Damage: 2})
	assert.Equal(t, 9, received)
}

func TestEventBusMultipleTypes(t *testing.T) {
	bus := &rift.EventBus{}
	damage := 0
	spawns := 0
	rift.Subscribe(bus, func(e collisionEvent) {
		damage += e.Damage
	})
	rift.Subscribe(bus, func(e spawnEvent) {
		spawns++
	})

	rift.Publish(bus, collisionEvent{Damage: 42})
	rift.Publish(bus, spawnEvent{At: Position{X: 1}})
	assert.Equal(t, 42, damage)
	assert.Equal(t, 1, spawns)
}

func TestEventBusNoHandlers(t *testing.T) {
	bus := &rift.EventBus{}
	assert.NotPanics(t, func() {
		rift.Publish(bus, collisionEvent{Damage: 1})
	})
}

func TestEventBusHandlerOrder(t *testing.T) {
	bus := &rift.EventBus{}
	var order []int
	rift.Subscribe(bus, func(collisionEvent) { order = append(order, 1) })
	rift.Subscribe(bus, func(collisionEvent) { order = append(order, 2) })
	rift.Subscribe(bus, func(collisionEvent) { order = append(order, 3) })

	rift.Publish(bus, collisionEvent{})
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestEventBusAsResource(t *testing.T) {
	em := rift.NewEntityManager()
	rift.AddResource(em.Resources(), &rift.EventBus{})

	fired := false
	bus := rift.GetResource[rift.EventBus](em.Resources())
	rift.Subscribe(bus, func(spawnEvent) { fired = true })
	rift.Publish(bus, spawnEvent{})
	assert.True(t, fired)
}
