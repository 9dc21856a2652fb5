package rift

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// System is a bulk transformation driven once per frame. Implementations
// usually iterate one signature and rewrite its components.
type System interface {
	Update(em *EntityManager, dt float64)
}

// SystemFamily is the dense integer identity of a system type within one
// process, assigned at first use like component families.
type SystemFamily uint32

var (
	nextSystemFamily SystemFamily
	systemFamilies   = make(map[reflect.Type]SystemFamily)
)

// SystemFamilyOf returns the family of system type S, assigning the next
// free family on first use.
func SystemFamilyOf[S System]() SystemFamily {
	t := reflect.TypeFor[S]()
	if f, ok := systemFamilies[t]; ok {
		return f
	}
	f := nextSystemFamily
	systemFamilies[t] = f
	nextSystemFamily++
	return f
}

// ResetSystemRegistry clears the process-wide system family assignments.
// Meant for tests; managers built before the reset must go with it.
func ResetSystemRegistry() {
	nextSystemFamily = 0
	systemFamilies = make(map[reflect.Type]SystemFamily)
}

// SystemManager owns at most one instance of each system type and drives
// their updates against one EntityManager. After running systems it flushes
// the manager, finalising every destruction the frame requested.
type SystemManager struct {
	em      *EntityManager
	systems []System // family-indexed; nil when absent
	log     *zap.Logger
}

// NewSystemManager creates a manager that updates systems against em.
func NewSystemManager(em *EntityManager) *SystemManager {
	return &SystemManager{em: em, log: em.log}
}

// AddSystem stores sys as the instance for system type S. It panics if an
// instance of S is already present.
func AddSystem[S System](m *SystemManager, sys S) {
	f := SystemFamilyOf[S]()
	if int(f) >= len(m.systems) {
		grown := make([]System, f+1)
		copy(grown, m.systems)
		m.systems = grown
	}
	if m.systems[f] != nil {
		panic(fmt.Sprintf("rift: a system of type %s is already registered", reflect.TypeFor[S]()))
	}
	m.systems[f] = sys
	m.log.Debug("added system", zap.String("system", reflect.TypeFor[S]().String()))
}

// RemoveSystem drops the instance for system type S. It panics if none is
// present.
func RemoveSystem[S System](m *SystemManager) {
	f := SystemFamilyOf[S]()
	if int(f) >= len(m.systems) || m.systems[f] == nil {
		panic(fmt.Sprintf("rift: no system of type %s is registered", reflect.TypeFor[S]()))
	}
	m.systems[f] = nil
	m.log.Debug("removed system", zap.String("system", reflect.TypeFor[S]().String()))
}

// HasSystem reports whether an instance of system type S is present.
func HasSystem[S System](m *SystemManager) bool {
	f := SystemFamilyOf[S]()
	return int(f) < len(m.systems) && m.systems[f] != nil
}

// GetSystem returns the stored instance of system type S. It panics if none
// is present.
func GetSystem[S System](m *SystemManager) S {
	f := SystemFamilyOf[S]()
	if int(f) >= len(m.systems) || m.systems[f] == nil {
		panic(fmt.Sprintf("rift: no system of type %s is registered", reflect.TypeFor[S]()))
	}
	return m.systems[f].(S)
}

// UpdateAll runs every present system in family order, then flushes the
// entity manager. Family order is stable within a process but depends on
// first-use registration order, so systems needing a fixed sequence should
// use UpdateSystems.
func (m *SystemManager) UpdateAll(dt float64) {
	for _, sys := range m.systems {
		if sys != nil {
			sys.Update(m.em, dt)
		}
	}
	m.em.Flush()
}

// UpdateSystems runs the given systems in the listed order, then flushes
// the entity manager.
func (m *SystemManager) UpdateSystems(dt float64, systems ...System) {
	for _, sys := range systems {
		sys.Update(m.em, dt)
	}
	m.em.Flush()
}
