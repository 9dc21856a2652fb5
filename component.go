package rift

import (
	"fmt"
	"reflect"
)

// ComponentFamily is the dense integer identity of a component type within
// one process. Families index component pools and mask bits.
type ComponentFamily uint32

var (
	nextComponentFamily ComponentFamily
	componentFamilies   = make(map[reflect.Type]ComponentFamily, MaxComponentTypes)
)

// FamilyOf returns the family of component type C, assigning the next free
// family on first use. Families are stable and monotone for the lifetime of
// the process. It panics once MaxComponentTypes distinct types have been
// registered.
func FamilyOf[C any]() ComponentFamily {
	t := reflect.TypeFor[C]()
	if f, ok := componentFamilies[t]; ok {
		return f
	}
	if int(nextComponentFamily) >= MaxComponentTypes {
		panic(fmt.Sprintf("rift: cannot register component %s: maximum number of component types (%d) reached", t, MaxComponentTypes))
	}
	f := nextComponentFamily
	componentFamilies[t] = f
	nextComponentFamily++
	return f
}

// ResetComponentRegistry clears the process-wide family assignments. It is
// meant for tests that need a fresh numbering; managers created before the
// reset must be discarded with it.
func ResetComponentRegistry() {
	nextComponentFamily = 0
	componentFamilies = make(map[reflect.Type]ComponentFamily, MaxComponentTypes)
}

// SignatureFor returns the query signature for one component type.
func SignatureFor[A any]() ComponentMask {
	return maskOf(FamilyOf[A]())
}

// SignatureFor2 returns the query signature for two component types.
// Signatures are order-independent: SignatureFor2[A, B] == SignatureFor2[B, A].
func SignatureFor2[A, B any]() ComponentMask {
	m := maskOf(FamilyOf[A]())
	m.set(FamilyOf[B]())
	return m
}

// SignatureFor3 returns the query signature for three component types.
func SignatureFor3[A, B, C any]() ComponentMask {
	m := SignatureFor2[A, B]()
	m.set(FamilyOf[C]())
	return m
}

// SignatureFor4 returns the query signature for four component types.
func SignatureFor4[A, B, C, D any]() ComponentMask {
	m := SignatureFor3[A, B, C]()
	m.set(FamilyOf[D]())
	return m
}

// SignatureFor5 returns the query signature for five component types.
func SignatureFor5[A, B, C, D, E any]() ComponentMask {
	m := SignatureFor4[A, B, C, D]()
	m.set(FamilyOf[E]())
	return m
}

// SignatureFor6 returns the query signature for six component types.
func SignatureFor6[A, B, C, D, E, F any]() ComponentMask {
	m := SignatureFor5[A, B, C, D, E]()
	m.set(FamilyOf[F]())
	return m
}
