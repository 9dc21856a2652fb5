package rift_test

import (
	"testing"

	rift "github.com/N-A-D/Rift"
)

// --- Test components ---

type Position struct{ X, Y float64 }
type Direction struct{ X, Y float64 }
type Toggle struct{ State bool }
type Health struct{ Current, Max int }

// newManager gives each test a fresh manager and a fresh family numbering.
func newManager(_ *testing.T, opts ...rift.Option) *rift.EntityManager {
	rift.ResetComponentRegistry()
	rift.ResetSystemRegistry()
	return rift.NewEntityManager(opts...)
}
