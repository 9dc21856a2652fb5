// Package rift is an Entity-Component-System runtime for interactive
// simulations.
//
// Entities are versioned slot indices; components are plain Go structs held
// in dense per-type pools; systems transform every entity matching a
// component signature once per frame. The package keeps a sparse-set cache
// per distinct signature so repeated queries cost a slice walk, not a scan.
//
//   - Versioned Entity handles: destruction bumps the slot's version and
//     invalidates every outstanding copy.
//   - Deferred destruction: Destroy marks, Flush finalises at end of frame,
//     so a visitor may destroy the entity it is looking at.
//   - Bitmask component model, up to MaxComponentTypes distinct types.
//   - Cached queries kept coherent across add, remove, copy and destroy.
//   - Sequential and parallel visitation (ForEntitiesWith*,
//     ParForEntitiesWith*); build with the rift_no_parallel tag to drop the
//     parallel engine.
//   - SystemManager driving one instance per system type, EventBus and
//     Resources for cross-system communication.
//
// The manager is single-threaded by contract: all structural operations
// must come from one goroutine, and only parallel visitation fans out.
// Contract violations (stale handles, duplicate components, structural
// mutation inside a parallel visitor) panic.
package rift
