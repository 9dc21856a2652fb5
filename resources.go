package rift

import (
	"fmt"
	"reflect"
)

// Resources is a one-instance-per-type store for world-global data that
// systems share without threading it through every call: clocks, spatial
// partitions, tuning tables, an EventBus. It lives on the EntityManager and
// follows the same contract as components: misuse panics, and single-
// threaded access is the caller's responsibility.
type Resources struct {
	byType map[reflect.Type]any
}

// AddResource stores res as the instance for type R. It panics if an R is
// already present.
func AddResource[R any](r *Resources, res *R) {
	if res == nil {
		panic("rift: cannot add a nil resource")
	}
	t := reflect.TypeFor[R]()
	if r.byType == nil {
		r.byType = make(map[reflect.Type]any)
	}
	if _, ok := r.byType[t]; ok {
		panic(fmt.Sprintf("rift: a resource of type %s already exists", t))
	}
	r.byType[t] = res
}

// HasResource reports whether an instance of type R is present.
func HasResource[R any](r *Resources) bool {
	_, ok := r.byType[reflect.TypeFor[R]()]
	return ok
}

// GetResource returns the stored instance of type R. It panics if none is
// present.
func GetResource[R any](r *Resources) *R {
	res, ok := r.byType[reflect.TypeFor[R]()]
	if !ok {
		panic(fmt.Sprintf("rift: no resource of type %s exists", reflect.TypeFor[R]()))
	}
	return res.(*R)
}

// RemoveResource drops the stored instance of type R. It panics if none is
// present.
func RemoveResource[R any](r *Resources) {
	t := reflect.TypeFor[R]()
	if _, ok := r.byType[t]; !ok {
		panic(fmt.Sprintf("rift: no resource of type %s exists", t))
	}
	delete(r.byType, t)
}

// Clear drops every stored resource.
func (r *Resources) Clear() {
	clear(r.byType)
}
