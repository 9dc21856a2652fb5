//go:build !rift_no_parallel

package rift

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Parallel iteration applies the visitor to every slot of the signature's
// cache across worker goroutines, joining before it returns. Visitor
// invocations run in unspecified order and the visitor receives component
// pointers only, no handle.
//
// The visitor must not perform structural mutation (create, copy, destroy,
// add, remove, or first-use family registration) and must not touch
// components outside its signature on entities other than the one passed
// in. Create, copy, destroy, add, remove, flush and clear trip the
// manager's guard and panic; first-use family registration is not guarded.
// Within the rules, writes to the visited slots' components are
// data-race-free.
//
// Building with the rift_no_parallel tag removes this API entirely.

// ParForEntitiesWith applies f in parallel to every entity that has a
// component of type A.
func ParForEntitiesWith[A any](em *EntityManager, f func(*A)) {
	fa := FamilyOf[A]()
	c := em.cacheFor(maskOf(fa))
	pa := poolFor[A](em, fa)
	em.beginParallel()
	defer em.endParallel()
	indices := c.Dense()
	parallelFor(len(indices), func(lo, hi int) {
		for _, idx := range indices[lo:hi] {
			f(pa.at(idx))
		}
	})
}

// ParForEntitiesWith2 applies f in parallel to every entity that has
// components of types A and B.
func ParForEntitiesWith2[A, B any](em *EntityManager, f func(*A, *B)) {
	fa, fb := FamilyOf[A](), FamilyOf[B]()
	c := em.cacheFor(SignatureFor2[A, B]())
	pa := poolFor[A](em, fa)
	pb := poolFor[B](em, fb)
	em.beginParallel()
	defer em.endParallel()
	indices := c.Dense()
	parallelFor(len(indices), func(lo, hi int) {
		for _, idx := range indices[lo:hi] {
			f(pa.at(idx), pb.at(idx))
		}
	})
}

// ParForEntitiesWith3 applies f in parallel to every entity that has
// components of types A, B and C.
func ParForEntitiesWith3[A, B, C any](em *EntityManager, f func(*A, *B, *C)) {
	fa, fb, fc := FamilyOf[A](), FamilyOf[B](), FamilyOf[C]()
	c := em.cacheFor(SignatureFor3[A, B, C]())
	pa := poolFor[A](em, fa)
	pb := poolFor[B](em, fb)
	pc := poolFor[C](em, fc)
	em.beginParallel()
	defer em.endParallel()
	indices := c.Dense()
	parallelFor(len(indices), func(lo, hi int) {
		for _, idx := range indices[lo:hi] {
			f(pa.at(idx), pb.at(idx), pc.at(idx))
		}
	})
}

// ParForEntitiesWith4 applies f in parallel to every entity that has
// components of types A, B, C and D.
func ParForEntitiesWith4[A, B, C, D any](em *EntityManager, f func(*A, *B, *C, *D)) {
	fa, fb, fc, fd := FamilyOf[A](), FamilyOf[B](), FamilyOf[C](), FamilyOf[D]()
	c := em.cacheFor(SignatureFor4[A, B, C, D]())
	pa := poolFor[A](em, fa)
	pb := poolFor[B](em, fb)
	pc := poolFor[C](em, fc)
	pd := poolFor[D](em, fd)
	em.beginParallel()
	defer em.endParallel()
	indices := c.Dense()
	parallelFor(len(indices), func(lo, hi int) {
		for _, idx := range indices[lo:hi] {
			f(pa.at(idx), pb.at(idx), pc.at(idx), pd.at(idx))
		}
	})
}

// ParForEntitiesWith5 applies f in parallel to every entity that has
// components of the five listed types.
func ParForEntitiesWith5[A, B, C, D, E any](em *EntityManager, f func(*A, *B, *C, *D, *E)) {
	fa, fb, fc, fd, fe := FamilyOf[A](), FamilyOf[B](), FamilyOf[C](), FamilyOf[D](), FamilyOf[E]()
	c := em.cacheFor(SignatureFor5[A, B, C, D, E]())
	pa := poolFor[A](em, fa)
	pb := poolFor[B](em, fb)
	pc := poolFor[C](em, fc)
	pd := poolFor[D](em, fd)
	pe := poolFor[E](em, fe)
	em.beginParallel()
	defer em.endParallel()
	indices := c.Dense()
	parallelFor(len(indices), func(lo, hi int) {
		for _, idx := range indices[lo:hi] {
			f(pa.at(idx), pb.at(idx), pc.at(idx), pd.at(idx), pe.at(idx))
		}
	})
}

// ParForEntitiesWith6 applies f in parallel to every entity that has
// components of the six listed types.
func ParForEntitiesWith6[A, B, C, D, E, F any](em *EntityManager, f func(*A, *B, *C, *D, *E, *F)) {
	fa, fb, fc, fd, fe, ff := FamilyOf[A](), FamilyOf[B](), FamilyOf[C](), FamilyOf[D](), FamilyOf[E](), FamilyOf[F]()
	c := em.cacheFor(SignatureFor6[A, B, C, D, E, F]())
	pa := poolFor[A](em, fa)
	pb := poolFor[B](em, fb)
	pc := poolFor[C](em, fc)
	pd := poolFor[D](em, fd)
	pe := poolFor[E](em, fe)
	pf := poolFor[F](em, ff)
	em.beginParallel()
	defer em.endParallel()
	indices := c.Dense()
	parallelFor(len(indices), func(lo, hi int) {
		for _, idx := range indices[lo:hi] {
			f(pa.at(idx), pb.at(idx), pc.at(idx), pd.at(idx), pe.at(idx), pf.at(idx))
		}
	})
}

// parallelFor splits [0, n) into one contiguous chunk per worker and joins
// all of them before returning. A panic inside body would otherwise die on
// its worker's stack and kill the process, so each worker recovers and the
// first recovered value is re-raised on the calling goroutine after the
// join.
func parallelFor(n int, body func(lo, hi int)) {
	if n == 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	var (
		panicOnce sync.Once
		recovered any
	)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					panicOnce.Do(func() { recovered = r })
				}
			}()
			body(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
	if recovered != nil {
		panic(recovered)
	}
}
