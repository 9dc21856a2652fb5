// Profiling:
// go build ./profile/iteration
// go tool pprof -http=":8000" -nodefraction=0.001 ./iteration cpu.pprof

package main

import (
	rift "github.com/N-A-D/Rift"
	"github.com/pkg/profile"
)

type transform struct {
	X, Y float64
}

type motion struct {
	X, Y float64
}

func main() {
	frames := 10000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(frames, entities)
	p.Stop()
}

func run(frames, numEntities int) {
	em := rift.NewEntityManager(rift.WithCapacity(numEntities))
	for i := 0; i < numEntities; i++ {
		e := em.CreateEntity()
		rift.Add(e, transform{})
		rift.Add(e, motion{X: 1, Y: 1})
	}
	dt := 1.0 / 60.0
	for range frames {
		rift.ForEntitiesWith2(em, func(_ rift.Entity, t *transform, m *motion) {
			t.X += m.X * dt
			t.Y += m.Y * dt
		})
		rift.ParForEntitiesWith2(em, func(t *transform, m *motion) {
			t.X += m.X * dt
			t.Y += m.Y * dt
		})
	}
}
