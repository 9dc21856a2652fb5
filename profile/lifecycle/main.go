// Profiling:
// go build ./profile/lifecycle
// go tool pprof -http=":8000" -nodefraction=0.001 ./lifecycle mem.pprof

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
	rounds := 50
	frames := 1000
	entities := 10000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, frames, entities)
	p.Stop()
}

func run(rounds, frames, numEntities int) {
	for range rounds {
		em := rift.NewEntityManager(rift.WithCapacity(numEntities))
		for range frames {
			for i := 0; i < numEntities; i++ {
				e := em.CreateEntity()
				rift.Add(e, transform{})
				rift.Add(e, motion{X: 1})
			}
			rift.ForEntitiesWith2(em, func(e rift.Entity, _ *transform, _ *motion) {
				e.Destroy()
			})
			em.Flush()
		}
	}
}
