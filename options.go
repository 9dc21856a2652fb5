package rift

import "go.uber.org/zap"

// Option configures an EntityManager at construction time.
type Option func(*EntityManager)

// WithCapacity pre-sizes the manager's slot arrays for n entities so the
// first n creations allocate nothing. It is a hint, not a bound: the
// manager grows past it on demand.
func WithCapacity(n int) Option {
	return func(em *EntityManager) {
		if n <= 0 {
			return
		}
		em.masks = make([]ComponentMask, 0, n)
		em.versions = make([]uint32, 0, n)
		em.free = make([]uint32, 0, n)
	}
}

// WithLogger attaches a logger for debug-level instrumentation (query cache
// builds, flush summaries, system registration). The default is a nop
// logger; nothing is ever logged on the per-entity hot path.
func WithLogger(log *zap.Logger) Option {
	return func(em *EntityManager) {
		if log != nil {
			em.log = log
		}
	}
}
