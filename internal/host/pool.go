package host

import "github.com/gobwas/pool"

// Batch capacities are bucketed by powers of two between these bounds.
// Requests outside the range get unpooled batches.
const (
	minPooledCommands = 64
	maxPooledCommands = 1 << 16

	// DefaultBatchCapacity fits a full redraw of an 80x50 console.
	DefaultBatchCapacity = 4096
)

var batchPool = pool.New(minPooledCommands, maxPooledCommands)

// AcquireBatch returns an empty batch able to hold at least capacity
// commands without growing. Return it with ReleaseBatch when done.
func AcquireBatch(capacity int) *DrawBatch {
	v, n := batchPool.Get(capacity)
	if b, ok := v.(*DrawBatch); ok {
		b.Reset()
		return b
	}
	return &DrawBatch{
		commands: make([]Command, 0, max(n, capacity)),
		poolSize: n,
	}
}

// ReleaseBatch returns b to the pool. b must not be used afterwards.
func ReleaseBatch(b *DrawBatch) {
	if b == nil {
		return
	}
	b.Reset()
	batchPool.Put(b, b.poolSize)
}
