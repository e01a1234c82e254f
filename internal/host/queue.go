package host

import "sync"

type queuedBatch struct {
	z        int
	commands []Command
}

// Queue collects submitted batches and replays them in depth order. Batches
// with equal z render in submission order. Submission is safe from any
// goroutine; Render is called by the driver once per frame.
type Queue struct {
	mu      sync.Mutex
	batches []queuedBatch
}

// NewQueue creates an empty render queue.
func NewQueue() *Queue {
	return &Queue{batches: make([]queuedBatch, 0, 8)}
}

// push inserts a batch after every batch with the same or lower z.
func (q *Queue) push(z int, commands []Command) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry := queuedBatch{z: z, commands: commands}

	pos := len(q.batches)
	for i, e := range q.batches {
		if z < e.z {
			pos = i
			break
		}
	}

	q.batches = append(q.batches, queuedBatch{})
	copy(q.batches[pos+1:], q.batches[pos:])
	q.batches[pos] = entry
}

// Len returns the number of pending batches.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.batches)
}

// Render applies every pending batch to ctx and empties the queue. It
// returns the number of commands applied.
func (q *Queue) Render(ctx Context) int {
	q.mu.Lock()
	batches := q.batches
	q.batches = make([]queuedBatch, 0, cap(batches))
	q.mu.Unlock()

	n := 0
	for _, b := range batches {
		for _, cmd := range b.commands {
			cmd.Apply(ctx)
		}
		n += len(b.commands)
	}
	return n
}

// Discard drops all pending batches. The dropped command slices are not
// retained.
func (q *Queue) Discard() {
	q.mu.Lock()
	defer q.mu.Unlock()
	clear(q.batches)
	q.batches = q.batches[:0]
}
