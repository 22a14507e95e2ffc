package manager

import "snake-classic/game/types"

// InputBufferSize is how many direction intents may wait for a tick
const InputBufferSize = 3

// InputBuffer is a bounded FIFO of direction intents.
// When full, pushing drops the oldest entry.
type InputBuffer struct {
	queue []types.Direction
	size  int
}

func NewInputBuffer() *InputBuffer {
	return &InputBuffer{
		queue: make([]types.Direction, 0, InputBufferSize),
		size:  InputBufferSize,
	}
}

// Push appends dir, evicting the oldest entry on overflow. Invalid values are ignored.
func (b *InputBuffer) Push(dir types.Direction) {
	if !dir.Valid() {
		return
	}
	if len(b.queue) == b.size {
		copy(b.queue, b.queue[1:])
		b.queue = b.queue[:len(b.queue)-1]
	}
	b.queue = append(b.queue, dir)
}

// Pop removes and returns the oldest intent
func (b *InputBuffer) Pop() (types.Direction, bool) {
	if len(b.queue) == 0 {
		return 0, false
	}
	dir := b.queue[0]
	copy(b.queue, b.queue[1:])
	b.queue = b.queue[:len(b.queue)-1]
	return dir, true
}

func (b *InputBuffer) Clear() {
	b.queue = b.queue[:0]
}

func (b *InputBuffer) Len() int {
	return len(b.queue)
}
