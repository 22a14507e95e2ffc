package game

import "time"

// FrameID identifies a requested frame callback. Zero is never issued.
type FrameID uint64

// FrameFunc receives the host's frame timestamp
type FrameFunc func(now time.Time)

// Scheduler is the host's animation facility: it calls back once on the next frame
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn FrameFunc
}

// FrameQueue is a Scheduler driven by the host calling Pump once per frame.
// Requests made while pumping run on the following Pump.
type FrameQueue struct {
	nextID   FrameID
	pending  []frameRequest
	inFlight map[FrameID]bool // batch being pumped; false once cancelled
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.nextID++
	q.pending = append(q.pending, frameRequest{id: q.nextID, fn: fn})
	return q.nextID
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	if _, ok := q.inFlight[id]; ok {
		q.inFlight[id] = false
	}
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pump runs every callback requested before this call and returns how many ran
func (q *FrameQueue) Pump(now time.Time) int {
	batch := q.pending
	q.pending = nil

	q.inFlight = make(map[FrameID]bool, len(batch))
	for _, r := range batch {
		q.inFlight[r.id] = true
	}
	defer func() { q.inFlight = nil }()

	ran := 0
	for _, r := range batch {
		if !q.inFlight[r.id] {
			continue
		}
		r.fn(now)
		ran++
	}
	return ran
}

// Pending returns the number of queued callbacks
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
