package tracker

import "github.com/google/uuid"

// Period is one pending unit of work. The front of the queue is the one
// currently being worked.
type Period struct {
	ID   uuid.UUID
	Name string
}

// TaskQueue is a FIFO of planned work periods with reordering. All
// operations are O(n); queues stay small.
type TaskQueue struct {
	periods []Period
}

// EnqueueMany appends count periods with fresh IDs and the given name,
// preserving insertion order.
func (q *TaskQueue) EnqueueMany(name string, count int) {
	for i := 0; i < count; i++ {
		q.periods = append(q.periods, Period{ID: uuid.New(), Name: name})
	}
}

// Remove deletes the period with the given id. Missing id is a no-op.
func (q *TaskQueue) Remove(id uuid.UUID) {
	if i := q.index(id); i >= 0 {
		q.periods = append(q.periods[:i], q.periods[i+1:]...)
	}
}

// MoveToFront relocates the period to the head, keeping the relative
// order of everything else. Missing id or already at the head: no-op.
func (q *TaskQueue) MoveToFront(id uuid.UUID) {
	i := q.index(id)
	if i <= 0 {
		return
	}
	p := q.periods[i]
	copy(q.periods[1:i+1], q.periods[:i])
	q.periods[0] = p
}

// MoveUp swaps the period with its immediate predecessor. Missing id or
// already at the head: no-op.
func (q *TaskQueue) MoveUp(id uuid.UUID) {
	i := q.index(id)
	if i <= 0 {
		return
	}
	q.periods[i-1], q.periods[i] = q.periods[i], q.periods[i-1]
}

// PopFront removes and returns the head period. The second return is
// false on an empty queue.
func (q *TaskQueue) PopFront() (Period, bool) {
	if len(q.periods) == 0 {
		return Period{}, false
	}
	p := q.periods[0]
	q.periods = q.periods[1:]
	return p, true
}

// Front returns the head period without removing it.
func (q *TaskQueue) Front() (Period, bool) {
	if len(q.periods) == 0 {
		return Period{}, false
	}
	return q.periods[0], true
}

func (q *TaskQueue) Len() int { return len(q.periods) }

// Items returns the queue in order. The slice is a copy.
func (q *TaskQueue) Items() []Period {
	out := make([]Period, len(q.periods))
	copy(out, q.periods)
	return out
}

func (q *TaskQueue) index(id uuid.UUID) int {
	for i, p := range q.periods {
		if p.ID == id {
			return i
		}
	}
	return -1
}
