// Package events provides the generic publish/consume-once event buffer
// used for system-to-collaborator communication.
package events

import "sync"

// Queue is an append-only buffer of pending events of type T.
// It models a single-consumer mailbox, not a durable log: Consume delivers
// each buffered event at most once, then clears the buffer unconditionally.
// A consumer that discards work loses the event permanently.
type Queue[T any] struct {
	mu     sync.Mutex
	events []T
}

// NewQueue creates an empty queue
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Publish appends an event
func (q *Queue[T]) Publish(event T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, event)
}

// Consume invokes visit once per buffered event in publish order, then
// clears the buffer. Events published by visit itself land in the next
// cycle, not this one.
func (q *Queue[T]) Consume(visit func(T)) {
	q.mu.Lock()
	pending := q.events
	q.events = nil
	q.mu.Unlock()

	for _, event := range pending {
		visit(event)
	}
}

// Clear drops all buffered events without delivering them
func (q *Queue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = nil
}

// Len returns the number of buffered events
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
