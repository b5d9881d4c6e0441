package events

import "testing"

func TestQueuePublishOrder(t *testing.T) {
	q := NewQueue[int]()
	for i := 0; i < 5; i++ {
		q.Publish(i)
	}
	if q.Len() != 5 {
		t.Errorf("Expected 5 pending events, got %d", q.Len())
	}

	var got []int
	q.Consume(func(v int) { got = append(got, v) })

	for i := range got {
		if got[i] != i {
			t.Errorf("Expected event %d at position %d, got %d", i, i, got[i])
		}
	}
	if len(got) != 5 {
		t.Errorf("Expected 5 events delivered, got %d", len(got))
	}
}

func TestQueueConsumeOnce(t *testing.T) {
	q := NewQueue[string]()
	q.Publish("a")

	count := 0
	q.Consume(func(string) { count++ })
	q.Consume(func(string) { count++ })

	if count != 1 {
		t.Errorf("Expected at-most-once delivery, got %d visits", count)
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue after consume, got %d", q.Len())
	}
}

func TestQueuePublishDuringConsume(t *testing.T) {
	q := NewQueue[int]()
	q.Publish(1)

	// Events published inside the visit land in the next cycle
	q.Consume(func(v int) {
		q.Publish(v + 1)
	})

	if q.Len() != 1 {
		t.Fatalf("Expected 1 deferred event, got %d", q.Len())
	}
	var got int
	q.Consume(func(v int) { got = v })
	if got != 2 {
		t.Errorf("Expected deferred event 2, got %d", got)
	}
}

func TestQueueClear(t *testing.T) {
	q := NewQueue[int]()
	q.Publish(1)
	q.Publish(2)
	q.Clear()

	if q.Len() != 0 {
		t.Errorf("Expected empty queue after clear, got %d", q.Len())
	}
	q.Consume(func(int) {
		t.Error("Expected no events after clear")
	})
}
