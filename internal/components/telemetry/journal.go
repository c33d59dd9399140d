package telemetry

import (
	"slices"
	"sync"
	"time"
)

// journal keeps the most recent successfully sent events, oldest first.
type journal struct {
	mu     sync.RWMutex
	events []Event
	limit  int
}

func newJournal(limit int) *journal {
	if limit <= 0 {
		limit = 1
	}
	return &journal{limit: limit}
}

func (j *journal) add(e Event) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.events = append(j.events, e)
	if over := len(j.events) - j.limit; over > 0 {
		j.events = slices.Delete(j.events, 0, over)
	}
}

// recent returns a copy of the journal, newest first.
func (j *journal) recent() []Event {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := slices.Clone(j.events)
	slices.Reverse(out)
	if out == nil {
		out = []Event{}
	}
	return out
}

// HourlyCounts buckets events by hour of day in loc.
func HourlyCounts(events []Event, loc *time.Location) [24]int {
	var hours [24]int
	for _, e := range events {
		if e.Timestamp.IsZero() {
			continue
		}
		hours[e.Timestamp.In(loc).Hour()]++
	}
	return hours
}
