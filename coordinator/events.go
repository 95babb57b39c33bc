// SPDX-License-Identifier: MIT
//
// File: events.go
// Role: Step events and the non-blocking subscriber fan-out.

package coordinator

import (
	"sync"

	"github.com/katalvlaran/algoviz/algorithms"
	"github.com/katalvlaran/algoviz/core"
)

// Event is published after every step of a run, and once more when the run
// reaches a terminal state (Terminal == true, Step is zero).
type Event struct {
	RunID     string
	Algorithm algorithms.Algorithm
	// Seq is the Coordinator-wide step sequence number.
	Seq      uint64
	Step     core.Step
	State    State
	Terminal bool
}

// hub fans events out to subscribers. Sends never block the worker: a
// subscriber whose buffer is full misses the event.
type hub struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Event
}

func newHub() *hub { return &hub{subs: make(map[int]chan Event)} }

func (h *hub) subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// publish returns how many subscribers dropped ev.
func (h *hub) publish(ev Event) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	dropped := 0
	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			dropped++
		}
	}
	return dropped
}
