package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Event describes a change to a stylist's schedule data. The payload is
// intentionally thin: subscribers re-run the resolver against fresh data
// instead of patching state from events, so ordering does not matter.
type Event struct {
	Table  string `json:"table"`
	Action string `json:"action"`
}

const (
	TableAvailabilityBlocks = "availability_blocks"
	TableReservations       = "reservations"
	TableWorkingHours       = "working_hours"
)

// Publisher is the write side of the change feed. Usecases hold this
// interface so tests can stub it out.
type Publisher interface {
	Publish(ctx context.Context, stylistID uint, ev Event)
}

// NopPublisher discards events.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, uint, Event) {}

const defaultDebounce = 200 * time.Millisecond

// Hub fans schedule change events out over redis pub/sub. Each stylist has
// one channel; a subscriber gets a debounced onChange callback, never the
// event payloads themselves.
type Hub struct {
	rdb      *redis.Client
	debounce time.Duration
}

func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		rdb:      rdb,
		debounce: defaultDebounce,
	}
}

// NewHubWithDebounce exists for tests that cannot wait on the default window.
func NewHubWithDebounce(rdb *redis.Client, debounce time.Duration) *Hub {
	return &Hub{rdb: rdb, debounce: debounce}
}

func channelFor(stylistID uint) string {
	return fmt.Sprintf("schedule:events:%d", stylistID)
}

// Publish is fire-and-forget: a dead redis degrades to "no live updates"
// and must never fail the write that triggered it.
func (h *Hub) Publish(ctx context.Context, stylistID uint, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}

	if err := h.rdb.Publish(ctx, channelFor(stylistID), payload).Err(); err != nil {
		log.Printf("realtime publish failed for stylist %d: %v", stylistID, err)
	}
}

// Subscribe registers onChange for a stylist's schedule changes and returns
// an unsubscribe func. Rapid bursts collapse into a single trailing-edge
// callback per debounce window. The redis client reconnects dropped
// subscriptions with its own backoff; missed events are harmless because
// consumers refetch full state on every callback.
func (h *Hub) Subscribe(ctx context.Context, stylistID uint, onChange func()) func() {
	ps := h.rdb.Subscribe(ctx, channelFor(stylistID))

	var mu sync.Mutex
	var pending *time.Timer

	go func() {
		for range ps.Channel() {
			mu.Lock()
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(h.debounce, onChange)
			mu.Unlock()
		}

		mu.Lock()
		if pending != nil {
			pending.Stop()
		}
		mu.Unlock()
	}()

	return func() {
		_ = ps.Close()
	}
}
