package audit

import "log"

type Event struct {
	StylistID uint
	ActorID   *uint
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.StylistID,
			ev.ActorID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// NewNopDispatcher drains and discards events. Used where no database is
// wired, e.g. in tests.
func NewNopDispatcher() *Dispatcher {
	d := &Dispatcher{
		queue: make(chan Event, 100),
	}

	go func() {
		for range d.queue {
		}
	}()
	return d
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue drops audit rather than blocking the API
		log.Println("audit queue full, dropping event")
	}
}
