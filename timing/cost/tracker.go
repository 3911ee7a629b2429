package cost

import "github.com/vela-sim/microcore/emu"

type cacheLocation struct {
	set, way int
}

// Tracker accumulates cycle cost and unique-location footprint from
// the FETCH/HIT/MISS/WRITE_CACHE events a Memory publishes. It never
// mutates CPU state and is never invoked by the CPU — it is a pure
// observer.
type Tracker struct {
	model *Model

	cycles         uint64
	cacheLocations map[cacheLocation]struct{}
	ramLocations   map[uint16]struct{}
}

// NewTracker returns a Tracker that costs events per model.
func NewTracker(model *Model) *Tracker {
	return &Tracker{
		model:          model,
		cacheLocations: make(map[cacheLocation]struct{}),
		ramLocations:   make(map[uint16]struct{}),
	}
}

func (t *Tracker) observe(ev emu.Event) {
	switch ev.Kind {
	case emu.EventFetch:
		t.cycles += t.model.FetchNS
	case emu.EventHit:
		t.cycles += t.model.HitNS
	case emu.EventMiss:
		t.cycles += t.model.MissNS
		t.ramLocations[ev.Addr] = struct{}{}
	case emu.EventWriteCache:
		t.cacheLocations[cacheLocation{ev.Set, ev.Way}] = struct{}{}
	}
}

// Subscription is a scoped attachment to an event bus: Close
// unsubscribes, and is safe to call via defer even on an abnormal
// return path.
type Subscription struct {
	bus   *emu.EventBus
	token int
}

// Attach installs the tracker's listener on bus and returns a
// Subscription whose Close detaches it. This is the Go equivalent of
// the reference tracker's enter/exit context-manager contract.
func (t *Tracker) Attach(bus *emu.EventBus) *Subscription {
	token := bus.Subscribe(t.observe)
	return &Subscription{bus: bus, token: token}
}

// Close unsubscribes the tracker from the bus it was attached to.
func (s *Subscription) Close() {
	s.bus.Unsubscribe(s.token)
}

// Report snapshots the tracker's accumulated cost and footprint.
func (t *Tracker) Report() Report {
	return Report{
		TotalNS:          t.cycles,
		CacheLocationsUsed: uint32(len(t.cacheLocations)),
		RAMLocationsUsed:   uint32(len(t.ramLocations)),
	}
}

// Reset clears all accumulated state.
func (t *Tracker) Reset() {
	t.cycles = 0
	t.cacheLocations = make(map[cacheLocation]struct{})
	t.ramLocations = make(map[uint16]struct{})
}
