package emu

import "github.com/vela-sim/microcore/timing/cache"

// addressSpaceWords is 2^16: the number of addressable 32-bit words.
const addressSpaceWords = 1 << 16

// RAM is the flat, word-addressed backing store underlying Memory. It
// implements cache.RAM so a Cache can fill from and write through to
// it directly.
type RAM struct {
	words [addressSpaceWords]uint32
}

// ReadWord returns the word stored at addr.
func (r *RAM) ReadWord(addr uint16) uint32 {
	return r.words[addr]
}

// WriteWord stores value at addr.
func (r *RAM) WriteWord(addr uint16, value uint32) {
	r.words[addr] = value
}

// Memory is the unified memory facade: RAM behind a 32-set/8-way
// tree-PLRU cache, publishing FETCH/HIT/MISS/WRITE_CACHE events to an
// EventBus as the CPU accesses it. Self-modifying code is sound
// because Fetch and Load/Store share the same cache, so a store to an
// address is immediately visible to a later fetch of that address.
type Memory struct {
	ram   *RAM
	cache *cache.Cache
	bus   *EventBus
}

// NewMemory returns an all-zero Memory with a cold cache.
func NewMemory() *Memory {
	ram := &RAM{}
	return &Memory{
		ram:   ram,
		cache: cache.New(cache.NewRAMBacking(ram)),
		bus:   NewEventBus(),
	}
}

// Bus returns the event bus that timing/cost.Tracker attaches to.
func (m *Memory) Bus() *EventBus {
	return m.bus
}

func (m *Memory) publishFill(res cache.AccessResult) {
	if res.Filled {
		m.bus.Publish(Event{Kind: EventWriteCache, Set: res.Set, Way: res.Way})
	}
}

// Fetch reads the instruction word at addr, routed through the cache.
// It emits only a FETCH event — never HIT/MISS — per the cost model's
// flat per-fetch charge.
func (m *Memory) Fetch(addr uint16) uint32 {
	res := m.cache.Access(addr, false, 0)
	m.publishFill(res)
	m.bus.Publish(Event{Kind: EventFetch, Addr: addr})
	return res.Value
}

// Load reads a data word at addr through the cache, emitting HIT or
// MISS.
func (m *Memory) Load(addr uint16) uint32 {
	res := m.cache.Access(addr, false, 0)
	if res.Hit {
		m.bus.Publish(Event{Kind: EventHit, Addr: addr})
	} else {
		m.bus.Publish(Event{Kind: EventMiss, Addr: addr})
	}
	m.publishFill(res)
	return res.Value
}

// Store writes a data word to addr through the cache (write-through,
// write-allocate), emitting HIT or MISS.
func (m *Memory) Store(addr uint16, value uint32) {
	res := m.cache.Access(addr, true, value)
	if res.Hit {
		m.bus.Publish(Event{Kind: EventHit, Addr: addr})
	} else {
		m.bus.Publish(Event{Kind: EventMiss, Addr: addr})
	}
	m.publishFill(res)
}

// LoadImage writes words into RAM starting at address 0, bypassing
// the cache — the assembler's output contract (spec.md §6), not a CPU
// access. Addresses wrap modulo 2^16 if the image is larger than the
// address space.
func (m *Memory) LoadImage(words []uint32) {
	for i, w := range words {
		m.ram.WriteWord(uint16(i%addressSpaceWords), w)
	}
}

// Reset invalidates the cache and clears its PLRU state. RAM contents
// are untouched, matching the reset contract's "RAM as loaded".
func (m *Memory) Reset() {
	m.cache.Reset()
}
