// Package cost implements the microcore cost metric tracker: a
// read-only observer of the memory event bus that derives cycle
// counts and unique-location footprints without ever being invoked by
// the CPU itself.
package cost

import (
	"encoding/json"
	"fmt"
	"os"
)

// Model holds the nanosecond cost of each tracked event kind.
type Model struct {
	// FetchNS is charged on every instruction fetch.
	FetchNS uint64 `json:"fetch_ns"`
	// HitNS is charged in addition to FetchNS-like accounting when a
	// LOAD/STORE hits the cache.
	HitNS uint64 `json:"hit_ns"`
	// MissNS is charged when a LOAD/STORE misses the cache.
	MissNS uint64 `json:"miss_ns"`
}

// DefaultModel returns the reference 1 GHz cost model from spec.md
// §4.3: a 1ns base cycle, a 1ns additional hit cost, and an 80ns
// additional miss cost.
func DefaultModel() *Model {
	return &Model{
		FetchNS: 1,
		HitNS:   1,
		MissNS:  80,
	}
}

// LoadModel reads a Model from a JSON file, starting from
// DefaultModel so an omitted field keeps its default.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cost: failed to read model file: %w", err)
	}

	m := DefaultModel()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("cost: failed to parse model: %w", err)
	}
	return m, nil
}

// SaveModel writes m to path as indented JSON.
func (m *Model) SaveModel(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("cost: failed to serialize model: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cost: failed to write model file: %w", err)
	}
	return nil
}
