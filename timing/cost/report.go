package cost

import "fmt"

// Report is the cost tracker's external interface (spec.md §6): total
// cycle cost in nanoseconds plus the unique cache and RAM footprints.
type Report struct {
	TotalNS            uint64
	CacheLocationsUsed uint32
	RAMLocationsUsed   uint32
}

// CacheBytesUsed is the cache footprint in bytes, a word per location.
func (r Report) CacheBytesUsed() uint64 {
	return uint64(r.CacheLocationsUsed) * 4
}

// RAMBytesUsed is the RAM footprint in bytes, a word per location.
func (r Report) RAMBytesUsed() uint64 {
	return uint64(r.RAMLocationsUsed) * 4
}

// String renders a human-readable summary, matching the shape of the
// reference tracker's own multi-line report.
func (r Report) String() string {
	return fmt.Sprintf(
		"total time: %d ns\ncache locations used: %d (%d bytes)\nram locations used: %d (%d bytes)",
		r.TotalNS, r.CacheLocationsUsed, r.CacheBytesUsed(), r.RAMLocationsUsed, r.RAMBytesUsed(),
	)
}
