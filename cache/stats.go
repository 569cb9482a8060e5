package cache

// Stats are cumulative engine counters. Hits counts lookups served from
// memory, Promotions counts cold entries reloaded from disk, Evictions
// counts hot entries spilled to disk, Misses counts lookups of keys
// unknown to both tiers.
type Stats struct {
	Hits       int64 `json:"hits"`
	Misses     int64 `json:"misses"`
	Promotions int64 `json:"promotions"`
	Evictions  int64 `json:"evictions"`
}

// HitRate returns the percentage of lookups served from either tier.
// Promotions count as hits.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Promotions + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits+s.Promotions) / float64(total) * 100
}
