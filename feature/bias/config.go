package bias

import (
	"maps"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Config is the per-generation placement bias. It is built once by a Builder
// and read by Filter for the rest of the run.
type Config struct {
	// Mode is the resolved strategy variant.
	Mode Mode

	// StaticPlacement maps player to item name to allowed locations. Only the
	// vanilla variant sets it.
	StaticPlacement map[int]map[string][]string

	// Tiers holds each player's location groups, most restrictive first.
	Tiers map[int][]*LocationGroup

	// Reservation records the cluster and entangled reservations per player.
	Reservation *ReservationGroup

	// ItemPool holds each player's major item names.
	ItemPool map[int]mapset.Set[string]

	// Placeholders is the number of slots reserved beyond the major quota.
	// Nil when the variant does not use placeholders.
	Placeholders *int

	reserved    map[int]mapset.Set[string]
	staticIndex map[int]map[string]mapset.Set[string]
}

func newConfig(mode Mode) *Config {
	return &Config{
		Mode:     mode,
		Tiers:    make(map[int][]*LocationGroup),
		ItemPool: make(map[int]mapset.Set[string]),
		reserved: make(map[int]mapset.Set[string]),
	}
}

func (c *Config) reserve(player int, location string) {
	set, ok := c.reserved[player]
	if !ok {
		set = mapset.New[string]()
		c.reserved[player] = set
	}
	set.Put(location)
}

func (c *Config) rollback(player int, location string) {
	if set, ok := c.reserved[player]; ok {
		set.Remove(location)
	}
}

// IsReserved reports whether location is committed for player.
func (c *Config) IsReserved(player int, location string) bool {
	set, ok := c.reserved[player]
	return ok && set.Has(location)
}

// Reserved returns the player's committed locations, sorted.
func (c *Config) Reserved(player int) []string {
	return sortedSet(c.reserved[player])
}

// IsMajor reports whether name is a major item for player.
func (c *Config) IsMajor(player int, name string) bool {
	set, ok := c.ItemPool[player]
	return ok && set.Has(name)
}

// freeze builds the lookup indices read by Filter.
func (c *Config) freeze() {
	if c.StaticPlacement == nil {
		return
	}
	c.staticIndex = make(map[int]map[string]mapset.Set[string], len(c.StaticPlacement))
	for player, mapping := range c.StaticPlacement {
		idx := make(map[string]mapset.Set[string], len(mapping))
		for item, locs := range mapping {
			idx[item] = mapset.Of(locs...)
		}
		c.staticIndex[player] = idx
	}
}

func sortedSet(set mapset.Set[string]) []string {
	out := make([]string, 0, set.Size())
	set.Each(func(s string) {
		out = append(out, s)
	})
	slices.Sort(out)
	return out
}

// Snapshot is the JSON form of a Config.
type Snapshot struct {
	Mode            string                      `json:"mode"`
	StaticPlacement map[int]map[string][]string `json:"static_placement,omitempty"`
	Tiers           map[int][]TierSnapshot      `json:"location_groups,omitempty"`
	Reservation     map[string][]int            `json:"reservation,omitempty"`
	ItemPool        map[int][]string            `json:"item_pool,omitempty"`
	Reserved        map[int][]string            `json:"reserved_locations"`
	Placeholders    *int                        `json:"placeholders,omitempty"`
}

// TierSnapshot is one location group in a Snapshot.
type TierSnapshot struct {
	Name      string   `json:"name"`
	Locations []string `json:"locations"`
}

// Snapshot returns a deterministic copy of the configuration.
func (c *Config) Snapshot() Snapshot {
	s := Snapshot{
		Mode:            c.Mode.String(),
		StaticPlacement: c.StaticPlacement,
		Reserved:        make(map[int][]string, len(c.reserved)),
	}
	if len(c.Tiers) > 0 {
		s.Tiers = make(map[int][]TierSnapshot, len(c.Tiers))
		for player, tiers := range c.Tiers {
			for _, t := range tiers {
				s.Tiers[player] = append(s.Tiers[player], TierSnapshot{Name: t.Name, Locations: t.Locations})
			}
		}
	}
	if c.Reservation != nil {
		s.Reservation = make(map[string][]int)
		for _, l := range c.Reservation.order {
			s.Reservation[l] = c.Reservation.Owners(l)
		}
	}
	if len(c.ItemPool) > 0 {
		s.ItemPool = make(map[int][]string, len(c.ItemPool))
		for player, set := range c.ItemPool {
			s.ItemPool[player] = sortedSet(set)
		}
	}
	for player, set := range c.reserved {
		s.Reserved[player] = sortedSet(set)
	}
	if c.Placeholders != nil {
		n := *c.Placeholders
		s.Placeholders = &n
	}
	return s
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Mode:        s.Mode,
		Reservation: cloneLists(s.Reservation),
		ItemPool:    cloneLists(s.ItemPool),
		Reserved:    cloneLists(s.Reserved),
	}
	if s.StaticPlacement != nil {
		out.StaticPlacement = make(map[int]map[string][]string, len(s.StaticPlacement))
		for player, placement := range s.StaticPlacement {
			out.StaticPlacement[player] = cloneLists(placement)
		}
	}
	if s.Tiers != nil {
		out.Tiers = make(map[int][]TierSnapshot, len(s.Tiers))
		for player, tiers := range s.Tiers {
			cp := make([]TierSnapshot, len(tiers))
			for i, t := range tiers {
				cp[i] = TierSnapshot{Name: t.Name, Locations: slices.Clone(t.Locations)}
			}
			out.Tiers[player] = cp
		}
	}
	if s.Placeholders != nil {
		n := *s.Placeholders
		out.Placeholders = &n
	}
	return out
}

func cloneLists[K comparable, V any](m map[K][]V) map[K][]V {
	if m == nil {
		return nil
	}
	out := maps.Clone(m)
	for k, v := range out {
		out[k] = slices.Clone(v)
	}
	return out
}
