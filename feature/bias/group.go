package bias

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// LocationGroup is one priority tier of location names.
type LocationGroup struct {
	Name      string
	Locations []string
	set       mapset.Set[string]
}

func newLocationGroup(name string, locations []string) *LocationGroup {
	g := &LocationGroup{Name: name, Locations: locations, set: mapset.New[string]()}
	for _, l := range locations {
		g.set.Put(l)
	}
	return g
}

// Contains reports whether name is in the tier.
func (g *LocationGroup) Contains(name string) bool {
	return g.set.Has(name)
}

// ReservationGroup maps a location name to the players it was reserved for.
// Insertion order of names is kept.
type ReservationGroup struct {
	Name   string
	order  []string
	owners map[string]mapset.Set[int]
}

func newReservationGroup(name string) *ReservationGroup {
	return &ReservationGroup{Name: name, owners: make(map[string]mapset.Set[int])}
}

func (g *ReservationGroup) add(location string, player int) {
	set, ok := g.owners[location]
	if !ok {
		set = mapset.New[int]()
		g.owners[location] = set
		g.order = append(g.order, location)
	}
	set.Put(player)
}

// Owns reports whether location is reserved for player.
func (g *ReservationGroup) Owns(location string, player int) bool {
	set, ok := g.owners[location]
	return ok && set.Has(player)
}

// Count returns how many players hold location.
func (g *ReservationGroup) Count(location string) int {
	if set, ok := g.owners[location]; ok {
		return set.Size()
	}
	return 0
}

// Locations returns the reserved names in reservation order.
func (g *ReservationGroup) Locations() []string {
	return slices.Clone(g.order)
}

// Owners returns the players holding location in ascending order.
func (g *ReservationGroup) Owners(location string) []int {
	set, ok := g.owners[location]
	if !ok {
		return nil
	}
	out := make([]int, 0, set.Size())
	set.Each(func(p int) {
		out = append(out, p)
	})
	slices.Sort(out)
	return out
}

// ForPlayer returns the names reserved for player, in reservation order.
func (g *ReservationGroup) ForPlayer(player int) []string {
	var out []string
	for _, l := range g.order {
		if g.owners[l].Has(player) {
			out = append(out, l)
		}
	}
	return out
}
