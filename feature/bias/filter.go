package bias

import (
	"strings"

	"item-bias/feature/catalog"
	"item-bias/feature/world"

	"github.com/zyedidia/generic/mapset"
)

type filterFunc func(c *Config, it *world.Item, candidates []*world.Location) []*world.Location

var filters = map[Mode]filterFunc{
	ModeUnrestricted: unrestricted,
	ModeVanilla:      filterVanilla,
	ModeMajor:        filterTiered,
	ModeDungeon:      filterTiered,
	ModeCluster:      filterReserved,
	ModeEntangled:    filterReserved,
}

// Filter returns the candidates the item should be placed in. The result is
// a subsequence of candidates and is only empty when candidates is.
func (c *Config) Filter(it *world.Item, candidates []*world.Location) []*world.Location {
	f, ok := filters[c.Mode]
	if !ok {
		return candidates
	}
	return f(c, it, candidates)
}

func unrestricted(_ *Config, _ *world.Item, candidates []*world.Location) []*world.Location {
	return candidates
}

func keep(candidates []*world.Location, pred func(*world.Location) bool) []*world.Location {
	var out []*world.Location
	for _, l := range candidates {
		if pred(l) {
			out = append(out, l)
		}
	}
	return out
}

func filterVanilla(c *Config, it *world.Item, candidates []*world.Location) []*world.Location {
	name := it.Name
	if strings.HasPrefix(name, "Bottle") {
		name = "Bottle"
	}
	own := func(allowed func(string) bool) []*world.Location {
		return keep(candidates, func(l *world.Location) bool {
			return l.Player == it.Player && allowed(l.Name)
		})
	}
	if static, ok := c.staticIndex[it.Player][name]; ok {
		if filtered := own(static.Has); len(filtered) > 0 {
			return filtered
		}
	}
	for _, tier := range c.Tiers[it.Player] {
		if filtered := own(tier.Contains); len(filtered) > 0 {
			return filtered
		}
	}
	return candidates
}

func filterTiered(c *Config, it *world.Item, candidates []*world.Location) []*world.Location {
	if !c.IsMajor(it.Player, it.Name) {
		return candidates
	}
	for i := 0; i < 2; i++ {
		filtered := keep(candidates, func(l *world.Location) bool {
			tiers := c.Tiers[l.Player]
			return i < len(tiers) && tiers[i].Contains(l.Name)
		})
		if len(filtered) > 0 {
			return filtered
		}
	}
	return candidates
}

func filterReserved(c *Config, it *world.Item, candidates []*world.Location) []*world.Location {
	if c.Reservation == nil || !(it.Placeholder || c.IsMajor(it.Player, it.Name)) {
		return candidates
	}
	filtered := keep(candidates, func(l *world.Location) bool {
		return c.Reservation.Owns(l.Name, l.Player)
	})
	if len(filtered) > 0 {
		return filtered
	}
	return candidates
}

var fallbackSet = mapset.Of(catalog.DungeonFallback()...)

// VanillaFallback restricts a dungeon item that is not shuffled to the
// interior slots of its own dungeon. Other items get an empty result.
func VanillaFallback(it *world.Item, candidates []*world.Location, s world.Settings) []*world.Location {
	if !it.IsInsideDungeonItem(s) {
		return nil
	}
	dungeon := it.DungeonName()
	return keep(candidates, func(l *world.Location) bool {
		return fallbackSet.Has(l.Name) && l.Dungeon != "" && l.Dungeon == dungeon
	})
}
