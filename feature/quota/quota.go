package quota

import (
	"item-bias/feature/catalog"
	"item-bias/feature/world"

	"github.com/zyedidia/generic/mapset"
)

const (
	baseMajorItems = 52
	baseFlatLimit  = 60
)

// MajorItemSet returns the names that count as major for a player. Enabling a
// shuffle flag only ever adds names.
func MajorItemSet(s world.Settings) mapset.Set[string] {
	set := mapset.Of(catalog.MajorItems...)
	add := func(names ...string) {
		for _, n := range names {
			set.Put(n)
		}
	}
	if s.BigKeyShuffle {
		add(catalog.ItemNames(catalog.ClassBigKey)...)
	}
	if s.KeyShuffle {
		add(catalog.ItemNames(catalog.ClassSmallKey)...)
	}
	if s.CompassShuffle {
		add(catalog.ItemNames(catalog.ClassCompass)...)
	}
	if s.MapShuffle {
		add(catalog.ItemNames(catalog.ClassMap)...)
	}
	if s.ShopSanity {
		add("Bomb Upgrade (+5)", "Arrow Upgrade (+5)")
	}
	if s.Retro {
		add("Single Arrow", catalog.UniversalKey)
	}
	if s.Goal == world.GoalTriforceHunt {
		add("Triforce Piece")
	}
	if s.BombBag {
		add("Bomb Upgrade (+10)")
	}
	return set
}

// MajorItemCount returns the number of major items a player's pool holds.
// Adjustments are applied in a fixed order; retro mode replaces the small key
// contribution with universal keys.
func MajorItemCount(s world.Settings) int {
	n := baseMajorItems
	crossed := s.DoorShuffle == world.DoorsCrossed
	if s.BigKeyShuffle {
		n += 11
		if s.KeyDropShuffle {
			n++
		}
		if crossed {
			n++
		}
	}
	if s.KeyShuffle {
		n += 29
		if s.KeyDropShuffle {
			n += 32
		}
	}
	if s.CompassShuffle {
		n += 11
		if crossed {
			n += 2
		}
	}
	if s.MapShuffle {
		n += 12
		if crossed {
			n++
		}
	}
	if s.ShopSanity {
		n += 2
		if s.Retro {
			n += 5
		}
	}
	if s.Goal == world.GoalTriforceHunt {
		n += s.TriforcePool
	}
	if s.BombBag {
		n += 2
	}
	switch s.Swords {
	case world.SwordsAssured:
		n--
	case world.SwordsVanilla, world.SwordsSwordless:
		n -= 4
	}
	if s.Retro {
		if s.ShopSanity {
			n--
		}
		if s.KeyShuffle {
			n -= 29
		}
		if s.Difficulty == world.DifficultyNormal {
			n += 19
		} else {
			n += 14
		}
		if s.Mode == world.ModeStandard && s.DoorShuffle == world.DoorsVanilla {
			n--
		}
		if s.DoorShuffle != world.DoorsVanilla {
			n += 10
		}
	}
	return n
}
