package quota

import (
	"item-bias/feature/catalog"
	"item-bias/feature/world"
)

// Limits caps how many slots may be reserved for major items. It is either
// PerDungeon or Flat.
type Limits interface {
	limits()
}

// PerDungeon caps each dungeon separately. Keys are catalog dungeon names.
type PerDungeon map[string]int

// Flat caps all dungeons together.
type Flat int

func (PerDungeon) limits() {}
func (Flat) limits()       {}

// Clone returns an independent copy that can be decremented.
func (p PerDungeon) Clone() PerDungeon {
	out := make(PerDungeon, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// DungeonLimits returns the reservation budget for a player. Vanilla and basic
// door layouts keep dungeons apart and yield PerDungeon; any other layout
// yields Flat.
func DungeonLimits(s world.Settings) Limits {
	switch s.DoorShuffle {
	case world.DoorsVanilla, world.DoorsBasic:
		return perDungeon(s, catalog.Dungeons)
	}
	return flat(s)
}

func perDungeon(s world.Settings, table []catalog.Dungeon) PerDungeon {
	keys := s.SmallKeysFree()
	out := make(PerDungeon, len(table))
	for _, d := range table {
		val := d.FreeItems
		if d.Prize {
			switch s.RestrictBossItems {
			case world.BossMapCompass:
				if !s.CompassShuffle || !s.MapShuffle {
					val--
				}
			case world.BossDungeon:
				if !s.CompassShuffle || !s.MapShuffle || !keys || !s.BigKeyShuffle {
					val--
				}
			}
		}
		if s.BigKeyShuffle {
			if d.BigKeyPresent {
				val++
			}
			if s.KeyDropShuffle && d.BigKeyDrops {
				val++
			}
		}
		if keys {
			val += d.KeyNum
			if s.KeyDropShuffle {
				val += d.KeyDrops
			}
		}
		if s.CompassShuffle && d.CompassPresent {
			val++
		}
		if s.MapShuffle && d.MapPresent {
			val++
		}
		out[d.Name] = val
	}
	return out
}

func flat(s world.Settings) Flat {
	n := baseFlatLimit
	if s.BigKeyShuffle {
		n += 11
		if s.KeyDropShuffle {
			n++
		}
	}
	if s.SmallKeysFree() {
		n += 29
		if s.KeyDropShuffle {
			n += 32
		}
	}
	if s.CompassShuffle {
		n += 11
	}
	if s.MapShuffle {
		n += 12
	}
	return Flat(n)
}
