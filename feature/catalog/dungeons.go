package catalog

import (
	"sort"
	"strings"
)

// Dungeon describes the fixed slot budget of one dungeon.
type Dungeon struct {
	Name           string
	ItemSuffix     string
	Prefixes       []string
	FreeItems      int
	Prize          bool
	BigKeyPresent  bool
	BigKeyDrops    bool
	KeyNum         int
	KeyDrops       int
	CompassPresent bool
	MapPresent     bool
}

// BossLocation returns the name of the boss reward slot. It is only
// meaningful for prize dungeons.
func (d Dungeon) BossLocation() string {
	if strings.HasPrefix(d.Name, "Thieves") {
		return "Thieves' Town - Boss"
	}
	return d.Name + " - Boss"
}

// PrizeLocation returns the name of the pendant or crystal slot.
func (d Dungeon) PrizeLocation() string {
	if strings.HasPrefix(d.Name, "Thieves") {
		return "Thieves' Town - Prize"
	}
	return d.Name + " - Prize"
}

// Dungeons is the descriptor table, in canonical order.
var Dungeons = []Dungeon{
	{Name: "Hyrule Castle", ItemSuffix: "Escape", Prefixes: []string{"Hyrule Castle - ", "Sewers - ", "Sanctuary"},
		FreeItems: 6, BigKeyDrops: true, KeyNum: 1, KeyDrops: 3, MapPresent: true},
	{Name: "Eastern Palace", ItemSuffix: "Eastern Palace", Prefixes: []string{"Eastern Palace - "},
		FreeItems: 3, Prize: true, BigKeyPresent: true, KeyDrops: 2, CompassPresent: true, MapPresent: true},
	{Name: "Desert Palace", ItemSuffix: "Desert Palace", Prefixes: []string{"Desert Palace - "},
		FreeItems: 2, Prize: true, BigKeyPresent: true, KeyNum: 1, KeyDrops: 3, CompassPresent: true, MapPresent: true},
	{Name: "Tower of Hera", ItemSuffix: "Tower of Hera", Prefixes: []string{"Tower of Hera - "},
		FreeItems: 2, Prize: true, BigKeyPresent: true, KeyNum: 1, CompassPresent: true, MapPresent: true},
	{Name: "Agahnims Tower", ItemSuffix: "Agahnims Tower", Prefixes: []string{"Castle Tower - "},
		KeyNum: 2, KeyDrops: 2},
	{Name: "Palace of Darkness", ItemSuffix: "Palace of Darkness", Prefixes: []string{"Palace of Darkness - "},
		FreeItems: 5, Prize: true, BigKeyPresent: true, KeyNum: 6, CompassPresent: true, MapPresent: true},
	{Name: "Swamp Palace", ItemSuffix: "Swamp Palace", Prefixes: []string{"Swamp Palace - "},
		FreeItems: 6, Prize: true, BigKeyPresent: true, KeyNum: 1, KeyDrops: 5, CompassPresent: true, MapPresent: true},
	{Name: "Skull Woods", ItemSuffix: "Skull Woods", Prefixes: []string{"Skull Woods - "},
		FreeItems: 2, Prize: true, BigKeyPresent: true, KeyNum: 3, KeyDrops: 2, CompassPresent: true, MapPresent: true},
	{Name: "Thieves Town", ItemSuffix: "Thieves Town", Prefixes: []string{"Thieves' Town - "},
		FreeItems: 4, Prize: true, BigKeyPresent: true, KeyNum: 1, KeyDrops: 2, CompassPresent: true, MapPresent: true},
	{Name: "Ice Palace", ItemSuffix: "Ice Palace", Prefixes: []string{"Ice Palace - "},
		FreeItems: 3, Prize: true, BigKeyPresent: true, KeyNum: 2, KeyDrops: 4, CompassPresent: true, MapPresent: true},
	{Name: "Misery Mire", ItemSuffix: "Misery Mire", Prefixes: []string{"Misery Mire - "},
		FreeItems: 2, Prize: true, BigKeyPresent: true, KeyNum: 3, KeyDrops: 3, CompassPresent: true, MapPresent: true},
	{Name: "Turtle Rock", ItemSuffix: "Turtle Rock", Prefixes: []string{"Turtle Rock - "},
		FreeItems: 5, Prize: true, BigKeyPresent: true, KeyNum: 4, KeyDrops: 2, CompassPresent: true, MapPresent: true},
	{Name: "Ganons Tower", ItemSuffix: "Ganons Tower", Prefixes: []string{"Ganons Tower - "},
		FreeItems: 20, BigKeyPresent: true, KeyNum: 4, KeyDrops: 4, CompassPresent: true, MapPresent: true},
}

// DungeonOf returns the name of the dungeon that owns location, or "" for
// overworld locations.
func DungeonOf(location string) string {
	for _, d := range Dungeons {
		for _, p := range d.Prefixes {
			if strings.HasPrefix(location, p) {
				return d.Name
			}
		}
	}
	return ""
}

// DungeonBySuffix resolves the dungeon named in an item's parentheses.
func DungeonBySuffix(suffix string) (Dungeon, bool) {
	for _, d := range Dungeons {
		if d.ItemSuffix == suffix {
			return d, true
		}
	}
	return Dungeon{}, false
}

var vanillaItemAt map[string]string

func init() {
	names := make([]string, 0, len(VanillaPlacement))
	for name := range VanillaPlacement {
		names = append(names, name)
	}
	sort.Strings(names)
	vanillaItemAt = make(map[string]string)
	for _, name := range names {
		for _, loc := range VanillaPlacement[name] {
			if _, taken := vanillaItemAt[loc]; !taken {
				vanillaItemAt[loc] = name
			}
		}
	}
	for name, locs := range KeyDropPlacement {
		for _, loc := range locs {
			vanillaItemAt[loc] = name
		}
	}
}

// VanillaItemAt returns the item the unrandomized game places at location,
// key drop slots included.
func VanillaItemAt(location string) (string, bool) {
	name, ok := vanillaItemAt[location]
	return name, ok
}
