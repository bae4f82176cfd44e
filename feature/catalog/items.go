package catalog

import "strings"

// MajorItems is the base set of progression-relevant item names, before any
// shuffle flag widens it.
var MajorItems = []string{
	"Blue Boomerang", "Blue Mail", "Blue Shield", "Bombos", "Book of Mudora", "Boss Heart Container", "Bottle",
	"Bottle (Bee)", "Bottle (Blue Potion)", "Bottle (Fairy)", "Bottle (Good Bee)", "Bottle (Green Potion)",
	"Bottle (Red Potion)", "Bow", "Bug Catching Net", "Cane of Byrna", "Cane of Somaria", "Cape", "Ether",
	"Fighter Sword", "Fire Rod", "Flippers", "Golden Sword", "Hammer", "Hookshot", "Ice Rod", "Lamp",
	"Magic Mirror", "Magic Powder", "Magic Upgrade (1/2)", "Master Sword", "Mirror Shield", "Moon Pearl",
	"Mushroom", "Ocarina", "Pegasus Boots", "Power Glove", "Progressive Armor", "Progressive Bow",
	"Progressive Bow (Alt)", "Progressive Glove", "Progressive Shield", "Progressive Sword", "Quake",
	"Red Boomerang", "Red Mail", "Red Shield", "Sanctuary Heart Container", "Shovel", "Silver Arrows",
	"Tempered Sword", "Titans Mitts", "Triforce Piece",
}

// TrashValues scores every removable filler item. Lower scores are removed
// first when the pool has to shrink.
var TrashValues = map[string]int{
	"Nothing":        -1,
	"Bee Trap":       0,
	"Rupee (1)":      1,
	"Rupees (5)":     1,
	"Rupees (20)":    1,
	"Small Heart":    2,
	"Bee":            2,
	"Bombs (3)":      3,
	"Arrows (10)":    3,
	"Bombs (10)":     3,
	"Red Potion":     4,
	"Blue Shield":    4,
	"Rupees (50)":    4,
	"Rupees (100)":   4,
	"Rupees (300)":   5,
	"Piece of Heart": 17,
}

// Currency items minted by the pool balancer.
const (
	SingleRupee = "Rupee (1)"
	FiveRupees  = "Rupees (5)"
)

// IsTrash reports whether name is a removable filler item.
func IsTrash(name string) bool {
	_, ok := TrashValues[name]
	return ok
}

// Class identifies the dungeon item family an item belongs to.
type Class int

const (
	ClassNone Class = iota
	ClassBigKey
	ClassSmallKey
	ClassCompass
	ClassMap
)

var classPrefixes = []struct {
	prefix string
	class  Class
}{
	{"Big Key (", ClassBigKey},
	{"Small Key (", ClassSmallKey},
	{"Compass (", ClassCompass},
	{"Map (", ClassMap},
}

// UniversalKey is the shared small key used in retro mode.
const UniversalKey = "Small Key (Universal)"

// ClassOf returns the dungeon item class of name and the dungeon suffix found
// between its parentheses. Items outside the four families return ClassNone.
func ClassOf(name string) (Class, string) {
	for _, p := range classPrefixes {
		if strings.HasPrefix(name, p.prefix) && strings.HasSuffix(name, ")") {
			return p.class, name[len(p.prefix) : len(name)-1]
		}
	}
	return ClassNone, ""
}

// ItemNames lists every item name of the given class, in dungeon table order.
func ItemNames(c Class) []string {
	var out []string
	for _, d := range Dungeons {
		switch c {
		case ClassBigKey:
			if d.BigKeyPresent || d.BigKeyDrops {
				out = append(out, "Big Key ("+d.ItemSuffix+")")
			}
		case ClassSmallKey:
			if d.KeyNum > 0 || d.KeyDrops > 0 {
				out = append(out, "Small Key ("+d.ItemSuffix+")")
			}
		case ClassCompass:
			if d.CompassPresent {
				out = append(out, "Compass ("+d.ItemSuffix+")")
			}
		case ClassMap:
			if d.MapPresent {
				out = append(out, "Map ("+d.ItemSuffix+")")
			}
		}
	}
	if c == ClassSmallKey {
		out = append(out, UniversalKey)
	}
	return out
}
