package world

import "item-bias/feature/catalog"

// Item is one collectible owned by a player.
type Item struct {
	Name    string        `json:"name"`
	Player  int           `json:"player"`
	Class   catalog.Class `json:"-"`
	Dungeon string        `json:"dungeon,omitempty"`

	Advancement bool `json:"advancement,omitempty"`
	Priority    bool `json:"priority,omitempty"`

	// Placeholder marks filler reinserted to hold a slot for a major item.
	Placeholder bool `json:"placeholder,omitempty"`
}

// ItemFactory mints a fresh item for a player.
type ItemFactory func(name string, player int) *Item

// NewItem is the default ItemFactory. Keys are created as advancement items.
func NewItem(name string, player int) *Item {
	class, suffix := catalog.ClassOf(name)
	return &Item{
		Name:        name,
		Player:      player,
		Class:       class,
		Dungeon:     suffix,
		Advancement: class == catalog.ClassBigKey || class == catalog.ClassSmallKey,
	}
}

func (i *Item) IsBigKey() bool   { return i.Class == catalog.ClassBigKey }
func (i *Item) IsSmallKey() bool { return i.Class == catalog.ClassSmallKey }
func (i *Item) IsCompass() bool  { return i.Class == catalog.ClassCompass }
func (i *Item) IsMap() bool      { return i.Class == catalog.ClassMap }

// IsInsideDungeonItem reports whether the item must stay in its own dungeon
// under the owning player's settings.
func (i *Item) IsInsideDungeonItem(s Settings) bool {
	switch i.Class {
	case catalog.ClassBigKey:
		return !s.BigKeyShuffle
	case catalog.ClassSmallKey:
		return i.Name != catalog.UniversalKey && !s.SmallKeysFree()
	case catalog.ClassCompass:
		return !s.CompassShuffle
	case catalog.ClassMap:
		return !s.MapShuffle
	}
	return false
}

// DungeonName resolves the item's dungeon suffix to the descriptor name.
func (i *Item) DungeonName() string {
	if d, ok := catalog.DungeonBySuffix(i.Dungeon); ok {
		return d.Name
	}
	return ""
}
