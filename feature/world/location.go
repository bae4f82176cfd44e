package world

import "strings"

// Location is a named slot that holds exactly one item.
type Location struct {
	Name    string
	Player  int
	Dungeon string

	// Real is false for event slots that never hold a collectible.
	Real bool
	// ForcedItem marks slots whose content is fixed before any fill runs.
	ForcedItem bool

	Item *Item
}

// Filled reports whether an item already occupies the slot.
func (l *Location) Filled() bool {
	return l.Item != nil
}

// IsPrize reports whether the slot holds a dungeon reward.
func (l *Location) IsPrize() bool {
	return strings.Contains(l.Name, "- Prize")
}

// IsBoss reports whether the slot is a boss reward.
func (l *Location) IsBoss() bool {
	return strings.Contains(l.Name, "- Boss")
}
