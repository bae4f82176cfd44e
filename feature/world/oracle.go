package world

// LayoutOracle decides whether a dungeon with vanilla doors can still hold its
// own items once the given slots are reserved for other items.
type LayoutOracle interface {
	Feasible(dungeon string, player int, reserved func(location string) bool) bool
}

// SlotOracle is a LayoutOracle that compares open slots against the dungeon
// items that must stay inside.
type SlotOracle struct {
	world World
}

// NewSlotOracle returns a SlotOracle over w.
func NewSlotOracle(w World) *SlotOracle {
	return &SlotOracle{world: w}
}

// Feasible reports whether the unreserved, unfilled real slots of dungeon are
// at least as many as the player's dungeon items bound to it.
func (o *SlotOracle) Feasible(dungeon string, player int, reserved func(location string) bool) bool {
	settings := o.world.Settings(player)
	need := 0
	for _, it := range o.world.DungeonItems(player) {
		if it.DungeonName() == dungeon && it.IsInsideDungeonItem(settings) {
			need++
		}
	}
	free := 0
	for _, loc := range o.world.Locations(player) {
		if loc.Dungeon != dungeon || !loc.Real || loc.ForcedItem || loc.Filled() {
			continue
		}
		if !reserved(loc.Name) {
			free++
		}
	}
	return free >= need
}
