package world

import (
	"item-bias/feature/catalog"
)

var fillerCycle = []string{"Rupees (50)", "Arrows (10)", "Bombs (10)", "Rupees (20)", "Bombs (3)"}

const bombUpgrade = "Bomb Upgrade (+10)"

// NewStandard builds a world from the catalog's vanilla layout. Each player
// gets the always-present locations plus the key drop, shop and retro shop
// slots their settings enable, a prize slot per prize dungeon, and one item per
// open slot taken from the vanilla layout.
func NewStandard(settings ...Settings) (*Memory, error) {
	m, err := NewMemory(settings...)
	if err != nil {
		return nil, err
	}
	for player := 1; player <= m.Players(); player++ {
		if err := m.populate(player, NewItem); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Memory) populate(player int, factory ItemFactory) error {
	s := m.Settings(player)

	groups := []catalog.Group{
		catalog.OverworldMajor, catalog.BigChests, catalog.HeartContainers, catalog.HeartPieces,
		catalog.BigKeys, catalog.Compasses, catalog.Maps, catalog.SmallKeys,
		catalog.DungeonTrash, catalog.OverworldTrash, catalog.TowerTrash,
	}
	if s.KeyDropShuffle {
		groups = append(groups, catalog.KeyDrops, catalog.BigKeyDrops)
	}
	if s.ShopSanity {
		groups = append(groups, catalog.Shops)
	}
	if s.Retro {
		groups = append(groups, catalog.RetroShops)
	}

	prefilled := make(map[string]bool)
	if s.Swords == SwordsVanilla {
		for _, name := range catalog.VanillaSwords {
			prefilled[name] = true
		}
	}

	filler := 0
	for _, name := range catalog.Locations(groups...) {
		if _, dup := m.index[player][name]; dup {
			continue
		}
		loc := &Location{Name: name, Player: player, Dungeon: catalog.DungeonOf(name), Real: true}
		if err := m.AddLocation(loc); err != nil {
			return err
		}

		itemName, ok := catalog.VanillaItemAt(name)
		if !ok {
			itemName = fillerCycle[filler%len(fillerCycle)]
			filler++
		}
		switch {
		case prefilled[name]:
			loc.Item = factory(itemName, player)
			continue
		case s.Goal == GoalPedestal && name == "Master Sword Pedestal":
			loc.ForcedItem = true
			loc.Item = factory("Triforce", player)
			continue
		case s.Swords == SwordsSwordless && isSword(itemName):
			itemName = "Rupees (20)"
		}

		it := factory(itemName, player)
		if it.IsSmallKey() && s.Retro {
			it = factory(catalog.UniversalKey, player)
		}
		var err error
		if it.IsInsideDungeonItem(s) {
			err = m.AddDungeonItem(it)
		} else {
			err = m.AddItem(it)
		}
		if err != nil {
			return err
		}
	}

	if s.BombBag {
		for range 2 {
			if err := m.AddItem(factory(bombUpgrade, player)); err != nil {
				return err
			}
		}
	}

	for _, d := range catalog.Dungeons {
		if !d.Prize {
			continue
		}
		name := d.PrizeLocation()
		prize, _ := catalog.VanillaItemAt(name)
		loc := &Location{Name: name, Player: player, Dungeon: d.Name, Real: true, ForcedItem: true,
			Item: factory(prize, player)}
		if err := m.AddLocation(loc); err != nil {
			return err
		}
	}
	return nil
}

func isSword(name string) bool {
	switch name {
	case "Fighter Sword", "Master Sword", "Tempered Sword", "Golden Sword", "Progressive Sword":
		return true
	}
	return false
}
