package world

import (
	"strings"
	"testing"

	"item-bias/feature/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewStandard_Default tests the slot and item counts of an unmodified world.
func TestNewStandard_Default(t *testing.T) {
	w, err := NewStandard(DefaultSettings(1))
	require.NoError(t, err)

	assert.Equal(t, 1, w.Players())
	assert.Len(t, w.Locations(1), 226)
	assert.Len(t, w.UnfilledLocations(1), 216)
	assert.Len(t, w.DungeonItems(1), 63)
	assert.Equal(t, 153, w.Pool().Len())

	prize, ok := w.Location("Thieves' Town - Prize", 1)
	require.True(t, ok)
	assert.True(t, prize.ForcedItem)
	assert.True(t, prize.Filled())
	assert.Equal(t, "Thieves Town", prize.Dungeon)
}

// TestNewStandard_Flags tests how settings change the generated world.
func TestNewStandard_Flags(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Settings)
		locations int
		unfilled  int
		pool      int
		dungeon   int
	}{
		{
			name: "all dungeon items shuffled",
			mutate: func(s *Settings) {
				s.BigKeyShuffle, s.KeyShuffle, s.CompassShuffle, s.MapShuffle = true, true, true, true
			},
			locations: 226, unfilled: 216, pool: 216, dungeon: 0,
		},
		{
			name:      "vanilla swords",
			mutate:    func(s *Settings) { s.Swords = SwordsVanilla },
			locations: 226, unfilled: 212, pool: 149, dungeon: 63,
		},
		{
			name:      "bomb bag",
			mutate:    func(s *Settings) { s.BombBag = true },
			locations: 226, unfilled: 216, pool: 155, dungeon: 63,
		},
		{
			name:      "retro",
			mutate:    func(s *Settings) { s.Retro = true },
			locations: 235, unfilled: 225, pool: 191, dungeon: 34,
		},
		{
			name:      "key drops",
			mutate:    func(s *Settings) { s.KeyDropShuffle = true },
			locations: 259, unfilled: 249, pool: 153, dungeon: 96,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings(1)
			tt.mutate(&s)
			w, err := NewStandard(s)
			require.NoError(t, err)
			assert.Len(t, w.Locations(1), tt.locations)
			assert.Len(t, w.UnfilledLocations(1), tt.unfilled)
			assert.Equal(t, tt.pool, w.Pool().Len())
			assert.Len(t, w.DungeonItems(1), tt.dungeon)
		})
	}
}

func TestNewStandard_PedestalGoal(t *testing.T) {
	s := DefaultSettings(1)
	s.Goal = GoalPedestal
	w, err := NewStandard(s)
	require.NoError(t, err)

	loc, ok := w.Location("Master Sword Pedestal", 1)
	require.True(t, ok)
	assert.True(t, loc.ForcedItem)
	assert.Equal(t, "Triforce", loc.Item.Name)
}

// TestNewStandard_MultiPlayer tests that every player gets an independent copy.
func TestNewStandard_MultiPlayer(t *testing.T) {
	w, err := NewStandard(DefaultSettings(1), DefaultSettings(2))
	require.NoError(t, err)

	assert.Equal(t, 2, w.Players())
	assert.Equal(t, 306, w.Pool().Len())
	assert.Len(t, w.Pool().ForPlayer(2), 153)

	a, _ := w.Location("Sahasrahla", 1)
	b, _ := w.Location("Sahasrahla", 2)
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, b.Player)
}

func TestNewMemory_PlayerMismatch(t *testing.T) {
	_, err := NewMemory(Settings{Player: 2})
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestNewMemory_InvalidSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		field  string
	}{
		{"Door Shuffle", func(s *Settings) { s.DoorShuffle = "crosed" }, "door shuffle"},
		{"Boss Restriction", func(s *Settings) { s.RestrictBossItems = "everything" }, "boss item restriction"},
		{"Swords", func(s *Settings) { s.Swords = "rusty" }, "sword policy"},
		{"Triforce Pool", func(s *Settings) { s.TriforcePool = -1 }, "triforce pool"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings(1)
			tt.mutate(&s)
			_, err := NewMemory(s)
			assert.ErrorIs(t, err, ErrInvalidSettings)
			assert.ErrorContains(t, err, tt.field)

			_, err = NewStandard(s)
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}

	_, err := Load(strings.NewReader(`{"players": [{"player": 1, "door_shuffle": "partial"}]}`))
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestMemory_Settings_Normalized(t *testing.T) {
	w, err := NewMemory(Settings{})
	require.NoError(t, err)
	s := w.Settings(1)
	assert.Equal(t, 1, s.Player)
	assert.Equal(t, DoorsVanilla, s.DoorShuffle)
	assert.Equal(t, BossNone, s.RestrictBossItems)
	assert.Equal(t, SwordsRandom, s.Swords)
	assert.Equal(t, Settings{}, w.Settings(7))
}

// TestLoad tests building a world from a JSON document.
func TestLoad(t *testing.T) {
	doc := `{
		"players": [{"player": 1, "key_shuffle": true}],
		"locations": [
			{"name": "Eastern Palace - Big Chest", "player": 1},
			{"name": "Eastern Palace - Prize", "player": 1, "forced": true, "item": "Green Pendant"},
			{"name": "Agahnim 1", "player": 1, "virtual": true}
		],
		"items": [{"name": "Hookshot", "player": 1}, {"name": "Small Key (Escape)", "player": 1}],
		"dungeon_items": [{"name": "Big Key (Eastern Palace)", "player": 1}]
	}`
	w, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	assert.True(t, w.Settings(1).KeyShuffle)
	assert.Len(t, w.Locations(1), 3)
	assert.Len(t, w.UnfilledLocations(1), 2)

	chest, ok := w.Location("Eastern Palace - Big Chest", 1)
	require.True(t, ok)
	assert.Equal(t, "Eastern Palace", chest.Dungeon)
	assert.True(t, chest.Real)

	event, _ := w.Location("Agahnim 1", 1)
	assert.False(t, event.Real)
	assert.Empty(t, event.Dungeon)

	items := w.Pool().Items()
	require.Len(t, items, 2)
	assert.True(t, items[1].IsSmallKey())
	assert.True(t, items[1].Advancement)
	require.Len(t, w.DungeonItems(1), 1)
	assert.Equal(t, "Eastern Palace", w.DungeonItems(1)[0].DungeonName())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(strings.NewReader("{"))
	assert.Error(t, err)

	_, err = Load(strings.NewReader(`{"players":[{}],"items":[{"name":"Bow","player":3}]}`))
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

// TestPool tests identity-based removal.
func TestPool(t *testing.T) {
	a := NewItem("Rupee (1)", 1)
	b := NewItem("Rupee (1)", 1)
	c := NewItem("Bow", 2)
	p := NewPool(a, b, c)

	assert.Equal(t, 2, p.Count("Rupee (1)"))
	assert.True(t, p.Remove(b))
	assert.False(t, p.Remove(b))
	assert.True(t, p.Contains(a))
	assert.False(t, p.Contains(b))
	assert.Equal(t, []*Item{c}, p.ForPlayer(2))

	items := p.Items()
	items[0] = nil
	assert.Same(t, a, p.Items()[0])
}

func TestItem_IsInsideDungeonItem(t *testing.T) {
	s := DefaultSettings(1)
	assert.True(t, NewItem("Big Key (Eastern Palace)", 1).IsInsideDungeonItem(s))
	assert.True(t, NewItem("Small Key (Escape)", 1).IsInsideDungeonItem(s))
	assert.False(t, NewItem(catalog.UniversalKey, 1).IsInsideDungeonItem(s))
	assert.False(t, NewItem("Hookshot", 1).IsInsideDungeonItem(s))

	s.Retro = true
	s.MapShuffle = true
	assert.False(t, NewItem("Small Key (Escape)", 1).IsInsideDungeonItem(s))
	assert.False(t, NewItem("Map (Escape)", 1).IsInsideDungeonItem(s))
	assert.True(t, NewItem("Compass (Ice Palace)", 1).IsInsideDungeonItem(s))
}

// TestSlotOracle tests the vanilla door feasibility check.
func TestSlotOracle(t *testing.T) {
	doc := &Document{
		Players: []Settings{DefaultSettings(1)},
		Locations: []LocationDoc{
			{Name: "Eastern Palace - Cannonball Chest", Player: 1},
			{Name: "Eastern Palace - Compass Chest", Player: 1},
			{Name: "Eastern Palace - Map Chest", Player: 1},
			{Name: "Eastern Palace - Prize", Player: 1, Forced: true, Item: "Green Pendant"},
		},
		DungeonItems: []ItemDoc{
			{Name: "Big Key (Eastern Palace)", Player: 1},
			{Name: "Compass (Eastern Palace)", Player: 1},
		},
	}
	w, err := doc.Build(NewItem)
	require.NoError(t, err)
	oracle := NewSlotOracle(w)

	reserved := map[string]bool{"Eastern Palace - Cannonball Chest": true}
	assert.True(t, oracle.Feasible("Eastern Palace", 1, func(n string) bool { return reserved[n] }))

	reserved["Eastern Palace - Map Chest"] = true
	assert.False(t, oracle.Feasible("Eastern Palace", 1, func(n string) bool { return reserved[n] }))

	assert.True(t, oracle.Feasible("Desert Palace", 1, func(string) bool { return true }))
}
