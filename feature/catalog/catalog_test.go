package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseLocations() []string {
	return Locations(OverworldMajor, BigChests, HeartContainers, HeartPieces, BigKeys, Compasses, Maps,
		SmallKeys, DungeonTrash, OverworldTrash, TowerTrash)
}

// TestBaseLocationsAreUnique tests that the always-present groups do not overlap.
func TestBaseLocationsAreUnique(t *testing.T) {
	all := baseLocations()
	seen := make(map[string]bool, len(all))
	for _, name := range all {
		assert.False(t, seen[name], "duplicate location %q", name)
		seen[name] = true
	}
	assert.Len(t, all, 216)
}

// TestGroupSizes tests the literal sizes of the fixed groups.
func TestGroupSizes(t *testing.T) {
	tests := map[Group]int{
		OverworldMajor:  29,
		BigChests:       12,
		HeartContainers: 11,
		HeartPieces:     24,
		BigKeys:         11,
		Compasses:       11,
		Maps:            12,
		SmallKeys:       29,
		KeyDrops:        32,
		BigKeyDrops:     1,
	}
	for g, want := range tests {
		t.Run(string(g), func(t *testing.T) {
			assert.Len(t, Locations(g), want)
		})
	}
}

// TestLocationsReturnsFreshSlice tests that callers cannot corrupt the tables.
func TestLocationsReturnsFreshSlice(t *testing.T) {
	got := Locations(BigKeyDrops)
	got[0] = "mutated"
	assert.Equal(t, "Hyrule Castle - Big Key Drop", Locations(BigKeyDrops)[0])
}

// TestBaseClustersAreFull tests that every base cluster holds exactly ClusterSize locations.
func TestBaseClustersAreFull(t *testing.T) {
	require.Len(t, BaseClusters, 11)
	for _, c := range BaseClusters {
		assert.Len(t, c.Locations, ClusterSize, c.Name)
	}
}

// TestBaseClustersPartitionUniverse tests that clusters plus leftovers cover the
// non-key universe without overlap.
func TestBaseClustersPartitionUniverse(t *testing.T) {
	covered := make(map[string]int)
	for _, c := range BaseClusters {
		for _, name := range c.Locations {
			covered[name]++
		}
	}
	for _, name := range Leftovers {
		covered[name]++
	}
	for name, n := range covered {
		assert.Equal(t, 1, n, name)
	}
	universe := Locations(OverworldMajor, BigChests, HeartContainers, HeartPieces, DungeonTrash,
		OverworldTrash, TowerTrash)
	assert.Len(t, covered, len(universe))
	for _, name := range universe {
		assert.Contains(t, covered, name)
	}
}

// TestDungeonOf tests location prefix resolution.
func TestDungeonOf(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{"Sanctuary", "Hyrule Castle"},
		{"Sewers - Dark Cross", "Hyrule Castle"},
		{"Castle Tower - Room 03", "Agahnims Tower"},
		{"Thieves' Town - Boss", "Thieves Town"},
		{"Ganons Tower - Bob's Chest", "Ganons Tower"},
		{"Link's Uncle", ""},
		{"Sahasrahla", ""},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.want, DungeonOf(tt.location))
		})
	}
}

// TestDungeonTableTotals tests that descriptor totals match the location groups.
func TestDungeonTableTotals(t *testing.T) {
	var bigKeys, keys, drops, compasses, maps int
	for _, d := range Dungeons {
		if d.BigKeyPresent {
			bigKeys++
		}
		if d.CompassPresent {
			compasses++
		}
		if d.MapPresent {
			maps++
		}
		keys += d.KeyNum
		drops += d.KeyDrops
	}
	assert.Equal(t, len(Locations(BigKeys)), bigKeys)
	assert.Equal(t, len(Locations(SmallKeys)), keys)
	assert.Equal(t, len(Locations(KeyDrops)), drops)
	assert.Equal(t, len(Locations(Compasses)), compasses)
	assert.Equal(t, len(Locations(Maps)), maps)
}

func TestBossLocation(t *testing.T) {
	d, ok := DungeonBySuffix("Thieves Town")
	require.True(t, ok)
	assert.Equal(t, "Thieves' Town - Boss", d.BossLocation())

	d, ok = DungeonBySuffix("Eastern Palace")
	require.True(t, ok)
	assert.Equal(t, "Eastern Palace - Boss", d.BossLocation())
	assert.Contains(t, Locations(HeartContainers), d.BossLocation())
}

// TestClassOf tests dungeon item detection by name.
func TestClassOf(t *testing.T) {
	tests := []struct {
		name   string
		class  Class
		suffix string
	}{
		{"Big Key (Eastern Palace)", ClassBigKey, "Eastern Palace"},
		{"Small Key (Escape)", ClassSmallKey, "Escape"},
		{"Small Key (Universal)", ClassSmallKey, "Universal"},
		{"Compass (Ganons Tower)", ClassCompass, "Ganons Tower"},
		{"Map (Escape)", ClassMap, "Escape"},
		{"Hookshot", ClassNone, ""},
		{"Rupees (20)", ClassNone, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, suffix := ClassOf(tt.name)
			assert.Equal(t, tt.class, class)
			assert.Equal(t, tt.suffix, suffix)
		})
	}
}

func TestItemNames(t *testing.T) {
	assert.Len(t, ItemNames(ClassBigKey), 12)
	assert.Len(t, ItemNames(ClassSmallKey), 14)
	assert.Len(t, ItemNames(ClassCompass), 11)
	assert.Len(t, ItemNames(ClassMap), 12)
	assert.Contains(t, ItemNames(ClassSmallKey), UniversalKey)
	assert.Empty(t, ItemNames(ClassNone))
}

// TestVanillaItemAt tests that every base location has a vanilla item.
func TestVanillaItemAt(t *testing.T) {
	for _, name := range baseLocations() {
		_, ok := VanillaItemAt(name)
		assert.True(t, ok, name)
	}
	item, ok := VanillaItemAt("Eastern Palace - Big Chest")
	require.True(t, ok)
	assert.Equal(t, "Bow", item)
}

func TestTrashValues(t *testing.T) {
	assert.True(t, IsTrash(SingleRupee))
	assert.True(t, IsTrash(FiveRupees))
	assert.False(t, IsTrash("Hookshot"))
	assert.Less(t, TrashValues[SingleRupee], TrashValues["Piece of Heart"])
}
