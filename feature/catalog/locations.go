package catalog

// Group names a fixed family of location names.
type Group string

const (
	OverworldMajor  Group = "overworld_major"
	BigChests       Group = "big_chests"
	HeartContainers Group = "heart_containers"
	HeartPieces     Group = "heart_pieces"
	BigKeys         Group = "big_keys"
	Compasses       Group = "compasses"
	Maps            Group = "maps"
	SmallKeys       Group = "small_keys"
	DungeonTrash    Group = "dungeon_trash"
	OverworldTrash  Group = "overworld_trash"
	TowerTrash      Group = "tower_trash"
	KeyDrops        Group = "key_drops"
	BigKeyDrops     Group = "big_key_drops"
	Shops           Group = "shops"
	RetroShops      Group = "retro_shops"
)

var groups = map[Group][]string{
	OverworldMajor: {
		"Link's Uncle", "King Zora", "Link's House", "Sahasrahla", "Ice Rod Cave", "Library",
		"Master Sword Pedestal", "Old Man", "Ether Tablet", "Catfish", "Stumpy", "Bombos Tablet", "Mushroom",
		"Bottle Merchant", "Kakariko Tavern", "Secret Passage", "Flute Spot", "Purple Chest",
		"Waterfall Fairy - Left", "Waterfall Fairy - Right", "Blacksmith", "Magic Bat", "Sick Kid", "Hobo",
		"Potion Shop", "Spike Cave", "Pyramid Fairy - Left", "Pyramid Fairy - Right", "King's Tomb",
	},
	BigChests: {
		"Eastern Palace - Big Chest", "Desert Palace - Big Chest", "Tower of Hera - Big Chest",
		"Palace of Darkness - Big Chest", "Swamp Palace - Big Chest", "Skull Woods - Big Chest",
		"Thieves' Town - Big Chest", "Misery Mire - Big Chest", "Hyrule Castle - Boomerang Chest",
		"Ice Palace - Big Chest", "Turtle Rock - Big Chest", "Ganons Tower - Big Chest",
	},
	HeartContainers: {
		"Sanctuary", "Eastern Palace - Boss", "Desert Palace - Boss", "Tower of Hera - Boss",
		"Palace of Darkness - Boss", "Swamp Palace - Boss", "Skull Woods - Boss", "Thieves' Town - Boss",
		"Ice Palace - Boss", "Misery Mire - Boss", "Turtle Rock - Boss",
	},
	HeartPieces: {
		"Bumper Cave Ledge", "Desert Ledge", "Lake Hylia Island", "Floating Island", "Maze Race", "Spectacle Rock",
		"Pyramid", "Zora's Ledge", "Lumberjack Tree", "Sunken Treasure", "Spectacle Rock Cave",
		"Lost Woods Hideout", "Checkerboard Cave", "Peg Cave", "Cave 45", "Graveyard Cave", "Kakariko Well - Top",
		"Blind's Hideout - Top", "Bonk Rock Cave", "Aginah's Cave", "Chest Game", "Digging Game",
		"Mire Shed - Right", "Mimic Cave",
	},
	BigKeys: {
		"Eastern Palace - Big Key Chest", "Ganons Tower - Big Key Chest", "Desert Palace - Big Key Chest",
		"Tower of Hera - Big Key Chest", "Palace of Darkness - Big Key Chest", "Swamp Palace - Big Key Chest",
		"Thieves' Town - Big Key Chest", "Skull Woods - Big Key Chest", "Ice Palace - Big Key Chest",
		"Misery Mire - Big Key Chest", "Turtle Rock - Big Key Chest",
	},
	Compasses: {
		"Eastern Palace - Compass Chest", "Desert Palace - Compass Chest", "Tower of Hera - Compass Chest",
		"Palace of Darkness - Compass Chest", "Swamp Palace - Compass Chest", "Skull Woods - Compass Chest",
		"Thieves' Town - Compass Chest", "Ice Palace - Compass Chest", "Misery Mire - Compass Chest",
		"Turtle Rock - Compass Chest", "Ganons Tower - Compass Room - Top Left",
	},
	Maps: {
		"Hyrule Castle - Map Chest", "Eastern Palace - Map Chest", "Desert Palace - Map Chest",
		"Tower of Hera - Map Chest", "Palace of Darkness - Map Chest", "Swamp Palace - Map Chest",
		"Skull Woods - Map Chest", "Thieves' Town - Map Chest", "Ice Palace - Map Chest", "Misery Mire - Map Chest",
		"Turtle Rock - Roller Room - Left", "Ganons Tower - Map Chest",
	},
	SmallKeys: {
		"Sewers - Dark Cross", "Desert Palace - Torch", "Tower of Hera - Basement Cage", "Castle Tower - Room 03",
		"Castle Tower - Dark Maze", "Palace of Darkness - Stalfos Basement",
		"Palace of Darkness - Dark Basement - Right", "Palace of Darkness - Harmless Hellway",
		"Palace of Darkness - Shooter Room", "Palace of Darkness - The Arena - Bridge",
		"Palace of Darkness - The Arena - Ledge", "Thieves' Town - Blind's Cell", "Skull Woods - Bridge Room",
		"Ice Palace - Spike Room", "Skull Woods - Pot Prison", "Skull Woods - Pinball Room",
		"Misery Mire - Spike Chest", "Ice Palace - Iced T Room", "Misery Mire - Main Lobby",
		"Misery Mire - Bridge Chest", "Swamp Palace - Entrance", "Turtle Rock - Chain Chomps",
		"Turtle Rock - Crystaroller Room", "Turtle Rock - Roller Room - Right",
		"Turtle Rock - Eye Bridge - Bottom Left", "Ganons Tower - Bob's Torch", "Ganons Tower - Tile Room",
		"Ganons Tower - Firesnake Room", "Ganons Tower - Pre-Moldorm Chest",
	},
	DungeonTrash: {
		"Sewers - Secret Room - Right", "Sewers - Secret Room - Left", "Sewers - Secret Room - Middle",
		"Hyrule Castle - Zelda's Chest", "Eastern Palace - Cannonball Chest", "Thieves' Town - Ambush Chest",
		"Thieves' Town - Attic", "Ice Palace - Freezor Chest", "Palace of Darkness - Dark Basement - Left",
		"Palace of Darkness - Dark Maze - Bottom", "Palace of Darkness - Dark Maze - Top",
		"Swamp Palace - Flooded Room - Left", "Swamp Palace - Flooded Room - Right",
		"Swamp Palace - Waterfall Room", "Turtle Rock - Eye Bridge - Bottom Right",
		"Turtle Rock - Eye Bridge - Top Left", "Turtle Rock - Eye Bridge - Top Right", "Swamp Palace - West Chest",
	},
	OverworldTrash: {
		"Blind's Hideout - Left", "Blind's Hideout - Right", "Blind's Hideout - Far Left",
		"Blind's Hideout - Far Right", "Kakariko Well - Left", "Kakariko Well - Middle", "Kakariko Well - Right",
		"Kakariko Well - Bottom", "Chicken House", "Floodgate Chest", "Mini Moldorm Cave - Left",
		"Mini Moldorm Cave - Right", "Mini Moldorm Cave - Generous Guy", "Mini Moldorm Cave - Far Left",
		"Mini Moldorm Cave - Far Right", "Sahasrahla's Hut - Left", "Sahasrahla's Hut - Right",
		"Sahasrahla's Hut - Middle", "Paradox Cave Lower - Far Left", "Paradox Cave Lower - Left",
		"Paradox Cave Lower - Right", "Paradox Cave Lower - Far Right", "Paradox Cave Lower - Middle",
		"Paradox Cave Upper - Left", "Paradox Cave Upper - Right", "Spiral Cave", "Brewery", "C-Shaped House",
		"Hype Cave - Top", "Hype Cave - Middle Right", "Hype Cave - Middle Left", "Hype Cave - Bottom",
		"Hype Cave - Generous Guy", "Superbunny Cave - Bottom", "Superbunny Cave - Top",
		"Hookshot Cave - Top Right", "Hookshot Cave - Top Left", "Hookshot Cave - Bottom Right",
		"Hookshot Cave - Bottom Left", "Mire Shed - Left",
	},
	TowerTrash: {
		"Ganons Tower - DMs Room - Top Right", "Ganons Tower - DMs Room - Top Left",
		"Ganons Tower - DMs Room - Bottom Left", "Ganons Tower - DMs Room - Bottom Right",
		"Ganons Tower - Compass Room - Top Right", "Ganons Tower - Compass Room - Bottom Right",
		"Ganons Tower - Compass Room - Bottom Left", "Ganons Tower - Hope Room - Left",
		"Ganons Tower - Hope Room - Right", "Ganons Tower - Randomizer Room - Top Left",
		"Ganons Tower - Randomizer Room - Top Right", "Ganons Tower - Randomizer Room - Bottom Right",
		"Ganons Tower - Randomizer Room - Bottom Left", "Ganons Tower - Bob's Chest",
		"Ganons Tower - Big Key Room - Left", "Ganons Tower - Big Key Room - Right",
		"Ganons Tower - Mini Helmasaur Room - Left", "Ganons Tower - Mini Helmasaur Room - Right",
		"Ganons Tower - Validation Chest",
	},
	KeyDrops: {
		"Hyrule Castle - Map Guard Key Drop", "Hyrule Castle - Boomerang Guard Key Drop",
		"Hyrule Castle - Key Rat Key Drop", "Eastern Palace - Dark Square Pot Key",
		"Eastern Palace - Dark Eyegore Key Drop", "Desert Palace - Desert Tiles 1 Pot Key",
		"Desert Palace - Beamos Hall Pot Key", "Desert Palace - Desert Tiles 2 Pot Key",
		"Castle Tower - Dark Archer Key Drop", "Castle Tower - Circle of Pots Key Drop",
		"Swamp Palace - Pot Row Pot Key", "Swamp Palace - Trench 1 Pot Key", "Swamp Palace - Hookshot Pot Key",
		"Swamp Palace - Trench 2 Pot Key", "Swamp Palace - Waterway Pot Key", "Skull Woods - West Lobby Pot Key",
		"Skull Woods - Spike Corner Key Drop", "Thieves' Town - Hallway Pot Key",
		"Thieves' Town - Spike Switch Pot Key", "Ice Palace - Jelly Key Drop", "Ice Palace - Conveyor Key Drop",
		"Ice Palace - Hammer Block Key Drop", "Ice Palace - Many Pots Pot Key", "Misery Mire - Spikes Pot Key",
		"Misery Mire - Fishbone Pot Key", "Misery Mire - Conveyor Crystal Key Drop",
		"Turtle Rock - Pokey 1 Key Drop", "Turtle Rock - Pokey 2 Key Drop", "Ganons Tower - Conveyor Cross Pot Key",
		"Ganons Tower - Double Switch Pot Key", "Ganons Tower - Conveyor Star Pits Pot Key",
		"Ganons Tower - Mini Helmasuar Key Drop",
	},
	BigKeyDrops: {
		"Hyrule Castle - Big Key Drop",
	},
	Shops: {
		"Dark Death Mountain Shop - Left", "Dark Death Mountain Shop - Middle", "Dark Death Mountain Shop - Right",
		"Red Shield Shop - Left", "Red Shield Shop - Middle", "Red Shield Shop - Right",
		"Dark Lake Hylia Shop - Left", "Dark Lake Hylia Shop - Middle", "Dark Lake Hylia Shop - Right",
		"Dark Lumberjack Shop - Left", "Dark Lumberjack Shop - Middle", "Dark Lumberjack Shop - Right",
		"Village of Outcasts Shop - Left", "Village of Outcasts Shop - Middle", "Village of Outcasts Shop - Right",
		"Dark Potion Shop - Left", "Dark Potion Shop - Middle", "Dark Potion Shop - Right", "Paradox Shop - Left",
		"Paradox Shop - Middle", "Paradox Shop - Right", "Kakariko Shop - Left", "Kakariko Shop - Middle",
		"Kakariko Shop - Right", "Lake Hylia Shop - Left", "Lake Hylia Shop - Middle", "Lake Hylia Shop - Right",
		"Capacity Upgrade - Left", "Capacity Upgrade - Right",
	},
	RetroShops: {
		"Old Man Sword Cave Item 1", "Take-Any #1 Item 1", "Take-Any #1 Item 2", "Take-Any #2 Item 1",
		"Take-Any #2 Item 2", "Take-Any #3 Item 1", "Take-Any #3 Item 2", "Take-Any #4 Item 1",
		"Take-Any #4 Item 2",
	},
}

// Locations returns the location names of the given groups, concatenated in
// argument order. The result is a fresh slice.
func Locations(gs ...Group) []string {
	var out []string
	for _, g := range gs {
		out = append(out, groups[g]...)
	}
	return out
}

// PrimaryMajor is the fixed major-location union used as the first tier by the
// vanilla and major-bias strategies.
func PrimaryMajor() []string {
	return Locations(OverworldMajor, BigChests, HeartContainers)
}

// DungeonInterior is the set of dungeon-internal slots used as the first tier
// of the dungeon-bias strategy.
func DungeonInterior() []string {
	return Locations(BigChests, DungeonTrash, BigKeys, HeartContainers, TowerTrash, SmallKeys,
		Compasses, Maps, KeyDrops, BigKeyDrops)
}

// DungeonFallback lists the dungeon slots an unshuffled dungeon item may fall
// back to.
func DungeonFallback() []string {
	return Locations(DungeonTrash, BigKeys, TowerTrash, SmallKeys, Compasses, Maps, KeyDrops, BigKeyDrops)
}
