package catalog

// ClusterSize is the number of locations in a full cluster.
const ClusterSize = 13

// Cluster is a named group of locations drawn as a unit by the cluster strategy.
type Cluster struct {
	Name      string
	Locations []string
}

// BaseClusters partition the always-present locations into full clusters.
var BaseClusters = []Cluster{
	{Name: "MajorRoute1", Locations: []string{
		"Ice Rod Cave", "Library", "Old Man", "Magic Bat", "Ether Tablet", "Hobo", "Purple Chest", "Spike Cave",
		"Sahasrahla", "Superbunny Cave - Bottom", "Superbunny Cave - Top",
		"Ganons Tower - Randomizer Room - Bottom Left", "Ganons Tower - Randomizer Room - Bottom Right",
	}},
	{Name: "MajorRoute2", Locations: []string{
		"Mushroom", "Secret Passage", "Bottle Merchant", "Flute Spot", "Catfish", "Stumpy",
		"Waterfall Fairy - Left", "Waterfall Fairy - Right", "Master Sword Pedestal", "Thieves' Town - Attic",
		"Sewers - Secret Room - Right", "Sewers - Secret Room - Left", "Sewers - Secret Room - Middle",
	}},
	{Name: "MajorRoute3", Locations: []string{
		"Kakariko Tavern", "Sick Kid", "King Zora", "Potion Shop", "Bombos Tablet", "King's Tomb", "Blacksmith",
		"Pyramid Fairy - Left", "Pyramid Fairy - Right", "Hookshot Cave - Top Right", "Hookshot Cave - Top Left",
		"Hookshot Cave - Bottom Right", "Hookshot Cave - Bottom Left",
	}},
	{Name: "Dungeon Major", Locations: []string{
		"Eastern Palace - Big Chest", "Desert Palace - Big Chest", "Tower of Hera - Big Chest",
		"Palace of Darkness - Big Chest", "Swamp Palace - Big Chest", "Skull Woods - Big Chest",
		"Thieves' Town - Big Chest", "Misery Mire - Big Chest", "Hyrule Castle - Boomerang Chest",
		"Ice Palace - Big Chest", "Turtle Rock - Big Chest", "Ganons Tower - Big Chest", "Link's Uncle",
	}},
	{Name: "Dungeon Heart", Locations: []string{
		"Sanctuary", "Eastern Palace - Boss", "Desert Palace - Boss", "Tower of Hera - Boss",
		"Palace of Darkness - Boss", "Swamp Palace - Boss", "Skull Woods - Boss", "Thieves' Town - Boss",
		"Ice Palace - Boss", "Misery Mire - Boss", "Turtle Rock - Boss", "Link's House",
		"Ganons Tower - Validation Chest",
	}},
	{Name: "HeartPieces1", Locations: []string{
		"Kakariko Well - Top", "Lost Woods Hideout", "Maze Race", "Lumberjack Tree", "Bonk Rock Cave",
		"Graveyard Cave", "Checkerboard Cave", "Zora's Ledge", "Digging Game", "Desert Ledge", "Bumper Cave Ledge",
		"Floating Island", "Swamp Palace - Waterfall Room",
	}},
	{Name: "HeartPieces2", Locations: []string{
		"Blind's Hideout - Top", "Sunken Treasure", "Aginah's Cave", "Mimic Cave", "Spectacle Rock Cave", "Cave 45",
		"Spectacle Rock", "Lake Hylia Island", "Chest Game", "Mire Shed - Right", "Pyramid", "Peg Cave",
		"Eastern Palace - Cannonball Chest",
	}},
	{Name: "BlindHope", Locations: []string{
		"Blind's Hideout - Left", "Blind's Hideout - Right", "Blind's Hideout - Far Left",
		"Blind's Hideout - Far Right", "Floodgate Chest", "Spiral Cave", "Palace of Darkness - Dark Maze - Bottom",
		"Palace of Darkness - Dark Maze - Top", "Swamp Palace - Flooded Room - Left",
		"Swamp Palace - Flooded Room - Right", "Thieves' Town - Ambush Chest", "Ganons Tower - Hope Room - Left",
		"Ganons Tower - Hope Room - Right",
	}},
	{Name: "WellHype", Locations: []string{
		"Kakariko Well - Left", "Kakariko Well - Middle", "Kakariko Well - Right", "Kakariko Well - Bottom",
		"Paradox Cave Upper - Left", "Paradox Cave Upper - Right", "Hype Cave - Top", "Hype Cave - Middle Right",
		"Hype Cave - Middle Left", "Hype Cave - Bottom", "Hype Cave - Generous Guy",
		"Ganons Tower - DMs Room - Bottom Left", "Ganons Tower - DMs Room - Bottom Right",
	}},
	{Name: "MiniMoldormLasers", Locations: []string{
		"Mini Moldorm Cave - Left", "Mini Moldorm Cave - Right", "Mini Moldorm Cave - Generous Guy",
		"Mini Moldorm Cave - Far Left", "Mini Moldorm Cave - Far Right", "Chicken House", "Brewery",
		"Palace of Darkness - Dark Basement - Left", "Ice Palace - Freezor Chest", "Swamp Palace - West Chest",
		"Turtle Rock - Eye Bridge - Bottom Right", "Turtle Rock - Eye Bridge - Top Left",
		"Turtle Rock - Eye Bridge - Top Right",
	}},
	{Name: "ParadoxCloset", Locations: []string{
		"Sahasrahla's Hut - Left", "Sahasrahla's Hut - Right", "Sahasrahla's Hut - Middle",
		"Paradox Cave Lower - Far Left", "Paradox Cave Lower - Left", "Paradox Cave Lower - Right",
		"Paradox Cave Lower - Far Right", "Paradox Cave Lower - Middle", "Hyrule Castle - Zelda's Chest",
		"C-Shaped House", "Mire Shed - Left", "Ganons Tower - Compass Room - Bottom Right",
		"Ganons Tower - Compass Room - Bottom Left",
	}},
}

// Flag-gated cluster fragments. The *Rest fragments are padded to full size
// from Leftovers when enough are available.
var (
	SmallKeyA = []string{
		"Sewers - Dark Cross", "Tower of Hera - Basement Cage", "Palace of Darkness - Shooter Room",
		"Palace of Darkness - The Arena - Bridge", "Palace of Darkness - Stalfos Basement",
		"Palace of Darkness - Dark Basement - Right", "Thieves' Town - Blind's Cell", "Skull Woods - Bridge Room",
		"Ice Palace - Iced T Room", "Misery Mire - Main Lobby", "Misery Mire - Bridge Chest",
		"Misery Mire - Spike Chest", "Ganons Tower - Bob's Torch",
	}
	SmallKeyB = []string{
		"Desert Palace - Torch", "Castle Tower - Room 03", "Castle Tower - Dark Maze",
		"Palace of Darkness - The Arena - Ledge", "Palace of Darkness - Harmless Hellway",
		"Swamp Palace - Entrance", "Skull Woods - Pot Prison", "Skull Woods - Pinball Room",
		"Ice Palace - Spike Room", "Turtle Rock - Roller Room - Right", "Turtle Rock - Chain Chomps",
		"Turtle Rock - Crystaroller Room", "Turtle Rock - Eye Bridge - Bottom Left",
	}
	SmallKeyRest = []string{
		"Ganons Tower - Tile Room", "Ganons Tower - Firesnake Room", "Ganons Tower - Pre-Moldorm Chest",
	}
	KeyDropA = []string{
		"Hyrule Castle - Map Guard Key Drop", "Hyrule Castle - Boomerang Guard Key Drop",
		"Hyrule Castle - Key Rat Key Drop", "Swamp Palace - Hookshot Pot Key", "Swamp Palace - Trench 2 Pot Key",
		"Swamp Palace - Waterway Pot Key", "Skull Woods - West Lobby Pot Key",
		"Skull Woods - Spike Corner Key Drop", "Ice Palace - Jelly Key Drop", "Ice Palace - Conveyor Key Drop",
		"Misery Mire - Spikes Pot Key", "Misery Mire - Fishbone Pot Key", "Misery Mire - Conveyor Crystal Key Drop",
	}
	KeyDropB = []string{
		"Eastern Palace - Dark Square Pot Key", "Eastern Palace - Dark Eyegore Key Drop",
		"Desert Palace - Desert Tiles 1 Pot Key", "Desert Palace - Beamos Hall Pot Key",
		"Desert Palace - Desert Tiles 2 Pot Key", "Swamp Palace - Pot Row Pot Key",
		"Swamp Palace - Trench 1 Pot Key", "Thieves' Town - Hallway Pot Key",
		"Thieves' Town - Spike Switch Pot Key", "Ice Palace - Hammer Block Key Drop",
		"Ice Palace - Many Pots Pot Key", "Turtle Rock - Pokey 1 Key Drop", "Turtle Rock - Pokey 2 Key Drop",
	}
	KeyDropRest = []string{
		"Castle Tower - Dark Archer Key Drop", "Castle Tower - Circle of Pots Key Drop",
		"Ganons Tower - Conveyor Cross Pot Key", "Ganons Tower - Double Switch Pot Key",
		"Ganons Tower - Conveyor Star Pits Pot Key", "Ganons Tower - Mini Helmasuar Key Drop",
	}
	ShopA = []string{
		"Dark Lumberjack Shop - Left", "Dark Lumberjack Shop - Middle", "Dark Lumberjack Shop - Right",
		"Dark Lake Hylia Shop - Left", "Dark Lake Hylia Shop - Middle", "Dark Lake Hylia Shop - Right",
		"Paradox Shop - Left", "Paradox Shop - Middle", "Paradox Shop - Right", "Kakariko Shop - Left",
		"Kakariko Shop - Middle", "Kakariko Shop - Right", "Capacity Upgrade - Left",
	}
	ShopB = []string{
		"Red Shield Shop - Left", "Red Shield Shop - Middle", "Red Shield Shop - Right",
		"Village of Outcasts Shop - Left", "Village of Outcasts Shop - Middle", "Village of Outcasts Shop - Right",
		"Dark Potion Shop - Left", "Dark Potion Shop - Middle", "Dark Potion Shop - Right",
		"Lake Hylia Shop - Left", "Lake Hylia Shop - Middle", "Lake Hylia Shop - Right", "Capacity Upgrade - Right",
	}
	ShopRest = []string{
		"Potion Shop - Left", "Potion Shop - Middle", "Potion Shop - Right",
	}
)

// Leftovers pad partial clusters, consumed front to back.
var Leftovers = []string{
	"Ganons Tower - DMs Room - Top Right", "Ganons Tower - DMs Room - Top Left",
	"Ganons Tower - Compass Room - Top Right", "Ganons Tower - Randomizer Room - Top Left",
	"Ganons Tower - Randomizer Room - Top Right", "Ganons Tower - Bob's Chest",
	"Ganons Tower - Big Key Room - Left", "Ganons Tower - Big Key Room - Right",
	"Ganons Tower - Mini Helmasaur Room - Left", "Ganons Tower - Mini Helmasaur Room - Right",
}
