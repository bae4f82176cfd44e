package catalog

// VanillaPlacement maps an item name to the locations that hold it in the
// unrandomized game.
var VanillaPlacement = map[string][]string{
	"Green Pendant": {"Eastern Palace - Prize"},
	"Red Pendant": {"Desert Palace - Prize", "Tower of Hera - Prize"},
	"Blue Pendant": {"Desert Palace - Prize", "Tower of Hera - Prize"},
	"Crystal 1": {
		"Palace of Darkness - Prize", "Swamp Palace - Prize", "Thieves' Town - Prize", "Skull Woods - Prize",
		"Turtle Rock - Prize",
	},
	"Crystal 2": {
		"Palace of Darkness - Prize", "Swamp Palace - Prize", "Thieves' Town - Prize", "Skull Woods - Prize",
		"Turtle Rock - Prize",
	},
	"Crystal 3": {
		"Palace of Darkness - Prize", "Swamp Palace - Prize", "Thieves' Town - Prize", "Skull Woods - Prize",
		"Turtle Rock - Prize",
	},
	"Crystal 4": {
		"Palace of Darkness - Prize", "Swamp Palace - Prize", "Thieves' Town - Prize", "Skull Woods - Prize",
		"Turtle Rock - Prize",
	},
	"Crystal 7": {
		"Palace of Darkness - Prize", "Swamp Palace - Prize", "Thieves' Town - Prize", "Skull Woods - Prize",
		"Turtle Rock - Prize",
	},
	"Crystal 5": {"Ice Palace - Prize", "Misery Mire - Prize"},
	"Crystal 6": {"Ice Palace - Prize", "Misery Mire - Prize"},
	"Bow": {"Eastern Palace - Big Chest"},
	"Progressive Bow": {"Eastern Palace - Big Chest", "Pyramid Fairy - Right"},
	"Book of Mudora": {"Library"},
	"Hammer": {"Palace of Darkness - Big Chest"},
	"Hookshot": {"Swamp Palace - Big Chest"},
	"Magic Mirror": {"Old Man"},
	"Ocarina": {"Flute Spot"},
	"Pegasus Boots": {"Sahasrahla"},
	"Power Glove": {"Desert Palace - Big Chest"},
	"Cape": {"King's Tomb"},
	"Mushroom": {"Mushroom"},
	"Shovel": {"Stumpy"},
	"Lamp": {"Link's House"},
	"Magic Powder": {"Potion Shop"},
	"Moon Pearl": {"Tower of Hera - Big Chest"},
	"Cane of Somaria": {"Misery Mire - Big Chest"},
	"Fire Rod": {"Skull Woods - Big Chest"},
	"Flippers": {"King Zora"},
	"Ice Rod": {"Ice Rod Cave"},
	"Titans Mitts": {"Thieves' Town - Big Chest"},
	"Bombos": {"Bombos Tablet"},
	"Ether": {"Ether Tablet"},
	"Quake": {"Catfish"},
	"Bottle": {"Bottle Merchant", "Kakariko Tavern", "Purple Chest", "Hobo"},
	"Master Sword": {"Master Sword Pedestal"},
	"Tempered Sword": {"Blacksmith"},
	"Fighter Sword": {"Link's Uncle"},
	"Golden Sword": {"Pyramid Fairy - Left"},
	"Progressive Sword": {"Link's Uncle", "Blacksmith", "Master Sword Pedestal", "Pyramid Fairy - Left"},
	"Progressive Glove": {"Desert Palace - Big Chest", "Thieves' Town - Big Chest"},
	"Silver Arrows": {"Pyramid Fairy - Right"},
	"Single Arrow": {"Palace of Darkness - Dark Basement - Left"},
	"Arrows (10)": {
		"Chicken House", "Mini Moldorm Cave - Far Right", "Sewers - Secret Room - Right",
		"Paradox Cave Upper - Right", "Mire Shed - Right", "Ganons Tower - Hope Room - Left",
		"Ganons Tower - Compass Room - Bottom Right", "Ganons Tower - DMs Room - Top Right",
		"Ganons Tower - Randomizer Room - Top Left", "Ganons Tower - Randomizer Room - Top Right",
		"Ganons Tower - Bob's Chest", "Ganons Tower - Big Key Room - Left",
	},
	"Bombs (3)": {
		"Floodgate Chest", "Sahasrahla's Hut - Middle", "Kakariko Well - Bottom", "Superbunny Cave - Top",
		"Mini Moldorm Cave - Far Left", "Sewers - Secret Room - Left", "Paradox Cave Upper - Left",
		"Thieves' Town - Attic", "Ice Palace - Freezor Chest", "Palace of Darkness - Dark Maze - Top",
		"Ganons Tower - Hope Room - Right", "Ganons Tower - DMs Room - Top Left",
		"Ganons Tower - Randomizer Room - Bottom Left", "Ganons Tower - Randomizer Room - Bottom Right",
		"Ganons Tower - Big Key Room - Right", "Ganons Tower - Mini Helmasaur Room - Left",
		"Ganons Tower - Mini Helmasaur Room - Right",
	},
	"Blue Mail": {"Ice Palace - Big Chest"},
	"Red Mail": {"Ganons Tower - Big Chest"},
	"Progressive Armor": {"Ice Palace - Big Chest", "Ganons Tower - Big Chest"},
	"Blue Boomerang": {"Hyrule Castle - Boomerang Chest"},
	"Red Boomerang": {"Waterfall Fairy - Left"},
	"Blue Shield": {"Secret Passage"},
	"Red Shield": {"Waterfall Fairy - Right"},
	"Mirror Shield": {"Turtle Rock - Big Chest"},
	"Progressive Shield": {"Secret Passage", "Waterfall Fairy - Right", "Turtle Rock - Big Chest"},
	"Bug Catching Net": {"Sick Kid"},
	"Cane of Byrna": {"Spike Cave"},
	"Boss Heart Container": {
		"Desert Palace - Boss", "Eastern Palace - Boss", "Tower of Hera - Boss", "Swamp Palace - Boss",
		"Thieves' Town - Boss", "Skull Woods - Boss", "Ice Palace - Boss", "Misery Mire - Boss",
		"Turtle Rock - Boss", "Palace of Darkness - Boss",
	},
	"Sanctuary Heart Container": {"Sanctuary"},
	"Piece of Heart": {
		"Sunken Treasure", "Blind's Hideout - Top", "Zora's Ledge", "Aginah's Cave", "Maze Race",
		"Kakariko Well - Top", "Lost Woods Hideout", "Lumberjack Tree", "Cave 45", "Graveyard Cave",
		"Checkerboard Cave", "Bonk Rock Cave", "Lake Hylia Island", "Desert Ledge", "Spectacle Rock",
		"Spectacle Rock Cave", "Pyramid", "Digging Game", "Peg Cave", "Chest Game", "Bumper Cave Ledge",
		"Mire Shed - Left", "Floating Island", "Mimic Cave",
	},
	"Rupee (1)": {"Turtle Rock - Eye Bridge - Top Right", "Ganons Tower - Compass Room - Top Right"},
	"Rupees (5)": {
		"Hyrule Castle - Zelda's Chest", "Turtle Rock - Eye Bridge - Top Left",
		"Palace of Darkness - Dark Maze - Bottom", "Ganons Tower - Validation Chest",
	},
	"Rupees (20)": {
		"Blind's Hideout - Left", "Blind's Hideout - Right", "Blind's Hideout - Far Left",
		"Blind's Hideout - Far Right", "Kakariko Well - Left", "Kakariko Well - Middle", "Kakariko Well - Right",
		"Mini Moldorm Cave - Left", "Mini Moldorm Cave - Right", "Paradox Cave Lower - Far Left",
		"Paradox Cave Lower - Left", "Paradox Cave Lower - Right", "Paradox Cave Lower - Far Right",
		"Paradox Cave Lower - Middle", "Hype Cave - Top", "Hype Cave - Middle Right", "Hype Cave - Middle Left",
		"Hype Cave - Bottom", "Swamp Palace - West Chest", "Swamp Palace - Flooded Room - Left",
		"Swamp Palace - Waterfall Room", "Swamp Palace - Flooded Room - Right", "Thieves' Town - Ambush Chest",
		"Turtle Rock - Eye Bridge - Bottom Right", "Ganons Tower - Compass Room - Bottom Left",
		"Ganons Tower - DMs Room - Bottom Left", "Ganons Tower - DMs Room - Bottom Right",
	},
	"Rupees (50)": {
		"Sahasrahla's Hut - Left", "Sahasrahla's Hut - Right", "Spiral Cave", "Superbunny Cave - Bottom",
		"Hookshot Cave - Top Right", "Hookshot Cave - Top Left", "Hookshot Cave - Bottom Right",
		"Hookshot Cave - Bottom Left",
	},
	"Rupees (100)": {"Eastern Palace - Cannonball Chest"},
	"Rupees (300)": {
		"Mini Moldorm Cave - Generous Guy", "Sewers - Secret Room - Middle", "Hype Cave - Generous Guy", "Brewery",
		"C-Shaped House",
	},
	"Magic Upgrade (1/2)": {"Magic Bat"},
	"Big Key (Eastern Palace)": {"Eastern Palace - Big Key Chest"},
	"Compass (Eastern Palace)": {"Eastern Palace - Compass Chest"},
	"Map (Eastern Palace)": {"Eastern Palace - Map Chest"},
	"Small Key (Desert Palace)": {"Desert Palace - Torch"},
	"Big Key (Desert Palace)": {"Desert Palace - Big Key Chest"},
	"Compass (Desert Palace)": {"Desert Palace - Compass Chest"},
	"Map (Desert Palace)": {"Desert Palace - Map Chest"},
	"Small Key (Tower of Hera)": {"Tower of Hera - Basement Cage"},
	"Big Key (Tower of Hera)": {"Tower of Hera - Big Key Chest"},
	"Compass (Tower of Hera)": {"Tower of Hera - Compass Chest"},
	"Map (Tower of Hera)": {"Tower of Hera - Map Chest"},
	"Small Key (Escape)": {"Sewers - Dark Cross"},
	"Map (Escape)": {"Hyrule Castle - Map Chest"},
	"Small Key (Agahnims Tower)": {"Castle Tower - Room 03", "Castle Tower - Dark Maze"},
	"Small Key (Palace of Darkness)": {
		"Palace of Darkness - Shooter Room", "Palace of Darkness - The Arena - Bridge",
		"Palace of Darkness - Stalfos Basement", "Palace of Darkness - The Arena - Ledge",
		"Palace of Darkness - Dark Basement - Right", "Palace of Darkness - Harmless Hellway",
	},
	"Big Key (Palace of Darkness)": {"Palace of Darkness - Big Key Chest"},
	"Compass (Palace of Darkness)": {"Palace of Darkness - Compass Chest"},
	"Map (Palace of Darkness)": {"Palace of Darkness - Map Chest"},
	"Small Key (Thieves Town)": {"Thieves' Town - Blind's Cell"},
	"Big Key (Thieves Town)": {"Thieves' Town - Big Key Chest"},
	"Compass (Thieves Town)": {"Thieves' Town - Compass Chest"},
	"Map (Thieves Town)": {"Thieves' Town - Map Chest"},
	"Small Key (Skull Woods)": {
		"Skull Woods - Pot Prison", "Skull Woods - Pinball Room", "Skull Woods - Bridge Room",
	},
	"Big Key (Skull Woods)": {"Skull Woods - Big Key Chest"},
	"Compass (Skull Woods)": {"Skull Woods - Compass Chest"},
	"Map (Skull Woods)": {"Skull Woods - Map Chest"},
	"Small Key (Swamp Palace)": {"Swamp Palace - Entrance"},
	"Big Key (Swamp Palace)": {"Swamp Palace - Big Key Chest"},
	"Compass (Swamp Palace)": {"Swamp Palace - Compass Chest"},
	"Map (Swamp Palace)": {"Swamp Palace - Map Chest"},
	"Small Key (Ice Palace)": {"Ice Palace - Iced T Room", "Ice Palace - Spike Room"},
	"Big Key (Ice Palace)": {"Ice Palace - Big Key Chest"},
	"Compass (Ice Palace)": {"Ice Palace - Compass Chest"},
	"Map (Ice Palace)": {"Ice Palace - Map Chest"},
	"Small Key (Misery Mire)": {
		"Misery Mire - Main Lobby", "Misery Mire - Bridge Chest", "Misery Mire - Spike Chest",
	},
	"Big Key (Misery Mire)": {"Misery Mire - Big Key Chest"},
	"Compass (Misery Mire)": {"Misery Mire - Compass Chest"},
	"Map (Misery Mire)": {"Misery Mire - Map Chest"},
	"Small Key (Turtle Rock)": {
		"Turtle Rock - Roller Room - Right", "Turtle Rock - Chain Chomps", "Turtle Rock - Crystaroller Room",
		"Turtle Rock - Eye Bridge - Bottom Left",
	},
	"Big Key (Turtle Rock)": {"Turtle Rock - Big Key Chest"},
	"Compass (Turtle Rock)": {"Turtle Rock - Compass Chest"},
	"Map (Turtle Rock)": {"Turtle Rock - Roller Room - Left"},
	"Small Key (Ganons Tower)": {
		"Ganons Tower - Bob's Torch", "Ganons Tower - Tile Room", "Ganons Tower - Firesnake Room",
		"Ganons Tower - Pre-Moldorm Chest",
	},
	"Big Key (Ganons Tower)": {"Ganons Tower - Big Key Chest"},
	"Compass (Ganons Tower)": {"Ganons Tower - Compass Room - Top Left"},
	"Map (Ganons Tower)": {"Ganons Tower - Map Chest"},
}

// KeyDropPlacement extends VanillaPlacement with the enemy and pot drops that
// only exist when key drops are shuffled.
var KeyDropPlacement = map[string][]string{
	"Small Key (Desert Palace)": {
		"Desert Palace - Desert Tiles 1 Pot Key", "Desert Palace - Beamos Hall Pot Key",
		"Desert Palace - Desert Tiles 2 Pot Key",
	},
	"Small Key (Eastern Palace)": {
		"Eastern Palace - Dark Square Pot Key", "Eastern Palace - Dark Eyegore Key Drop",
	},
	"Small Key (Escape)": {
		"Hyrule Castle - Map Guard Key Drop", "Hyrule Castle - Boomerang Guard Key Drop",
		"Hyrule Castle - Key Rat Key Drop",
	},
	"Big Key (Escape)": {"Hyrule Castle - Big Key Drop"},
	"Small Key (Agahnims Tower)": {
		"Castle Tower - Dark Archer Key Drop", "Castle Tower - Circle of Pots Key Drop",
	},
	"Small Key (Thieves Town)": {"Thieves' Town - Hallway Pot Key", "Thieves' Town - Spike Switch Pot Key"},
	"Small Key (Skull Woods)": {"Skull Woods - West Lobby Pot Key", "Skull Woods - Spike Corner Key Drop"},
	"Small Key (Swamp Palace)": {
		"Swamp Palace - Pot Row Pot Key", "Swamp Palace - Trench 1 Pot Key", "Swamp Palace - Hookshot Pot Key",
		"Swamp Palace - Trench 2 Pot Key", "Swamp Palace - Waterway Pot Key",
	},
	"Small Key (Ice Palace)": {
		"Ice Palace - Jelly Key Drop", "Ice Palace - Conveyor Key Drop", "Ice Palace - Hammer Block Key Drop",
		"Ice Palace - Many Pots Pot Key",
	},
	"Small Key (Misery Mire)": {
		"Misery Mire - Spikes Pot Key", "Misery Mire - Fishbone Pot Key", "Misery Mire - Conveyor Crystal Key Drop",
	},
	"Small Key (Turtle Rock)": {"Turtle Rock - Pokey 1 Key Drop", "Turtle Rock - Pokey 2 Key Drop"},
	"Small Key (Ganons Tower)": {
		"Ganons Tower - Conveyor Cross Pot Key", "Ganons Tower - Double Switch Pot Key",
		"Ganons Tower - Conveyor Star Pits Pot Key", "Ganons Tower - Mini Helmasuar Key Drop",
	},
}

// VanillaSwords are the four sword locations pre-filled under the vanilla
// sword policy.
var VanillaSwords = []string{"Link's Uncle", "Master Sword Pedestal", "Blacksmith", "Pyramid Fairy - Left"}
