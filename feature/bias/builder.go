package bias

import (
	"fmt"
	"slices"

	"item-bias/core/rng"
	"item-bias/feature/catalog"
	"item-bias/feature/quota"
	"item-bias/feature/world"

	"go.uber.org/zap"
)

// Builder constructs a Config for one generation. It holds the generation's
// randomness source and must not be shared between generations.
type Builder struct {
	rng       rng.Source
	validator *Validator
	logger    *zap.Logger
}

// NewBuilder returns a Builder drawing from r and validating dungeon
// reservations against oracle.
func NewBuilder(r rng.Source, oracle world.LayoutOracle, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{rng: r, validator: NewValidator(oracle), logger: logger}
}

type buildFunc func(b *Builder, w world.World, cfg *Config) error

var builders = map[Mode]buildFunc{
	ModeUnrestricted: (*Builder).buildUnrestricted,
	ModeVanilla:      (*Builder).buildVanilla,
	ModeMajor:        (*Builder).buildMajor,
	ModeDungeon:      (*Builder).buildDungeon,
	ModeCluster:      (*Builder).buildCluster,
	ModeEntangled:    (*Builder).buildEntangled,
}

// Build resolves strategy for w and builds the frozen Config.
func (b *Builder) Build(w world.World, strategy Strategy) (*Config, error) {
	mode, err := Resolve(strategy, w.Players())
	if err != nil {
		return nil, err
	}
	cfg := newConfig(mode)
	b.restrictBossItems(w, cfg)

	build, ok := builders[mode]
	if !ok {
		return nil, fmt.Errorf("mode %s: %w", mode, ErrUnknownStrategy)
	}
	if err := build(b, w, cfg); err != nil {
		return nil, fmt.Errorf("build %s: %w", strategy, err)
	}
	cfg.freeze()

	b.logger.Debug("Placement bias built",
		zap.String("strategy", string(strategy)),
		zap.Stringer("mode", mode),
		zap.Int("players", w.Players()))
	return cfg, nil
}

// restrictBossItems pre-reserves prize dungeon boss slots for players under
// the dungeon restriction, and turns compasses and maps into advancement
// items for every restricted player.
func (b *Builder) restrictBossItems(w world.World, cfg *Config) {
	for player := 1; player <= w.Players(); player++ {
		s := w.Settings(player)
		if s.RestrictBossItems == world.BossDungeon {
			for _, d := range catalog.Dungeons {
				if d.Prize {
					cfg.reserve(player, d.BossLocation())
				}
			}
		}
		if s.RestrictBossItems == world.BossNone {
			continue
		}
		mark := func(it *world.Item) {
			if it.IsMap() || it.IsCompass() {
				it.Advancement = true
			}
		}
		for _, it := range w.DungeonItems(player) {
			mark(it)
		}
		for _, it := range w.Pool().ForPlayer(player) {
			mark(it)
		}
	}
}

func (b *Builder) buildUnrestricted(_ world.World, _ *Config) error {
	return nil
}

func (b *Builder) buildVanilla(w world.World, cfg *Config) error {
	cfg.StaticPlacement = make(map[int]map[string][]string, w.Players())
	for player := 1; player <= w.Players(); player++ {
		s := w.Settings(player)
		static := make(map[string][]string, len(catalog.VanillaPlacement))
		for item, locs := range catalog.VanillaPlacement {
			static[item] = slices.Clone(locs)
		}
		if s.KeyDropShuffle {
			for item, locs := range catalog.KeyDropPlacement {
				static[item] = append(static[item], locs...)
			}
		}
		cfg.StaticPlacement[player] = static

		cfg.Tiers[player] = []*LocationGroup{
			newLocationGroup("Major", catalog.PrimaryMajor()),
			newLocationGroup("Heart Pieces", catalog.Locations(catalog.HeartPieces)),
			newLocationGroup("Trash", catalog.Locations(catalog.OverworldTrash, catalog.DungeonTrash)),
			newLocationGroup("Tower Trash", catalog.Locations(catalog.TowerTrash)),
		}
		for _, name := range catalog.Locations(catalog.BigChests, catalog.HeartContainers) {
			cfg.reserve(player, name)
		}
	}
	return nil
}

// majorPrimary is the flag-gated first tier of the major strategy.
func majorPrimary(s world.Settings) []string {
	locs := catalog.PrimaryMajor()
	if s.BigKeyShuffle {
		locs = append(locs, catalog.Locations(catalog.BigKeys)...)
		if s.KeyDropShuffle {
			locs = append(locs, catalog.Locations(catalog.BigKeyDrops)...)
		}
	}
	if s.KeyShuffle {
		locs = append(locs, catalog.Locations(catalog.SmallKeys)...)
		if s.KeyDropShuffle {
			locs = append(locs, catalog.Locations(catalog.KeyDrops)...)
		}
	}
	if s.CompassShuffle {
		locs = append(locs, catalog.Locations(catalog.Compasses)...)
	}
	if s.MapShuffle {
		locs = append(locs, catalog.Locations(catalog.Maps)...)
	}
	if s.ShopSanity {
		locs = append(locs, "Capacity Upgrade - Left", "Capacity Upgrade - Right")
	}
	return locs
}

// backupTier returns the player's real, unforced locations outside primary,
// in world order.
func backupTier(w world.World, player int, primary *LocationGroup) *LocationGroup {
	var rest []string
	for _, loc := range w.Locations(player) {
		if loc.Real && !loc.ForcedItem && !primary.Contains(loc.Name) {
			rest = append(rest, loc.Name)
		}
	}
	return newLocationGroup("Backup", rest)
}

func (b *Builder) buildMajor(w world.World, cfg *Config) error {
	for player := 1; player <= w.Players(); player++ {
		s := w.Settings(player)
		cfg.ItemPool[player] = quota.MajorItemSet(s)
		primary := newLocationGroup("Major Items", majorPrimary(s))
		cfg.Tiers[player] = []*LocationGroup{primary, backupTier(w, player, primary)}
		for _, name := range primary.Locations {
			cfg.reserve(player, name)
		}
	}
	return nil
}

func (b *Builder) buildDungeon(w world.World, cfg *Config) error {
	for player := 1; player <= w.Players(); player++ {
		cfg.ItemPool[player] = quota.MajorItemSet(w.Settings(player))
		primary := newLocationGroup("Dungeons", catalog.DungeonInterior())
		cfg.Tiers[player] = []*LocationGroup{primary, backupTier(w, player, primary)}
	}
	return nil
}
