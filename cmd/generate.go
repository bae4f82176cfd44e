package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"item-bias/core/config"
	"item-bias/core/database"
	"item-bias/core/logger"
	"item-bias/core/storage"
	"item-bias/feature/generation"
	"item-bias/feature/world"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// generateFlags holds the flags of the generate command.
type generateFlags struct {
	strategy  string
	seed      uint64
	players   int
	worldPath string
	outPath   string
	persist   bool

	bigKeys   bool
	keys      bool
	compasses bool
	maps      bool
	keyDrops  bool
	shops     bool
	retro     bool
	bombBag   bool
	doors     string
	boss      string
	swords    string
}

var genFlags generateFlags

// generateCmd runs one generation from the command line.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run one generation and print its report",
	Long: `Builds a world, the bias configuration for the chosen strategy and the
balanced item pool, then logs the outcome.

Examples:
  # Cluster bias on a default single-player world
  generate --strategy cluster_bias --seed 42

  # Two players with keysanity and crossed doors, snapshot written to a file
  generate --strategy entangled --players 2 --keys --big-keys --doors crossed --out snapshot.json

  # A world document, stored in the database and object storage
  generate --world world.json --persist`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genFlags.strategy, "strategy", "", "Strategy (vanilla_bias, major_bias, dungeon_bias, cluster_bias, entangled); empty uses the configured default")
	f.Uint64Var(&genFlags.seed, "seed", 0, "Seed; 0 uses the configured seed or draws one")
	f.IntVar(&genFlags.players, "players", 1, "Number of players in the standard world")
	f.StringVar(&genFlags.worldPath, "world", "", "Path to a world document (overrides the standard world flags)")
	f.StringVar(&genFlags.outPath, "out", "", "Write the configuration snapshot as JSON to this path")
	f.BoolVar(&genFlags.persist, "persist", false, "Store the report and snapshot using the configured database and storage")

	f.BoolVar(&genFlags.bigKeys, "big-keys", false, "Shuffle big keys")
	f.BoolVar(&genFlags.keys, "keys", false, "Shuffle small keys")
	f.BoolVar(&genFlags.compasses, "compasses", false, "Shuffle compasses")
	f.BoolVar(&genFlags.maps, "maps", false, "Shuffle maps")
	f.BoolVar(&genFlags.keyDrops, "key-drops", false, "Shuffle key drops")
	f.BoolVar(&genFlags.shops, "shops", false, "Enable shopsanity")
	f.BoolVar(&genFlags.retro, "retro", false, "Enable retro")
	f.BoolVar(&genFlags.bombBag, "bomb-bag", false, "Enable bomb bag")
	f.StringVar(&genFlags.doors, "doors", string(world.DoorsVanilla), "Door shuffle (vanilla, basic, crossed)")
	f.StringVar(&genFlags.boss, "restrict-boss-items", string(world.BossNone), "Boss item restriction (none, mapcompass, dungeon)")
	f.StringVar(&genFlags.swords, "swords", string(world.SwordsRandom), "Sword policy (random, assured, vanilla, swordless)")

	RootCmd.AddCommand(generateCmd)
}

// settings builds one Settings per player from the flags.
func (g generateFlags) settings() []world.Settings {
	out := make([]world.Settings, 0, g.players)
	for p := 1; p <= g.players; p++ {
		s := world.DefaultSettings(p)
		s.BigKeyShuffle = g.bigKeys
		s.KeyShuffle = g.keys
		s.CompassShuffle = g.compasses
		s.MapShuffle = g.maps
		s.KeyDropShuffle = g.keyDrops
		s.ShopSanity = g.shops
		s.Retro = g.retro
		s.BombBag = g.bombBag
		s.DoorShuffle = world.DoorShuffle(g.doors)
		s.RestrictBossItems = world.BossRestriction(g.boss)
		s.Swords = world.SwordPolicy(g.swords)
		out = append(out, s)
	}
	return out
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if genFlags.players < 1 {
		return fmt.Errorf("--players must be at least 1, got %d", genFlags.players)
	}

	req := generation.Request{
		Strategy: genFlags.strategy,
		Seed:     genFlags.seed,
		Players:  genFlags.settings(),
	}
	if genFlags.worldPath != "" {
		data, err := os.ReadFile(genFlags.worldPath)
		if err != nil {
			return fmt.Errorf("failed to read world document: %w", err)
		}
		req.World = data
	}

	svc, err := newGenerateService(ctx, cfg, l)
	if err != nil {
		return err
	}

	res, err := svc.Run(ctx, req)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	printGenerationReport(l, res)

	if genFlags.outPath != "" {
		data, err := json.MarshalIndent(res.Snapshot, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		if err := os.WriteFile(genFlags.outPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		l.Info("Snapshot written", zap.String("path", genFlags.outPath))
	}
	return nil
}

// newGenerateService builds the service, with persistence only when asked for.
func newGenerateService(ctx context.Context, cfg *config.Config, l *zap.Logger) (*generation.Service, error) {
	genCfg := cfg.Generation
	genCfg.CacheTTLSeconds = 0
	if !genFlags.persist {
		genCfg.Persist = false
		return generation.NewService(genCfg, nil, nil, l), nil
	}
	genCfg.Persist = true

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	feature, err := generation.NewFeature(ctx, genCfg, db, client, cfg.Storage.Bucket, l)
	if err != nil {
		return nil, err
	}
	return feature.Service(), nil
}

// printGenerationReport prints a formatted generation report using logger.
func printGenerationReport(l *zap.Logger, res *generation.Result) {
	b := res.Balance
	l.Info("Generation report",
		zap.String("id", res.ID.String()),
		zap.Uint64("seed", res.Seed),
		zap.String("strategy", string(res.Strategy)),
		zap.String("mode", res.Mode),
		zap.Int("classified", res.Classified),
		zap.Int("pool_size", len(res.Pool)),
		zap.Int("trash_removed", b.TrashRemoved),
		zap.Int("placeholders", b.Placeholders),
		zap.Int("minted", b.Minted),
		zap.Int("fillers", b.Fillers),
	)

	for _, player := range slices.Sorted(maps.Keys(res.Snapshot.Reserved)) {
		l.Info("Reserved locations",
			zap.Int("player", player),
			zap.Int("count", len(res.Snapshot.Reserved[player])))
	}

	for _, w := range res.Warnings {
		l.Warn("Balance warning", zap.String("warning", w))
	}

	if res.SnapshotKey != "" {
		l.Info("Snapshot stored", zap.String("key", res.SnapshotKey))
	}
}
