package generation

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"item-bias/core/logger"
	"item-bias/core/rng"
	"item-bias/feature/balance"
	"item-bias/feature/bias"
	"item-bias/feature/world"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNotFound is returned when a report or snapshot does not exist.
	ErrNotFound = errors.New("generation not found")
	// ErrInvalidRequest is returned for malformed generation requests.
	ErrInvalidRequest = errors.New("invalid generation request")
	// ErrPersistenceDisabled is returned when a lookup needs a store that is
	// not configured.
	ErrPersistenceDisabled = errors.New("generation persistence is not configured")
	// ErrStaleSchema is returned when the report table lacks columns.
	ErrStaleSchema = errors.New("report table schema is out of date")
)

// Request describes one generation.
type Request struct {
	// Strategy names the biasing strategy. Empty uses the configured default.
	Strategy string `json:"strategy,omitempty"`

	// Seed makes the run reproducible. Zero uses the configured seed or draws one.
	Seed uint64 `json:"seed,omitempty"`

	// Players builds a standard world with one entry per player. Ignored
	// when World is set.
	Players []world.Settings `json:"players,omitempty"`

	// World is a complete world document.
	World json.RawMessage `json:"world,omitempty" swaggertype:"object"`
}

// Result is the outcome of one generation.
type Result struct {
	ID       uuid.UUID     `json:"id"`
	Seed     uint64        `json:"seed"`
	Strategy bias.Strategy `json:"strategy"`
	Mode     string        `json:"mode"`

	// Classified counts pool items promoted to advancement or priority.
	Classified int `json:"classified"`

	// Balance summarizes the pool corrections.
	Balance  balance.Summary `json:"balance"`
	Warnings []string        `json:"warnings,omitempty"`

	// Snapshot is the frozen bias configuration.
	Snapshot bias.Snapshot `json:"snapshot"`

	// Pool is the balanced item pool.
	Pool []*world.Item `json:"pool"`

	// SnapshotKey is set when the snapshot was stored.
	SnapshotKey string `json:"snapshot_key,omitempty"`

	// Cached is true when the result was served from the cache.
	Cached bool `json:"cached"`
}

// Report summarizes r for persistence.
func (r *Result) Report(players int) *Report {
	reserved := 0
	for _, locs := range r.Snapshot.Reserved {
		reserved += len(locs)
	}
	return &Report{
		ID:           r.ID.String(),
		Seed:         r.Seed,
		Strategy:     string(r.Strategy),
		Mode:         r.Mode,
		Players:      players,
		Classified:   r.Classified,
		Reserved:     reserved,
		Placeholders: r.Balance.Placeholders,
		TrashRemoved: r.Balance.TrashRemoved,
		Fillers:      r.Balance.Fillers,
		Warnings:     strings.Join(r.Warnings, "\n"),
		SnapshotKey:  r.SnapshotKey,
	}
}

// clone returns a deep copy of r, including the pool items.
func (r *Result) clone() *Result {
	out := *r
	out.Warnings = slices.Clone(r.Warnings)
	out.Snapshot = r.Snapshot.Clone()
	if r.Pool != nil {
		out.Pool = make([]*world.Item, len(r.Pool))
		for i, it := range r.Pool {
			cp := *it
			out.Pool[i] = &cp
		}
	}
	return &out
}

// Service runs generations and serves their stored results. The repository
// and snapshot store are optional.
type Service struct {
	cfg       Config
	repo      *Repository
	snapshots *SnapshotStore
	cache     *resultCache
	logger    *zap.Logger
}

// NewService creates a generation service.
func NewService(cfg Config, repo *Repository, snapshots *SnapshotStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cfg:       cfg,
		repo:      repo,
		snapshots: snapshots,
		cache:     newResultCache(cfg.CacheTTL()),
		logger:    logger,
	}
}

// Run executes one generation: it builds the world, the bias configuration
// and the balanced pool, then persists the outcome. Identical requests with
// an explicit seed are served from the cache while it is fresh.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := req.Strategy
	if name == "" {
		name = s.cfg.DefaultStrategy
	}
	strategy, err := bias.ParseStrategy(name)
	if err != nil {
		return nil, err
	}

	seed := req.Seed
	if seed == 0 {
		seed = s.cfg.Seed
	}
	if seed == 0 {
		seed = rng.NewSeed()
	}

	key, err := fingerprint(req, strategy, seed)
	if err != nil {
		return nil, err
	}

	if n := s.cache.sweep(); n > 0 {
		s.logger.Debug("Evicted expired generation results", zap.Int("count", n))
	}

	res, hit, err := s.cache.getOrRun(key, func() (*Result, error) {
		return s.generate(ctx, req, strategy, seed)
	})
	if err != nil {
		return nil, err
	}
	// Cached and shared results stay private; callers get their own copy.
	out := res.clone()
	out.Cached = hit
	return out, nil
}

func (s *Service) generate(ctx context.Context, req Request, strategy bias.Strategy, seed uint64) (*Result, error) {
	id := uuid.New()
	l := logger.WithGeneration(s.logger, id, seed)

	w, err := buildWorld(req)
	if err != nil {
		return nil, err
	}

	// One source for the whole run keeps it reproducible from the seed.
	r := rng.New(seed)

	cfg, err := bias.NewBuilder(r, world.NewSlotOracle(w), l).Build(w, strategy)
	if err != nil {
		return nil, err
	}
	classified := bias.ClassifyMajorItems(w, cfg)

	plan, _, err := balance.NewBalancer(r, world.NewItem, l).Balance(w, cfg.Placeholders, balance.Options{})
	if err != nil {
		return nil, fmt.Errorf("balance pool: %w", err)
	}

	res := &Result{
		ID:         id,
		Seed:       seed,
		Strategy:   strategy,
		Mode:       cfg.Mode.String(),
		Classified: classified,
		Balance:    plan.Summary,
		Warnings:   plan.Warnings,
		Snapshot:   cfg.Snapshot(),
		Pool:       w.Pool().Items(),
	}

	if err := s.persist(ctx, res, w.Players()); err != nil {
		return nil, err
	}

	l.Info("Generation complete",
		zap.String("strategy", string(strategy)),
		zap.String("mode", res.Mode),
		zap.Int("players", w.Players()),
		zap.Int("classified", classified),
		zap.Int("placeholders", plan.Summary.Placeholders),
		zap.Int("warnings", len(plan.Warnings)))
	return res, nil
}

func buildWorld(req Request) (*world.Memory, error) {
	if len(req.World) > 0 {
		w, err := world.Load(bytes.NewReader(req.World))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return w, nil
	}
	players := req.Players
	if len(players) == 0 {
		players = []world.Settings{world.DefaultSettings(1)}
	}
	w, err := world.NewStandard(players...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return w, nil
}

// persist stores the snapshot and the report concurrently. The snapshot key
// is derived from the id, so the report can reference it before the upload
// completes.
func (s *Service) persist(ctx context.Context, res *Result, players int) error {
	if !s.cfg.Persist {
		return nil
	}
	if s.snapshots != nil {
		res.SnapshotKey = s.snapshots.Key(res.ID.String())
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.snapshots != nil {
		g.Go(func() error {
			_, err := s.snapshots.Put(gctx, res.ID.String(), res.Snapshot)
			return err
		})
	}
	if s.repo != nil {
		report := res.Report(players)
		g.Go(func() error {
			return s.repo.Save(gctx, report)
		})
	}
	return g.Wait()
}

// fingerprint identifies a request after defaults are applied.
func fingerprint(req Request, strategy bias.Strategy, seed uint64) (string, error) {
	data, err := json.Marshal(struct {
		Strategy bias.Strategy    `json:"strategy"`
		Seed     uint64           `json:"seed"`
		Players  []world.Settings `json:"players"`
		World    json.RawMessage  `json:"world"`
	}{strategy, seed, req.Players, req.World})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Report returns the stored report for id.
func (s *Service) Report(ctx context.Context, id string) (*Report, error) {
	if s.repo == nil {
		return nil, ErrPersistenceDisabled
	}
	return s.repo.Get(ctx, id)
}

// Reports returns the most recent stored reports.
func (s *Service) Reports(ctx context.Context, limit int) ([]Report, error) {
	if s.repo == nil {
		return nil, ErrPersistenceDisabled
	}
	return s.repo.List(ctx, limit)
}

// Snapshot returns the stored configuration snapshot for id.
func (s *Service) Snapshot(ctx context.Context, id string) (*bias.Snapshot, error) {
	if s.snapshots == nil {
		return nil, ErrPersistenceDisabled
	}
	return s.snapshots.Get(ctx, id)
}

// Delete removes the stored report and snapshot for id and drops cached
// results for it.
func (s *Service) Delete(ctx context.Context, id string) error {
	if s.repo == nil && s.snapshots == nil {
		return ErrPersistenceDisabled
	}
	s.cache.invalidate(id)
	if s.snapshots != nil {
		if err := s.snapshots.Delete(ctx, id); err != nil {
			return err
		}
	}
	if s.repo != nil {
		return s.repo.Delete(ctx, id)
	}
	return nil
}
