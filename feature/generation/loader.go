package generation

import (
	"context"

	"item-bias/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature wires the generation service. db and client may be nil, in which
// case reports or snapshots are not persisted.
func NewFeature(ctx context.Context, cfg Config, db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) (*Feature, error) {
	var repo *Repository
	if db != nil {
		repo = NewRepository(db)
		var err error
		if cfg.AutoMigrate {
			err = repo.Migrate(ctx)
		} else {
			err = repo.Check(ctx)
		}
		if err != nil {
			return nil, err
		}
	}

	var snapshots *SnapshotStore
	if client != nil {
		snapshots = NewSnapshotStore(client, bucket, cfg.SnapshotPrefix)
	}

	svc := NewService(cfg, repo, snapshots, logger)
	return &Feature{service: svc, handler: NewHandler(svc, logger)}, nil
}

// Service returns the underlying generation service.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "generation"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
