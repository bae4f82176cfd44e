// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which reports its name and
// whether it is enabled, and registers its routes on the Fiber router.
//
// # Manager
//
// The Manager holds the registry of features:
//   - Register adds a feature
//   - LoadAll loads the enabled ones in registration order
//
//	gen, err := generation.NewFeature(ctx, cfg.Generation, db, client, bucket, log)
//	mgr := loader.NewManager()
//	mgr.Register(gen)
//	loaded, err := mgr.LoadAll(app)
package loader
