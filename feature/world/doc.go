// Package world models the inputs the placement core reads from a generation:
// per-player settings, the location universe, the shared item pool and the
// dungeon items that stay out of it.
//
// World is the narrow view the core consumes. Memory is the in-process
// implementation, built either from a JSON Document or from the standard
// layout in the catalog.
package world
