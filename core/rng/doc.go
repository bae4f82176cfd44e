// Package rng provides the seedable randomness capability shared by every
// component of a generation.
//
// A generation owns exactly one Source, created once from its seed and passed
// explicitly to the builder and the balancer. Nothing in this module reads the
// process-wide generator, so the same seed and inputs always reproduce the same
// draws in the same order.
//
// # Usage
//
//	r := rng.New(cfg.Seed)
//	rng.Shuffle(r, names)
//	picked, err := rng.Sample(r, clusters, 4)
package rng
