// Package catalog holds the static reference tables the placement core reads:
// location groupings, clusters, the vanilla item layout, the dungeon
// descriptor table, trash values and the base major item set.
//
// Everything here is read-only. Callers that need to mutate a table take a
// copy first.
package catalog
