// Package bias narrows the candidate locations of each item before the fill
// search runs.
//
// A Builder turns a world and a Strategy into a frozen Config. The fill engine
// then calls Config.Filter once per placement decision. The strategies are:
//
//   - vanilla_bias: items prefer their unrandomized locations, then four
//     fallback tiers.
//   - major_bias and dungeon_bias: major items prefer a primary tier, then a
//     backup tier.
//   - cluster_bias: each player's majors go to randomly drawn clusters of
//     nearby locations.
//   - entangled: slots are reserved across all players at once, sharing the
//     per-dungeon budgets. With a single player it places no restriction.
package bias
