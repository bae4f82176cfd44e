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

// ClusterCandidates returns the clusters a player may draw from: the base
// clusters plus the key, compass, map and shop clusters the settings enable.
// Partial clusters are padded from the leftover stack; a cluster that cannot
// be padded gives its locations back to the stack instead.
func ClusterCandidates(s world.Settings) []catalog.Cluster {
	out := make([]catalog.Cluster, 0, len(catalog.BaseClusters)+8)
	for _, c := range catalog.BaseClusters {
		out = append(out, catalog.Cluster{Name: c.Name, Locations: slices.Clone(c.Locations)})
	}

	backups := slices.Clone(catalog.Leftovers)
	slices.Reverse(backups)
	pad := func(name string, locs []string) {
		if len(locs)+len(backups) < catalog.ClusterSize {
			for i := len(locs) - 1; i >= 0; i-- {
				backups = append(backups, locs[i])
			}
			return
		}
		for len(locs) < catalog.ClusterSize {
			locs = append(locs, backups[len(backups)-1])
			backups = backups[:len(backups)-1]
		}
		out = append(out, catalog.Cluster{Name: name, Locations: locs})
	}
	whole := func(name string, locs []string) {
		out = append(out, catalog.Cluster{Name: name, Locations: slices.Clone(locs)})
	}

	if s.BigKeyShuffle {
		locs := catalog.Locations(catalog.BigKeys)
		if s.KeyDropShuffle {
			locs = append(locs, catalog.Locations(catalog.BigKeyDrops)...)
		}
		pad("Big Keys", locs)
	}
	if s.CompassShuffle {
		pad("Compasses", catalog.Locations(catalog.Compasses))
	}
	if s.MapShuffle {
		pad("Maps", catalog.Locations(catalog.Maps))
	}
	if s.ShopSanity {
		whole("Shops A", catalog.ShopA)
		whole("Shops B", catalog.ShopB)
		extras := slices.Clone(catalog.ShopRest)
		if s.Retro {
			extras = append(extras, catalog.Locations(catalog.RetroShops)...)
		}
		pad("Shops Extra", extras)
	}
	if s.SmallKeysFree() {
		whole("Small Keys A", catalog.SmallKeyA)
		whole("Small Keys B", catalog.SmallKeyB)
		extras := slices.Clone(catalog.SmallKeyRest)
		if s.KeyDropShuffle {
			whole("Key Drops A", catalog.KeyDropA)
			whole("Key Drops B", catalog.KeyDropB)
			extras = append(extras, catalog.KeyDropRest...)
		}
		pad("Small Keys Extra", extras)
	}
	return out
}

// prefilled reports whether the location already holds a fixed item under
// the player's sword policy or goal.
func prefilled(location string, s world.Settings) bool {
	if s.Swords == world.SwordsVanilla {
		return slices.Contains(catalog.VanillaSwords, location)
	}
	if s.Goal == world.GoalPedestal {
		return location == "Master Sword Pedestal"
	}
	return false
}

// ClusterResult reports what the cluster selector drew for one player.
type ClusterResult struct {
	Player   int
	Quota    int
	Draws    []int
	Reserved int
}

// selectClusters draws clusters for one player until its quota is covered and
// returns the number of slots reserved. The first round draws
// ceil(quota/ClusterSize) clusters, every later round draws one. Cluster
// locations the player's world lacks are skipped and not counted.
func selectClusters(r rng.Source, cfg *Config, w world.World, player, need int, pool []catalog.Cluster) (ClusterResult, error) {
	s := w.Settings(player)
	res := ClusterResult{Player: player, Quota: need}
	required := (need + catalog.ClusterSize - 1) / catalog.ClusterSize
	for res.Reserved < need {
		if required > len(pool) {
			return res, fmt.Errorf("player %d: %d of %d slots reserved, %d clusters left: %w",
				player, res.Reserved, need, len(pool), ErrClusterPoolExhausted)
		}
		idx := make([]int, len(pool))
		for i := range idx {
			idx[i] = i
		}
		drawn, err := rng.Sample(r, idx, required)
		if err != nil {
			return res, err
		}
		res.Draws = append(res.Draws, len(drawn))
		taken := make(map[int]bool, len(drawn))
		for _, i := range drawn {
			taken[i] = true
			for _, name := range pool[i].Locations {
				if loc, ok := w.Location(name, player); !ok || !loc.Real || prefilled(name, s) {
					continue
				}
				if cfg.Reservation.Owns(name, player) {
					continue
				}
				cfg.reserve(player, name)
				cfg.Reservation.add(name, player)
				res.Reserved++
			}
		}
		remaining := pool[:0:0]
		for i, c := range pool {
			if !taken[i] {
				remaining = append(remaining, c)
			}
		}
		pool = remaining
		required = 1
	}
	return res, nil
}

func (b *Builder) buildCluster(w world.World, cfg *Config) error {
	cfg.Reservation = newReservationGroup("Clusters")
	placeholders := 0
	for player := 1; player <= w.Players(); player++ {
		s := w.Settings(player)
		cfg.ItemPool[player] = quota.MajorItemSet(s)
		res, err := selectClusters(b.rng, cfg, w, player, quota.MajorItemCount(s), ClusterCandidates(s))
		if err != nil {
			return err
		}
		placeholders += res.Reserved - res.Quota
		b.logger.Debug("Clusters selected",
			zap.Int("player", player),
			zap.Int("quota", res.Quota),
			zap.Ints("draws", res.Draws),
			zap.Int("reserved", res.Reserved))
	}
	cfg.Placeholders = &placeholders
	return nil
}
