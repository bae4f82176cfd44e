package bias

import (
	"fmt"

	"item-bias/core/rng"
	"item-bias/feature/quota"
	"item-bias/feature/world"

	"go.uber.org/zap"
)

// candidateNames returns the real, unforced location names of the reference
// player, without duplicates, in world order.
func candidateNames(w world.World, reference int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, loc := range w.Locations(reference) {
		if !loc.Real || loc.ForcedItem || seen[loc.Name] {
			continue
		}
		seen[loc.Name] = true
		out = append(out, loc.Name)
	}
	return out
}

// buildEntangled reserves slots across all players at once. Names are drawn
// from a shuffled list; for each name the players are visited in ascending
// order and share their dungeon budgets in exactly that order.
func (b *Builder) buildEntangled(w world.World, cfg *Config) error {
	cfg.Reservation = newReservationGroup("Entangled")
	need := 0
	limits := make(map[int]quota.Limits, w.Players())
	for player := 1; player <= w.Players(); player++ {
		s := w.Settings(player)
		cfg.ItemPool[player] = quota.MajorItemSet(s)
		need += quota.MajorItemCount(s)
		switch l := quota.DungeonLimits(s).(type) {
		case quota.PerDungeon:
			limits[player] = l.Clone()
		case quota.Flat:
			limits[player] = l
		}
	}

	const reference = 1
	candidates := candidateNames(w, reference)
	rng.Shuffle(b.rng, candidates)

	total := 0
	for total < need {
		if len(candidates) == 0 {
			return fmt.Errorf("%d of %d slots reserved: %w", total, need, ErrCandidatesExhausted)
		}
		choice := candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]

		ref, _ := w.Location(choice, reference)
		dungeon := ref.Dungeon
		for player := 1; player <= w.Players(); player++ {
			loc, ok := w.Location(choice, player)
			if !ok || !loc.Real || loc.ForcedItem {
				continue
			}
			if dungeon == "" {
				cfg.reserve(player, choice)
				cfg.Reservation.add(choice, player)
				continue
			}
			b.reserveDungeonSlot(cfg, loc, dungeon, w.Settings(player), limits)
		}
		total += cfg.Reservation.Count(choice)
	}

	placeholders := total - need
	cfg.Placeholders = &placeholders
	b.logger.Debug("Entangled reservation complete",
		zap.Int("quota", need),
		zap.Int("reserved", total),
		zap.Int("unused_candidates", len(candidates)))
	return nil
}

// reserveDungeonSlot charges one dungeon slot against the player's limit.
// Boss slots already excluded by the boss restriction are exempt from the
// per-dungeon budget.
func (b *Builder) reserveDungeonSlot(cfg *Config, loc *world.Location, dungeon string, s world.Settings, limits map[int]quota.Limits) {
	player := loc.Player
	switch l := limits[player].(type) {
	case quota.Flat:
		if l > 0 {
			cfg.reserve(player, loc.Name)
			cfg.Reservation.add(loc.Name, player)
			limits[player] = l - 1
		}
	case quota.PerDungeon:
		previous := PreviouslyReserved(loc, s)
		if l[dungeon] <= 0 && !previous {
			return
		}
		if !b.validator.Validate(cfg, loc, dungeon, s) {
			return
		}
		if !previous {
			l[dungeon]--
		}
		cfg.Reservation.add(loc.Name, player)
	}
}
