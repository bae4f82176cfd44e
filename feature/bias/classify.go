package bias

import "item-bias/feature/world"

// ClassifyMajorItems marks every pool item in its player's major set as
// advancement (keys) or priority (everything else). Only the biased modes
// classify.
func ClassifyMajorItems(w world.World, cfg *Config) int {
	if !cfg.Mode.biased() {
		return 0
	}
	n := 0
	for _, it := range w.Pool().Items() {
		if !cfg.IsMajor(it.Player, it.Name) || (it.Advancement && it.Priority) {
			continue
		}
		if it.IsSmallKey() || it.IsBigKey() {
			it.Advancement = true
		} else {
			it.Priority = true
		}
		n++
	}
	return n
}
