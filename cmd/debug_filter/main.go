package main

import (
	"fmt"
	"log"

	"item-bias/core/rng"
	"item-bias/feature/balance"
	"item-bias/feature/bias"
	"item-bias/feature/world"

	flag "github.com/spf13/pflag"
)

func main() {
	strategy := flag.String("strategy", string(bias.StrategyCluster), "strategy to build")
	item := flag.String("item", "Hookshot", "pool item to filter for")
	seed := flag.Uint64("seed", 1, "seed")
	players := flag.Int("players", 1, "number of players")
	flag.Parse()

	s, err := bias.ParseStrategy(*strategy)
	if err != nil {
		log.Fatal(err)
	}

	settings := make([]world.Settings, 0, *players)
	for p := 1; p <= *players; p++ {
		settings = append(settings, world.DefaultSettings(p))
	}
	w, err := world.NewStandard(settings...)
	if err != nil {
		log.Fatal(err)
	}

	r := rng.New(*seed)
	cfg, err := bias.NewBuilder(r, world.NewSlotOracle(w), nil).Build(w, s)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Mode: %s\n", cfg.Mode)
	fmt.Printf("Classified %d major items\n", bias.ClassifyMajorItems(w, cfg))

	if _, _, err := balance.NewBalancer(r, nil, nil).Balance(w, cfg.Placeholders, balance.Options{}); err != nil {
		log.Fatal(err)
	}

	var target *world.Item
	for _, it := range w.Pool().Items() {
		if it.Name == *item {
			target = it
			break
		}
	}
	if target == nil {
		log.Fatalf("item %q is not in the pool", *item)
	}
	fmt.Printf("Item: %s (player %d, advancement=%v, priority=%v, placeholder=%v)\n",
		target.Name, target.Player, target.Advancement, target.Priority, target.Placeholder)

	for p := 1; p <= w.Players(); p++ {
		candidates := w.UnfilledLocations(p)
		kept := cfg.Filter(target, candidates)
		fmt.Printf("\n=== Player %d: %d of %d candidates kept ===\n", p, len(kept), len(candidates))
		for _, loc := range kept {
			reserved := ""
			if cfg.IsReserved(loc.Player, loc.Name) {
				reserved = " [reserved]"
			}
			fmt.Printf("  %s%s\n", loc.Name, reserved)
		}
	}
}
