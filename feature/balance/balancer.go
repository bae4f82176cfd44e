package balance

import (
	"cmp"
	"fmt"
	"slices"

	"item-bias/core/rng"
	"item-bias/feature/catalog"
	"item-bias/feature/world"

	"go.uber.org/zap"
)

// Balancer plans and applies pool corrections for one generation.
type Balancer struct {
	rng     rng.Source
	factory world.ItemFactory
	logger  *zap.Logger
}

// NewBalancer returns a Balancer drawing from r and minting with factory.
func NewBalancer(r rng.Source, factory world.ItemFactory, logger *zap.Logger) *Balancer {
	if factory == nil {
		factory = world.NewItem
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Balancer{rng: r, factory: factory, logger: logger}
}

// rankTrash returns the trash items of items ordered from most to least
// valuable. Equal values keep a random relative order, so popping from the
// tail removes the cheapest items with random tie-breaks.
func rankTrash(r rng.Source, items []*world.Item) []*world.Item {
	var trash []*world.Item
	for _, it := range items {
		if catalog.IsTrash(it.Name) {
			trash = append(trash, it)
		}
	}
	rng.Shuffle(r, trash)
	slices.SortStableFunc(trash, func(a, b *world.Item) int {
		return cmp.Compare(catalog.TrashValues[b.Name], catalog.TrashValues[a.Name])
	})
	return trash
}

func pop(items []*world.Item) (*world.Item, []*world.Item) {
	n := len(items) - 1
	return items[n], items[:n]
}

// planner accumulates a plan against a working copy of the pool.
type planner struct {
	*Balancer
	work *world.Pool
	plan *Plan
}

func (p *planner) remove(t ActionType, it *world.Item, reason string) {
	p.work.Remove(it)
	p.plan.Actions = append(p.plan.Actions, Action{Type: t, Item: it, Reason: reason})
}

func (p *planner) insert(t ActionType, it *world.Item, reason string) {
	p.work.Add(it)
	p.plan.Actions = append(p.plan.Actions, Action{Type: t, Item: it, Reason: reason})
}

func (p *planner) warn(msg string, fields ...zap.Field) {
	p.plan.Warnings = append(p.plan.Warnings, msg)
	p.logger.Warn(msg, fields...)
}

// Plan computes the pool corrections for w. Pool-size correction runs for
// every player; placeholder provisioning runs when placeholders is non-nil.
// Minted items are created here so that applying the plan is deterministic.
func (b *Balancer) Plan(w world.World, placeholders *int) (*Plan, error) {
	p := &planner{
		Balancer: b,
		work:     world.NewPool(w.Pool().Items()...),
		plan:     &Plan{Summary: Summary{Requested: -1, SizeBefore: w.Pool().Len()}},
	}
	for player := 1; player <= w.Players(); player++ {
		p.correctSize(w, player)
	}
	if placeholders != nil {
		if *placeholders < 0 {
			return nil, fmt.Errorf("placeholder count %d is negative", *placeholders)
		}
		p.provision(*placeholders)
	}
	p.plan.Summary.SizeAfter = p.work.Len()
	return p.plan, nil
}

// correctSize removes the player's cheapest trash until their pending items
// fit the open, non-prize slots.
func (p *planner) correctSize(w world.World, player int) {
	pending := p.work.ForPlayer(player)
	for _, it := range w.DungeonItems(player) {
		if !p.work.Contains(it) {
			pending = append(pending, it)
		}
	}
	slots := 0
	for _, loc := range w.UnfilledLocations(player) {
		if !loc.IsPrize() {
			slots++
		}
	}
	surplus := len(pending) - slots
	if surplus <= 0 {
		return
	}
	trash := rankTrash(p.rng, pending)
	for surplus > 0 && len(trash) > 0 {
		var it *world.Item
		it, trash = pop(trash)
		p.remove(ActionRemoveTrash, it, fmt.Sprintf("player %d has %d items for %d slots", player, len(pending), slots))
		p.plan.Summary.TrashRemoved++
		surplus--
	}
	if surplus > 0 {
		p.plan.Summary.Surplus += surplus
		p.warn("Too many good items in pool, not enough trash to remove",
			zap.Int("player", player), zap.Int("surplus", surplus))
	}
}

// provision withdraws every single-unit currency item and, if there are
// fewer than n, cheap trash converted to single-unit currency. n of them go
// back as placeholders; every other withdrawal is compensated with a
// five-unit currency item owned by the same player.
func (p *planner) provision(n int) {
	p.plan.Summary.Requested = n

	type withdrawal struct {
		item *world.Item
		// single is the currency item standing in for item.
		single *world.Item
	}
	var (
		withdrawn []withdrawal
		singles   []*world.Item
	)
	for _, it := range p.work.Items() {
		if it.Name == catalog.SingleRupee {
			p.remove(ActionWithdraw, it, "collect single-unit currency")
			withdrawn = append(withdrawn, withdrawal{item: it, single: it})
			singles = append(singles, it)
		}
	}

	if len(singles) < n {
		trash := rankTrash(p.rng, p.work.Items())
		for len(singles) < n {
			if len(trash) == 0 {
				p.warn("Too many good items in pool, not enough room for placeholders",
					zap.Int("requested", n), zap.Int("available", len(singles)))
				break
			}
			var it *world.Item
			it, trash = pop(trash)
			p.remove(ActionWithdraw, it, "convert trash to single-unit currency")
			minted := p.factory(catalog.SingleRupee, it.Player)
			withdrawn = append(withdrawn, withdrawal{item: it, single: minted})
			singles = append(singles, minted)
			p.plan.Summary.Minted++
		}
	}

	chosen, _ := rng.Sample(p.rng, singles, min(n, len(singles)))
	picked := make(map[*world.Item]bool, len(chosen))
	for _, it := range chosen {
		picked[it] = true
		p.insert(ActionPlaceholder, it, "hold a slot for a major item")
	}
	p.plan.Summary.Placeholders = len(chosen)

	for _, wd := range withdrawn {
		if picked[wd.single] {
			continue
		}
		p.insert(ActionFiller, p.factory(catalog.FiveRupees, wd.item.Player),
			fmt.Sprintf("compensate %s", wd.item.Name))
		p.plan.Summary.Fillers++
	}
}

// Apply executes the actions of plan against the pool of w and returns the
// number executed. Placeholder items are marked as they are inserted. DryRun
// executes nothing. A stale plan is rejected before the pool is touched.
func (b *Balancer) Apply(w world.World, plan *Plan, opts Options) (executed int, err error) {
	if opts.DryRun {
		return 0, nil
	}
	pool := w.Pool()
	if err := verify(pool, plan); err != nil {
		return 0, err
	}
	for _, a := range plan.Actions {
		if a.Type == ActionPlaceholder {
			a.Item.Placeholder = true
		}
		if a.Inserts() {
			pool.Add(a.Item)
		} else {
			pool.Remove(a.Item)
		}
		executed++
	}
	b.logger.Debug("Pool balanced",
		zap.Int("actions", executed),
		zap.Int("trash_removed", plan.Summary.TrashRemoved),
		zap.Int("placeholders", plan.Summary.Placeholders),
		zap.Int("fillers", plan.Summary.Fillers))
	return executed, nil
}

// verify replays the actions against pool membership only and fails on the
// first removal of an item that would not be in the pool.
func verify(pool *world.Pool, plan *Plan) error {
	present := make(map[*world.Item]bool)
	has := func(it *world.Item) bool {
		if v, ok := present[it]; ok {
			return v
		}
		return pool.Contains(it)
	}
	for _, a := range plan.Actions {
		if a.Inserts() {
			present[a.Item] = true
			continue
		}
		if !has(a.Item) {
			return fmt.Errorf("%s %s: %w", a.Type, a.Item.Name, ErrStalePlan)
		}
		present[a.Item] = false
	}
	return nil
}

// Balance plans and applies in one step.
func (b *Balancer) Balance(w world.World, placeholders *int, opts Options) (*Plan, int, error) {
	plan, err := b.Plan(w, placeholders)
	if err != nil {
		return nil, 0, err
	}
	executed, err := b.Apply(w, plan, opts)
	return plan, executed, err
}

// ReplaceTrashItem swaps the cheapest trash item in pool for a fresh item
// named replacement, owned by the same player, and returns the new item.
func (b *Balancer) ReplaceTrashItem(pool *world.Pool, replacement string) (*world.Item, error) {
	trash := rankTrash(b.rng, pool.Items())
	if len(trash) == 0 {
		return nil, fmt.Errorf("replace with %s: %w", replacement, ErrNoTrash)
	}
	deleted, _ := pop(trash)
	pool.Remove(deleted)
	it := b.factory(replacement, deleted.Player)
	pool.Add(it)
	return it, nil
}
