package balance

import (
	"testing"

	"item-bias/core/rng"
	"item-bias/feature/catalog"
	"item-bias/feature/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestBalancer(seed uint64) *Balancer {
	return NewBalancer(rng.New(seed), world.NewItem, zap.NewNop())
}

func smallWorld(t *testing.T, locations []string, items []string) *world.Memory {
	t.Helper()
	doc := &world.Document{Players: []world.Settings{world.DefaultSettings(1)}}
	for _, name := range locations {
		doc.Locations = append(doc.Locations, world.LocationDoc{Name: name, Player: 1})
	}
	for _, name := range items {
		doc.Items = append(doc.Items, world.ItemDoc{Name: name, Player: 1})
	}
	w, err := doc.Build(world.NewItem)
	require.NoError(t, err)
	return w
}

func poolNames(p *world.Pool) []string {
	var out []string
	for _, it := range p.Items() {
		out = append(out, it.Name)
	}
	return out
}

func intPtr(n int) *int { return &n }

// TestRankTrash tests that ranking orders by descending value.
func TestRankTrash(t *testing.T) {
	items := []*world.Item{
		world.NewItem("Rupees (300)", 1),
		world.NewItem("Hookshot", 1),
		world.NewItem("Bee Trap", 1),
		world.NewItem("Rupee (1)", 1),
		world.NewItem("Bombs (3)", 1),
		world.NewItem("Rupees (20)", 1),
	}
	ranked := rankTrash(rng.New(4), items)

	require.Len(t, ranked, 5)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, catalog.TrashValues[ranked[i-1].Name], catalog.TrashValues[ranked[i].Name])
	}
	assert.Equal(t, "Bee Trap", ranked[len(ranked)-1].Name)
}

// TestPlan_CorrectSize tests that surplus trash is removed cheapest first.
func TestPlan_CorrectSize(t *testing.T) {
	w := smallWorld(t,
		[]string{"Sahasrahla", "Library", "Eastern Palace - Prize", "Ether Tablet"},
		[]string{"Hookshot", "Rupees (300)", "Rupee (1)", "Bombs (3)", "Rupees (20)"})

	b := newTestBalancer(1)
	plan, executed, err := b.Balance(w, nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, executed)
	assert.Equal(t, 2, plan.Summary.TrashRemoved)
	assert.Zero(t, plan.Summary.Surplus)
	assert.Equal(t, -1, plan.Summary.Requested)
	assert.ElementsMatch(t, []string{"Hookshot", "Rupees (300)", "Bombs (3)"}, poolNames(w.Pool()))
	for _, a := range plan.Actions {
		assert.Equal(t, ActionRemoveTrash, a.Type)
	}
}

// TestPlan_CorrectSizeExhausted tests the warning when trash runs out.
func TestPlan_CorrectSizeExhausted(t *testing.T) {
	w := smallWorld(t, []string{"Sahasrahla"}, []string{"Hookshot", "Bow", "Rupee (1)"})

	core, logs := observer.New(zap.WarnLevel)
	b := NewBalancer(rng.New(1), nil, zap.New(core))
	plan, _, err := b.Balance(w, nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, plan.Summary.TrashRemoved)
	assert.Equal(t, 1, plan.Summary.Surplus)
	assert.Len(t, plan.Warnings, 1)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, int64(1), logs.All()[0].ContextMap()["surplus"])
	assert.ElementsMatch(t, []string{"Hookshot", "Bow"}, poolNames(w.Pool()))
}

// TestPlan_BalancedStandardWorld tests that a matching world is left alone.
func TestPlan_BalancedStandardWorld(t *testing.T) {
	w, err := world.NewStandard(world.DefaultSettings(1))
	require.NoError(t, err)

	plan, err := newTestBalancer(1).Plan(w, nil)
	require.NoError(t, err)
	assert.Empty(t, plan.Actions)

	s := world.DefaultSettings(1)
	s.BombBag = true
	w, err = world.NewStandard(s)
	require.NoError(t, err)
	plan, err = newTestBalancer(1).Plan(w, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, plan.Summary.TrashRemoved)
}

// TestPlan_Placeholders tests that provisioning keeps the pool size.
func TestPlan_Placeholders(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		minted  int
		fillers int
	}{
		{"none requested", 0, 0, 2},
		{"existing singles suffice", 2, 0, 0},
		{"trash converted", 5, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := world.NewStandard(world.DefaultSettings(1))
			require.NoError(t, err)
			before := w.Pool().Len()
			fivesBefore := w.Pool().Count(catalog.FiveRupees)

			plan, _, err := newTestBalancer(9).Balance(w, intPtr(tt.n), Options{})
			require.NoError(t, err)

			assert.Equal(t, before, w.Pool().Len())
			assert.Equal(t, plan.Summary.SizeBefore, plan.Summary.SizeAfter)
			assert.Equal(t, tt.n, plan.Summary.Placeholders)
			assert.Equal(t, tt.minted, plan.Summary.Minted)
			assert.Equal(t, tt.fillers, plan.Summary.Fillers)
			if tt.minted == 0 {
				assert.Equal(t, fivesBefore+tt.fillers, w.Pool().Count(catalog.FiveRupees))
			}

			marked := 0
			for _, it := range w.Pool().Items() {
				if it.Placeholder {
					marked++
					assert.Equal(t, catalog.SingleRupee, it.Name)
				}
			}
			assert.Equal(t, tt.n, marked)
			assert.Equal(t, tt.n, w.Pool().Count(catalog.SingleRupee))
		})
	}
}

// TestPlan_PlaceholdersInsufficientTrash tests the degraded result.
func TestPlan_PlaceholdersInsufficientTrash(t *testing.T) {
	w := smallWorld(t,
		[]string{"Sahasrahla", "Library", "Ether Tablet"},
		[]string{"Hookshot", "Rupee (1)", "Bombs (3)"})

	core, logs := observer.New(zap.WarnLevel)
	b := NewBalancer(rng.New(2), world.NewItem, zap.New(core))
	plan, _, err := b.Balance(w, intPtr(5), Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, w.Pool().Len())
	assert.Equal(t, 2, plan.Summary.Placeholders)
	assert.Equal(t, 1, plan.Summary.Minted)
	assert.Len(t, plan.Warnings, 1)
	assert.Equal(t, 1, logs.FilterMessage("Too many good items in pool, not enough room for placeholders").Len())
	assert.ElementsMatch(t, []string{"Hookshot", "Rupee (1)", "Rupee (1)"}, poolNames(w.Pool()))
}

// TestPlan_PlaceholdersPerPlayer tests that every player keeps their item count.
func TestPlan_PlaceholdersPerPlayer(t *testing.T) {
	w, err := world.NewStandard(world.DefaultSettings(1), world.DefaultSettings(2))
	require.NoError(t, err)
	before := map[int]int{1: len(w.Pool().ForPlayer(1)), 2: len(w.Pool().ForPlayer(2))}

	_, _, err = newTestBalancer(5).Balance(w, intPtr(10), Options{})
	require.NoError(t, err)

	for player, n := range before {
		assert.Len(t, w.Pool().ForPlayer(player), n)
	}
}

func TestPlan_NegativePlaceholders(t *testing.T) {
	w := smallWorld(t, nil, nil)
	_, err := newTestBalancer(1).Plan(w, intPtr(-1))
	assert.Error(t, err)
}

// TestApply_DryRun tests that a dry run leaves the pool untouched.
func TestApply_DryRun(t *testing.T) {
	w, err := world.NewStandard(world.DefaultSettings(1))
	require.NoError(t, err)
	before := poolNames(w.Pool())

	plan, executed, err := newTestBalancer(3).Balance(w, intPtr(4), Options{DryRun: true})
	require.NoError(t, err)
	assert.NotEmpty(t, plan.Actions)
	assert.Zero(t, executed)
	assert.Equal(t, before, poolNames(w.Pool()))
	for _, it := range w.Pool().Items() {
		assert.False(t, it.Placeholder)
	}
}

func TestApply_StalePlan(t *testing.T) {
	w := smallWorld(t, []string{"Sahasrahla"}, []string{"Hookshot", "Rupee (1)"})
	b := newTestBalancer(1)
	plan, err := b.Plan(w, nil)
	require.NoError(t, err)
	require.Len(t, plan.Actions, 1)

	w.Pool().Remove(plan.Actions[0].Item)
	_, err = b.Apply(w, plan, Options{})
	assert.ErrorIs(t, err, ErrStalePlan)
}

// TestApply_StalePlanLeavesPoolUntouched tests that a stale removal late in
// the plan is caught before any earlier action runs.
func TestApply_StalePlanLeavesPoolUntouched(t *testing.T) {
	w, err := world.NewStandard(world.DefaultSettings(1))
	require.NoError(t, err)
	b := newTestBalancer(9)
	plan, err := b.Plan(w, intPtr(5))
	require.NoError(t, err)

	last := -1
	for i, a := range plan.Actions {
		if !a.Inserts() {
			last = i
		}
	}
	require.Positive(t, last, "plan needs an earlier action before the stale one")
	w.Pool().Remove(plan.Actions[last].Item)
	before := w.Pool().Items()

	executed, err := b.Apply(w, plan, Options{})
	assert.ErrorIs(t, err, ErrStalePlan)
	assert.Zero(t, executed)
	assert.Equal(t, before, w.Pool().Items())
	for _, a := range plan.Actions {
		assert.False(t, a.Item.Placeholder, a.Item.Name)
	}
}

// TestBalance_Deterministic tests that equal seeds produce equal pools.
func TestBalance_Deterministic(t *testing.T) {
	run := func() []string {
		w, err := world.NewStandard(world.DefaultSettings(1), world.DefaultSettings(2))
		require.NoError(t, err)
		_, _, err = newTestBalancer(77).Balance(w, intPtr(12), Options{})
		require.NoError(t, err)
		var out []string
		for _, it := range w.Pool().Items() {
			out = append(out, it.Name)
			if it.Placeholder {
				out = append(out, "placeholder")
			}
		}
		return out
	}
	assert.Equal(t, run(), run())
}

// TestReplaceTrashItem tests the single substitution.
func TestReplaceTrashItem(t *testing.T) {
	pool := world.NewPool(
		world.NewItem("Hookshot", 1),
		world.NewItem("Rupees (300)", 1),
		world.NewItem("Bee Trap", 2),
	)
	b := newTestBalancer(1)

	it, err := b.ReplaceTrashItem(pool, "Triforce Piece")
	require.NoError(t, err)
	assert.Equal(t, "Triforce Piece", it.Name)
	assert.Equal(t, 2, it.Player)
	assert.Equal(t, 3, pool.Len())
	assert.Zero(t, pool.Count("Bee Trap"))
	assert.True(t, pool.Contains(it))
}

func TestReplaceTrashItem_NoTrash(t *testing.T) {
	pool := world.NewPool(world.NewItem("Hookshot", 1))
	_, err := newTestBalancer(1).ReplaceTrashItem(pool, "Triforce Piece")
	assert.ErrorIs(t, err, ErrNoTrash)
	assert.Equal(t, []string{"Hookshot"}, poolNames(pool))
}
