package balance

import (
	"errors"

	"item-bias/feature/world"
)

var (
	// ErrNoTrash is returned when a trash item is needed and the pool has none.
	ErrNoTrash = errors.New("no trash items in pool")
	// ErrStalePlan is returned when a plan no longer matches the pool it is
	// applied to.
	ErrStalePlan = errors.New("plan does not match pool")
)

// ActionType represents the type of pool mutation.
type ActionType string

const (
	// ActionRemoveTrash removes surplus trash during pool-size correction.
	ActionRemoveTrash ActionType = "remove_trash"
	// ActionWithdraw removes an item while provisioning placeholders.
	ActionWithdraw ActionType = "withdraw"
	// ActionPlaceholder inserts an item marked as a placeholder.
	ActionPlaceholder ActionType = "placeholder"
	// ActionFiller inserts a minted item compensating a withdrawal.
	ActionFiller ActionType = "filler"
)

// Action represents one planned pool mutation.
type Action struct {
	// Type specifies the mutation to perform.
	Type ActionType `json:"type"`

	// Item is the item removed or inserted.
	Item *world.Item `json:"item"`

	// Reason explains why this action is needed.
	Reason string `json:"reason,omitempty"`
}

// Inserts reports whether the action adds its item to the pool.
func (a Action) Inserts() bool {
	return a.Type == ActionPlaceholder || a.Type == ActionFiller
}

// Plan contains the planned pool mutations.
type Plan struct {
	// Actions are applied in order.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`

	// Warnings lists non-fatal resource shortfalls.
	Warnings []string `json:"warnings,omitempty"`
}

// Summary provides aggregate statistics for a balance plan.
type Summary struct {
	// TrashRemoved counts items removed by pool-size correction.
	TrashRemoved int `json:"trash_removed"`

	// Surplus counts items pool-size correction could not remove.
	Surplus int `json:"surplus"`

	// Requested is the placeholder count asked for, or -1 when none was.
	Requested int `json:"requested"`

	// Placeholders counts the items reinserted as placeholders.
	Placeholders int `json:"placeholders"`

	// Minted counts single-unit currency items created for placeholders.
	Minted int `json:"minted"`

	// Fillers counts the currency items inserted to keep the pool size.
	Fillers int `json:"fillers"`

	// SizeBefore and SizeAfter are the pool sizes around the plan.
	SizeBefore int `json:"size_before"`
	SizeAfter  int `json:"size_after"`
}

// Options controls how a plan is applied.
type Options struct {
	// DryRun prevents any mutation if true.
	DryRun bool
}
