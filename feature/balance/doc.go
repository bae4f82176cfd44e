// Package balance reconciles the item pool with the slots available to it
// before the fill search runs.
//
// Balancing is planned first and applied second, so a caller can inspect or
// report the plan without touching the pool. Planning draws from the
// generation's randomness source; applying replays the recorded actions and
// draws nothing.
package balance
