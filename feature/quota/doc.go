// Package quota derives how many major items a player has and how many slots
// each dungeon may give up to them.
package quota
