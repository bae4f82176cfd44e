package bias

import (
	"item-bias/feature/world"
)

// Validator accepts or rejects a tentative dungeon reservation.
type Validator struct {
	oracle world.LayoutOracle
}

// NewValidator returns a Validator that consults oracle for vanilla doors.
func NewValidator(oracle world.LayoutOracle) *Validator {
	return &Validator{oracle: oracle}
}

// Validate records the reservation of loc in cfg, then checks it. Shuffled
// door layouts always accept. With vanilla doors the oracle decides, and a
// rejected reservation is rolled back before returning false. A slot that was
// already reserved before the call stays reserved.
func (v *Validator) Validate(cfg *Config, loc *world.Location, dungeon string, s world.Settings) bool {
	held := cfg.IsReserved(loc.Player, loc.Name)
	cfg.reserve(loc.Player, loc.Name)
	if s.DoorShuffle != world.DoorsVanilla {
		return true
	}
	reserved := func(name string) bool {
		return cfg.IsReserved(loc.Player, name)
	}
	if v.oracle.Feasible(dungeon, loc.Player, reserved) {
		return true
	}
	if !held {
		cfg.rollback(loc.Player, loc.Name)
	}
	return false
}

// PreviouslyReserved reports whether loc is a boss slot already excluded by
// the boss item restriction. Such slots do not count against dungeon limits.
func PreviouslyReserved(loc *world.Location, s world.Settings) bool {
	if !loc.IsBoss() {
		return false
	}
	switch s.RestrictBossItems {
	case world.BossMapCompass:
		return !s.CompassShuffle || !s.MapShuffle
	case world.BossDungeon:
		return !s.CompassShuffle || !s.MapShuffle || !s.BigKeyShuffle || !s.SmallKeysFree()
	}
	return false
}
