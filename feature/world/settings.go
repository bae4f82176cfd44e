package world

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is returned when a setting holds an unknown value.
var ErrInvalidSettings = errors.New("invalid settings")

// DoorShuffle selects how dungeon interiors are laid out.
type DoorShuffle string

const (
	DoorsVanilla DoorShuffle = "vanilla"
	DoorsBasic   DoorShuffle = "basic"
	DoorsCrossed DoorShuffle = "crossed"
)

// BossRestriction selects which dungeon items may not land on a boss.
type BossRestriction string

const (
	BossNone       BossRestriction = "none"
	BossMapCompass BossRestriction = "mapcompass"
	BossDungeon    BossRestriction = "dungeon"
)

// SwordPolicy selects how swords enter the pool.
type SwordPolicy string

const (
	SwordsRandom    SwordPolicy = "random"
	SwordsAssured   SwordPolicy = "assured"
	SwordsVanilla   SwordPolicy = "vanilla"
	SwordsSwordless SwordPolicy = "swordless"
)

// Well-known goal, difficulty and mode values.
const (
	GoalTriforceHunt = "triforcehunt"
	GoalPedestal     = "pedestal"
	DifficultyNormal = "normal"
	ModeStandard     = "standard"
)

// Settings is the read-only flag set of one player.
type Settings struct {
	Player            int             `json:"player"`
	BigKeyShuffle     bool            `json:"big_key_shuffle"`
	KeyShuffle        bool            `json:"key_shuffle"`
	CompassShuffle    bool            `json:"compass_shuffle"`
	MapShuffle        bool            `json:"map_shuffle"`
	KeyDropShuffle    bool            `json:"key_drop_shuffle"`
	ShopSanity        bool            `json:"shop_sanity"`
	Retro             bool            `json:"retro"`
	BombBag           bool            `json:"bomb_bag"`
	DoorShuffle       DoorShuffle     `json:"door_shuffle"`
	RestrictBossItems BossRestriction `json:"restrict_boss_items"`
	Swords            SwordPolicy     `json:"swords"`
	Goal              string          `json:"goal"`
	Difficulty        string          `json:"difficulty"`
	Mode              string          `json:"mode"`
	TriforcePool      int             `json:"triforce_pool"`
}

// DefaultSettings returns the flag set of an unmodified open-mode game.
func DefaultSettings(player int) Settings {
	return Settings{
		Player:            player,
		DoorShuffle:       DoorsVanilla,
		RestrictBossItems: BossNone,
		Swords:            SwordsRandom,
		Goal:              "ganon",
		Difficulty:        DifficultyNormal,
		Mode:              "open",
		TriforcePool:      30,
	}
}

// normalize fills empty enum fields with their defaults.
func (s Settings) normalize() Settings {
	d := DefaultSettings(s.Player)
	if s.DoorShuffle == "" {
		s.DoorShuffle = d.DoorShuffle
	}
	if s.RestrictBossItems == "" {
		s.RestrictBossItems = d.RestrictBossItems
	}
	if s.Swords == "" {
		s.Swords = d.Swords
	}
	if s.Goal == "" {
		s.Goal = d.Goal
	}
	if s.Difficulty == "" {
		s.Difficulty = d.Difficulty
	}
	if s.Mode == "" {
		s.Mode = d.Mode
	}
	return s
}

// Validate reports the first enum field holding an unknown value.
func (s Settings) Validate() error {
	switch s.DoorShuffle {
	case DoorsVanilla, DoorsBasic, DoorsCrossed:
	default:
		return fmt.Errorf("player %d: door shuffle %q: %w", s.Player, s.DoorShuffle, ErrInvalidSettings)
	}
	switch s.RestrictBossItems {
	case BossNone, BossMapCompass, BossDungeon:
	default:
		return fmt.Errorf("player %d: boss item restriction %q: %w", s.Player, s.RestrictBossItems, ErrInvalidSettings)
	}
	switch s.Swords {
	case SwordsRandom, SwordsAssured, SwordsVanilla, SwordsSwordless:
	default:
		return fmt.Errorf("player %d: sword policy %q: %w", s.Player, s.Swords, ErrInvalidSettings)
	}
	if s.TriforcePool < 0 {
		return fmt.Errorf("player %d: triforce pool %d: %w", s.Player, s.TriforcePool, ErrInvalidSettings)
	}
	return nil
}

// SmallKeysFree reports whether small keys leave their dungeon, either
// shuffled or replaced by universal keys.
func (s Settings) SmallKeysFree() bool {
	return s.KeyShuffle || s.Retro
}
