package world

import (
	"errors"
	"fmt"
)

// ErrUnknownPlayer is returned when a player index has no settings.
var ErrUnknownPlayer = errors.New("unknown player")

// World is the read view of a generation consumed by the placement core.
// Players are numbered from 1.
type World interface {
	Players() int
	Settings(player int) Settings
	// Locations returns the player's slots in their canonical order.
	Locations(player int) []*Location
	Location(name string, player int) (*Location, bool)
	UnfilledLocations(player int) []*Location
	// DungeonItems returns the player's dungeon items that are not in the pool.
	DungeonItems(player int) []*Item
	Pool() *Pool
}

// Memory is an in-process World.
type Memory struct {
	settings     []Settings
	locations    map[int][]*Location
	index        map[int]map[string]*Location
	dungeonItems map[int][]*Item
	pool         *Pool
}

// NewMemory creates an empty world for the given players. Settings are
// numbered in order; a non-zero Player field must match its position. Empty
// enum fields take their defaults and unknown values are rejected.
func NewMemory(settings ...Settings) (*Memory, error) {
	m := &Memory{
		locations:    make(map[int][]*Location),
		index:        make(map[int]map[string]*Location),
		dungeonItems: make(map[int][]*Item),
		pool:         NewPool(),
	}
	for i, s := range settings {
		player := i + 1
		if s.Player == 0 {
			s.Player = player
		}
		if s.Player != player {
			return nil, fmt.Errorf("settings at position %d name player %d: %w", player, s.Player, ErrUnknownPlayer)
		}
		s = s.normalize()
		if err := s.Validate(); err != nil {
			return nil, err
		}
		m.settings = append(m.settings, s)
		m.index[player] = make(map[string]*Location)
	}
	return m, nil
}

func (m *Memory) Players() int {
	return len(m.settings)
}

func (m *Memory) Settings(player int) Settings {
	if player < 1 || player > len(m.settings) {
		return Settings{}
	}
	return m.settings[player-1]
}

func (m *Memory) Locations(player int) []*Location {
	return m.locations[player]
}

func (m *Memory) Location(name string, player int) (*Location, bool) {
	loc, ok := m.index[player][name]
	return loc, ok
}

func (m *Memory) UnfilledLocations(player int) []*Location {
	var out []*Location
	for _, loc := range m.locations[player] {
		if !loc.Filled() {
			out = append(out, loc)
		}
	}
	return out
}

func (m *Memory) DungeonItems(player int) []*Item {
	return m.dungeonItems[player]
}

func (m *Memory) Pool() *Pool {
	return m.pool
}

// AddLocation registers a slot. Adding a name twice for one player replaces
// the earlier slot in the index but keeps both in order, so callers must not.
func (m *Memory) AddLocation(loc *Location) error {
	if _, ok := m.index[loc.Player]; !ok {
		return fmt.Errorf("location %q: player %d: %w", loc.Name, loc.Player, ErrUnknownPlayer)
	}
	m.locations[loc.Player] = append(m.locations[loc.Player], loc)
	m.index[loc.Player][loc.Name] = loc
	return nil
}

// AddDungeonItem registers an item that is kept out of the shared pool.
func (m *Memory) AddDungeonItem(it *Item) error {
	if _, ok := m.index[it.Player]; !ok {
		return fmt.Errorf("dungeon item %q: player %d: %w", it.Name, it.Player, ErrUnknownPlayer)
	}
	m.dungeonItems[it.Player] = append(m.dungeonItems[it.Player], it)
	return nil
}

// AddItem appends an item to the shared pool.
func (m *Memory) AddItem(it *Item) error {
	if _, ok := m.index[it.Player]; !ok {
		return fmt.Errorf("item %q: player %d: %w", it.Name, it.Player, ErrUnknownPlayer)
	}
	m.pool.Add(it)
	return nil
}
