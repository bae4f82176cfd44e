package world

import (
	"encoding/json"
	"fmt"
	"io"

	"item-bias/feature/catalog"
)

// Document is the JSON form of a world handed in by a caller.
type Document struct {
	Players      []Settings    `json:"players"`
	Locations    []LocationDoc `json:"locations"`
	Items        []ItemDoc     `json:"items"`
	DungeonItems []ItemDoc     `json:"dungeon_items"`
}

// LocationDoc describes one slot. Dungeon is derived from the name when empty.
type LocationDoc struct {
	Name    string `json:"name"`
	Player  int    `json:"player"`
	Dungeon string `json:"dungeon,omitempty"`
	Virtual bool   `json:"virtual,omitempty"`
	Forced  bool   `json:"forced,omitempty"`
	Item    string `json:"item,omitempty"`
}

// ItemDoc describes one item.
type ItemDoc struct {
	Name   string `json:"name"`
	Player int    `json:"player"`
}

// Load decodes a Document from r and builds a Memory world from it.
func Load(r io.Reader) (*Memory, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode world document: %w", err)
	}
	return doc.Build(NewItem)
}

// Build creates a Memory world from the document, minting items with factory.
func (d *Document) Build(factory ItemFactory) (*Memory, error) {
	m, err := NewMemory(d.Players...)
	if err != nil {
		return nil, err
	}
	for _, ld := range d.Locations {
		dungeon := ld.Dungeon
		if dungeon == "" {
			dungeon = catalog.DungeonOf(ld.Name)
		}
		loc := &Location{
			Name:       ld.Name,
			Player:     ld.Player,
			Dungeon:    dungeon,
			Real:       !ld.Virtual,
			ForcedItem: ld.Forced,
		}
		if ld.Item != "" {
			loc.Item = factory(ld.Item, ld.Player)
		}
		if err := m.AddLocation(loc); err != nil {
			return nil, err
		}
	}
	for _, id := range d.Items {
		if err := m.AddItem(factory(id.Name, id.Player)); err != nil {
			return nil, err
		}
	}
	for _, id := range d.DungeonItems {
		if err := m.AddDungeonItem(factory(id.Name, id.Player)); err != nil {
			return nil, err
		}
	}
	return m, nil
}
