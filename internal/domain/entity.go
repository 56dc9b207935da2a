package domain

import "github.com/google/uuid"

// Monster is a live hostile creature on a level.
// Created by the generator, damaged by the combat system, moved by the
// AI system, removed from the level when HP drops to 0 or below.
type Monster struct {
	ID    uuid.UUID `json:"id"`
	Pos   Position  `json:"pos"`
	Glyph string    `json:"glyph"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
	HP    int       `json:"hp"`
	MaxHP int       `json:"maxHp"`
	Atk   int       `json:"atk"`
	XP    int       `json:"xp"`
	Tier  int       `json:"tier"`
}

// ItemKind enumerates the closed set of item categories.
// Kind-specific payload lives in the dedicated fields of Item; pickup and
// use logic switch exhaustively on this tag.
type ItemKind uint8

const (
	ItemPotion ItemKind = iota
	ItemWeapon
	ItemGold
	ItemScroll
)

func (k ItemKind) Glyph() string {
	switch k {
	case ItemPotion:
		return "!"
	case ItemWeapon:
		return "/"
	case ItemGold:
		return "$"
	case ItemScroll:
		return "?"
	}
	return "*"
}

// Item is a floor object or an inventory entry.
// Exactly one payload field is meaningful, selected by Kind:
// Heal for potions, Bonus for weapons, Amount for gold, Effect for scrolls.
type Item struct {
	ID     uuid.UUID    `json:"id"`
	Pos    Position     `json:"pos"`
	Kind   ItemKind     `json:"kind"`
	Name   string       `json:"name"`
	Color  string       `json:"color"`
	Heal   int          `json:"heal,omitempty"`
	Bonus  int          `json:"bonus,omitempty"`
	Amount int          `json:"amount,omitempty"`
	Effect ScrollEffect `json:"effect,omitempty"`
}

// StockEntry is one purchasable line in a merchant's stock.
// Stock is generated once per level and never replenishes.
type StockEntry struct {
	Kind   ItemKind     `json:"kind"`
	Name   string       `json:"name"`
	Color  string       `json:"color"`
	Heal   int          `json:"heal,omitempty"`
	Bonus  int          `json:"bonus,omitempty"`
	Effect ScrollEffect `json:"effect,omitempty"`
	Price  int          `json:"price"`
}

// Item converts a purchased entry into an inventory item.
func (e StockEntry) Item() *Item {
	return &Item{
		ID:     uuid.New(),
		Kind:   e.Kind,
		Name:   e.Name,
		Color:  e.Color,
		Heal:   e.Heal,
		Bonus:  e.Bonus,
		Effect: e.Effect,
	}
}

// Merchant is the optional shopkeeper of a level.
type Merchant struct {
	Pos   Position     `json:"pos"`
	Stock []StockEntry `json:"stock"`
}
