package engine

import (
	"fmt"

	"github.com/cosmo-mac/cosmos-dungeon/internal/domain"
	"github.com/cosmo-mac/cosmos-dungeon/pkg/api"
)

// Snapshot builds the read-only view of the session for the renderer.
// Revealed tiles are listed with their current visibility; entities are
// included only while in line of sight, the player always.
func (s *Session) Snapshot() *api.Snapshot {
	snap := &api.Snapshot{
		State: s.state.String(),
		Done:  s.done,
		Grid:  api.GridMeta{Width: s.cfg.MapWidth, Height: s.cfg.MapHeight},
	}
	if s.player == nil || s.level == nil {
		return snap
	}

	for y := 0; y < s.level.Height; y++ {
		for x := 0; x < s.level.Width; x++ {
			if !s.level.Revealed[y][x] {
				continue
			}
			snap.Tiles = append(snap.Tiles, api.TileView{
				X:       x,
				Y:       y,
				Glyph:   s.level.Tiles[y][x].Glyph(),
				Visible: s.level.Visible[y][x],
			})
		}
	}

	// Draw order: items under the merchant under monsters under the player.
	for _, it := range s.level.Items {
		if s.level.Visible[it.Pos.Y][it.Pos.X] {
			snap.Entities = append(snap.Entities, api.EntityView{
				ID: it.ID.String(), X: it.Pos.X, Y: it.Pos.Y,
				Glyph: it.Kind.Glyph(), Name: it.Name, Color: it.Color,
			})
		}
	}
	if m := s.level.Merchant; m != nil && s.level.Visible[m.Pos.Y][m.Pos.X] {
		snap.Entities = append(snap.Entities, api.EntityView{
			ID: "merchant", X: m.Pos.X, Y: m.Pos.Y,
			Glyph: "M", Name: "merchant", Color: domain.ColorMerchant,
		})
	}
	for _, m := range s.level.Monsters {
		if s.level.Visible[m.Pos.Y][m.Pos.X] {
			snap.Entities = append(snap.Entities, api.EntityView{
				ID: m.ID.String(), X: m.Pos.X, Y: m.Pos.Y,
				Glyph: m.Glyph, Name: m.Name, Color: m.Color,
			})
		}
	}
	snap.Entities = append(snap.Entities, api.EntityView{
		ID: "player", X: s.player.Pos.X, Y: s.player.Pos.Y,
		Glyph: "@", Name: "you", Color: domain.ColorPlayer,
	})

	p := s.player
	snap.Player = api.StatsView{
		HP: p.HP, MaxHP: p.MaxHP,
		Atk: p.Atk(), Defense: p.Defense,
		Level: p.Level, XP: p.XP, XPToNext: p.XPToNext(),
		Gold: p.Gold, Depth: p.Depth, MaxDepth: p.MaxDepth,
		Kills: p.Kills, Weapon: p.Weapon,
	}

	for _, it := range p.Inventory {
		snap.Inventory = append(snap.Inventory, api.ItemView{
			Glyph: it.Kind.Glyph(),
			Name:  it.Name,
			Color: it.Color,
			Desc:  itemDesc(it.Kind, it.Bonus, it.Effect),
		})
	}

	if s.state == StateShop && s.level.Merchant != nil {
		for _, e := range s.level.Merchant.Stock {
			snap.Stock = append(snap.Stock, api.StockView{
				Glyph:      e.Kind.Glyph(),
				Name:       e.Name,
				Color:      e.Color,
				Desc:       itemDesc(e.Kind, e.Bonus, e.Effect),
				Price:      e.Price,
				Affordable: p.Gold >= e.Price,
			})
		}
	}

	snap.Messages = append(snap.Messages, s.messages...)

	if s.state == StateWin {
		snap.Score = p.Score()
	}
	return snap
}

// itemDesc is the short parenthetical shown in menus for weapons and
// scrolls; potions carry their effect in the name already.
func itemDesc(kind domain.ItemKind, bonus int, effect domain.ScrollEffect) string {
	switch kind {
	case domain.ItemWeapon:
		return fmt.Sprintf("(ATK +%d)", bonus)
	case domain.ItemScroll:
		return "(" + effect.Description() + ")"
	}
	return ""
}
