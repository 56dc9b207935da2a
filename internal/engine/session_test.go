package engine

import (
	"strings"
	"testing"

	"github.com/cosmo-mac/cosmos-dungeon/internal/domain"
	"github.com/cosmo-mac/cosmos-dungeon/pkg/api"
)

func TestStateMachine(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 1
	s := NewSession(cfg, domain.DefaultCatalog())

	if s.State() != StateTitle {
		t.Fatalf("Expected a fresh session on the title screen, got %v", s.State())
	}

	snap := s.Apply(api.Intent{Kind: api.IntentStart})
	if snap.State != "playing" {
		t.Fatalf("Expected playing after start, got %q", snap.State)
	}
	if snap.Player.HP != 30 || snap.Player.Weapon != "fists" {
		t.Errorf("Expected a fresh adventurer, got %d HP with %q", snap.Player.HP, snap.Player.Weapon)
	}

	snap = s.Apply(api.Intent{Kind: api.IntentOpenInventory})
	if snap.State != "inventory" {
		t.Fatalf("Expected inventory, got %q", snap.State)
	}
	snap = s.Apply(api.Intent{Kind: api.IntentCloseMenu})
	if snap.State != "playing" {
		t.Fatalf("Expected playing after closing the menu, got %q", snap.State)
	}

	snap = s.Apply(api.Intent{Kind: api.IntentQuit})
	if !snap.Done {
		t.Error("Expected Done after quit")
	}
}

func TestDeathReturnsToTitle(t *testing.T) {
	s := newPlayingSession()
	s.player.HP = 1
	s.level.Monsters = []*domain.Monster{
		{Name: "troll", Atk: 9, HP: 35, MaxHP: 35, Pos: domain.Position{X: 6, Y: 5}},
	}

	snap := s.Apply(api.Intent{Kind: api.IntentWait})
	if snap.State != "dead" {
		t.Fatalf("Expected the troll to end the run, got %q", snap.State)
	}

	// Any intent dismisses the death screen.
	snap = s.Apply(api.Intent{Kind: api.IntentStart})
	if snap.State != "title" {
		t.Errorf("Expected title after the death screen, got %q", snap.State)
	}
}

func TestWinOnDragonKill(t *testing.T) {
	s := newPlayingSession()
	cat := s.catalog
	s.player.Depth = domain.WinDepth
	s.player.BaseAtk = 50
	s.level.Monsters = []*domain.Monster{
		{Name: "dragon", Atk: 15, HP: 1, MaxHP: 60, XP: 100,
			Tier: cat.DragonTier(), Pos: domain.Position{X: 6, Y: 5}},
	}

	snap := s.Apply(api.Intent{Kind: api.IntentMove, Dx: 1})
	if snap.State != "win" {
		t.Fatalf("Expected a win, got %q", snap.State)
	}
	if snap.Score == 0 {
		t.Error("Expected the final score in the win snapshot")
	}
}

func TestAttackMessages(t *testing.T) {
	s := newPlayingSession()
	s.level.Monsters = []*domain.Monster{
		{Name: "goblin", Atk: 4, HP: 1, MaxHP: 12, XP: 12, Pos: domain.Position{X: 6, Y: 5}},
	}

	s.Apply(api.Intent{Kind: api.IntentMove, Dx: 1})
	found := false
	for _, m := range s.messages {
		if strings.Contains(m, "You slay the goblin!") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a slay message, got %v", s.messages)
	}
	if len(s.level.Monsters) != 0 {
		t.Error("Expected the goblin removed")
	}
	if s.player.Pos != (domain.Position{X: 5, Y: 5}) {
		t.Error("Expected attacking not to move the player")
	}
}

func TestPickupWeapon(t *testing.T) {
	t.Run("upgrade auto-equips", func(t *testing.T) {
		s := newPlayingSession()
		s.level.Items = []*domain.Item{
			{Kind: domain.ItemWeapon, Name: "war axe", Bonus: 4, Pos: domain.Position{X: 6, Y: 5}},
		}

		s.Apply(api.Intent{Kind: api.IntentMove, Dx: 1})
		if s.player.Weapon != "war axe" || s.player.AtkBonus != 4 {
			t.Errorf("Expected the war axe equipped, got %q (+%d)", s.player.Weapon, s.player.AtkBonus)
		}
		if s.player.Atk() != 7 {
			t.Errorf("Expected attack to rise to 7, got %d", s.player.Atk())
		}
		if len(s.player.Inventory) != 0 {
			t.Error("Expected an equipped upgrade not to enter the pack")
		}
		if len(s.level.Items) != 0 {
			t.Error("Expected the floor item removed")
		}
	})

	t.Run("downgrade goes to the pack", func(t *testing.T) {
		s := newPlayingSession()
		s.player.Equip("war axe", 7)
		s.level.Items = []*domain.Item{
			{Kind: domain.ItemWeapon, Name: "rusty dagger", Bonus: 2, Pos: domain.Position{X: 6, Y: 5}},
		}

		s.Apply(api.Intent{Kind: api.IntentMove, Dx: 1})
		if s.player.Weapon != "war axe" {
			t.Errorf("Expected to keep the war axe, got %q", s.player.Weapon)
		}
		if len(s.player.Inventory) != 1 {
			t.Fatalf("Expected the dagger stashed, pack has %d items", len(s.player.Inventory))
		}
		if !strings.Contains(lastMessage(s), "is better") {
			t.Errorf("Expected a better-weapon notice, got %q", lastMessage(s))
		}
	})
}

func TestPickupGold(t *testing.T) {
	s := newPlayingSession()
	s.level.Items = []*domain.Item{
		{Kind: domain.ItemGold, Name: "12 gold", Amount: 12, Pos: domain.Position{X: 6, Y: 5}},
	}

	s.Apply(api.Intent{Kind: api.IntentMove, Dx: 1})
	if s.player.Gold != 12 {
		t.Errorf("Expected 12 gold, got %d", s.player.Gold)
	}
	if len(s.player.Inventory) != 0 {
		t.Error("Expected gold consumed on the spot")
	}
}

func TestDescend(t *testing.T) {
	t.Run("off the stairs", func(t *testing.T) {
		s := newPlayingSession()
		s.Apply(api.Intent{Kind: api.IntentDescend})
		if lastMessage(s) != "There are no stairs here." {
			t.Errorf("Expected a no-stairs notice, got %q", lastMessage(s))
		}
		if s.player.Depth != 1 {
			t.Errorf("Expected to stay at depth 1, got %d", s.player.Depth)
		}
	})

	t.Run("on the stairs", func(t *testing.T) {
		s := newPlayingSession()
		s.player.Pos = s.level.Stairs

		s.Apply(api.Intent{Kind: api.IntentDescend})
		if s.player.Depth != 2 {
			t.Fatalf("Expected depth 2, got %d", s.player.Depth)
		}
		if s.player.MaxDepth != 2 {
			t.Errorf("Expected max depth tracked, got %d", s.player.MaxDepth)
		}
		if s.level.Depth != 2 {
			t.Errorf("Expected a freshly generated level, depth %d", s.level.Depth)
		}
		if lastMessage(s) != "You descend to depth 2." {
			t.Errorf("Expected a descent message, got %q", lastMessage(s))
		}
	})
}

func TestUsePotion(t *testing.T) {
	s := newPlayingSession()
	s.player.HP = 10
	s.player.Inventory = []*domain.Item{
		{Kind: domain.ItemPotion, Name: "potion (+15 HP)", Heal: 15},
	}

	s.Apply(api.Intent{Kind: api.IntentOpenInventory})
	snap := s.Apply(api.Intent{Kind: api.IntentUseItem, Index: 0})

	if snap.State != "playing" {
		t.Errorf("Expected using an item to return to play, got %q", snap.State)
	}
	if s.player.HP != 25 {
		t.Errorf("Expected 25 HP, got %d", s.player.HP)
	}
	if len(s.player.Inventory) != 0 {
		t.Error("Expected the potion consumed")
	}
}

func TestUseItemOutOfRange(t *testing.T) {
	s := newPlayingSession()
	s.Apply(api.Intent{Kind: api.IntentOpenInventory})

	snap := s.Apply(api.Intent{Kind: api.IntentUseItem, Index: 3})
	if snap.State != "inventory" {
		t.Errorf("Expected an out-of-range selection to stay in the menu, got %q", snap.State)
	}
}

func TestScrollEffects(t *testing.T) {
	t.Run("heal", func(t *testing.T) {
		s := newPlayingSession()
		s.player.HP = 5
		s.player.Inventory = []*domain.Item{
			{Kind: domain.ItemScroll, Name: "scroll of healing", Effect: domain.EffectHeal},
		}
		s.Apply(api.Intent{Kind: api.IntentOpenInventory})
		s.Apply(api.Intent{Kind: api.IntentUseItem, Index: 0})
		if s.player.HP != s.player.MaxHP {
			t.Errorf("Expected full health, got %d/%d", s.player.HP, s.player.MaxHP)
		}
	})

	t.Run("buff attack", func(t *testing.T) {
		s := newPlayingSession()
		s.player.Inventory = []*domain.Item{
			{Kind: domain.ItemScroll, Name: "scroll of strength", Effect: domain.EffectBuffAtk},
		}
		s.Apply(api.Intent{Kind: api.IntentOpenInventory})
		s.Apply(api.Intent{Kind: api.IntentUseItem, Index: 0})
		if s.player.BaseAtk != 5 {
			t.Errorf("Expected base attack 5, got %d", s.player.BaseAtk)
		}
	})

	t.Run("buff defense", func(t *testing.T) {
		s := newPlayingSession()
		s.player.Inventory = []*domain.Item{
			{Kind: domain.ItemScroll, Name: "scroll of shielding", Effect: domain.EffectBuffDef},
		}
		s.Apply(api.Intent{Kind: api.IntentOpenInventory})
		s.Apply(api.Intent{Kind: api.IntentUseItem, Index: 0})
		if s.player.Defense != 2 {
			t.Errorf("Expected defense 2, got %d", s.player.Defense)
		}
	})

	t.Run("reveal", func(t *testing.T) {
		s := newPlayingSession()
		s.player.Inventory = []*domain.Item{
			{Kind: domain.ItemScroll, Name: "scroll of mapping", Effect: domain.EffectReveal},
		}
		s.Apply(api.Intent{Kind: api.IntentOpenInventory})
		s.Apply(api.Intent{Kind: api.IntentUseItem, Index: 0})
		for y := 0; y < s.level.Height; y++ {
			for x := 0; x < s.level.Width; x++ {
				if !s.level.Revealed[y][x] {
					t.Fatalf("Expected tile (%d,%d) revealed", x, y)
				}
			}
		}
	})

	t.Run("blast hits only visible monsters", func(t *testing.T) {
		s := newPlayingSession()
		visible := &domain.Monster{Name: "rat", HP: 1, MaxHP: 6, XP: 5, Pos: domain.Position{X: 6, Y: 5}}
		hidden := &domain.Monster{Name: "troll", HP: 35, MaxHP: 35, XP: 40, Pos: domain.Position{X: 9, Y: 1}}
		s.level.Monsters = []*domain.Monster{visible, hidden}
		s.level.Visible[1][9] = false
		s.player.Inventory = []*domain.Item{
			{Kind: domain.ItemScroll, Name: "scroll of fireball", Effect: domain.EffectDamage},
		}

		s.Apply(api.Intent{Kind: api.IntentOpenInventory})
		s.Apply(api.Intent{Kind: api.IntentUseItem, Index: 0})

		if s.player.Kills != 1 {
			t.Errorf("Expected the rat killed, kill count %d", s.player.Kills)
		}
		if hidden.HP != 35 {
			t.Errorf("Expected the unseen troll untouched, HP %d", hidden.HP)
		}
		if !strings.Contains(lastMessage(s), "blasts 1 creatures!") {
			t.Errorf("Expected a blast message for one target, got %q", lastMessage(s))
		}
	})
}

func TestShop(t *testing.T) {
	setup := func() *Session {
		s := newPlayingSession()
		s.level.Merchant = &domain.Merchant{
			Pos: domain.Position{X: 6, Y: 5},
			Stock: []domain.StockEntry{
				{Kind: domain.ItemPotion, Name: "potion (+14 HP)", Heal: 14, Price: 20},
				{Kind: domain.ItemWeapon, Name: "rusty dagger", Bonus: 2, Price: 26},
			},
		}
		s.Apply(api.Intent{Kind: api.IntentMove, Dx: 1})
		return s
	}

	t.Run("bumping the merchant opens the shop", func(t *testing.T) {
		s := setup()
		if s.State() != StateShop {
			t.Fatalf("Expected the shop, got %v", s.State())
		}
		if s.player.Pos != (domain.Position{X: 5, Y: 5}) {
			t.Error("Expected the player not to move onto the merchant")
		}
		snap := s.Snapshot()
		if len(snap.Stock) != 2 {
			t.Fatalf("Expected 2 stock lines, got %d", len(snap.Stock))
		}
		if snap.Stock[0].Affordable {
			t.Error("Expected a broke player to see an unaffordable price")
		}
	})

	t.Run("cannot afford", func(t *testing.T) {
		s := setup()
		s.player.Gold = 15

		s.Apply(api.Intent{Kind: api.IntentBuyItem, Index: 0})
		if s.player.Gold != 15 {
			t.Errorf("Expected gold untouched, got %d", s.player.Gold)
		}
		if len(s.level.Merchant.Stock) != 2 {
			t.Errorf("Expected stock untouched, got %d entries", len(s.level.Merchant.Stock))
		}
		if lastMessage(s) != "You can't afford that!" {
			t.Errorf("Expected an afford notice, got %q", lastMessage(s))
		}
	})

	t.Run("buy a potion", func(t *testing.T) {
		s := setup()
		s.player.Gold = 30

		s.Apply(api.Intent{Kind: api.IntentBuyItem, Index: 0})
		if s.player.Gold != 10 {
			t.Errorf("Expected 10 gold left, got %d", s.player.Gold)
		}
		if len(s.player.Inventory) != 1 {
			t.Errorf("Expected the potion in the pack, pack has %d", len(s.player.Inventory))
		}
		if len(s.level.Merchant.Stock) != 1 {
			t.Errorf("Expected the line sold out, stock has %d", len(s.level.Merchant.Stock))
		}
	})

	t.Run("wasted weapon purchase", func(t *testing.T) {
		s := setup()
		s.player.Gold = 30
		s.player.Equip("war axe", 7)

		s.Apply(api.Intent{Kind: api.IntentBuyItem, Index: 1})
		if s.player.Gold != 4 {
			t.Errorf("Expected the gold spent anyway, got %d", s.player.Gold)
		}
		if s.player.Weapon != "war axe" {
			t.Errorf("Expected to keep the war axe, got %q", s.player.Weapon)
		}
		if len(s.player.Inventory) != 0 {
			t.Error("Expected the wasted weapon not to enter the pack")
		}
		if !strings.Contains(lastMessage(s), "but your war axe is better") {
			t.Errorf("Expected a wasted-purchase notice, got %q", lastMessage(s))
		}
	})

	t.Run("close returns to play", func(t *testing.T) {
		s := setup()
		snap := s.Apply(api.Intent{Kind: api.IntentCloseMenu})
		if snap.State != "playing" {
			t.Errorf("Expected playing after leaving the shop, got %q", snap.State)
		}
	})
}

func TestMessageLogCap(t *testing.T) {
	s := newPlayingSession()
	for i := 1; i <= 7; i++ {
		s.msg("message %d", i)
	}
	if len(s.messages) != maxMessages {
		t.Fatalf("Expected %d messages, got %d", maxMessages, len(s.messages))
	}
	if s.messages[0] != "message 3" {
		t.Errorf("Expected the oldest entries dropped, log starts with %q", s.messages[0])
	}
	if s.messages[len(s.messages)-1] != "message 7" {
		t.Errorf("Expected the newest entry kept, log ends with %q", s.messages[len(s.messages)-1])
	}
}

func TestBlockedMoveCostsNoTurn(t *testing.T) {
	s := newPlayingSession()
	s.player.Pos = domain.Position{X: 1, Y: 1}
	// A visible monster that would strike if a turn passed.
	s.level.Monsters = []*domain.Monster{
		{Name: "goblin", Atk: 4, HP: 12, MaxHP: 12, Pos: domain.Position{X: 2, Y: 1}},
	}

	s.Apply(api.Intent{Kind: api.IntentMove, Dx: -1})
	if s.player.HP != 30 {
		t.Errorf("Expected a wall bump to cost no turn, HP %d", s.player.HP)
	}
	if len(s.messages) != 0 {
		t.Errorf("Expected a silent no-op, got %v", s.messages)
	}
}

func TestSnapshotShape(t *testing.T) {
	s := newPlayingSession()
	snap := s.Snapshot()

	if snap.Grid.Width != s.cfg.MapWidth || snap.Grid.Height != s.cfg.MapHeight {
		t.Errorf("Expected grid meta %dx%d, got %dx%d",
			s.cfg.MapWidth, s.cfg.MapHeight, snap.Grid.Width, snap.Grid.Height)
	}
	if len(snap.Entities) == 0 {
		t.Fatal("Expected at least the player entity")
	}
	last := snap.Entities[len(snap.Entities)-1]
	if last.Glyph != "@" {
		t.Errorf("Expected the player drawn last, got %q", last.Glyph)
	}
	if len(snap.Tiles) == 0 {
		t.Error("Expected revealed tiles in the snapshot")
	}
	for _, tile := range snap.Tiles {
		if !s.level.Revealed[tile.Y][tile.X] {
			t.Fatalf("Expected only revealed tiles, got (%d,%d)", tile.X, tile.Y)
		}
	}
	if snap.Score != 0 {
		t.Error("Expected no score outside the win screen")
	}
}
