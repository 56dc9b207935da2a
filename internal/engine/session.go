package engine

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cosmo-mac/cosmos-dungeon/internal/domain"
	"github.com/cosmo-mac/cosmos-dungeon/internal/systems"
	"github.com/cosmo-mac/cosmos-dungeon/pkg/api"
	"github.com/cosmo-mac/cosmos-dungeon/pkg/dungeon"
	"github.com/cosmo-mac/cosmos-dungeon/pkg/logger"
)

// State enumerates the session state machine:
// Title -> Playing -> {Inventory, Shop} -> Playing,
// Playing -> Dead -> Title, Playing -> Win -> Title.
type State uint8

const (
	StateTitle State = iota
	StatePlaying
	StateInventory
	StateShop
	StateDead
	StateWin
)

func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateInventory:
		return "inventory"
	case StateShop:
		return "shop"
	case StateDead:
		return "dead"
	case StateWin:
		return "win"
	}
	return "unknown"
}

// maxMessages caps the recent-message log; oldest entries drop first.
const maxMessages = 5

// Session owns all mutable game state (player, current level, RNG
// stream) and resolves one intent at a time. It is strictly
// single-threaded: callers must serialize Apply.
type Session struct {
	ID uuid.UUID

	cfg     Config
	catalog *domain.Catalog
	rng     *rand.Rand
	log     *logrus.Entry

	state    State
	player   *domain.Player
	level    *domain.Level
	messages []string
	done     bool
}

// NewSession creates a session sitting at the title screen.
func NewSession(cfg Config, cat *domain.Catalog) *Session {
	id := uuid.New()
	return &Session{
		ID:      id,
		cfg:     cfg,
		catalog: cat,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "session",
			"session":   id.String()[:8],
		}),
		state: StateTitle,
	}
}

// State returns the current state tag.
func (s *Session) State() State { return s.state }

// Done reports whether the player asked to quit.
func (s *Session) Done() bool { return s.done }

// Apply resolves one player intent and returns the resulting snapshot.
// Invalid intents for the current state are silent no-ops; game-rule
// rejections surface as messages, never as errors.
func (s *Session) Apply(in api.Intent) *api.Snapshot {
	if in.Kind == api.IntentQuit {
		s.done = true
		return s.Snapshot()
	}

	switch s.state {
	case StateTitle:
		// Any intent leaves the title screen.
		s.startRun()
	case StateDead, StateWin:
		// Any intent returns to the title.
		s.state = StateTitle
	case StatePlaying:
		s.applyPlaying(in)
	case StateInventory:
		s.applyInventory(in)
	case StateShop:
		s.applyShop(in)
	}

	return s.Snapshot()
}

// startRun resets the player and generates depth 1.
func (s *Session) startRun() {
	s.player = domain.NewPlayer()
	s.messages = nil
	s.state = StatePlaying
	s.enterLevel(1)
	s.log.WithField("seed", s.cfg.Seed).Info("Run started")
}

// enterLevel generates a level for the given depth and drops the player
// in the center of its first room. The previous level is discarded;
// there is no re-entry.
func (s *Session) enterLevel(depth int) {
	s.level = dungeon.Generate(s.cfg.MapWidth, s.cfg.MapHeight, depth, s.catalog, s.rng)
	s.player.Depth = depth
	if depth > s.player.MaxDepth {
		s.player.MaxDepth = depth
	}
	if len(s.level.Rooms) > 0 {
		s.player.Pos = s.level.Rooms[0].Center()
	}
	systems.ComputeFOV(s.level, s.player.Pos.X, s.player.Pos.Y, s.cfg.FOVRadius)
	s.msg("You descend to depth %d.", depth)
}

// applyPlaying resolves intents during normal play.
func (s *Session) applyPlaying(in api.Intent) {
	switch in.Kind {
	case api.IntentMove:
		s.tryMove(in.Dx, in.Dy)
	case api.IntentWait:
		s.monsterSweep()
	case api.IntentDescend:
		s.tryDescend()
	case api.IntentOpenInventory:
		s.state = StateInventory
	}
}

// tryMove resolves a movement intent by bump priority:
// merchant > monster > walkable > blocked.
func (s *Session) tryMove(dx, dy int) {
	res := systems.ResolveMove(s.level, s.player.Pos, dx, dy)
	switch {
	case res.Merchant:
		// Browsing costs no turn.
		s.state = StateShop

	case res.Monster != nil:
		s.attack(res.Monster)
		if s.state == StatePlaying {
			s.monsterSweep()
		}

	case res.HasMoved:
		s.player.Pos = res.NewPos
		systems.ComputeFOV(s.level, s.player.Pos.X, s.player.Pos.Y, s.cfg.FOVRadius)
		if it := s.level.ItemAt(res.NewPos.X, res.NewPos.Y); it != nil {
			s.pickup(it)
		}
		s.monsterSweep()

	default:
		// Walking into a wall is a silent no-op; no turn passes.
	}
}

// attack resolves one player strike.
func (s *Session) attack(m *domain.Monster) {
	out := systems.PlayerAttack(s.player, m, s.level, s.catalog, s.rng)
	if !out.Killed {
		s.msg("You hit the %s for %d dmg. (%d/%d)", m.Name, out.Damage, out.RemainingHP, m.MaxHP)
		return
	}
	s.msg("You slay the %s! (+%d XP)", m.Name, out.XPGained)
	if out.LevelsGained > 0 {
		s.msg("Level up! You are now level %d!", s.player.Level)
	}
	if out.Won {
		s.state = StateWin
		s.log.WithField("score", s.player.Score()).Info("Run won")
	}
}

// pickup applies auto-pickup on the tile the player just entered.
// Gold is consumed on the spot; a strictly better weapon auto-equips
// and is never stored; everything else goes into the pack.
func (s *Session) pickup(it *domain.Item) {
	switch it.Kind {
	case domain.ItemGold:
		s.player.Gold += it.Amount
		s.msg("Found %d gold! (Total: %d)", it.Amount, s.player.Gold)

	case domain.ItemWeapon:
		if it.Bonus > s.player.AtkBonus {
			s.player.Equip(it.Name, it.Bonus)
			s.msg("Equipped %s! (ATK +%d)", it.Name, it.Bonus)
		} else {
			s.player.Inventory = append(s.player.Inventory, it)
			s.msg("Picked up %s, but your %s is better.", it.Name, s.player.Weapon)
		}

	case domain.ItemPotion, domain.ItemScroll:
		s.player.Inventory = append(s.player.Inventory, it)
		s.msg("Picked up %s. (i to use)", it.Name)
	}
	s.level.RemoveItem(it)
}

// tryDescend takes the stairs, or complains. Neither outcome costs a turn.
func (s *Session) tryDescend() {
	if s.player.Pos != s.level.Stairs {
		s.msg("There are no stairs here.")
		return
	}
	s.enterLevel(s.player.Depth + 1)
}

// monsterSweep runs the AI turn that follows every turn-consuming
// player action.
func (s *Session) monsterSweep() {
	msgs, died := systems.MonsterSweep(s.level, s.player, s.rng)
	for _, m := range msgs {
		s.msg("%s", m)
	}
	if died {
		s.state = StateDead
	}
}

// applyInventory resolves intents on the inventory screen.
func (s *Session) applyInventory(in api.Intent) {
	switch in.Kind {
	case api.IntentUseItem:
		if in.Index < 0 || in.Index >= len(s.player.Inventory) {
			return // out-of-range selection is a no-op
		}
		s.useItem(in.Index)
		s.state = StatePlaying
	case api.IntentCloseMenu, api.IntentOpenInventory:
		s.state = StatePlaying
	}
}

// useItem consumes the inventory entry at idx.
func (s *Session) useItem(idx int) {
	it := s.player.Inventory[idx]
	switch it.Kind {
	case domain.ItemPotion:
		s.player.Heal(it.Heal)
		s.msg("You drink the potion. (+%d HP, now %d/%d)", it.Heal, s.player.HP, s.player.MaxHP)

	case domain.ItemScroll:
		s.readScroll(it)

	case domain.ItemWeapon:
		// Stashed weapons equip only when they beat the current bonus.
		if it.Bonus <= s.player.AtkBonus {
			s.msg("Your %s is better.", s.player.Weapon)
			return // not consumed
		}
		s.player.Equip(it.Name, it.Bonus)
		s.msg("You equip the %s. (ATK +%d)", it.Name, it.Bonus)

	case domain.ItemGold:
		// Gold never reaches the inventory; consume defensively.
		s.player.Gold += it.Amount
	}
	s.player.RemoveInventoryItem(idx)
}

// readScroll applies a scroll effect.
func (s *Session) readScroll(it *domain.Item) {
	switch it.Effect {
	case domain.EffectDamage:
		s.blastVisible(it.Name)
	case domain.EffectHeal:
		s.player.HP = s.player.MaxHP
		s.msg("The scroll fully restores your health!")
	case domain.EffectBuffAtk:
		s.player.BaseAtk += 2
		s.msg("You feel stronger! (ATK now %d)", s.player.Atk())
	case domain.EffectBuffDef:
		s.player.Defense += 2
		s.msg("A magical shield surrounds you! (DEF now %d)", s.player.Defense)
	case domain.EffectReveal:
		s.level.RevealAll()
		s.msg("The dungeon layout is revealed!")
	}
}

// blastVisible damages every currently visible monster for uniform
// [10,25] each. Kills are collected first and applied after the loop so
// the monster list never mutates under iteration.
func (s *Session) blastVisible(scrollName string) {
	var killed []*domain.Monster
	hit := 0
	for _, m := range s.level.Monsters {
		if !s.level.Visible[m.Pos.Y][m.Pos.X] {
			continue
		}
		m.HP -= 10 + s.rng.Intn(16)
		hit++
		if m.HP <= 0 {
			killed = append(killed, m)
		}
	}
	for _, m := range killed {
		s.level.RemoveMonster(m)
		s.player.Kills++
		s.player.GainXP(m.XP)
	}
	s.msg("The %s blasts %d creatures!", scrollName, hit)
}

// applyShop resolves intents on the shop screen.
func (s *Session) applyShop(in api.Intent) {
	switch in.Kind {
	case api.IntentBuyItem:
		s.buyItem(in.Index)
	case api.IntentCloseMenu:
		s.state = StatePlaying
	}
}

// buyItem purchases a stock entry. An unaffordable entry leaves gold
// and stock untouched and surfaces a notice. A weapon no better than
// the equipped one is still paid for and wasted; that quirk is part of
// the game.
func (s *Session) buyItem(idx int) {
	stock := s.level.Merchant.Stock
	if idx < 0 || idx >= len(stock) {
		return
	}
	entry := stock[idx]
	if s.player.Gold < entry.Price {
		s.msg("You can't afford that!")
		return
	}
	s.player.Gold -= entry.Price

	if entry.Kind == domain.ItemWeapon {
		if entry.Bonus > s.player.AtkBonus {
			s.player.Equip(entry.Name, entry.Bonus)
			s.msg("Bought and equipped %s!", entry.Name)
		} else {
			s.msg("Bought %s but your %s is better.", entry.Name, s.player.Weapon)
		}
	} else {
		s.player.Inventory = append(s.player.Inventory, entry.Item())
		s.msg("Bought %s.", entry.Name)
	}

	s.level.Merchant.Stock = append(stock[:idx], stock[idx+1:]...)
}

// msg appends to the recent-message log, dropping the oldest entry
// beyond the cap.
func (s *Session) msg(format string, args ...any) {
	s.messages = append(s.messages, fmt.Sprintf(format, args...))
	if len(s.messages) > maxMessages {
		s.messages = s.messages[len(s.messages)-maxMessages:]
	}
}
