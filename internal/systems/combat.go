package systems

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/cosmo-mac/cosmos-dungeon/internal/domain"
	"github.com/cosmo-mac/cosmos-dungeon/pkg/logger"
)

// AttackOutcome reports the result of a player strike for messaging and
// state transitions.
type AttackOutcome struct {
	Damage       int
	RemainingHP  int
	Killed       bool
	XPGained     int
	LevelsGained int
	// Won is set when the slain monster is dragon-tier at winning depth.
	Won bool
}

// PlayerAttack resolves one player strike against a monster.
// Damage = max(1, atk - uniform[0,2]). On a kill the monster is removed
// from the level, the kill counter increments, and XP is granted (which
// may cascade through several level-ups).
func PlayerAttack(p *domain.Player, m *domain.Monster, l *domain.Level, cat *domain.Catalog, rng *rand.Rand) AttackOutcome {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"target":    m.Name,
		"tier":      m.Tier,
	})

	dmg := p.Atk() - rng.Intn(3)
	if dmg < 1 {
		dmg = 1
	}
	m.HP -= dmg

	out := AttackOutcome{Damage: dmg, RemainingHP: m.HP}
	if m.HP <= 0 {
		out.Killed = true
		out.RemainingHP = 0
		l.RemoveMonster(m)
		p.Kills++
		out.XPGained = m.XP
		out.LevelsGained = p.GainXP(m.XP)
		out.Won = m.Tier == cat.DragonTier() && p.Depth >= domain.WinDepth
	}

	combatLogger.WithFields(logrus.Fields{
		"damage":        dmg,
		"killed":        out.Killed,
		"levels_gained": out.LevelsGained,
		"won":           out.Won,
	}).Debug("Player attack resolved")

	return out
}

// DefenseOutcome reports the result of a monster strike on the player.
type DefenseOutcome struct {
	Damage int
	Died   bool
}

// MonsterAttack resolves one monster strike against the player.
// Damage = max(1, monster atk - defense - uniform[0,2]); even a fully
// armored player always takes at least 1.
func MonsterAttack(m *domain.Monster, p *domain.Player, rng *rand.Rand) DefenseOutcome {
	dmg := m.Atk - p.Defense - rng.Intn(3)
	if dmg < 1 {
		dmg = 1
	}
	p.HP -= dmg

	out := DefenseOutcome{Damage: dmg}
	if p.HP <= 0 {
		p.HP = 0
		out.Died = true
		logger.Log.WithFields(logrus.Fields{
			"component": "combat_system",
			"killer":    m.Name,
			"depth":     p.Depth,
		}).Info("Player died")
	}
	return out
}
