package domain

// Player persists across the whole session and is reset only by starting
// a new run.
type Player struct {
	Pos Position `json:"pos"`

	HP      int `json:"hp"`
	MaxHP   int `json:"maxHp"`
	BaseAtk int `json:"baseAtk"`
	// AtkBonus comes from the equipped weapon; Atk() is the derived total.
	AtkBonus int `json:"atkBonus"`
	Defense  int `json:"defense"`

	XP    int `json:"xp"`
	Level int `json:"level"`
	Gold  int `json:"gold"`

	Weapon string `json:"weapon"`
	Kills  int    `json:"kills"`

	Depth    int `json:"depth"`
	MaxDepth int `json:"maxDepth"`

	Inventory []*Item `json:"inventory"`
}

// NewPlayer returns a fresh level-1 adventurer armed with fists.
func NewPlayer() *Player {
	return &Player{
		HP:       30,
		MaxHP:    30,
		BaseAtk:  3,
		Level:    1,
		Weapon:   "fists",
		Depth:    1,
		MaxDepth: 1,
	}
}

// Atk is the derived attack value.
func (p *Player) Atk() int {
	return p.BaseAtk + p.AtkBonus
}

// XPToNext is the threshold to reach the next level. Fixed formula.
func (p *Player) XPToNext() int {
	return p.Level * 20
}

// GainXP adds experience and resolves level-ups. A single gain can
// trigger several level-ups; the threshold is recomputed against the new
// level each iteration. Every level-up raises max HP by 8, fully heals,
// and raises base attack by 1. Returns the number of levels gained.
func (p *Player) GainXP(amount int) int {
	p.XP += amount
	levels := 0
	for p.XP >= p.XPToNext() {
		p.XP -= p.XPToNext()
		p.Level++
		p.MaxHP += 8
		p.HP = p.MaxHP
		p.BaseAtk++
		levels++
	}
	return levels
}

// Heal restores hit points, clamped to max HP.
func (p *Player) Heal(amount int) int {
	before := p.HP
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	return p.HP - before
}

// Equip replaces the current weapon. Callers decide whether the new one
// is actually better; Equip itself just swaps.
func (p *Player) Equip(name string, bonus int) {
	p.Weapon = name
	p.AtkBonus = bonus
}

// RemoveInventoryItem drops the entry at idx, preserving order.
// Out-of-range indices are a no-op.
func (p *Player) RemoveInventoryItem(idx int) {
	if idx < 0 || idx >= len(p.Inventory) {
		return
	}
	p.Inventory = append(p.Inventory[:idx], p.Inventory[idx+1:]...)
}

// Score is the final run score, reported on victory.
func (p *Player) Score() int {
	return p.Kills*10 + p.Gold + p.MaxDepth*50 + p.Level*25
}
