package domain

// Static definition tables. They are built once at startup by
// DefaultCatalog and passed by reference into the generator and the
// session; nothing reads them as ambient globals.

// MonsterDef is one row of the difficulty-ordered monster table.
type MonsterDef struct {
	Glyph string
	Name  string
	Color string
	HP    int
	Atk   int
	XP    int
}

// WeaponDef is one row of the tier-ordered weapon table.
type WeaponDef struct {
	Name  string
	Bonus int
}

// ScrollEffect enumerates what a scroll does when read.
type ScrollEffect uint8

const (
	EffectDamage ScrollEffect = iota
	EffectHeal
	EffectBuffAtk
	EffectBuffDef
	EffectReveal
)

// Description returns the short effect blurb shown in menus.
func (e ScrollEffect) Description() string {
	switch e {
	case EffectDamage:
		return "damages all visible enemies"
	case EffectHeal:
		return "fully restores HP"
	case EffectBuffAtk:
		return "+2 ATK permanently"
	case EffectBuffDef:
		return "+2 DEF permanently"
	case EffectReveal:
		return "reveals dungeon map"
	}
	return ""
}

// ScrollDef is one row of the scroll table.
type ScrollDef struct {
	Name   string
	Effect ScrollEffect
}

// Catalog bundles the immutable content tables the game is built from.
type Catalog struct {
	Monsters []MonsterDef
	Weapons  []WeaponDef
	Scrolls  []ScrollDef
}

// DragonTier is the index of the final-boss monster row.
// Slaying it at depth >= WinDepth ends the run in victory.
func (c *Catalog) DragonTier() int {
	return len(c.Monsters) - 1
}

// WinDepth is the minimum depth at which slaying a dragon wins the game.
const WinDepth = 8

// DefaultCatalog returns the standard content tables.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Monsters: []MonsterDef{
			{Glyph: "r", Name: "rat", Color: ColorMonster, HP: 6, Atk: 2, XP: 5},
			{Glyph: "s", Name: "snake", Color: ColorMonster, HP: 8, Atk: 3, XP: 8},
			{Glyph: "g", Name: "goblin", Color: ColorMonster, HP: 12, Atk: 4, XP: 12},
			{Glyph: "k", Name: "kobold", Color: ColorMonster, HP: 15, Atk: 5, XP: 16},
			{Glyph: "o", Name: "orc", Color: ColorDanger, HP: 22, Atk: 7, XP: 25},
			{Glyph: "S", Name: "skeleton", Color: ColorDefault, HP: 20, Atk: 6, XP: 22},
			{Glyph: "T", Name: "troll", Color: ColorDanger, HP: 35, Atk: 9, XP: 40},
			{Glyph: "W", Name: "wraith", Color: ColorDanger, HP: 28, Atk: 11, XP: 50},
			{Glyph: "D", Name: "dragon", Color: ColorDanger, HP: 60, Atk: 15, XP: 100},
		},
		Weapons: []WeaponDef{
			{Name: "rusty dagger", Bonus: 2},
			{Name: "short sword", Bonus: 4},
			{Name: "mace", Bonus: 6},
			{Name: "long sword", Bonus: 8},
			{Name: "battle axe", Bonus: 10},
			{Name: "war hammer", Bonus: 12},
			{Name: "enchanted blade", Bonus: 15},
		},
		Scrolls: []ScrollDef{
			{Name: "fireball", Effect: EffectDamage},
			{Name: "lightning", Effect: EffectDamage},
			{Name: "healing", Effect: EffectHeal},
			{Name: "strength", Effect: EffectBuffAtk},
			{Name: "shield", Effect: EffectBuffDef},
			{Name: "mapping", Effect: EffectReveal},
		},
	}
}

// Color classes. The renderer maps these to its own palette; the core
// only labels entities with them.
const (
	ColorDefault  = "default"
	ColorPlayer   = "player"
	ColorMonster  = "monster"
	ColorItem     = "item"
	ColorGold     = "gold"
	ColorStairs   = "stairs"
	ColorDanger   = "danger"
	ColorHeal     = "heal"
	ColorMerchant = "merchant"
)
