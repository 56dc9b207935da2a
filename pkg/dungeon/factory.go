package dungeon

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/cosmo-mac/cosmos-dungeon/internal/domain"
)

// spawnMonster instantiates a catalog row at a position, scaling HP and
// attack with depth. Scales truncate to int on purpose.
func spawnMonster(cat *domain.Catalog, tier, depth int, pos domain.Position) *domain.Monster {
	def := cat.Monsters[tier]
	hpScale := 1 + float64(depth-1)*0.15
	atkScale := 1 + float64(depth-1)*0.1
	return &domain.Monster{
		ID:    uuid.New(),
		Pos:   pos,
		Glyph: def.Glyph,
		Name:  def.Name,
		Color: def.Color,
		HP:    int(float64(def.HP) * hpScale),
		MaxHP: int(float64(def.HP) * hpScale),
		Atk:   int(float64(def.Atk) * atkScale),
		XP:    def.XP,
		Tier:  tier,
	}
}

// rollItem picks a floor item by cumulative probability bands:
// potion 35%, weapon 25%, gold 25%, scroll 15%.
func rollItem(cat *domain.Catalog, depth int, pos domain.Position, rng *rand.Rand) *domain.Item {
	roll := rng.Float64()
	switch {
	case roll < 0.35:
		heal := randRange(rng, 8, 20)
		return &domain.Item{
			ID:    uuid.New(),
			Pos:   pos,
			Kind:  domain.ItemPotion,
			Name:  fmt.Sprintf("potion (+%d HP)", heal),
			Color: domain.ColorHeal,
			Heal:  heal,
		}
	case roll < 0.6:
		tier := min(rng.Intn(depth+1), len(cat.Weapons)-1)
		def := cat.Weapons[tier]
		return &domain.Item{
			ID:    uuid.New(),
			Pos:   pos,
			Kind:  domain.ItemWeapon,
			Name:  def.Name,
			Color: domain.ColorItem,
			Bonus: def.Bonus,
		}
	case roll < 0.85:
		amount := randRange(rng, 5, 15+depth*5)
		return &domain.Item{
			ID:     uuid.New(),
			Pos:    pos,
			Kind:   domain.ItemGold,
			Name:   fmt.Sprintf("%d gold", amount),
			Color:  domain.ColorGold,
			Amount: amount,
		}
	default:
		def := cat.Scrolls[rng.Intn(len(cat.Scrolls))]
		return &domain.Item{
			ID:     uuid.New(),
			Pos:    pos,
			Kind:   domain.ItemScroll,
			Name:   "scroll of " + def.Name,
			Color:  domain.ColorItem,
			Effect: def.Effect,
		}
	}
}

// merchantStock builds the fixed shop inventory for a depth:
// 1-2 potions, exactly one weapon, 1-2 scrolls. Merchant potions are
// stronger than floor finds and scale with depth.
func merchantStock(cat *domain.Catalog, depth int, rng *rand.Rand) []domain.StockEntry {
	var stock []domain.StockEntry

	for i := 0; i < randRange(rng, 1, 2); i++ {
		heal := randRange(rng, 10, 20) + depth*2
		stock = append(stock, domain.StockEntry{
			Kind:  domain.ItemPotion,
			Name:  fmt.Sprintf("potion (+%d HP)", heal),
			Color: domain.ColorHeal,
			Heal:  heal,
			Price: randRange(rng, 15, 25),
		})
	}

	tier := min(randRange(rng, 0, depth+1), len(cat.Weapons)-1)
	weapon := cat.Weapons[tier]
	stock = append(stock, domain.StockEntry{
		Kind:  domain.ItemWeapon,
		Name:  weapon.Name,
		Color: domain.ColorItem,
		Bonus: weapon.Bonus,
		Price: 20 + weapon.Bonus*3,
	})

	for i := 0; i < randRange(rng, 1, 2); i++ {
		def := cat.Scrolls[rng.Intn(len(cat.Scrolls))]
		stock = append(stock, domain.StockEntry{
			Kind:   domain.ItemScroll,
			Name:   "scroll of " + def.Name,
			Color:  domain.ColorItem,
			Effect: def.Effect,
			Price:  randRange(rng, 30, 50),
		})
	}

	return stock
}
