package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/cosmo-mac/cosmos-dungeon/internal/domain"
)

var (
	styleDefault  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleMonster  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleDanger   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleItem     = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleGold     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStairs   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHeal     = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleMerchant = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleUI       = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// styleFor maps the core's color class names to the terminal palette.
func styleFor(color string) tcell.Style {
	switch color {
	case domain.ColorPlayer:
		return stylePlayer
	case domain.ColorMonster:
		return styleMonster
	case domain.ColorDanger:
		return styleDanger
	case domain.ColorItem:
		return styleItem
	case domain.ColorGold:
		return styleGold
	case domain.ColorStairs:
		return styleStairs
	case domain.ColorHeal:
		return styleHeal
	case domain.ColorMerchant:
		return styleMerchant
	default:
		return styleDefault
	}
}
