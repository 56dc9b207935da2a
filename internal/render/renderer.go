// Package render draws api.Snapshots onto a tcell screen. It holds no
// game state of its own; everything it shows comes from the snapshot.
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/cosmo-mac/cosmos-dungeon/pkg/api"
)

const hpBarWidth = 15

// Draw renders one snapshot. It clears and shows the screen itself, so
// the caller only needs to hand over the latest snapshot after each intent.
func Draw(scr tcell.Screen, snap *api.Snapshot) {
	scr.Clear()
	switch snap.State {
	case "title":
		drawTitle(scr)
	case "playing":
		drawPlaying(scr, snap)
	case "inventory":
		drawInventory(scr, snap)
	case "shop":
		drawShop(scr, snap)
	case "dead":
		drawDead(scr, snap)
	case "win":
		drawWin(scr, snap)
	}
	scr.Show()
}

// putText writes a string one rune per column, stopping at the right edge.
func putText(scr tcell.Screen, x, y int, s string, st tcell.Style) {
	sw, _ := scr.Size()
	for _, r := range s {
		if x >= sw {
			break
		}
		scr.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
}

// putCentered writes a horizontally centered line.
func putCentered(scr tcell.Screen, y int, s string, st tcell.Style) {
	sw, _ := scr.Size()
	x := (sw - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	putText(scr, x, y, s, st)
}

// firstRune returns the first rune of a glyph string.
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

func drawPlaying(scr tcell.Screen, snap *api.Snapshot) {
	sw, _ := scr.Size()
	ox := (sw - snap.Grid.Width) / 2
	if ox < 0 {
		ox = 0
	}
	oy := 1

	for _, t := range snap.Tiles {
		st := styleWall
		if t.Visible {
			switch t.Glyph {
			case ">":
				st = styleStairs
			case ".":
				st = styleDefault
			}
		} else {
			st = styleDim
		}
		scr.SetContent(ox+t.X, oy+t.Y, firstRune(t.Glyph), nil, st)
	}

	// Entities arrive in draw order, player last.
	for _, e := range snap.Entities {
		scr.SetContent(ox+e.X, oy+e.Y, firstRune(e.Glyph), nil, styleFor(e.Color))
	}

	drawStatus(scr, snap, oy+snap.Grid.Height+1)

	if len(snap.Messages) > 0 {
		tail := snap.Messages
		if len(tail) > 3 {
			tail = tail[len(tail)-3:]
		}
		line := strings.Join(tail, " | ")
		if len(line) > sw-1 {
			line = line[:sw-1]
		}
		putText(scr, 0, 0, line, styleUI)
	}
}

func drawStatus(scr tcell.Screen, snap *api.Snapshot, y int) {
	p := snap.Player
	filled := 0
	if p.MaxHP > 0 {
		filled = hpBarWidth * p.HP / p.MaxHP
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", hpBarWidth-filled)

	st := styleHeal
	if p.HP*10 <= p.MaxHP*3 {
		st = styleDanger
	}

	status := fmt.Sprintf(" HP [%s] %d/%d  ATK:%d  DEF:%d  LVL:%d  XP:%d/%d  Gold:%d  Depth:%d  Weapon:%s ",
		bar, p.HP, p.MaxHP, p.Atk, p.Defense, p.Level, p.XP, p.XPToNext,
		p.Gold, p.Depth, p.Weapon)
	putText(scr, 0, y, status, st)
}

var titleArt = []string{
	`  ___                       _        `,
	` / __|___ ___ _ __  ___  _( )___     `,
	`| (__/ _ (_-<| '  \/ _ \(_)/(_-<     `,
	` \___\___/__/|_|_|_\___/   /__/      `,
	`                                     `,
	` ___                                  `,
	`|   \ _  _ _ _  __ _ ___ ___ _ _      `,
	`| |) | || | ' \/ _` + "`" + ` / -_) _ \ ' \    `,
	`|___/ \_,_|_||_\__, \___\___/_||_|   `,
	`               |___/                  `,
}

func drawTitle(scr tcell.Screen) {
	_, sh := scr.Size()
	startY := sh/2 - 8
	if startY < 0 {
		startY = 0
	}
	for i, line := range titleArt {
		putCentered(scr, startY+i, line, stylePlayer.Bold(true))
	}
	instructions := []string{
		"",
		"A roguelike dungeon crawler",
		"",
		"Move: arrow keys / WASD / hjkl",
		"Inventory: i    Stairs: > or ENTER",
		"Wait: .  or  5     Quit: q",
		"",
		"Press any key to begin...",
	}
	for i, line := range instructions {
		putCentered(scr, startY+len(titleArt)+i, line, styleUI)
	}
}

func drawInventory(scr tcell.Screen, snap *api.Snapshot) {
	_, sh := scr.Size()
	putText(scr, 2, 1, "=== INVENTORY ===", styleUI.Bold(true))

	if len(snap.Inventory) == 0 {
		putText(scr, 4, 3, "Your pack is empty.", styleUI)
	}
	for i, it := range snap.Inventory {
		line := fmt.Sprintf("[%c] %s %s", 'a'+i, it.Glyph, it.Name)
		if it.Desc != "" {
			line += "  " + it.Desc
		}
		putText(scr, 4, 3+i, line, styleFor(it.Color))
	}
	putText(scr, 2, sh-2, "Press a letter to use, ESC/i to close", styleUI)
}

func drawShop(scr tcell.Screen, snap *api.Snapshot) {
	_, sh := scr.Size()
	putText(scr, 2, 1, "=== MERCHANT'S SHOP ===", styleMerchant.Bold(true))
	putText(scr, 2, 2, fmt.Sprintf("Your gold: %d", snap.Player.Gold), styleGold)

	for i, entry := range snap.Stock {
		line := fmt.Sprintf("[%c] %s %s", 'a'+i, entry.Glyph, entry.Name)
		if entry.Desc != "" {
			line += "  " + entry.Desc
		}
		line += fmt.Sprintf("  - %dg", entry.Price)
		st := styleUI
		if !entry.Affordable {
			st = styleDanger
		}
		putText(scr, 4, 4+i, line, st)
	}
	putText(scr, 2, sh-2, "Press a letter to buy, ESC to leave", styleUI)
}

var deathArt = []string{
	`  _____  _____  _____  `,
	` |  __ \|_   _||  __ \ `,
	` | |__) | | |  | |__) |`,
	` |  _  /  | |  |  ___/ `,
	` | | \ \ _| |_ | |     `,
	` |_|  \_\_____||_|     `,
}

func drawDead(scr tcell.Screen, snap *api.Snapshot) {
	_, sh := scr.Size()
	p := snap.Player
	lines := append([]string{}, deathArt...)
	lines = append(lines,
		"",
		"YOU HAVE PERISHED",
		"",
		fmt.Sprintf("Level: %d   Depth: %d   Kills: %d   Gold: %d",
			p.Level, p.MaxDepth, p.Kills, p.Gold),
		"",
		"Press SPACE to try again, Q to quit",
	)
	sy := sh/2 - len(lines)/2
	if sy < 0 {
		sy = 0
	}
	for i, line := range lines {
		st := styleUI
		if i < len(deathArt) {
			st = styleDanger
		}
		putCentered(scr, sy+i, line, st.Bold(true))
	}
}

var winArt = []string{
	` __     _____ _____ _____ ___  ______   __`,
	` \ \   / /_ _/ ____|_   _/ _ \|  _ \ \ / /`,
	`  \ \ / / | | |      | || | | | |_) \ V / `,
	`   \ V /  | | |      | || | | |  _ < \ /  `,
	`    \ /  _| | |____ _| || |_| | | \ \ |   `,
	`     \/  |___|_____|_____\___/|_|  \_\|   `,
}

func drawWin(scr tcell.Screen, snap *api.Snapshot) {
	_, sh := scr.Size()
	p := snap.Player
	lines := append([]string{}, winArt...)
	lines = append(lines,
		"",
		"THE DRAGON IS SLAIN!",
		"You have conquered Cosmo's Dungeon!",
		"",
		fmt.Sprintf("Level: %d   Max Depth: %d   Kills: %d   Gold: %d",
			p.Level, p.MaxDepth, p.Kills, p.Gold),
		"",
		fmt.Sprintf("Final Score: %d", snap.Score),
		"",
		"Press SPACE to play again, Q to quit",
	)
	sy := sh/2 - len(lines)/2
	if sy < 0 {
		sy = 0
	}
	for i, line := range lines {
		st := styleUI
		if i < len(winArt) {
			st = styleGold
		}
		putCentered(scr, sy+i, line, st.Bold(true))
	}
}
