package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/cosmo-mac/cosmos-dungeon/pkg/api"
)

// KeyToIntent maps a key event to an intent for the given session state.
// The second return is false when the key means nothing in this state.
func KeyToIntent(state string, ev *tcell.EventKey) (api.Intent, bool) {
	switch state {
	case "title":
		if ev.Rune() == 'q' || ev.Key() == tcell.KeyCtrlC {
			return api.Intent{Kind: api.IntentQuit}, true
		}
		return api.Intent{Kind: api.IntentStart}, true

	case "dead", "win":
		if ev.Rune() == 'q' || ev.Rune() == 'Q' || ev.Key() == tcell.KeyCtrlC {
			return api.Intent{Kind: api.IntentQuit}, true
		}
		return api.Intent{Kind: api.IntentStart}, true

	case "playing":
		return playingIntent(ev)

	case "inventory":
		if ev.Key() == tcell.KeyEscape || ev.Rune() == 'i' {
			return api.Intent{Kind: api.IntentCloseMenu}, true
		}
		if idx, ok := letterIndex(ev); ok {
			return api.Intent{Kind: api.IntentUseItem, Index: idx}, true
		}

	case "shop":
		if ev.Key() == tcell.KeyEscape {
			return api.Intent{Kind: api.IntentCloseMenu}, true
		}
		if idx, ok := letterIndex(ev); ok {
			return api.Intent{Kind: api.IntentBuyItem, Index: idx}, true
		}
	}
	return api.Intent{}, false
}

func playingIntent(ev *tcell.EventKey) (api.Intent, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return move(0, -1)
	case tcell.KeyDown:
		return move(0, 1)
	case tcell.KeyLeft:
		return move(-1, 0)
	case tcell.KeyRight:
		return move(1, 0)
	case tcell.KeyEnter:
		return api.Intent{Kind: api.IntentDescend}, true
	case tcell.KeyCtrlC:
		return api.Intent{Kind: api.IntentQuit}, true
	}
	switch ev.Rune() {
	case 'w', 'k':
		return move(0, -1)
	case 's', 'j':
		return move(0, 1)
	case 'a', 'h':
		return move(-1, 0)
	case 'd', 'l':
		return move(1, 0)
	case 'y':
		return move(-1, -1)
	case 'u':
		return move(1, -1)
	case 'b':
		return move(-1, 1)
	case 'n':
		return move(1, 1)
	case '>':
		return api.Intent{Kind: api.IntentDescend}, true
	case '.', '5':
		return api.Intent{Kind: api.IntentWait}, true
	case 'i':
		return api.Intent{Kind: api.IntentOpenInventory}, true
	case 'q':
		return api.Intent{Kind: api.IntentQuit}, true
	}
	return api.Intent{}, false
}

func move(dx, dy int) (api.Intent, bool) {
	return api.Intent{Kind: api.IntentMove, Dx: dx, Dy: dy}, true
}

func letterIndex(ev *tcell.EventKey) (int, bool) {
	r := ev.Rune()
	if r >= 'a' && r <= 'z' {
		return int(r - 'a'), true
	}
	return 0, false
}
