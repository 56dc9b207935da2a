// Package api defines the protocol between the game core and its
// renderer/input collaborators. The core receives Intents and answers
// with read-only Snapshots; collaborators (terminal client, websocket
// clients) never touch domain state directly.
package api

// --- CLIENT -> SESSION ---

// IntentKind names one discrete player intent.
type IntentKind string

const (
	// IntentStart begins a run from the title screen and dismisses the
	// death and victory screens.
	IntentStart IntentKind = "START"

	// IntentMove carries a step direction in Dx/Dy (eight-way).
	// Bumping the merchant opens the shop; bumping a monster attacks.
	IntentMove IntentKind = "MOVE"

	// IntentWait consumes a turn without moving.
	IntentWait IntentKind = "WAIT"

	// IntentDescend takes the stairs when standing on them.
	IntentDescend IntentKind = "DESCEND"

	// IntentOpenInventory switches to the inventory menu.
	IntentOpenInventory IntentKind = "INVENTORY"

	// IntentUseItem consumes the inventory entry at Index.
	IntentUseItem IntentKind = "USE"

	// IntentBuyItem purchases the shop stock entry at Index.
	IntentBuyItem IntentKind = "BUY"

	// IntentCloseMenu returns from the inventory or shop to play.
	IntentCloseMenu IntentKind = "CLOSE"

	// IntentQuit ends the session.
	IntentQuit IntentKind = "QUIT"
)

// Intent is one discrete command from the input collaborator.
// Dx/Dy apply to MOVE, Index to USE and BUY; other kinds carry no payload.
type Intent struct {
	Kind  IntentKind `json:"kind"`
	Dx    int        `json:"dx,omitempty"`
	Dy    int        `json:"dy,omitempty"`
	Index int        `json:"index,omitempty"`
}

// --- SESSION -> CLIENT ---

// Snapshot is the full read-only view of the session after one intent.
// It contains everything a renderer needs and nothing it may mutate.
type Snapshot struct {
	// State is the session state tag: one of
	// "title", "playing", "inventory", "shop", "dead", "win".
	State string `json:"state"`

	// Done is set once the player asked to quit.
	Done bool `json:"done,omitempty"`

	Grid GridMeta `json:"grid"`

	// Tiles lists every revealed tile; unrevealed cells are simply
	// absent so the fog of war needs no client-side logic.
	Tiles []TileView `json:"tiles,omitempty"`

	// Entities lists the player plus every currently visible monster,
	// item, and merchant, in draw order (items under monsters under
	// the player).
	Entities []EntityView `json:"entities,omitempty"`

	Player StatsView `json:"player"`

	// Inventory mirrors the carried items, ordered; Index in USE
	// intents addresses this slice.
	Inventory []ItemView `json:"inventory,omitempty"`

	// Stock is the merchant's stock; present only in the shop state.
	Stock []StockView `json:"stock,omitempty"`

	// Messages is the recent-message log, oldest first, at most five.
	Messages []string `json:"messages,omitempty"`

	// Score is the final run score; present in the win state.
	Score int `json:"score,omitempty"`
}

// GridMeta is the map size, so clients can allocate their viewport.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView is one revealed map cell.
type TileView struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Glyph   string `json:"glyph"`
	Visible bool   `json:"visible"`
}

// EntityView is a drawable entity.
type EntityView struct {
	ID    string `json:"id"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Glyph string `json:"glyph"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// StatsView is the player status line.
type StatsView struct {
	HP       int    `json:"hp"`
	MaxHP    int    `json:"maxHp"`
	Atk      int    `json:"atk"`
	Defense  int    `json:"def"`
	Level    int    `json:"level"`
	XP       int    `json:"xp"`
	XPToNext int    `json:"xpToNext"`
	Gold     int    `json:"gold"`
	Depth    int    `json:"depth"`
	MaxDepth int    `json:"maxDepth"`
	Kills    int    `json:"kills"`
	Weapon   string `json:"weapon"`
}

// ItemView is one inventory line.
type ItemView struct {
	Glyph string `json:"glyph"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Desc  string `json:"desc,omitempty"`
}

// StockView is one shop line.
type StockView struct {
	Glyph      string `json:"glyph"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Desc       string `json:"desc,omitempty"`
	Price      int    `json:"price"`
	Affordable bool   `json:"affordable"`
}
