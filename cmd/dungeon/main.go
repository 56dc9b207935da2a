// Command dungeon is the local terminal game. It runs a single session
// in-process and drives it with tcell key events.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/cosmo-mac/cosmos-dungeon/internal/domain"
	"github.com/cosmo-mac/cosmos-dungeon/internal/engine"
	"github.com/cosmo-mac/cosmos-dungeon/internal/render"
	"github.com/cosmo-mac/cosmos-dungeon/pkg/logger"
)

func main() {
	// Log lines would tear the tcell screen, so they are discarded
	// unless explicitly sent to a file.
	logger.Init()
	if path := os.Getenv("COSMO_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			defer f.Close()
			logger.Silence(f)
		} else {
			logger.Silence(nil)
		}
	} else {
		logger.Silence(nil)
	}

	var seed int64
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.Parse()

	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "terminal init failed:", err)
		os.Exit(1)
	}
	if err := scr.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "terminal init failed:", err)
		os.Exit(1)
	}
	defer scr.Fini()

	session := engine.NewSession(cfg, domain.DefaultCatalog())
	snap := session.Snapshot()
	render.Draw(scr, snap)

	for {
		switch ev := scr.PollEvent().(type) {
		case *tcell.EventResize:
			scr.Sync()
			render.Draw(scr, snap)
		case *tcell.EventKey:
			intent, ok := render.KeyToIntent(snap.State, ev)
			if !ok {
				continue
			}
			snap = session.Apply(intent)
			if snap.Done {
				scr.Fini()
				fmt.Println("\nThanks for playing Cosmo's Dungeon!")
				return
			}
			render.Draw(scr, snap)
		}
	}
}
