// tictacpen is a terminal rendition of the pen and paper tic-tac-toe game:
// draw the board with the mouse, write your crosses, and the pen answers.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/rivo/tview"

	"tictacpen/board"
	"tictacpen/config"
	"tictacpen/engine"
	"tictacpen/flow"
	"tictacpen/status"
	"tictacpen/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagQuickStart = flag.Bool("play", false, "Skip the main menu and open the level menu")
	flagLevel      = flag.String("level", "", "Pen level (easy or hard); with -play, start drawing at once")
	flagSeed       = flag.Int64("seed", 0, "Seed for the pen's moves (0 picks one)")
	flagStatus     = flag.String("status", "", "Serve game snapshots over HTTP on this address, e.g. :8080")
	flagConfig     = flag.String("config", "", "Config file (default: tictacpen/config.json in the XDG config dirs)")
	flagSave       = flag.Bool("save-config", false, "Write the effective config to the XDG config dir and exit")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("tictacpen %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tictacpen: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.InitConfig(*flagConfig)
	if err != nil {
		return err
	}
	if *flagStatus != "" {
		cfg.StatusAddr = *flagStatus
	}

	level := cfg.Level()
	if *flagLevel != "" {
		if level, err = engine.ParseLevel(*flagLevel); err != nil {
			return err
		}
		cfg.Game.DefaultLevel = level.String()
	}

	if *flagSave {
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println("config saved")
		return nil
	}

	logger, closeLog, err := openLog()
	if err != nil {
		return err
	}
	defer closeLog()

	seed := *flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Printf("tictacpen %s starting, seed %d", Version, seed)

	app := tview.NewApplication()
	host := ui.NewHost(app, cfg, logger)
	store := status.NewStore()

	eng := engine.New(rand.New(rand.NewSource(seed)), logger)
	eng.SetLevel(level)

	fsm := flow.New(flow.Deps{
		Board:      board.New(cfg.BoardOptions(), logger),
		Engine:     eng,
		Display:    host.Display,
		Sound:      host,
		Recognizer: host.Recognizer,
		Scheduler:  host,
		Logger:     logger,
		Options: flow.Options{
			PlayerOrderDelay: cfg.Game.PlayerOrderDelayDuration(),
			ResultDelay:      cfg.Game.ResultDelayDuration(),
			BlinkInterval:    cfg.Game.BlinkIntervalDuration(),
		},
		Observer: func(s flow.Snapshot) {
			host.Observe(s)
			store.Set(s)
		},
	})
	host.Bind(fsm)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.StatusAddr != "" {
		go func() {
			if err := status.Serve(ctx, cfg.StatusAddr, store, logger); err != nil {
				logger.Printf("[status] %v", err)
			}
		}()
	}

	host.Start()
	if *flagQuickStart {
		quickStart(fsm, level)
	}

	app.EnableMouse(true)
	if err := app.SetRoot(host.Layout, true).SetFocus(host.Paper).Run(); err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	host.Stop()
	logger.Printf("tictacpen stopped")
	return nil
}

// quickStart walks the menus the way a player would: open the level menu,
// and when a level was given on the command line, pick it.
func quickStart(fsm *flow.FSM, level engine.Level) {
	fsm.OnMenuRight()
	if *flagLevel == "" {
		return
	}
	if level == engine.Hard {
		fsm.OnMenuDown()
	}
	fsm.OnMenuRight()
}

// openLog opens the debug log in the XDG state dir.
func openLog() (*log.Logger, func(), error) {
	path, err := config.LogFile()
	if err != nil {
		return nil, nil, fmt.Errorf("locating log file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return log.New(f, "", log.Ltime|log.Lmicroseconds), func() { f.Close() }, nil
}
