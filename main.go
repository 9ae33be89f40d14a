package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/input/keyboard"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/render"
	"github.com/milk9111/platformer/session"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and event logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", levels.DefaultName, "level in levels/ or a path (.yaml or .tengo)")
	watch := flag.Bool("watch", false, "reload the level when its file changes")
	headless := flag.Int("headless", 0, "run this many ticks without a window, holding right, then exit")
	flag.Parse()

	ctx := render.NewContext(common.BaseWidth, common.BaseHeight)

	if *headless > 0 {
		runHeadless(*levelName, ctx, *headless, *debug)
		return
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("platformer")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(*levelName, ctx, keyboard.New(), *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()
	if *watch {
		if err := game.Watch(); err != nil {
			log.Printf("%v; hot reload disabled", err)
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// runHeadless is a smoke mode: it plays the level with the right key held and
// reports how far the player got.
func runHeadless(levelName string, ctx render.Context, ticks int, debug bool) {
	rec := &render.Recorder{}
	var last session.Status
	runner := &session.Runner{
		Load:    func() (*levels.Level, error) { return levels.Load(levelName) },
		Context: ctx,
		Input: input.SourceFunc(func() input.Snapshot {
			return input.Snapshot{Right: true}
		}),
		Surface: rec,
		Prompter: session.PrompterFunc(func(st session.Status) session.Decision {
			last = st
			return session.DecisionQuit
		}),
		MaxTicks: ticks,
		Debug:    debug,
	}
	if err := runner.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
	if last.Ticks > 0 {
		log.Printf("headless: player died after %d ticks with %d stomps", last.Ticks, last.Stomps)
	}
	log.Printf("headless: %d frames, %d commands in the last one", rec.Frames, len(rec.Commands()))
}
