// Command termplay runs the platformer in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/render"
	"github.com/milk9111/platformer/render/term"
	"github.com/milk9111/platformer/session"
)

func main() {
	levelName := flag.String("level", levels.DefaultName, "level in levels/ or a path (.yaml or .tengo)")
	tps := flag.Int("tps", common.TPS, "ticks per second")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	debug := flag.Bool("debug", false, "log every stomp")
	flag.Parse()

	logFile, err := redirectLog(*logPath)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// fail before taking over the terminal
	if _, err := levels.Load(*levelName); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rctx := render.NewContext(common.BaseWidth, common.BaseHeight)
	events := term.Pump(screen)
	surface := term.NewSurface(screen, rctx)
	surface.Status = "arrows/A D move, space jumps, Q quits"

	runner := &session.Runner{
		Load:     func() (*levels.Level, error) { return levels.Load(*levelName) },
		Context:  rctx,
		Input:    term.NewKeys(events),
		Surface:  surface,
		Prompter: term.NewPrompt(screen, events, rctx),
		TickRate: time.Second / time.Duration(max(*tps, 1)),
		Debug:    *debug,
	}
	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("termplay: %v", err)
		screen.Fini()
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// redirectLog points the standard logger at path, or discards log output when
// path is empty: the terminal is the display and stray lines would corrupt
// it. On error the logger is left untouched.
func redirectLog(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}
