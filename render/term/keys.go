package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformer/input"
)

// DefaultHoldTicks covers the gap before a terminal starts auto-repeating a
// held key.
const DefaultHoldTicks = 30

// Keys turns terminal key events into input snapshots. Terminals report
// presses and repeats but never releases, so a direction stays held for
// HoldTicks polls after its last event.
type Keys struct {
	events    <-chan tcell.Event
	HoldTicks int

	left, right         int
	jump, quit, restart bool
}

func NewKeys(events <-chan tcell.Event) *Keys {
	return &Keys{events: events, HoldTicks: DefaultHoldTicks}
}

// Pump forwards screen events to a channel until the screen is finalized.
func Pump(screen tcell.Screen) <-chan tcell.Event {
	ch := make(chan tcell.Event, 16)
	go func() {
		defer close(ch)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			ch <- ev
		}
	}()
	return ch
}

// Poll drains pending events without blocking.
func (k *Keys) Poll() input.Snapshot {
drain:
	for k.events != nil {
		select {
		case ev, ok := <-k.events:
			if !ok {
				k.events = nil
				k.quit = true
				break drain
			}
			k.Handle(ev)
		default:
			break drain
		}
	}

	snap := input.Snapshot{
		Left:    k.left > 0,
		Right:   k.right > 0,
		Jump:    k.jump,
		Quit:    k.quit,
		Restart: k.restart,
	}
	if k.left > 0 {
		k.left--
	}
	if k.right > 0 {
		k.right--
	}
	k.jump, k.quit, k.restart = false, false, false
	return snap
}

func (k *Keys) Handle(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	switch key.Key() {
	case tcell.KeyLeft:
		k.left, k.right = k.HoldTicks, 0
	case tcell.KeyRight:
		k.right, k.left = k.HoldTicks, 0
	case tcell.KeyUp:
		k.jump = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyRune:
		switch key.Rune() {
		case ' ':
			k.jump = true
		case 'a', 'A':
			k.left, k.right = k.HoldTicks, 0
		case 'd', 'D':
			k.right, k.left = k.HoldTicks, 0
		case 'q', 'Q':
			k.quit = true
		case 'r', 'R':
			k.restart = true
		}
	}
}
