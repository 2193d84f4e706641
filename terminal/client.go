package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/blockfall/blockfall/game/engine"
)

// softDropRelease is how long after the last down-arrow repeat the fast
// fall is considered released. Terminals deliver no key-up events.
const softDropRelease = 150 * time.Millisecond

// Client runs a local game against its own clock, reading keys from the
// terminal and drawing frames with a Renderer.
type Client struct {
	eng      *engine.Engine
	screen   tcell.Screen
	renderer *Renderer
}

// NewClient creates a local terminal client around an engine.
func NewClient(eng *engine.Engine) (*Client, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	return &Client{
		eng:      eng,
		screen:   screen,
		renderer: NewRenderer(screen),
	}, nil
}

// Run drives the game loop until the player quits. It restores the
// terminal before returning.
func (c *Client) Run() error {
	defer c.screen.Fini()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	var pending []engine.InputKind
	var softDropAt time.Time
	softDropHeld := false
	lastDrawn := uint64(0)
	resized := true

	c.renderer.Draw(c.eng.Snapshot())

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				input, ok := MapKey(ev)
				if !ok {
					continue
				}
				if input == engine.InputSoftDropOn {
					softDropAt = time.Now()
					if softDropHeld {
						continue // key repeat, already on
					}
					softDropHeld = true
				}
				pending = append(pending, input)
			case *tcell.EventResize:
				c.screen.Sync()
				resized = true
			}

		case <-ticker.C:
			if softDropHeld && time.Since(softDropAt) > softDropRelease {
				softDropHeld = false
				pending = append(pending, engine.InputSoftDropOff)
			}

			c.eng.Step(1.0/60.0, pending)
			pending = nil

			if c.eng.QuitRequested() {
				return nil
			}

			if rev := c.eng.Revision(); rev != lastDrawn || resized {
				c.renderer.Draw(c.eng.Snapshot())
				lastDrawn = rev
				resized = false
			}
		}
	}
}
