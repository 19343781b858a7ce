package display

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/ajstarna/poker-client/client"
	"github.com/ajstarna/poker-client/config"
	"github.com/ajstarna/poker-client/logging"
	"github.com/ajstarna/poker-client/render"
	"github.com/ajstarna/poker-client/state"
)

var gameLogger = log.With().Str("logger_name", "display::game").Logger()

// Game ties the shared state, the connection manager, and the renderer to
// the display. Update is the supervisory tick (it drives reconnects and
// cue handling); Draw repaints an offscreen target only when the pacer
// says a frame is due, then composites it every refresh.
type Game struct {
	ctx     context.Context
	app     *state.App
	manager *client.Manager
	pacer   *render.Pacer

	ticksPerSeat int
	denoms       []render.Denomination

	offscreen *ebiten.Image
	revealing bool
}

func NewGame(ctx context.Context, conf *config.ClientConfig, app *state.App, manager *client.Manager) *Game {
	return &Game{
		ctx:          ctx,
		app:          app,
		manager:      manager,
		pacer:        render.NewPacer(conf.TickInterval()),
		ticksPerSeat: conf.RevealTicks,
		denoms:       denominations(conf.ChipDenoms),
	}
}

// denominations maps the configured ladder onto the standard chip colors,
// falling back to a neutral face for values outside the default set.
func denominations(values []int) []render.Denomination {
	byValue := make(map[int]render.Color, len(render.DefaultDenominations))
	for _, d := range render.DefaultDenominations {
		byValue[d.Value] = d.Color
	}
	denoms := make([]render.Denomination, 0, len(values))
	for _, v := range values {
		c, ok := byValue[v]
		if !ok {
			c = render.RGB(0x88, 0x88, 0x88)
		}
		denoms = append(denoms, render.Denomination{Value: v, Color: c})
	}
	return denoms
}

func (g *Game) Update() error {
	g.manager.EnsureConnected(g.ctx)

	for _, cue := range g.app.DrainCues() {
		gameLogger.Debug().Msgf("Cue [%s]", cue)
	}

	// Restart the frame counter when a reveal sequence begins so its
	// pacing starts from zero.
	showdown := g.app.Showdown()
	if len(showdown) > 0 && !g.revealing {
		gameLogger.Debug().
			Int(logging.FrameKey, g.pacer.Frame()).
			Msg("Starting showdown reveal")
		g.pacer.ResetFrames()
		g.revealing = true
	} else if len(showdown) == 0 {
		g.revealing = false
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.offscreen == nil || g.offscreen.Bounds().Dx() != w || g.offscreen.Bounds().Dy() != h {
		if g.offscreen != nil {
			g.offscreen.Deallocate()
		}
		g.offscreen = ebiten.NewImage(w, h)
		g.pacer.ForceNext()
	}

	if g.pacer.ShouldDraw(time.Now()) {
		render.Draw(newSurface(g.offscreen), render.Scene{
			Snap:          g.app.Snapshot(),
			Showdown:      g.app.Showdown(),
			Frame:         g.pacer.Frame(),
			TicksPerSeat:  g.ticksPerSeat,
			Denominations: g.denoms,
		})
	}
	screen.DrawImage(g.offscreen, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the window closes or the display
// reports an error.
func Run(g *Game, conf *config.ClientConfig) error {
	ebiten.SetWindowSize(conf.WindowWidth, conf.WindowHeight)
	ebiten.SetWindowTitle(conf.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
