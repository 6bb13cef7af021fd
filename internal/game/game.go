package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"timefighter/internal/assets"
	"timefighter/internal/config"
	"timefighter/internal/entity"
	"timefighter/internal/session"
	"timefighter/internal/sound"
	"timefighter/internal/store"
)

// Portrait logical screen, scaled by ebiten to the window or device.
const (
	ScreenWidth  = 240
	ScreenHeight = 400
)

type lifecycleEvent int

const (
	eventSuspend lifecycleEvent = iota
	eventResume
)

// Game holds global state
type Game struct {
	Session *session.Session
	Tick    int

	button     *entity.Button
	scoreBlink entity.Blink
	scoreLayer *ebiten.Image

	blip   *sound.Blip
	player *audio.Player

	focused   bool
	lifecycle chan lifecycleEvent
}

func New(cfg config.Config, st store.Store) *Game {
	strs := assets.LoadStrings()
	s := session.Open(cfg, session.Options{
		Clock:   clockwork.NewRealClock(),
		Store:   st,
		Strings: strs,
		Logger:  log.Logger,
	})

	g := &Game{
		Session:   s,
		button:    entity.NewButton(ScreenWidth/2, ScreenHeight/2, 120, 56, s.ButtonText()),
		focused:   true,
		lifecycle: make(chan lifecycleEvent, 8),
	}

	if cfg.Sound {
		ctx := audio.NewContext(sound.SampleRate)
		g.blip = sound.NewBlip()
		player, err := ctx.NewPlayer(g.blip)
		if err != nil {
			log.Warn().Err(err).Msg("audio disabled")
		} else {
			player.SetVolume(0.5)
			player.Play()
			g.player = player
		}
	}
	return g
}

// Suspend and Resume may be called from any goroutine, typically the
// platform's activity callbacks. They are applied on the next Update.
func (g *Game) Suspend() { g.post(eventSuspend) }

func (g *Game) Resume() { g.post(eventResume) }

func (g *Game) post(ev lifecycleEvent) {
	select {
	case g.lifecycle <- ev:
	default:
		log.Warn().Int("event", int(ev)).Msg("lifecycle queue full, event dropped")
	}
}

// Close saves the running round. Call it after the game loop returned.
func (g *Game) Close() {
	g.Session.Close()
	if g.player != nil {
		g.player.Close()
	}
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	g.Tick++

	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	g.drainLifecycle()

	// Desktop focus stands in for the mobile pause/resume callbacks.
	if focused := ebiten.IsFocused(); focused != g.focused {
		g.focused = focused
		if focused {
			g.Session.Resume()
		} else {
			g.Session.Suspend()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.Session.ToggleAbout()
	}

	for _, p := range g.justPressed() {
		g.handlePress(p)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.tap()
	}

	g.Session.Update()
	g.button.Update()
	g.scoreBlink.Update()
	return nil
}

func (g *Game) drainLifecycle() {
	for {
		select {
		case ev := <-g.lifecycle:
			switch ev {
			case eventSuspend:
				g.Session.Suspend()
			case eventResume:
				g.Session.Resume()
			}
		default:
			return
		}
	}
}

type point struct{ x, y float64 }

func (g *Game) justPressed() []point {
	var pts []point
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pts = append(pts, point{float64(x), float64(y)})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		pts = append(pts, point{float64(x), float64(y)})
	}
	return pts
}

func (g *Game) handlePress(p point) {
	// Any press dismisses the about dialog.
	if g.Session.AboutOpen() {
		g.Session.ToggleAbout()
		return
	}
	if g.button.Contains(p.x, p.y) {
		g.tap()
	}
}

func (g *Game) tap() {
	if g.Session.AboutOpen() {
		return
	}
	g.button.Press()
	if !g.Session.Tap() {
		return
	}
	g.scoreBlink.Start()
	if g.blip != nil {
		g.blip.Trigger()
	}
}

// Layout: Scaling Strategy
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
