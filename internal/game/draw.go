package game

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// --- Colors ---
var (
	ColBg       = color.RGBA{0x2d, 0x2d, 0x2d, 0xff}
	ColButton   = color.RGBA{0xff, 0x6b, 0x6b, 0xff}
	ColButtonHi = color.RGBA{0xff, 0x9b, 0x9b, 0xff}
	ColPanel    = color.RGBA{0x10, 0x10, 0x10, 0xe0}
	ColBorder   = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// DebugPrint glyph size.
const (
	glyphW = 6
	glyphH = 16
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColBg)

	g.drawHUD(screen)
	g.drawButton(screen)

	if msg := g.Session.Toast(); msg != "" {
		g.drawToast(screen, msg)
	}
	if g.Session.AboutOpen() {
		g.drawAbout(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	// Score goes through its own layer so it can blink.
	if g.scoreLayer == nil {
		g.scoreLayer = ebiten.NewImage(ScreenWidth, glyphH)
	}
	g.scoreLayer.Clear()
	ebitenutil.DebugPrint(g.scoreLayer, g.Session.ScoreText())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleAlpha(float32(g.scoreBlink.Alpha()))
	screen.DrawImage(g.scoreLayer, op)

	timeText := g.Session.TimeLeftText()
	ebitenutil.DebugPrintAt(screen, timeText, ScreenWidth-8-len(timeText)*glyphW, 8)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	b := g.button
	s := b.Scale()
	w, h := b.W*s, b.H*s
	cx, cy := b.X+b.W/2, b.Y+b.H/2

	col := ColButton
	if b.Bouncing() {
		col = ColButtonHi
	}
	vector.DrawFilledRect(screen, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), col, true)
	vector.StrokeRect(screen, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), 2, ColBorder, true)

	ebitenutil.DebugPrintAt(screen, b.Label, int(cx)-len(b.Label)*glyphW/2, int(cy)-glyphH/2)
}

func (g *Game) drawToast(screen *ebiten.Image, msg string) {
	w := float32(len(msg)*glyphW + 16)
	x := (ScreenWidth - w) / 2
	y := float32(ScreenHeight - 64)
	vector.DrawFilledRect(screen, x, y, w, glyphH+12, ColPanel, true)
	ebitenutil.DebugPrintAt(screen, msg, int(x)+8, int(y)+6)
}

func (g *Game) drawAbout(screen *ebiten.Image) {
	title := g.Session.AboutTitle()
	body := g.Session.AboutMessage()
	lines := strings.Count(body, "\n") + 1

	const margin = 12
	h := float32((lines+2)*glyphH + 2*margin)
	y := (ScreenHeight - h) / 2
	vector.DrawFilledRect(screen, margin, y, ScreenWidth-2*margin, h, ColPanel, true)
	vector.StrokeRect(screen, margin, y, ScreenWidth-2*margin, h, 1, ColBorder, true)

	ebitenutil.DebugPrintAt(screen, title, 2*margin, int(y)+margin)
	ebitenutil.DebugPrintAt(screen, body, 2*margin, int(y)+margin+2*glyphH)
}
