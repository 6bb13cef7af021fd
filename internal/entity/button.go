package entity

import "math"

// Animation lengths in game ticks (60 TPS).
const (
	BounceTicks = 24
	BlinkTicks  = 30
)

type Button struct {
	X, Y, W, H float64
	Label      string

	bounceTick int // Counts down while bouncing
}

func NewButton(cx, cy, w, h float64, label string) *Button {
	return &Button{
		X:     cx - w/2,
		Y:     cy - h/2,
		W:     w,
		H:     h,
		Label: label,
	}
}

// Contains reports whether the point lies on the button.
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Press starts the bounce animation over from the top.
func (b *Button) Press() {
	b.bounceTick = BounceTicks
}

func (b *Button) Update() {
	if b.bounceTick > 0 {
		b.bounceTick--
	}
}

// Scale is the draw scale for the current frame: a squash that springs
// back past 1 and settles.
func (b *Button) Scale() float64 {
	if b.bounceTick == 0 {
		return 1
	}
	t := float64(BounceTicks-b.bounceTick) / BounceTicks
	return 1 - 0.2*math.Cos(t*2*math.Pi)*(1-t)
}

func (b *Button) Bouncing() bool { return b.bounceTick > 0 }

// Blink fades a label out and back in.
type Blink struct {
	tick int
}

func (l *Blink) Start() { l.tick = BlinkTicks }

func (l *Blink) Update() {
	if l.tick > 0 {
		l.tick--
	}
}

// Alpha is the label opacity in [0, 1].
func (l *Blink) Alpha() float64 {
	if l.tick == 0 {
		return 1
	}
	t := float64(BlinkTicks-l.tick) / BlinkTicks
	return math.Abs(math.Cos(t * math.Pi))
}
