// Package sound generates the tap blip as 16-bit stereo PCM.
package sound

import (
	"math"
	"sync"
)

const (
	SampleRate = 44100

	blipFreq    = 880.0
	blipSamples = SampleRate / 20 // 50ms
	blipVolume  = 0.2
)

// Blip is an endless stream that is silent until triggered. It is meant to
// be handed to an audio player once and left playing. Trigger may be called
// while the player goroutine reads.
type Blip struct {
	mu     sync.Mutex
	tick   int
	remain int
	freq   float64
}

func NewBlip() *Blip {
	return &Blip{freq: blipFreq}
}

// Trigger restarts the blip. Each call raises the pitch a little so rapid
// taps climb, capped at one octave.
func (b *Blip) Trigger() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.remain > 0 {
		b.freq = math.Min(b.freq*1.02, blipFreq*2)
	} else {
		b.freq = blipFreq
	}
	b.remain = blipSamples
	b.tick = 0
}

func (b *Blip) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.remain > 0
}

func (b *Blip) Read(buf []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(buf) / 4 * 4
	for i := 0; i < n; i += 4 {
		var v int16
		if b.remain > 0 {
			env := float64(b.remain) / blipSamples
			val := blipVolume * env
			phase := int(float64(b.tick) * b.freq * 2 / SampleRate)
			if phase%2 != 0 {
				val = -val
			}
			v = int16(val * 32767)
			b.tick++
			b.remain--
		}
		buf[i] = byte(v)
		buf[i+1] = byte(v >> 8)
		buf[i+2] = byte(v)
		buf[i+3] = byte(v >> 8)
	}
	return n, nil
}
