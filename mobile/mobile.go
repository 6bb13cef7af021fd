// Package mobile is the ebitenmobile bind target. The host activity calls
// OnPause and OnResume from its lifecycle callbacks.
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"
	"github.com/rs/zerolog/log"

	"timefighter/internal/config"
	"timefighter/internal/game"
	"timefighter/internal/store"
)

var g *game.Game

func init() {
	log.Info().Msg("mobile init: SetGame")

	// The in-memory store outlives activity recreation inside the process.
	g = game.New(config.Default(), store.NewMemory())
	mobile.SetGame(g)
}

// OnPause is the activity's onSaveInstanceState hook.
func OnPause() { g.Suspend() }

func OnResume() { g.Resume() }
