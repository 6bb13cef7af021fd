// Package session is the host side of a round: it owns the real countdown,
// saves and restores the round around host lifecycle events and produces
// the text the HUD shows.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"timefighter/internal/assets"
	"timefighter/internal/config"
	"timefighter/internal/countdown"
	"timefighter/internal/round"
	"timefighter/internal/store"
)

type Options struct {
	Clock   clockwork.Clock
	Store   store.Store
	Strings assets.Strings
	Logger  zerolog.Logger
}

type Session struct {
	cfg     config.Config
	clock   clockwork.Clock
	store   store.Store
	strings assets.Strings
	log     zerolog.Logger

	round   *round.Controller
	timer   *countdown.Countdown
	roundID string

	toast      string
	toastUntil time.Time
	aboutOpen  bool
}

// Open creates a session, resuming a saved round when the store has one.
func Open(cfg config.Config, opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Store == nil {
		opts.Store = store.NewMemory()
	}
	if opts.Strings == nil {
		opts.Strings = assets.LoadStrings()
	}

	s := &Session{
		cfg:     cfg,
		clock:   opts.Clock,
		store:   opts.Store,
		strings: opts.Strings,
		log:     opts.Logger.With().Str("component", "session").Logger(),
		round:   round.New(cfg.InitialCountdown, cfg.CountdownInterval),
		timer:   countdown.New(opts.Clock, cfg.CountdownInterval),
	}
	s.roundID = newRoundID()

	s.log.Debug().Str("round_id", s.roundID).Msg("session created")
	if !s.restore() {
		s.reset()
	}
	return s
}

func newRoundID() string {
	return uuid.New().String()[:8]
}

// Tap forwards a tap to the round. It reports whether the tap scored.
func (s *Session) Tap() bool {
	prev := s.round.State()
	if prev == round.Ended {
		return false
	}

	score := s.round.Tap()
	if prev == round.Idle {
		s.timer.Start(s.round.Remaining())
		s.log.Info().
			Str("round_id", s.roundID).
			Dur("countdown", s.round.Remaining()).
			Msg("round started")
	}
	s.log.Debug().Str("round_id", s.roundID).Int("score", score).Msg("tap")
	return true
}

// Update feeds elapsed countdown intervals into the round. It reports true
// on the frame the round ends.
func (s *Session) Update() bool {
	for _, step := range s.timer.Due() {
		if s.round.Tick(step) {
			s.finish()
			return true
		}
	}
	return false
}

// Suspend saves the round and stops the countdown. Call it whenever the host
// may be torn down.
func (s *Session) Suspend() {
	s.timer.Stop()

	if s.round.State() == round.Idle {
		// Nothing to resume.
		if err := s.store.Clear(); err != nil {
			s.log.Error().Err(err).Msg("failed to clear saved round")
		}
		return
	}

	snap := s.round.Snapshot()
	if err := s.store.Save(snap); err != nil {
		s.log.Error().Err(err).Str("round_id", s.roundID).Msg("failed to save round")
		return
	}
	s.log.Info().
		Str("round_id", s.roundID).
		Int("score", snap.Score).
		Dur("time_left", snap.Remaining).
		Msg("saved round")
}

// Resume picks a suspended round back up. A live running round wins over
// the saved one, so taps made while suspended are kept and a failed save
// does not strand the countdown.
func (s *Session) Resume() {
	if s.timer.Active() {
		return
	}
	if s.round.Running() {
		s.timer.Start(s.round.Remaining())
		s.log.Debug().Str("round_id", s.roundID).Msg("resumed live round")
		return
	}
	s.restore()
}

// Close suspends the session for good.
func (s *Session) Close() {
	s.Suspend()
	s.log.Debug().Str("round_id", s.roundID).Msg("session closed")
}

func (s *Session) restore() bool {
	snap, ok, err := s.store.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("could not load saved round")
		return false
	}
	if !ok {
		return false
	}

	s.round.Restore(snap)
	s.log.Info().
		Str("round_id", s.roundID).
		Int("score", s.round.Score()).
		Dur("time_left", s.round.Remaining()).
		Str("state", s.round.State().String()).
		Msg("restored round")

	if s.round.Ended() {
		s.finish()
		return true
	}
	s.timer.Start(s.round.Remaining())
	return true
}

func (s *Session) finish() {
	score := s.round.Score()
	s.showToast(s.strings.Format(assets.GameOver, score))
	s.log.Info().Str("round_id", s.roundID).Int("score", score).Msg("game over")

	if err := s.store.Clear(); err != nil {
		s.log.Error().Err(err).Msg("failed to clear saved round")
	}
	s.roundID = newRoundID()
	s.reset()
}

func (s *Session) reset() {
	s.timer.Stop()
	s.round.Reset(s.cfg.InitialCountdown, s.cfg.CountdownInterval)
	s.log.Debug().Str("round_id", s.roundID).Msg("round reset")
}

func (s *Session) showToast(msg string) {
	s.toast = msg
	s.toastUntil = s.clock.Now().Add(s.cfg.ToastDuration)
}

// --- HUD ---

func (s *Session) ScoreText() string {
	return s.strings.Format(assets.YourScore, s.round.Score())
}

func (s *Session) TimeLeftText() string {
	return s.strings.Format(assets.TimeLeft, int(s.round.Remaining()/time.Second))
}

// Toast returns the message to show this frame, or "" once it expired.
func (s *Session) Toast() string {
	if s.toast == "" || !s.clock.Now().Before(s.toastUntil) {
		return ""
	}
	return s.toast
}

func (s *Session) ButtonText() string { return s.strings.Get(assets.TapMe) }

func (s *Session) AboutTitle() string {
	return s.strings.Format(assets.AboutTitle, s.cfg.Version)
}

func (s *Session) AboutMessage() string { return s.strings.Get(assets.AboutMessage) }

func (s *Session) ToggleAbout() { s.aboutOpen = !s.aboutOpen }

func (s *Session) AboutOpen() bool { return s.aboutOpen }

func (s *Session) State() round.State { return s.round.State() }

func (s *Session) Score() int { return s.round.Score() }

func (s *Session) Remaining() time.Duration { return s.round.Remaining() }

func (s *Session) RoundID() string { return s.roundID }
