package zoom

// DefaultTickDuration is the elapsed time of one simulation tick at 20 TPS.
const DefaultTickDuration = 0.05

// Scroll tiers are spread across MaxScrollTiers * ScrollIncrement * scrollSpan
// extra divisor at the top tier.
const scrollSpan = 3.0

// channel holds the last two tick values of one interpolated quantity so the
// renderer can blend between them.
type channel struct {
	prev    float64
	current float64
}

func (c *channel) zero() {
	c.prev = 0
	c.current = 0
}

// State is the zoom interpolation state machine. It combines a held-key
// channel (Initial) with a tiered scroll channel (Scroll) into one divisor.
//
// State is not safe for concurrent use. Advance and Divisor must be called
// from the same goroutine, which is what Ebitengine's Update/Draw loop does.
type State struct {
	initialInterp Interpolator
	scrollInterp  Interpolator
	settings      Settings

	initial         channel
	zoomingLastTick bool

	scroll         channel
	lastScrollTier int

	resetting       bool
	resetMultiplier float64
}

// NewState creates a State at rest (divisor 1).
func NewState(initial, scroll Interpolator, settings Settings) *State {
	return &State{
		initialInterp: initial,
		scrollInterp:  scroll,
		settings:      settings,
	}
}

// SetInterpolators swaps the curves used by both channels. Channel values are
// kept so a curve change mid-zoom continues from where it was.
func (s *State) SetInterpolators(initial, scroll Interpolator) {
	s.initialInterp = initial
	s.scrollInterp = scroll
}

// Advance moves both channels forward by one tick of dt seconds.
// Initial is always updated before Scroll.
func (s *State) Advance(zooming bool, scrollTier int, dt float64) {
	s.advanceInitial(zooming, dt)
	s.advanceScroll(scrollTier, dt)
}

func (s *State) advanceInitial(zooming bool, dt float64) {
	if zooming && !s.zoomingLastTick {
		s.resetting = false
	}

	target := 0.0
	if zooming {
		target = 1.0
	}

	s.initial.prev = s.initial.current
	s.initial.current = s.initialInterp.Tick(target, s.initial.current, dt)
	s.initial.prev = s.initialInterp.ModifyPrev(s.initial.prev)
	if !s.initialInterp.Smooth() {
		s.initial.prev = s.initial.current
	}
	s.zoomingLastTick = zooming
}

func (s *State) advanceScroll(scrollTier int, dt float64) {
	if scrollTier > s.lastScrollTier {
		s.resetting = false
	}

	target := 0.0
	if maxTiers := s.settings.MaxScrollTiers(); maxTiers > 0 {
		target = float64(scrollTier) / float64(maxTiers)
	}
	if s.settings.LinearLikeSteps() {
		target = LinearLikeCurve(target)
	}

	s.scroll.prev = s.scroll.current
	s.scroll.current = s.scrollInterp.Tick(target, s.scroll.current, dt)
	s.scroll.prev = s.scrollInterp.ModifyPrev(s.scroll.prev)
	// NOTE: this reads the Initial curve's flag, not the Scroll one. The other
	// reading resets the Initial channel's prev here instead, which is a
	// no-op right after advanceInitial. Kept as written until the intended
	// behaviour is confirmed.
	if !s.initialInterp.Smooth() {
		s.scroll.prev = s.scroll.current
	}
	s.lastScrollTier = scrollTier
}

// Divisor returns the field-of-view divisor for a render frame. tickDelta is
// the fractional position in [0,1] between the previous and the current tick.
//
// Every call also updates the reset transaction: it is released once both
// channels are back at zero, and while it is not running the current
// multiplier is latched so a later reset can freeze on it.
func (s *State) Divisor(tickDelta float64) float64 {
	initialMultiplier := s.initialMultiplier(tickDelta)
	scrollDivisor := s.scrollDivisor(tickDelta)

	divisor := 1/initialMultiplier + scrollDivisor

	if s.initial.current == 0 && s.scroll.current == 0 {
		s.resetting = false
	}
	if !s.resetting {
		s.resetMultiplier = 1 / divisor
	}
	return divisor
}

// CurrentDivisor is Divisor at the end of the current tick.
func (s *State) CurrentDivisor() float64 {
	return s.Divisor(1)
}

func (s *State) initialMultiplier(tickDelta float64) float64 {
	value := s.initial.current
	if s.initialInterp.Smooth() {
		value = s.initialInterp.Modify(Lerp(tickDelta, s.initial.prev, s.initial.current))
	}

	end := 1 / float64(s.settings.InitialZoom())
	if s.resetting {
		end = s.resetMultiplier
	}
	return Lerp(value, 1, end)
}

func (s *State) scrollDivisor(tickDelta float64) float64 {
	if s.resetting {
		return 0
	}

	value := s.scroll.current
	if s.scrollInterp.Smooth() {
		value = s.scrollInterp.Modify(Lerp(tickDelta, s.scroll.prev, s.scroll.current))
	}

	span := float64(s.settings.MaxScrollTiers()) * s.settings.ScrollIncrement() * scrollSpan
	return Lerp(value, 0, span)
}

// BeginReset snaps scroll zoom back to zero while freezing the overall
// divisor at the last latched multiplier. It does nothing when a reset is
// already running or there is no scroll zoom to undo.
func (s *State) BeginReset() {
	if s.resetting || s.scroll.current <= 0 {
		return
	}
	s.resetting = true
	s.scroll.zero()
}

// ZeroOut hard-resets the selected channels and cancels any running reset.
func (s *State) ZeroOut(initial, scroll bool) {
	if initial {
		s.initial.zero()
		s.zoomingLastTick = false
	}
	if scroll {
		s.scroll.zero()
		s.lastScrollTier = 0
	}
	s.resetting = false
}

// SkipInitialTransition jumps the Initial channel to fully zoomed.
func (s *State) SkipInitialTransition() {
	s.initial.current = 1
	s.initial.prev = 1
}

// Resetting reports whether a reset transaction is running.
func (s *State) Resetting() bool {
	return s.resetting
}

// Snapshot is a copy of a State's fields.
type Snapshot struct {
	InitialPrev     float64
	InitialCurrent  float64
	ZoomingLastTick bool
	ScrollPrev      float64
	ScrollCurrent   float64
	LastScrollTier  int
	Resetting       bool
	ResetMultiplier float64
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		InitialPrev:     s.initial.prev,
		InitialCurrent:  s.initial.current,
		ZoomingLastTick: s.zoomingLastTick,
		ScrollPrev:      s.scroll.prev,
		ScrollCurrent:   s.scroll.current,
		LastScrollTier:  s.lastScrollTier,
		Resetting:       s.resetting,
		ResetMultiplier: s.resetMultiplier,
	}
}
