package zoom

// Settings supplies the tunables a State reads on every tick and frame.
// Values are not validated here.
type Settings interface {
	// InitialZoom is the divisor reached by holding the zoom key, >= 1.
	InitialZoom() int
	// ScrollIncrement scales how much each scroll tier adds to the divisor.
	ScrollIncrement() float64
	// MaxScrollTiers is the number of scroll tiers, 0 disables scroll zoom.
	MaxScrollTiers() int
	// LinearLikeSteps enables LinearLikeCurve on the scroll target.
	LinearLikeSteps() bool
}

// SettingsFuncs adapts plain accessor functions to Settings.
type SettingsFuncs struct {
	InitialZoomFunc     func() int
	ScrollIncrementFunc func() float64
	MaxScrollTiersFunc  func() int
	LinearLikeStepsFunc func() bool
}

var _ Settings = SettingsFuncs{}

func (f SettingsFuncs) InitialZoom() int         { return f.InitialZoomFunc() }
func (f SettingsFuncs) ScrollIncrement() float64 { return f.ScrollIncrementFunc() }
func (f SettingsFuncs) MaxScrollTiers() int      { return f.MaxScrollTiersFunc() }
func (f SettingsFuncs) LinearLikeSteps() bool    { return f.LinearLikeStepsFunc() }
