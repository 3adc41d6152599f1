package zoom

import "math"

// linearLikeCurvature controls how strongly LinearLikeCurve compresses the
// low end of the scroll range.
const linearLikeCurvature = 0.3

// LinearLikeCurve remaps a scroll fraction in [0,1] so that equal tier steps
// produce perceptually even zoom steps. Early tiers are compressed and later
// ones expanded; 0 and 1 are fixed points.
func LinearLikeCurve(t float64) float64 {
	exp := 1 / (1 - linearLikeCurvature)
	a := math.Pow(t, exp)
	b := math.Pow(2-t, exp)
	return 2 * (a / (a + b))
}

// Lerp returns start + delta*(end-start).
func Lerp(delta, start, end float64) float64 {
	return start + delta*(end-start)
}
