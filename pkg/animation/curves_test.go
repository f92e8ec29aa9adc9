package animation_test

import (
	"math"
	"testing"

	"github.com/go-drift/sheets/pkg/animation"
)

func TestCurveEndpoints(t *testing.T) {
	curves := map[string]animation.Curve{
		"linear":    animation.Linear,
		"easeIn":    animation.EaseIn,
		"easeOut":   animation.EaseOut,
		"easeInOut": animation.EaseInOut,
		"bezier":    animation.CubicBezier(0.4, 0.0, 0.2, 1.0),
	}
	for name, curve := range curves {
		if got := curve(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestCurveMonotonic(t *testing.T) {
	curves := map[string]animation.Curve{
		"easeIn":    animation.EaseIn,
		"easeOut":   animation.EaseOut,
		"easeInOut": animation.EaseInOut,
		"bezier":    animation.CubicBezier(0.4, 0.0, 0.2, 1.0),
	}
	for name, curve := range curves {
		prev := curve(0)
		for i := 1; i <= 100; i++ {
			v := curve(float64(i) / 100)
			if v < prev {
				t.Errorf("%s not monotonic at %d/100: %v < %v", name, i, v, prev)
			}
			prev = v
		}
	}
}

func TestEaseOutDecelerates(t *testing.T) {
	// An ease-out curve covers more than half the distance in the first
	// half of the transition.
	if got := animation.EaseOut(0.5); got <= 0.5 {
		t.Errorf("EaseOut(0.5) = %v, want > 0.5", got)
	}
	if got := animation.EaseIn(0.5); got >= 0.5 {
		t.Errorf("EaseIn(0.5) = %v, want < 0.5", got)
	}
}

func TestCubicBezierMatchesCSS(t *testing.T) {
	// cubic-bezier(0.4, 0.0, 0.2, 1.0) is the Material standard curve.
	curve := animation.CubicBezier(0.4, 0.0, 0.2, 1.0)
	if got := curve(0.5); math.Abs(got-0.78) > 0.01 {
		t.Errorf("bezier(0.5) = %v, want ~0.78", got)
	}
}

func TestCurveClampsOutOfRange(t *testing.T) {
	for _, curve := range []animation.Curve{animation.EaseOut, animation.CubicBezier(0.4, 0, 0.2, 1)} {
		if got := curve(-0.5); got != 0 {
			t.Errorf("curve(-0.5) = %v, want 0", got)
		}
		if got := curve(1.5); got != 1 {
			t.Errorf("curve(1.5) = %v, want 1", got)
		}
	}
}

func TestTweenEvaluate(t *testing.T) {
	opacity := animation.TweenFloat64(0.2, 0.8)
	if got := opacity.Evaluate(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Evaluate(0.5) = %v, want 0.5", got)
	}
	if got := opacity.Evaluate(0); got != 0.2 {
		t.Errorf("Evaluate(0) = %v, want 0.2", got)
	}
	if got := opacity.Evaluate(1); got != 0.8 {
		t.Errorf("Evaluate(1) = %v, want 0.8", got)
	}
}

func TestTweenTransform(t *testing.T) {
	installClock(t)
	c := animation.NewProgressController(0, 0)
	defer c.Dispose()
	c.Value = 0.25

	tw := animation.TweenFloat64(0, 100)
	if got := tw.Transform(c); got != 25 {
		t.Errorf("Transform = %v, want 25", got)
	}
}
