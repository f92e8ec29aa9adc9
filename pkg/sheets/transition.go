package sheets

import "github.com/go-drift/sheets/pkg/geometry"

// slideDistance is the fraction of a notional viewport the default
// slide travels. The renderer multiplies the returned offset by the
// sheet's own extent, so the unit here is "sheet sizes".
const slideDistance = 1.0

// SlideTransition returns the default transition builder: the sheet
// slides in from the edge it is anchored to, fully off-screen at
// progress 0 and settled at progress 1. Custom-positioned sheets fade
// in place (zero offset); their placement is up to the caller's own
// builder or decoration.
func SlideTransition() TransitionBuilder {
	return func(entry *SheetEntry, progress float64) geometry.Offset {
		remaining := (1 - progress) * slideDistance
		switch entry.Position() {
		case PositionLeft:
			return geometry.Offset{X: -remaining}
		case PositionRight:
			return geometry.Offset{X: remaining}
		case PositionTop:
			return geometry.Offset{Y: -remaining}
		case PositionBottom:
			return geometry.Offset{Y: remaining}
		default:
			return geometry.Offset{}
		}
	}
}

// SlideFrom returns a transition builder that slides along a fixed
// direction vector regardless of the sheet's anchored position. The
// vector is the sheet's offset at progress 0.
func SlideFrom(origin geometry.Offset) TransitionBuilder {
	return func(_ *SheetEntry, progress float64) geometry.Offset {
		return origin.Scale(1 - progress)
	}
}
