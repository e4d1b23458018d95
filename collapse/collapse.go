// Package collapse maps a scroll position to the offset of a collapsing header.
//
// The header sits above a scrollable list whose top content inset equals the
// distance the header can travel. As the list scrolls, the header is pushed
// offscreen until only its collapsed height remains, at which point it is
// considered collapsed.
package collapse

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry is returned when the header heights cannot describe a
// header that collapses upward.
var ErrInvalidGeometry = errors.New("invalid header geometry")

// Geometry holds the header heights. It is fixed once layout is known.
type Geometry struct {
	ExpandedHeight  float64
	CollapsedHeight float64
}

// NewGeometry validates the heights and returns the geometry.
func NewGeometry(expanded, collapsed float64) (Geometry, error) {
	if !finite(expanded) || !finite(collapsed) {
		return Geometry{}, fmt.Errorf("%w: heights must be finite", ErrInvalidGeometry)
	}
	if expanded < 0 || collapsed < 0 {
		return Geometry{}, fmt.Errorf("%w: negative height (expanded %v, collapsed %v)", ErrInvalidGeometry, expanded, collapsed)
	}
	if collapsed > expanded {
		return Geometry{}, fmt.Errorf("%w: collapsed height %v exceeds expanded height %v", ErrInvalidGeometry, collapsed, expanded)
	}
	return Geometry{ExpandedHeight: expanded, CollapsedHeight: collapsed}, nil
}

// MaxScrollAmount is how far the header travels before it is collapsed.
func (g Geometry) MaxScrollAmount() float64 {
	return g.ExpandedHeight - g.CollapsedHeight
}

// ContentInsetTop is the top inset the scroll source applies to leave room
// for the expanded header.
func (g Geometry) ContentInsetTop() float64 {
	return g.MaxScrollAmount()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// HeaderOffset converts a raw scroll offset into the header's vertical
// translation, clamped to [-maxScrollAmount, 0].
func HeaderOffset(rawOffsetY, contentInsetTop, maxScrollAmount float64) float64 {
	raw := -(rawOffsetY + contentInsetTop)
	return math.Min(0, math.Max(-maxScrollAmount, raw))
}
