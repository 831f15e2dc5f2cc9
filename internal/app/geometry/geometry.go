// Package geometry provides the coordinate math for free placement on the
// home canvas. All functions are pure and total.
//
// Positions handed to the layout store are expressed relative to the canvas
// center, so a saved layout stays centered when the window is resized. The
// center of the canvas is covered by a fixed exclusion zone that keeps the
// character display clear; anything dropped inside it is snapped to the
// nearest free edge.
package geometry

import (
	"fyne.io/fyne/v2"

	"github.com/abarroso/questdeck/internal/app"
)

// Exclusion zone half extents and the distance a snapped point is pushed
// clear of the zone edge, in device independent pixels.
const (
	ZoneHalfWidth  float32 = 128
	ZoneHalfHeight float32 = 192
	SnapMargin     float32 = 32
)

// ToRelative converts an absolute canvas position into a center relative
// point. It must be called with the current canvas size on every use; the
// center is never cached across resizes.
func ToRelative(abs fyne.Position, canvas fyne.Size) app.Point {
	return app.Point{
		X: abs.X - canvas.Width/2,
		Y: abs.Y - canvas.Height/2,
	}
}

// ToAbsolute is the inverse of ToRelative.
func ToAbsolute(p app.Point, canvas fyne.Size) fyne.Position {
	return fyne.NewPos(p.X+canvas.Width/2, p.Y+canvas.Height/2)
}

// IsInsideExclusionZone reports whether a point rests inside the protected
// center rectangle. Points exactly on the zone edge are outside.
func IsInsideExclusionZone(p app.Point) bool {
	return abs(p.X) < ZoneHalfWidth && abs(p.Y) < ZoneHalfHeight
}

// ResolveDropPosition returns a resting position for a dropped point.
// Points outside the exclusion zone pass through unchanged. Points inside
// are pushed out along the axis with the smaller penetration margin, keeping
// the other coordinate. When both margins are equal the point is pushed
// along Y; callers rely on that tie-break being deterministic.
func ResolveDropPosition(p app.Point) app.Point {
	if !IsInsideExclusionZone(p) {
		return p
	}
	distX := ZoneHalfWidth - abs(p.X)
	distY := ZoneHalfHeight - abs(p.Y)
	if distX < distY {
		return app.Point{X: sign(p.X) * (ZoneHalfWidth + SnapMargin), Y: p.Y}
	}
	return app.Point{X: p.X, Y: sign(p.Y) * (ZoneHalfHeight + SnapMargin)}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// sign treats zero as positive so a point on an axis snaps toward positive.
func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}
