// Copyright (c) 2026, Manipkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cage

import "cogentcore.org/core/math32"

// margins returns the per-axis hit margin for the given cage
// dimensions: aspect * dimension / resizerWidth, where aspect
// compensates the longer axis so the margins stay visually square
// regardless of the cage aspect ratio.
func margins(dims math32.Vector2) math32.Vector2 {
	aspx, aspy := float32(1), float32(1)
	if dims.X > dims.Y {
		aspx = dims.Y / dims.X
	} else {
		aspy = dims.X / dims.Y
	}
	return math32.Vec2(aspx*dims.X/resizerWidth, aspy*dims.Y/resizerWidth)
}

// pivotForScalePart returns the pivot point, in normalized
// [-0.5,0.5] coordinates, that the given scale part scales about,
// along with the per-axis constraint flags. A constrained axis keeps
// its scale factor at 1: edges constrain the axis along the edge,
// corners constrain neither. It panics for any non-scale part;
// callers must only pass scale parts.
func pivotForScalePart(p Parts) (pivot math32.Vector2, constrainX, constrainY bool) {
	switch p {
	case PartScaleMinX:
		return math32.Vec2(0.5, 0), false, true
	case PartScaleMaxX:
		return math32.Vec2(-0.5, 0), false, true
	case PartScaleMinY:
		return math32.Vec2(0, 0.5), true, false
	case PartScaleMaxY:
		return math32.Vec2(0, -0.5), true, false
	case PartScaleMinXMinY:
		return math32.Vec2(0.5, 0.5), false, false
	case PartScaleMinXMaxY:
		return math32.Vec2(0.5, -0.5), false, false
	case PartScaleMaxXMinY:
		return math32.Vec2(-0.5, 0.5), false, false
	case PartScaleMaxXMaxY:
		return math32.Vec2(-0.5, -0.5), false, false
	}
	panic("cage: pivotForScalePart called with non-scale part " + p.String())
}

// translateRegion returns the inner rectangle of the cage, inset by
// the margin on every side, which hits as the translate body.
func translateRegion(size, margin math32.Vector2) math32.Box2 {
	return math32.B2(-size.X+margin.X, -size.Y+margin.Y, size.X-margin.X, size.Y-margin.Y)
}

// edgeRegions returns the four margin-thick strips along the cage
// edges. The x strips span the full cage height and the y strips the
// full width, so the strip intersections are the corner regions.
func edgeRegions(size, margin math32.Vector2) (xmin, xmax, ymin, ymax math32.Box2) {
	xmin = math32.B2(-size.X, -size.Y, -size.X+margin.X, size.Y)
	xmax = math32.B2(size.X-margin.X, -size.Y, size.X, size.Y)
	ymin = math32.B2(-size.X, -size.Y, size.X, -size.Y+margin.Y)
	ymax = math32.B2(-size.X, size.Y-margin.Y, size.X, size.Y)
	return
}

// rotateRegion returns the rotate hot-spot: a margin-sized square
// centered at (0, h/2 + my), sitting just outside the top edge.
//
//	 (*) <- hot-spot is here
//	+---+
//	|   |
//	+---+
func rotateRegion(size, margin math32.Vector2) math32.Box2 {
	pt := math32.Vec2(0, size.Y+margin.Y)
	return math32.B2(pt.X-margin.X/2, pt.Y-margin.Y/2, pt.X+margin.X/2, pt.Y+margin.Y/2)
}
