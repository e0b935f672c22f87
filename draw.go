// Copyright (c) 2026, Manipkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cage

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Renderer is the abstract draw backend the cage encodes its
// primitives into. Implementations bind it to an immediate-mode
// display renderer or to a pick-id buffer for selection.
type Renderer interface {
	// Line draws an open polyline through the given points in cage
	// local space.
	Line(pts []math32.Vector2, clr color.RGBA, width float32)

	// FillPolygon draws a filled polygon with the given vertices,
	// in fan order.
	FillPolygon(pts []math32.Vector2, clr color.RGBA)

	// PickID tags all subsequent primitives with the given pick
	// identifier. Only meaningful during a selection pass.
	PickID(id int32)
}

// DrawPass is the scoped configuration for one [Cage.Draw] invocation.
type DrawPass struct {

	// Select indicates a selection pass, rendering pick-id tagged
	// shapes for hit testing rather than display output.
	Select bool

	// Highlight is the currently highlighted part, whose handle shape
	// is drawn in the display pass.
	Highlight Parts

	// SelectBase is the base pick identifier that per-part ids are
	// allocated from during a selection pass.
	SelectBase int32
}

// pickID allocates the pick identifier for a part from a pass base id.
func pickID(base int32, p Parts) int32 {
	return base + int32(p)
}

// outlineColor is the neutral dark layer drawn under active-color
// lines to keep them legible on any background.
var outlineColor = color.RGBA{A: 255}

// Draw encodes the cage's draw primitives for one pass into rd.
// Both passes draw the four corner L-brackets. The selection pass
// then emits a pick-id tagged shape for every part enabled by
// [Cage.Transforms]; the translate body quad is only ever emitted
// there, as it has no visible equivalent. The display pass draws only
// the highlighted part's handle (never the translate body), plus the
// rotate marker whenever rotation is enabled.
func (cg *Cage) Draw(rd Renderer, pass DrawPass) {
	size := cg.Dimensions.MulScalar(0.5)
	margin := margins(cg.Dimensions)
	r := math32.B2(-size.X, -size.Y, size.X, size.Y)

	cg.drawCorners(rd, r, margin, outlineColor, cg.LineWidth+3)
	cg.drawCorners(rd, r, margin, cg.Color, cg.LineWidth)

	if pass.Select {
		if cg.Transforms.HasFlag(TransformScale) || cg.Transforms.HasFlag(TransformScaleUniform) {
			for p := PartScaleMinX; p <= PartScaleMaxXMaxY; p++ {
				rd.PickID(pickID(pass.SelectBase, p))
				cg.drawPart(rd, p, size, margin)
			}
		}
		if cg.Transforms.HasFlag(TransformTranslate) {
			rd.PickID(pickID(pass.SelectBase, PartTranslate))
			cg.drawPart(rd, PartTranslate, size, margin)
		}
		if cg.Transforms.HasFlag(TransformRotate) {
			rd.PickID(pickID(pass.SelectBase, PartRotate))
			cg.drawPart(rd, PartRotate, size, margin)
		}
		return
	}

	if pass.Highlight != PartNone && pass.Highlight != PartTranslate {
		cg.drawPart(rd, pass.Highlight, size, margin)
	}
	if cg.Transforms.HasFlag(TransformRotate) {
		cg.drawPart(rd, PartRotate, size, margin)
	}
}

// drawCorners draws the four L-shaped corner brackets of the cage,
// with arms one margin long along each edge.
func (cg *Cage) drawCorners(rd Renderer, r math32.Box2, margin math32.Vector2, clr color.RGBA, width float32) {
	rd.Line([]math32.Vector2{{X: r.Min.X, Y: r.Min.Y + margin.Y}, {X: r.Min.X, Y: r.Min.Y}, {X: r.Min.X + margin.X, Y: r.Min.Y}}, clr, width)
	rd.Line([]math32.Vector2{{X: r.Max.X, Y: r.Min.Y + margin.Y}, {X: r.Max.X, Y: r.Min.Y}, {X: r.Max.X - margin.X, Y: r.Min.Y}}, clr, width)
	rd.Line([]math32.Vector2{{X: r.Max.X, Y: r.Max.Y - margin.Y}, {X: r.Max.X, Y: r.Max.Y}, {X: r.Max.X - margin.X, Y: r.Max.Y}}, clr, width)
	rd.Line([]math32.Vector2{{X: r.Min.X, Y: r.Max.Y - margin.Y}, {X: r.Min.X, Y: r.Max.Y}, {X: r.Min.X + margin.X, Y: r.Max.Y}}, clr, width)
}

// drawPart draws the handle shape for one part: open polylines get the
// two-layer outline treatment, the translate quad is a plain fill.
func (cg *Cage) drawPart(rd Renderer, p Parts, size, margin math32.Vector2) {
	verts := partVerts(p, size, margin)
	if verts == nil {
		return
	}
	if p == PartTranslate {
		rd.FillPolygon(verts, outlineColor)
		return
	}
	rd.Line(verts, outlineColor, cg.LineWidth+3)
	rd.Line(verts, cg.Color, cg.LineWidth)
}

// partVerts is the fixed per-part vertex table: edges and corners are
// 3-point right-angle hooks into the box, the rotate marker is a
// closed square over its hot-spot, and the translate body is the full
// cage quad. It returns nil for [PartNone].
func partVerts(p Parts, size, margin math32.Vector2) []math32.Vector2 {
	switch p {
	case PartScaleMinX:
		return []math32.Vector2{
			{X: -size.X + margin.X, Y: -size.Y},
			{X: -size.X, Y: -size.Y},
			{X: -size.X, Y: size.Y},
		}
	case PartScaleMaxX:
		return []math32.Vector2{
			{X: size.X - margin.X, Y: -size.Y},
			{X: size.X, Y: -size.Y},
			{X: size.X, Y: size.Y},
		}
	case PartScaleMinY:
		return []math32.Vector2{
			{X: -size.X, Y: -size.Y + margin.Y},
			{X: -size.X, Y: -size.Y},
			{X: size.X, Y: -size.Y},
		}
	case PartScaleMaxY:
		return []math32.Vector2{
			{X: -size.X, Y: size.Y - margin.Y},
			{X: -size.X, Y: size.Y},
			{X: size.X, Y: size.Y},
		}
	case PartScaleMinXMinY:
		return []math32.Vector2{
			{X: -size.X + margin.X, Y: -size.Y},
			{X: -size.X + margin.X, Y: -size.Y + margin.Y},
			{X: -size.X, Y: -size.Y + margin.Y},
		}
	case PartScaleMinXMaxY:
		return []math32.Vector2{
			{X: -size.X + margin.X, Y: size.Y},
			{X: -size.X + margin.X, Y: size.Y - margin.Y},
			{X: -size.X, Y: size.Y - margin.Y},
		}
	case PartScaleMaxXMinY:
		return []math32.Vector2{
			{X: size.X - margin.X, Y: -size.Y},
			{X: size.X - margin.X, Y: -size.Y + margin.Y},
			{X: size.X, Y: -size.Y + margin.Y},
		}
	case PartScaleMaxXMaxY:
		return []math32.Vector2{
			{X: size.X - margin.X, Y: size.Y},
			{X: size.X - margin.X, Y: size.Y - margin.Y},
			{X: size.X, Y: size.Y - margin.Y},
		}
	case PartRotate:
		r := rotateRegion(size, margin)
		return []math32.Vector2{
			{X: r.Min.X, Y: r.Min.Y},
			{X: r.Min.X, Y: r.Max.Y},
			{X: r.Max.X, Y: r.Max.Y},
			{X: r.Max.X, Y: r.Min.Y},
		}
	case PartTranslate:
		return []math32.Vector2{
			{X: -size.X, Y: -size.Y},
			{X: -size.X, Y: size.Y},
			{X: size.X, Y: size.Y},
			{X: size.X, Y: -size.Y},
		}
	}
	return nil
}
