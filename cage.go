// Copyright (c) 2026, Manipkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cage implements an interactive rectangular cage manipulator:
// a 2D bounding box control that translates, scales, or rotates an
// associated 4x4 offset matrix as the user drags its edges, corners,
// or rotate handle.
//
// The cage is driven by its host environment: the host classifies a
// press with [Cage.Classify], opens a modal session with [Cage.Begin],
// feeds cursor motion to [Cage.Update], and closes the session with
// [Cage.End] to commit or cancel. [Cage.Draw] encodes the cage's
// primitives into an abstract [Renderer] for both display and
// pick-selection passes.
package cage

//go:generate core generate

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// resizerWidth is the fixed divisor used to derive the on-screen
// margin of the resize handles from the cage dimensions.
const resizerWidth = 20

// Parts are the interactive regions of the cage that a cursor
// position can resolve to. Exactly one part wins per hit test:
// corners take priority over the edges they overlap, edges over the
// translate body, and the rotate hot-spot is tested last.
type Parts int32 //enums:enum -trim-prefix Part

const (
	// PartNone is the absence of an interactive region: no interaction.
	PartNone Parts = iota

	// PartTranslate is the inner body of the cage, inset by the margin,
	// which translates the whole cage. It has no visible handle and is
	// only drawn (as a filled quad) during a selection pass.
	PartTranslate

	// PartRotate is the rotate hot-spot centered just above the top edge.
	PartRotate

	// PartScaleMinX is the left edge strip.
	PartScaleMinX

	// PartScaleMaxX is the right edge strip.
	PartScaleMaxX

	// PartScaleMinY is the bottom edge strip.
	PartScaleMinY

	// PartScaleMaxY is the top edge strip.
	PartScaleMaxY

	// PartScaleMinXMinY is the bottom-left corner.
	PartScaleMinXMinY

	// PartScaleMinXMaxY is the top-left corner.
	PartScaleMinXMaxY

	// PartScaleMaxXMinY is the bottom-right corner.
	PartScaleMaxXMinY

	// PartScaleMaxXMaxY is the top-right corner.
	PartScaleMaxXMaxY
)

// IsScale returns whether the part is one of the 8 edge or corner
// scale parts.
func (p Parts) IsScale() bool {
	return p >= PartScaleMinX && p <= PartScaleMaxXMaxY
}

// IsCorner returns whether the part is one of the 4 corner scale parts.
func (p Parts) IsCorner() bool {
	return p >= PartScaleMinXMinY && p <= PartScaleMaxXMaxY
}

// Transforms are the transform operations a cage is allowed to
// perform. Scale and ScaleUniform may both be set; ScaleUniform
// overrides the per-axis result with the dominant axis.
type Transforms int64 //enums:bitflag -trim-prefix Transform

const (
	// TransformTranslate enables dragging the cage body to translate.
	// It also provides the translate-relative frame that scale pivots
	// are computed in; without it, scaling is about the cage center.
	TransformTranslate Transforms = iota

	// TransformRotate enables the rotate handle above the top edge.
	TransformRotate

	// TransformScale enables per-axis scaling from the edge and corner
	// handles.
	TransformScale

	// TransformScaleUniform applies the dominant axis scale factor
	// equally to both axes.
	TransformScaleUniform
)

// Property is an externally bound storage target for the cage offset
// matrix, held as a flat array of 16 floats in column-major order.
// The cage re-reads the bound value at the start of each interaction
// update and pushes each recomputed matrix back out.
type Property interface {
	// Len returns the number of elements in the bound value.
	// A matrix binding must hold exactly 16.
	Len() int

	// Value returns the current bound value.
	Value() []float32

	// SetValue stores the given value in the bound target. The slice
	// is only valid for the duration of the call.
	SetValue(vals []float32)
}

// Cage is a rectangular manipulator acting as a cage around its
// content. Interacting translates, scales, or rotates the cage's
// offset matrix. All configuration fields are read at the start of
// each call. Cage runs on the host UI/event thread and is not safe
// for concurrent use.
type Cage struct {

	// Dimensions is the width and height of the cage in local units.
	// Both must be > 0.
	Dimensions math32.Vector2

	// Transforms is the set of enabled transform operations.
	Transforms Transforms

	// Matrix is the offset matrix the cage represents and mutates,
	// in column-major order with the translation at indices 12 and 13.
	Matrix math32.Matrix4

	// Color is the active color used for handle and corner lines.
	Color color.RGBA

	// LineWidth is the width of handle and corner lines. Each line is
	// underlaid with a neutral dark outline drawn 3 wider.
	LineWidth float32

	// Embedded3D indicates that the 2D cage is embedded in a 3D view,
	// which forces the generic four-way move cursor hint.
	Embedded3D bool

	// ProjectPoint projects a cursor position in device coordinates
	// into widget-local space. It reports false on a degenerate view
	// or orientation, in which case interaction falls back to the
	// local origin. If nil, cursor positions are taken as already
	// being in local space.
	ProjectPoint func(pt math32.Vector2) (math32.Vector2, bool)

	// Property is the optional external binding for the offset matrix.
	Property Property

	// OnRedraw is called after each interaction update so the host
	// can tag its region for redraw.
	OnRedraw func()

	// OnSyntheticMove is called after each interaction update so the
	// host can synthesize a pointer-move event to keep dependent UI
	// in sync.
	OnSyntheticMove func()

	// session is the active modal interaction; nil when idle.
	session *session
}

// NewCage returns a new [Cage] with unit dimensions, an identity
// offset matrix, and the translate, rotate, and scale transforms
// enabled.
func NewCage() *Cage {
	cg := &Cage{}
	cg.Dimensions.Set(1, 1)
	cg.Matrix = *math32.Identity4()
	cg.LineWidth = 1
	cg.Color = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	cg.Transforms.SetFlag(true, TransformTranslate, TransformRotate, TransformScale)
	return cg
}

// project maps a device-space cursor position into widget-local space,
// through [Cage.ProjectPoint] when set.
func (cg *Cage) project(pt math32.Vector2) (math32.Vector2, bool) {
	if cg.ProjectPoint == nil {
		return pt, true
	}
	return cg.ProjectPoint(pt)
}
