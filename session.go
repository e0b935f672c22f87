// Copyright (c) 2026, Manipkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cage

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// session is the transient state of one modal drag, created by
// [Cage.Begin] and destroyed by [Cage.End]. All matrix recomputation
// during the session reads originMatrix, never the live matrix, so
// every frame's result is a pure function of (origin, current cursor):
// there is no drift accumulation, and cancel is a simple restore.
// Nothing else may mutate originMatrix while the session is open.
type session struct {
	part         Parts
	originCursor math32.Vector2
	originMatrix math32.Matrix4
}

// Active reports whether a modal interaction session is in progress.
func (cg *Cage) Active() bool {
	return cg.session != nil
}

// Begin opens a modal interaction session for the given part, at the
// given cursor position in device coordinates. The current offset
// matrix is copied as the session origin, and the cursor is projected
// into local space, falling back to the local origin when the
// projection fails. It returns an error if a session is already
// active: a cage supports one session at a time.
func (cg *Cage) Begin(part Parts, cursor math32.Vector2) error {
	if cg.session != nil {
		return errors.New("cage: interaction session already active")
	}
	ss := &session{part: part, originMatrix: cg.Matrix}
	if local, ok := cg.project(cursor); ok {
		ss.originCursor = local
	}
	cg.session = ss
	return nil
}

// Update recomputes the full offset matrix for the given cursor
// position, in device coordinates, as a pure function of the session
// origin and the current cursor. The result is pushed to the bound
// [Property] (if any), followed by the OnRedraw and OnSyntheticMove
// host callbacks. It always reports true: the session only ends by an
// explicit [Cage.End]. Update panics when no session is active.
func (cg *Cage) Update(cursor math32.Vector2) bool {
	ss := cg.session
	if ss == nil {
		panic("cage: Update called with no active session")
	}

	// Projection depends on the live matrix, which mid-session already
	// holds the previous update's result: project against the origin.
	back := cg.Matrix
	cg.Matrix = ss.originMatrix
	local, ok := cg.project(cursor)
	cg.Matrix = back
	if !ok {
		return true
	}

	// Adopt external edits before recomputing, so matrix components
	// the active part does not control are not silently discarded.
	if cg.Property != nil {
		copy(cg.Matrix[:], cg.Property.Value())
	}

	switch {
	case ss.part == PartTranslate:
		delta := local.Sub(ss.originCursor)
		// start from the origin so nothing but the translation moves
		cg.Matrix = ss.originMatrix
		cg.Matrix[12] = ss.originMatrix[12] + delta.X
		cg.Matrix[13] = ss.originMatrix[13] + delta.Y
	case ss.part == PartRotate:
		// TODO: compute the rotation delta from the cursor angle about
		// the cage center; dragging the handle currently leaves the
		// offset matrix unchanged.
	default:
		cg.Matrix = cg.scaleMatrix(ss, local)
	}

	if cg.Property != nil {
		cg.Property.SetValue(cg.Matrix[:])
	}
	if cg.OnRedraw != nil {
		cg.OnRedraw()
	}
	if cg.OnSyntheticMove != nil {
		cg.OnSyntheticMove()
	}
	return true
}

// scaleMatrix computes the offset matrix for a scale part: the origin
// matrix composed with a scale about the part's pivot.
func (cg *Cage) scaleMatrix(ss *session, local math32.Vector2) math32.Matrix4 {
	var pivot math32.Vector2
	constrainX, constrainY := false, false
	// The pivot frame is translate-relative; without the translate
	// transform, scale about the cage center with no constraints.
	if cg.Transforms.HasFlag(TransformTranslate) {
		pivot, constrainX, constrainY = pivotForScalePart(ss.part)
	}

	// Normalizing the cursor deltas by the dimensions removes
	// dependence on the absolute cage size.
	deltaOrig := ss.originCursor.Sub(pivot).Div(cg.Dimensions)
	deltaCurr := local.Sub(pivot).Div(cg.Dimensions)

	scale := math32.Vec2(1, 1)
	if !constrainX {
		// Canonicalize the direction so the factor does not depend on
		// which side of the pivot the drag started.
		if deltaOrig.X < 0 {
			deltaOrig.X = -deltaOrig.X
			deltaCurr.X = -deltaCurr.X
		}
		scale.X = 1 + (deltaCurr.X-deltaOrig.X)/basisLength(&ss.originMatrix, 0)
	}
	if !constrainY {
		if deltaOrig.Y < 0 {
			deltaOrig.Y = -deltaOrig.Y
			deltaCurr.Y = -deltaCurr.Y
		}
		scale.Y = 1 + (deltaCurr.Y-deltaOrig.Y)/basisLength(&ss.originMatrix, 1)
	}

	// dominant-axis uniform scaling
	if cg.Transforms.HasFlag(TransformScaleUniform) {
		if math32.Abs(scale.X-1) > math32.Abs(scale.Y-1) {
			scale.Y = scale.X
		} else {
			scale.X = scale.Y
		}
	}

	// Scale about the pivot rather than the local origin: translate by
	// what scaling moves the pivot, so the pivot stays fixed.
	sm := math32.Identity4()
	sm[0] = scale.X
	sm[5] = scale.Y
	sm[12] = pivot.X * (1 - scale.X)
	sm[13] = pivot.Y * (1 - scale.Y)

	var out math32.Matrix4
	out.MulMatrices(&ss.originMatrix, sm)
	return out
}

// basisLength returns the length of the given basis column (0 = x,
// 1 = y) of a column-major matrix. Dividing a scale delta by it makes
// the factor invariant to the matrix's existing non-uniform scale.
func basisLength(m *math32.Matrix4, axis int) float32 {
	i := axis * 4
	return math32.Sqrt(m[i]*m[i] + m[i+1]*m[i+1] + m[i+2]*m[i+2])
}

// End closes the active session. On cancel, the offset matrix is
// restored to the session origin and, if bound, pushed back out to the
// external property, fully undoing the interaction; otherwise the last
// computed matrix stands (it was already pushed by Update). End is a
// no-op when no session is active.
func (cg *Cage) End(cancel bool) {
	ss := cg.session
	if ss == nil {
		return
	}
	if cancel {
		cg.Matrix = ss.originMatrix
		if cg.Property != nil {
			cg.Property.SetValue(cg.Matrix[:])
		}
	}
	cg.session = nil
}

// SyncProperty adopts an externally changed property value as the live
// offset matrix. A matrix binding must hold exactly 16 elements; any
// other arity is an invariant violation and panics. It is a no-op when
// no property is bound.
func (cg *Cage) SyncProperty() {
	if cg.Property == nil {
		return
	}
	if cg.Property.Len() != 16 {
		panic("cage: bound matrix property must have 16 elements")
	}
	copy(cg.Matrix[:], cg.Property.Value())
}
