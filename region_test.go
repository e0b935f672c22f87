// Copyright (c) 2026, Manipkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cage

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestMargins(t *testing.T) {
	// wider than tall: x margin is aspect-compensated
	m := margins(math32.Vec2(10, 5))
	tolassert.Equal(t, 0.25, m.X)
	tolassert.Equal(t, 0.25, m.Y)

	// taller than wide: y margin is aspect-compensated
	m = margins(math32.Vec2(5, 10))
	tolassert.Equal(t, 0.25, m.X)
	tolassert.Equal(t, 0.25, m.Y)

	// square cage: no compensation
	m = margins(math32.Vec2(2, 2))
	tolassert.Equal(t, 0.1, m.X)
	tolassert.Equal(t, 0.1, m.Y)
}

func TestPivotForScalePart(t *testing.T) {
	tests := []struct {
		part                   Parts
		pivot                  math32.Vector2
		constrainX, constrainY bool
	}{
		{PartScaleMinX, math32.Vec2(0.5, 0), false, true},
		{PartScaleMaxX, math32.Vec2(-0.5, 0), false, true},
		{PartScaleMinY, math32.Vec2(0, 0.5), true, false},
		{PartScaleMaxY, math32.Vec2(0, -0.5), true, false},
		{PartScaleMinXMinY, math32.Vec2(0.5, 0.5), false, false},
		{PartScaleMinXMaxY, math32.Vec2(0.5, -0.5), false, false},
		{PartScaleMaxXMinY, math32.Vec2(-0.5, 0.5), false, false},
		{PartScaleMaxXMaxY, math32.Vec2(-0.5, -0.5), false, false},
	}
	for _, tt := range tests {
		pivot, cx, cy := pivotForScalePart(tt.part)
		assert.Equal(t, tt.pivot, pivot, tt.part.String())
		assert.Equal(t, tt.constrainX, cx, tt.part.String())
		assert.Equal(t, tt.constrainY, cy, tt.part.String())

		// the pivot is always the opposite edge or corner
		assert.Contains(t, []float32{-0.5, 0, 0.5}, pivot.X)
		assert.Contains(t, []float32{-0.5, 0, 0.5}, pivot.Y)
		if tt.part.IsCorner() {
			assert.False(t, cx || cy, tt.part.String())
		} else {
			assert.True(t, cx != cy, tt.part.String())
		}
	}

	assert.Panics(t, func() { pivotForScalePart(PartNone) })
	assert.Panics(t, func() { pivotForScalePart(PartTranslate) })
	assert.Panics(t, func() { pivotForScalePart(PartRotate) })
}

func TestRotateRegion(t *testing.T) {
	// dims (2,2): size (1,1), margin (0.1,0.1)
	r := rotateRegion(math32.Vec2(1, 1), math32.Vec2(0.1, 0.1))
	tolassert.Equal(t, -0.05, r.Min.X)
	tolassert.Equal(t, 0.05, r.Max.X)
	tolassert.Equal(t, 1.05, r.Min.Y)
	tolassert.Equal(t, 1.15, r.Max.Y)
}

func TestTranslateRegion(t *testing.T) {
	r := translateRegion(math32.Vec2(1, 1), math32.Vec2(0.1, 0.1))
	tolassert.Equal(t, -0.9, r.Min.X)
	tolassert.Equal(t, 0.9, r.Max.X)
	tolassert.Equal(t, -0.9, r.Min.Y)
	tolassert.Equal(t, 0.9, r.Max.Y)
}

func TestEdgeRegions(t *testing.T) {
	xmin, xmax, ymin, ymax := edgeRegions(math32.Vec2(1, 1), math32.Vec2(0.1, 0.1))
	// strips span the full cross axis so their intersections are the corners
	tolassert.Equal(t, -1, xmin.Min.X)
	tolassert.Equal(t, -0.9, xmin.Max.X)
	tolassert.Equal(t, -1, xmin.Min.Y)
	tolassert.Equal(t, 1, xmin.Max.Y)
	tolassert.Equal(t, 0.9, xmax.Min.X)
	tolassert.Equal(t, 1, xmax.Max.X)
	tolassert.Equal(t, -0.9, ymin.Max.Y)
	tolassert.Equal(t, -1, ymin.Min.X)
	tolassert.Equal(t, 1, ymin.Max.X)
	tolassert.Equal(t, 0.9, ymax.Min.Y)
	tolassert.Equal(t, 1, ymax.Max.Y)
}
