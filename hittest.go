// Copyright (c) 2026, Manipkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cage

import "cogentcore.org/core/math32"

// Classify returns the interactive part under the given cursor
// position, in device coordinates, testing only the regions enabled by
// [Cage.Transforms]. The translate body is tested first so that the
// boundary handles are not shadowed by it, then the scale strips with
// corners before edges, then the rotate hot-spot. It returns
// [PartNone] when nothing is hit or when the cursor cannot be
// projected into local space.
func (cg *Cage) Classify(pt math32.Vector2) Parts {
	local, ok := cg.project(pt)
	if !ok {
		return PartNone
	}
	size := cg.Dimensions.MulScalar(0.5)
	margin := margins(cg.Dimensions)

	if cg.Transforms.HasFlag(TransformTranslate) {
		if translateRegion(size, margin).ContainsPoint(local) {
			return PartTranslate
		}
	}

	if cg.Transforms.HasFlag(TransformScale) || cg.Transforms.HasFlag(TransformScaleUniform) {
		xmin, xmax, ymin, ymax := edgeRegions(size, margin)
		// a point inside both an x and a y strip is a corner, so each
		// x strip re-tests the y strips before settling on the edge.
		switch {
		case xmin.ContainsPoint(local):
			if ymin.ContainsPoint(local) {
				return PartScaleMinXMinY
			}
			if ymax.ContainsPoint(local) {
				return PartScaleMinXMaxY
			}
			return PartScaleMinX
		case xmax.ContainsPoint(local):
			if ymin.ContainsPoint(local) {
				return PartScaleMaxXMinY
			}
			if ymax.ContainsPoint(local) {
				return PartScaleMaxXMaxY
			}
			return PartScaleMaxX
		case ymin.ContainsPoint(local):
			return PartScaleMinY
		case ymax.ContainsPoint(local):
			return PartScaleMaxY
		}
	}

	if cg.Transforms.HasFlag(TransformRotate) {
		if rotateRegion(size, margin).ContainsPoint(local) {
			return PartRotate
		}
	}

	return PartNone
}
