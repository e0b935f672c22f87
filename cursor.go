// Copyright (c) 2026, Manipkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cage

import "cogentcore.org/core/cursors"

// CursorHint returns the cursor to display for the given highlighted
// part. A cage embedded in a 3D view always gets the generic four-way
// move cursor, since its local axes need not align with the screen.
func (cg *Cage) CursorHint(highlight Parts) cursors.Cursor {
	if cg.Embedded3D {
		return cursors.Move
	}
	switch highlight {
	case PartTranslate:
		return cursors.Grab
	case PartScaleMinX, PartScaleMaxX:
		return cursors.ResizeEW
	case PartScaleMinY, PartScaleMaxY:
		return cursors.ResizeNS
	case PartScaleMinXMinY, PartScaleMinXMaxY, PartScaleMaxXMinY, PartScaleMaxXMaxY:
		// TODO: per-corner diagonal resize cursors
		return cursors.Move
	case PartRotate:
		return cursors.Crosshair
	}
	return cursors.Arrow
}
