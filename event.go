// Copyright (c) 2026, Manipkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cage

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
)

// HandleEvent drives the modal engine directly from pointer events:
// a press on an interactive part opens a session, drags update it,
// and release commits. Cancel stays an explicit host call, End(true).
// Events the cage consumes are marked handled. Hosts that manage
// their own event routing can call [Cage.Classify], [Cage.Begin],
// [Cage.Update], and [Cage.End] instead.
func (cg *Cage) HandleEvent(e events.Event) {
	pos := math32.FromPoint(e.Pos())
	switch e.Type() {
	case events.MouseDown:
		part := cg.Classify(pos)
		if part == PartNone {
			return
		}
		if errors.Log(cg.Begin(part, pos)) != nil {
			return
		}
		e.SetHandled()
	case events.MouseDrag:
		if cg.session == nil {
			return
		}
		cg.Update(pos)
		e.SetHandled()
	case events.MouseUp:
		if cg.session == nil {
			return
		}
		cg.End(false)
		e.SetHandled()
	}
}
