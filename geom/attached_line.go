// SPDX-License-Identifier: MIT
// Package: leftstim/geom
//
// attached_line.go - lines anchored on two owner lines.
//
// Invariant: after any successful mutation Start lies on StartOwner and End on
// EndOwner within OnLineTolerance. Mutators either apply fully or leave the
// line untouched and return an error.

package geom

import "math/rand"

// AttachedLine is a Line whose endpoints are anchored on two owner lines.
// Owners are not owned: they point at frame borders or other scene lines.
type AttachedLine struct {
	Line

	StartOwner *Line
	EndOwner   *Line
}

// NewAttachedLine returns the line start→end anchored on startOwner/endOwner.
func NewAttachedLine(start, end Point, startOwner, endOwner *Line) *AttachedLine {
	return &AttachedLine{
		Line:       Line{Start: start, End: end},
		StartOwner: startOwner,
		EndOwner:   endOwner,
	}
}

// Shift always fails: attached lines move only by re-attachment or jiggling.
func (a *AttachedLine) Shift(dx, dy float64) error {
	return geomErrorf(methodShift, "attached line %s by (%g, %g)", ErrInvalidOperation, a.Line, dx, dy)
}

// ChangeStartLine re-anchors the start on owner at p.
func (a *AttachedLine) ChangeStartLine(p Point, owner *Line) {
	a.Start, a.StartOwner = p, owner
}

// ChangeEndLine re-anchors the end on owner at p.
func (a *AttachedLine) ChangeEndLine(p Point, owner *Line) {
	a.End, a.EndOwner = p, owner
}

// TouchesLine reports whether l is one of a's owners.
func (a *AttachedLine) TouchesLine(l *Line) bool {
	return a.StartOwner == l || a.EndOwner == l
}

// Attached reports whether both endpoints lie on their owners.
func (a *AttachedLine) Attached() bool {
	if a.StartOwner == nil || a.EndOwner == nil {
		return false
	}

	return a.Start.IsOnLine(*a.StartOwner) && a.End.IsOnLine(*a.EndOwner)
}

// jiggleSegment is the part of owner between p and one third of the way toward
// each of owner's endpoints.
func jiggleSegment(p Point, owner *Line) Line {
	return Line{
		Start: p.Add(owner.Start.Sub(p).Scale(1 / jiggleFraction)),
		End:   p.Add(owner.End.Sub(p).Scale(1 / jiggleFraction)),
	}
}

// JiggleStart moves the start to a random nearby point on StartOwner.
func (a *AttachedLine) JiggleStart(rng *rand.Rand) error {
	if a.StartOwner == nil {
		return geomErrorf(methodJiggle, "start of %s has no owner", ErrInvalidOperation, a.Line)
	}
	a.Start = snapOnto(jiggleSegment(a.Start, a.StartOwner).RandomPoint(rng), *a.StartOwner)

	return nil
}

// JiggleEnd moves the end to a random nearby point on EndOwner.
func (a *AttachedLine) JiggleEnd(rng *rand.Rand) error {
	if a.EndOwner == nil {
		return geomErrorf(methodJiggle, "end of %s has no owner", ErrInvalidOperation, a.Line)
	}
	a.End = snapOnto(jiggleSegment(a.End, a.EndOwner).RandomPoint(rng), *a.EndOwner)

	return nil
}

// JiggleAll jiggles the start, then moves the end so the line keeps its
// orientation: axis-aligned lines intersect a parallel probe through the new
// start with EndOwner, diagonal lines jiggle the end independently.
// On failure (typically ErrParallelLines) the line is left untouched.
//
// Complexity: O(1) plus one intersection for non-parallel owners.
func (a *AttachedLine) JiggleAll(rng *rand.Rand) error {
	if a.StartOwner == nil || a.EndOwner == nil {
		return geomErrorf(methodJiggle, "%s is not fully attached", ErrInvalidOperation, a.Line)
	}

	orientation := a.Orientation()
	start := snapOnto(jiggleSegment(a.Start, a.StartOwner).RandomPoint(rng), *a.StartOwner)

	var end Point
	switch orientation {
	case Horizontal, Vertical:
		probe := Line{Start: start, End: start.Shift(1, 0)}
		if orientation == Vertical {
			probe.End = start.Shift(0, 1)
		}
		p, err := probe.Intersection(*a.EndOwner)
		if err != nil {
			return geomErrorf(methodJiggle, "keep %s orientation", err, orientation)
		}
		end = snapOnto(p, probe, *a.EndOwner)
	default:
		end = snapOnto(jiggleSegment(a.End, a.EndOwner).RandomPoint(rng), *a.EndOwner)
	}

	a.Start, a.End = start, end

	return nil
}

// ExtendToParents stretches the line so both endpoints sit on their owners.
// When an owner cannot be reached (parallel) or an endpoint would leave b, the
// line is replaced by a fresh random line between the same owners and
// substituted is true. It never fails.
//
// Complexity: O(1).
func (a *AttachedLine) ExtendToParents(b Box, rng *rand.Rand) (substituted bool) {
	if a.StartOwner == nil || a.EndOwner == nil {
		return false
	}
	start, errStart := a.Line.Intersection(*a.StartOwner)
	end, errEnd := a.Line.Intersection(*a.EndOwner)
	if errStart == nil && errEnd == nil {
		start = snapOnto(start, *a.StartOwner)
		end = snapOnto(end, *a.EndOwner)
		if start.InBox(b) && end.InBox(b) {
			a.Start, a.End = start, end
			return false
		}
	}

	a.Start = a.StartOwner.RandomPoint(rng)
	a.End = a.EndOwner.RandomPoint(rng)

	return true
}
