// SPDX-License-Identifier: MIT

package geom

// OnLineTolerance is the distance within which a point counts as lying on a line.
const OnLineTolerance = 1e-3

// ParallelTolerance is the absolute cross-product magnitude below which two
// direction vectors are treated as parallel.
const ParallelTolerance = 1e-4

// MinFlingLength is the minimum endpoint separation of a flung line.
const MinFlingLength = 50.0

// MaxFlingAttempts bounds the retries of every separation-constrained fling.
const MaxFlingAttempts = 100

// jiggleFraction is the share of the distance toward each owner endpoint that
// bounds a jiggle, i.e. the perturbation sub-segment.
const jiggleFraction = 3.0

// Method tags used as error prefixes.
const (
	methodIntersection     = "Intersection"
	methodSlope            = "Slope"
	methodFlingTo          = "FlingTo"
	methodShift            = "Shift"
	methodJiggle           = "Jiggle"
	methodParseOrientation = "ParseOrientation"
)
