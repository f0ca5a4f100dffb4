// SPDX-License-Identifier: MIT
// Package: leftstim/geom
//
// latch.go - one-way state flags.
//
// Contract:
//   • The zero value is Unset; Engage is the only transition.
//   • Engage on an engaged latch is a no-op that reports false.
//   • Latches are plain values: copying a struct copies its latch state.

package geom

// Latch is a one-way flag: it starts Unset and may be Engaged exactly once.
// The zero value is Unset. Every "already grown / extended / locked / closed"
// state in the module is a Latch.
type Latch uint8

const (
	// Unset is the initial state.
	Unset Latch = iota
	// Engaged is the terminal state.
	Engaged
)

// Engage performs the single allowed Unset -> Engaged transition.
// It reports whether the transition happened; an already engaged latch is untouched.
func (l *Latch) Engage() bool {
	if *l == Engaged {
		return false
	}
	*l = Engaged

	return true
}

// Engaged reports whether the latch has been engaged.
func (l Latch) Engaged() bool { return l == Engaged }
