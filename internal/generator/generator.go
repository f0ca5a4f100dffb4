// SPDX-License-Identifier: MIT

// Package generator holds the stimulus recipe shared by the batch CLI and the
// HTTP service: figure placement, partial extension, loose-end closure and a
// budget of distractor lines, then the three output variants.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/leftstim/geom"
	"github.com/katalvlaran/leftstim/render"
	"github.com/katalvlaran/leftstim/scene"
)

// ErrUnknownVariant indicates a variant name other than the three outputs.
var ErrUnknownVariant = errors.New("generator: unknown variant")

// Recipe describes how one stimulus is assembled.
type Recipe struct {
	// Figure is a template name; empty picks one at random.
	Figure string
	// ExtraLines is the number of distractor steps.
	ExtraLines int
	// GrowChance is the probability a step grows a line through the figure
	// instead of adding a random line.
	GrowChance float64
	// AlignChance and ShiftChance are the probabilities of moving the figure
	// onto the frame after random positioning.
	AlignChance float64
	ShiftChance float64
}

// DefaultRecipe mirrors the mass-production settings: a random figure, five
// distractor steps and a 20% chance of growing each one.
func DefaultRecipe() Recipe {
	return Recipe{ExtraLines: 5, GrowChance: 0.2}
}

// Build assembles a scene following r. rng drives the recipe's own choices and
// should also be handed to the scene through opts for reproducibility.
func Build(r Recipe, rng *rand.Rand, opts ...scene.Option) (*scene.Scene, error) {
	s, err := scene.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	if r.Figure == "" {
		_, err = s.AddRandomFigure()
	} else {
		err = s.AddFigureByName(r.Figure)
	}
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	s.RandomlyPositionFigure()
	if rng.Float64() < r.AlignChance {
		s.AlignFigureWithFrame()
	}
	if rng.Float64() < r.ShiftChance {
		s.ShiftFigureToFrame()
	}
	s.ExtendTwoThirdsFigureLines()
	if _, err = s.CloseFigureFreePoints(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	for i := 0; i < r.ExtraLines; i++ {
		if rng.Float64() < r.GrowChance && s.GrowFigureLine() {
			continue
		}
		o := [...]geom.Orientation{geom.Horizontal, geom.Vertical, geom.Diagonal}[rng.Intn(3)]
		if err = s.AddRandomLine(o); err != nil {
			return nil, fmt.Errorf("Build: line %d: %w", i, err)
		}
	}

	return s, nil
}

// Variant names one of the three images produced per stimulus.
type Variant string

// Output variants, in the order they must be rendered.
const (
	OnlyFigure     Variant = "onlyfigure"
	EmbeddedFigure Variant = "embeddedfigure"
	NoFigure       Variant = "nofigure"
)

// Variants lists the outputs in rendering order.
var Variants = [...]Variant{OnlyFigure, EmbeddedFigure, NoFigure}

// ParseVariant resolves a variant name.
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants {
		if string(v) == name {
			return v, nil
		}
	}

	return "", fmt.Errorf("ParseVariant: %q: %w", name, ErrUnknownVariant)
}

// Render draws variant v of s onto surf. NoFigure jiggles the distractors and
// removes the figure, so it has to come last.
func Render(s *scene.Scene, v Variant, surf render.Surface) error {
	switch v {
	case OnlyFigure:
		render.DrawFigureOnly(s, surf)
	case EmbeddedFigure:
		render.Draw(s, surf)
	case NoFigure:
		s.JiggleExtraLines()
		if _, err := s.ReplaceFigureWithLines(); err != nil {
			return fmt.Errorf("Render: %s: %w", v, err)
		}
		render.Draw(s, surf)
	default:
		return fmt.Errorf("Render: %q: %w", v, ErrUnknownVariant)
	}

	return nil
}

// FileName is the output name of variant v: <figure>_<id>_<variant>.<ext>.
func FileName(figure, id string, v Variant, ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s", figure, id, v, ext)
}
