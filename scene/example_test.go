// SPDX-License-Identifier: MIT

package scene_test

import (
	"fmt"

	"github.com/katalvlaran/leftstim/geom"
	"github.com/katalvlaran/leftstim/scene"
)

// ExampleScene builds a stimulus around figure A2 and then its context
// variant with the figure removed.
func ExampleScene() {
	s, err := scene.New(scene.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = s.AddFigureByName("A2"); err != nil {
		fmt.Println(err)
		return
	}
	s.RandomlyPositionFigure()
	s.ExtendTwoThirdsFigureLines()
	for _, o := range []geom.Orientation{geom.Horizontal, geom.Vertical, geom.Diagonal} {
		if err = s.AddRandomLine(o); err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Println("figure:", s.Figure().Name())
	fmt.Println("extended:", s.Figure().ExtendedCount())
	fmt.Println("distractors:", len(s.ExtraLines())+len(s.FigureLinkedLines()))

	derived := len(s.Figure().Lines()) + len(s.FigureLinkedLines())
	part, err := s.ReplaceFigureWithLines()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("figure removed:", s.Figure() == nil)
	fmt.Println("partition complete:", part.Total() == derived)
	// Output:
	// figure: A2
	// extended: 4
	// distractors: 3
	// figure removed: true
	// partition complete: true
}
