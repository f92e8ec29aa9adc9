package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/sheets/pkg/animation"
	"github.com/go-drift/sheets/pkg/geometry"
)

// This example shows how to create and control a progress controller.
func ExampleProgressController() {
	controller := animation.NewProgressController(
		300*time.Millisecond, // forward
		250*time.Millisecond, // reverse
	)
	controller.Curve = animation.EaseOut

	// Listen for value changes
	controller.AddListener(func() {
		fmt.Printf("Progress: %.2f\n", controller.Value)
	})

	// Animate in (0 -> 1)
	controller.Forward()

	// Later, animate out (1 -> 0)
	controller.Reverse()

	// Clean up when done
	controller.Dispose()
}

// This example shows how to react to transition completion.
func ExampleProgressController_statusListener() {
	controller := animation.NewProgressController(300*time.Millisecond, 0)

	controller.AddStatusListener(func(status animation.Status) {
		switch status {
		case animation.StatusDismissed:
			fmt.Println("Fully hidden; safe to remove")
		case animation.StatusCompleted:
			fmt.Println("Fully shown")
		}
	})

	controller.Forward()
	controller.Dispose()
}

// This example shows how to map progress onto a slide offset.
func ExampleTween() {
	slide := animation.TweenOffset(
		geometry.Offset{X: 0, Y: 600}, // off-screen below
		geometry.Offset{X: 0, Y: 0},   // settled
	)

	mid := slide.Evaluate(0.5)
	fmt.Printf("Offset at 0.5: (%.0f, %.0f)\n", mid.X, mid.Y)

	// Output:
	// Offset at 0.5: (0, 300)
}
