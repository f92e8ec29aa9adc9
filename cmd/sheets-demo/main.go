// Command sheets-demo walks through the sheet stack API without a
// renderer: it pushes a few sheets, replaces and dismisses them, and
// prints the stack after every change notification.
//
// An optional sheets.yaml in the working directory supplies the stack
// defaults.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-drift/sheets/pkg/animation"
	"github.com/go-drift/sheets/pkg/config"
	sheeterrors "github.com/go-drift/sheets/pkg/errors"
	"github.com/go-drift/sheets/pkg/sheets"
)

func main() {
	sheeterrors.SetHandler(&sheeterrors.LogHandler{Verbose: true})

	resolved, err := config.Resolve(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	stack := sheets.NewStackController(nil, sheets.WithConfig(resolved))
	defer stack.Dispose()

	unsub := stack.Notifier().AddListener(func() { printStack(stack) })
	defer unsub()

	fmt.Println("== push three sheets ==")
	menu := stack.Push("menu", sheets.PositionBottom)
	pump()
	stack.Push("filters", sheets.PositionRight,
		sheets.WithDuration(150*time.Millisecond))
	pump()
	stack.Push("confirm", sheets.PositionBottom,
		sheets.WithDismissible(false),
		sheets.WithOnRemoved(func() { fmt.Println("   confirm sheet removed") }))
	pump()

	fmt.Println("== swap the confirm sheet in place ==")
	if _, err := stack.PushReplacement("confirm-v2"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	pump()

	fmt.Println("== pop the topmost with a result ==")
	if err := stack.Pop("accepted"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	pump()

	fmt.Println("== close the rest; the first pusher gets the outcome ==")
	if err := stack.Close("done"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	pump()

	fmt.Printf("menu flow result: %v\n", <-menu)
}

// pump drives frames at ~60fps until every transition settles.
func pump() {
	for animation.HasActiveTickers() {
		animation.StepTickers()
		time.Sleep(16 * time.Millisecond)
	}
}

func printStack(s *sheets.StackController) {
	if s.IsEmpty() {
		fmt.Printf("   stack empty (scrim %.2f)\n", s.Scrim().Progress())
		return
	}
	parts := make([]string, 0, s.Len())
	for _, e := range s.Entries() {
		parts = append(parts, fmt.Sprintf("%v@%s", e.Content(), e.Position()))
	}
	fmt.Printf("   stack[%d]: %s (scrim %.2f)\n",
		s.Len(), strings.Join(parts, ", "), s.Scrim().Progress())
}
