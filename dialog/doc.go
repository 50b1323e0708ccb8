// Package dialog provides the blocking prompt boundary used by perch.
//
// # Overview
//
// A Prompter shows a message and waits for it to be acknowledged, or shows a
// prompt and waits for the operator to submit text or cancel. Three
// implementations ship with the package:
//
//   - Console: line-oriented prompts on any io.Reader/io.Writer pair
//   - Modal: a full-screen bubbletea dialog with a text field
//   - Script: canned answers for tests and non-interactive runs
//
// # Usage
//
//	p := dialog.Auto(os.Stdin, os.Stdout, nil)
//	resp, err := p.ShowInput(ctx, "Amount to deposit")
//	if err == nil && !resp.Cancelled {
//	    fmt.Println("got", resp.Text)
//	}
//
// # Cancellation
//
// A cancelled dialog (Esc in Modal, end of input in Console, an exhausted
// Script) is reported as Response{Cancelled: true} rather than an error.
// Errors are reserved for a prompter that could not run at all.
//
// # Styling
//
// All prompters share the lipgloss Styles type so Console and Modal look alike:
//   - Prompts are cyan and bold
//   - Hints are gray
//   - Messages are framed in a rounded border (Modal) or printed plainly (Console)
package dialog
