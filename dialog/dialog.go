package dialog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrUnknownMode is returned by FromMode for an unrecognised mode name.
var ErrUnknownMode = errors.New("unknown dialog mode")

// Mode names accepted by FromMode.
const (
	ModeAuto    = "auto"
	ModeConsole = "console"
	ModeModal   = "modal"
)

// Response is the operator's answer to an input dialog.
type Response struct {
	Text      string
	Cancelled bool
}

// Prompter shows blocking dialogs to a human operator.
type Prompter interface {
	// ShowMessage displays text and returns once it has been acknowledged.
	ShowMessage(ctx context.Context, text string) error
	// ShowInput displays prompt and returns the submitted text, or a
	// cancelled Response if the operator backed out.
	ShowInput(ctx context.Context, prompt string) (Response, error)
}

// Options configures Console and Modal prompters.
type Options struct {
	Styles Styles
	// Acknowledge makes Console messages wait for Enter, like a modal OK button.
	Acknowledge bool
}

func (o *Options) withDefaults() *Options {
	if o == nil {
		return &Options{Styles: DefaultStyles()}
	}
	out := *o
	if out.Styles.isZero() {
		out.Styles = DefaultStyles()
	}
	return &out
}

// Auto returns a Modal when both in and out are terminals and a Console otherwise,
// so piped input and CI runs never start a full-screen program.
func Auto(in, out *os.File, opts *Options) Prompter {
	if isTerminal(in) && isTerminal(out) {
		return NewModal(in, out, opts)
	}
	return NewConsole(in, out, opts)
}

// NormalizeMode trims and lowercases a mode name. An empty name means ModeAuto.
func NormalizeMode(mode string) string {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" {
		return ModeAuto
	}
	return mode
}

// FromMode builds the prompter named by mode ("auto", "console" or "modal").
func FromMode(mode string, in, out *os.File, opts *Options) (Prompter, error) {
	switch NormalizeMode(mode) {
	case ModeAuto:
		return Auto(in, out, opts), nil
	case ModeConsole:
		return NewConsole(in, out, opts), nil
	case ModeModal:
		return NewModal(in, out, opts), nil
	}
	return nil, fmt.Errorf("%w: %q (want auto, console or modal)", ErrUnknownMode, mode)
}

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// checkContext reports a cancelled context before a dialog is shown.
func checkContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ctx.Err()
}
