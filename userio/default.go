package userio

import (
	"os"
	"sync"

	"github.com/simonhull/firebird-suite/perch/dialog"
)

var (
	defaultMu sync.Mutex
	defaultIO *IO
)

// Default returns the IO behind the package-level functions. Until SetDefault
// is called it prompts on the process terminal via dialog.Auto.
func Default() *IO {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultIO == nil {
		defaultIO = New(dialog.Auto(os.Stdin, os.Stdout, nil))
	}
	return defaultIO
}

// SetDefault replaces the IO behind the package-level functions.
func SetDefault(o *IO) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultIO = o
}

// Message displays text on the default IO. See IO.Message.
func Message(text string) { Default().Message(text) }

// InputInt prompts for an integer on the default IO. See IO.InputInt.
func InputInt(prompt string) int { return Default().InputInt(prompt) }

// InputFloat prompts for a decimal number on the default IO. See IO.InputFloat.
func InputFloat(prompt string) float64 { return Default().InputFloat(prompt) }

// InputString prompts for text on the default IO. See IO.InputString.
func InputString(prompt string) string { return Default().InputString(prompt) }

// InputChar prompts for a character on the default IO. See IO.InputChar.
func InputChar(prompt string) rune { return Default().InputChar(prompt) }

// Error reports the default IO's error flag.
func Error() bool { return Default().Error() }

// ErrorInput returns the default IO's offending input.
func ErrorInput() string { return Default().ErrorInput() }

// ErrorMsg returns the default IO's error description.
func ErrorMsg() string { return Default().ErrorMsg() }
