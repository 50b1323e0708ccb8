package userio

import (
	"context"
	"sync"

	"github.com/simonhull/firebird-suite/perch/dialog"
	"github.com/simonhull/firebird-suite/perch/logger"
)

// IO is the input/output helper. It remembers the outcome of its most recent
// operation so callers can poll Error, ErrorInput and ErrorMsg.
type IO struct {
	prompter dialog.Prompter
	log      logger.Logger
	name     string

	mu     sync.Mutex
	failed bool
	kind   Kind
	raw    string
	reason string
}

// Option configures an IO
type Option func(*IO)

// WithLogger sets the logger used for per-operation debug lines.
func WithLogger(l logger.Logger) Option {
	return func(o *IO) {
		if l != nil {
			o.log = l
		}
	}
}

// WithName tags every log line with helper=name.
func WithName(name string) Option {
	return func(o *IO) {
		o.name = name
	}
}

// New creates an IO that shows its dialogs through p.
func New(p dialog.Prompter, opts ...Option) *IO {
	o := &IO{prompter: p, log: logger.Default()}
	for _, opt := range opts {
		opt(o)
	}
	if o.name != "" {
		o.log = o.log.WithFields(logger.F("helper", o.name))
	}
	return o
}

// Message displays text and waits for it to be acknowledged. The error flag
// is always cleared.
func (o *IO) Message(text string) {
	o.MessageContext(context.Background(), text)
}

// MessageContext is Message with a context for the dialog.
func (o *IO) MessageContext(ctx context.Context, text string) {
	if err := o.prompter.ShowMessage(ctx, text); err != nil {
		o.log.Warn("userio: message dialog failed", logger.F("error", err))
	}
	o.mu.Lock()
	o.failed = false
	o.mu.Unlock()
	o.log.Debug("userio: message", logger.F("op", "message"))
}

// InputInt prompts for an integer. On bad input it returns 0 and sets the
// error state to "Not a valid integer".
func (o *IO) InputInt(prompt string) int {
	return o.ReadInt(context.Background(), prompt).Value
}

// InputFloat prompts for a decimal number. On bad input it returns 0.0 and
// sets the error state to "Not a valid decimal number".
func (o *IO) InputFloat(prompt string) float64 {
	return o.ReadFloat(context.Background(), prompt).Value
}

// InputString prompts for text and returns it verbatim, "" if cancelled.
// It never sets the error state.
func (o *IO) InputString(prompt string) string {
	return o.ReadString(context.Background(), prompt).Value
}

// InputChar prompts for a single character. Anything else returns ' ' and
// sets the error state to "Must be a single character".
func (o *IO) InputChar(prompt string) rune {
	return o.ReadChar(context.Background(), prompt).Value
}

// ReadInt is InputInt returning the full result of the call.
func (o *IO) ReadInt(ctx context.Context, prompt string) Result[int] {
	r := ParseInt(o.ask(ctx, prompt))
	o.record("int", r.OK, r.Kind, r.Raw)
	return r
}

// ReadFloat is InputFloat returning the full result of the call.
func (o *IO) ReadFloat(ctx context.Context, prompt string) Result[float64] {
	r := ParseFloat(o.ask(ctx, prompt))
	o.record("float", r.OK, r.Kind, r.Raw)
	return r
}

// ReadString is InputString returning the full result of the call.
func (o *IO) ReadString(ctx context.Context, prompt string) Result[string] {
	r := ParseString(o.ask(ctx, prompt))
	o.record("string", r.OK, r.Kind, r.Raw)
	return r
}

// ReadChar is InputChar returning the full result of the call.
func (o *IO) ReadChar(ctx context.Context, prompt string) Result[rune] {
	r := ParseChar(o.ask(ctx, prompt))
	o.record("char", r.OK, r.Kind, r.Raw)
	return r
}

// Error reports whether the most recent operation failed to convert its input.
func (o *IO) Error() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.failed
}

// ErrorInput returns the text behind the most recent failure. It is only
// meaningful while Error is true.
func (o *IO) ErrorInput() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.raw
}

// ErrorMsg describes the most recent failure. It is only meaningful while
// Error is true.
func (o *IO) ErrorMsg() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.reason
}

// Err returns the most recent failure as a *FormatError, or nil.
func (o *IO) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.failed {
		return nil
	}
	return &FormatError{Kind: o.kind, Raw: o.raw}
}

// ask shows the input dialog. A prompter that cannot run counts as a cancel.
func (o *IO) ask(ctx context.Context, prompt string) dialog.Response {
	resp, err := o.prompter.ShowInput(ctx, prompt)
	if err != nil {
		o.log.Warn("userio: input dialog failed", logger.F("prompt", prompt), logger.F("error", err))
		return dialog.Response{Cancelled: true}
	}
	return resp
}

// record stores the outcome of an input operation. A success only lowers the
// flag; the previous raw input and reason are left in place.
func (o *IO) record(op string, ok bool, kind Kind, raw string) {
	o.mu.Lock()
	o.failed = !ok
	if !ok {
		o.kind = kind
		o.raw = raw
		o.reason = kind.Description()
	}
	o.mu.Unlock()

	if ok {
		o.log.Debug("userio: input", logger.F("op", op), logger.F("ok", true))
		return
	}
	o.log.Debug("userio: input", logger.F("op", op), logger.F("ok", false),
		logger.F("raw", raw), logger.F("kind", kind))
}
