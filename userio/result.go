package userio

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/simonhull/firebird-suite/perch/dialog"
)

// Kind classifies a format failure.
type Kind int

const (
	KindNone Kind = iota
	InvalidInteger
	InvalidDecimal
	InvalidSingleCharacter
)

// Operator-facing descriptions, as returned by ErrorMsg.
const (
	msgInvalidInteger   = "Not a valid integer"
	msgInvalidDecimal   = "Not a valid decimal number"
	msgInvalidCharacter = "Must be a single character"
)

// Sentinel errors matched by FormatError through errors.Is.
var (
	ErrInvalidInteger   = errors.New("not a valid integer")
	ErrInvalidDecimal   = errors.New("not a valid decimal number")
	ErrInvalidCharacter = errors.New("must be a single character")
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case InvalidInteger:
		return "InvalidInteger"
	case InvalidDecimal:
		return "InvalidDecimal"
	case InvalidSingleCharacter:
		return "InvalidSingleCharacter"
	default:
		return "Unknown"
	}
}

// Description returns the operator-facing text for k.
func (k Kind) Description() string {
	switch k {
	case InvalidInteger:
		return msgInvalidInteger
	case InvalidDecimal:
		return msgInvalidDecimal
	case InvalidSingleCharacter:
		return msgInvalidCharacter
	default:
		return ""
	}
}

func (k Kind) sentinel() error {
	switch k {
	case InvalidInteger:
		return ErrInvalidInteger
	case InvalidDecimal:
		return ErrInvalidDecimal
	case InvalidSingleCharacter:
		return ErrInvalidCharacter
	default:
		return nil
	}
}

// FormatError describes input that could not be converted.
type FormatError struct {
	Kind Kind
	Raw  string
}

func (e *FormatError) Error() string {
	reason := e.Kind.sentinel()
	if reason == nil {
		return fmt.Sprintf("%q: invalid input", e.Raw)
	}
	return fmt.Sprintf("%q: %s", e.Raw, reason)
}

// Unwrap returns the sentinel for e.Kind.
func (e *FormatError) Unwrap() error {
	return e.Kind.sentinel()
}

// Result is the outcome of a single read.
type Result[T any] struct {
	// Value is the converted input, or the zero-like sentinel on failure
	// (0, 0.0 or ' ').
	Value T
	OK    bool
	// Raw is the text exactly as entered; "" when the dialog was cancelled.
	Raw       string
	Cancelled bool
	Kind      Kind
	// Reason is the operator-facing description; empty when OK.
	Reason string
}

// Err returns a *FormatError for a failed read and nil otherwise.
func (r Result[T]) Err() error {
	if r.OK {
		return nil
	}
	return &FormatError{Kind: r.Kind, Raw: r.Raw}
}

func success[T any](v T, resp dialog.Response) Result[T] {
	return Result[T]{Value: v, OK: true, Raw: rawText(resp), Cancelled: resp.Cancelled}
}

func failure[T any](sentinel T, kind Kind, resp dialog.Response) Result[T] {
	return Result[T]{
		Value:     sentinel,
		Raw:       rawText(resp),
		Cancelled: resp.Cancelled,
		Kind:      kind,
		Reason:    kind.Description(),
	}
}

func rawText(resp dialog.Response) string {
	if resp.Cancelled {
		return ""
	}
	return resp.Text
}

// ParseInt converts the whole of the response to a base-10 int. An optional
// leading sign is allowed; whitespace, digit separators and trailing text are not.
func ParseInt(resp dialog.Response) Result[int] {
	raw := rawText(resp)
	v, err := strconv.ParseInt(raw, 10, strconv.IntSize)
	if err != nil {
		return failure(0, InvalidInteger, resp)
	}
	return success(int(v), resp)
}

// ParseFloat converts the response to a float64. Leading and trailing
// whitespace and control characters are ignored. The only spelled-out values
// are Infinity and NaN, exactly so cased, with an optional sign. Values
// outside the float64 range fail rather than saturating to infinity.
func ParseFloat(resp dialog.Response) Result[float64] {
	v, ok := parseDecimal(trimLiteral(rawText(resp)))
	if !ok {
		return failure(0.0, InvalidDecimal, resp)
	}
	return success(v, resp)
}

func parseDecimal(s string) (float64, bool) {
	sign, body := 1, s
	if body != "" && (body[0] == '+' || body[0] == '-') {
		if body[0] == '-' {
			sign = -1
		}
		body = body[1:]
	}

	switch body {
	case "Infinity":
		return math.Inf(sign), true
	case "NaN":
		return math.NaN(), true
	case "":
		return 0, false
	}
	// strconv would also take inf, nan and other case variants.
	switch body[0] {
	case 'i', 'I', 'n', 'N':
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseString returns the response text unchanged. It never fails.
func ParseString(resp dialog.Response) Result[string] {
	return success(rawText(resp), resp)
}

// ParseChar succeeds only when the response is exactly one character.
// Text that is not valid UTF-8 never counts as a character.
func ParseChar(resp dialog.Response) Result[rune] {
	raw := rawText(resp)
	if !utf8.ValidString(raw) {
		return failure(' ', InvalidSingleCharacter, resp)
	}
	runes := []rune(raw)
	if len(runes) != 1 {
		return failure(' ', InvalidSingleCharacter, resp)
	}
	return success(runes[0], resp)
}

// trimLiteral strips the ASCII space and control characters that surround a
// typed number.
func trimLiteral(s string) string {
	start, end := 0, len(s)
	for start < end && s[start] <= ' ' {
		start++
	}
	for end > start && s[end-1] <= ' ' {
		end--
	}
	return s[start:end]
}
