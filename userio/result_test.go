package userio

import (
	"math"
	"testing"

	"github.com/simonhull/firebird-suite/perch/dialog"
	"github.com/stretchr/testify/assert"
)

func text(s string) dialog.Response { return dialog.Response{Text: s} }

var cancelled = dialog.Response{Cancelled: true}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name string
		resp dialog.Response
		want int
		ok   bool
	}{
		{"positive", text("42"), 42, true},
		{"negative", text("-17"), -17, true},
		{"explicit plus", text("+8"), 8, true},
		{"leading zeros", text("007"), 7, true},
		{"zero", text("0"), 0, true},
		{"empty", text(""), 0, false},
		{"cancelled", cancelled, 0, false},
		{"letters", text("abc"), 0, false},
		{"partial", text("12abc"), 0, false},
		{"decimal", text("1.5"), 0, false},
		{"leading space", text(" 42"), 0, false},
		{"trailing newline", text("42\n"), 0, false},
		{"underscore", text("1_000"), 0, false},
		{"hex", text("0x1F"), 0, false},
		{"overflow", text("99999999999999999999999"), 0, false},
		{"sign only", text("-"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseInt(tt.resp)
			assert.Equal(t, tt.want, r.Value)
			assert.Equal(t, tt.ok, r.OK)
			if tt.ok {
				assert.NoError(t, r.Err())
				assert.Empty(t, r.Reason)
				return
			}
			assert.Equal(t, "Not a valid integer", r.Reason)
			assert.Equal(t, InvalidInteger, r.Kind)
			assert.ErrorIs(t, r.Err(), ErrInvalidInteger)
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name string
		resp dialog.Response
		want float64
		ok   bool
	}{
		{"integer text", text("3"), 3, true},
		{"decimal", text("12.50"), 12.5, true},
		{"negative", text("-0.25"), -0.25, true},
		{"exponent", text("1e3"), 1000, true},
		{"leading dot", text(".5"), 0.5, true},
		{"surrounding spaces", text("  2.5 "), 2.5, true},
		{"tab and newline", text("\t7\n"), 7, true},
		{"empty", text(""), 0, false},
		{"blank", text("   "), 0, false},
		{"cancelled", cancelled, 0, false},
		{"comma decimal", text("1,5"), 0, false},
		{"currency", text("$5"), 0, false},
		{"two points", text("1.2.3"), 0, false},
		{"out of range", text("1e400"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseFloat(tt.resp)
			assert.Equal(t, tt.ok, r.OK)
			assert.InDelta(t, tt.want, r.Value, 1e-9)
			if !tt.ok {
				assert.Equal(t, "Not a valid decimal number", r.Reason)
				assert.ErrorIs(t, r.Err(), ErrInvalidDecimal)
			}
		})
	}
}

func TestParseFloat_KeepsRawUntrimmed(t *testing.T) {
	r := ParseFloat(text(" 2.5x "))
	assert.False(t, r.OK)
	assert.Equal(t, " 2.5x ", r.Raw)
}

func TestParseFloat_Infinity(t *testing.T) {
	r := ParseFloat(text("Infinity"))
	assert.True(t, r.OK)
	assert.True(t, math.IsInf(r.Value, 1))
}

func TestParseChar(t *testing.T) {
	tests := []struct {
		name string
		resp dialog.Response
		want rune
		ok   bool
	}{
		{"letter", text("d"), 'd', true},
		{"space", text(" "), ' ', true},
		{"digit", text("7"), '7', true},
		{"multibyte", text("é"), 'é', true},
		{"emoji", text("🔥"), '🔥', true},
		{"empty", text(""), ' ', false},
		{"cancelled", cancelled, ' ', false},
		{"two", text("AB"), ' ', false},
		{"three", text("abc"), ' ', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseChar(tt.resp)
			assert.Equal(t, tt.want, r.Value)
			assert.Equal(t, tt.ok, r.OK)
			if !tt.ok {
				assert.Equal(t, "Must be a single character", r.Reason)
				assert.ErrorIs(t, r.Err(), ErrInvalidCharacter)
			}
		})
	}
}

func TestParseString(t *testing.T) {
	for _, s := range []string{"", "  padded  ", "multi word", "42"} {
		r := ParseString(text(s))
		assert.True(t, r.OK)
		assert.Equal(t, s, r.Value)
		assert.NoError(t, r.Err())
	}

	r := ParseString(cancelled)
	assert.True(t, r.OK)
	assert.True(t, r.Cancelled)
	assert.Equal(t, "", r.Value)
}

func TestCancelledIgnoresText(t *testing.T) {
	r := ParseInt(dialog.Response{Text: "42", Cancelled: true})
	assert.False(t, r.OK)
	assert.Equal(t, "", r.Raw)
	assert.True(t, r.Cancelled)
}

func TestFormatError(t *testing.T) {
	err := &FormatError{Kind: InvalidInteger, Raw: "abc"}
	assert.Equal(t, `"abc": not a valid integer`, err.Error())
	assert.ErrorIs(t, err, ErrInvalidInteger)
	assert.NotErrorIs(t, err, ErrInvalidDecimal)
}

func TestKind(t *testing.T) {
	assert.Equal(t, "InvalidDecimal", InvalidDecimal.String())
	assert.Equal(t, "Unknown", Kind(42).String())
	assert.Equal(t, "", KindNone.Description())
	assert.Equal(t, "Must be a single character", InvalidSingleCharacter.Description())
}

func TestParseFloat_SpelledValues(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"Infinity", true},
		{"-Infinity", true},
		{"+Infinity", true},
		{"NaN", true},
		{"-NaN", true},
		{" NaN ", true},
		{"nan", false},
		{"inf", false},
		{"-inf", false},
		{"INFINITY", false},
		{"Inf", false},
		{"+", false},
		{"0x1p3", true},
		{"1f", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r := ParseFloat(text(tt.in))
			assert.Equal(t, tt.ok, r.OK)
			if !tt.ok {
				assert.Equal(t, 0.0, r.Value)
				assert.Equal(t, InvalidDecimal, r.Kind)
			}
		})
	}

	assert.True(t, math.IsInf(ParseFloat(text("-Infinity")).Value, -1))
	assert.True(t, math.IsNaN(ParseFloat(text("NaN")).Value))
	assert.Equal(t, 8.0, ParseFloat(text("0x1p3")).Value)
}

func TestParseChar_InvalidUTF8(t *testing.T) {
	for _, raw := range []string{"\xff", "\xc3", "a\xff"} {
		r := ParseChar(text(raw))
		assert.False(t, r.OK, "%q", raw)
		assert.Equal(t, ' ', r.Value)
		assert.Equal(t, raw, r.Raw)
		assert.Equal(t, "Must be a single character", r.Reason)
	}
}
