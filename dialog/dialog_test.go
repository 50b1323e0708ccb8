package dialog

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMode(t *testing.T) {
	p, err := FromMode("console", os.Stdin, os.Stdout, nil)
	require.NoError(t, err)
	assert.IsType(t, &Console{}, p)

	p, err = FromMode("MODAL", os.Stdin, os.Stdout, nil)
	require.NoError(t, err)
	assert.IsType(t, &Modal{}, p)

	p, err = FromMode("", os.Stdin, os.Stdout, nil)
	require.NoError(t, err)
	assert.NotNil(t, p)

	_, err = FromMode("gui", os.Stdin, os.Stdout, nil)
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestOptionsDefaults(t *testing.T) {
	var nilOpts *Options
	assert.False(t, nilOpts.withDefaults().Styles.isZero())

	opts := (&Options{Acknowledge: true}).withDefaults()
	assert.True(t, opts.Acknowledge)
	assert.False(t, opts.Styles.isZero())
}

func TestNormalizeMode(t *testing.T) {
	assert.Equal(t, ModeConsole, NormalizeMode(" Console "))
	assert.Equal(t, ModeAuto, NormalizeMode(""))
	assert.Equal(t, "gui", NormalizeMode("GUI"))

	p, err := FromMode(" console", os.Stdin, os.Stdout, nil)
	require.NoError(t, err)
	assert.IsType(t, &Console{}, p)
}
