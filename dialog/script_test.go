package dialog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScript_ReplaysInOrder(t *testing.T) {
	boom := errors.New("boom")
	s := NewScript("42").Cancel().Fail(boom).Answer("")
	ctx := context.Background()

	resp, err := s.ShowInput(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, Response{Text: "42"}, resp)

	resp, err = s.ShowInput(ctx, "b")
	require.NoError(t, err)
	assert.True(t, resp.Cancelled)

	_, err = s.ShowInput(ctx, "c")
	assert.ErrorIs(t, err, boom)

	resp, err = s.ShowInput(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, Response{Text: ""}, resp)

	assert.Equal(t, 0, s.Remaining())
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.Prompts())
}

func TestScript_ExhaustedCancels(t *testing.T) {
	s := NewScript()

	resp, err := s.ShowInput(context.Background(), "anything")
	require.NoError(t, err)
	assert.True(t, resp.Cancelled)
}

func TestScript_RecordsMessages(t *testing.T) {
	s := NewScript()
	ctx := context.Background()

	require.NoError(t, s.ShowMessage(ctx, "one"))
	require.NoError(t, s.ShowMessage(ctx, "two"))

	assert.Equal(t, []string{"one", "two"}, s.Messages())
}
