package commands

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/perch/config"
	"github.com/simonhull/firebird-suite/perch/dialog"
)

// captureOutput captures stdout during f, where fledge/output writes
func captureOutput(t *testing.T, f func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	defer func() { os.Stdout = old }()
	f()
	w.Close()
	return <-done
}

// run executes the CLI against a scripted prompter and returns the command
// output and the status lines printed through fledge/output.
func run(t *testing.T, script *dialog.Script, args ...string) (string, string, error) {
	t.Helper()

	a := newApp()
	a.newPrompter = func(*config.Config) (dialog.Prompter, error) { return script, nil }

	var stdout bytes.Buffer
	cmd := newRootCmd(a)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	args = append(args, "--config", filepath.Join(t.TempDir(), "perch.yml"))
	cmd.SetArgs(args)

	var err error
	status := captureOutput(t, func() {
		err = cmd.ExecuteContext(context.Background())
	})
	return stdout.String(), status, err
}

func TestAsk(t *testing.T) {
	tests := []struct {
		name   string
		kind   string
		answer string
		want   string
	}{
		{"int", "int", "42", "42\n"},
		{"negative int", "int", "-7", "-7\n"},
		{"float", "float", "2.50", "2.5\n"},
		{"string", "string", "  as typed ", "  as typed \n"},
		{"char", "char", "y", "y\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := dialog.NewScript(tt.answer)

			stdout, _, err := run(t, script, "ask", tt.kind, "Prompt")
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
			assert.Equal(t, []string{"Prompt"}, script.Prompts())
		})
	}
}

func TestAsk_InvalidInput(t *testing.T) {
	tests := []struct {
		kind   string
		answer string
		reason string
	}{
		{"int", "abc", "Not a valid integer"},
		{"float", "1,5", "Not a valid decimal number"},
		{"char", "AB", "Must be a single character"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			stdout, _, err := run(t, dialog.NewScript(tt.answer), "ask", tt.kind, "Prompt")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.reason)
			assert.Contains(t, err.Error(), tt.answer)
			assert.Empty(t, stdout)
		})
	}
}

func TestAsk_CancelledInt(t *testing.T) {
	_, _, err := run(t, dialog.NewScript().Cancel(), "ask", "int", "Age")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `Not a valid integer (input "")`)
}

func TestAsk_UnknownKind(t *testing.T) {
	_, _, err := run(t, dialog.NewScript("1"), "ask", "bool", "Prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown kind "bool"`)
}

func TestBank(t *testing.T) {
	script := dialog.NewScript("Ada", "d", "12.5", "q")

	_, status, err := run(t, script, "bank")
	require.NoError(t, err)
	assert.Contains(t, status, "Ada closed the session with $12.50")
}

func TestBank_Aborted(t *testing.T) {
	_, status, err := run(t, dialog.NewScript().Cancel(), "bank")

	require.NoError(t, err)
	assert.Contains(t, status, "No account opened")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perch.yml")

	_, status, err := run(t, dialog.NewScript(), "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, status, "Wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, _, err = run(t, dialog.NewScript(), "config", "init", path)
	assert.ErrorContains(t, err, "already exists")

	_, _, err = run(t, dialog.NewScript(), "config", "init", path, "--force")
	assert.NoError(t, err)
}

func TestInvalidModeFlag(t *testing.T) {
	_, _, err := run(t, dialog.NewScript("1"), "ask", "int", "n", "--mode", "gui")

	assert.ErrorIs(t, err, dialog.ErrUnknownMode)
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, dialog.NewScript(), "version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "perch v")
}

func TestPaddedModeFlag(t *testing.T) {
	stdout, _, err := run(t, dialog.NewScript("3"), "ask", "int", "n", "--mode", " console")

	require.NoError(t, err)
	assert.Equal(t, "3\n", stdout)
}
