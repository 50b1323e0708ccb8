package dialog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Console prompts on a line-oriented reader/writer pair.
//
// Example:
//
//	c := dialog.NewConsole(os.Stdin, os.Stdout, nil)
//	resp, _ := c.ShowInput(ctx, "Account owner")
//	// Displays: Account owner: _
type Console struct {
	mu          sync.Mutex
	in          *bufio.Reader
	out         io.Writer
	styles      Styles
	acknowledge bool
}

// NewConsole creates a Console. A nil opts uses DefaultStyles.
func NewConsole(in io.Reader, out io.Writer, opts *Options) *Console {
	opts = opts.withDefaults()
	return &Console{
		in:          bufio.NewReader(in),
		out:         out,
		styles:      opts.Styles,
		acknowledge: opts.Acknowledge,
	}
}

// ShowMessage prints text and, when acknowledgement is enabled, waits for Enter.
func (c *Console) ShowMessage(ctx context.Context, text string) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintln(c.out, c.styles.Message.Render(text)); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}
	if !c.acknowledge {
		return nil
	}

	if _, err := fmt.Fprint(c.out, c.styles.Hint.Render("Press Enter to continue")+" "); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}
	// Running out of input acknowledges the message too.
	if _, _, err := c.readLine(); err != nil {
		return err
	}
	return nil
}

// ShowInput prints prompt and reads one line. The line terminator is
// stripped; everything else is returned as typed. End of input with nothing
// typed counts as cancel.
func (c *Console) ShowInput(ctx context.Context, prompt string) (Response, error) {
	if err := checkContext(ctx); err != nil {
		return Response{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprint(c.out, c.styles.Prompt.Render(prompt)+": "); err != nil {
		return Response{}, fmt.Errorf("writing prompt: %w", err)
	}

	line, eof, err := c.readLine()
	if err != nil {
		return Response{}, err
	}
	if eof && line == "" {
		// Keep the terminal tidy when stdin closes mid-prompt.
		fmt.Fprintln(c.out)
		return Response{Cancelled: true}, nil
	}
	return Response{Text: line}, nil
}

func (c *Console) readLine() (line string, eof bool, err error) {
	raw, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return trimNewline(raw), true, nil
		}
		return "", false, fmt.Errorf("reading input: %w", err)
	}
	return trimNewline(raw), false, nil
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
