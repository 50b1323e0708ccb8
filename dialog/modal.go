package dialog

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal shows each dialog as a short-lived bubbletea program: a framed box
// that holds the terminal until the operator answers.
type Modal struct {
	in     io.Reader
	out    io.Writer
	styles Styles

	// For swapping the bubbletea runtime in tests
	run func(ctx context.Context, m tea.Model) (tea.Model, error)
}

// NewModal creates a Modal reading keys from in and drawing on out.
func NewModal(in io.Reader, out io.Writer, opts *Options) *Modal {
	opts = opts.withDefaults()
	m := &Modal{in: in, out: out, styles: opts.Styles}
	m.run = m.runProgram
	return m
}

func (m *Modal) runProgram(ctx context.Context, model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model,
		tea.WithInput(m.in),
		tea.WithOutput(m.out),
		tea.WithContext(ctx),
	)
	return p.Run()
}

// ShowMessage displays text until Enter, Space or Esc is pressed.
func (m *Modal) ShowMessage(ctx context.Context, text string) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if _, err := m.run(ctx, newMessageModel(text, m.styles)); err != nil {
		if ctx != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("message dialog: %w", err)
	}
	return nil
}

// ShowInput displays prompt above a text field. Enter submits, Esc or Ctrl+C
// cancels. A context cancelled while the dialog is open also cancels it.
func (m *Modal) ShowInput(ctx context.Context, prompt string) (Response, error) {
	if err := checkContext(ctx); err != nil {
		return Response{}, err
	}
	final, err := m.run(ctx, newInputModel(prompt, m.styles))
	if err != nil {
		if ctx != nil && ctx.Err() != nil {
			return Response{Cancelled: true}, nil
		}
		return Response{}, fmt.Errorf("input dialog: %w", err)
	}
	im, ok := final.(*inputModel)
	if !ok {
		return Response{}, fmt.Errorf("input dialog: unexpected model %T", final)
	}
	return im.response(), nil
}

// inputModel is the bubbletea model for an input dialog
type inputModel struct {
	prompt    string
	field     textinput.Model
	styles    Styles
	done      bool
	cancelled bool
}

func newInputModel(prompt string, styles Styles) *inputModel {
	field := textinput.New()
	field.Prompt = "> "
	field.Width = 40
	field.Focus()
	return &inputModel{prompt: prompt, field: field, styles: styles}
}

func (m *inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.done = true
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m *inputModel) View() string {
	if m.done {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Prompt.Render(m.prompt),
		"",
		m.field.View(),
		"",
		m.styles.Hint.Render("enter submit • esc cancel"),
	)
	return m.styles.Frame.Render(body) + "\n"
}

func (m *inputModel) response() Response {
	if m.cancelled || !m.done {
		return Response{Cancelled: true}
	}
	return Response{Text: m.field.Value()}
}

// messageModel is the bubbletea model for an acknowledgement dialog
type messageModel struct {
	text   string
	styles Styles
	done   bool
}

func newMessageModel(text string, styles Styles) *messageModel {
	return &messageModel{text: text, styles: styles}
}

func (m *messageModel) Init() tea.Cmd {
	return nil
}

func (m *messageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter, tea.KeySpace, tea.KeyEsc, tea.KeyCtrlC:
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *messageModel) View() string {
	if m.done {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Message.Render(m.text),
		"",
		m.styles.Hint.Render("enter ok"),
	)
	return m.styles.Frame.Render(body) + "\n"
}
