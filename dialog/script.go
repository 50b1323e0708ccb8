package dialog

import (
	"context"
	"sync"
)

type scriptStep struct {
	resp Response
	err  error
}

// Script is a Prompter that replays canned answers. It records every prompt
// and message it was shown. Once the answers run out every input is cancelled.
//
// Example:
//
//	s := dialog.NewScript("42").Cancel().Answer("x")
type Script struct {
	mu       sync.Mutex
	steps    []scriptStep
	prompts  []string
	messages []string
}

// NewScript creates a Script answering each input with the given texts in order.
func NewScript(answers ...string) *Script {
	s := &Script{}
	for _, a := range answers {
		s.Answer(a)
	}
	return s
}

// Answer queues a submitted response.
func (s *Script) Answer(text string) *Script {
	return s.push(scriptStep{resp: Response{Text: text}})
}

// Cancel queues a cancelled response.
func (s *Script) Cancel() *Script {
	return s.push(scriptStep{resp: Response{Cancelled: true}})
}

// Fail queues an error, as from a prompter that could not show its dialog.
func (s *Script) Fail(err error) *Script {
	return s.push(scriptStep{err: err})
}

func (s *Script) push(step scriptStep) *Script {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(s.steps, step)
	return s
}

// ShowMessage records text.
func (s *Script) ShowMessage(ctx context.Context, text string) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, text)
	return nil
}

// ShowInput records prompt and returns the next queued step.
func (s *Script) ShowInput(ctx context.Context, prompt string) (Response, error) {
	if err := checkContext(ctx); err != nil {
		return Response{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = append(s.prompts, prompt)
	if len(s.steps) == 0 {
		return Response{Cancelled: true}, nil
	}
	step := s.steps[0]
	s.steps = s.steps[1:]
	return step.resp, step.err
}

// Prompts returns the prompts shown so far.
func (s *Script) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

// Messages returns the messages shown so far.
func (s *Script) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.messages...)
}

// Remaining reports how many queued answers have not been consumed.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.steps)
}
