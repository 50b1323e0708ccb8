package bank

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/simonhull/firebird-suite/perch/logger"
	"github.com/simonhull/firebird-suite/perch/userio"
)

// ErrAborted is returned when the operator cancels before an account is opened.
var ErrAborted = errors.New("session aborted")

const menuPrompt = "d) deposit  w) withdraw  b) balance  q) quit"

// Session runs the interactive menu for one account.
type Session struct {
	io       *userio.IO
	currency string
	log      logger.Logger
}

// NewSession creates a session prompting through io.
func NewSession(io *userio.IO, currency string, log logger.Logger) *Session {
	if log == nil {
		log = logger.Default()
	}
	return &Session{io: io, currency: currency, log: log}
}

// Run asks for the account holder, then loops over the menu until the
// operator quits or cancels the menu prompt. It returns the final account.
func (s *Session) Run(ctx context.Context) (*Account, error) {
	owner, err := s.askOwner(ctx)
	if err != nil {
		return nil, err
	}
	acct := NewAccount(owner)
	s.io.MessageContext(ctx, fmt.Sprintf("Welcome, %s. Your balance is %s.", owner, s.money(acct.Balance())))

	for {
		if err := ctx.Err(); err != nil {
			return acct, err
		}

		choice := s.io.ReadChar(ctx, menuPrompt)
		if choice.Cancelled {
			return acct, nil
		}
		if !choice.OK {
			s.reportFormatError(ctx)
			continue
		}

		switch unicode.ToLower(choice.Value) {
		case 'd':
			s.transact(ctx, acct, "deposit", acct.Deposit)
		case 'w':
			s.transact(ctx, acct, "withdraw", acct.Withdraw)
		case 'b':
			s.io.MessageContext(ctx, "Balance: "+s.money(acct.Balance()))
		case 'q':
			s.io.MessageContext(ctx, fmt.Sprintf("Goodbye, %s. Final balance %s.", acct.Owner, s.money(acct.Balance())))
			return acct, nil
		default:
			s.io.MessageContext(ctx, fmt.Sprintf("Unknown choice %q", choice.Value))
		}
	}
}

func (s *Session) askOwner(ctx context.Context) (string, error) {
	for {
		r := s.io.ReadString(ctx, "Account holder name")
		if r.Cancelled {
			return "", ErrAborted
		}
		if name := strings.TrimSpace(r.Value); name != "" {
			return name, nil
		}
		s.io.MessageContext(ctx, "A name is required")
	}
}

// transact reads an amount, checks it in the polling style and applies op to it.
func (s *Session) transact(ctx context.Context, acct *Account, verb string, op func(float64) error) {
	amount := s.io.ReadFloat(ctx, "Amount to "+verb).Value
	if ctx.Err() != nil {
		return
	}
	if s.io.Error() {
		s.reportFormatError(ctx)
		return
	}

	if err := op(amount); err != nil {
		s.log.Info("bank: rejected", logger.F("op", verb), logger.F("amount", amount), logger.F("error", err))
		s.io.MessageContext(ctx, "Cannot "+verb+": "+err.Error())
		return
	}

	s.log.Debug("bank: applied", logger.F("op", verb), logger.F("amount", amount))
	s.io.MessageContext(ctx, "Balance: "+s.money(acct.Balance()))
}

func (s *Session) reportFormatError(ctx context.Context) {
	s.io.MessageContext(ctx, fmt.Sprintf("%q: %s", s.io.ErrorInput(), s.io.ErrorMsg()))
}

func (s *Session) money(amount float64) string {
	return FormatAmount(s.currency, amount)
}
