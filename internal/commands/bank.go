package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/perch/internal/bank"
	"github.com/simonhull/firebird-suite/fledge/output"
	"github.com/simonhull/firebird-suite/perch/userio"
)

func (a *app) bankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bank",
		Short: "Run the bank-account sample",
		Long: `Opens an account and loops over a deposit/withdraw/balance menu.

Bad amounts and menu choices are reported back through a message dialog
and the menu is shown again. Cancel the menu prompt or choose q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.newPrompter(a.cfg)
			if err != nil {
				return err
			}

			io := userio.New(p, userio.WithLogger(a.log), userio.WithName("bank"))
			acct, err := bank.NewSession(io, a.cfg.Bank.Currency, a.log).Run(cmd.Context())
			if errors.Is(err, bank.ErrAborted) {
				output.Info("No account opened")
				return nil
			}
			if err != nil {
				return fmt.Errorf("bank session: %w", err)
			}

			output.Success(fmt.Sprintf("%s closed the session with %s",
				acct.Owner, bank.FormatAmount(a.cfg.Bank.Currency, acct.Balance())))
			return nil
		},
	}
}
