package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/fledge/output"
	"github.com/simonhull/firebird-suite/perch/userio"
)

var askKinds = []string{"int", "float", "string", "char"}

func (a *app) askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <int|float|string|char> <prompt>",
		Short: "Prompt once and print the typed value",
		Long: `Shows a single prompt and prints the converted value on stdout.

If the input does not convert, the reason and the raw input are printed on
stderr and perch exits with status 1.

Example:
  age=$(perch ask int "Your age")
  perch ask char "Continue? (y/n)" --mode console`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: askKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, prompt := args[0], args[1]

			p, err := a.newPrompter(a.cfg)
			if err != nil {
				return err
			}
			io := userio.New(p, userio.WithLogger(a.log), userio.WithName("ask"))
			ctx := cmd.Context()

			var value string
			switch kind {
			case "int":
				r := io.ReadInt(ctx, prompt)
				value = strconv.Itoa(r.Value)
			case "float":
				r := io.ReadFloat(ctx, prompt)
				value = strconv.FormatFloat(r.Value, 'g', -1, 64)
			case "string":
				value = io.ReadString(ctx, prompt).Value
			case "char":
				value = string(io.ReadChar(ctx, prompt).Value)
			default:
				return fmt.Errorf("unknown kind %q (want one of %v)", kind, askKinds)
			}

			if err := io.Err(); err != nil {
				output.Verbose(fmt.Sprintf("raw input %q", io.ErrorInput()))
				return fmt.Errorf("%s (input %q)", io.ErrorMsg(), io.ErrorInput())
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}
