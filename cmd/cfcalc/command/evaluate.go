package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cfrac/cf"
)

func newDecimalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "decimal <x>",
		Short:   "Print x rounded to --precision digits.",
		Example: "cfcalc decimal -p 40 sqrt:2",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseOperand(args[0], a.options())
			if err != nil {
				return err
			}
			return a.printDecimal(cmd, x)
		},
	}
}

func newTermsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "terms <x>",
		Short:   "Print the first --terms terms of x as [a0; a1, a2, …].",
		Example: "cfcalc terms -n 12 e",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseOperand(args[0], a.options())
			if err != nil {
				return err
			}
			ts, err := cf.Fill(x, a.terms())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatTerms(ts))
			return err
		},
	}
}

func newSqrtCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "sqrt <x>",
		Short:   "Print √x rounded to --precision digits.",
		Example: "cfcalc sqrt pi",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseOperand(args[0], a.options())
			if err != nil {
				return err
			}
			r, err := cf.Sqrt(x)
			if err != nil {
				return err
			}
			a.logger.Debug("sqrt", "operand", args[0], "kind", r.Kind().String())
			return a.printDecimal(cmd, r)
		},
	}
}

// formatTerms renders terms in the usual [a0; a1, a2] notation.
func formatTerms[T fmt.Stringer](ts []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, t := range ts {
		switch i {
		case 0:
		case 1:
			sb.WriteString("; ")
		default:
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
