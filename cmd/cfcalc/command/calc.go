package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cfrac/cf"
)

var operators = map[string]func(x, y cf.CF) (cf.CF, error){
	"add": cf.Add, "+": cf.Add,
	"sub": cf.Sub, "-": cf.Sub,
	"mul": cf.Mul, "*": cf.Mul,
	"div": cf.Div, "/": cf.Div,
}

func newCalcCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <add|sub|mul|div> <x> <y>",
		Short: "Combine two operands exactly and print the result.",
		Long: "Combine two operands with one of add, sub, mul or div and print the\n" +
			"result rounded to --precision digits. Rational operands fold into the\n" +
			"other operand; two lazy operands meet in a bihomographic engine.",
		Example: "cfcalc calc add sqrt:2 sqrt:3",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := operators[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("unknown operator %q: want add, sub, mul or div", args[0])
			}
			opts := a.options()
			x, err := parseOperand(args[1], opts)
			if err != nil {
				return err
			}
			y, err := parseOperand(args[2], opts)
			if err != nil {
				return err
			}
			res, err := op(x, y)
			if err != nil {
				return err
			}
			a.logger.Debug("calc", "op", args[0], "kind", res.Kind().String())
			return a.printDecimal(cmd, res)
		},
	}
}
