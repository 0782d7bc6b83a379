package command

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cfrac/cf"
)

func newConvergentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convergents <x>",
		Short: "Tabulate the first --terms convergents of x.",
		Long: "Print a table with one row per term: its index, the term, the\n" +
			"convergent p/q it closes, and that convergent as a decimal.",
		Example: "cfcalc convergents -n 6 pi",
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
			cs, err := cf.Convergents(x, len(ts))
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("n", "term", "convergent", "decimal")
			for i, c := range cs {
				d, err := c.DecimalString(a.precision())
				if err != nil {
					return err
				}
				if err := table.Append([]string{strconv.Itoa(i), ts[i].String(), c.String(), d}); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}
