package main

import (
	"fmt"
	"strings"

	"github.com/alovak/cardfield/brand"
	"github.com/alovak/cardfield/validation"
	"github.com/spf13/cobra"
)

func newBrandCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "brand <number>",
		Short: "Classify a (partial) card number by its IIN prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number := args[0]
			b := brand.ForNumber(number)

			var possible []string
			for _, p := range brand.Possible(number) {
				possible = append(possible, p.String())
			}
			if len(possible) == 0 {
				possible = []string{"-"}
			}

			var lengths []string
			for _, n := range brand.Lengths(b) {
				lengths = append(lengths, fmt.Sprint(n))
			}

			a.logger.Debug("classified number", "brand", b.String())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, row("brand", valueStyle.Render(b.String())))
			fmt.Fprintln(out, row("possible", strings.Join(possible, ", ")))
			fmt.Fprintln(out, row("lengths", strings.Join(lengths, ", ")))
			fmt.Fprintln(out, row("cvc length", fmt.Sprint(brand.CVCLength(b))))
			fmt.Fprintln(out, row("placeholder", brand.Placeholder(b)))
			fmt.Fprintln(out, row("state", stateView(validation.Number(number))))
			return nil
		},
	}
}
