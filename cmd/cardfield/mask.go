package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMaskCmd(a *app) *cobra.Command {
	var formatted bool
	cmd := &cobra.Command{
		Use:   "mask <number>",
		Short: "Print a card number with all but the last four digits hidden",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := a.newModel()
			m.SetCardNumber(args[0])
			if formatted {
				m.SetCardNumber(m.FormattedNumber())
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.NumberWithoutLastDigits())
			return nil
		},
	}
	cmd.Flags().BoolVar(&formatted, "group", false, "group digits the way the brand prints them before masking")
	return cmd
}
