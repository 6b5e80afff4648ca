package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alovak/cardfield/brand"
	"github.com/alovak/cardfield/internal/cardgen"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

const sampleRetries = 10

func newSampleCmd(a *app) *cobra.Command {
	var (
		brandName string
		count     int
		length    int
		group     bool
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print random Luhn-valid test numbers for a brand",
		Long: `sample prints random numbers that classify as the given brand and pass
the Luhn check. They are for exercising forms and must never be used as
real cards.`,
		Example: "  cardfield sample --brand amex --count 3",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, ok := brand.Parse(brandName)
			if !ok || b == brand.Unknown {
				return fmt.Errorf("unknown brand %q", brandName)
			}
			if count < 1 {
				return errors.New("--count must be at least 1")
			}

			seen := make(map[string]bool, count)
			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				pan, err := samplePAN(b, length, func(p string) bool { return seen[p] })
				if err != nil {
					return err
				}
				seen[pan] = true
				if group {
					pan = brand.Format(pan, b)
				}
				fmt.Fprintln(out, pan)
			}
			a.logger.Debug("generated samples", "brand", b.String(), "count", count)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&brandName, "brand", "visa", "brand to generate: "+brandList())
	f.IntVar(&count, "count", 1, "how many numbers to print")
	f.IntVar(&length, "length", 0, "number length (default: the brand's shortest)")
	f.BoolVar(&group, "group", false, "print digits grouped the way the brand prints them")
	return cmd
}

// samplePAN picks the first IIN row of b that allows length (or its first
// length when length is 0) and fills it with random digits.
func samplePAN(b brand.Brand, length int, seen func(string) bool) (string, error) {
	for _, r := range brand.Table() {
		if r.Brand != b {
			continue
		}
		n := length
		if n == 0 {
			n = r.Lengths[0]
		}
		if !slices.Contains(r.Lengths, n) {
			continue
		}
		return cardgen.GenerateUniquePAN(r.Low, n, sampleRetries, seen)
	}
	return "", fmt.Errorf("%s numbers are never %d digits long", b, length)
}

func brandList() string {
	var names []string
	for _, b := range brand.All() {
		names = append(names, b.String())
	}
	return strings.Join(names, "|")
}
