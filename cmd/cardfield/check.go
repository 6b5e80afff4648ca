package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alovak/cardfield/cardfield"
	"github.com/spf13/cobra"
)

// ErrNotValid is returned by check --require-valid when any sub-field is
// not Valid.
var ErrNotValid = errors.New("card details are not valid")

type checkOptions struct {
	number       string
	expiration   string
	cvc          string
	postal       string
	asJSON       bool
	requireValid bool
}

func newCheckCmd(a *app) *cobra.Command {
	o := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report the validation state of each card sub-field",
		Example: `  cardfield check --number 4242424242424242 --exp 12/30 --cvc 123 --postal 94110 --country US
  cardfield check --number 3782 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, a, o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.number, "number", "", "card number as typed")
	f.StringVar(&o.expiration, "exp", "", `expiration as typed, e.g. "12/30"`)
	f.StringVar(&o.cvc, "cvc", "", "card verification code")
	f.StringVar(&o.postal, "postal", "", "billing postal code")
	f.BoolVar(&o.asJSON, "json", false, "print the snapshot as JSON")
	f.BoolVar(&o.requireValid, "require-valid", false, "exit non-zero unless every sub-field is valid")
	return cmd
}

func runCheck(cmd *cobra.Command, a *app, o *checkOptions) error {
	m := a.newModel()
	m.SetCardNumber(o.number)
	m.SetRawExpiration(o.expiration)
	m.SetCVC(o.cvc)
	m.SetPostalCode(o.postal)

	snap := m.Snapshot()
	a.logger.Debug("checked card details",
		"session", snap.Session,
		"brand", snap.Brand,
		"valid", snap.Valid,
	)

	out := cmd.OutOrStdout()
	if o.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encoding snapshot: %w", err)
		}
	} else {
		fmt.Fprintln(out, renderReport(snap))
	}

	if o.requireValid && !snap.Valid {
		return ErrNotValid
	}
	return nil
}

func renderReport(s cardfield.Snapshot) string {
	masked := s.MaskedNumber
	if masked == "" {
		masked = "-"
	}
	exp := "-"
	if s.ExpirationMonth != "" {
		exp = s.ExpirationMonth + "/" + s.ExpirationYear
	}

	lines := []string{
		titleStyle.Render("Card details"),
		row("brand", valueStyle.Render(s.Brand)),
		row("number", masked),
		row("placeholder", s.Placeholder),
		row("expiration", exp),
		"",
		row(cardfield.Number.String(), stateView(s.States.Number)),
		row(cardfield.Expiration.String(), stateView(s.States.Expiration)),
		row(cardfield.CVC.String(), stateView(s.States.CVC)),
		row(cardfield.PostalCode.String(), stateView(s.States.PostalCode)),
		"",
		row("brand image", string(s.BrandImage)),
		row("cvc image", string(s.CVCImage)),
	}
	if s.Valid {
		lines = append(lines, validStyle.Render("ready to submit"))
	} else {
		lines = append(lines, incompleteStyle.Render("not ready to submit"))
	}
	return strings.Join(lines, "\n")
}
