// cardfield drives the card entry field model from the command line: it
// checks sub-field values, classifies and masks numbers, and prints
// brand-conforming test numbers.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alovak/cardfield/cardfield"
	"github.com/alovak/cardfield/icons"
	"github.com/alovak/cardfield/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"
)

var version = "dev" // set by the linker

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags and config are read.
type app struct {
	v       *viper.Viper
	cfgFile string
	envFile string
	config  *cardfield.Config
	logger  *slog.Logger
	icons   icons.Provider
}

// newRootCmd builds a fresh command tree with its own viper instance, so
// tests can run commands in isolation.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "cardfield",
		Short: "Validate and format payment card entry fields.",
		Long: `cardfield runs the card entry field model used behind interactive
payment forms. It classifies card brands by IIN prefix, reports each
sub-field (number, expiration, CVC, postal code) as valid, incomplete or
invalid, and masks numbers for display.

Settings come from flags, CARDFIELD_* environment variables (a .env file
is loaded when present), then cardfield.yaml in the working directory.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./cardfield.yaml)")
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading CARDFIELD_* variables")
	pf.String("expiry-tz", "", `IANA timezone for expiration checks (e.g. "Australia/Sydney")`)
	pf.Int("postal-max-length", validation.DefaultPostalMaxLength, "maximum postal code length without a country rule")
	pf.String("country", "", "default ISO 3166 alpha-2 billing country")
	pf.Bool("debug", false, "log model changes to stderr")

	a.v.BindPFlag("expiry_tz", pf.Lookup("expiry-tz"))
	a.v.BindPFlag("postal_max_length", pf.Lookup("postal-max-length"))
	a.v.BindPFlag("country", pf.Lookup("country"))
	a.v.BindPFlag("debug", pf.Lookup("debug"))

	cmd.AddCommand(newCheckCmd(a))
	cmd.AddCommand(newBrandCmd(a))
	cmd.AddCommand(newMaskCmd(a))
	cmd.AddCommand(newSampleCmd(a))

	return cmd
}

// init loads the dotenv file, config file and environment, then builds the
// model config and logger.
func (a *app) init(cmd *cobra.Command) error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", a.envFile, err)
		}
	}

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("cardfield")
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("CARDFIELD")
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || a.cfgFile != "" {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := cardfield.DefaultConfig()
	if err := a.v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.config = cfg
	a.icons = icons.Cached(icons.Assets{}, 0)

	level := slog.LevelInfo
	if a.v.GetBool("debug") {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})).
		With(slog.String("app", "cardfield"))
	return nil
}

// newModel returns a model wired to the loaded config and logger.
func (a *app) newModel() *cardfield.Model {
	return cardfield.New(a.config, cardfield.WithLogger(a.logger), cardfield.WithIconProvider(a.icons))
}
