// Package command implements the cfcalc subcommands.
package command

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/cfrac/cf"
)

// Configuration keys shared by flags, environment and config file.
const (
	keyPrecision = "precision"
	keyTerms     = "terms"
	keyVerbose   = "verbose"
	keyMaxSteps  = "max-steps"
)

const envPrefix = "CFCALC"

// app carries the resolved settings of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	logger     *slog.Logger
}

// NewRoot builds the cfcalc command tree with a fresh configuration.
func NewRoot() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "cfcalc",
		Short: "cfcalc evaluates continued fractions to exact decimal precision.",
		Long: "`cfcalc` builds lazily evaluated continued fractions from rationals, square roots\n" +
			"and classical constants, combines them exactly, and prints as many correct\n" +
			"digits or terms as requested.\n\n" +
			"Operands are rationals (`3`, `-7/2`), the names `pi`, `e`, `e2`, `phi` and\n" +
			"`tan1`, or `fn:<rational>` with fn one of sqrt, exp, ln1p, sin, cos,\n" +
			"arctan, arcsin, sinh and cosh.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	a.registerFlags(root.PersistentFlags())

	root.AddCommand(
		newDecimalCmd(a),
		newTermsCmd(a),
		newConvergentsCmd(a),
		newCalcCmd(a),
		newSqrtCmd(a),
	)
	return root
}

// setup resolves configuration in viper's order (flag, env, file,
// default) and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}
	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	if a.v.GetInt(keyPrecision) < 0 {
		return fmt.Errorf("%s must not be negative", keyPrecision)
	}
	if a.v.GetInt(keyTerms) < 1 {
		return fmt.Errorf("%s must be positive", keyTerms)
	}
	if a.v.GetInt(keyMaxSteps) < 0 {
		return fmt.Errorf("%s must not be negative", keyMaxSteps)
	}

	level := slog.LevelWarn
	if a.v.GetBool(keyVerbose) {
		level = slog.LevelDebug
	}
	w := cmd.ErrOrStderr()
	a.logger = slog.New(tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: w != os.Stderr,
	}))
	return nil
}

// options returns the engine options for this invocation.
func (a *app) options() []cf.Option {
	return []cf.Option{
		cf.WithLogger(a.logger),
		cf.WithStepLimit(a.v.GetInt(keyMaxSteps)),
	}
}

func (a *app) precision() int { return a.v.GetInt(keyPrecision) }

func (a *app) terms() int { return a.v.GetInt(keyTerms) }

// printDecimal writes x to the command's output at the configured precision.
func (a *app) printDecimal(cmd *cobra.Command, x cf.CF) error {
	s, err := x.DecimalString(a.precision())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}

func (a *app) registerFlags(fs *pflag.FlagSet) {
	fs.StringVar(&a.configFile, "config", "", "YAML config file with precision, terms, verbose and max-steps keys.")
	fs.IntP(keyPrecision, "p", 20, "Digits after the decimal point.")
	fs.IntP(keyTerms, "n", 10, "Number of terms or convergents to list.")
	fs.BoolP(keyVerbose, "v", false, "Log engine decisions to stderr.")
	fs.Int(keyMaxSteps, 0, "Abort a request after this many engine steps (0 = unbounded).")
}
