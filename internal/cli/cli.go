// internal/cli/cli.go
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cybanjar/intl-formatter/locale"
	"github.com/cybanjar/intl-formatter/numfmt"
)

// Run is the entrypoint used by the numfmt binary. args are the
// command-line arguments excluding the binary name (i.e. os.Args[1:]).
//
// It returns a process exit code; callers should os.Exit(Run(...)).
func Run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

// flagOptions holds the raw flag values; they become formatter options only
// for flags the user actually set, so library defaults stay in charge.
type flagOptions struct {
	localeID string

	style           string
	notation        string
	compactDisplay  string
	currencyCode    string
	currencyDisplay string
	unit            string
	unitDisplay     string
	pattern         string
	sign            string
	round           string

	minInt  int
	minFrac int
	maxFrac int
	minSig  int
	maxSig  int

	noGrouping bool
	overrides  string
	quiet      bool
}

func newRootCmd() *cobra.Command {
	fo := &flagOptions{}

	root := &cobra.Command{
		Use:           "numfmt",
		Short:         "Locale-aware number formatting",
		Long:          "numfmt formats numbers, currencies, percentages, units, and ranges for a locale.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&fo.localeID, "locale", "l", "", "BCP-47 locale (default \"en\")")
	pf.StringVarP(&fo.style, "style", "s", "", "style: decimal|currency|percent|unit")
	pf.StringVarP(&fo.notation, "notation", "n", "", "notation: standard|compact|scientific|engineering")
	pf.StringVar(&fo.compactDisplay, "compact-display", "", "compact suffix width: short|long")
	pf.StringVarP(&fo.currencyCode, "currency", "c", "", "ISO 4217 currency code")
	pf.StringVar(&fo.currencyDisplay, "currency-display", "", "currency display: symbol|narrowSymbol|code|name")
	pf.StringVarP(&fo.unit, "unit", "u", "", `unit identifier (e.g. "hour", "megabyte")`)
	pf.StringVar(&fo.unitDisplay, "unit-display", "", "unit display: long|short|narrow")
	pf.StringVarP(&fo.pattern, "pattern", "p", "", `custom pattern (e.g. "#,##0.00 ¤")`)
	pf.StringVar(&fo.sign, "sign", "", "sign display: auto|always|never|exceptZero")
	pf.StringVar(&fo.round, "round", "", "rounding mode: halfEven|halfExpand|ceil|floor|trunc")
	pf.IntVar(&fo.minInt, "min-int", 0, "minimum integer digits")
	pf.IntVar(&fo.minFrac, "min-frac", 0, "minimum fraction digits")
	pf.IntVar(&fo.maxFrac, "max-frac", 0, "maximum fraction digits")
	pf.IntVar(&fo.minSig, "min-sig", 0, "minimum significant digits")
	pf.IntVar(&fo.maxSig, "max-sig", 0, "maximum significant digits")
	pf.BoolVar(&fo.noGrouping, "no-grouping", false, "disable digit group separators")
	pf.StringVar(&fo.overrides, "overrides", "", "directory of per-locale YAML override files")
	pf.BoolVarP(&fo.quiet, "quiet", "q", false, "suppress degradation warnings")

	root.AddCommand(newFormatCmd(fo))
	root.AddCommand(newRangeCmd(fo))
	root.AddCommand(newProbeCmd(fo))
	root.AddCommand(newLocalesCmd())

	return root
}

func newFormatCmd(fo *flagOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "format <number>...",
		Short: "Format one or more numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := buildFormatter(cmd, fo)
			if err != nil {
				return reportError(err)
			}
			warnDegradations(f, fo.quiet)

			for _, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return reportError(fmt.Errorf("not a number: %q", arg))
				}
				fmt.Fprintln(cmd.OutOrStdout(), f.Format(v))
			}
			return nil
		},
	}
}

func newRangeCmd(fo *flagOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "range <lo> <hi>",
		Short: "Format a numeric range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := buildFormatter(cmd, fo)
			if err != nil {
				return reportError(err)
			}
			warnDegradations(f, fo.quiet)

			lo, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return reportError(fmt.Errorf("not a number: %q", args[0]))
			}
			hi, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return reportError(fmt.Errorf("not a number: %q", args[1]))
			}

			out, err := f.FormatRange(lo, hi)
			if err != nil {
				return reportError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newProbeCmd(fo *flagOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Show native formatting capabilities for a locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := buildFormatter(cmd, fo)
			if err != nil {
				return reportError(err)
			}

			caps := f.Capabilities()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "locale: %s\n", f.Locale())
			fmt.Fprintf(out, "  scientific notation: %s\n", yesNo(caps.Scientific))
			fmt.Fprintf(out, "  compact notation:    %s\n", yesNo(caps.Compact))
			fmt.Fprintf(out, "  rounding modes:      %s\n", yesNo(caps.RoundingModes))
			fmt.Fprintf(out, "  sign display:        %s\n", yesNo(caps.SignDisplay))
			fmt.Fprintf(out, "  unit names:          %s\n", yesNo(caps.Units))
			fmt.Fprintf(out, "  range formatting:    %s\n", yesNo(caps.Ranges))
			if fo.currencyCode != "" {
				fmt.Fprintf(out, "  currency %s:        %s\n", strings.ToUpper(fo.currencyCode), yesNo(caps.Currency))
			}
			return nil
		},
	}
}

func newLocalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List locales with built-in formatting data",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, loc := range locale.Supported() {
				fmt.Fprintln(cmd.OutOrStdout(), loc)
			}
		},
	}
}

func buildFormatter(cmd *cobra.Command, fo *flagOptions) (*numfmt.Formatter, error) {
	if fo.overrides != "" {
		if err := locale.LoadOverridesDir(fo.overrides); err != nil {
			return nil, fmt.Errorf("loading locale overrides: %w", err)
		}
	}

	opts := numfmt.Options{
		Style:           numfmt.Style(fo.style),
		Notation:        numfmt.Notation(fo.notation),
		CompactDisplay:  numfmt.CompactDisplay(fo.compactDisplay),
		Currency:        fo.currencyCode,
		CurrencyDisplay: numfmt.CurrencyDisplay(fo.currencyDisplay),
		Unit:            fo.unit,
		UnitDisplay:     numfmt.UnitDisplay(fo.unitDisplay),
		Pattern:         fo.pattern,
		SignDisplay:     numfmt.SignDisplay(fo.sign),
		RoundingMode:    numfmt.RoundingMode(fo.round),
	}

	// A currency or unit flag implies its style unless one was given.
	if opts.Style == "" && fo.currencyCode != "" {
		opts.Style = numfmt.StyleCurrency
	}
	if opts.Style == "" && fo.unit != "" {
		opts.Style = numfmt.StyleUnit
	}

	// Digit flags carry meaning only when set; zero is a valid value.
	flags := cmd.Flags()
	if flags.Changed("min-int") {
		opts.MinIntegerDigits = numfmt.Int(fo.minInt)
	}
	if flags.Changed("min-frac") {
		opts.MinFractionDigits = numfmt.Int(fo.minFrac)
	}
	if flags.Changed("max-frac") {
		opts.MaxFractionDigits = numfmt.Int(fo.maxFrac)
	}
	if flags.Changed("min-sig") {
		opts.MinSignificantDigits = numfmt.Int(fo.minSig)
	}
	if flags.Changed("max-sig") {
		opts.MaxSignificantDigits = numfmt.Int(fo.maxSig)
	}
	if fo.noGrouping {
		opts.UseGrouping = numfmt.Bool(false)
	}

	return numfmt.New(fo.localeID, opts)
}

// warnDegradations prints one yellow warning per feature the native
// primitive cannot honor, so scripted callers still see clean stdout.
func warnDegradations(f *numfmt.Formatter, quiet bool) {
	if quiet {
		return
	}
	warn := color.New(color.FgYellow)
	for _, d := range f.Degradations() {
		warn.Fprintf(os.Stderr, "warning: %s not supported natively for %s; using fallback\n", d, f.Locale())
	}
}

func reportError(err error) error {
	color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
	return err
}

func yesNo(b bool) string {
	if b {
		return "native"
	}
	return "fallback"
}
