package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/htrsize/catalog"
	"github.com/katalvlaran/htrsize/internal/logger"
	"github.com/katalvlaran/htrsize/render"
	"github.com/katalvlaran/htrsize/sizing"
)

// noMatch is printed instead of an empty table.
const noMatch = "no heater configuration satisfies the constraints"

// flags holds the raw flag values of one command instance.
type flags struct {
	tolerance float64
	factor    float64
	vmax      float64
	imax      float64
	catalog   string
	format    string
	branches  bool
	logLevel  string
	logFormat string
	verbose   bool
}

// newRootCmd builds the htrsize command. Each call returns an independent
// command, so tests can run it repeatedly.
func newRootCmd() *cobra.Command {
	env := logger.FromEnv()
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "htrsize WATTS LENGTH",
		Short: "Find heaters and wirings that deliver WATTS over LENGTH feet",
		Long: `htrsize sizes resistance heaters. For every heater in the catalog it
computes the run length at which each lead dissipates its derated rating,
keeps the heaters whose length is within tolerance of LENGTH, evaluates
every wiring topology for them and lists those within the voltage and
current ceilings, highest voltage first.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	fs := cmd.Flags()
	fs.Float64VarP(&f.tolerance, "tolerance", "t", sizing.DefaultTolerance, "length tolerance in feet")
	fs.Float64VarP(&f.factor, "factor", "f", sizing.DefaultSafetyFactor, "factor of safety applied to lead ratings")
	fs.Float64Var(&f.vmax, "vmax", sizing.DefaultVoltageCeiling, "maximum supply voltage (V)")
	fs.Float64Var(&f.imax, "imax", sizing.DefaultCurrentCeiling, "maximum supply current (A)")
	fs.StringVar(&f.catalog, "catalog", "", "YAML heater catalog replacing the built-in one")
	fs.StringVar(&f.format, "format", string(render.FormatTable), "output format: table, html or json")
	fs.BoolVar(&f.branches, "branches", false, "show the parallel branch count of each wiring")
	fs.StringVar(&f.logLevel, "log-level", env.Level, "log level: trace, debug, info, warn, error, off")
	fs.StringVar(&f.logFormat, "log-format", env.Format, "log format: console or json")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every evaluated candidate (same as --log-level debug)")

	return cmd
}

// run parses and validates the invocation, searches and renders.
func run(cmd *cobra.Command, args []string, f *flags) error {
	level := f.logLevel
	if f.verbose {
		level = "debug"
	}
	log := logger.New(logger.Options{
		Level:     level,
		Format:    f.logFormat,
		Component: "htrsize",
		Writer:    cmd.ErrOrStderr(),
	})

	in := input{
		Tolerance: f.tolerance,
		Factor:    f.factor,
		VMax:      f.vmax,
		IMax:      f.imax,
		Catalog:   f.catalog,
	}
	if err := in.parsePositional(args); err != nil {
		return err
	}
	if err := in.parseFormat(f.format); err != nil {
		return err
	}
	if err := in.validate(); err != nil {
		log.Debug().Err(err).Msg("rejected input")

		return err
	}

	cat := catalog.Default()
	if in.Catalog != "" {
		var err error
		if cat, err = catalog.LoadFile(in.Catalog); err != nil {
			return err
		}
		log.Info().Str("path", in.Catalog).Int("models", cat.Len()).Msg("catalog loaded")
	}

	opts := []sizing.Option{
		sizing.WithTolerance(in.Tolerance),
		sizing.WithSafetyFactor(in.Factor),
		sizing.WithVoltageCeiling(in.VMax),
		sizing.WithCurrentCeiling(in.IMax),
	}
	if log.GetLevel() <= zerolog.DebugLevel {
		traceCandidates(log, cat, in, opts)
		opts = append(opts, sizing.WithOnCandidate(func(ev sizing.Evaluation, v sizing.Verdict) {
			log.Debug().
				Str("heater", ev.Heater.Code).
				Str("topology", ev.Topology.Name()).
				Float64("resistance", ev.Resistance).
				Float64("imax", ev.MaxCurrent).
				Float64("vmax", ev.MaxVoltage).
				Stringer("verdict", v).
				Msg("evaluated")
		}))
	}

	evals, err := sizing.Search(cat, in.Watts, in.Length, opts...)
	if err != nil {
		return err
	}
	log.Info().Int("results", len(evals)).Msg("search complete")

	out := cmd.OutOrStdout()
	if len(evals) == 0 {
		_, err = fmt.Fprintln(out, noMatch)

		return err
	}

	return render.Write(out, in.Format, evals, render.Options{
		Branches: f.branches,
		Styled:   isTerminal(out),
	})
}

// traceCandidates logs the length-sizing stage at debug level.
func traceCandidates(log *logger.Logger, cat *catalog.Catalog, in input, opts []sizing.Option) {
	cands, err := sizing.Candidates(cat, in.Watts, in.Length, opts...)
	if err != nil {
		return
	}
	sub := logger.Named(log, "sizer")
	for _, c := range cands {
		sub.Debug().
			Str("heater", c.Heater.Code).
			Stringer("condition", c.Condition).
			Float64("length", c.Length).
			Msg("length within tolerance")
	}
	sub.Debug().Int("candidates", len(cands)).Msg("sizing complete")
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
