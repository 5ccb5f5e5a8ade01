package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"tirefit/internal/core/version"
	"tirefit/internal/platform/config"
	"tirefit/internal/platform/logger"
	"tirefit/internal/platform/net/http/bind"
	"tirefit/internal/services/api/fitment/domain"
	"tirefit/internal/services/api/fitment/service"

	"github.com/spf13/cobra"
)

// errInvalidSize makes validate exit non-zero after printing the report
var errInvalidSize = errors.New("size is out of range")

type app struct {
	out     io.Writer
	format  string
	verbose bool
	svc     *service.Svc
}

// newRootCmd builds the command tree writing results to out
func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "tirefit",
		Short: "Find dimensionally compatible tire sizes",
		Long: `tirefit searches alternative tire sizes whose rolling diameter stays
within a deviation tolerance of the original, and reports the speedometer
effect of the swap.

Sizes are given as labels: 205/55R16, "205/55 R16 91V", 205/55/16.
Defaults come from CORE_FITMENT_* environment variables; TIREFIT_OUTPUT sets
the default output format.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := parseFormat(a.format); err != nil {
				return err
			}
			opt := logger.FromEnv()
			opt.Writer = cmd.ErrOrStderr()
			opt.Component = "cli"
			if a.verbose {
				opt.Level = "debug"
			}
			logger.Init(opt)
			domain.RegisterValidators()
			a.svc = service.New(service.DefaultsFromConfig(config.New()))
			return nil
		},
	}
	root.SetOut(out)
	defFormat := config.New().Prefix("TIREFIT_").MayEnum("OUTPUT", string(formatTable),
		string(formatTable), string(formatJSON), string(formatYAML))
	root.PersistentFlags().StringVarP(&a.format, "output", "o", defFormat, "output format: table, json or yaml (default from TIREFIT_OUTPUT)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log calculation details to stderr")

	root.AddCommand(
		a.alternativesCmd(),
		a.impactCmd(),
		a.validateCmd(),
		a.compareCmd(),
		a.ratingsCmd(),
		a.versionCmd(),
	)
	return root
}

func (a *app) alternativesCmd() *cobra.Command {
	var (
		tolerance float64
		widthR    int
		rimR      int
		minLoad   int
		minSpeed  string
		tiers     []string
		limit     int
		season    string
		carType   string
	)
	cmd := &cobra.Command{
		Use:     "alternatives <size>",
		Aliases: []string{"alt"},
		Short:   "List alternative sizes, best first",
		Example: `  tirefit alternatives 205/55R16
  tirefit alt "205/55 R16 91V" --tolerance 2 --min-speed H --tier recommended -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.AlternativesRequest{
				Original:      domain.SizeInput{Label: args[0]},
				MinSpeedIndex: minSpeed,
				Tiers:         tiers,
				Limit:         limit,
				Season:        season,
				CarType:       carType,
			}
			flags := cmd.Flags()
			if flags.Changed("tolerance") {
				req.MaxDeviationPercent = &tolerance
			}
			if flags.Changed("width-range") {
				req.AllowedWidthRange = &widthR
			}
			if flags.Changed("rim-range") {
				req.AllowedDiameterRange = &rimR
			}
			if flags.Changed("min-load") {
				req.MinLoadIndex = &minLoad
			}
			if err := bind.Validate(req); err != nil {
				return err
			}
			res, err := a.svc.Alternatives(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.render(res, func(w io.Writer) error { return alternativesTable(w, res) })
		},
	}
	f := cmd.Flags()
	f.Float64VarP(&tolerance, "tolerance", "t", 0, "maximum diameter deviation in percent")
	f.IntVar(&widthR, "width-range", 0, "widths searched either side of the original, mm")
	f.IntVar(&rimR, "rim-range", 0, "rim diameters searched either side of the original, inches")
	f.IntVar(&minLoad, "min-load", 0, "minimum load index")
	f.StringVar(&minSpeed, "min-speed", "", "minimum speed rating")
	f.StringSliceVar(&tiers, "tier", nil, "keep only these tiers: recommended, attention, check, other")
	f.IntVarP(&limit, "limit", "n", 0, "show at most n alternatives")
	f.StringVar(&season, "season", "", "season, echoed in the result")
	f.StringVar(&carType, "car-type", "", "car type, echoed in the result")
	return cmd
}

func (a *app) impactCmd() *cobra.Command {
	var speeds []float64
	cmd := &cobra.Command{
		Use:   "impact <original> <candidate>",
		Short: "Speedometer effect of fitting candidate instead of original",
		Long: `Each argument is either a size label or a rolling diameter in mm.
Without --speed the effect is shown at the configured impact speeds.`,
		Example: `  tirefit impact 205/55R16 215/50R16
  tirefit impact 631.9 621.4 --speed 100`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.ImpactRequest{Speeds: speeds}
			if len(req.Speeds) == 0 {
				req.Speeds = a.svc.Defaults().ImpactSpeeds
			}
			sizeOrDiameter(args[0], &req.OriginalDiameter, &req.Original)
			sizeOrDiameter(args[1], &req.CandidateDiameter, &req.Candidate)
			if err := bind.Validate(req); err != nil {
				return err
			}
			res, err := a.svc.Impact(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.render(res, func(w io.Writer) error { return impactTable(w, res) })
		},
	}
	cmd.Flags().Float64SliceVarP(&speeds, "speed", "s", nil, "indicated speeds in km/h")
	return cmd
}

// sizeOrDiameter reads a positive number as a diameter and anything else as a label
func sizeOrDiameter(arg string, diameter *float64, size **domain.SizeInput) {
	if v, err := strconv.ParseFloat(arg, 64); err == nil && v > 0 {
		*diameter = v
		return
	}
	*size = &domain.SizeInput{Label: arg}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "validate <size>",
		Short:   "Check a size against the width, profile and rim bounds",
		Example: `  tirefit validate 100/55R16`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.SizeInput{Label: args[0]}
			if err := bind.Validate(req); err != nil {
				return err
			}
			res, err := a.svc.Validate(cmd.Context(), req)
			if err != nil {
				return err
			}
			if err := a.render(res, func(w io.Writer) error { return validationTable(w, res) }); err != nil {
				return err
			}
			if !res.IsValid {
				return errInvalidSize
			}
			return nil
		},
	}
}

func (a *app) compareCmd() *cobra.Command {
	var speeds []float64
	cmd := &cobra.Command{
		Use:     "compare <from> <to>",
		Short:   "Compare the geometry of two sizes",
		Example: `  tirefit compare 205/55R16 225/45R17`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.CompareRequest{
				From:   domain.SizeInput{Label: args[0]},
				To:     domain.SizeInput{Label: args[1]},
				Speeds: speeds,
			}
			if err := bind.Validate(req); err != nil {
				return err
			}
			res, err := a.svc.Compare(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.render(res, func(w io.Writer) error { return comparisonTable(w, res) })
		},
	}
	cmd.Flags().Float64SliceVarP(&speeds, "speed", "s", nil, "indicated speeds in km/h")
	return cmd
}

func (a *app) ratingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ratings",
		Short: "Print the speed rating table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := a.svc.SpeedRatings(cmd.Context())
			return a.render(rows, func(w io.Writer) error { return ratingsTable(w, rows) })
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			info := version.Info("tirefit")
			return a.render(info, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, info.String())
				return err
			})
		},
	}
}
