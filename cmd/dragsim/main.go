package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/dragsim/internal/automation"
	"github.com/san-kum/dragsim/internal/config"
	"github.com/san-kum/dragsim/internal/experiment"
	"github.com/san-kum/dragsim/internal/export"
	"github.com/san-kum/dragsim/internal/metrics"
	"github.com/san-kum/dragsim/internal/optim"
	"github.com/san-kum/dragsim/internal/physics"
	"github.com/san-kum/dragsim/internal/sim"
	"github.com/san-kum/dragsim/internal/viz"
)

var (
	configFile  string
	metricsAddr string
	themeName   string

	angle   int
	speed   int
	drag    float64
	mass    float64
	span    float64
	samples int
	preset  string

	launches []string
	outDir   string
	width    int
	height   int

	sweepParam string
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int

	scenarioOut string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dragsim",
		Short:        "projectile motion with linear drag",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.PersistentFlags().Float64Var(&span, "span", sim.DefaultSpan, "time span in seconds")
	rootCmd.PersistentFlags().IntVar(&samples, "samples", sim.DefaultSamples, "samples across the span")
	rootCmd.PersistentFlags().IntVar(&width, "width", viz.DefaultWidth, "plot width in columns")
	rootCmd.PersistentFlags().IntVar(&height, "height", viz.DefaultHeight, "plot height in rows")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "evaluate one launch and plot it",
		Args:  cobra.NoArgs,
		RunE:  runLaunch,
	}
	addLaunchFlags(runCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [preset...]",
		Short: "overlay several launches",
		RunE:  runCompare,
	}
	compareCmd.Flags().StringArrayVar(&launches, "launch", nil, "launch as angle,speed,drag[,mass] (repeatable)")

	exportCmd := &cobra.Command{
		Use:   "export [preset...]",
		Short: "write comparison plots as png and svg",
		RunE:  runExport,
	}
	exportCmd.Flags().StringArrayVar(&launches, "launch", nil, "launch as angle,speed,drag[,mass] (repeatable)")
	exportCmd.Flags().StringVar(&outDir, "out", "plots", "output directory")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named launches",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	})

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "overlay launches across a range of one control",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addLaunchFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "drag", "control to vary (angle, speed, drag, mass)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.05, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0.5, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of launches")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml list of launches",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().StringVar(&scenarioOut, "out", "", "also write plots to this directory")

	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "find the launch angle with the longest range",
		Args:  cobra.NoArgs,
		RunE:  runOptimize,
	}
	addLaunchFlags(optimizeCmd)

	rootCmd.AddCommand(runCmd, compareCmd, exportCmd, presetsCmd, configCmd, sweepCmd, scenarioCmd, optimizeCmd)
	return rootCmd
}

func addLaunchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&angle, "angle", config.DefaultAngleDeg, "launch angle in degrees")
	cmd.Flags().IntVar(&speed, "speed", config.DefaultSpeed, "initial speed in m/s")
	cmd.Flags().Float64Var(&drag, "drag", config.DefaultDrag, "linear drag coefficient")
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "projectile mass")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named launch")
}

// loadConfig merges the config file and the flags; flags win when set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("span") || configFile == "" {
		cfg.Grid.Span = span
	}
	if flags.Changed("samples") || configFile == "" {
		cfg.Grid.Samples = samples
	}
	if flags.Changed("theme") || configFile == "" {
		cfg.Theme = themeName
	}
	return cfg, nil
}

func newSession(cmd *cobra.Command) (*experiment.Session, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	var collector *metrics.Collector
	if metricsAddr != "" {
		collector = metrics.NewCollector()
		go func() {
			if err := metrics.Serve(metricsAddr, collector); err != nil && !errors.Is(err, http.ErrServerClosed) {
				fmt.Fprintf(cmd.ErrOrStderr(), "metrics: %v\n", err)
			}
		}()
	}

	s, err := experiment.NewSession(cfg, collector)
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

func newRenderer(cfg *config.Config, s *experiment.Session) *viz.Renderer {
	r := viz.NewRenderer(viz.GetTheme(cfg.Theme))
	r.Width, r.Height = width, height
	r.Span = s.Grid().Span()
	return r
}

func runInteractive(cmd *cobra.Command, args []string) error {
	s, cfg, err := newSession(cmd)
	if err != nil {
		return err
	}
	return viz.RunInteractive(s, viz.GetTheme(cfg.Theme))
}

func runLaunch(cmd *cobra.Command, args []string) error {
	s, cfg, err := newSession(cmd)
	if err != nil {
		return err
	}

	l, err := resolveLaunch(cmd, s.Controls)
	if err != nil {
		return err
	}

	sum, err := s.AddLaunch(l)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := printSummary(out, []string{l.Label()}, []sim.Summary{sum}); err != nil {
		return err
	}
	if p, err := l.Params(s.Gravity); err == nil {
		d := physics.NewLinearDrag(p)
		fmt.Fprintf(out, "\nterminal velocity %.1fm/s, range limit %.1fm\n", d.TerminalVelocity(), d.RangeLimit(p.Speed, p.AngleRad))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, newRenderer(cfg, s).Render(s.Records()))
	return nil
}

// resolveLaunch starts from the preset, or the config launch, and applies
// the launch flags the user set.
func resolveLaunch(cmd *cobra.Command, l config.Launch) (config.Launch, error) {
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return config.Launch{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		l = *p
	}
	flags := cmd.Flags()
	if flags.Changed("angle") {
		l.AngleDeg = angle
	}
	if flags.Changed("speed") {
		l.Speed = speed
	}
	if flags.Changed("drag") {
		l.Drag = drag
	}
	if flags.Changed("mass") {
		l.Mass = mass
	}
	return l, nil
}

// collect builds the launch list for compare and export: named presets
// first, then --launch entries. No arguments means the default launch.
func collect(args []string) ([]config.Launch, error) {
	var out []config.Launch
	for _, name := range args {
		p := config.GetPreset(name)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
		out = append(out, *p)
	}
	for _, arg := range launches {
		l, err := config.ParseLaunch(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if len(out) == 0 {
		out = append(out, config.DefaultLaunch())
	}
	return out, nil
}

func populate(s *experiment.Session, ls []config.Launch) ([]string, []sim.Summary, error) {
	labels := make([]string, 0, len(ls))
	sums := make([]sim.Summary, 0, len(ls))
	for _, l := range ls {
		sum, err := s.AddLaunch(l)
		if err != nil {
			return nil, nil, err
		}
		labels = append(labels, l.Label())
		sums = append(sums, sum)
	}
	return labels, sums, nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	ls, err := collect(args)
	if err != nil {
		return err
	}
	s, cfg, err := newSession(cmd)
	if err != nil {
		return err
	}
	labels, sums, err := populate(s, ls)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := printSummary(out, labels, sums); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, newRenderer(cfg, s).Render(s.Records()))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	ls, err := collect(args)
	if err != nil {
		return err
	}
	s, _, err := newSession(cmd)
	if err != nil {
		return err
	}
	if _, _, err := populate(s, ls); err != nil {
		return err
	}

	paths, err := export.WriteAll(outDir, s.Records(), s.Grid().Span())
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tANGLE\tSPEED\tDRAG\tMASS")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%d°\t%d\t%g\t%g\n", name, p.AngleDeg, p.Speed, p.Drag, p.Mass)
	}
	return w.Flush()
}

func printSummary(out io.Writer, labels []string, sums []sim.Summary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LAUNCH\tSAMPLES\tFLIGHT\tRANGE\tAPEX\tIMPACT")
	for i, sum := range sums {
		flight := fmt.Sprintf("%.2fs", sum.FlightTime)
		if !sum.Grounded {
			flight = ">" + flight
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%.1fm\t%.1fm\t%.1fm/s\n",
			labels[i], sum.Samples, flight, sum.Range, sum.Apex, sum.ImpactSpeed)
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	s, cfg, err := newSession(cmd)
	if err != nil {
		return err
	}
	base, err := resolveLaunch(cmd, s.Controls)
	if err != nil {
		return err
	}

	sw := &automation.ParameterSweep{
		Base:     base,
		Param:    sweepParam,
		Min:      sweepFrom,
		Max:      sweepTo,
		NumSteps: sweepSteps,
	}
	results, err := automation.RunSweep(cmd.Context(), sw, s)
	if err != nil {
		return err
	}

	labels := make([]string, len(results))
	sums := make([]sim.Summary, len(results))
	for i, r := range results {
		labels[i], sums[i] = r.Launch.Label(), r.Summary
	}

	out := cmd.OutOrStdout()
	if err := printSummary(out, labels, sums); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, newRenderer(cfg, s).Render(s.Records()))
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	s, cfg, err := newSession(cmd)
	if err != nil {
		return err
	}

	sums, err := automation.RunScenario(cmd.Context(), sc, s)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if sc.Name != "" {
		fmt.Fprintf(out, "%s\n", sc.Name)
	}
	if sc.Description != "" {
		fmt.Fprintf(out, "%s\n", sc.Description)
	}
	fmt.Fprintln(out)

	records := s.Records()
	labels := make([]string, len(records))
	for i, rec := range records {
		labels[i] = rec.Label
	}
	if err := printSummary(out, labels, sums); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, newRenderer(cfg, s).Render(records))

	if scenarioOut != "" {
		paths, err := export.WriteAll(scenarioOut, records, s.Grid().Span())
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(out, "wrote %s\n", p)
		}
	}
	return nil
}

func runOptimize(cmd *cobra.Command, args []string) error {
	s, _, err := newSession(cmd)
	if err != nil {
		return err
	}
	base, err := resolveLaunch(cmd, s.Controls)
	if err != nil {
		return err
	}

	best, err := optim.MaxRange(cmd.Context(), base, s.Grid(), s.Gravity)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ANGLE\tRANGE\tLANDING\tLAUNCH")
	fmt.Fprintf(w, "%d°\t%.1fm\t%.2fs\t%s\n", best.Launch.AngleDeg, best.Range, best.Landing, best.Launch.Label())
	return w.Flush()
}
