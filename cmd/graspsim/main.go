package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/graspsim/internal/config"
	"github.com/san-kum/graspsim/internal/report"
	"github.com/san-kum/graspsim/internal/sim"
	"github.com/san-kum/graspsim/internal/storage"
	"github.com/san-kum/graspsim/internal/tissue"
	"github.com/san-kum/graspsim/internal/tuner"
	"github.com/san-kum/graspsim/internal/viz"
)

var (
	dataDir    string
	tissueName string
	override   string
	kp         float64
	ki         float64
	kd         float64
	target     float64
	breathing  bool
	duration   float64
	seed       int64
	configFile string
	preset     string
)

var (
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	safeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "graspsim",
		Short: "surgical grasp control simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".graspsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a grasp simulation",
		RunE:  runSimulation,
	}
	addLoopFlags(runCmd)
	runCmd.Flags().Float64Var(&kp, "kp", config.DefaultKp, "proportional gain")
	runCmd.Flags().Float64Var(&ki, "ki", config.DefaultKi, "integral gain")
	runCmd.Flags().Float64Var(&kd, "kd", config.DefaultKd, "derivative gain")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "auto-tune controller gains for a tissue",
		RunE:  runTune,
	}
	addLoopFlags(tuneCmd)
	tuneCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed for ghost sampling")

	classifyCmd := &cobra.Command{
		Use:   "classify [image]",
		Short: "classify a tissue scan image",
		Args:  cobra.ExactArgs(1),
		RunE:  classifyImage,
	}
	classifyCmd.Flags().StringVar(&override, "override", "", "manual tissue override (empty or 'auto' keeps detection)")

	tissuesCmd := &cobra.Command{
		Use:   "tissues",
		Short: "list tissue profiles",
		RunE:  listTissues,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a simulation with live visualization",
		RunE:  runLive,
	}
	addLoopFlags(liveCmd)
	liveCmd.Flags().Float64Var(&kp, "kp", config.DefaultKp, "proportional gain")
	liveCmd.Flags().Float64Var(&ki, "ki", config.DefaultKi, "integral gain")
	liveCmd.Flags().Float64Var(&kd, "kd", config.DefaultKd, "derivative gain")

	rootCmd.AddCommand(runCmd, tuneCmd, classifyCmd, tissuesCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addLoopFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&tissueName, "tissue", config.DefaultTissue, "tissue profile name")
	cmd.Flags().Float64Var(&target, "target", config.DefaultTarget, "target grip strength (N)")
	cmd.Flags().BoolVar(&breathing, "breathing", false, "simulate breathing (organ motion)")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (s)")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	if preset != "" {
		cfg := config.GetPreset(tissueName, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(tissueName))
		}
		applyConfig(cmd, cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyConfig(cmd, cfg)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	profile := tissue.Lookup(tissueName)
	gains := sim.Gains{Kp: kp, Ki: ki, Kd: kd}

	fmt.Printf("simulating %s grasp (target %.1f N)...\n", profile.Name, target)
	start := time.Now()

	trace := sim.Run(gains, target, profile, breathing, duration)

	elapsed := time.Since(start)

	runID, err := st.Save(profile.Name, gains, target, breathing, duration, trace)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", trace.Len())
	printVerdict(trace)

	return nil
}

func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("tissue") && cfg.Tissue != "" {
		tissueName = cfg.Tissue
	}
	if !cmd.Flags().Changed("target") {
		target = cfg.Target
	}
	if !cmd.Flags().Changed("breathing") {
		breathing = cfg.Breathing
	}
	if !cmd.Flags().Changed("time") && cfg.Duration > 0 {
		duration = cfg.Duration
	}
	if !cmd.Flags().Changed("kp") {
		kp = cfg.Gains.Kp
	}
	if !cmd.Flags().Changed("ki") {
		ki = cfg.Gains.Ki
	}
	if !cmd.Flags().Changed("kd") {
		kd = cfg.Gains.Kd
	}
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}
}

func runTune(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	profile := tissue.Lookup(tissueName)
	d := profile.Defaults
	initial := sim.Gains{Kp: d.Kp, Ki: d.Ki, Kd: d.Kd}

	fmt.Printf("tuning %s grasp (target %.1f N, %d candidates)...\n", profile.Name, target, 30)
	start := time.Now()

	result := tuner.New(seed).Tune(profile, target, breathing)

	fmt.Printf("searched grid in %v (%d ghost traces retained)\n", time.Since(start), len(result.Ghosts))
	fmt.Printf("best gains: kp=%g ki=%g kd=%g (cost %.4f)\n",
		result.Best.Kp, result.Best.Ki, result.Best.Kd, result.BestCost)

	// Confirmation run at the full manual horizon.
	trace := sim.Run(result.Best, target, profile, breathing, sim.DefaultDuration)

	runID, err := st.Save(profile.Name, result.Best, target, breathing, sim.DefaultDuration, trace)
	if err != nil {
		return err
	}
	fmt.Printf("confirmation run id: %s\n", runID)
	printVerdict(trace)

	fmt.Println()
	fmt.Print(report.Explain("", profile.Name, profile, initial, result.Best, trace.Damaged))

	return nil
}

func classifyImage(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	detected := tissue.Classify(img)
	resolved := tissue.Resolve(detected, override)
	profile := tissue.Lookup(resolved)

	fmt.Printf("detected: %s\n", detected)
	if resolved != detected {
		fmt.Printf("override: %s\n", resolved)
	}
	fmt.Printf("defaults: kp=%g ki=%g kd=%g max_force=%g\n",
		profile.Defaults.Kp, profile.Defaults.Ki, profile.Defaults.Kd, profile.Defaults.MaxForce)

	return nil
}

func listTissues(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTIFFNESS_KPA\tBREAKING_POINT\tFRICTION\tKP\tKI\tKD\tMAX_FORCE")

	for _, name := range tissue.Names() {
		p := tissue.Lookup(name)
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.2f\t%.2f\t%.2f\t%.2f\t%.1f\n",
			p.Name,
			p.YoungModulusKPa,
			p.BreakingPoint,
			p.Friction,
			p.Defaults.Kp,
			p.Defaults.Ki,
			p.Defaults.Kd,
			p.Defaults.MaxForce,
		)
	}

	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTISSUE\tTIME\tTARGET\tDURATION\tGAINS\tDAMAGED")

	for _, run := range runs {
		damaged := "no"
		if run.Damaged {
			damaged = fmt.Sprintf("t=%.2fs", run.DamageTime)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1fN\t%.1fs\t%g/%g/%g\t%s\n",
			run.ID,
			run.Tissue,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Target,
			run.Duration,
			run.Kp, run.Ki, run.Kd,
			damaged,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	if trace.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("tissue: %s  target: %.1f N  breaking point: %.1f N\n\n",
		meta.Tissue, meta.Target, meta.BreakingPoint)

	graph := asciigraph.Plot(trace.Grips,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("grip strength (N) vs time"),
	)
	fmt.Println(graph)
	fmt.Println()
	printVerdict(trace)

	return nil
}

func printVerdict(trace *sim.Trace) {
	fmt.Printf("max grip: %.2f N\n", trace.MaxGrip)
	if trace.Damaged {
		fmt.Println(dangerStyle.Render(fmt.Sprintf("TISSUE INJURY: force exceeded %.1f N at t=%.2fs", trace.BreakingPoint, trace.DamageTime)))
	} else {
		fmt.Println(safeStyle.Render("safe operation"))
	}
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	if trace.Len() == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "grip", "setpoint"}); err != nil {
		return err
	}

	for i := range trace.Times {
		row := []string{
			strconv.FormatFloat(trace.Times[i], 'f', 6, 64),
			strconv.FormatFloat(trace.Grips[i], 'f', 6, 64),
			strconv.FormatFloat(trace.Setpoints[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return storage.ExportJSON(enc, meta, trace)
}

func runLive(cmd *cobra.Command, args []string) error {
	profile := tissue.Lookup(tissueName)
	gains := sim.Gains{Kp: kp, Ki: ki, Kd: kd}

	m := viz.NewModel(profile, gains, target, breathing, duration)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
