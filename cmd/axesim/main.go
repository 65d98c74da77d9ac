package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/axesim/internal/config"
	"github.com/san-kum/axesim/internal/dynamo"
	"github.com/san-kum/axesim/internal/experiment"
	"github.com/san-kum/axesim/internal/export"
	"github.com/san-kum/axesim/internal/geometry"
	"github.com/san-kum/axesim/internal/physics"
	"github.com/san-kum/axesim/internal/storage"
	"github.com/san-kum/axesim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	posX       float64
	posY       float64
	theta      float64
	velX       float64
	velY       float64
	omega      float64
	seed       int64
	integrator string
	// Phase plot axes
	xAxis int
	yAxis int
	// Config file
	configFile string
	// Preset name
	preset string
	// Export options
	outPath   string
	outDir    string
	poseEvery int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "axesim",
		Short: "thrown-axe flight simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".axesim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addThrowFlags(runCmd)
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 2, "state index for x-axis (default theta)")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", 5, "state index for y-axis (default omega)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
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

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export trajectory with axe poses to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outPath, "out", "flight.svg", "output file")
	exportSVGCmd.Flags().IntVar(&poseEvery, "every", 5, "draw the axe at every n-th sample")

	exportPNGCmd := &cobra.Command{
		Use:   "export-png [run_id]",
		Short: "export time-series and trajectory figures to PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPNG,
	}
	exportPNGCmd.Flags().StringVar(&outDir, "out-dir", ".", "output directory")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live visualization",
		RunE:  runLive,
	}
	addThrowFlags(liveCmd)
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	compareCmd := &cobra.Command{
		Use:   "compare [model] [integrator1] [integrator2] ...",
		Short: "compare integrators on the same model",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	compareCmd.Flags().Float64Var(&duration, "time", 1.0, "duration")

	benchCmd := &cobra.Command{
		Use:   "bench [model]",
		Short: "benchmark model",
		Args:  cobra.ExactArgs(1),
		RunE:  benchModel,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, phaseCmd, exportCmd, exportCSVCmd,
		exportJSONCmd, exportSVGCmd, exportPNGCmd, liveCmd, compareCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addThrowFlags(cmd *cobra.Command) {
	throw := physics.DefaultThrow()
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Float64Var(&posX, "x", throw.X, "initial x position")
	cmd.Flags().Float64Var(&posY, "y", throw.Y, "initial height")
	cmd.Flags().Float64Var(&theta, "theta", throw.Theta, "initial orientation")
	cmd.Flags().Float64Var(&velX, "vx", throw.VX, "initial x velocity")
	cmd.Flags().Float64Var(&velY, "vy", throw.VY, "initial y velocity")
	cmd.Flags().Float64Var(&omega, "omega", throw.Omega, "initial angular velocity")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator")
}

// resolveConfig folds preset and config-file values under explicit CLI flags.
func resolveConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Model = model

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
		cfg.Model = model
	}

	if cmd.Flags().Changed("dt") || (preset == "" && configFile == "") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") || (preset == "" && configFile == "") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("integrator") || (preset == "" && configFile == "") {
		cfg.Integrator = integrator
	}
	flagState := map[string]*float64{
		"x": &cfg.InitState.X, "y": &cfg.InitState.Y, "theta": &cfg.InitState.Theta,
		"vx": &cfg.InitState.VX, "vy": &cfg.InitState.VY, "omega": &cfg.InitState.Omega,
	}
	values := map[string]float64{
		"x": posX, "y": posY, "theta": theta, "vx": velX, "vy": velY, "omega": omega,
	}
	for name, dst := range flagState {
		if cmd.Flags().Changed(name) || (preset == "" && configFile == "") {
			*dst = values[name]
		}
	}

	return cfg, nil
}

func buildModel(cfg *config.Config) (dynamo.System, error) {
	if cfg.Model == "axe" {
		return cfg.BuildAxe(), nil
	}
	registry := experiment.NewRegistry()
	return registry.GetModel(cfg.Model)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()

	dyn, err := buildModel(cfg)
	if err != nil {
		return err
	}

	integ, err := registry.GetIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	expCfg := experiment.Config{
		Model:      cfg.Model,
		Integrator: cfg.Integrator,
		InitState:  cfg.GetInitState(),
		Dt:         cfg.Dt,
		Duration:   cfg.Duration,
		Seed:       seed,
	}

	exp := experiment.New(expCfg)
	if err := exp.Setup(dyn, integ, registry.DefaultMetrics(dyn)); err != nil {
		return err
	}

	fmt.Printf("running %s simulation...\n", cfg.Model)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Model, cfg.Dt, cfg.Duration, seed, cfg.Integrator, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(result.States))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
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
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tDURATION\tDT\tINTEG")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
		)
	}

	return w.Flush()
}

var axeCaptions = []string{
	"x (horizontal position)",
	"y (height)",
	"theta (orientation)",
	"vx (horizontal velocity)",
	"vy (vertical velocity)",
	"omega (angular velocity)",
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("samples: %d\n\n", len(states))

	numVars := len(states[0])

	for varIdx := 0; varIdx < numVars; varIdx++ {
		data := make([]float64, len(states))
		for i := range states {
			if varIdx < len(states[i]) {
				data[i] = states[i][varIdx]
			}
		}

		caption := fmt.Sprintf("x%d vs time", varIdx)
		if numVars == 6 && varIdx < len(axeCaptions) {
			caption = axeCaptions[varIdx]
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	if len(states[0]) <= xAxis || len(states[0]) <= yAxis {
		return fmt.Errorf("state dimension too small for selected axes")
	}

	fmt.Printf("phase space plot: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("x-axis: x%d, y-axis: x%d\n\n", xAxis, yAxis)

	xData := make([]float64, len(states))
	yData := make([]float64, len(states))
	for i := range states {
		xData[i] = states[i][xAxis]
		yData[i] = states[i][yAxis]
	}

	xMin, xMax := xData[0], xData[0]
	yMin, yMax := yData[0], yData[0]
	for i := range xData {
		if xData[i] < xMin {
			xMin = xData[i]
		}
		if xData[i] > xMax {
			xMax = xData[i]
		}
		if yData[i] < yMin {
			yMin = yData[i]
		}
		if yData[i] > yMax {
			yMax = yData[i]
		}
	}

	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	width := 70
	height := 20
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i := range xData {
		px := int(float64(width-1) * (xData[i] - xMin) / xRange)
		py := int(float64(height-1) * (yData[i] - yMin) / yRange)
		py = height - 1 - py // Flip y-axis
		if px >= 0 && px < width && py >= 0 && py < height {
			if i < len(xData)/3 {
				canvas[py][px] = '.'
			} else if i < 2*len(xData)/3 {
				canvas[py][px] = 'o'
			} else {
				canvas[py][px] = '●'
			}
		}
	}

	fmt.Printf("  %.2f ┌", yMax)
	fmt.Print(strings.Repeat("─", width))
	fmt.Println("┐")

	for i := range canvas {
		if i == height/2 {
			fmt.Printf("  %.2f │", (yMax+yMin)/2)
		} else {
			fmt.Print("       │")
		}
		fmt.Print(string(canvas[i]))
		fmt.Println("│")
	}

	fmt.Printf("  %.2f └", yMin)
	fmt.Print(strings.Repeat("─", width))
	fmt.Println("┘")

	fmt.Printf("       %.2f", xMin)
	fmt.Print(strings.Repeat(" ", max(width-20, 1)))
	fmt.Printf("%.2f\n", xMax)

	fmt.Printf("\nLegend: . = early, o = middle, ● = late\n")

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	if len(states[0]) == 6 {
		header = append(header, "x", "y", "theta", "vx", "vy", "omega")
	} else {
		for i := range states[0] {
			header = append(header, fmt.Sprintf("x%d", i))
		}
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	result := &dynamo.Result{
		States:  make([]dynamo.State, len(states)),
		Times:   times,
		Metrics: meta.Metrics,
	}
	for i, s := range states {
		result.States[i] = s
	}

	return storage.ExportJSONStdout(meta.Model, meta.Integrator, meta.Dt, meta.Duration, result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) < 2 {
		return fmt.Errorf("not enough data to export")
	}
	if len(states[0]) < 6 {
		return fmt.Errorf("run has no orientation data; export-svg needs an axe run")
	}

	if poseEvery < 1 {
		poseEvery = 1
	}

	axe := physics.NewAxe()
	trajectory := make([]geometry.Vec2, len(states))
	poses := make([]geometry.Pose, 0, len(states)/poseEvery+1)
	for i, s := range states {
		trajectory[i] = geometry.Vec2{X: s[0], Y: s[1]}
		if poseEvery > 0 && i%poseEvery == 0 {
			poses = append(poses, axe.Pose(s))
		}
	}

	svg := export.PosesToSVG(trajectory, poses, 900, 500)
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d poses)\n", outPath, len(poses))
	return nil
}

func exportPNG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	if err := export.SaveFlightPlots(outDir, times, states); err != nil {
		return err
	}

	fmt.Printf("wrote figures to %s\n", outDir)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "axe")
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	integ, err := registry.GetIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	m := viz.NewModel(cfg.BuildAxe(), integ, cfg.GetInitState(), cfg.Dt)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	model := args[0]
	names := args[1:]

	registry := experiment.NewRegistry()
	dyn, err := registry.GetModel(model)
	if err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	cfg.Model = model
	initState := cfg.GetInitState()

	fmt.Printf("comparing integrators for %s (dt=%.4f, duration=%.1fs)\n\n", model, dt, duration)
	fmt.Printf("%-12s  %-12s  %-12s  %-12s\n", "integrator", "final_y", "energy_drift", "time_ms")
	fmt.Println(strings.Repeat("-", 52))

	for _, intName := range names {
		integ, err := registry.GetIntegrator(intName)
		if err != nil {
			fmt.Printf("%-12s  error: %v\n", intName, err)
			continue
		}

		s := dynamo.New(dyn, integ)
		simCfg := dynamo.DefaultConfig()
		simCfg.Dt = dt
		simCfg.Duration = duration

		start := time.Now()
		result, err := s.Run(context.Background(), initState, simCfg)
		elapsed := time.Since(start)

		if err != nil {
			fmt.Printf("%-12s  error: %v\n", intName, err)
			continue
		}

		finalY := 0.0
		if final := result.Final(); len(final) > 1 {
			finalY = final[1]
		}

		fmt.Printf("%-12s  %12.6f  %12.2e  %12.2f\n", intName, finalY, result.EnergyDrift, float64(elapsed.Microseconds())/1000)
	}

	return nil
}

func benchModel(cmd *cobra.Command, args []string) error {
	model := args[0]

	registry := experiment.NewRegistry()
	dyn, err := registry.GetModel(model)
	if err != nil {
		return err
	}

	integ, err := registry.GetIntegrator("rk4")
	if err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	cfg.Model = model
	initState := cfg.GetInitState()

	durations := []float64{1.0, 5.0, 10.0}
	dts := []float64{0.001, 0.01, 0.1}

	fmt.Printf("benchmarking %s\n\n", model)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, dur := range durations {
		for _, stepSize := range dts {
			s := dynamo.New(dyn, integ)
			simCfg := dynamo.DefaultConfig()
			simCfg.Dt = stepSize
			simCfg.Duration = dur

			start := time.Now()
			result, err := s.Run(context.Background(), initState, simCfg)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			steps := result.StepsTaken
			stepsPerSec := float64(steps) / elapsed.Seconds()

			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\n",
				dur, stepSize, steps, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}
