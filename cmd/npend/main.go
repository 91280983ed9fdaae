package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/analysis"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/config"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/integrators"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/metrics"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/physics"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/sim"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/solver"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/storage"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/viz"
)

var (
	dataDir    string
	dt         float64
	steps      int
	joints     int
	masses     []float64
	lengths    []float64
	gravity    float64
	angles     []float64
	omegas     []float64
	cartVel    float64
	accumulate bool
	progress   int
	configFile string
	preset     string
	pngPath    string
	column     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "npend",
		Short: "n-joint inverted pendulum simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".npend", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation",
		RunE:  runSimulation,
	}
	addChainFlags(runCmd)
	runCmd.Flags().IntVar(&progress, "progress", 0, "print step index every N steps (0 disables)")

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
	plotCmd.Flags().StringVar(&pngPath, "png", "", "write a PNG chart instead of terminal plots")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a trajectory column",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&column, "column", 2, "trajectory column index")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live visualization",
		RunE:  runLive,
	}
	addChainFlags(liveCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark step throughput",
		RunE:  benchChain,
	}
	addChainFlags(benchCmd)

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, analyzeCmd, presetsCmd, liveCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addChainFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	cmd.Flags().IntVar(&joints, "joints", 1, "number of joints")
	cmd.Flags().Float64SliceVar(&masses, "masses", []float64{1, 0.1}, "cart mass followed by one mass per joint")
	cmd.Flags().Float64SliceVar(&lengths, "lengths", []float64{1}, "one length per joint")
	cmd.Flags().Float64Var(&gravity, "gravity", config.DefaultGravity, "gravitational acceleration")
	cmd.Flags().Float64SliceVar(&angles, "angles", []float64{0.1}, "initial joint angles (rad)")
	cmd.Flags().Float64SliceVar(&omegas, "omegas", nil, "initial joint angular velocities")
	cmd.Flags().Float64Var(&cartVel, "cart-vel", 0, "initial cart velocity")
	cmd.Flags().BoolVar(&accumulate, "accumulate", false, "integrate cart position instead of the velocity*dt reset behavior")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig resolves preset, config file and flags; CLI flags win.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("joints") {
		cfg.Joints = joints
	}
	if cmd.Flags().Changed("masses") {
		cfg.Masses = masses
	}
	if cmd.Flags().Changed("lengths") {
		cfg.Lengths = lengths
	}
	if cmd.Flags().Changed("gravity") {
		cfg.Gravity = gravity
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("angles") {
		cfg.InitState.Angles = angles
	}
	if cmd.Flags().Changed("omegas") {
		cfg.InitState.Omegas = omegas
	}
	if cmd.Flags().Changed("cart-vel") {
		cfg.InitState.CartVel = cartVel
	}
	if cmd.Flags().Changed("accumulate") {
		if accumulate {
			cfg.Position = "accumulate"
		} else {
			cfg.Position = "reset"
		}
	}
	return cfg, nil
}

func positionMode(cfg *config.Config) integrators.PositionMode {
	if cfg.Position == "accumulate" {
		return integrators.PositionAccumulate
	}
	return integrators.PositionReset
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	chain, err := physics.NewChain(cfg.Joints, cfg.Masses, cfg.Lengths, cfg.Gravity)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	simulator := sim.New(chain, solver.NewLeastSquares(), integrators.NewSymplecticEuler(positionMode(cfg)))
	simulator.AddMetric(metrics.NewEnergy(chain))
	simulator.AddMetric(metrics.NewEnergyDrift(chain))
	if progress > 0 {
		simulator.AddObserver(sim.NewProgress(os.Stdout, progress, cfg.Steps))
	}

	fmt.Printf("running %d-joint chain for %d steps...\n", cfg.Joints, cfg.Steps)
	start := time.Now()

	result, err := simulator.Run(context.Background(), cfg.GetInitState(), sim.Config{Dt: cfg.Dt, Steps: cfg.Steps})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		Joints:   cfg.Joints,
		Masses:   cfg.Masses,
		Lengths:  cfg.Lengths,
		Gravity:  cfg.Gravity,
		Dt:       cfg.Dt,
		Steps:    cfg.Steps,
		Position: cfg.Position,
		Metrics:  result.Metrics,
	}, result.Trajectory)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("rows: %d\n", len(result.Trajectory))
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
	fmt.Fprintln(w, "ID\tJOINTS\tTIME\tSTEPS\tDT\tPOSITION")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%.4fs\t%s\n",
			run.ID,
			run.Joints,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Dt,
			run.Position,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	trajectory, times, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(trajectory) == 0 {
		return fmt.Errorf("no data to plot")
	}

	if pngPath != "" {
		if err := viz.SavePNG(pngPath, trajectory, times, meta.Joints); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngPath)
		return nil
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("rows: %d\n\n", len(trajectory))
	fmt.Print(viz.PlotColumns(trajectory, meta.Joints))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trajectory, times, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, *meta, times, trajectory)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trajectory, times, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, *meta, times, trajectory)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trajectory, _, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(trajectory) == 0 {
		return fmt.Errorf("no data")
	}
	if column < 0 || column >= len(trajectory[0]) {
		return fmt.Errorf("column %d out of range (row length %d)", column, len(trajectory[0]))
	}

	freq := analysis.DominantFrequency(trajectory.Column(column), meta.Dt)
	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("dominant frequency of column %d: %.3f hz\n", column, freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	chain, err := physics.NewChain(cfg.Joints, cfg.Masses, cfg.Lengths, cfg.Gravity)
	if err != nil {
		return err
	}
	stepper := integrators.NewSymplecticEuler(positionMode(cfg))
	return viz.RunLive(chain, solver.NewLeastSquares(), stepper, cfg.GetInitState(), cfg.Dt)
}

func benchChain(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	chain, err := physics.NewChain(cfg.Joints, cfg.Masses, cfg.Lengths, cfg.Gravity)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %d-joint chain\n\n", cfg.Joints)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, benchDt := range []float64{0.0001, 0.001, 0.01} {
		simulator := sim.New(chain, solver.NewLeastSquares(), integrators.NewSymplecticEuler(positionMode(cfg)))

		start := time.Now()
		result, err := simulator.Run(context.Background(), cfg.GetInitState(), sim.Config{Dt: benchDt, Steps: cfg.Steps})
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%.4fs\t%d\t%v\t%.0f\n",
			benchDt, result.StepsTaken, elapsed, float64(result.StepsTaken)/elapsed.Seconds())
	}
	return w.Flush()
}
