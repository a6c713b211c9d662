package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"sequential-monitor/internal/config"
	"sequential-monitor/internal/data"
	"sequential-monitor/internal/planner"
	"sequential-monitor/internal/sequential"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "monitor":
		cmdMonitor(os.Args[2:])
	case "boundaries":
		cmdBoundaries(os.Args[2:])
	case "plan":
		cmdPlan(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli monitor --looks looks.json --config examples/experiment.yaml --out results/looks.csv")
	fmt.Println("  cli boundaries --config examples/experiment.yaml")
	fmt.Println("  cli plan --config examples/experiment.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - monitor replays recorded interim looks and prints the stop/continue decision per look")
	fmt.Println("  - boundaries prints the critical z-value and information fraction per look")
	fmt.Println("  - plan prints the per-look sample sizes for the config's planning block")
}

func cmdMonitor(args []string) {
	fs := flag.NewFlagSet("monitor", flag.ExitOnError)
	looksPath := fs.String("looks", "looks.json", "Path to recorded interim looks (JSON)")
	cfgPath := fs.String("config", "", "Path to YAML experiment config")
	outPath := fs.String("out", "", "Optional output CSV path for the analysis log")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}
	series, err := data.LoadLooksJSON(*looksPath)
	if err != nil {
		fatal(err)
	}

	eng := buildEngine(cfg)
	for _, l := range series.Looks {
		a, err := eng.Analyze(l.LookNumber, l.NControl, l.NTreatment, l.MeanControl, l.MeanTreatment, l.PooledStdDev)
		if err != nil {
			fatal(fmt.Errorf("look %d: %w", l.LookNumber, err))
		}
		printAnalysis(a)
		if a.StopForEfficacy || a.StopForFutility {
			break
		}
	}

	res := eng.Result()
	fmt.Printf("\nStatus=%s Decision=%s\n", res.Status, res.Decision)
	if res.Status != sequential.StatusContinue {
		fmt.Printf("Adjusted p-value (stage-wise approximation): %.6f\n", res.AdjustedPValue)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fatal(err)
		}
		if err := sequential.WriteLogCSV(*outPath, res.Analyses); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(res.Analyses), *outPath)
	}
}

func cmdBoundaries(args []string) {
	fs := flag.NewFlagSet("boundaries", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML experiment config")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}

	eng := buildEngine(cfg)
	boundaries := eng.Boundaries()
	schedule := eng.Schedule()

	fmt.Printf("%-6s %-22s %-12s\n", "look", "information_fraction", "boundary_z")
	for k := range boundaries {
		fmt.Printf("%-6d %-22.4f %-12.4f\n", k+1, schedule[k], boundaries[k])
	}
}

func cmdPlan(args []string) {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML experiment config")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}
	if cfg.Planning.MinDetectableEffect == 0 {
		fmt.Println("config has no planning block (planning.min_detectable_effect)")
		os.Exit(2)
	}

	eng := buildEngine(cfg)
	tc := eng.Config()
	plan, err := planner.Compute(planner.Inputs{
		Alpha:               tc.Alpha,
		Power:               tc.Power,
		TwoSided:            tc.Sided == sequential.TwoSided,
		Spending:            tc.Spending,
		Schedule:            eng.Schedule(),
		MinDetectableEffect: cfg.Planning.MinDetectableEffect,
		BaselineRate:        cfg.Planning.BaselineRate,
		IsConversion:        cfg.Planning.IsConversion,
	})
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Fixed-design size (per group): %d\n", plan.BaseSampleSize)
	fmt.Printf("Sequential maximum (x%.3f):   %d\n", tc.Spending.InflationFactor(), plan.MaxSampleSize)
	for k, n := range plan.PerLook {
		fmt.Printf("  look %d: %d\n", k+1, n)
	}
}

func buildEngine(cfg *config.Config) *sequential.Engine {
	tc, err := cfg.Experiment.ToTestConfig()
	if err != nil {
		fatal(err)
	}
	eng, err := sequential.New(tc)
	if err != nil {
		fatal(err)
	}
	return eng
}

func printAnalysis(a sequential.InterimAnalysis) {
	verdict := "continue"
	switch {
	case a.StopForEfficacy:
		verdict = "STOP (efficacy)"
	case a.StopForFutility:
		verdict = "STOP (futility)"
	}
	fmt.Printf("look %d (t=%.2f): z=%+.3f p=%.4f boundary=%.3f cp=%.3f alpha_spent=%.5f -> %s\n",
		a.LookNumber, a.InformationFraction, a.ZScore, a.PValue, a.CriticalBoundary,
		a.ConditionalPower, a.AlphaSpent, verdict)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
