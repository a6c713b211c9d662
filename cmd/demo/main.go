package main

import (
	"flag"
	"fmt"
	"math"

	"sequential-monitor/internal/sequential"
	"sequential-monitor/internal/spending"
)

// Demo:
// - Build an engine for a 5-look, alpha=0.05 O'Brien-Fleming design
// - Simulate a conversion experiment where the treatment effect emerges as
//   data accumulates
// - Show the boundary, the interim decisions, and the final result
func main() {
	baseline := flag.Float64("baseline", 0.10, "Control conversion rate")
	lift := flag.Float64("lift", 0.03, "True absolute lift in the treatment arm")
	perLook := flag.Int("per-look", 800, "New samples per group at each look")
	flag.Parse()

	cfg := sequential.TestConfig{
		MaxLooks: 5,
		Alpha:    0.05,
		Power:    0.8,
		Sided:    sequential.TwoSided,
		Spending: spending.OBrienFleming{},
	}
	eng, err := sequential.New(cfg)
	if err != nil {
		panic(err)
	}

	fmt.Println("Design: 5 looks, alpha=0.05, two-sided, O'Brien-Fleming spending")
	fmt.Println("Boundaries per look:")
	schedule := eng.Schedule()
	for k, b := range eng.Boundaries() {
		fmt.Printf("  look %d (t=%.1f): |z| >= %.3f\n", k+1, schedule[k], b)
	}

	plan, err := eng.RecommendedSampleSize(*lift, *baseline, true)
	if err != nil {
		panic(err)
	}
	fmt.Printf("\nRecommended cumulative per-group sizes: %v\n\n", plan)

	// Accumulate data look by look. Rates are treated as exact here; a real
	// deployment feeds whatever the experimentation pipeline aggregated.
	treatment := *baseline + *lift
	for look := 1; look <= cfg.MaxLooks; look++ {
		n := *perLook * look
		pBar := (*baseline + treatment) / 2
		sd := math.Sqrt(pBar * (1 - pBar))

		a, err := eng.Analyze(look, n, n, *baseline, treatment, sd)
		if err != nil {
			panic(err)
		}
		fmt.Printf("look %d: n=%d/group z=%+.3f p=%.4f boundary=%.3f cp=%.3f\n",
			look, n, a.ZScore, a.PValue, a.CriticalBoundary, a.ConditionalPower)
		if a.StopForEfficacy {
			fmt.Println("  -> stopping early for efficacy")
			break
		}
		if a.StopForFutility {
			fmt.Println("  -> stopping early for futility")
			break
		}
	}

	res := eng.Result()
	fmt.Printf("\nStatus=%s Decision=%s", res.Status, res.Decision)
	if res.Status != sequential.StatusContinue {
		fmt.Printf(" adjusted_p=%.6f", res.AdjustedPValue)
	}
	fmt.Println()
}
