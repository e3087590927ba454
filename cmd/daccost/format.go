package main

import (
	"fmt"

	"github.com/carbonplan/dac-costing/pkg/model"
	"github.com/carbonplan/dac-costing/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(e)
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			printResult(w)
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(res validation.Result) {
	fmt.Printf("  [%s] %s\n", res.Level, res.Message)
	if res.SpecPath != "" && res.ActualValue != nil {
		fmt.Printf("    -> %s = %v\n", res.SpecPath, res.ActualValue)
	}
	if res.Expected != "" {
		fmt.Printf("    expected: %s\n", res.Expected)
	}
	for _, s := range res.Suggestions {
		fmt.Printf("    * %s\n", s)
	}
}

func printCostReport(r *model.Result) {
	fmt.Println("DAC Cost Model (annualized)")
	fmt.Println("===========================")
	fmt.Println()

	printBreakdownTable(r.Breakdown)

	fmt.Println()
	fmt.Println("Summary")
	fmt.Println("-------")
	fmt.Printf("  Lifetime:               %d years\n", r.Years)
	fmt.Printf("  Total annual cost:      $%s\n", formatMoney(r.Summary.TotalAnnualCost))
	fmt.Printf("  Captured:               %s tCO2/yr\n", formatMoney(r.Summary.CapturedTonnes))
	fmt.Printf("  Cost per tonne:         $%.2f/tCO2\n", r.Summary.CostPerTonne)
	if r.Summary.EmittedTonnesPerTonne > 0 {
		fmt.Printf("  Emitted per tonne:      %.4f tCO2e/tCO2\n", r.Summary.EmittedTonnesPerTonne)
		fmt.Printf("  Net cost per tonne:     $%.2f/tCO2\n", r.Summary.NetCostPerTonne)
	}
}

func printBreakdownTable(b model.Breakdown) {
	frac := b.Fractions()

	fmt.Printf("%-16s %14s %8s\n", "Category", "$/yr", "Share")
	fmt.Printf("%-16s %14s %8s\n", "----------------", "--------------", "--------")

	rows := []struct {
		label string
		value float64
		share float64
	}{
		{"DAC capital", b.DacCapital, frac.DacCapital},
		{"DAC O&M", b.DacOM, frac.DacOM},
		{"Electric", b.Electric, frac.Electric},
		{"Thermal", b.Thermal, frac.Thermal},
		{"Battery", b.Battery, frac.Battery},
		{"TOTAL", b.Total, frac.Total},
	}

	for _, row := range rows {
		fmt.Printf("%-16s %14s %7.1f%%\n", row.label, formatMoney(row.value), row.share*100)
	}
}

func formatMoney(v float64) string {
	if v >= 1_000_000_000 {
		return fmt.Sprintf("%.2fB", v/1_000_000_000)
	}
	if v >= 1_000_000 {
		return fmt.Sprintf("%.2fM", v/1_000_000)
	}
	if v >= 1_000 {
		return fmt.Sprintf("%.0fK", v/1_000)
	}
	return fmt.Sprintf("%.0f", v)
}
