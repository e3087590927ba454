package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/carbonplan/dac-costing/pkg/model"
	"github.com/carbonplan/dac-costing/pkg/spec"
	"github.com/carbonplan/dac-costing/pkg/validation"
)

// loadAndValidate loads the scenario and runs schema validation.
func loadAndValidate(projectPath string) (*spec.ScenarioSpec, *validation.Report, error) {
	scenario, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading scenario: %w", err)
	}
	report := validation.ValidateSchema(scenario)
	return scenario, report, nil
}

func runValidate(projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runCost(projectPath string, asJSON bool) error {
	scenario, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("scenario has validation errors; fix before computing cost")
	}

	result, err := model.Compute(scenario)
	if err != nil {
		return fmt.Errorf("computing cost model: %w", err)
	}

	validation.ValidateEconomic(scenario, result, report)

	if asJSON {
		output := map[string]any{
			"scenario":   scenario,
			"cost":       result,
			"validation": report,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	printCostReport(result)

	if len(report.Warnings) > 0 || len(report.Info) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}
