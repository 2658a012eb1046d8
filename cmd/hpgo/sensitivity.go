package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/hpgo/internal/calculation"
	"github.com/rgehrsitz/hpgo/internal/config"
	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/rgehrsitz/hpgo/internal/output"
)

func sensitivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sensitivity [scenario-file]",
		Short: "Sweep one numeric input and show how the estimate responds",
		Long: `Sweep a numeric input (floor area, occupants or unit count) across a range
and estimate every point, holding everything else fixed.

Examples:
  hpgo sensitivity scenarios.yaml --param area_sqm
  hpgo sensitivity scenarios.yaml --scenario apartments --param unit_count --max 8
  hpgo sensitivity --params "property_type=multi_family" --param unit_count --format csv
  hpgo sensitivity --list-params`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSensitivity,
	}
	addInputFlags(cmd)
	cmd.Flags().String("scenario", "", "Scenario to sweep (default: first scenario)")
	cmd.Flags().String("param", domain.AreaParam.Name, "Parameter to sweep")
	cmd.Flags().Int("min", 0, "Override the sweep minimum")
	cmd.Flags().Int("max", 0, "Override the sweep maximum")
	cmd.Flags().Int("steps", 0, "Override the number of steps")
	cmd.Flags().StringP("format", "f", "console", "Output format (console, csv, json)")
	cmd.Flags().String("funding", "", "Funding overrides file (YAML)")
	cmd.Flags().Bool("list-params", false, "List sweepable parameters and exit")
	return cmd
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if list, _ := cmd.Flags().GetBool("list-params"); list {
		fmt.Fprintln(out, "Sweepable parameters:")
		for _, p := range domain.GetCommonSensitivityParameters() {
			fmt.Fprintf(out, "  %-12s %s (%s to %s %s, %d steps)\n",
				p.Name, p.Description, p.MinValue.String(), p.MaxValue.String(), p.Unit, p.Steps)
		}
		return nil
	}

	paramName, _ := cmd.Flags().GetString("param")
	parameter, ok := calculation.LookupSensitivityParameter(paramName)
	if !ok {
		names := []string{}
		for _, p := range domain.GetCommonSensitivityParameters() {
			names = append(names, p.Name)
		}
		return fmt.Errorf("unknown parameter %q (valid: %s)", paramName, strings.Join(names, ", "))
	}
	if v, _ := cmd.Flags().GetInt("min"); cmd.Flags().Changed("min") {
		parameter.MinValue = decimal.NewFromInt(int64(v))
	}
	if v, _ := cmd.Flags().GetInt("max"); cmd.Flags().Changed("max") {
		parameter.MaxValue = decimal.NewFromInt(int64(v))
	}
	if v, _ := cmd.Flags().GetInt("steps"); cmd.Flags().Changed("steps") {
		parameter.Steps = v
	}

	var (
		file     *domain.ScenarioFile
		scenario domain.NamedScenario
	)
	scenarioName, _ := cmd.Flags().GetString("scenario")
	if len(args) == 1 {
		if cmd.Flags().Changed("params") || cmd.Flags().Changed("prefs") {
			return fmt.Errorf("--params and --prefs cannot be combined with a scenario file")
		}
		loaded, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		file = loaded
		scenario = loaded.Scenarios[0]
		if scenarioName != "" {
			if scenario, ok = loaded.FindScenario(scenarioName); !ok {
				return fmt.Errorf("scenario %q not found in %s", scenarioName, args[0])
			}
		}
	} else {
		partial, err := resolveFlags(cmd)
		if err != nil {
			return err
		}
		scenario = domain.NamedScenario{Name: "custom", Input: partial}
	}

	fundingPath, _ := cmd.Flags().GetString("funding")
	engine, err := newEngine(fundingPath, file, false)
	if err != nil {
		return err
	}

	base := engine.EstimateFromPartial(scenario.Input).Input
	analysis, err := calculation.NewSensitivityAnalyzer(engine).AnalyzeSingleParameter(base, parameter, scenario.Name)
	if err != nil {
		return fmt.Errorf("sensitivity analysis failed: %w", err)
	}

	format, _ := cmd.Flags().GetString("format")
	text, err := output.NewSensitivityFormatter(format).FormatSensitivityAnalysis(analysis)
	if err != nil {
		return err
	}
	fmt.Fprint(out, text)
	return nil
}
