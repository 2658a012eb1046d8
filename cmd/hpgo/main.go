package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/hpgo/internal/calculation"
	"github.com/rgehrsitz/hpgo/internal/config"
	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/rgehrsitz/hpgo/internal/output"
	"github.com/rgehrsitz/hpgo/internal/params"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hpgo %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// fileExists checks if a file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hpgo",
		Short: "Heat pump cost and subsidy estimator",
		Long: `Estimate the installed cost, subsidy, net cost, performance factor and
annual operating savings of a residential heat pump retrofit.

Inputs come from a scenario file, a deep-link query string (--params) or a
saved preference record (--prefs). Deep-link values win over saved ones and
saved ones over defaults.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		estimateCmd(),
		validateCmd(),
		leadParamsCmd(),
		compareCmd(),
		sensitivityCmd(),
		serveCmd(),
		initCmd(),
		versionCmd(),
	)
	return root
}

// newEngine builds an engine from, in order of preference, a funding file,
// the scenario file's overrides, or the defaults.
func newEngine(fundingPath string, file *domain.ScenarioFile, debugMode bool) (*calculation.EstimationEngine, error) {
	funding := domain.DefaultFundingConstants()
	switch {
	case fundingPath != "":
		loaded, err := config.NewInputParser().LoadFundingFromFile(fundingPath)
		if err != nil {
			return nil, err
		}
		funding = loaded
	case file != nil:
		funding = file.FundingConstants()
	}

	engine := calculation.NewEstimationEngineWithConfig(funding)
	if debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine, nil
}

// resolveFlags merges --params over --prefs.
func resolveFlags(cmd *cobra.Command) (domain.PartialScenario, error) {
	rawParams, _ := cmd.Flags().GetString("params")
	prefsFile, _ := cmd.Flags().GetString("prefs")

	var deepLink, saved domain.PartialScenario
	if rawParams != "" {
		values, err := url.ParseQuery(strings.TrimPrefix(rawParams, "?"))
		if err != nil {
			return domain.PartialScenario{}, fmt.Errorf("invalid --params query: %w", err)
		}
		deepLink = params.Decode(values)
	}
	if prefsFile != "" {
		p, err := params.LoadPreferenceFile(prefsFile)
		if err != nil {
			return domain.PartialScenario{}, err
		}
		saved = p
	}
	return params.Resolve(deepLink, saved), nil
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("params", "", `Deep-link parameters as a query string, e.g. "pump_type=ground_water&area_sqm=180"`)
	cmd.Flags().String("prefs", "", "Saved preference record (flat YAML map of the same keys)")
}

func estimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate [scenario-file]",
		Short: "Estimate cost, subsidy and savings",
		Long: `Estimate every scenario in a file, or a single scenario assembled from
--params and --prefs when no file is given.

Examples:
  hpgo estimate scenarios.yaml
  hpgo estimate scenarios.yaml --scenario house --format json
  hpgo estimate --params "pump_type=ground_water&insulation=good"
  hpgo estimate --prefs saved.yaml --params "income_bonus=yes" --format params`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEstimate,
	}
	addInputFlags(cmd)
	cmd.Flags().String("scenario", "", "Only estimate the named scenario")
	cmd.Flags().StringP("format", "f", "console", "Output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	cmd.Flags().String("funding", "", "Funding overrides file (YAML)")
	cmd.Flags().Bool("save", false, "Also write the report to a timestamped file")
	cmd.Flags().Bool("debug", false, "Log each calculation step")
	return cmd
}

func runEstimate(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unsupported format %q (valid: %s)", format, strings.Join(output.AvailableFormatterNames(), ", "))
	}

	scenarioName, _ := cmd.Flags().GetString("scenario")
	fundingPath, _ := cmd.Flags().GetString("funding")
	debugMode, _ := cmd.Flags().GetBool("debug")

	var (
		file      *domain.ScenarioFile
		scenarios []domain.NamedScenario
		source    string
	)

	if len(args) == 1 {
		if cmd.Flags().Changed("params") || cmd.Flags().Changed("prefs") {
			return errors.New("--params and --prefs cannot be combined with a scenario file")
		}
		loaded, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		file, source = loaded, args[0]
		scenarios = loaded.Scenarios
		if scenarioName != "" {
			s, ok := loaded.FindScenario(scenarioName)
			if !ok {
				return fmt.Errorf("scenario %q not found in %s (have: %s)", scenarioName, args[0], strings.Join(loaded.ScenarioNames(), ", "))
			}
			scenarios = []domain.NamedScenario{s}
		}
	} else {
		partial, err := resolveFlags(cmd)
		if err != nil {
			return err
		}
		name := scenarioName
		if name == "" {
			name = "custom"
		}
		scenarios = []domain.NamedScenario{{Name: name, Input: partial}}
		source = "command line"
	}

	engine, err := newEngine(fundingPath, file, debugMode)
	if err != nil {
		return err
	}

	results := engine.EstimateScenarios(scenarios)
	results.Source = source

	data, err := formatter.Format(&results)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		path, err := output.WriteFormatted(formatter, &results, output.FileExtension(format))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", path)
	}
	return nil
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [scenario-file]",
		Short: "Validate a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			file, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if fundingPath, _ := cmd.Flags().GetString("funding"); fundingPath != "" {
				if _, err := parser.LoadFundingFromFile(fundingPath); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scenario file %s is valid (%d scenarios)\n", args[0], len(file.Scenarios))
			return nil
		},
	}
	cmd.Flags().String("funding", "", "Also validate a funding overrides file")
	return cmd
}

func leadParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lead-params",
		Short: "Print the outbound lead parameter set for an estimate",
		Long: `Print the flat parameter set handed to lead capture: every input key plus
the headline results and the schema version, as a query string.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			partial, err := resolveFlags(cmd)
			if err != nil {
				return err
			}
			fundingPath, _ := cmd.Flags().GetString("funding")
			engine, err := newEngine(fundingPath, nil, false)
			if err != nil {
				return err
			}

			values := params.NewLeadParams(engine.EstimateFromPartial(partial)).Values()
			if lines, _ := cmd.Flags().GetBool("lines"); lines {
				return writeLines(cmd.OutOrStdout(), values)
			}
			fmt.Fprintln(cmd.OutOrStdout(), values.Encode())
			return nil
		},
	}
	addInputFlags(cmd)
	cmd.Flags().String("funding", "", "Funding overrides file (YAML)")
	cmd.Flags().Bool("lines", false, "Print one key=value per line in schema order")

	cmd.AddCommand(&cobra.Command{
		Use:   "verify [query]",
		Short: "Check a lead parameter set against the current schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := url.ParseQuery(strings.TrimPrefix(args[0], "?"))
			if err != nil {
				return fmt.Errorf("invalid query: %w", err)
			}
			lead, err := params.DecodeLeadParams(values)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid (schema %s): net cost %s, subsidy %s\n",
				lead.Schema, lead.NetCost.StringFixed(0), lead.SubsidyAmount.StringFixed(0))
			return nil
		},
	})
	return cmd
}

func writeLines(w io.Writer, values url.Values) error {
	keys := append([]string{params.KeySchema}, params.InputKeys()...)
	keys = append(keys, params.ResultKeys()...)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, values.Get(k)); err != nil {
			return err
		}
	}
	return nil
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write an example scenario file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "scenarios.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if force, _ := cmd.Flags().GetBool("force"); !force && fileExists(path) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := output.SaveScenarioFile(exampleScenarioFile(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example scenario file written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}

func exampleScenarioFile() *domain.ScenarioFile {
	ptr := func(v int) *int { return &v }
	good := domain.InsulationGood
	multi := domain.PropertyMultiFamily
	ground := domain.PumpGroundWater
	oil := domain.FuelOil
	claimed := true

	return &domain.ScenarioFile{
		Scenarios: []domain.NamedScenario{
			{
				Name:        "house",
				Description: "Single-family home, defaults for everything else",
				Input:       domain.PartialScenario{AreaSqm: ptr(150), OccupantCount: ptr(3)},
			},
			{
				Name:        "house_insulated",
				Description: "Same home after an insulation upgrade, income bonus claimed",
				Input: domain.PartialScenario{
					AreaSqm:            ptr(150),
					InsulationQuality:  &good,
					IncomeBonusClaimed: &claimed,
				},
			},
			{
				Name:        "apartments",
				Description: "Six-unit building on oil, ground source",
				Input: domain.PartialScenario{
					PumpType:           &ground,
					PropertyType:       &multi,
					UnitCount:          ptr(6),
					AreaSqm:            ptr(480),
					CurrentHeatingFuel: &oil,
					OccupantCount:      ptr(12),
				},
			},
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
