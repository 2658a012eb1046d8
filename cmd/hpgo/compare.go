package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/hpgo/internal/compare"
	"github.com/rgehrsitz/hpgo/internal/config"
	"github.com/rgehrsitz/hpgo/internal/transform"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [scenario-file]",
		Short: "Compare a scenario against retrofit templates or other scenarios",
		Long: `Compare a base scenario against built-in retrofit templates, or against
other scenarios from the same file.

Examples:
  hpgo compare scenarios.yaml --base house --with insulate,underfloor
  hpgo compare scenarios.yaml --base house --against house_insulated --format csv
  hpgo compare scenarios.yaml --transform set_pump:type=ground_water --transform set_area:sqm=200
  hpgo compare --list-templates`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompare,
	}
	cmd.Flags().String("base", "", "Base scenario name (default: first scenario)")
	cmd.Flags().String("with", "", "Comma-separated template names")
	cmd.Flags().String("against", "", "Comma-separated scenario names from the same file")
	cmd.Flags().StringArray("transform", nil, "Ad-hoc transform (name:key=value,...), repeatable; all are applied together")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json, compact)")
	cmd.Flags().String("funding", "", "Funding overrides file (YAML)")
	cmd.Flags().Bool("list-templates", false, "List available templates and exit")
	cmd.Flags().Bool("debug", false, "Log each calculation step")
	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	if list, _ := cmd.Flags().GetBool("list-templates"); list {
		out := cmd.OutOrStdout()
		fmt.Fprint(out, transform.GetTemplateHelp(transform.CreateBuiltInTemplates()))
		fmt.Fprintf(out, "\nTransforms for --transform: %s\n", strings.Join(transform.NewTransformRegistry().List(), ", "))
		return nil
	}
	if len(args) == 0 {
		return errors.New("scenario file required for comparison (use --list-templates to see available templates)")
	}

	withStr, _ := cmd.Flags().GetString("with")
	againstStr, _ := cmd.Flags().GetString("against")
	custom, _ := cmd.Flags().GetStringArray("transform")
	templates := transform.ParseTemplateList(withStr)
	others := transform.ParseTemplateList(againstStr)
	byTemplate := len(templates) > 0 || len(custom) > 0
	switch {
	case !byTemplate && len(others) == 0:
		return errors.New("--with, --transform or --against is required (use --list-templates to see available templates)")
	case byTemplate && len(others) > 0:
		return errors.New("--against cannot be combined with --with or --transform")
	}

	format, _ := cmd.Flags().GetString("format")
	format = strings.ToLower(format)
	switch format {
	case "table", "csv", "json", "compact":
	default:
		return fmt.Errorf("unsupported format %q (valid: table, csv, json, compact)", format)
	}

	file, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		return err
	}

	base, _ := cmd.Flags().GetString("base")
	if base == "" {
		base = file.Scenarios[0].Name
	}

	fundingPath, _ := cmd.Flags().GetString("funding")
	debugMode, _ := cmd.Flags().GetBool("debug")
	engine, err := newEngine(fundingPath, file, debugMode)
	if err != nil {
		return err
	}

	compareEngine := compare.NewCompareEngine(engine)
	ctx := context.Background()

	var compSet *compare.ComparisonSet
	if byTemplate {
		compSet, err = compareEngine.Compare(ctx, file, compare.CompareOptions{
			BaseScenarioName: base,
			Templates:        templates,
			Custom:           custom,
		})
	} else {
		compSet, err = compareEngine.CompareScenarios(ctx, file, base, others)
	}
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}
	compSet.ConfigPath = args[0]

	out := cmd.OutOrStdout()
	switch format {
	case "csv":
		s, err := (&compare.CSVFormatter{}).Format(compSet)
		if err != nil {
			return err
		}
		fmt.Fprint(out, s)
	case "json":
		s, err := (&compare.JSONFormatter{Pretty: true, Assumptions: engine.Assumptions()}).Format(compSet)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
	case "compact":
		fmt.Fprintln(out, (&compare.TableFormatter{}).FormatCompact(compSet))
	default:
		fmt.Fprint(out, (&compare.TableFormatter{}).Format(compSet))
	}
	return nil
}
