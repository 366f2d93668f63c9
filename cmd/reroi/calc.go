package main

import (
	"fmt"
	"os"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/config"
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/output"
	"github.com/spf13/cobra"
)

// flagFields maps CLI flags to input field keys.
var flagFields = []struct {
	flag  string
	field string
}{
	{"price", config.FieldPrice},
	{"renovation", config.FieldRenovation},
	{"management", config.FieldManagementFee},
	{"tax", config.FieldPropertyTax},
	{"rent", config.FieldMonthlyRent},
	{"discount", config.FieldDiscountRate},
	{"years", config.FieldHorizonYears},
}

func newCalcCmd(a *app) *cobra.Command {
	var (
		inputFile string
		format    string
		outDir    string
		noSave    bool
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate ROI and NPV",
		Long: "Calculate ROI and NPV. Fields not given as flags come from --input, or else from the\n" +
			"last saved inputs. Invalid values fall back to the field default with a warning.",
		Example: "  reroi calc --price 300000 --rent 2100\n  reroi calc --input property.yaml --format pdf --out reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			base, _ := a.prefs.LoadInputs(ctx)
			if inputFile != "" {
				in, err := config.NewInputParser().LoadFromFile(inputFile)
				if err != nil {
					return err
				}
				base = *in
			}

			raw := config.RawInput{}
			for _, ff := range flagFields {
				if cmd.Flags().Changed(ff.flag) {
					v, _ := cmd.Flags().GetString(ff.flag)
					raw[ff.field] = v
				}
			}
			in, issues := config.CoerceOnto(base, raw)
			for _, issue := range issues {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", issue)
			}
			if !noSave {
				a.prefs.SaveInputs(ctx, in)
			}

			analysis, err := a.engine.Analyze(ctx, in)
			if err != nil {
				return err
			}

			if format == "" {
				format = a.settings.Output.Format
			}
			if outDir == "" || outDir == "-" {
				data, err := output.Render(analysis, format)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", outDir, err)
			}
			name, err := output.GenerateReport(analysis, format, outDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", name)
			return nil
		},
	}

	defaults := config.FromInputSet(config.DefaultInputSet())
	for _, ff := range flagFields {
		cmd.Flags().String(ff.flag, "", fmt.Sprintf("%s (default %s)", config.FieldLabels[ff.field], defaults[ff.field]))
	}
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "YAML file with property inputs")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: "+fmt.Sprint(output.AvailableFormatterNames()))
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "write a timestamped report into this directory instead of stdout")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not remember these inputs")
	return cmd
}
