package main

import (
	"fmt"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/config"
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newInputsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inputs",
		Short: "Show or reset the saved inputs",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the saved inputs as YAML",
			RunE: func(cmd *cobra.Command, args []string) error {
				in, saved := a.prefs.LoadInputs(cmd.Context())
				if !saved {
					fmt.Fprintln(cmd.ErrOrStderr(), "no saved inputs; showing defaults")
				}
				b, err := yaml.Marshal(in)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Replace the saved inputs with the defaults",
			RunE: func(cmd *cobra.Command, args []string) error {
				a.prefs.SaveInputs(cmd.Context(), config.DefaultInputSet())
				fmt.Fprintln(cmd.OutOrStdout(), "inputs reset to defaults")
				return nil
			},
		},
	)
	return cmd
}

func newThemeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the page theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.prefs.LoadTheme(cmd.Context()))
			return nil
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:       "set light|dark",
			Short:     "Set the theme",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{string(domain.ThemeLight), string(domain.ThemeDark)},
			RunE: func(cmd *cobra.Command, args []string) error {
				theme, err := domain.ParseTheme(args[0])
				if err != nil {
					return err
				}
				a.prefs.SaveTheme(cmd.Context(), theme)
				fmt.Fprintln(cmd.OutOrStdout(), theme)
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between light and dark",
			RunE: func(cmd *cobra.Command, args []string) error {
				theme := a.prefs.LoadTheme(cmd.Context()).Toggle()
				a.prefs.SaveTheme(cmd.Context(), theme)
				fmt.Fprintln(cmd.OutOrStdout(), theme)
				return nil
			},
		},
	)
	return cmd
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [file]",
		Short: "Write an example property input file",
		Args:  cobra.MaximumNArgs(1),
		// no store needed
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			example := parser.CreateExampleInputSet()
			if len(args) == 0 {
				b, err := yaml.Marshal(example)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if err := parser.SaveToFile(example, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "example inputs written to %s\n", args[0])
			return nil
		},
	}
}
