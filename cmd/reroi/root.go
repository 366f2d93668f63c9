package main

import (
	"log"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/calculation"
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/config"
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/store"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	debug      bool

	settings config.Settings
	logger   *calculation.StdLogger
	kv       store.KVStore
	prefs    *store.Preferences
	engine   *calculation.CalculationEngine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "reroi",
		Short:         "Real-estate ROI and NPV calculator",
		Long:          "reroi computes the return on investment and the net present value of a rental property,\nremembering the last inputs and the page theme between runs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "settings file (YAML)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newCalcCmd(a),
		newServeCmd(a),
		newInputsCmd(a),
		newThemeCmd(a),
		newExampleCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(a.configPath)
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger = calculation.NewStdLogger(log.New(cmd.ErrOrStderr(), "", log.LstdFlags), a.debug || settings.Debug)

	a.kv, err = store.Open(settings.Store)
	if err != nil {
		return err
	}
	a.prefs = store.NewPreferences(a.kv, settings.Store.Namespace, a.logger)
	a.engine = calculation.NewCalculationEngine()
	a.engine.SetLogger(a.logger)
	a.logger.Debugf("using %s store", settings.Store.Driver)
	return nil
}

func (a *app) close() error {
	if a.kv == nil {
		return nil
	}
	return a.kv.Close()
}
