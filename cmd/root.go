package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/spark/internal/config"
	"github.com/zjrosen/spark/internal/log"
)

const logBufferSize = 500

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
	v         *viper.Viper
	closeLog  func()
)

// SetVersion sets the version string.
func SetVersion(ver string) {
	version = ver
	rootCmd.Version = ver
}

var rootCmd = &cobra.Command{
	Use:   "spark",
	Short: "Declarative terminal components",
	Long: `spark builds terminal views, forms and modals from declarative configs.

Run "spark playground" to assemble a modal from a form and try it out.`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./.spark.yaml or ~/.config/spark/.spark.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "write debug logs to log_path")
}

// setup loads the configuration, starts logging and applies the theme.
func setup(cmd *cobra.Command, _ []string) error {
	v = config.New(cfgFile)
	if err := v.BindPFlag("debug", cmd.Flags().Lookup("debug")); err != nil {
		return fmt.Errorf("binding --debug: %w", err)
	}

	var err error
	cfg, err = config.Load(v)
	if err != nil {
		return err
	}

	if cfg.Debug {
		closeLog, err = log.InitWithTeaLog(cfg.LogPath, "spark", logBufferSize)
		if err != nil {
			return err
		}
		log.SetMinLevel(log.ParseLevel(cfg.LogLevel))
		log.Info(log.CatConfig, "debug logging enabled", "path", cfg.LogPath, "level", cfg.LogLevel, "version", version)
	}

	return config.ApplyTheme(cfg)
}

func teardown(_ *cobra.Command, _ []string) error {
	if closeLog != nil {
		closeLog()
	}
	return nil
}
