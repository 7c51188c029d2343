package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-audiofeatures/extract"
)

var (
	cfgFile string
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "audiofeat",
	Short: "Audio feature extraction for corpus analysis",
	Long: `audiofeat runs a bank of audio feature extractors over files or whole
directories and collects the results into one table, one row per file.

The extractors cover spectral shape, crest factor, EBU R128 loudness and
dynamics, amplitude-distribution distortion cues, and stereo correlation.
Run "audiofeat list" for the full set and the feature columns each one
contributes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		logger, err = newLogger(viper.GetBool("verbose"))
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}

		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := rootCmd.Execute()

	if logger != nil {
		_ = logger.Sync()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default audiofeat.yaml in . or $HOME/.config/audiofeat)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// bindFlags binds every flag of cmd into the given viper namespace,
// mapping dashed flag names to underscored config keys, so
// --sample-rate on extract resolves through extract.sample_rate.
func bindFlags(cmd *cobra.Command, namespace string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		viper.BindPFlag(namespace+"."+strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

// initConfig reads the config file and AUDIOFEAT_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "audiofeat"))
		}
		viper.SetConfigName("audiofeat")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("AUDIOFEAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// A missing config file is fine; flags and defaults carry the run.
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintf(os.Stderr, "using config file: %s\n", viper.ConfigFileUsed())
		}
	}
}

func setDefaults() {
	viper.SetDefault("verbose", false)

	viper.SetDefault("extract.sample_rate", 0.0)
	viper.SetDefault("extract.format", "csv")
	viper.SetDefault("extract.mono_duplicate", false)
	viper.SetDefault("extract.extractors", []string{})
	viper.SetDefault("extract.stats", extract.DefaultStats())
}

// newLogger builds the stderr logger shared by all commands.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return cfg.Build()
}
