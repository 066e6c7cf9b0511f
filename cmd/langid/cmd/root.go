package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MeKo-Tech/langid/internal/config"
	"github.com/MeKo-Tech/langid/internal/detect"
	"github.com/MeKo-Tech/langid/internal/model"
	"github.com/MeKo-Tech/langid/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Global configuration loader.
	configLoader *config.Loader
	// Global configuration.
	globalConfig *config.Config
	// Configuration file path.
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "langid",
	Short: "Statistical n-gram language identification",
	Long: `langid identifies the natural language of text using pretrained
character n-gram models covering 75 languages.

It reports either a single best guess, gated by a configurable minimum
relative distance, or the full probability distribution over the
configured language set.

Examples:
  langid detect "les langues sont géniales"
  langid detect --confidence "Sprachen sind toll"
  langid batch ./texts --format json
  langid serve --port 8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, _ := cmd.PersistentFlags().GetBool("version")
		if v {
			ver, commit, date := version.Info()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "langid version %s\n", ver)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", commit)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", date)
			return nil
		}
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCommand returns the root command for testing purposes.
func GetRootCommand() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is search in ., $HOME, $HOME/.config/langid, /etc/langid)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	defaultModelsDir := model.GetModelsDir("")
	rootCmd.PersistentFlags().String("models-dir", defaultModelsDir,
		"directory containing language models (can also be set via LANGID_MODELS_DIR)")

	rootCmd.PersistentFlags().StringSlice("languages", nil,
		"restrict the candidate languages (tag names or ISO codes; default all)")
	rootCmd.PersistentFlags().Float64("min-relative-distance", 0,
		"minimum probability gap over the runner-up for a definite answer (0..0.99)")
	rootCmd.PersistentFlags().Bool("low-accuracy", false,
		"trigram-only mode: faster and smaller, less accurate on short input")
	rootCmd.PersistentFlags().Bool("preload", false,
		"load all language models up front instead of on first use")

	rootCmd.PersistentFlags().Bool("version", false, "print version information and exit")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("models_dir", rootCmd.PersistentFlags().Lookup("models-dir"))
	_ = viper.BindPFlag("detector.languages", rootCmd.PersistentFlags().Lookup("languages"))
	_ = viper.BindPFlag("detector.min_relative_distance", rootCmd.PersistentFlags().Lookup("min-relative-distance"))
	_ = viper.BindPFlag("detector.low_accuracy", rootCmd.PersistentFlags().Lookup("low-accuracy"))
	_ = viper.BindPFlag("detector.preload", rootCmd.PersistentFlags().Lookup("preload"))

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if globalConfig == nil {
			initConfig()
		}

		var logLevel slog.Level
		if globalConfig.Verbose {
			logLevel = slog.LevelDebug
		} else {
			switch globalConfig.LogLevel {
			case "debug":
				logLevel = slog.LevelDebug
			case "warn":
				logLevel = slog.LevelWarn
			case "error":
				logLevel = slog.LevelError
			default:
				logLevel = slog.LevelInfo
			}
		}

		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	configLoader = config.NewLoader()

	var err error
	if cfgFile != "" {
		globalConfig, err = configLoader.LoadWithFile(cfgFile)
	} else {
		globalConfig, err = configLoader.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
}

// GetConfig returns the global configuration with CLI flags applied.
func GetConfig() *config.Config {
	if globalConfig == nil {
		initConfig()
	}

	// Reload so flag values bound after the initial load are included.
	var cfg config.Config
	if err := configLoader.GetViper().Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling updated configuration: %v\n", err)
		return globalConfig
	}
	return &cfg
}

// buildDetector constructs a detector from the effective configuration.
func buildDetector(cfg *config.Config) (*detect.Detector, error) {
	langs, err := cfg.DetectorLanguages()
	if err != nil {
		return nil, err
	}

	b := detect.NewBuilder().
		FromLanguages(langs...).
		WithMinimumRelativeDistance(cfg.Detector.MinRelativeDistance).
		WithModelsDir(cfg.ModelsDir)
	if cfg.Detector.LowAccuracy {
		b = b.WithLowAccuracyMode()
	}
	if cfg.Detector.Preload {
		b = b.WithPreloadedLanguageModels()
	}
	return b.Build()
}
