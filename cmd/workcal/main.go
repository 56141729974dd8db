package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/username/workcal/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
	cfg        *config.Config // nil when the config file could not be loaded
	cfgErr     error
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "workcal",
		Short: "Производственный календарь из текста постановления",
		Long:  "Extract working and non-working days of a year from a published Russian legal text and save them as a day-of-year map",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, cfgErr = config.Load(configPath)
			if cfgErr == nil {
				cfg.ExpandEnvVars()
			}

			level := "info"
			if cfgErr == nil {
				level = cfg.Log.Level
			}

			if cfgErr == nil && cfg.Log.File != "" {
				var err error
				logger, err = initFileLogger(cfg.Log.File, level)
				if err != nil {
					initLogger(level) // Fallback to console
				}
			} else {
				initLogger(level)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")

	rootCmd.AddCommand(fetchCmd())
	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(verifyCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// requireConfig returns the loaded config or the reason it is missing
func requireConfig() (*config.Config, error) {
	if cfgErr != nil {
		return nil, fmt.Errorf("failed to load config: %w", cfgErr)
	}
	return cfg, nil
}

// outputDir picks the flag value, then the config, then the working directory
func outputDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil {
		return cfg.Output.Dir
	}
	return "."
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	return zapLevel
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core), nil
}

func outPrintf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, format, a...)
}

func outPrintln(w io.Writer, a ...interface{}) {
	fmt.Fprintln(w, a...)
}
