package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "demokit",
	Short: "demokit - calculator, person, and text utility demonstrations",
	Long: `demokit is a small demonstration CLI.

It exposes three independent library packages:
  calculator  stateless integer arithmetic
  person      an immutable person record with greetings
  text        pure string transformations

Run "demokit demo" for the scripted showcase, or call the operations
directly via the calc, person, and text subcommands.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "demokit.yaml", "Path to config file")

	// Demo flags
	demoCmd.Flags().DurationVar(&demoDelay, "delay", 0, "Delay before the closing message (overrides config)")
	demoCmd.Flags().StringVar(&demoRoster, "roster", "", "Path to a YAML roster of people to greet")

	// Person flags
	personGreetCmd.Flags().StringVar(&greetTime, "time", "", "Time of day: morning, afternoon, evening, night")
	personGreetCmd.Flags().StringVar(&greetEmail, "email", "", "Email address to attach")

	// Calc subcommands
	calcCmd.AddCommand(calcAddCmd)
	calcCmd.AddCommand(calcSubCmd)
	calcCmd.AddCommand(calcMulCmd)
	calcCmd.AddCommand(calcDivCmd)
	calcCmd.AddCommand(calcFactCmd)

	// Person subcommands
	personCmd.AddCommand(personGreetCmd)

	// Text subcommands
	textCmd.AddCommand(textCapitalizeCmd)
	textCmd.AddCommand(textCamelCmd)
	textCmd.AddCommand(textTrimCmd)
	textCmd.AddCommand(textCountCmd)
	textCmd.AddCommand(textCheckEmailCmd)

	// Add commands to root
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(personCmd)
	rootCmd.AddCommand(textCmd)
}

// demoDelay of zero means "use the configured delay".
var (
	demoDelay  time.Duration
	demoRoster string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
