package main

import (
	"demokit/internal/config"
	"demokit/internal/demo"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// demoCmd runs the full scripted demonstration
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the full demonstration",
	Long: `Runs the scripted showcase of all three library packages:
calculator arithmetic (including the two failure cases), person
greetings and immutability, and the string utilities. Finishes with a
delayed closing message.`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	r := demo.NewRunner(cmd.OutOrStdout(), logger)
	r.Delay = cfg.GetDelay()
	if cmd.Flags().Changed("delay") {
		r.Delay = demoDelay
	}

	rosterPath := cfg.Demo.RosterPath
	if demoRoster != "" {
		rosterPath = demoRoster
	}
	if rosterPath != "" {
		people, err := demo.LoadRoster(rosterPath)
		if err != nil {
			return err
		}
		logger.Debug("loaded roster", zap.Int("people", len(people)))
		r.Roster = people
	}

	return r.Run(cmd.Context())
}
