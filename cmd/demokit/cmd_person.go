package main

import (
	"fmt"

	"demokit/internal/person"
	"demokit/internal/strutil"

	"github.com/spf13/cobra"
)

var (
	greetTime  string
	greetEmail string
)

// personCmd groups person subcommands
var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Immutable person records and greetings",
}

var personGreetCmd = &cobra.Command{
	Use:   "greet [name] [age]",
	Short: "Greet as a person",
	Long: `Constructs a person and prints their greeting and description.

Example:
  demokit person greet Alice 30 --time morning --email alice@example.com`,
	Args: cobra.ExactArgs(2),
	RunE: runPersonGreet,
}

func runPersonGreet(cmd *cobra.Command, args []string) error {
	age, err := parseInt64(args[1])
	if err != nil {
		return err
	}

	tod, err := person.ParseTimeOfDay(greetTime)
	if err != nil {
		return err
	}

	p := person.New(args[0], int(age))
	if greetEmail != "" {
		if !strutil.IsValidEmail(greetEmail) {
			return fmt.Errorf("invalid email %q", greetEmail)
		}
		p = p.WithEmail(greetEmail)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", p.Greet(tod))
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", p)
	if p.IsAdult() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is an adult\n", p.Name())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is a minor\n", p.Name())
	}
	return nil
}
