package main

import (
	"fmt"

	"demokit/internal/strutil"

	"github.com/spf13/cobra"
)

// textCmd groups the string utility subcommands
var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Pure string transformations",
}

var textCapitalizeCmd = &cobra.Command{
	Use:   "capitalize [input]",
	Short: "Uppercase the first letter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", strutil.CapitalizeFirstLetter(args[0]))
		return nil
	},
}

var textCamelCmd = &cobra.Command{
	Use:   "camel [input]",
	Short: "Convert to camelCase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", strutil.CamelCased(args[0]))
		return nil
	},
}

var textTrimCmd = &cobra.Command{
	Use:   "trim [input]",
	Short: "Strip leading and trailing whitespace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", strutil.Trimmed(args[0]))
		return nil
	},
}

var textCountCmd = &cobra.Command{
	Use:   "count [input]",
	Short: "Count words",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", strutil.WordCount(args[0]))
		return nil
	},
}

var textCheckEmailCmd = &cobra.Command{
	Use:   "check-email [input]",
	Short: "Check whether the input looks like an email address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if strutil.IsValidEmail(args[0]) {
			fmt.Fprintf(cmd.OutOrStdout(), "valid\n")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "invalid\n")
		}
		return nil
	},
}
