package main

import (
	"fmt"
	"strconv"

	"demokit/internal/calculator"

	"github.com/spf13/cobra"
)

// calcCmd groups the arithmetic subcommands
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Stateless integer arithmetic",
}

var calcAddCmd = &cobra.Command{
	Use:   "add [a] [b]",
	Short: "Add two integers",
	Args:  cobra.ExactArgs(2),
	RunE:  runCalcBinary(calculator.Add),
}

var calcSubCmd = &cobra.Command{
	Use:   "sub [a] [b]",
	Short: "Subtract b from a",
	Args:  cobra.ExactArgs(2),
	RunE:  runCalcBinary(calculator.Subtract),
}

var calcMulCmd = &cobra.Command{
	Use:   "mul [a] [b]",
	Short: "Multiply two integers",
	Args:  cobra.ExactArgs(2),
	RunE:  runCalcBinary(calculator.Multiply),
}

var calcDivCmd = &cobra.Command{
	Use:   "div [a] [b]",
	Short: "Divide a by b",
	Long:  `Divides a by b and prints the quotient as a floating-point value. Fails when b is zero.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCalcDiv,
}

var calcFactCmd = &cobra.Command{
	Use:   "fact [n]",
	Short: "Compute n!",
	Long:  `Computes the factorial of n. Fails for negative n and for n above 20 (int64 overflow).`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCalcFact,
}

func parseInt64(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return n, nil
}

// runCalcBinary adapts a total two-argument operation to a cobra RunE.
func runCalcBinary(op func(a, b int64) int64) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := parseInt64(args[0])
		if err != nil {
			return err
		}
		b, err := parseInt64(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", op(a, b))
		return nil
	}
}

func runCalcDiv(cmd *cobra.Command, args []string) error {
	a, err := parseInt64(args[0])
	if err != nil {
		return err
	}
	b, err := parseInt64(args[1])
	if err != nil {
		return err
	}
	q, err := calculator.Divide(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%g\n", q)
	return nil
}

func runCalcFact(cmd *cobra.Command, args []string) error {
	n, err := parseInt64(args[0])
	if err != nil {
		return err
	}
	f, err := calculator.Factorial(n)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d\n", f)
	return nil
}
