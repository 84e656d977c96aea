// Package demo runs the scripted demonstration that exercises the
// calculator, person, and strutil packages.
package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	"demokit/internal/calculator"
	"demokit/internal/person"
	"demokit/internal/strutil"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("212"))

// Runner writes the demonstration to an io.Writer.
type Runner struct {
	out    io.Writer
	logger *zap.Logger

	// Delay before the closing message. Cosmetic; zero skips it.
	Delay time.Duration

	// Extra people greeted in the person section, typically loaded
	// from a roster file.
	Roster []person.Person
}

// NewRunner creates a Runner writing to out.
func NewRunner(out io.Writer, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		out:    out,
		logger: logger,
		Delay:  time.Second,
	}
}

// Run executes the full demonstration. It returns an error only when
// writing fails or the context is canceled before the closing line.
func (r *Runner) Run(ctx context.Context) error {
	runID := uuid.NewString()
	r.logger.Info("starting demonstration", zap.String("run_id", runID))

	sections := []func() error{
		r.calculatorSection,
		r.personSection,
		r.textSection,
	}
	for _, section := range sections {
		if err := section(); err != nil {
			return err
		}
	}

	if r.Delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.Delay):
		}
	}
	if err := r.printf("\nThat's all, folks!\n"); err != nil {
		return err
	}

	r.logger.Info("demonstration complete", zap.String("run_id", runID))
	return nil
}

func (r *Runner) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(r.out, format, args...)
	return err
}

func (r *Runner) header(title string) error {
	return r.printf("\n%s\n", headerStyle.Render("== "+title+" =="))
}

func (r *Runner) calculatorSection() error {
	if err := r.header("Calculator"); err != nil {
		return err
	}

	if err := r.printf("2 + 3 = %d\n", calculator.Add(2, 3)); err != nil {
		return err
	}
	if err := r.printf("7 - 4 = %d\n", calculator.Subtract(7, 4)); err != nil {
		return err
	}
	if err := r.printf("6 * 7 = %d\n", calculator.Multiply(6, 7)); err != nil {
		return err
	}

	if q, err := calculator.Divide(10, 4); err == nil {
		if err := r.printf("10 / 4 = %g\n", q); err != nil {
			return err
		}
	}
	if _, err := calculator.Divide(1, 0); err != nil {
		r.logger.Debug("expected failure", zap.Error(err))
		if err := r.printf("1 / 0 -> error: %v\n", err); err != nil {
			return err
		}
	}

	if f, err := calculator.Factorial(5); err == nil {
		if err := r.printf("5! = %d\n", f); err != nil {
			return err
		}
	}
	if _, err := calculator.Factorial(-3); err != nil {
		r.logger.Debug("expected failure", zap.Error(err))
		if err := r.printf("(-3)! -> error: %v\n", err); err != nil {
			return err
		}
	}

	return nil
}

func (r *Runner) personSection() error {
	if err := r.header("Person"); err != nil {
		return err
	}

	alice := person.New("Alice", 30)
	bob := person.New("Bob", 10)

	if err := r.printf("%s\n", alice.Greet(person.TimeMorning)); err != nil {
		return err
	}
	if err := r.printf("%s\n", bob.Greet(person.TimeGeneric)); err != nil {
		return err
	}
	if err := r.printf("Alice is an adult: %v\n", alice.IsAdult()); err != nil {
		return err
	}
	if err := r.printf("Bob is an adult: %v\n", bob.IsAdult()); err != nil {
		return err
	}

	withEmail := alice.WithEmail("alice@example.com")
	if err := r.printf("Before: %s\n", alice); err != nil {
		return err
	}
	if err := r.printf("After:  %s\n", withEmail); err != nil {
		return err
	}

	for _, p := range r.Roster {
		if err := r.printf("%s (%s)\n", p.Greet(person.TimeAfternoon), p); err != nil {
			return err
		}
	}

	return nil
}

func (r *Runner) textSection() error {
	if err := r.header("Text"); err != nil {
		return err
	}

	samples := []struct {
		label string
		value interface{}
	}{
		{`capitalize "hello world"`, strutil.CapitalizeFirstLetter("hello world")},
		{`valid email "alice@example.com"`, strutil.IsValidEmail("alice@example.com")},
		{`valid email "not-an-email"`, strutil.IsValidEmail("not-an-email")},
		{`trim "  hi  "`, strutil.Trimmed("  hi  ")},
		{`camel "hello world example"`, strutil.CamelCased("hello world example")},
		{`words in "one two three"`, strutil.WordCount("one two three")},
	}
	for _, s := range samples {
		if err := r.printf("%s -> %v\n", s.label, s.value); err != nil {
			return err
		}
	}

	return nil
}
