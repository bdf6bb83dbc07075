// Command nameparse splits a person's full name into first and last name,
// using the toy name grammar of package names.
//
// Reads the name from the command line arguments, or prompts for it on
// the console.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/parsec/names"
)

var traceLevel string

var rootCmd = &cobra.Command{
	Use:   "nameparse [name…]",
	Short: "Split a person's full name into first and last name",
	Long: `nameparse parses a person's full name with the grammar

  <name> ::= <word> " " <word>

and prints the first and last name it found. Without arguments, the name
is read from the console.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupTracing()
		input, err := readInput(args)
		if err != nil {
			return err
		}
		name, err := names.Parse(input)
		if err != nil {
			return err
		}
		ctx := names.ContextFromEnvironment()
		fmt.Printf("First name: %s\n", name.First)
		fmt.Printf("Last name:  %s\n", name.Last)
		fmt.Printf("Known as:   %s\n", name.DisplayString(ctx))
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&traceLevel, "trace", "error", "trace level (debug|info|error)")
}

func setupTracing() {
	gtrace.CoreTracer = gologadapter.New()
	lvl := tracing.LevelError
	switch traceLevel {
	case "debug":
		lvl = tracing.LevelDebug
	case "info":
		lvl = tracing.LevelInfo
	}
	gtrace.CoreTracer.SetTraceLevel(lvl)
}

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	fmt.Print("Enter your full name: ")
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		return "", sc.Err()
	}
	return sc.Text(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
