package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xjanssen/typename-go/typename"
)

var (
	outputFile string
	rulesPath  string
	output     io.Writer
	rules      typename.Ruleset
)

var rootCmd = &cobra.Command{
	Use:   "typefilt",
	Short: "C++ type name demangler and canonicalizer",
	Long: `typefilt demangles C++ type names and rewrites them into the
canonical form used by dictionary and reflection lookup systems:
no space after commas, default allocators and comparators stripped,
const qualifiers before identifiers, no adjacent closing brackets.

Names are taken from arguments, or from standard input when no
arguments are given, one name per line.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		rules, err = loadRules(rulesPath)
		if err != nil {
			return err
		}

		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			output = f
		} else {
			output = os.Stdout
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if f, ok := output.(*os.File); ok && f != os.Stdout {
			f.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "TOML file with extra canonicalization rules")

	rootCmd.AddCommand(demangleCmd)
	rootCmd.AddCommand(canonCmd)
	rootCmd.AddCommand(verifyCmd)
}

// readNames returns the command arguments, or non-empty stdin lines
// when no arguments were given.
func readNames(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var names []string
	scanner := bufio.NewScanner(os.Stdin)
	// Deeply templated names can run long.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			names = append(names, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read names: %w", err)
	}
	return names, nil
}
