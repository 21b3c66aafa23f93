package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/xjanssen/typename-go/internal/itanium"
	"github.com/xjanssen/typename-go/typename"
)

var (
	demangleRaw       bool
	demangleKeepGoing bool
	demangleJobs      int
)

var demangleCmd = &cobra.Command{
	Use:   "demangle [symbols...]",
	Short: "Demangle mangled type names into canonical form",
	Long: `Demangle mangled C++ type names and print their canonical form.

Accepts both symbol-style names with a _Z prefix and bare type names
as returned by std::type_info::name().`,
	RunE: runDemangle,
}

func init() {
	demangleCmd.Flags().BoolVar(&demangleRaw, "raw", false, "print raw demangler output without canonicalization")
	demangleCmd.Flags().BoolVarP(&demangleKeepGoing, "keep-going", "k", false, "print unparseable names unchanged instead of stopping")
	demangleCmd.Flags().IntVarP(&demangleJobs, "jobs", "j", 1, "number of names to demangle concurrently")
}

func runDemangle(cmd *cobra.Command, args []string) error {
	names, err := readNames(args)
	if err != nil {
		return err
	}

	opts := demangleOptions{
		raw:       demangleRaw,
		keepGoing: demangleKeepGoing,
		jobs:      demangleJobs,
	}
	results, err := demangleNames(names, rules, opts)
	if err != nil {
		return err
	}

	for _, result := range results {
		fmt.Fprintln(output, result)
	}
	return nil
}

type demangleOptions struct {
	raw       bool
	keepGoing bool
	jobs      int
}

// demangleNames demangles names concurrently, preserving input order.
// With keepGoing set, unparseable names pass through unchanged and the
// error goes to stderr.
func demangleNames(names []string, rules typename.Ruleset, opts demangleOptions) ([]string, error) {
	if opts.jobs < 1 {
		opts.jobs = 1
	}

	results := make([]string, len(names))
	g := new(errgroup.Group)
	g.SetLimit(opts.jobs)
	for i, name := range names {
		g.Go(func() error {
			result, err := demangleOne(name, rules, opts.raw)
			if err != nil {
				if !opts.keepGoing {
					return err
				}
				fmt.Fprintln(os.Stderr, err)
				result = name
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func demangleOne(name string, rules typename.Ruleset, raw bool) (string, error) {
	if raw {
		demangled, err := itanium.Demangle(name)
		if err != nil {
			return "", fmt.Errorf("cannot demangle %q: %w", name, err)
		}
		return demangled, nil
	}
	return rules.Demangle(name)
}
