package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var canonCmd = &cobra.Command{
	Use:   "canon [names...]",
	Short: "Canonicalize already-demangled type names",
	Long: `Rewrite demangled C++ type names into canonical form without
invoking the demangler. Useful for names taken from compiler
diagnostics or debug info that are already in readable form.`,
	RunE: runCanon,
}

func runCanon(cmd *cobra.Command, args []string) error {
	names, err := readNames(args)
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintln(output, rules.Canonical(name))
	}
	return nil
}
