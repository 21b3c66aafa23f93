package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [names...]",
	Short: "Check whether type names are already canonical",
	Long: `Check each name against its canonical form. Names that would be
rewritten are shown with the rewrite; the command exits nonzero if
any name was not canonical.`,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	names, err := readNames(args)
	if err != nil {
		return err
	}

	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed)

	mismatched := 0
	for _, name := range names {
		canonical := rules.Canonical(name)
		if canonical == name {
			pass.Fprintf(output, "ok       %s\n", name)
			continue
		}
		mismatched++
		fail.Fprintf(output, "rewrite  %s\n", name)
		fmt.Fprintf(output, "      -> %s\n", canonical)
	}

	if mismatched > 0 {
		return fmt.Errorf("%d name(s) not in canonical form", mismatched)
	}
	return nil
}
