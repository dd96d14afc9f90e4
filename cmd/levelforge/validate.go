package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	charorch "github.com/aldenmoor/levelforge/internal/orchestrators/character"
)

var validateName string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a character against the progression rules",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateName, "name", "", "Character name (required)")
	_ = validateCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
}

func runValidate(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.ValidateCharacter(context.Background(), &charorch.ValidateCharacterInput{Name: validateName})
	if err != nil {
		return err
	}
	report := out.Report

	fmt.Printf("Validation (%s): %s\n", report.Type, report.Summary)

	if report.AutoCorrected {
		fmt.Printf("Free points adjusted by %+d.\n", report.PointsAdjusted)
	}
	if report.ConvertedToCalculated {
		fmt.Println("Character converted from manual to calculated.")
	}

	for _, issue := range report.MetaIssues {
		fmt.Printf("  issue: %s\n", issue)
	}
	for stat, disc := range report.StatDiscrepancies {
		fmt.Printf("  %-14s expected %d, actual %d (%s)\n",
			stat, disc.Expected, disc.Actual, disc.Status)
	}
	if fp := report.FreePoints; fp != nil {
		fmt.Printf("  free points: expected %d, spent %d, current %d\n",
			fp.ExpectedTotal, fp.Spent, fp.Current)
	}

	if !report.Valid {
		return fmt.Errorf("character %s failed validation", validateName)
	}
	return nil
}
