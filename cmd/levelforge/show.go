package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	charorch "github.com/aldenmoor/levelforge/internal/orchestrators/character"
)

var (
	showName      string
	showBreakdown bool
	showCreation  bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a character",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showName, "name", "", "Character name (required)")
	_ = showCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
	showCmd.Flags().BoolVar(&showBreakdown, "breakdown", false, "Show the per-source stat breakdown")
	showCmd.Flags().BoolVar(&showCreation, "creation", false, "Show how the character was created")
}

func runShow(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	ctx := context.Background()

	out, err := svc.GetCharacter(ctx, &charorch.GetCharacterInput{Name: showName})
	if err != nil {
		return err
	}
	printCharacter(out.Character)

	if showBreakdown {
		printBreakdown(out.Character)
	}

	if showCreation {
		info, err := svc.GetCreationInfo(ctx, &charorch.GetCreationInfoInput{Name: showName})
		if err != nil {
			return err
		}
		fmt.Printf("\n  Creation: %s (%s)\n", info.Summary, info.Classification)
	}
	return nil
}
